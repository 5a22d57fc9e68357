// Particle fountain: alpha-faded circles with a wandering emitter.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"softrender/internal/raster"
	"softrender/internal/window"
)

const maxParticles = 500

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	color  raster.Color
}

func (p *particle) reset(cx, cy int) {
	angle := float64(rand.Intn(360)) * math.Pi / 180
	speed := 1 + float64(rand.Intn(100))/50
	p.x = float64(cx)
	p.y = float64(cy)
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed
	p.life = 1
	p.color = raster.RGB(
		uint8(150+rand.Intn(105)),
		uint8(100+rand.Intn(155)),
		uint8(50+rand.Intn(100)),
	)
}

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	flag.Parse()

	var particles [maxParticles]particle
	for i := range particles {
		particles[i].reset(*width/2, *height/2)
	}

	start := time.Now()

	err := window.Run(window.Config{
		Title:  "Particle System",
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(10, 10, 15))
		fb.Text("Particle System", 10, 10, raster.White, 2)

		emitX := *width/2 + int(math.Sin(t)*200)
		emitY := *height/2 + int(math.Cos(t*1.5)*150)

		for i := range particles {
			p := &particles[i]

			p.vy += 0.05 // gravity
			p.x += p.vx
			p.y += p.vy
			p.life -= 0.005

			if p.life <= 0 || p.y > float64(*height) {
				p.reset(emitX, emitY)
			}

			size := int(3 + p.life*3)
			c := p.color.WithAlpha(uint8(p.life * 255))
			fb.FillCircle(int(p.x), int(p.y), size, c)
		}

		fb.FillCircle(emitX, emitY, 8, raster.RGB(255, 255, 100))
		fb.Circle(emitX, emitY, 10, raster.RGBA(255, 255, 255, 200))

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
