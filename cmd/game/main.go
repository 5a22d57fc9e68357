// Minimal shooter: arrow keys move, ship fires automatically.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"softrender/internal/raster"
	"softrender/internal/window"
)

const (
	maxEnemies = 10
	maxBullets = 20
)

type bullet struct {
	x, y, vy float64
	active   bool
}

type enemy struct {
	x, y   float64
	active bool
}

type game struct {
	bullets [maxBullets]bullet
	enemies [maxEnemies]enemy
	playerX int
	playerY int
	score   int

	width, height       int
	lastSpawn, lastShot time.Time
}

func (g *game) spawnEnemy() {
	for i := range g.enemies {
		if !g.enemies[i].active {
			g.enemies[i] = enemy{x: float64(rand.Intn(g.width-100) + 50), y: -20, active: true}
			return
		}
	}
}

func (g *game) shoot() {
	for i := range g.bullets {
		if !g.bullets[i].active {
			g.bullets[i] = bullet{x: float64(g.playerX), y: float64(g.playerY - 20), vy: -8, active: true}
			return
		}
	}
}

func (g *game) frame(w *window.Window) error {
	fb := w.Frame()
	now := time.Now()

	if w.Pressed(window.KeyLeft) && g.playerX > 20 {
		g.playerX -= 6
	}
	if w.Pressed(window.KeyRight) && g.playerX < g.width-20 {
		g.playerX += 6
	}

	if now.Sub(g.lastSpawn) > 500*time.Millisecond {
		g.spawnEnemy()
		g.lastSpawn = now
	}
	if now.Sub(g.lastShot) > 200*time.Millisecond {
		g.shoot()
		g.lastShot = now
	}

	fb.Clear(raster.RGB(10, 10, 20))

	// Star scroll
	t := float64(now.UnixMilli()) / 1000
	for i := 0; i < 20; i++ {
		sx := rand.Intn(g.width)
		sy := int(t*50+float64(i*30)) % g.height
		fb.SetPixel(sx, sy, raster.RGB(200, 200, 255))
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.active {
			continue
		}
		b.y += b.vy
		if b.y < 0 {
			b.active = false
			continue
		}
		fb.FillCircle(int(b.x), int(b.y), 3, raster.RGB(255, 255, 100))
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.active {
			continue
		}
		e.y += 2
		if e.y > float64(g.height+20) {
			e.active = false
			continue
		}

		for j := range g.bullets {
			b := &g.bullets[j]
			if !b.active {
				continue
			}
			dx := b.x - e.x
			dy := b.y - e.y
			if dx*dx+dy*dy < 400 {
				e.active = false
				b.active = false
				g.score += 10
			}
		}

		ex, ey := int(e.x), int(e.y)
		fb.FillTriangle(ex, ey-15, ex-12, ey+10, ex+12, ey+10, raster.RGB(255, 100, 100))
		fb.Triangle(ex, ey-15, ex-12, ey+10, ex+12, ey+10, raster.RGB(255, 200, 200))
	}

	px, py := g.playerX, g.playerY
	fb.FillTriangle(px, py-20, px-15, py+15, px+15, py+15, raster.RGB(100, 200, 255))
	fb.Triangle(px, py-20, px-15, py+15, px+15, py+15, raster.RGB(200, 230, 255))

	fb.Text(fmt.Sprintf("SCORE: %d", g.score), 10, 10, raster.RGB(255, 255, 100), 2)
	fb.Text("Arrow keys to move, Escape to quit", 10, 30, raster.RGB(200, 200, 200), 1)

	return nil
}

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	flag.Parse()

	g := &game{
		width:   *width,
		height:  *height,
		playerX: *width / 2,
		playerY: *height - 100,
	}

	err := window.Run(window.Config{
		Title:  "Simple Shooter",
		Width:  *width,
		Height: *height,
	}, g.frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
