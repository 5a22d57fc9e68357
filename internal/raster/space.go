package raster

import "softrender/internal/mathutil"

// Project transforms a 3D point by an already-composed model-view-projection
// matrix and maps the resulting NDC to pixel coordinates. Screen y grows
// downward, so NDC y is flipped. The returned depth is the transformed z,
// exposed for caller-side effects such as depth shading or sorting; there is
// no depth test here.
func (fb *FrameBuffer) Project(p mathutil.Vec3, transform mathutil.Mat4) (x, y int, depth float64) {
	ndc := transform.MulVec3(p, 1)
	x = int((ndc[0] + 1) * 0.5 * float64(fb.Width))
	y = int((1 - ndc[1]) * 0.5 * float64(fb.Height))
	return x, y, ndc[2]
}

// Line3D projects both endpoints and draws a 2D line between them.
func (fb *FrameBuffer) Line3D(p1, p2 mathutil.Vec3, transform mathutil.Mat4, c Color) {
	x1, y1, _ := fb.Project(p1, transform)
	x2, y2, _ := fb.Project(p2, transform)
	fb.Line(x1, y1, x2, y2, c)
}

// Triangle3D projects three vertices and fills the resulting 2D triangle.
// Triangles are drawn strictly in submission order (painter's algorithm);
// callers wanting correct occlusion must sort faces back to front. No
// near-plane clipping is performed, so geometry crossing the camera plane
// can project to artifacts.
func (fb *FrameBuffer) Triangle3D(p1, p2, p3 mathutil.Vec3, transform mathutil.Mat4, c Color) {
	x1, y1, _ := fb.Project(p1, transform)
	x2, y2, _ := fb.Project(p2, transform)
	x3, y3, _ := fb.Project(p3, transform)
	fb.FillTriangle(x1, y1, x2, y2, x3, y3, c)
}
