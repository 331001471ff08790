package render

import (
	"math"
)

// Brightness range used for depth shading. Far points are drawn at
// MinBrightness, near points at full color.
const (
	MinBrightness = 0.35
	MaxBrightness = 1.0
)

// Wireframe draws projected polytope frames onto a framebuffer.
//
// A frame is the output of the rotate-and-project pipeline: three scalars
// per vertex (screenX, screenY, depth). Edges are flattened vertex index
// pairs.
type Wireframe struct {
	fb *Framebuffer

	// DotRadius is the half-size of the dot drawn on every vertex.
	// Negative disables vertex dots.
	DotRadius int

	// DepthShading dims edges and dots with increasing depth.
	DepthShading bool
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{
		fb:           fb,
		DotRadius:    0,
		DepthShading: true,
	}
}

// Framebuffer returns the target framebuffer.
func (w *Wireframe) Framebuffer() *Framebuffer {
	return w.fb
}

// Draw renders one frame. Edges that reference a vertex outside the frame
// are skipped.
func (w *Wireframe) Draw(frame []float32, edges []uint32, c Color) {
	n := len(frame) / 3
	if n == 0 {
		return
	}

	shade := w.shader(frame, n, c)

	for e := 0; e+1 < len(edges); e += 2 {
		a, b := int(edges[e]), int(edges[e+1])
		if a >= n || b >= n {
			continue
		}
		x0, y0, ok0 := screenPoint(frame, a)
		x1, y1, ok1 := screenPoint(frame, b)
		if !ok0 || !ok1 {
			continue
		}
		w.fb.DrawLineGradient(x0, y0, shade(a), x1, y1, shade(b))
	}

	if w.DotRadius < 0 {
		return
	}
	for v := range n {
		x, y, ok := screenPoint(frame, v)
		if !ok {
			continue
		}
		w.fb.DrawDot(x, y, w.DotRadius, shade(v))
	}
}

// shader returns a per-vertex color function. Depth is auto-ranged over the
// frame; a flat frame gets full brightness.
func (w *Wireframe) shader(frame []float32, n int, c Color) func(v int) Color {
	if !w.DepthShading {
		return func(int) Color { return c }
	}

	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for v := range n {
		d := frame[v*3+2]
		if isNaN32(d) {
			continue
		}
		lo = min(lo, d)
		hi = max(hi, d)
	}
	span := hi - lo
	if !(span > 0) || math.IsInf(float64(span), 0) {
		return func(int) Color { return c }
	}

	return func(v int) Color {
		d := frame[v*3+2]
		if isNaN32(d) {
			return MultiplyColor(c, MinBrightness)
		}
		// Smaller depth is nearer to the viewer.
		t := float64((hi - d) / span)
		return MultiplyColor(c, MinBrightness+(MaxBrightness-MinBrightness)*t)
	}
}

// screenPoint rounds a projected vertex to pixel coordinates. ok is false
// for non-finite or absurdly distant points.
func screenPoint(frame []float32, v int) (x, y int, ok bool) {
	fx, fy := float64(frame[v*3]), float64(frame[v*3+1])
	const limit = 1 << 20
	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > limit || math.Abs(fy) > limit {
		return 0, 0, false
	}
	return int(math.Round(fx)), int(math.Round(fy)), true
}

func isNaN32(f float32) bool {
	return f != f
}
