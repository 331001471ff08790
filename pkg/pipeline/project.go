package pipeline

import (
	"math"

	"github.com/chewxy/math32"
)

// View holds the scalar screen parameters of a projection.
type View struct {
	Dimension  int     // scalars per vertex
	HalfWidth  float32 // screen-space X offset
	HalfHeight float32 // screen-space Y offset
	Scale      float32 // screen units per world unit
}

// Project writes (screenX, screenY, depth) for every whole vertex in work to out.
//
// projection holds the X weights followed by the Y weights, Dimension each;
// weights past the end of projection read as zero. Depth is the last
// coordinate when Dimension <= 2, otherwise the mean of coordinates
// 2..Dimension-1. out must hold at least 3 scalars per vertex.
func Project(work, projection []float32, view View, out []float32) {
	if view.Dimension <= 0 {
		return
	}
	projectRange(work, projection, view, out, 0, len(work)/view.Dimension)
}

// projectRange projects vertices [lo, hi).
func projectRange(work, projection []float32, view View, out []float32, lo, hi int) {
	dim := view.Dimension
	for v := lo; v < hi; v++ {
		base := v * dim
		var projX, projY float32
		for d := range dim {
			coord := work[base+d]
			projX += coord * weight(projection, d)
			projY += coord * weight(projection, dim+d)
		}

		o := v * 3
		out[o] = view.HalfWidth + projX*view.Scale
		out[o+1] = view.HalfHeight + projY*view.Scale
		out[o+2] = depth(work[base:base+dim])
	}
}

func weight(projection []float32, i int) float32 {
	if i < len(projection) {
		return projection[i]
	}
	return 0
}

// depth is a cheap proxy for how far a vertex sits into the higher axes.
func depth(coords []float32) float32 {
	n := len(coords)
	if n == 0 {
		return 0
	}
	if n <= 2 {
		return coords[n-1]
	}
	tail := coords[2:]
	var sum float32
	for _, c := range tail {
		sum += c
	}
	return sum / float32(len(tail))
}

// OrthoProjection returns the projection that keeps axis 0 as X and axis 1
// as Y and discards every other axis.
func OrthoProjection(dimension int) []float32 {
	p := make([]float32, 2*dimension)
	if dimension > 0 {
		p[0] = 1
	}
	if dimension > 1 {
		p[dimension+1] = 1
	}
	return p
}

// SpreadProjection returns a projection that fans the axes out evenly over a
// half turn: axis d maps to (cos(dπ/n), sin(dπ/n)). Every axis contributes,
// which suits shapes whose structure lives in the higher axes.
func SpreadProjection(dimension int) []float32 {
	p := make([]float32, 2*dimension)
	for d := range dimension {
		angle := float32(d) * float32(math.Pi) / float32(dimension)
		p[d] = math32.Cos(angle)
		p[dimension+d] = math32.Sin(angle)
	}
	return p
}
