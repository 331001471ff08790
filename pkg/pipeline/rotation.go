package pipeline

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/taigrr/tesseract/internal/logging"
)

// Rotation is a plane rotation with its trigonometry already evaluated.
type Rotation struct {
	I, J     int // axes spanning the rotation plane
	Cos, Sin float32
}

// NewRotation returns the rotation by angle (radians) in the (i, j) plane.
func NewRotation(i, j int, angle float32) Rotation {
	return Rotation{I: i, J: j, Cos: math32.Cos(angle), Sin: math32.Sin(angle)}
}

// CompileRotations pairs flattened plane indices with angles by position and
// evaluates cos/sin once per surviving rotation.
//
// An entry is skipped when its plane pair is incomplete, it has no angle, its
// angle is exactly zero, or either axis is >= dimension. Skipping is silent;
// order of the survivors is preserved.
func CompileRotations(planes []uint32, angles []float32, dimension int) []Rotation {
	rots := make([]Rotation, 0, min(len(planes)/2, len(angles)))
	skipped := 0

	for idx := 0; 2*idx < len(planes); idx++ {
		if 2*idx+1 >= len(planes) || idx >= len(angles) {
			skipped++
			continue
		}
		angle := angles[idx]
		if angle == 0 {
			skipped++
			continue
		}
		i, j := int(planes[2*idx]), int(planes[2*idx+1])
		if i >= dimension || j >= dimension {
			skipped++
			continue
		}
		rots = append(rots, NewRotation(i, j, angle))
	}

	if skipped > 0 && logging.Enabled(slog.LevelDebug) {
		logging.Logger().Debug("rotations skipped",
			"skipped", skipped,
			"kept", len(rots),
			"dimension", dimension,
		)
	}
	return rots
}

// Rotate applies rots in order to every vertex of the row-major buffer work,
// in place. Trailing scalars that do not form a whole vertex are left alone.
func Rotate(work []float32, dimension int, rots []Rotation) {
	if dimension <= 0 {
		return
	}
	rotateRange(work, dimension, rots, 0, len(work)/dimension)
}

// rotateRange rotates vertices [lo, hi).
func rotateRange(work []float32, dimension int, rots []Rotation, lo, hi int) {
	for _, r := range rots {
		for v := lo; v < hi; v++ {
			base := v * dimension
			xi := work[base+r.I]
			xj := work[base+r.J]
			work[base+r.I] = xi*r.Cos - xj*r.Sin
			work[base+r.J] = xi*r.Sin + xj*r.Cos
		}
	}
}
