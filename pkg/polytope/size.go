package polytope

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxCubeDimension is the largest cube dimension whose 2^d vertices can be
// counted in a uint32.
const MaxCubeDimension = 31

// checkSize rejects dimensions whose vertex count overflows uint32 or whose
// largest buffer cannot be allocated. Unknown kinds pass.
func checkSize(kind Kind, dimension int) error {
	d := uint64(dimension)
	var vertices, scalars uint64
	switch kind {
	case Cube:
		if dimension > MaxCubeDimension {
			return fmt.Errorf("cube: %w: %d > %d", ErrDimensionTooLarge, dimension, MaxCubeDimension)
		}
		vertices = 1 << d
		scalars = d * vertices // vertex and edge buffers have the same length
	case Simplex:
		vertices = d + 1
		scalars = mulOrMax(vertices, vertices) // float64 raw vectors
	case Orthoplex:
		vertices = 2 * d
		scalars = mulOrMax(2*vertices, d-1) // 2d(d-1) edge pairs
	default:
		return nil
	}

	if vertices > math.MaxUint32 || scalars > math.MaxInt/8 {
		return fmt.Errorf("%s: %w: %d", kind, ErrDimensionTooLarge, dimension)
	}
	return nil
}

// mulOrMax returns a*b, or MaxUint64 when the product overflows.
func mulOrMax(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
