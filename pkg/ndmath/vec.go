// Package ndmath provides N-dimensional vector helpers for polytope generation.
package ndmath

import "math"

// Tolerance is the norm below which a residual vector is treated as zero.
const Tolerance = 1e-9

// Vec represents an N-dimensional vector.
// Binary operations assume both operands have the same length.
type Vec []float64

// Zero returns the zero vector of length n.
func Zero(n int) Vec {
	return make(Vec, n)
}

// Unit returns the unit vector of length n pointing along axis.
func Unit(n, axis int) Vec {
	v := make(Vec, n)
	v[axis] = 1
	return v
}

// Clone returns an independent copy of a.
func (a Vec) Clone() Vec {
	c := make(Vec, len(a))
	copy(c, a)
	return c
}

// Add returns the vector sum a + b.
func (a Vec) Add(b Vec) Vec {
	r := make(Vec, len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub returns the vector difference a - b.
func (a Vec) Sub(b Vec) Vec {
	r := make(Vec, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

// Scale returns the scalar product a * s.
func (a Vec) Scale(s float64) Vec {
	r := make(Vec, len(a))
	for i := range a {
		r[i] = a[i] * s
	}
	return r
}

// Dot returns the dot product a · b.
func (a Vec) Dot(b Vec) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec) LenSq() float64 {
	return a.Dot(a)
}

// Len returns the length (magnitude) of the vector.
func (a Vec) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (a Vec) Normalize() Vec {
	l := a.Len()
	if l == 0 {
		return Zero(len(a))
	}
	return a.Scale(1 / l)
}

// Distance returns the distance between two points.
func (a Vec) Distance(b Vec) float64 {
	return a.Sub(b).Len()
}

// Float32 converts the vector to float32 components.
func (a Vec) Float32() []float32 {
	r := make([]float32, len(a))
	for i, x := range a {
		r[i] = float32(x)
	}
	return r
}
