package ndmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{1, 2, 3, 4}
	b := Vec{4, 3, 2, 1}

	assert.Equal(t, Vec{5, 5, 5, 5}, a.Add(b))
	assert.Equal(t, Vec{-3, -1, 1, 3}, a.Sub(b))
	assert.Equal(t, Vec{2, 4, 6, 8}, a.Scale(2))
	assert.Equal(t, 20.0, a.Dot(b))
	assert.Equal(t, 30.0, a.LenSq())
	assert.InDelta(t, math.Sqrt(30), a.Len(), 1e-12)
	assert.InDelta(t, math.Sqrt(20), a.Distance(b), 1e-12)

	// Operands are left untouched.
	assert.Equal(t, Vec{1, 2, 3, 4}, a)
}

func TestVecNormalize(t *testing.T) {
	n := Vec{0, 3, 0, 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n[1], 1e-12)
	assert.InDelta(t, 0.8, n[3], 1e-12)

	z := Zero(3).Normalize()
	assert.Equal(t, Vec{0, 0, 0}, z)
}

func TestVecCloneIsIndependent(t *testing.T) {
	a := Unit(3, 1)
	c := a.Clone()
	c[1] = 7
	assert.Equal(t, 1.0, a[1])
}

func TestVecFloat32(t *testing.T) {
	assert.Equal(t, []float32{0.5, -1, 2}, Vec{0.5, -1, 2}.Float32())
}

func TestGramSchmidtOrthonormal(t *testing.T) {
	candidates := []Vec{
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 1, 1},
		{2, 0, 0, 5},
	}
	basis := GramSchmidt(candidates, 4, Tolerance)
	require.Len(t, basis, 4)

	for i := range basis {
		for j := range basis {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, basis[i].Dot(basis[j]), 1e-12, "basis[%d]·basis[%d]", i, j)
		}
	}

	// The first basis vector keeps the direction of the first candidate.
	assert.InDelta(t, 1/math.Sqrt2, basis[0][0], 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, basis[0][1], 1e-12)
}

func TestGramSchmidtDropsDependentCandidates(t *testing.T) {
	candidates := []Vec{
		{1, 0, 0},
		{2, 0, 0}, // parallel to the first
		{0, 0, 0}, // zero
		{1, 1, 0},
	}
	basis := GramSchmidt(candidates, 3, Tolerance)
	require.Len(t, basis, 2)
	assert.InDelta(t, 0.0, basis[0].Dot(basis[1]), 1e-12)
	assert.InDelta(t, 1.0, basis[1][1], 1e-12)
}

func TestGramSchmidtStopsAtTarget(t *testing.T) {
	candidates := []Vec{Unit(3, 0), Unit(3, 1), Unit(3, 2)}
	basis := GramSchmidt(candidates, 2, Tolerance)
	require.Len(t, basis, 2)
	assert.Equal(t, Unit(3, 0), basis[0])
	assert.Equal(t, Unit(3, 1), basis[1])

	assert.Empty(t, GramSchmidt(candidates, 0, Tolerance))
}

func TestGramSchmidtDoesNotMutateCandidates(t *testing.T) {
	candidates := []Vec{{3, 4}, {1, 0}}
	GramSchmidt(candidates, 2, Tolerance)
	assert.Equal(t, Vec{3, 4}, candidates[0])
	assert.Equal(t, Vec{1, 0}, candidates[1])
}
