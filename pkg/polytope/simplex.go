package polytope

import (
	"fmt"

	"github.com/taigrr/tesseract/pkg/ndmath"
)

// buildSimplex generates the regular n-simplex centred on the origin.
//
// The dimension+1 raw vertices live in (dimension+1)-space with 1-1/count on
// the diagonal and -1/count elsewhere, so every pair is sqrt(2) apart and they
// sum to zero. An orthonormal basis of their hyperplane, taken from the first
// count-1 raw vectors, maps them down to dimension coordinates without
// changing pairwise distances.
func buildSimplex(dimension int) (*Shape, error) {
	return buildSimplexTol(dimension, ndmath.Tolerance)
}

// buildSimplexTol is buildSimplex with an explicit Gram–Schmidt tolerance.
func buildSimplexTol(dimension int, tol float64) (*Shape, error) {
	count := dimension + 1
	inv := 1 / float64(count)

	raw := make([]ndmath.Vec, count)
	for i := range raw {
		v := ndmath.Zero(count)
		for j := range v {
			v[j] = -inv
		}
		v[i] = 1 - inv
		raw[i] = v
	}

	basis := ndmath.GramSchmidt(raw[:count-1], dimension, tol)
	if len(basis) < dimension {
		return nil, fmt.Errorf("simplex basis has %d of %d vectors: %w", len(basis), dimension, ErrDegenerateBasis)
	}

	vertices := make([]float32, 0, count*dimension)
	for _, r := range raw {
		for _, b := range basis {
			vertices = append(vertices, float32(r.Dot(b)))
		}
	}

	edges := make([]uint32, 0, count*(count-1))
	for i := range count {
		for j := i + 1; j < count; j++ {
			edges = append(edges, uint32(i), uint32(j))
		}
	}

	return &Shape{
		Kind:      Simplex,
		Dimension: dimension,
		Vertices:  vertices,
		Edges:     edges,
	}, nil
}
