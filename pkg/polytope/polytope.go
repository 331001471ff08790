// Package polytope generates vertex and edge buffers for regular
// N-dimensional polytopes.
//
// Vertices are laid out row-major in a flat []float32, Dimension scalars per
// vertex. Edges are flattened pairs of vertex indices in a []uint32.
package polytope

import (
	"fmt"

	"github.com/taigrr/tesseract/internal/logging"
)

// MinDimension is the smallest dimension a polytope is generated in.
// Smaller requests are clamped up to it.
const MinDimension = 2

// Kind selects a polytope family.
type Kind int

const (
	Cube      Kind = iota // n-cube (hypercube)
	Simplex               // n-simplex
	Orthoplex             // n-orthoplex (cross-polytope)
)

var kindNames = [...]string{
	Cube:      "cube",
	Simplex:   "simplex",
	Orthoplex: "orthoplex",
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{Cube, Simplex, Orthoplex}
}

// String returns the canonical shape name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. Names match exactly.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("polytope: %w: %q", ErrUnsupportedShapeKind, s)
}

// Shape is a generated polytope.
type Shape struct {
	Kind      Kind
	Dimension int
	Vertices  []float32 // row-major, Dimension scalars per vertex
	Edges     []uint32  // flattened (a, b) vertex index pairs
}

// VertexCount returns the number of vertices.
func (s *Shape) VertexCount() int {
	if s.Dimension <= 0 {
		return 0
	}
	return len(s.Vertices) / s.Dimension
}

// EdgeCount returns the number of edges.
func (s *Shape) EdgeCount() int {
	return len(s.Edges) / 2
}

// Vertex returns the coordinates of vertex i. The slice aliases s.Vertices.
func (s *Shape) Vertex(i int) []float32 {
	return s.Vertices[i*s.Dimension : (i+1)*s.Dimension]
}

// Edge returns the endpoints of edge i.
func (s *Shape) Edge(i int) (a, b uint32) {
	return s.Edges[2*i], s.Edges[2*i+1]
}

// Clone creates a deep copy of the shape.
func (s *Shape) Clone() *Shape {
	clone := &Shape{
		Kind:      s.Kind,
		Dimension: s.Dimension,
		Vertices:  make([]float32, len(s.Vertices)),
		Edges:     make([]uint32, len(s.Edges)),
	}
	copy(clone.Vertices, s.Vertices)
	copy(clone.Edges, s.Edges)
	return clone
}

// Build generates the polytope of the given kind in dimension dimensions.
// Dimensions below MinDimension are clamped to MinDimension. Dimensions
// whose shape cannot be addressed fail with ErrDimensionTooLarge.
func Build(kind Kind, dimension int) (*Shape, error) {
	dimension = max(dimension, MinDimension)
	if err := checkSize(kind, dimension); err != nil {
		return nil, fmt.Errorf("polytope: %w", err)
	}

	var (
		shape *Shape
		err   error
	)
	switch kind {
	case Cube:
		shape = buildHypercube(dimension)
	case Simplex:
		shape, err = buildSimplex(dimension)
	case Orthoplex:
		shape = buildOrthoplex(dimension)
	default:
		return nil, fmt.Errorf("polytope: %w: %q", ErrUnsupportedShapeKind, kind.String())
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", kind, err)
	}

	logging.Logger().Debug("polytope built",
		"kind", kind.String(),
		"dimension", dimension,
		"vertices", shape.VertexCount(),
		"edges", shape.EdgeCount(),
	)
	return shape, nil
}

// BuildNamed parses name and builds the matching polytope.
func BuildNamed(name string, dimension int) (*Shape, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return Build(kind, dimension)
}
