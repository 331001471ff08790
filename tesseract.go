// Package tesseract is a geometry kernel for animating regular N-dimensional
// polytopes.
//
// BuildShape generates the vertex and edge buffers of a hypercube, simplex or
// orthoplex. RotateProject rotates a vertex buffer through a list of plane
// rotations and projects it to (screenX, screenY, depth) triples. Both speak
// in flat numeric buffers so a host can call them once per frame across any
// boundary: vertices are row-major []float32 with dimension scalars per
// vertex, edges and rotation planes are flattened []uint32 pairs.
//
// Inputs are never retained or modified. Every returned buffer is newly
// allocated and owned by the caller.
//
// The kernel is silent by default; see SetLogger.
package tesseract

import (
	"log/slog"

	"github.com/taigrr/tesseract/internal/logging"
	"github.com/taigrr/tesseract/pkg/pipeline"
	"github.com/taigrr/tesseract/pkg/polytope"
)

// Errors returned by BuildShape. Use errors.Is to test for them.
var (
	ErrUnsupportedShapeKind = polytope.ErrUnsupportedShapeKind
	ErrDegenerateBasis      = polytope.ErrDegenerateBasis
	ErrDimensionTooLarge    = polytope.ErrDimensionTooLarge
)

// ShapeData is a generated polytope in flat-buffer form.
type ShapeData struct {
	Vertices    []float32 // row-major, Dimension scalars per vertex
	Edges       []uint32  // flattened (a, b) vertex index pairs
	Dimension   uint32    // dimension after clamping
	VertexCount uint32
}

// BuildShape generates the polytope named kind ("cube", "simplex" or
// "orthoplex"). Dimensions below 2 are clamped to 2. A cube above
// dimension 31, or any shape too large to address, fails with
// ErrDimensionTooLarge.
func BuildShape(kind string, dimension uint32) (ShapeData, error) {
	// Clamp before converting so huge uint32 values cannot wrap negative.
	dim := int(max(dimension, polytope.MinDimension))
	s, err := polytope.BuildNamed(kind, dim)
	if err != nil {
		return ShapeData{}, err
	}
	return ShapeData{
		Vertices:    s.Vertices,
		Edges:       s.Edges,
		Dimension:   uint32(s.Dimension),
		VertexCount: uint32(s.VertexCount()),
	}, nil
}

// RotateProject rotates a private copy of vertices by each (plane, angle)
// pair in order, then projects every vertex with projection (X weights
// followed by Y weights, dimension each):
//
//	screenX = halfWidth  + scale * Σ coord[d]*projection[d]
//	screenY = halfHeight + scale * Σ coord[d]*projection[dimension+d]
//
// depth is the last coordinate for dimension <= 2 and the mean of
// coordinates 2..dimension-1 otherwise. The result holds 3 scalars per
// vertex. RotateProject never fails: rotation entries that are incomplete,
// zero-angle or reference an axis >= dimension are skipped.
func RotateProject(vertices []float32, planes []uint32, angles []float32, projection []float32, dimension uint32, halfWidth, halfHeight, scale float32) []float32 {
	return pipeline.Transform(vertices, planes, angles, projection, pipeline.View{
		Dimension:  int(dimension),
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Scale:      scale,
	})
}

// SetLogger configures the logger used by tesseract and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Only debug records are emitted: one per built shape and one per
// RotateProject call that skipped rotation entries.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
