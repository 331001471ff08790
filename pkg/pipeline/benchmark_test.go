package pipeline

import (
	"context"
	"testing"

	"github.com/taigrr/tesseract/pkg/polytope"
)

func benchmarkInputs(b *testing.B, dim int) ([]float32, []uint32, []float32, []float32, View) {
	b.Helper()
	shape, err := polytope.Build(polytope.Cube, dim)
	if err != nil {
		b.Fatal(err)
	}
	var planes []uint32
	var angles []float32
	for i := 0; i+1 < dim; i++ {
		planes = append(planes, uint32(i), uint32(i+1))
		angles = append(angles, 0.1*float32(i+1))
	}
	return shape.Vertices, planes, angles, SpreadProjection(dim), View{Dimension: dim, HalfWidth: 80, HalfHeight: 40, Scale: 10}
}

func BenchmarkTransformCube4(b *testing.B) {
	v, p, a, proj, view := benchmarkInputs(b, 4)

	for b.Loop() {
		_ = Transform(v, p, a, proj, view)
	}
}

func BenchmarkTransformCube12(b *testing.B) {
	v, p, a, proj, view := benchmarkInputs(b, 12)

	for b.Loop() {
		_ = Transform(v, p, a, proj, view)
	}
}

func BenchmarkPipelineCube12(b *testing.B) {
	v, p, a, proj, view := benchmarkInputs(b, 12)
	pl := New(WithMinParallelVertices(1))
	ctx := context.Background()

	for b.Loop() {
		_, _ = pl.Transform(ctx, v, p, a, proj, view)
	}
}

func BenchmarkCompileRotations(b *testing.B) {
	planes := []uint32{0, 1, 1, 2, 2, 3, 0, 3, 9, 0}
	angles := []float32{0.1, 0.2, 0, 0.4, 0.5}

	for b.Loop() {
		_ = CompileRotations(planes, angles, 4)
	}
}
