package pipeline_test

import (
	"fmt"
	"math"

	"github.com/taigrr/tesseract/pkg/pipeline"
)

func ExampleTransform() {
	out := pipeline.Transform(
		[]float32{1, 0},        // one 2D vertex
		[]uint32{0, 1},         // rotate in the (0, 1) plane
		[]float32{math.Pi / 2}, // by a quarter turn
		[]float32{1, 0, 0, 1},  // identity projection
		pipeline.View{Dimension: 2, HalfWidth: 100, HalfHeight: 100, Scale: 50},
	)
	fmt.Printf("%.1f %.1f %.1f\n", out[0], out[1], out[2])
	// Output: 100.0 150.0 1.0
}
