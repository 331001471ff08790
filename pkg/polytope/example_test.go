package polytope_test

import (
	"errors"
	"fmt"

	"github.com/taigrr/tesseract/pkg/polytope"
)

func ExampleBuild() {
	s, err := polytope.Build(polytope.Cube, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Kind, s.Dimension, s.VertexCount(), s.EdgeCount())
	// Output: cube 4 16 32
}

func ExampleBuildNamed() {
	_, err := polytope.BuildNamed("tesseract", 4)
	fmt.Println(errors.Is(err, polytope.ErrUnsupportedShapeKind))
	fmt.Println(err)
	// Output:
	// true
	// polytope: unsupported shape kind: "tesseract"
}
