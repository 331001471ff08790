package main

import (
	"context"
	"fmt"
	"math"

	"github.com/taigrr/tesseract/internal/config"
	"github.com/taigrr/tesseract/internal/logging"
	"github.com/taigrr/tesseract/pkg/models"
	"github.com/taigrr/tesseract/pkg/pipeline"
	"github.com/taigrr/tesseract/pkg/polytope"
	"github.com/taigrr/tesseract/pkg/render"
)

// fill is the share of the smaller framebuffer half-extent the shape may use.
const fill = 0.85

// Scene is the polytope being viewed plus its spin and projection state.
type Scene struct {
	Kind       polytope.Kind
	Dimension  int
	Projection string

	Shape   *polytope.Shape
	Spinner *Spinner

	fps    int
	planes []config.PlaneConfig
	pipe   *pipeline.Pipeline
	proj   []float32
	radius float32 // largest vertex norm; rotation preserves it
}

// NewScene builds the scene described by cfg. cfg must be valid.
func NewScene(cfg config.Config) (*Scene, error) {
	kind, err := polytope.ParseKind(cfg.Shape)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Kind:       kind,
		Dimension:  cfg.Dimension,
		Projection: cfg.Projection,
		fps:        cfg.FPS,
		planes:     cfg.Planes,
		pipe:       pipeline.New(),
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild regenerates the shape, spinner and projection for the current
// kind and dimension.
func (s *Scene) rebuild() error {
	shape, err := polytope.Build(s.Kind, s.Dimension)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	s.Shape = shape
	s.Dimension = shape.Dimension
	s.Spinner = NewSpinner(s.fps, s.Dimension, s.planes)
	s.proj = projectionFor(s.Projection, s.Dimension)

	s.radius = 0
	for v := range shape.VertexCount() {
		var sq float32
		for _, c := range shape.Vertex(v) {
			sq += c * c
		}
		s.radius = max(s.radius, float32(math.Sqrt(float64(sq))))
	}

	logging.Logger().Info("scene",
		"kind", s.Kind.String(),
		"dimension", s.Dimension,
		"vertices", shape.VertexCount(),
		"edges", shape.EdgeCount(),
		"planes", len(s.Spinner.Planes),
		"projection", s.Projection,
	)
	return nil
}

func projectionFor(mode string, dimension int) []float32 {
	if mode == config.ProjectionOrtho {
		return pipeline.OrthoProjection(dimension)
	}
	return pipeline.SpreadProjection(dimension)
}

// SetKind switches the shape kind, keeping the dimension.
func (s *Scene) SetKind(k polytope.Kind) error {
	if k == s.Kind {
		return nil
	}
	s.Kind = k
	return s.rebuild()
}

// StepDimension changes the dimension by delta within
// [polytope.MinDimension, config.MaxDimension].
func (s *Scene) StepDimension(delta int) error {
	d := min(max(s.Dimension+delta, polytope.MinDimension), config.MaxDimension)
	if d == s.Dimension {
		return nil
	}
	s.Dimension = d
	return s.rebuild()
}

// ToggleProjection switches between the spread and ortho projections.
func (s *Scene) ToggleProjection() {
	if s.Projection == config.ProjectionOrtho {
		s.Projection = config.ProjectionSpread
	} else {
		s.Projection = config.ProjectionOrtho
	}
	s.proj = projectionFor(s.Projection, s.Dimension)
}

// Scale returns the pixels-per-unit factor that keeps the shape inside a
// framebuffer of the given size at any rotation.
func (s *Scene) Scale(width, height int) float32 {
	extent := s.radius * max(rowNorm(s.proj[:s.Dimension]), rowNorm(s.proj[s.Dimension:]))
	if extent <= 0 {
		return 1
	}
	return fill * float32(min(width, height)) / 2 / extent
}

func rowNorm(row []float32) float32 {
	var sq float32
	for _, w := range row {
		sq += w * w
	}
	return float32(math.Sqrt(float64(sq)))
}

// Frame rotates the shape by the spinner's current angles and projects it
// onto a width x height framebuffer.
func (s *Scene) Frame(ctx context.Context, width, height int) ([]float32, error) {
	planes, angles := s.Spinner.Rotations()
	return s.pipe.Transform(ctx, s.Shape.Vertices, planes, angles, s.proj, pipeline.View{
		Dimension:  s.Dimension,
		HalfWidth:  float32(width) / 2,
		HalfHeight: float32(height) / 2,
		Scale:      s.Scale(width, height),
	})
}

// Draw clears fb and draws the current frame.
func (s *Scene) Draw(ctx context.Context, w *render.Wireframe, bg, fg render.Color) error {
	fb := w.Framebuffer()
	frame, err := s.Frame(ctx, fb.Width, fb.Height)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	fb.Clear(bg)
	w.Draw(frame, s.Shape.Edges, fg)
	return nil
}

// Rotated returns a copy of the shape's vertices rotated by the spinner's
// current angles, still in N dimensions.
func (s *Scene) Rotated() []float32 {
	planes, angles := s.Spinner.Rotations()
	work := append([]float32(nil), s.Shape.Vertices...)
	pipeline.Rotate(work, s.Dimension, pipeline.CompileRotations(planes, angles, s.Dimension))
	return work
}

// Mesh returns the current pose as a 3D line mesh.
func (s *Scene) Mesh() *models.LineMesh {
	name := fmt.Sprintf("%s%d", s.Kind, s.Dimension)
	return models.FromFrame(name, s.Rotated(), s.Dimension, s.Shape.Edges)
}

// Title names the scene for the HUD.
func (s *Scene) Title() string {
	return fmt.Sprintf("%d-%s", s.Dimension, s.Kind)
}
