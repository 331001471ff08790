package main

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/tesseract/internal/config"
	"github.com/taigrr/tesseract/pkg/models"
	"github.com/taigrr/tesseract/pkg/polytope"
	"github.com/taigrr/tesseract/pkg/render"
)

func newTestScene(t *testing.T, shape string, dim int) *Scene {
	t.Helper()
	cfg := config.Default()
	cfg.Shape = shape
	cfg.Dimension = dim
	s, err := NewScene(cfg)
	require.NoError(t, err)
	return s
}

func TestNewSceneRejectsUnknownShape(t *testing.T) {
	cfg := config.Default()
	cfg.Shape = "tesseract"
	_, err := NewScene(cfg)
	assert.Error(t, err)
}

func TestSceneSwitching(t *testing.T) {
	s := newTestScene(t, "cube", 4)
	require.Equal(t, 16, s.Shape.VertexCount())

	require.NoError(t, s.SetKind(polytope.Orthoplex))
	assert.Equal(t, 8, s.Shape.VertexCount())
	assert.Equal(t, "4-orthoplex", s.Title())

	require.NoError(t, s.StepDimension(1))
	assert.Equal(t, 5, s.Dimension)
	assert.Equal(t, 5, s.Shape.Dimension)
	assert.Len(t, s.proj, 10)

	for range 10 {
		_ = s.StepDimension(-1)
	}
	assert.Equal(t, polytope.MinDimension, s.Dimension, "dimension floor")
	for range 20 {
		_ = s.StepDimension(1)
	}
	assert.Equal(t, config.MaxDimension, s.Dimension, "dimension ceiling")
}

func TestSceneToggleProjection(t *testing.T) {
	s := newTestScene(t, "simplex", 3)
	require.Equal(t, config.ProjectionSpread, s.Projection)

	s.ToggleProjection()
	assert.Equal(t, config.ProjectionOrtho, s.Projection)
	assert.Equal(t, float32(1), s.proj[0])
	assert.Equal(t, float32(1), s.proj[4])

	s.ToggleProjection()
	assert.Equal(t, config.ProjectionSpread, s.Projection)
}

func TestSceneFrameFitsFramebuffer(t *testing.T) {
	ctx := context.Background()
	for _, shape := range []string{"cube", "simplex", "orthoplex"} {
		for _, dim := range []int{2, 3, 5, 8} {
			s := newTestScene(t, shape, dim)
			for range 30 {
				s.Spinner.Update(0.37)
				frame, err := s.Frame(ctx, 200, 100)
				require.NoError(t, err)
				require.Len(t, frame, 3*s.Shape.VertexCount(), "%s%d", shape, dim)
				for v := 0; v < len(frame); v += 3 {
					x, y := frame[v], frame[v+1]
					require.Truef(t, x >= 0 && x <= 200 && y >= 0 && y <= 100,
						"%s%d: vertex %d at (%v, %v) outside frame", shape, dim, v/3, x, y)
				}
			}
		}
	}
}

func TestSceneDraw(t *testing.T) {
	s := newTestScene(t, "cube", 4)
	fb := render.NewFramebuffer(80, 60)
	require.NoError(t, s.Draw(context.Background(), render.NewWireframe(fb), render.ColorBlack, render.ColorGreen))

	lit := 0
	for _, p := range fb.Pixels {
		if p != render.ColorBlack {
			lit++
		}
	}
	assert.NotZero(t, lit, "nothing drawn")
}

func TestSceneDrawCanceled(t *testing.T) {
	s := newTestScene(t, "cube", 4)
	fb := render.NewFramebuffer(80, 60)
	fb.Clear(render.ColorNight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Draw(ctx, render.NewWireframe(fb), render.ColorBlack, render.ColorGreen)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, render.ColorNight, fb.GetPixel(0, 0), "framebuffer touched after cancel")
}

func TestSceneRotatedPreservesNorms(t *testing.T) {
	s := newTestScene(t, "cube", 5)
	s.Spinner.Update(1.3)
	rot := s.Rotated()
	want := math.Sqrt(5)
	for v := range s.Shape.VertexCount() {
		var sq float64
		for _, c := range rot[v*5 : v*5+5] {
			sq += float64(c) * float64(c)
		}
		require.InDelta(t, want, math.Sqrt(sq), 1e-4, "vertex %d", v)
	}
}

func TestSceneMeshExport(t *testing.T) {
	s := newTestScene(t, "orthoplex", 4)
	s.Spinner.Update(0.5)
	mesh := s.Mesh()
	require.Equal(t, "orthoplex4", mesh.Name)
	require.Equal(t, 8, mesh.VertexCount())
	require.Equal(t, 24, mesh.EdgeCount())

	path := filepath.Join(t.TempDir(), "o4.glb")
	require.NoError(t, models.ExportGLB(path, mesh))
	got, err := models.LoadGLB(path)
	require.NoError(t, err)
	assert.Equal(t, 24, got.EdgeCount())
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640x360")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)

	for _, bad := range []string{"640", "ax3", "3xb", "0x10", "-1x4"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, "parseSize(%q)", bad)
	}
}
