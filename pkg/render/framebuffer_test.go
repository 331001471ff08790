package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countColor(fb *Framebuffer, c Color) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestNewFramebufferNegativeSize(t *testing.T) {
	fb := NewFramebuffer(-4, 3)
	assert.Zero(t, fb.Width)
	assert.Equal(t, 3, fb.Height)
	assert.Empty(t, fb.Pixels)
}

func TestFramebufferClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {17, 9}} {
		fb := NewFramebuffer(size[0], size[1])
		fb.Clear(ColorNight)
		assert.Equal(t, len(fb.Pixels), countColor(fb, ColorNight), "%dx%d", size[0], size[1])
	}
	NewFramebuffer(0, 0).Clear(ColorWhite)
}

func TestFramebufferPixelBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(4, 0, ColorWhite)
	fb.SetPixel(0, 4, ColorWhite)
	require.Equal(t, len(fb.Pixels), countColor(fb, Color{}), "out-of-bounds SetPixel wrote a pixel")
	assert.Equal(t, Color{}, fb.GetPixel(9, 9))

	fb.SetPixel(2, 3, ColorGreen)
	assert.Equal(t, ColorGreen, fb.GetPixel(2, 3))
}

func TestFramebufferCenter(t *testing.T) {
	hw, hh := NewFramebuffer(80, 45).Center()
	assert.Equal(t, float32(40), hw)
	assert.Equal(t, float32(22.5), hh)
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		count          int
	}{
		{"horizontal", 1, 2, 8, 2, 8},
		{"vertical", 3, 7, 3, 0, 8},
		{"diagonal", 0, 0, 5, 5, 6},
		{"point", 4, 4, 4, 4, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)
			assert.Equal(t, ColorWhite, fb.GetPixel(tc.x0, tc.y0))
			assert.Equal(t, ColorWhite, fb.GetPixel(tc.x1, tc.y1))
			assert.Equal(t, tc.count, countColor(fb, ColorWhite))
		})
	}
}

func TestDrawLineClipsOffscreen(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.DrawLine(-10, 1, 20, 1, ColorWhite)
	for x := range 4 {
		assert.Equal(t, ColorWhite, fb.GetPixel(x, 1), "pixel (%d,1)", x)
	}
}

func TestDrawLineGradient(t *testing.T) {
	fb := NewFramebuffer(11, 1)
	black, white := RGB(0, 0, 0), RGB(200, 200, 200)
	fb.DrawLineGradient(0, 0, black, 10, 0, white)

	assert.Equal(t, black, fb.GetPixel(0, 0))
	assert.Equal(t, white, fb.GetPixel(10, 0))
	assert.Equal(t, uint8(100), fb.GetPixel(5, 0).R)
	for x := 1; x < 11; x++ {
		require.GreaterOrEqual(t, fb.GetPixel(x, 0).R, fb.GetPixel(x-1, 0).R, "gradient not monotonic at %d", x)
	}
}

func TestDrawDot(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.DrawDot(2, 2, 1, ColorGreen)
	assert.Equal(t, 9, countColor(fb, ColorGreen))

	fb.Clear(Color{})
	fb.DrawDot(0, 0, -3, ColorGreen)
	assert.Equal(t, ColorGreen, fb.GetPixel(0, 0))
	assert.NotEqual(t, ColorGreen, fb.GetPixel(1, 0), "negative radius should draw a single pixel")
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(6, 4)
	fb.Clear(ColorNight)
	fb.SetPixel(5, 3, ColorGreen)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, fb.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 6, b.Dx())
	assert.Equal(t, 4, b.Dy())
	r, g, bl, _ := img.At(5, 3).RGBA()
	assert.Equal(t, [3]uint32{0, 255, 128}, [3]uint32{r >> 8, g >> 8, bl >> 8})
}

func TestSavePNGBadPath(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	assert.Error(t, fb.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")))
}

func BenchmarkClear(b *testing.B) {
	fb := NewFramebuffer(320, 180)
	for b.Loop() {
		fb.Clear(ColorNight)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	fb := NewFramebuffer(320, 180)
	for b.Loop() {
		fb.DrawLineGradient(0, 0, ColorWhite, 319, 179, ColorBlack)
	}
}
