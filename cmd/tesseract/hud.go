package main

import (
	"fmt"
	"io"
	"time"
)

// HUD renders an overlay with shape info and controls.
type HUD struct {
	Visible bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 {
	return h.fps
}

// Render draws the HUD overlay with raw escape sequences.
func (h *HUD) Render(w io.Writer, width, height int, scene *Scene) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Fprint(w, moveTo(1, 1)+clearLine)
	fmt.Fprint(w, moveTo(height, 1)+clearLine)

	if !h.Visible {
		return
	}

	// Top left: FPS
	fmt.Fprintf(w, "%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: shape
	title := scene.Title()
	titleCol := max((width-len(title)-2)/2, 1)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, title, reset)

	// Top right: counts
	counts := fmt.Sprintf("%dv %de", scene.Shape.VertexCount(), scene.Shape.EdgeCount())
	countCol := max(width-len(counts)-2, 1)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(1, countCol), bgBlack, fgCyan, bold, counts, reset)

	// Bottom: projection, planes and hint
	paused := ""
	if scene.Spinner.Paused() {
		paused = " [paused]"
	}
	status := fmt.Sprintf(" %s projection  %d planes%s ", scene.Projection, len(scene.Spinner.Planes), paused)
	fmt.Fprintf(w, "%s%s%s%s%s", moveTo(height, 1), bgBlack, fgWhite, status, reset)

	hint := " 1/2/3 shape  +/- dim  p proj "
	hintCol := max(width-len(hint), 1)
	fmt.Fprintf(w, "%s%s%s%s%s%s", moveTo(height, hintCol), bgBlack, dim, fgYellow, hint, reset)
}
