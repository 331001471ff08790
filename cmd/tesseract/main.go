// tesseract - Terminal N-dimensional Polytope Viewer
// Spin hypercubes, simplices and orthoplexes of any dimension in your terminal.
//
// Controls:
//
//	1/2/3   - Cube / simplex / orthoplex
//	+/-     - Raise/lower the dimension
//	P       - Toggle spread/ortho projection
//	Space   - Apply random impulse
//	S       - Pause/resume steady spin
//	R       - Reset rotation
//	?       - Toggle HUD overlay
//	Esc/Q   - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tesseract"
	"github.com/taigrr/tesseract/internal/config"
	"github.com/taigrr/tesseract/pkg/models"
	"github.com/taigrr/tesseract/pkg/polytope"
	"github.com/taigrr/tesseract/pkg/render"
)

var (
	shapeName  = flag.String("shape", "cube", "Shape: cube, simplex or orthoplex")
	dimension  = flag.Int("dim", 4, "Dimension")
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "20,20,30", "Background color (R,G,B)")
	fgColor    = flag.String("color", "0,255,128", "Edge color (R,G,B)")
	projection = flag.String("projection", config.ProjectionSpread, "Projection: spread or ortho")
	configPath = flag.String("config", "", "Path to TOML config file")
	logPath    = flag.String("log", "", "Write debug log to file")
	snapshot   = flag.String("snapshot", "", "Render one frame to a PNG file and exit")
	exportPath = flag.String("export", "", "Export the rotated shape as GLB and exit")
	frameSize  = flag.String("size", "640x360", "Snapshot size (WxH)")
	spinFor    = flag.Float64("at", 1.5, "Seconds of spin before -snapshot/-export")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tesseract - Terminal N-dimensional Polytope Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tesseract [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1/2/3       - Cube / simplex / orthoplex\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Raise/lower dimension\n")
		fmt.Fprintf(os.Stderr, "  P           - Toggle projection\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  S           - Pause/resume\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and overlays explicitly set flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Shape = *shapeName
		case "dim":
			cfg.Dimension = *dimension
		case "fps":
			cfg.FPS = *targetFPS
		case "bg":
			cfg.Background = *bgColor
		case "color":
			cfg.Color = *fgColor
		case "projection":
			cfg.Projection = *projection
		}
	})
	return cfg, cfg.Validate()
}

// setupLogging routes debug records to path. The returned func closes it.
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	tesseract.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() {
		tesseract.SetLogger(nil)
		f.Close()
	}, nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: must be positive", s)
	}
	return w, h, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bg, err := render.ParseColor(cfg.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := render.ParseColor(cfg.Color)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	scene, err := NewScene(cfg)
	if err != nil {
		return err
	}

	if *snapshot != "" || *exportPath != "" {
		return runOffline(scene, bg, fg)
	}
	return runInteractive(scene, cfg.FPS, bg, fg)
}

// runOffline advances the spin by -at seconds and writes the requested files.
func runOffline(scene *Scene, bg, fg render.Color) error {
	frames := int(*spinFor * float64(scene.fps))
	for range frames {
		scene.Spinner.Update(1 / float64(scene.fps))
	}

	var errs []error
	if *snapshot != "" {
		w, h, err := parseSize(*frameSize)
		if err != nil {
			return err
		}
		fb := render.NewFramebuffer(w, h)
		wire := render.NewWireframe(fb)
		wire.DotRadius = max(min(w, h)/200, 1)
		if err := scene.Draw(context.Background(), wire, bg, fg); err != nil {
			return err
		}
		if err := fb.SavePNG(*snapshot); err != nil {
			errs = append(errs, fmt.Errorf("snapshot: %w", err))
		} else {
			fmt.Printf("Wrote %s (%dx%d, %s)\n", *snapshot, w, h, scene.Title())
		}
	}
	if *exportPath != "" {
		mesh := scene.Mesh()
		if err := models.ExportGLB(*exportPath, mesh); err != nil {
			errs = append(errs, fmt.Errorf("export: %w", err))
		} else {
			fmt.Printf("Wrote %s (%d vertices, %d edges)\n", *exportPath, mesh.VertexCount(), mesh.EdgeCount())
		}
	}
	return errors.Join(errs...)
}

func runInteractive(scene *Scene, fps int, bg, fg render.Color) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Half-block cells: two framebuffer rows per terminal row.
	fb := render.NewFramebuffer(width, height*2)
	wire := render.NewWireframe(fb)

	hud := NewHUD()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	sceneErr := func(err error) {
		if err != nil {
			tesseract.Logger().Warn("scene change failed", "err", err)
		}
	}

	handle := func(ev uv.Event) (quit bool) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			fb = render.NewFramebuffer(width, height*2)
			wire = render.NewWireframe(fb)

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape", "ctrl+c", "q"):
				return true
			case ev.MatchString("1"):
				sceneErr(scene.SetKind(polytope.Cube))
			case ev.MatchString("2"):
				sceneErr(scene.SetKind(polytope.Simplex))
			case ev.MatchString("3"):
				sceneErr(scene.SetKind(polytope.Orthoplex))
			case ev.MatchString("+", "="):
				sceneErr(scene.StepDimension(1))
			case ev.MatchString("-", "_"):
				sceneErr(scene.StepDimension(-1))
			case ev.MatchString("p"):
				scene.ToggleProjection()
			case ev.MatchString("space"):
				scene.Spinner.ApplyImpulse(rng, 0.3)
			case ev.MatchString("s"):
				scene.Spinner.TogglePause()
			case ev.MatchString("r"):
				scene.Spinner.Reset()
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				hud.Visible = !hud.Visible
			}
		}
		return false
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(fps)
	lastFrame := time.Now()

	for {
		// Drain pending input before drawing the frame.
	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev, ok := <-events:
				if !ok || handle(ev) {
					cleanup()
					return nil
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		scene.Spinner.Update(dt)
		if err := scene.Draw(ctx, wire, bg, fg); err != nil {
			// Interrupted mid-frame.
			cleanup()
			return nil
		}

		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(os.Stdout, width, height, scene)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
