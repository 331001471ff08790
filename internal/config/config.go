// Package config loads viewer settings from an optional TOML file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/tesseract/pkg/polytope"
)

// Projection modes understood by the viewer.
const (
	ProjectionOrtho  = "ortho"
	ProjectionSpread = "spread"
)

// MaxDimension bounds the viewer; vertex counts grow as 2^d for cubes.
const MaxDimension = 12

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// PlaneConfig is one continuously spinning rotation plane.
type PlaneConfig struct {
	Axes  [2]int  `toml:"axes"`
	Speed float64 `toml:"speed"` // radians per second
}

// Config holds the viewer settings.
type Config struct {
	Shape      string        `toml:"shape"`
	Dimension  int           `toml:"dimension"`
	FPS        int           `toml:"fps"`
	Projection string        `toml:"projection"`
	Background string        `toml:"background"` // "R,G,B"
	Color      string        `toml:"color"`      // "R,G,B"
	Planes     []PlaneConfig `toml:"planes"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Shape:      "cube",
		Dimension:  4,
		FPS:        60,
		Projection: ProjectionSpread,
		Background: "20,20,30",
		Color:      "0,255,128",
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(bufio.NewReader(f))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges and names.
func (c Config) Validate() error {
	if _, err := polytope.ParseKind(c.Shape); err != nil {
		return fmt.Errorf("%w: shape: %w", ErrInvalid, err)
	}
	if c.Dimension < polytope.MinDimension || c.Dimension > MaxDimension {
		return fmt.Errorf("%w: dimension %d outside [%d, %d]", ErrInvalid, c.Dimension, polytope.MinDimension, MaxDimension)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d outside [1, 240]", ErrInvalid, c.FPS)
	}
	switch c.Projection {
	case ProjectionOrtho, ProjectionSpread:
	default:
		return fmt.Errorf("%w: projection %q", ErrInvalid, c.Projection)
	}
	for i, p := range c.Planes {
		if p.Axes[0] < 0 || p.Axes[1] < 0 || p.Axes[0] == p.Axes[1] {
			return fmt.Errorf("%w: plane %d axes %v", ErrInvalid, i, p.Axes)
		}
	}
	return nil
}
