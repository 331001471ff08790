package main

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/tesseract/internal/config"
)

// PlaneSpin tracks the accumulated angle of one rotation plane. The plane
// turns at a steady base speed plus a boost that a spring eases back to 0.
type PlaneSpin struct {
	I, J      int
	Angle     float64 // radians, accumulated
	Speed     float64 // radians per second
	Boost     float64 // extra radians per frame
	boostVel  float64 // internal spring velocity (for animating Boost toward 0)
	velSpring harmonica.Spring
}

// NewPlaneSpin creates a plane with a critically damped boost spring.
func NewPlaneSpin(fps, i, j int, speed float64) PlaneSpin {
	return PlaneSpin{
		I:     i,
		J:     j,
		Speed: speed,
		// Frequency 4.0 = moderate decay, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by dt seconds and decays the boost.
func (p *PlaneSpin) Update(dt float64) {
	p.Angle = math.Remainder(p.Angle+p.Speed*dt+p.Boost, 2*math.Pi)
	p.Boost, p.boostVel = p.velSpring.Update(p.Boost, p.boostVel, 0)
}

// Spinner holds every spinning plane of the current shape.
type Spinner struct {
	Planes []PlaneSpin
	fps    int
	paused bool
}

// DefaultPlanes returns one plane per adjacent axis pair plus a plane from
// axis 0 into the last axis, with staggered speeds.
func DefaultPlanes(dimension int) []config.PlaneConfig {
	if dimension < 2 {
		return nil
	}
	var planes []config.PlaneConfig
	for a := 0; a+1 < dimension; a++ {
		planes = append(planes, config.PlaneConfig{
			Axes:  [2]int{a, a + 1},
			Speed: 0.3 + 0.15*float64(a%4),
		})
	}
	if dimension > 2 {
		planes = append(planes, config.PlaneConfig{
			Axes:  [2]int{0, dimension - 1},
			Speed: 0.2,
		})
	}
	return planes
}

// NewSpinner creates a spinner for a shape of the given dimension. Planes
// with an axis outside [0, dimension) are dropped. When no plane is left,
// DefaultPlanes is used.
func NewSpinner(fps, dimension int, planes []config.PlaneConfig) *Spinner {
	s := &Spinner{fps: fps}
	s.add(dimension, planes)
	if len(s.Planes) == 0 {
		s.add(dimension, DefaultPlanes(dimension))
	}
	return s
}

func (s *Spinner) add(dimension int, planes []config.PlaneConfig) {
	for _, p := range planes {
		a, b := p.Axes[0], p.Axes[1]
		if a < 0 || b < 0 || a >= dimension || b >= dimension {
			continue
		}
		s.Planes = append(s.Planes, NewPlaneSpin(s.fps, a, b, p.Speed))
	}
}

// Update advances every plane. A paused spinner still decays boosts but
// ignores base speed.
func (s *Spinner) Update(dt float64) {
	if s.paused {
		dt = 0
	}
	for i := range s.Planes {
		s.Planes[i].Update(dt)
	}
}

// TogglePause stops or resumes the base rotation.
func (s *Spinner) TogglePause() {
	s.paused = !s.paused
}

// Paused reports whether base rotation is stopped.
func (s *Spinner) Paused() bool {
	return s.paused
}

// ApplyImpulse adds a random boost in [-strength/2, strength/2) to each plane.
func (s *Spinner) ApplyImpulse(rng *rand.Rand, strength float64) {
	for i := range s.Planes {
		s.Planes[i].Boost += (rng.Float64() - 0.5) * strength
	}
}

// Reset zeroes every angle and boost.
func (s *Spinner) Reset() {
	for i, p := range s.Planes {
		s.Planes[i] = NewPlaneSpin(s.fps, p.I, p.J, p.Speed)
	}
}

// Rotations returns the flattened plane pairs and angles in the form the
// rotate-and-project pipeline consumes.
func (s *Spinner) Rotations() (planes []uint32, angles []float32) {
	planes = make([]uint32, 0, 2*len(s.Planes))
	angles = make([]float32, 0, len(s.Planes))
	for _, p := range s.Planes {
		planes = append(planes, uint32(p.I), uint32(p.J))
		angles = append(angles, float32(p.Angle))
	}
	return planes, angles
}
