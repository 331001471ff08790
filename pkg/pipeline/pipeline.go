// Package pipeline rotates N-dimensional vertex buffers through a sequence of
// plane rotations and projects them to screen space with a depth value.
//
// Inputs are borrowed read-only. Each call rotates a private copy of the
// vertex buffer and returns a newly allocated output buffer holding
// (screenX, screenY, depth) per vertex, in input order.
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Transform rotates a copy of vertices by the (plane, angle) instructions and
// projects the result. It never fails: malformed rotation entries are
// skipped and a trailing partial vertex is ignored.
func Transform(vertices []float32, planes []uint32, angles []float32, projection []float32, view View) []float32 {
	if view.Dimension <= 0 {
		return []float32{}
	}
	work := make([]float32, len(vertices))
	copy(work, vertices)

	rots := CompileRotations(planes, angles, view.Dimension)
	out := make([]float32, (len(work)/view.Dimension)*3)

	Rotate(work, view.Dimension, rots)
	Project(work, projection, view, out)
	return out
}

// DefaultMinParallelVertices is the vertex count below which a Pipeline
// runs sequentially.
const DefaultMinParallelVertices = 4096

// Pipeline is a Transform that splits large vertex buffers across goroutines.
// Each worker owns a contiguous vertex range and runs the full rotation
// sequence over it before projecting it, so results match Transform exactly.
// A Pipeline holds no per-call state and may be shared.
type Pipeline struct {
	workers     int
	minParallel int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of goroutines used per call. Values < 1 mean 1.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = max(n, 1)
	}
}

// WithMinParallelVertices sets the vertex count below which calls run sequentially.
func WithMinParallelVertices(n int) Option {
	return func(p *Pipeline) {
		p.minParallel = max(n, 0)
	}
}

// New creates a Pipeline. By default it uses GOMAXPROCS workers.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		workers:     runtime.GOMAXPROCS(0),
		minParallel: DefaultMinParallelVertices,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the configured worker count.
func (p *Pipeline) Workers() int {
	return p.workers
}

// Transform behaves like the package-level Transform but splits large
// buffers across workers. It fails only when ctx is done before every chunk
// has started, returning ctx.Err().
func (p *Pipeline) Transform(ctx context.Context, vertices []float32, planes []uint32, angles []float32, projection []float32, view View) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Dimension <= 0 {
		return []float32{}, nil
	}
	count := len(vertices) / view.Dimension
	if p.workers <= 1 || count < p.minParallel || count < 2 {
		return Transform(vertices, planes, angles, projection, view), nil
	}

	work := make([]float32, len(vertices))
	copy(work, vertices)
	rots := CompileRotations(planes, angles, view.Dimension)
	out := make([]float32, count*3)

	chunk := (count + p.workers - 1) / p.workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rotateRange(work, view.Dimension, rots, lo, hi)
			projectRange(work, projection, view, out, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
