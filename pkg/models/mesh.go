// Package models converts polytope frames into 3D line meshes and moves them
// in and out of glTF binary files.
package models

import (
	"github.com/taigrr/tesseract/pkg/polytope"
)

// LineMesh is a 3D wireframe: positions joined by straight edges.
type LineMesh struct {
	Name      string
	Positions [][3]float32
	Edges     [][2]uint32 // Indices into Positions

	// Bounding box (calculated by CalculateBounds)
	BoundsMin [3]float32
	BoundsMax [3]float32
}

// NewLineMesh creates an empty line mesh.
func NewLineMesh(name string) *LineMesh {
	return &LineMesh{
		Name:      name,
		Positions: make([][3]float32, 0),
		Edges:     make([][2]uint32, 0),
	}
}

// FromFrame builds a line mesh from an N-D vertex buffer, keeping the first
// three coordinates of every vertex. Missing coordinates (dimension < 3) are
// zero. Edges that reference a vertex outside the buffer are dropped.
func FromFrame(name string, vertices []float32, dimension int, edges []uint32) *LineMesh {
	m := NewLineMesh(name)
	if dimension <= 0 {
		return m
	}

	n := len(vertices) / dimension
	m.Positions = make([][3]float32, n)
	for v := range n {
		copy(m.Positions[v][:], vertices[v*dimension:v*dimension+min(dimension, 3)])
	}

	for e := 0; e+1 < len(edges); e += 2 {
		a, b := edges[e], edges[e+1]
		if int(a) >= n || int(b) >= n {
			continue
		}
		m.Edges = append(m.Edges, [2]uint32{a, b})
	}

	m.CalculateBounds()
	return m
}

// FromShape builds a line mesh from an unrotated polytope.
func FromShape(s *polytope.Shape) *LineMesh {
	return FromFrame(s.Kind.String(), s.Vertices, s.Dimension, s.Edges)
}

// VertexCount returns the number of positions.
func (m *LineMesh) VertexCount() int { return len(m.Positions) }

// EdgeCount returns the number of edges.
func (m *LineMesh) EdgeCount() int { return len(m.Edges) }

// CalculateBounds computes the axis-aligned bounding box.
func (m *LineMesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		m.BoundsMin, m.BoundsMax = [3]float32{}, [3]float32{}
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		for i := range 3 {
			m.BoundsMin[i] = min(m.BoundsMin[i], p[i])
			m.BoundsMax[i] = max(m.BoundsMax[i], p[i])
		}
	}
}

// Center returns the center of the bounding box.
func (m *LineMesh) Center() [3]float32 {
	var c [3]float32
	for i := range 3 {
		c[i] = (m.BoundsMin[i] + m.BoundsMax[i]) / 2
	}
	return c
}

// Size returns the dimensions of the bounding box.
func (m *LineMesh) Size() [3]float32 {
	var s [3]float32
	for i := range 3 {
		s[i] = m.BoundsMax[i] - m.BoundsMin[i]
	}
	return s
}

// Clone creates a deep copy of the mesh.
func (m *LineMesh) Clone() *LineMesh {
	return &LineMesh{
		Name:      m.Name,
		Positions: append([][3]float32(nil), m.Positions...),
		Edges:     append([][2]uint32(nil), m.Edges...),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
}

// FlatIndices returns the edges as a flattened index list.
func (m *LineMesh) FlatIndices() []uint32 {
	out := make([]uint32, 0, 2*len(m.Edges))
	for _, e := range m.Edges {
		out = append(out, e[0], e[1])
	}
	return out
}
