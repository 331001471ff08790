package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoLines is returned by LoadGLB when a file holds no LINES primitive.
var ErrNoLines = errors.New("no line primitives")

// ExportGLB writes the mesh to path as a binary glTF file with a single
// LINES primitive.
func ExportGLB(path string, m *LineMesh) error {
	doc := BuildDocument(m)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb %s: %w", path, err)
	}
	return nil
}

// BuildDocument converts the mesh to a glTF document: one mesh, one node,
// one scene.
func BuildDocument(m *LineMesh) *gltf.Document {
	doc := gltf.NewDocument()

	prim := &gltf.Primitive{
		Mode:       gltf.PrimitiveLines,
		Attributes: map[string]int{},
	}
	if len(m.Positions) > 0 {
		prim.Attributes[gltf.POSITION] = modeler.WritePosition(doc, m.Positions)
	}
	if len(m.Edges) > 0 {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, m.FlatIndices()))
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       m.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc
}

// LoadGLB loads every LINES primitive in a glTF or GLB file into one mesh.
// Other primitive modes are skipped.
func LoadGLB(path string) (*LineMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(doc.Meshes) > 0 && doc.Meshes[0].Name != "" {
		name = doc.Meshes[0].Name
	}
	mesh := NewLineMesh(name)

	found := false
	for _, m := range doc.Meshes {
		n, err := processMesh(doc, m, mesh)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
		found = found || n > 0
	}
	if !found {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoLines)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the LINES primitives of m and reports how many it used.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *LineMesh) (int, error) {
	used := 0
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveLines {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return used, fmt.Errorf("read positions: %w", err)
		}

		base := uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, positions...)

		var indices []uint32
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return used, fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices: consecutive positions form segments.
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+1 < len(indices); i += 2 {
			a, b := indices[i], indices[i+1]
			if int(a) >= len(positions) || int(b) >= len(positions) {
				return used, fmt.Errorf("edge %d references vertex outside %d positions", i/2, len(positions))
			}
			mesh.Edges = append(mesh.Edges, [2]uint32{base + a, base + b})
		}
		used++
	}
	return used, nil
}

// readVec3Accessor reads float VEC3 positions through modeler.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([][3]float32, error) {
	accessor, err := lookupAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	return modeler.ReadPosition(doc, accessor, nil)
}

// readIndices reads unsigned index data through modeler.
func readIndices(doc *gltf.Document, accessorIdx int) ([]uint32, error) {
	accessor, err := lookupAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}
	return modeler.ReadIndices(doc, accessor, nil)
}

// lookupAccessor returns accessor accessorIdx after checking that every
// buffer view it reads, dense or sparse, exists and holds its bytes.
func lookupAccessor(doc *gltf.Document, accessorIdx int) (*gltf.Accessor, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Count < 0 {
		return nil, fmt.Errorf("accessor %d: negative count", accessorIdx)
	}
	elem := accessor.ComponentType.ByteSize() * accessor.Type.Components()
	if accessor.BufferView != nil {
		if err := checkBufferView(doc, *accessor.BufferView, accessor.ByteOffset, accessor.Count, elem); err != nil {
			return nil, fmt.Errorf("accessor %d: %w", accessorIdx, err)
		}
	}
	if sp := accessor.Sparse; sp != nil {
		if sp.Count < 0 || sp.Count > accessor.Count {
			return nil, fmt.Errorf("accessor %d: sparse count %d out of range", accessorIdx, sp.Count)
		}
		if err := checkBufferView(doc, sp.Indices.BufferView, sp.Indices.ByteOffset, sp.Count, sp.Indices.ComponentType.ByteSize()); err != nil {
			return nil, fmt.Errorf("accessor %d sparse indices: %w", accessorIdx, err)
		}
		if err := checkBufferView(doc, sp.Values.BufferView, sp.Values.ByteOffset, sp.Count, elem); err != nil {
			return nil, fmt.Errorf("accessor %d sparse values: %w", accessorIdx, err)
		}
		targets, err := modeler.ReadIndices(doc, &gltf.Accessor{
			ComponentType: sp.Indices.ComponentType,
			Type:          gltf.AccessorScalar,
			Count:         sp.Count,
			BufferView:    &sp.Indices.BufferView,
			ByteOffset:    sp.Indices.ByteOffset,
		}, nil)
		if err != nil {
			return nil, fmt.Errorf("accessor %d sparse indices: %w", accessorIdx, err)
		}
		for _, t := range targets {
			if int(t) >= accessor.Count {
				return nil, fmt.Errorf("accessor %d: sparse index %d outside %d elements", accessorIdx, t, accessor.Count)
			}
		}
	}
	return accessor, nil
}

// checkBufferView verifies that view viewIdx lies inside a loaded buffer and
// that count elements of elem bytes starting at offset lie inside the view.
func checkBufferView(doc *gltf.Document, viewIdx, offset, count, elem int) error {
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return fmt.Errorf("buffer view %d out of range", viewIdx)
	}
	view := doc.BufferViews[viewIdx]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return fmt.Errorf("buffer %d out of range", view.Buffer)
	}
	if view.ByteOffset < 0 || view.ByteLength < 0 || view.ByteOffset+view.ByteLength > len(doc.Buffers[view.Buffer].Data) {
		return fmt.Errorf("buffer view %d exceeds buffer %d", viewIdx, view.Buffer)
	}
	if offset < 0 || offset > view.ByteLength {
		return fmt.Errorf("offset %d outside buffer view %d", offset, viewIdx)
	}
	if count == 0 {
		return nil
	}
	stride := max(view.ByteStride, elem)
	if offset+(count-1)*stride+elem > view.ByteLength {
		return fmt.Errorf("buffer view %d holds %d bytes, accessor needs more", viewIdx, view.ByteLength)
	}
	return nil
}
