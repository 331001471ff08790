package polytope

// buildHypercube generates the n-cube with vertices at {-1, +1}^dimension.
//
// Vertex i has +1 on axis b when bit b of i is set. Every edge is emitted once
// from its low endpoint: (i, i|1<<b) for each bit b clear in i.
func buildHypercube(dimension int) *Shape {
	count := 1 << dimension
	vertices := make([]float32, 0, count*dimension)
	edges := make([]uint32, 0, dimension*count) // dimension * 2^(dimension-1) pairs

	for i := range count {
		for b := range dimension {
			if i&(1<<b) != 0 {
				vertices = append(vertices, 1)
			} else {
				vertices = append(vertices, -1)
			}
		}
	}

	for i := range count {
		for b := range dimension {
			if i&(1<<b) == 0 {
				edges = append(edges, uint32(i), uint32(i|1<<b))
			}
		}
	}

	return &Shape{
		Kind:      Cube,
		Dimension: dimension,
		Vertices:  vertices,
		Edges:     edges,
	}
}
