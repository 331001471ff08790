package polytope

// buildOrthoplex generates the cross-polytope: ±e_a for every axis a.
// Vertex 2a is +e_a and 2a+1 is -e_a. Every pair of vertices on different
// axes is joined; the antipodal pair of an axis is not.
func buildOrthoplex(dimension int) *Shape {
	count := 2 * dimension
	vertices := make([]float32, count*dimension)
	for a := range dimension {
		vertices[(2*a)*dimension+a] = 1
		vertices[(2*a+1)*dimension+a] = -1
	}

	edges := make([]uint32, 0, 4*dimension*(dimension-1))
	for i := range count {
		for j := i + 1; j < count; j++ {
			if i/2 != j/2 {
				edges = append(edges, uint32(i), uint32(j))
			}
		}
	}

	return &Shape{
		Kind:      Orthoplex,
		Dimension: dimension,
		Vertices:  vertices,
		Edges:     edges,
	}
}
