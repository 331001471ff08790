package ndmath

// GramSchmidt builds an orthonormal basis from candidates.
//
// Each candidate has its projection onto the basis collected so far removed.
// A residual whose norm is <= tol is dropped; otherwise it is normalized and
// appended. Iteration stops once targetDim vectors are collected, so the
// result holds at most targetDim vectors and fewer when the candidates are
// linearly dependent. Candidates are never modified.
func GramSchmidt(candidates []Vec, targetDim int, tol float64) []Vec {
	basis := make([]Vec, 0, targetDim)
	if targetDim <= 0 {
		return basis
	}

	for _, c := range candidates {
		residual := c.Clone()
		for _, b := range basis {
			proj := residual.Dot(b)
			for i := range residual {
				residual[i] -= proj * b[i]
			}
		}

		norm := residual.Len()
		if norm <= tol {
			continue
		}
		for i := range residual {
			residual[i] /= norm
		}
		basis = append(basis, residual)

		if len(basis) == targetDim {
			break
		}
	}
	return basis
}
