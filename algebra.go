package transform

// aug3 is the augmented 3x3 view of an affine transform, row-major.
// The bottom row of a valid transform is always (0, 0, 1), but the algebra
// below works on the full 3x3 form so the Gauss-Jordan elimination stays
// textbook-shaped.
type aug3 [3][3]float64

// vec3 is a homogeneous coordinate (x, y, w); points carry w=1.
type vec3 [3]float64

// aug returns the augmented 3x3 form of the matrix.
func (m Matrix) aug() aug3 {
	return aug3{
		{m.A, m.C, m.E},
		{m.B, m.D, m.F},
		{0, 0, 1},
	}
}

// fromAug reads the six affine coefficients back out of an augmented matrix.
func fromAug(g aug3) Matrix {
	return Matrix{
		A: g[0][0], C: g[0][1], E: g[0][2],
		B: g[1][0], D: g[1][1], F: g[1][2],
	}
}

// mulVec computes g * v as row-by-vector dot products.
func mulVec(g aug3, v vec3) vec3 {
	var out vec3
	for i := 0; i < 3; i++ {
		out[i] = g[i][0]*v[0] + g[i][1]*v[1] + g[i][2]*v[2]
	}
	return out
}

// mulAug computes the 3x3 product g * h, rows of g times columns of h.
func mulAug(g, h aug3) aug3 {
	var out aug3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = g[i][0]*h[0][j] + g[i][1]*h[1][j] + g[i][2]*h[2][j]
		}
	}
	return out
}

// invertAug inverts g by Gauss-Jordan elimination, running the same row
// operations against an accumulator that starts as the identity. When a
// diagonal entry is zero, the first row below the pivot with a nonzero
// entry in that column is swapped in; if none exists the matrix is singular
// and ErrSingularMatrix is returned. g is an array, so elimination mutates
// a local copy.
func invertAug(g aug3) (aug3, error) {
	inv := aug3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		if g[i][i] == 0 {
			swapped := false
			for j := i + 1; j < 3; j++ {
				if g[j][i] != 0 {
					g[i], g[j] = g[j], g[i]
					inv[i], inv[j] = inv[j], inv[i]
					swapped = true
					break
				}
			}
			if !swapped {
				return aug3{}, ErrSingularMatrix
			}
		}

		pivot := g[i][i]
		for k := 0; k < 3; k++ {
			g[i][k] /= pivot
			inv[i][k] /= pivot
		}

		for r := 0; r < 3; r++ {
			if r == i || g[r][i] == 0 {
				continue
			}
			factor := g[r][i]
			for k := 0; k < 3; k++ {
				g[r][k] -= factor * g[i][k]
				inv[r][k] -= factor * inv[i][k]
			}
		}
	}
	return inv, nil
}
