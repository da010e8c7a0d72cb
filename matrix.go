package transform

import (
	"math"
	"strconv"
	"strings"
)

// Matrix represents a 2D affine transformation in the CSS
// matrix(a, b, c, d, e, f) convention. The linear part is
//
//	| a  c |
//	| b  d |
//
// and (e, f) is the translation, so the full augmented form is
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// Matrix is an immutable value: operations that "change" a matrix return a
// new one. Two matrices with identical coefficients are equal with ==,
// regardless of how they were constructed.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// New creates a matrix from the six CSS coefficients.
func New(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// SkewX creates a horizontal skew matrix (angle in radians).
func SkewX(angle float64) Matrix {
	return Matrix{A: 1, C: math.Tan(angle), D: 1}
}

// SkewY creates a vertical skew matrix (angle in radians).
func SkewY(angle float64) Matrix {
	return Matrix{A: 1, B: math.Tan(angle), D: 1}
}

// Skew creates a matrix skewing along both axes (angles in radians).
func Skew(x, y float64) Matrix {
	return Matrix{A: 1, B: math.Tan(y), C: math.Tan(x), D: 1}
}

// FromAffine creates a matrix from the top two rows of an augmented 3x3
// matrix in row-major order. The bottom row is ignored; an affine transform
// always has (0, 0, 1) there.
func FromAffine(g [3][3]float64) Matrix {
	return Matrix{
		A: g[0][0], C: g[0][1], E: g[0][2],
		B: g[1][0], D: g[1][1], F: g[1][2],
	}
}

// CSSVector returns the six coefficients in CSS matrix() order.
func (m Matrix) CSSVector() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// String returns the canonical CSS serialization, e.g.
// "matrix(1, 0, 0, 1, 10, 20)".
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteString("matrix(")
	for i, v := range m.CSSVector() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Determinant returns the determinant of the linear part, which is nonzero
// exactly when the transformation is invertible.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Mul returns the product m * n, the transform that applies n first and
// then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return fromAug(mulAug(m.aug(), n.aug()))
}

// Mul returns the product m * n. It is the function form of Matrix.Mul.
func Mul(m, n Matrix) Matrix {
	return m.Mul(n)
}

// Compose left-folds the list through matrix multiplication:
// Compose([m1, m2, m3]) = m1 * m2 * m3. An empty list yields the identity;
// a single matrix is returned unchanged.
func Compose(ms []Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// TransformPoint applies the transformation to a point. The identity matrix
// short-circuits and returns p as-is.
func (m Matrix) TransformPoint(p Point) Point {
	if m.Kind() == KindIdentity {
		return p
	}
	v := mulVec(m.aug(), vec3{p.X, p.Y, 1})
	return Point{X: v[0], Y: v[1]}
}

// Inverse returns the inverse matrix, computed by Gauss-Jordan elimination
// over the augmented form. It returns ErrSingularMatrix when the transform
// has no inverse.
func (m Matrix) Inverse() (Matrix, error) {
	inv, err := invertAug(m.aug())
	if err != nil {
		return Matrix{}, err
	}
	return fromAug(inv), nil
}
