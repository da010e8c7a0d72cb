package transform

import "math"

// factorOp tags one elementary factor produced by decomposition.
type factorOp uint8

const (
	opTranslate factorOp = iota
	opRotate
	opScale
	opSkewX
	opSkewY
	opIdentity
)

// factor is an elementary transform kept in symbolic form while candidate
// factorizations are compared, so skew angles are scored exactly instead of
// being recovered from tangents.
type factor struct {
	op   factorOp
	x, y float64 // angle in x for rotate/skew; (sx, sy) or (tx, ty) otherwise
}

func (f factor) matrix() Matrix {
	switch f.op {
	case opTranslate:
		return Translate(f.x, f.y)
	case opRotate:
		return Rotate(f.x)
	case opScale:
		return Scale(f.x, f.y)
	case opSkewX:
		return SkewX(f.x)
	case opSkewY:
		return SkewY(f.x)
	default:
		return Identity()
	}
}

// skewScore sums the absolute skew angles of a candidate. Factors of other
// kinds contribute nothing.
func skewScore(fs []factor) float64 {
	score := 0.0
	for _, f := range fs {
		if f.op == opSkewX || f.op == opSkewY {
			score += math.Abs(f.x)
		}
	}
	return score
}

// Decompose factors the matrix into an ordered list of elementary matrices
// whose composition reproduces the overall linear map (not necessarily the
// factors it was originally built from).
//
// The identity decomposes to an empty list and any other non-composite
// matrix to a single-element list containing itself. A composite matrix is
// split into a translation followed by up to three linear factors. Two
// competing factorizations of the linear part are computed, a QR-style
// rotate/scale/skew and an LU-style skew/scale/skew, and the one with the
// smaller total skew magnitude wins: skew is rare in authored CSS, so the
// candidate that explains the map with less skew is the more plausible
// reading. Factors that reduce to the identity are dropped from the result.
func (m Matrix) Decompose() []Matrix {
	switch m.Kind() {
	case KindIdentity:
		return nil
	case KindComposite:
		// factored below
	default:
		return []Matrix{m}
	}

	linear := Matrix{A: m.A, B: m.B, C: m.C, D: m.D}
	if (m.E != 0 || m.F != 0) && linear.Kind() != KindComposite {
		// The translation alone explains the compositeness.
		return []Matrix{Translate(m.E, m.F), linear}
	}

	det := m.Determinant()
	qr := qrFactors(m, det)
	lu := luFactors(m, det)
	chosen := qr
	if skewScore(lu) < skewScore(qr) {
		chosen = lu
	}

	out := make([]Matrix, 0, 1+len(chosen))
	for _, f := range append([]factor{{op: opTranslate, x: m.E, y: m.F}}, chosen...) {
		fm := f.matrix()
		if fm.Kind() == KindIdentity {
			continue
		}
		out = append(out, fm)
	}
	return out
}

// qrFactors is the QR-style candidate: rotate, then scale, then one skew.
// The rotation is read off the first column when it is fully nonzero, or
// off the second column rotated a quarter turn otherwise.
func qrFactors(m Matrix, det float64) []factor {
	a, b, c, d := m.A, m.B, m.C, m.D
	switch {
	case a != 0 && b != 0:
		r := math.Hypot(a, b)
		angle := math.Acos(a / r)
		if b < 0 {
			angle = -angle
		}
		return []factor{
			{op: opRotate, x: angle},
			{op: opScale, x: r, y: det / r},
			{op: opSkewX, x: math.Atan((a*c + b*d) / (r * r))},
		}
	case c != 0 || d != 0:
		s := math.Hypot(c, d)
		angle := math.Acos(-c / s)
		if d < 0 {
			angle = -angle
		}
		return []factor{
			{op: opRotate, x: math.Pi/2 - angle},
			{op: opScale, x: det / s, y: s},
			{op: opSkewY, x: math.Atan((a*c + b*d) / (s * s))},
		}
	default:
		return []factor{{op: opIdentity}}
	}
}

// luFactors is the LU-style candidate: skew, then scale, then skew, pivoting
// on whichever of a and b is nonzero. The zero-column fallback rebuilds
// | 0 c |
// | 0 d |
// as scale(c,d) * skewX(pi/4) * scale(0,1).
func luFactors(m Matrix, det float64) []factor {
	a, b, c, d := m.A, m.B, m.C, m.D
	switch {
	case a != 0:
		return []factor{
			{op: opSkewY, x: math.Atan(b / a)},
			{op: opScale, x: a, y: det / a},
			{op: opSkewX, x: math.Atan(c / a)},
		}
	case b != 0:
		return []factor{
			{op: opRotate, x: math.Pi / 2},
			{op: opScale, x: b, y: det / b},
			{op: opSkewX, x: math.Atan(d / b)},
		}
	default:
		return []factor{
			{op: opScale, x: c, y: d},
			{op: opSkewX, x: math.Pi / 4},
			{op: opScale, x: 0, y: 1},
		}
	}
}
