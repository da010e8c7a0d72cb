package transform

// Kind identifies which elementary transform a Matrix encodes.
// Classification is a pure function of the six coefficients: the predicates
// below are tried in order and the first match wins, using exact
// floating-point comparison against 0 and 1 (no epsilon). A matrix that
// matches none of the elementary predicates is KindComposite.
type Kind uint8

const (
	// KindIdentity is the identity transform: a=d=1, b=c=e=f=0.
	KindIdentity Kind = iota

	// KindTranslate is a pure translation: a=d=1, b=c=0, (e,f) != (0,0).
	KindTranslate

	// KindScale is an axis-aligned scale: b=c=e=f=0.
	KindScale

	// KindRotate is a rotation about the origin: a=d, b=-c, e=f=0,
	// with a, b, c, d all within [-1, 1].
	KindRotate

	// KindSkewX is a horizontal skew: a=d=1, c != 0, b=e=f=0.
	KindSkewX

	// KindSkewY is a vertical skew: a=d=1, b != 0, c=e=f=0.
	KindSkewY

	// KindComposite is any transform not matching an elementary predicate.
	KindComposite
)

// String returns the CSS-flavored name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindTranslate:
		return "translate"
	case KindScale:
		return "scale"
	case KindRotate:
		return "rotate"
	case KindSkewX:
		return "skewX"
	case KindSkewY:
		return "skewY"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Kind classifies the matrix. The predicate order matters: a scale(1,1)
// literal is identity, rotate(pi) has b=c=0 and classifies as scale, and so
// on. Classification is O(1), so it is recomputed on each call rather than
// cached; Matrix is a value type and the compares are cheaper than a cache.
func (m Matrix) Kind() Kind {
	switch {
	case m.A == 1 && m.D == 1 && m.B == 0 && m.C == 0 && m.E == 0 && m.F == 0:
		return KindIdentity
	case m.A == 1 && m.D == 1 && m.B == 0 && m.C == 0:
		// Identity already matched, so (e,f) != (0,0) here. A translation
		// along a single axis is still a translation.
		return KindTranslate
	case m.B == 0 && m.C == 0 && m.E == 0 && m.F == 0:
		return KindScale
	case m.A == 1 && m.D == 1 && m.C != 0 && m.B == 0 && m.E == 0 && m.F == 0:
		return KindSkewX
	case m.A == 1 && m.D == 1 && m.B != 0 && m.C == 0 && m.E == 0 && m.F == 0:
		return KindSkewY
	case inUnitRange(m.A) && inUnitRange(m.B) && inUnitRange(m.C) && inUnitRange(m.D) &&
		m.E == 0 && m.F == 0 && m.A == m.D && m.B == -m.C:
		return KindRotate
	default:
		return KindComposite
	}
}

func inUnitRange(v float64) bool {
	return v >= -1 && v <= 1
}
