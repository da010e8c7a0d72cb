package transform

import (
	"math"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// threeDFunctions are transform functions the parser recognizes but does
// not support. With WithStrict3D they fail the parse; otherwise they are
// skipped with a logged diagnostic.
var threeDFunctions = map[string]bool{
	"matrix3d":    true,
	"perspective": true,
	"rotate3d":    true,
	"rotatex":     true,
	"rotatey":     true,
	"rotatez":     true,
	"scale3d":     true,
	"scalez":      true,
	"translate3d": true,
	"translatez":  true,
}

// Parse parses a CSS transform property value such as
// "rotate(20deg) scale(1.2) translate(20px, 50px)" into the matrices of its
// transform functions, in textual order. Composition order is the caller's
// concern; pass the result to Compose to collapse it into one matrix.
//
// The grammar covers the 2D transform functions: matrix (six unitless
// numbers), translate/translateX/translateY (px lengths), scale/scaleX/
// scaleY (unitless), rotate and skew/skewX/skewY (deg, rad, grad or turn).
// Input is case-insensitive and may carry a leading "transform:" and a
// trailing ";". An input that is empty after normalization yields no
// matrices and no error.
//
// Errors are *SyntaxError, *UnitError, *UnknownFunctionError or, with
// WithStrict3D, *Unsupported3DError. A failed parse returns no matrices,
// not a best-effort prefix.
func Parse(s string, opts ...ParseOption) ([]Matrix, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	norm := normalize(s)
	if norm == "" {
		return nil, nil
	}
	toks, err := tokenize(norm)
	if err != nil {
		return nil, err
	}

	ms := make([]Matrix, 0, len(toks))
	for _, tok := range toks {
		m, ok, err := parseFunction(tok, o)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// ParseMatrix parses a transform value and composes it into a single
// matrix. This is the contract DOM-side collaborators use: one computed
// transform string in, one matrix out. An empty value composes to the
// identity.
func ParseMatrix(s string) (Matrix, error) {
	ms, err := Parse(s)
	if err != nil {
		return Matrix{}, err
	}
	return Compose(ms), nil
}

// normalize lowercases and trims the value, strips a leading "transform:"
// property prefix and a trailing ";", and collapses whitespace runs to
// single spaces.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "transform:")
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	return strings.Join(strings.Fields(s), " ")
}

// token is one name(args) call sliced out of the normalized input.
type token struct {
	name string
	args string
	pos  int // offset of the name in the normalized input
}

// Tokenizer states. The machine walks the normalized input enforcing a
// well-formed "name(...)" shape with exactly one space between calls.
const (
	stBetween = iota // before a function name
	stName           // inside a function name
	stBody           // inside the parentheses
	stEnd            // just past a closing parenthesis
)

func tokenize(s string) ([]token, error) {
	var toks []token
	state := stBetween
	nameStart, bodyStart := 0, 0
	name := ""
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch state {
		case stBetween:
			if ch < 'a' || ch > 'z' {
				return nil, &SyntaxError{Pos: i, Reason: "expected transform function name"}
			}
			nameStart = i
			state = stName
		case stName:
			switch {
			case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			case ch == '(':
				name = s[nameStart:i]
				bodyStart = i + 1
				state = stBody
			default:
				return nil, &SyntaxError{Pos: i, Reason: "unexpected character in function name"}
			}
		case stBody:
			switch ch {
			case ')':
				toks = append(toks, token{name: name, args: s[bodyStart:i], pos: nameStart})
				state = stEnd
			case '(':
				return nil, &SyntaxError{Pos: i, Reason: "nested parenthesis"}
			}
		case stEnd:
			if ch != ' ' {
				return nil, &SyntaxError{Pos: i, Reason: "expected a single space between functions"}
			}
			state = stBetween
		}
	}
	if state != stEnd {
		return nil, &SyntaxError{Pos: len(s), Reason: "unterminated transform function"}
	}
	return toks, nil
}

// splitArgs splits a function body on commas and trims each argument.
// An empty body yields no arguments.
func splitArgs(body string) []string {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseFunction dispatches a token to the family parsers in fixed order:
// translate, scale, rotate, skew, matrix. The second return is false when a
// tolerated 3D function was skipped.
func parseFunction(tok token, o parseOptions) (Matrix, bool, error) {
	var m Matrix
	var err error
	switch tok.name {
	case "translate", "translatex", "translatey":
		m, err = parseTranslate(tok)
	case "scale", "scalex", "scaley":
		m, err = parseScale(tok)
	case "rotate":
		m, err = parseRotate(tok)
	case "skew", "skewx", "skewy":
		m, err = parseSkew(tok)
	case "matrix":
		m, err = parseMatrixFunc(tok)
	default:
		if threeDFunctions[tok.name] {
			if o.strict3D {
				return Matrix{}, false, &Unsupported3DError{Name: tok.name}
			}
			Logger().Warn("transform: skipping 3d transform function", "func", tok.name)
			return Matrix{}, false, nil
		}
		return Matrix{}, false, &UnknownFunctionError{Name: tok.name}
	}
	if err != nil {
		return Matrix{}, false, err
	}
	return m, true, nil
}

func parseTranslate(tok token) (Matrix, error) {
	args := splitArgs(tok.args)
	switch tok.name {
	case "translatex", "translatey":
		if len(args) != 1 {
			return Matrix{}, arityError(tok, "exactly one argument")
		}
		v, err := parseLength(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		if tok.name == "translatey" {
			return Translate(0, v), nil
		}
		return Translate(v, 0), nil
	default:
		if len(args) < 1 || len(args) > 2 {
			return Matrix{}, arityError(tok, "one or two arguments")
		}
		x, err := parseLength(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		y := 0.0
		if len(args) == 2 {
			if y, err = parseLength(tok.name, args[1]); err != nil {
				return Matrix{}, err
			}
		}
		return Translate(x, y), nil
	}
}

func parseScale(tok token) (Matrix, error) {
	args := splitArgs(tok.args)
	switch tok.name {
	case "scalex", "scaley":
		if len(args) != 1 {
			return Matrix{}, arityError(tok, "exactly one argument")
		}
		v, err := parseUnitless(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		if tok.name == "scaley" {
			return Scale(1, v), nil
		}
		return Scale(v, 1), nil
	default:
		if len(args) < 1 || len(args) > 2 {
			return Matrix{}, arityError(tok, "one or two arguments")
		}
		x, err := parseUnitless(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		// scale(k) is uniform: scale(k, k).
		y := x
		if len(args) == 2 {
			if y, err = parseUnitless(tok.name, args[1]); err != nil {
				return Matrix{}, err
			}
		}
		return Scale(x, y), nil
	}
}

func parseRotate(tok token) (Matrix, error) {
	args := splitArgs(tok.args)
	if len(args) != 1 {
		return Matrix{}, arityError(tok, "exactly one argument")
	}
	angle, err := parseAngle(tok.name, args[0])
	if err != nil {
		return Matrix{}, err
	}
	return Rotate(angle), nil
}

func parseSkew(tok token) (Matrix, error) {
	args := splitArgs(tok.args)
	switch tok.name {
	case "skewx", "skewy":
		if len(args) != 1 {
			return Matrix{}, arityError(tok, "exactly one argument")
		}
		angle, err := parseAngle(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		if tok.name == "skewy" {
			return SkewY(angle), nil
		}
		return SkewX(angle), nil
	default:
		if len(args) < 1 || len(args) > 2 {
			return Matrix{}, arityError(tok, "one or two arguments")
		}
		x, err := parseAngle(tok.name, args[0])
		if err != nil {
			return Matrix{}, err
		}
		y := 0.0
		if len(args) == 2 {
			if y, err = parseAngle(tok.name, args[1]); err != nil {
				return Matrix{}, err
			}
		}
		return Skew(x, y), nil
	}
}

func parseMatrixFunc(tok token) (Matrix, error) {
	args := splitArgs(tok.args)
	if len(args) != 6 {
		return Matrix{}, arityError(tok, "exactly six arguments")
	}
	var vs [6]float64
	for i, arg := range args {
		v, err := parseUnitless(tok.name, arg)
		if err != nil {
			return Matrix{}, err
		}
		vs[i] = v
	}
	return New(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5]), nil
}

func arityError(tok token, want string) error {
	return &SyntaxError{Pos: tok.pos, Reason: tok.name + " takes " + want}
}

// scanNumber splits an argument into its numeric value and trailing unit.
func scanNumber(arg string) (float64, string, bool) {
	v, n := pstrconv.ParseFloat([]byte(arg))
	if n == 0 {
		return 0, "", false
	}
	return v, arg[n:], true
}

// parseUnitless parses a bare number; any unit suffix is rejected.
func parseUnitless(fn, arg string) (float64, error) {
	v, unit, ok := scanNumber(arg)
	if !ok {
		return 0, &SyntaxError{Reason: fn + ": expected number, got " + arg}
	}
	if unit != "" {
		return 0, &UnitError{Func: fn, Arg: arg, Unit: unit}
	}
	return v, nil
}

// parseLength parses a px length. CSS knows more length units, but computed
// style values are always px, which is all the grammar accepts.
func parseLength(fn, arg string) (float64, error) {
	v, unit, ok := scanNumber(arg)
	if !ok {
		return 0, &SyntaxError{Reason: fn + ": expected length, got " + arg}
	}
	if unit != "px" {
		return 0, &UnitError{Func: fn, Arg: arg, Unit: unit, Want: "px"}
	}
	return v, nil
}

// parseAngle parses an angle and converts it to radians.
func parseAngle(fn, arg string) (float64, error) {
	v, unit, ok := scanNumber(arg)
	if !ok {
		return 0, &SyntaxError{Reason: fn + ": expected angle, got " + arg}
	}
	switch unit {
	case "deg":
		return v * math.Pi / 180, nil
	case "rad":
		return v, nil
	case "grad":
		return v * math.Pi / 200, nil
	case "turn":
		return v * 2 * math.Pi, nil
	default:
		return 0, &UnitError{Func: fn, Arg: arg, Unit: unit, Want: "deg, rad, grad or turn"}
	}
}
