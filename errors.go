package transform

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is returned when inverting a matrix that has no inverse.
var ErrSingularMatrix = errors.New("transform: matrix is not invertible")

// SyntaxError is returned when a transform value does not match the
// name(args) grammar: stray characters between functions, unbalanced
// parentheses, a malformed number, or a wrong argument count.
type SyntaxError struct {
	Pos    int    // byte offset into the normalized input
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("transform: syntax error at %d: %s", e.Pos, e.Reason)
}

// UnitError is returned when a function argument carries the wrong unit for
// its class: translate arguments must be px lengths, rotate and skew
// arguments must be angles, matrix and scale arguments must be unitless.
type UnitError struct {
	Func string // transform function name, e.g. "translate"
	Arg  string // the offending argument as written
	Unit string // the unit found, "" when missing
	Want string // the accepted unit(s) for this argument class
}

func (e *UnitError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("transform: %s(%s): argument must be unitless", e.Func, e.Arg)
	}
	return fmt.Sprintf("transform: %s(%s): want %s unit", e.Func, e.Arg, e.Want)
}

// UnknownFunctionError is returned when a function name is not part of the
// supported 2D transform grammar and is not a recognized 3D function.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return "transform: unknown transform function " + e.Name
}

// Unsupported3DError is returned for a recognized 3D transform function when
// parsing with WithStrict3D. Without it, 3D functions are skipped with a
// logged diagnostic instead.
type Unsupported3DError struct {
	Name string
}

func (e *Unsupported3DError) Error() string {
	return "transform: 3d transform function " + e.Name + " is not supported"
}
