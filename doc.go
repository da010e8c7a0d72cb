// Package transform computes with 2D affine transformations expressed in
// the CSS matrix(a, b, c, d, e, f) convention.
//
// # Overview
//
// transform is a pure Go library for the algebra behind the CSS transform
// property. It classifies a transform into one of the elementary kinds
// (identity, translate, scale, rotate, skew), inverts it, composes sequences
// of transforms, and decomposes an arbitrary composite transform back into
// an ordered list of elementary ones. A hand-rolled parser turns a raw CSS
// transform value such as "rotate(20deg) scale(1.2) translate(20px, 50px)"
// into the same matrix representation.
//
// # Quick Start
//
//	import "github.com/gogpu/transform"
//
//	// Parse a CSS transform property value.
//	ms, err := transform.Parse("rotate(45deg) translate(10px, 20px)")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Compose the functions into a single matrix and apply it.
//	m := transform.Compose(ms)
//	p := m.TransformPoint(transform.Pt(1, 0))
//
//	// Factor a composite matrix into elementary transforms.
//	for _, e := range m.Decompose() {
//		fmt.Println(e.Kind(), e)
//	}
//
// # Matrix Convention
//
// Matrix carries the six CSS coefficients (a, b, c, d, e, f), equivalent to
// the augmented 3x3 matrix
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// so a point maps as x' = a*x + c*y + e and y' = b*x + d*y + f.
//
// # Coordinate System
//
// Uses standard CSS coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; a positive rotation turns clockwise on screen
//
// # Scope
//
// The library is pure computation over immutable values: no I/O, no DOM
// traversal, no 3D transforms. 3D transform functions in parsed input are
// either rejected or skipped with a diagnostic, see Parse and WithStrict3D.
package transform

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
