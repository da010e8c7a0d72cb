package transform

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string, opts ...ParseOption) []Matrix {
	t.Helper()
	ms, err := Parse(s, opts...)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	return ms
}

func TestParseMatrixFunction(t *testing.T) {
	ms := mustParse(t, "matrix(1,2,3,4,5,6)")
	if len(ms) != 1 {
		t.Fatalf("Parse() = %v, want one matrix", ms)
	}
	if got, want := ms[0].CSSVector(), [6]float64{1, 2, 3, 4, 5, 6}; got != want {
		t.Errorf("CSSVector() = %v, want %v", got, want)
	}
	if got := ms[0].Kind(); got != KindComposite {
		t.Errorf("Kind() = %v, want composite", got)
	}
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		in   string
		want Matrix
	}{
		{"translate(3px, 4px)", Translate(3, 4)},
		{"translate(3px)", Translate(3, 0)},
		{"translatex(3px)", Translate(3, 0)},
		{"translateX(3px)", Translate(3, 0)},
		{"translatey(-4.5px)", Translate(0, -4.5)},
		{"scale(2)", Scale(2, 2)},
		{"scale(2, 3)", Scale(2, 3)},
		{"scaleX(2)", Scale(2, 1)},
		{"scaleY(0.5)", Scale(1, 0.5)},
		{"rotate(1rad)", Rotate(1)},
		{"rotate(0.5turn)", Rotate(math.Pi)},
		{"skewX(1rad)", SkewX(1)},
		{"skewY(1rad)", SkewY(1)},
		{"skew(1rad)", Skew(1, 0)},
		{"skew(0.25rad, 0.5rad)", Skew(0.25, 0.5)},
		{"matrix(1, 0, 0, 1, 10, 20)", Translate(10, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ms := mustParse(t, tt.in)
			if len(ms) != 1 {
				t.Fatalf("Parse(%q) = %v, want one matrix", tt.in, ms)
			}
			if ms[0] != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, ms[0], tt.want)
			}
		})
	}
}

func TestParseAngleUnits(t *testing.T) {
	tests := []struct {
		in   string
		want float64 // radians
	}{
		{"rotate(90deg)", math.Pi / 2},
		{"rotate(-180deg)", -math.Pi},
		{"rotate(100grad)", math.Pi / 2},
		{"rotate(1.5rad)", 1.5},
		{"rotate(0.25turn)", math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ms := mustParse(t, tt.in)
			if len(ms) != 1 {
				t.Fatalf("Parse(%q) = %v, want one matrix", tt.in, ms)
			}
			if !approxEqual(ms[0], Rotate(tt.want), epsilon) {
				t.Errorf("Parse(%q) = %v, want ~Rotate(%v)", tt.in, ms[0], tt.want)
			}
		})
	}
}

func TestParseOrderPreserved(t *testing.T) {
	ms := mustParse(t, "scale(2) translate(3px)")
	if len(ms) != 2 || ms[0] != Scale(2, 2) || ms[1] != Translate(3, 0) {
		t.Fatalf("Parse() = %v, want [scale(2,2) translate(3,0)]", ms)
	}

	rev := mustParse(t, "translate(3px) scale(2)")
	if len(rev) != 2 || rev[0] != ms[1] || rev[1] != ms[0] {
		t.Fatalf("reversed input = %v, want reversed output", rev)
	}
}

func TestParseNormalization(t *testing.T) {
	tests := []string{
		"rotate(90deg) scale(2)",
		"  ROTATE(90DEG)   SCALE(2)  ",
		"transform: rotate(90deg) scale(2);",
		"Transform:\trotate( 90deg )\n scale( 2 )",
	}
	want := mustParse(t, tests[0])
	for _, in := range tests[1:] {
		got := mustParse(t, in)
		if len(got) != len(want) {
			t.Fatalf("Parse(%q) = %v, want %v", in, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Parse(%q)[%d] = %v, want %v", in, i, got[i], want[i])
			}
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "transform:;", "\t\n"} {
		ms, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", in, err)
		}
		if len(ms) != 0 {
			t.Errorf("Parse(%q) = %v, want no matrices", in, ms)
		}
	}
}

func TestParseUnitErrors(t *testing.T) {
	tests := []struct {
		in       string
		wantFunc string
		wantUnit string
	}{
		{"translate(3px, 4deg)", "translate", "deg"},
		{"translate(3)", "translate", ""},
		{"translate(3em)", "translate", "em"},
		{"scale(2deg)", "scale", "deg"},
		{"matrix(1,2,3,4,5px,6)", "matrix", "px"},
		{"rotate(20)", "rotate", ""},
		{"rotate(20px)", "rotate", "px"},
		{"skewX(1banana)", "skewx", "banana"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ms, err := Parse(tt.in)
			if ms != nil {
				t.Errorf("Parse(%q) = %v, want no matrices on error", tt.in, ms)
			}
			var ue *UnitError
			if !errors.As(err, &ue) {
				t.Fatalf("Parse(%q) error = %v, want *UnitError", tt.in, err)
			}
			if ue.Func != tt.wantFunc || ue.Unit != tt.wantUnit {
				t.Errorf("UnitError = %+v, want Func %q Unit %q", ue, tt.wantFunc, tt.wantUnit)
			}
		})
	}
}

func TestParseUnknownFunction(t *testing.T) {
	_, err := Parse("foo(1,2)")
	var ufe *UnknownFunctionError
	if !errors.As(err, &ufe) {
		t.Fatalf("Parse error = %v, want *UnknownFunctionError", err)
	}
	if ufe.Name != "foo" {
		t.Errorf("UnknownFunctionError.Name = %q, want %q", ufe.Name, "foo")
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []string{
		"rotate(90deg",            // unterminated body
		"rotate(90deg))",          // stray closing parenthesis
		"rotate((90deg))",         // nested parenthesis
		"rotate(90deg)x",          // junk after a function
		"rotate(90deg),scale(2)",  // comma between functions
		"1rotate(90deg)",          // name starts with a digit
		"rotate 90deg",            // missing parentheses
		"()",                      // no name
		"matrix(1,2,3)",           // wrong arity
		"rotate(1deg, 2deg)",      // wrong arity
		"scale()",                 // no arguments
		"scale(x)",                // not a number
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("Parse(%q) error = %v, want *SyntaxError", in, err)
			}
		})
	}
}

// Normalization collapses whitespace before tokenizing, so the tokenizer's
// single-space rule is exercised directly.
func TestTokenizeSpacing(t *testing.T) {
	if toks, err := tokenize("a(1) b(2)"); err != nil || len(toks) != 2 {
		t.Fatalf("tokenize() = %v, %v; want two tokens", toks, err)
	}
	for _, in := range []string{"a(1)  b(2)", "a(1) ", " a(1)"} {
		if _, err := tokenize(in); err == nil {
			t.Errorf("tokenize(%q) error = nil, want *SyntaxError", in)
		}
	}
}

func TestParse3DStrict(t *testing.T) {
	_, err := Parse("rotate3d(1deg,2deg,3deg)", WithStrict3D())
	var u3 *Unsupported3DError
	if !errors.As(err, &u3) {
		t.Fatalf("Parse error = %v, want *Unsupported3DError", err)
	}
	if u3.Name != "rotate3d" {
		t.Errorf("Unsupported3DError.Name = %q, want %q", u3.Name, "rotate3d")
	}
}

func TestParse3DTolerated(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	ms, err := Parse("rotate3d(1deg,2deg,3deg) scale(2)")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(ms) != 1 || ms[0] != Scale(2, 2) {
		t.Errorf("Parse() = %v, want the 3d function skipped", ms)
	}
	if out := buf.String(); !strings.Contains(out, "rotate3d") {
		t.Errorf("expected a diagnostic naming rotate3d, got %q", out)
	}
}

func TestParse3DFunctionSet(t *testing.T) {
	names := []string{
		"matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1)",
		"perspective(500px)",
		"rotate3d(1,1,1,45deg)",
		"rotateX(45deg)",
		"rotateY(45deg)",
		"rotateZ(45deg)",
		"scale3d(1,2,3)",
		"scaleZ(2)",
		"translate3d(1px,2px,3px)",
		"translateZ(3px)",
	}
	for _, in := range names {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in, WithStrict3D()); !isUnsupported3D(err) {
				t.Errorf("strict Parse(%q) error = %v, want *Unsupported3DError", in, err)
			}
			ms, err := Parse(in)
			if err != nil || len(ms) != 0 {
				t.Errorf("tolerant Parse(%q) = %v, %v; want empty, nil", in, ms, err)
			}
		})
	}
}

func isUnsupported3D(err error) bool {
	var u3 *Unsupported3DError
	return errors.As(err, &u3)
}

func TestParseMatrixComposes(t *testing.T) {
	m, err := ParseMatrix("scale(2) translate(4px, 5px)")
	if err != nil {
		t.Fatalf("ParseMatrix() error = %v", err)
	}
	if want := New(2, 0, 0, 2, 8, 10); m != want {
		t.Errorf("ParseMatrix() = %v, want %v", m, want)
	}

	id, err := ParseMatrix("")
	if err != nil {
		t.Fatalf("ParseMatrix(\"\") error = %v", err)
	}
	if id != Identity() {
		t.Errorf("ParseMatrix(\"\") = %v, want identity", id)
	}

	if _, err := ParseMatrix("bogus(1)"); err == nil {
		t.Error("ParseMatrix(bogus) error = nil, want error")
	}
}

func TestParseRoundTripThroughString(t *testing.T) {
	orig := New(0.5, 0.25, -0.25, 0.5, 12, -7)
	back, err := ParseMatrix(orig.String())
	if err != nil {
		t.Fatalf("ParseMatrix(%q) error = %v", orig.String(), err)
	}
	if back != orig {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}
