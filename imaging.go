package transform

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// TransformImage warps src through the matrix and returns the result. The
// destination bounds are the integer bounding box of the four transformed
// source corners, so the whole warped image is retained, translation
// included. Sampling uses bilinear interpolation unless overridden with
// WithInterpolator.
//
// A matrix with zero determinant collapses the image onto a line or point
// and cannot be sampled; TransformImage returns ErrSingularMatrix for it.
func TransformImage(src image.Image, m Matrix, opts ...TransformImageOption) (image.Image, error) {
	if m.Determinant() == 0 {
		return nil, ErrSingularMatrix
	}
	o := defaultTransformImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sb := src.Bounds()
	corners := [4]Point{
		Pt(float64(sb.Min.X), float64(sb.Min.Y)),
		Pt(float64(sb.Max.X), float64(sb.Min.Y)),
		Pt(float64(sb.Min.X), float64(sb.Max.Y)),
		Pt(float64(sb.Max.X), float64(sb.Max.Y)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := m.TransformPoint(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	dst := image.NewRGBA(image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	))
	s2d := f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
	o.interp.Transform(dst, s2d, src, sb, draw.Src, nil)
	return dst, nil
}
