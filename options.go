package transform

import "golang.org/x/image/draw"

// ParseOption configures Parse.
//
// Example:
//
//	// Tolerant of 3D functions (default): they are skipped with a warning.
//	ms, err := transform.Parse(value)
//
//	// Strict: any 3D function is an error.
//	ms, err := transform.Parse(value, transform.WithStrict3D())
type ParseOption func(*parseOptions)

// parseOptions holds optional configuration for parsing.
type parseOptions struct {
	strict3D bool
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() parseOptions {
	return parseOptions{}
}

// WithStrict3D makes Parse fail with *Unsupported3DError when the input
// contains a recognized 3D transform function (matrix3d, rotate3d, ...).
// Without this option such functions are skipped and a diagnostic is
// emitted through the package logger, see SetLogger.
func WithStrict3D() ParseOption {
	return func(o *parseOptions) {
		o.strict3D = true
	}
}

// TransformImageOption configures TransformImage.
type TransformImageOption func(*transformImageOptions)

// transformImageOptions holds optional configuration for image warping.
type transformImageOptions struct {
	interp draw.Interpolator
}

// defaultTransformImageOptions returns the default image options.
func defaultTransformImageOptions() transformImageOptions {
	return transformImageOptions{interp: draw.BiLinear}
}

// WithInterpolator sets the sampling kernel used by TransformImage.
// The default is [draw.BiLinear]; use [draw.NearestNeighbor] for speed or
// [draw.CatmullRom] for quality.
//
// Example:
//
//	img, err := transform.TransformImage(src, m,
//		transform.WithInterpolator(draw.CatmullRom))
func WithInterpolator(ip draw.Interpolator) TransformImageOption {
	return func(o *transformImageOptions) {
		if ip != nil {
			o.interp = ip
		}
	}
}
