// Package escape implements the per-point escape-time test for the
// Mandelbrot set.
package escape

import "math"

// Params are the user-facing evaluator settings, read once per frame.
type Params struct {
	// MaxIterations is the iteration cap. It is the single source of
	// truth: the evaluator has no built-in cap of its own.
	MaxIterations int
	// Invert flips the depth before quantization.
	Invert bool
}

// Depth iterates z <- z² + c starting from z = 0 with c = (re, im) and
// returns the normalized escape depth in [0,1]: n/maxIterations when
// |z|² exceeds 4 at step n, or 1 when the cap is reached without
// escaping (the point is classified as inside the set).
func Depth(re, im float64, maxIterations int) float64 {
	if maxIterations < 1 {
		maxIterations = 1
	}
	var x, y float64
	for i := 0; i < maxIterations; i++ {
		// (x+iy)² = (x²−y²) + i(2xy)
		xn := x*x - y*y + re
		yn := 2*x*y + im
		if xn*xn+yn*yn > 4 {
			return float64(i) / float64(maxIterations)
		}
		x, y = xn, yn
	}
	return 1.0
}

// Quantize rounds a depth half-up to the binary set {0,1}.
func Quantize(depth float64) float64 {
	return math.Floor(depth + 0.5)
}

// Shade applies the caller-side post-processing to a raw depth:
// optional inversion, then binary quantization.
func Shade(depth float64, p Params) float64 {
	if p.Invert {
		depth = 1 - depth
	}
	return Quantize(depth)
}
