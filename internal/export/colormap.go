package export

import (
	"image"
	"math"
	"math/rand"
)

// Gray broadcasts the depth straight to all three channels.
type Gray struct{}

func (Gray) Apply(field []float64, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, d := range field {
		c := uint8(clamp01(d) * 255)
		img.Pix[i*4+0] = c
		img.Pix[i*4+1] = c
		img.Pix[i*4+2] = c
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// PolyColor maps the depth field through a random polynomial-plus-sinusoid
// curve per channel, then normalizes each channel over the whole field.
// Every application draws fresh coefficients, so repeated exports of the
// same field give different palettes.
type PolyColor struct {
	order int
	rng   *rand.Rand
}

// NewPolyColor creates a polynomial colormap of the given order. The seed
// makes the palette sequence reproducible.
func NewPolyColor(order int, seed int64) *PolyColor {
	if order < 1 {
		order = 1
	}
	return &PolyColor{
		order: order,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (p *PolyColor) Apply(field []float64, w, h int) *image.RGBA {
	// order+1 coefficients per channel, all in [0,1).
	coef := make([][]float64, 3)
	for ch := range coef {
		coef[ch] = make([]float64, p.order+1)
		for i := range coef[ch] {
			coef[ch][i] = p.rng.Float64()
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buffer := make([]float64, len(field))
	for ch := 0; ch < 3; ch++ {
		p.mapChannel(buffer, field, coef[ch])
		for i, v := range buffer {
			img.Pix[i*4+ch] = uint8(v * 255)
		}
	}
	for i := 0; i < len(field); i++ {
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// mapChannel evaluates sum_i of sin(c_i^i * 2π * d) + c_i * d^i over the
// field and normalizes the result to [0,1].
func (p *PolyColor) mapChannel(dst, field []float64, coef []float64) {
	for j, d := range field {
		var v float64
		for i, c := range coef {
			freq := math.Pow(c, float64(i)) * 2 * math.Pi
			v += math.Sin(freq * d)
			v += c * math.Pow(d, float64(i))
		}
		dst[j] = v
	}
	normalize(dst)
}

// normalize rescales dst to [0,1] by its min/max. A constant field maps
// to all zeros instead of dividing by zero.
func normalize(dst []float64) {
	if len(dst) == 0 {
		return
	}
	lo, hi := dst[0], dst[0]
	for _, v := range dst {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	for i := range dst {
		dst[i] = (dst[i] - lo) / span
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
