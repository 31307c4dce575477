// Package render runs the two-pass render pipeline: a compute pass that
// evaluates the escape-time field into an offscreen buffer, and a
// composite pass that upsamples that buffer to the display.
package render

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gilbertfrancois/art-fractals/internal/escape"
	"github.com/gilbertfrancois/art-fractals/internal/viewport"
)

// Uniforms is the immutable per-frame snapshot handed to the pipeline.
// It is rebuilt from scratch every tick; the pipeline only reads it.
type Uniforms struct {
	Time          float64        // seconds since startup, monotonic
	Width, Height int            // display resolution in pixels
	Pointer       viewport.Point // normalized cursor position
	Min, Max      viewport.Point // viewport plane-space bounds
	Params        escape.Params
}

// BufferConfig controls the offscreen buffer. With Enable off the compute
// pass runs at display resolution and the composite pass degenerates to a
// 1:1 copy.
type BufferConfig struct {
	Enable    bool
	Size      int  // target dimension of the longer axis, pixels
	Antialias bool // linear instead of nearest upsampling
}

// Pipeline owns the offscreen buffer exclusively. The buffer is replaced
// wholesale whenever the resolution it should have changes; it is never
// resized in place.
type Pipeline struct {
	cfg     BufferConfig
	log     *slog.Logger
	workers int

	buffer *ebiten.Image
	pix    []byte
	field  []float64 // raw (pre-quantization) depth values, for export
	w, h   int
}

// New creates a pipeline. The buffer itself is provisioned lazily on the
// first frame, once the display size is known.
func New(cfg BufferConfig, log *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		log:     log,
		workers: runtime.NumCPU(),
	}
}

// SetBufferConfig swaps the buffer configuration. The buffer is
// re-provisioned on the next frame if the new config calls for a
// different resolution.
func (p *Pipeline) SetBufferConfig(cfg BufferConfig) {
	p.cfg = cfg
}

// BufferConfig returns the active buffer configuration.
func (p *Pipeline) BufferConfig() BufferConfig {
	return p.cfg
}

// Frame executes both passes for one tick. Degenerate display sizes skip
// the frame entirely.
func (p *Pipeline) Frame(dst *ebiten.Image, u Uniforms) {
	if u.Width <= 0 || u.Height <= 0 {
		return
	}
	p.provision(u)
	p.compute(u)
	p.composite(dst)
}

// Field returns a copy of the last computed depth field and its
// dimensions. The copy keeps the exporter from racing a later frame.
func (p *Pipeline) Field() ([]float64, int, int) {
	out := make([]float64, len(p.field))
	copy(out, p.field)
	return out, p.w, p.h
}

// Resolution computes the offscreen buffer resolution for a target longer
// axis and a display aspect ratio: the longer display axis gets the
// target, the shorter one is scaled down by the aspect and floored.
// Either axis flooring to zero is clamped to 1.
func Resolution(target int, aspect float64) (int, int) {
	if target < 1 {
		target = 1
	}
	w, h := target, target
	if aspect >= 1 {
		h = int(float64(target) / aspect)
	} else {
		w = int(float64(target) * aspect)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// provision recreates the buffer when the resolution it should have does
// not match the one it has. The old buffer is discarded, never mutated.
func (p *Pipeline) provision(u Uniforms) {
	w, h := u.Width, u.Height
	if p.cfg.Enable {
		w, h = Resolution(p.cfg.Size, float64(u.Width)/float64(u.Height))
	}
	if p.buffer != nil && w == p.w && h == p.h {
		return
	}
	if p.buffer != nil {
		p.buffer.Deallocate()
	}
	p.buffer = ebiten.NewImage(w, h)
	p.pix = make([]byte, w*h*4)
	p.field = make([]float64, w*h)
	p.w, p.h = w, h
	p.log.Debug("offscreen buffer provisioned",
		"width", w, "height", h,
		"display_width", u.Width, "display_height", u.Height,
		"enabled", p.cfg.Enable, "antialias", p.cfg.Antialias)
}

// compute runs the escape-time evaluation over every buffer pixel,
// splitting the rows into one band per worker. WritePixels happens only
// after every band has finished, so the tick stays logically synchronous.
func (p *Pipeline) compute(u Uniforms) {
	bands := p.workers
	if bands > p.h {
		bands = p.h
	}
	step := (p.h + bands - 1) / bands
	var wg sync.WaitGroup
	for y0 := 0; y0 < p.h; y0 += step {
		y1 := y0 + step
		if y1 > p.h {
			y1 = p.h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			renderBand(p.field, p.pix, p.w, p.h, y0, y1, u)
		}(y0, y1)
	}
	wg.Wait()
	p.buffer.WritePixels(p.pix)
}

// renderBand evaluates the rows [y0,y1). Pixel centers map through the
// viewport bounds with the vertical axis flipped (row 0 is max.Y).
func renderBand(field []float64, pix []byte, w, h, y0, y1 int, u Uniforms) {
	for yi := y0; yi < y1; yi++ {
		cy := viewport.Map((float64(yi)+0.5)/float64(h), 0, 1, u.Max.Y, u.Min.Y)
		for xi := 0; xi < w; xi++ {
			cx := viewport.Map((float64(xi)+0.5)/float64(w), 0, 1, u.Min.X, u.Max.X)
			d := escape.Depth(cx, cy, u.Params.MaxIterations)
			idx := yi*w + xi
			field[idx] = d
			c := byte(escape.Shade(d, u.Params) * 255)
			pix[idx*4+0] = c
			pix[idx*4+1] = c
			pix[idx*4+2] = c
			pix[idx*4+3] = 0xff
		}
	}
}

// composite scales the buffer onto the display. The sampler choice makes
// the upsample blocky or smooth; ebiten hangs the filter on the draw call
// rather than the image, so flipping antialias needs no reallocation.
func (p *Pipeline) composite(dst *ebiten.Image) {
	dw := dst.Bounds().Dx()
	dh := dst.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dw)/float64(p.w), float64(dh)/float64(p.h))
	if p.cfg.Antialias {
		op.Filter = ebiten.FilterLinear
	} else {
		op.Filter = ebiten.FilterNearest
	}
	dst.DrawImage(p.buffer, op)
}
