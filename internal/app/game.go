// Package app ties the viewer together: it implements ebiten.Game and
// drives one tick per display refresh. Each tick polls input, applies the
// resulting intents to the viewport, snapshots the uniforms and renders.
package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gilbertfrancois/art-fractals/internal/config"
	"github.com/gilbertfrancois/art-fractals/internal/escape"
	"github.com/gilbertfrancois/art-fractals/internal/export"
	"github.com/gilbertfrancois/art-fractals/internal/render"
	"github.com/gilbertfrancois/art-fractals/internal/viewport"
)

// Game is the frame driver. Everything it owns is mutated on the game
// loop goroutine only; ebiten serializes Update and Draw for us.
type Game struct {
	cfg      config.Config
	log      *slog.Logger
	view     *viewport.Viewport
	pipeline *render.Pipeline
	input    *InputController

	start    time.Time
	width    int
	height   int
	pointer  viewport.Point
	uniforms render.Uniforms
	lastErr  error
}

// New builds the game from an explicit configuration value. Runtime
// behavior is owned here, not by package-level state.
func New(cfg config.Config, log *slog.Logger) *Game {
	return &Game{
		cfg:  cfg,
		log:  log,
		view: viewport.New(),
		pipeline: render.New(render.BufferConfig{
			Enable:    cfg.Framebuffer.Enable,
			Size:      cfg.Framebuffer.Size,
			Antialias: cfg.Framebuffer.Antialias,
		}, log),
		input: &InputController{},
		start: time.Now(),
	}
}

// Update runs the per-tick logic: poll input, apply intents to the
// viewport, rebuild the uniform snapshot. Input applied here is visible
// from this tick's snapshot onwards.
func (g *Game) Update() error {
	in := pollInput()
	intents := g.input.Process(in, g.width, g.height, g.view.Size())

	if intents.Quit {
		return ebiten.Termination
	}
	if intents.Reset {
		g.view.Reset()
		g.log.Debug("viewport reset")
	}
	if intents.HasPan {
		g.view.SetCenter(intents.Pan, true)
	}
	if intents.HasZoom {
		g.view.SetSize(intents.Zoom, true)
		g.log.Debug("zoom",
			"size", g.view.Size(),
			"center_x", g.view.Center().X, "center_y", g.view.Center().Y)
	}
	if intents.ToggleBuffer || intents.ToggleAA {
		cfg := g.pipeline.BufferConfig()
		if intents.ToggleBuffer {
			cfg.Enable = !cfg.Enable
		}
		if intents.ToggleAA {
			cfg.Antialias = !cfg.Antialias
		}
		g.pipeline.SetBufferConfig(cfg)
		g.log.Debug("buffer config changed", "enabled", cfg.Enable, "antialias", cfg.Antialias)
	}
	if intents.ToggleInvert {
		g.cfg.Mandelbrot.Invert = !g.cfg.Mandelbrot.Invert
	}
	if intents.Export {
		if err := g.export(); err != nil {
			g.lastErr = err
			g.log.Error("export failed", "error", err)
		}
	}

	// A degenerate display (mid-teardown, minimized) skips the tick.
	if g.width <= 0 || g.height <= 0 {
		return nil
	}

	g.pointer = viewport.Point{
		X: float64(in.CursorX) / float64(g.width),
		Y: float64(in.CursorY) / float64(g.height),
	}

	g.uniforms = render.Uniforms{
		Time:    time.Since(g.start).Seconds(),
		Width:   g.width,
		Height:  g.height,
		Pointer: g.pointer,
		Min:     g.view.Min(),
		Max:     g.view.Max(),
		Params: escape.Params{
			MaxIterations: g.cfg.Mandelbrot.Depth,
			Invert:        g.cfg.Mandelbrot.Invert,
		},
	}
	return nil
}

// Draw hands the current snapshot to the render pipeline.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	g.pipeline.Frame(screen, g.uniforms)
	if g.cfg.Debug.Overlay {
		g.drawOverlay(screen)
	}
}

// Layout reports the rendering size and doubles as the resize handler:
// the viewport aspect follows the window, the pipeline re-provisions its
// buffer on the next frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.width > 0 && g.height > 0 {
			g.view.SetAspect(float64(g.width) / float64(g.height))
			g.log.Debug("resize",
				"width", g.width, "height", g.height,
				"aspect", g.view.Aspect(),
				"min_x", g.view.Min().X, "min_y", g.view.Min().Y,
				"max_x", g.view.Max().X, "max_y", g.view.Max().Y)
		}
	}
	return outsideWidth, outsideHeight
}

// export renders the last depth field through the configured colormap
// and writes it where the user points the save dialog. The dialog blocks
// the loop; snapshots are an explicit user action, not a per-frame path.
func (g *Game) export() error {
	field, w, h := g.pipeline.Field()
	if len(field) == 0 {
		return nil
	}
	path, ok, err := export.Dialog(g.cfg.Export.Folder)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	img := export.ByName(g.cfg.Export.Colormap).Apply(field, w, h)
	if err := export.SavePNG(img, path); err != nil {
		return err
	}
	g.log.Info("snapshot saved", "path", path, "width", w, "height", h,
		"colormap", g.cfg.Export.Colormap)
	return nil
}
