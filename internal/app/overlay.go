package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gilbertfrancois/art-fractals/internal/render"
)

const crosshairSize = 8

// drawOverlay prints the viewport/resolution state and marks the pointer
// with a crosshair. Only drawn when debug.overlay is set.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	u := g.uniforms
	bufW, bufH := u.Width, u.Height
	if cfg := g.pipeline.BufferConfig(); cfg.Enable {
		bufW, bufH = render.Resolution(cfg.Size, float64(u.Width)/float64(u.Height))
	}
	status := fmt.Sprintf(
		"t=%.1fs  display=%dx%d  buffer=%dx%d\ncenter=(%.6f, %.6f)  size=%.6g\nmin=(%.6f, %.6f)  max=(%.6f, %.6f)\ndepth=%d  invert=%v  tps=%.0f",
		u.Time, u.Width, u.Height, bufW, bufH,
		g.view.Center().X, g.view.Center().Y, g.view.Size(),
		u.Min.X, u.Min.Y, u.Max.X, u.Max.Y,
		u.Params.MaxIterations, u.Params.Invert, ebiten.ActualTPS(),
	)
	if g.lastErr != nil {
		status += "\nerror: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	px := float32(u.Pointer.X * float64(u.Width))
	py := float32(u.Pointer.Y * float64(u.Height))
	crossColor := color.RGBA{R: 255, G: 64, B: 64, A: 255}
	vector.StrokeLine(screen, px-crosshairSize, py, px+crosshairSize, py, 1, crossColor, false)
	vector.StrokeLine(screen, px, py-crosshairSize, px, py+crosshairSize, 1, crossColor, false)
}
