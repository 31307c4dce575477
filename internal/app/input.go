package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gilbertfrancois/art-fractals/internal/viewport"
)

// InputState is the polled state of the pointer and keys for a single
// tick. Polling is separated from the handling logic so the handling
// stays testable without a display.
type InputState struct {
	CursorX, CursorY int
	Pressed          bool
	JustPressed      bool
	JustReleased     bool
	// WheelY is the vertical wheel delta for this tick. Positive means
	// wheel-down / zoom out, matching the size-delta convention below.
	WheelY float64

	ResetView    bool
	Export       bool
	ToggleBuffer bool
	ToggleAA     bool
	ToggleInvert bool
	Quit         bool
}

// pollInput reads ebiten's input state for the current tick.
func pollInput() InputState {
	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	return InputState{
		CursorX:      x,
		CursorY:      y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		WheelY:       -wheelY,
		ResetView:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		Export:       inpututil.IsKeyJustPressed(ebiten.KeyS),
		ToggleBuffer: inpututil.IsKeyJustPressed(ebiten.KeyF),
		ToggleAA:     inpututil.IsKeyJustPressed(ebiten.KeyA),
		ToggleInvert: inpututil.IsKeyJustPressed(ebiten.KeyI),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Intents are the viewport mutations derived from one tick of input.
// The frame driver applies them at a fixed point in the tick, so input
// handlers never touch the viewport directly.
type Intents struct {
	Pan     viewport.Point // normalized screen-fraction delta
	HasPan  bool
	Zoom    float64 // relative size delta, positive zooms out
	HasZoom bool

	Reset        bool
	Export       bool
	ToggleBuffer bool
	ToggleAA     bool
	ToggleInvert bool
	Quit         bool
}

// InputController turns raw pointer state into pan/zoom intents. Drag
// motion is differential: the anchor moves to the current position after
// every tick, so each intent carries only the movement since the last one.
type InputController struct {
	dragging bool
	anchor   viewport.Point
}

// Process derives the intents for one tick. w and h are the display size
// in pixels; size is the current viewport size, which scales the wheel
// step so zoom speed stays proportional to the current zoom level.
func (c *InputController) Process(in InputState, w, h int, size float64) Intents {
	var out Intents
	out.Reset = in.ResetView
	out.Export = in.Export
	out.ToggleBuffer = in.ToggleBuffer
	out.ToggleAA = in.ToggleAA
	out.ToggleInvert = in.ToggleInvert
	out.Quit = in.Quit
	if w <= 0 || h <= 0 {
		c.dragging = false
		return out
	}

	pos := viewport.Point{
		X: float64(in.CursorX) / float64(w),
		Y: float64(in.CursorY) / float64(h),
	}

	if in.JustPressed {
		c.dragging = true
		c.anchor = pos
	}
	if c.dragging && in.Pressed {
		delta := viewport.Point{X: pos.X - c.anchor.X, Y: pos.Y - c.anchor.Y}
		if delta.X != 0 || delta.Y != 0 {
			out.Pan = delta
			out.HasPan = true
		}
		c.anchor = pos
	}
	if in.JustReleased || !in.Pressed {
		c.dragging = false
	}

	if in.WheelY != 0 {
		out.Zoom = in.WheelY / float64(h) * size
		out.HasZoom = true
	}
	return out
}

// Dragging reports whether a drag is in progress.
func (c *InputController) Dragging() bool {
	return c.dragging
}
