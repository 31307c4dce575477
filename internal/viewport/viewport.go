// Package viewport maps the display onto a rectangular region of the
// complex plane and keeps that mapping consistent under pan, zoom and
// window resize.
package viewport

// Point is a position in plane space, or a normalized screen position
// depending on context.
type Point struct {
	X, Y float64
}

// minSize is the smallest viewport size a zoom operation can reach.
// Zooming past it would collapse or invert the view.
const minSize = 1e-12

// Viewport owns the center/size/aspect state of the view. The plane-space
// bounds Min and Max are always derived from that state, never mutated
// directly: whichever display axis is longer is stretched by the aspect
// ratio so a square in plane space stays square on screen.
type Viewport struct {
	center Point
	size   float64
	aspect float64
	min    Point
	max    Point
}

// New returns a viewport showing the default view of the set:
// centered on the origin with the shorter axis spanning 2 plane units.
func New() *Viewport {
	v := &Viewport{
		center: Point{0, 0},
		size:   2.0,
		aspect: 1.0,
	}
	v.recomputeBounds()
	return v
}

func (v *Viewport) Center() Point   { return v.center }
func (v *Viewport) Size() float64   { return v.size }
func (v *Viewport) Aspect() float64 { return v.aspect }
func (v *Viewport) Min() Point      { return v.min }
func (v *Viewport) Max() Point      { return v.max }

// Width and Height report the plane-space extent of the view.
func (v *Viewport) Width() float64  { return v.max.X - v.min.X }
func (v *Viewport) Height() float64 { return v.max.Y - v.min.Y }

// Reset restores the default center and size, keeping the current aspect.
func (v *Viewport) Reset() {
	v.center = Point{0, 0}
	v.size = 2.0
	v.recomputeBounds()
}

// SetAspect records a new display aspect ratio (width / height).
// Non-positive ratios are ignored; they only occur on degenerate
// window sizes during teardown.
func (v *Viewport) SetAspect(ratio float64) {
	if ratio <= 0 {
		return
	}
	v.aspect = ratio
	v.recomputeBounds()
}

// SetCenter moves the view. With relative set, p is a screen-space delta in
// fractions of the display width/height and the center translates by
// delta*size on each axis, so a drag covers the same on-screen distance at
// any zoom level. Without it, p is a normalized [0,1]² screen coordinate
// mapped into the current bounds. Screen y grows downward while plane y
// grows upward, so the vertical sign flips in both modes.
func (v *Viewport) SetCenter(p Point, relative bool) {
	if relative {
		v.center.X += p.X * v.size
		v.center.Y -= p.Y * v.size
	} else {
		v.center.X = Map(p.X, 0, 1, v.min.X, v.max.X)
		v.center.Y = Map(p.Y, 0, 1, v.max.Y, v.min.Y)
	}
	v.recomputeBounds()
}

// SetSize zooms the view. With relative set, s is added to the current
// size (positive zooms out). The size is clamped so it stays strictly
// positive.
func (v *Viewport) SetSize(s float64, relative bool) {
	if relative {
		s += v.size
	}
	if s < minSize {
		s = minSize
	}
	v.size = s
	v.recomputeBounds()
}

// recomputeBounds derives min/max from center, size and aspect.
func (v *Viewport) recomputeBounds() {
	scaleX, scaleY := 1.0, 1.0
	if v.aspect > 1 {
		scaleX = v.aspect
	} else {
		scaleY = 1 / v.aspect
	}
	halfW := 0.5 * v.size * scaleX
	halfH := 0.5 * v.size * scaleY
	v.min = Point{v.center.X - halfW, v.center.Y - halfH}
	v.max = Point{v.center.X + halfW, v.center.Y + halfH}
}

// Map linearly remaps src from the range [srcMin,srcMax] to
// [dstMin,dstMax]. Both the screen-to-plane conversion and the compute
// pass UV mapping go through it.
func Map(src, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return (src-srcMin)/(srcMax-srcMin)*(dstMax-dstMin) + dstMin
}
