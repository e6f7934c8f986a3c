package game

// Camera is the viewport controller: it owns the visible rectangle of
// the world map. Position is the world-space centre of that rectangle;
// Scale is in world units per screen pixel, so the visible rectangle is
// Viewport.W*Scale x Viewport.H*Scale. Every mutation re-clamps so that
// Constrain(Position) == Position holds at all times.
type Camera struct {
	Position Vec2
	Scale    float64
	Viewport Size // viewport size in screen pixels
	MapSize  Size // map size in world units

	MinScale float64
	MaxScale float64

	initialScale float64

	anim camAnim
}

// focusDuration is the length of an animated FocusOn/Reset in frame
// ticks (60 TPS, so 30 ticks = 0.5s).
const focusDuration = 30

type camAnim struct {
	active    bool
	elapsed   int
	fromPos   Vec2
	toPos     Vec2
	fromScale float64
	toScale   float64
}

// NewCamera creates a camera showing the whole map: scale is the
// fit-to-screen value and the position is the map centre. The default
// zoom range runs from a 6x close-up back out to the full-map view.
func NewCamera(viewport, mapSize Size) *Camera {
	c := &Camera{
		Viewport: viewport,
		MapSize:  mapSize,
	}
	c.recompute()
	c.Scale = c.initialScale
	c.Position = Vec2{mapSize.W / 2, mapSize.H / 2}
	return c
}

// SetScaleLimits overrides the zoom range. Current scale is re-clamped
// and the position re-constrained.
func (c *Camera) SetScaleLimits(minScale, maxScale float64) {
	c.MinScale = minScale
	c.MaxScale = maxScale
	c.Scale = clampF(c.Scale, c.MinScale, c.MaxScale)
	c.Position = c.Constrain(c.Position)
}

// Resize recomputes the camera for a new viewport size from scratch
// rather than adjusting incrementally.
func (c *Camera) Resize(viewport Size) {
	c.Viewport = viewport
	c.recompute()
	c.Scale = clampF(c.Scale, c.MinScale, c.MaxScale)
	c.Position = c.Constrain(c.Position)
}

// recompute derives the fit-to-screen scale and default limits. The
// fit scale is the one at which the whole map is visible on both axes.
func (c *Camera) recompute() {
	fit := c.MapSize.W / c.Viewport.W
	if s := c.MapSize.H / c.Viewport.H; s > fit {
		fit = s
	}
	c.initialScale = fit
	if c.MinScale == 0 && c.MaxScale == 0 {
		c.MinScale = fit / 6
		c.MaxScale = fit
	}
}

// InitialScale returns the fit-to-screen scale Reset restores.
func (c *Camera) InitialScale() float64 { return c.initialScale }

// Pan moves the camera by a screen-space delta. Dragging the content
// right moves the camera left, so the delta is subtracted after
// conversion to world units. Cancels any running focus animation.
func (c *Camera) Pan(deltaScreen Vec2) {
	c.anim.active = false
	c.Position.X -= deltaScreen.X * c.Scale
	c.Position.Y -= deltaScreen.Y * c.Scale
	c.Position = c.Constrain(c.Position)
}

// PinchZoom applies a pinch gesture. ratio is the current finger
// distance divided by the distance at gesture start, baseline is the
// scale captured at gesture start: spreading the fingers gives
// ratio > 1, which shrinks the world-units-per-pixel scale and zooms
// in. Scale is clamped to the limits and the position re-constrained,
// since a smaller visible rectangle changes the valid bounds.
func (c *Camera) PinchZoom(baseline, ratio float64) {
	if ratio <= 0 {
		return
	}
	c.anim.active = false
	c.Scale = clampF(baseline/ratio, c.MinScale, c.MaxScale)
	c.Position = c.Constrain(c.Position)
}

// ZoomBy multiplies the scale by factor (mouse wheel path).
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.anim.active = false
	c.Scale = clampF(c.Scale*factor, c.MinScale, c.MaxScale)
	c.Position = c.Constrain(c.Position)
}

// Constrain clamps a world position so the visible rectangle stays
// inside [0, MapSize] on both axes. When the map is smaller than the
// visible rectangle the min bound exceeds the max and the clamp
// degenerates to the min bound.
func (c *Camera) Constrain(p Vec2) Vec2 {
	halfW := c.Viewport.W * c.Scale / 2
	halfH := c.Viewport.H * c.Scale / 2
	return Vec2{
		X: clampF(p.X, halfW, c.MapSize.W-halfW),
		Y: clampF(p.Y, halfH, c.MapSize.H-halfH),
	}
}

// FocusOn moves the camera to the constrained target without changing
// scale, either immediately or eased over focusDuration ticks.
func (c *Camera) FocusOn(target Vec2, animated bool) {
	target = c.Constrain(target)
	if !animated {
		c.anim.active = false
		c.Position = target
		return
	}
	c.startAnim(target, c.Scale)
}

// Reset restores the fit-to-screen scale and centres on the map.
func (c *Camera) Reset(animated bool) {
	center := Vec2{c.MapSize.W / 2, c.MapSize.H / 2}
	if !animated {
		c.anim.active = false
		c.Scale = c.initialScale
		c.Position = c.Constrain(center)
		return
	}
	c.startAnim(center, c.initialScale)
}

func (c *Camera) startAnim(toPos Vec2, toScale float64) {
	c.anim = camAnim{
		active:    true,
		fromPos:   c.Position,
		toPos:     toPos,
		fromScale: c.Scale,
		toScale:   toScale,
	}
}

// Animating reports whether a focus/reset animation is in progress.
func (c *Camera) Animating() bool { return c.anim.active }

// Tick advances the focus animation by one frame. The final frame
// snaps exactly onto the target so Reset lands on the map centre and
// initial scale with no floating-point drift.
func (c *Camera) Tick() {
	if !c.anim.active {
		return
	}
	c.anim.elapsed++
	if c.anim.elapsed >= focusDuration {
		c.anim.active = false
		c.Scale = c.anim.toScale
		c.Position = c.Constrain(c.anim.toPos)
		return
	}
	t := easeInOut(float64(c.anim.elapsed) / focusDuration)
	c.Scale = c.anim.fromScale + (c.anim.toScale-c.anim.fromScale)*t
	c.Position = c.Constrain(Vec2{
		X: c.anim.fromPos.X + (c.anim.toPos.X-c.anim.fromPos.X)*t,
		Y: c.anim.fromPos.Y + (c.anim.toPos.Y-c.anim.fromPos.Y)*t,
	})
}

// easeInOut is quadratic ease-in-ease-out over t in [0,1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// ScreenToWorld converts a screen pixel to world coordinates.
//
//	world = (screen - viewport/2) * scale + position
func (c *Camera) ScreenToWorld(s Vec2) Vec2 {
	return Vec2{
		X: (s.X-c.Viewport.W/2)*c.Scale + c.Position.X,
		Y: (s.Y-c.Viewport.H/2)*c.Scale + c.Position.Y,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(w Vec2) Vec2 {
	return Vec2{
		X: (w.X-c.Position.X)/c.Scale + c.Viewport.W/2,
		Y: (w.Y-c.Position.Y)/c.Scale + c.Viewport.H/2,
	}
}
