package game

// TestView is a headless harness used by tests and the headless
// report. It drives the real MapView pipeline — gesture machine,
// camera, selection, inbox — without any Ebiten window, via
// synthesized pointer events and explicit frame ticks.
type TestView struct {
	View *MapView
	Map  *MapState
	Log  *ViewLog

	mapSize  Size
	viewport Size
	verbose  bool
}

// viewOptionKind controls the pass in which an option is applied.
type viewOptionKind int

const (
	optInfra  viewOptionKind = iota // sizes, verbose — applied first
	optCamera                       // scale limits / scale — after the camera exists
	optPOI                          // add POIs
	optStatus                       // status overrides — after POIs exist
)

// ViewOption is a builder function applied to a TestView during
// construction.
type ViewOption struct {
	kind viewOptionKind
	fn   func(*TestView)
}

// WithMapSize sets the world map dimensions.
func WithMapSize(w, h float64) ViewOption {
	return ViewOption{optInfra, func(tv *TestView) {
		tv.mapSize = Size{W: w, H: h}
	}}
}

// WithViewportSize sets the viewport dimensions in pixels.
func WithViewportSize(w, h float64) ViewOption {
	return ViewOption{optInfra, func(tv *TestView) {
		tv.viewport = Size{W: w, H: h}
	}}
}

// WithVerbose enables per-tick camera state logging.
func WithVerbose(v bool) ViewOption {
	return ViewOption{optInfra, func(tv *TestView) {
		tv.verbose = v
	}}
}

// WithScaleLimits overrides the camera zoom range.
func WithScaleLimits(minScale, maxScale float64) ViewOption {
	return ViewOption{optCamera, func(tv *TestView) {
		tv.View.Camera().SetScaleLimits(minScale, maxScale)
	}}
}

// WithScale pins the starting scale (clamped to the limits).
func WithScale(s float64) ViewOption {
	return ViewOption{optCamera, func(tv *TestView) {
		c := tv.View.Camera()
		c.Scale = clampF(s, c.MinScale, c.MaxScale)
		c.Position = c.Constrain(c.Position)
	}}
}

// WithPOI adds a POI of the given type.
func WithPOI(id int, x, y float64, t POIType) ViewOption {
	return ViewOption{optPOI, func(tv *TestView) {
		tv.Map.Add(&POI{ID: id, Position: Vec2{x, y}, Type: t})
	}}
}

// WithStatus sets a POI's initial status without emitting a change
// event.
func WithStatus(id int, s POIStatus) ViewOption {
	return ViewOption{optStatus, func(tv *TestView) {
		if p := tv.Map.POIByID(id); p != nil {
			p.Status = s
		}
	}}
}

// NewTestView constructs the harness in four ordered passes:
//  1. Infrastructure (map/viewport size, verbose)
//  2. Wire MapState + MapView, then camera options
//  3. POIs
//  4. Status overrides
func NewTestView(opts ...ViewOption) *TestView {
	tv := &TestView{
		mapSize:  Size{W: 2048, H: 1536},
		viewport: Size{W: 640, H: 480},
	}
	for _, o := range opts {
		if o.kind == optInfra {
			o.fn(tv)
		}
	}
	tv.Map = NewMapState(tv.mapSize)
	tv.View = NewMapView(tv.viewport)
	tv.View.SetMapManager(tv.Map)
	tv.Log = NewViewLog(tv.verbose)
	tv.View.SetLog(tv.Log)
	for _, o := range opts {
		if o.kind == optCamera {
			o.fn(tv)
		}
	}
	for _, o := range opts {
		if o.kind == optPOI {
			o.fn(tv)
		}
	}
	for _, o := range opts {
		if o.kind == optStatus {
			o.fn(tv)
		}
	}
	return tv
}

// RunTicks advances the view by n frame ticks.
func (tv *TestView) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tv.View.Step()
	}
}

// Tap presses and releases pointer 1 at the same position, then runs
// one tick.
func (tv *TestView) Tap(x, y float64) {
	gm := tv.View.Gestures()
	gm.PointerDown(1, Vec2{x, y})
	gm.PointerUp(1, Vec2{x, y})
	tv.View.Step()
}

// Drag moves pointer 1 from (x0,y0) to (x1,y1) in steps segments,
// ticking once per segment.
func (tv *TestView) Drag(x0, y0, x1, y1 float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	gm := tv.View.Gestures()
	gm.PointerDown(1, Vec2{x0, y0})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		gm.PointerMove(1, Vec2{x0 + (x1-x0)*t, y0 + (y1-y0)*t})
		tv.View.Step()
	}
	gm.PointerUp(1, Vec2{x1, y1})
	tv.View.Step()
}

// Pinch runs a two-finger gesture: both pointers travel from their a
// positions to their b positions in steps segments.
func (tv *TestView) Pinch(a1, a2, b1, b2 Vec2, steps int) {
	if steps < 1 {
		steps = 1
	}
	gm := tv.View.Gestures()
	gm.PointerDown(1, a1)
	gm.PointerDown(2, a2)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		gm.PointerMove(1, Vec2{a1.X + (b1.X-a1.X)*t, a1.Y + (b1.Y-a1.Y)*t})
		gm.PointerMove(2, Vec2{a2.X + (b2.X-a2.X)*t, a2.Y + (b2.Y-a2.Y)*t})
		tv.View.Step()
	}
	gm.PointerUp(1, b1)
	gm.PointerUp(2, b2)
	tv.View.Step()
}
