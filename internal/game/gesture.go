package game

// GesturePhase is the current mode of the gesture session.
type GesturePhase int

const (
	PhaseIdle GesturePhase = iota
	PhasePanning
	PhasePinching
)

func (p GesturePhase) String() string {
	switch p {
	case PhasePanning:
		return "panning"
	case PhasePinching:
		return "pinching"
	default:
		return "idle"
	}
}

// tapThreshold is the maximum total travel in screen pixels for a
// press/release pair to count as a tap.
const tapThreshold = 10.0

// GestureSink receives the interpreted effects of a gesture session.
// MapView implements it; the harness drives the machine directly.
type GestureSink interface {
	// GesturePan carries a screen-space drag delta.
	GesturePan(delta Vec2)
	// GesturePinchBegin marks the start (or restart) of a pinch, so
	// the sink can capture its scale baseline.
	GesturePinchBegin()
	// GesturePinch carries the ratio of the current finger distance
	// to the distance at pinch start.
	GesturePinch(ratio float64)
	// GestureTap fires at release of a sub-threshold press.
	GestureTap(screen Vec2)
}

type pointer struct {
	id       int
	press    Vec2
	last     Vec2
	travel   float64
	dragging bool // travel exceeded the tap threshold
}

// GestureMachine turns raw pointer events into pan/pinch/tap effects.
// States: Idle -> Panning (1 pointer) -> Idle; Idle -> Pinching
// (2 pointers) -> Idle. Crossing the 1<->2 pointer-count boundary
// recomputes the pan or pinch baseline. Cancellation discards the
// session without firing any effect. Move/up events for pointer ids
// never pressed are ignored silently.
type GestureMachine struct {
	sink GestureSink

	phase      GesturePhase
	pointers   []*pointer // press order; first two drive the pinch
	pinchBase  float64    // finger distance at pinch start
	everPinch  bool       // session saw two pointers; suppresses tap
	panPointer int        // id of the pointer driving a pan
}

func NewGestureMachine(sink GestureSink) *GestureMachine {
	return &GestureMachine{sink: sink}
}

// Phase returns the current state.
func (gm *GestureMachine) Phase() GesturePhase { return gm.phase }

func (gm *GestureMachine) find(id int) *pointer {
	for _, p := range gm.pointers {
		if p.id == id {
			return p
		}
	}
	return nil
}

// PointerDown registers a new pointer and re-evaluates the mode.
// Duplicate downs for a live id are ignored.
func (gm *GestureMachine) PointerDown(id int, pos Vec2) {
	if gm.find(id) != nil {
		return
	}
	gm.pointers = append(gm.pointers, &pointer{id: id, press: pos, last: pos})
	gm.reevaluate()
}

// PointerMove updates a pointer and feeds the active mode.
func (gm *GestureMachine) PointerMove(id int, pos Vec2) {
	p := gm.find(id)
	if p == nil {
		return
	}
	delta := pos.Sub(p.last)
	p.travel += p.last.Dist(pos)
	p.last = pos

	switch gm.phase {
	case PhasePanning:
		if p.id != gm.panPointer {
			return
		}
		// Drag slop: a press only starts panning once total travel
		// exceeds the tap threshold, so sub-threshold taps never move
		// the camera. The first pan delta covers the slop distance to
		// keep the content under the finger.
		if !p.dragging {
			if p.travel < tapThreshold {
				return
			}
			p.dragging = true
			delta = pos.Sub(p.press)
		}
		gm.sink.GesturePan(delta)
	case PhasePinching:
		if len(gm.pointers) >= 2 && (p == gm.pointers[0] || p == gm.pointers[1]) && gm.pinchBase > 0 {
			d := gm.pointers[0].last.Dist(gm.pointers[1].last)
			gm.sink.GesturePinch(d / gm.pinchBase)
		}
	}
}

// PointerUp removes a pointer, firing a tap when the whole session was
// a single sub-threshold press, then re-evaluates the mode.
func (gm *GestureMachine) PointerUp(id int, pos Vec2) {
	p := gm.find(id)
	if p == nil {
		return
	}
	p.travel += p.last.Dist(pos)
	p.last = pos

	tap := len(gm.pointers) == 1 && !gm.everPinch && p.travel < tapThreshold

	gm.remove(id)
	gm.reevaluate()

	if tap {
		gm.sink.GestureTap(pos)
	}
}

// Cancel tears the session down immediately and unconditionally: all
// baselines are discarded and no tap/pan/pinch effect fires.
func (gm *GestureMachine) Cancel() {
	gm.pointers = gm.pointers[:0]
	gm.phase = PhaseIdle
	gm.pinchBase = 0
	gm.everPinch = false
}

func (gm *GestureMachine) remove(id int) {
	for i, p := range gm.pointers {
		if p.id == id {
			gm.pointers = append(gm.pointers[:i], gm.pointers[i+1:]...)
			return
		}
	}
}

// reevaluate picks the mode from the live pointer count, recomputing
// baselines whenever the count crosses 1<->2.
func (gm *GestureMachine) reevaluate() {
	switch {
	case len(gm.pointers) == 0:
		gm.phase = PhaseIdle
		gm.pinchBase = 0
		gm.everPinch = false
	case len(gm.pointers) == 1:
		p := gm.pointers[0]
		// Fresh pan baseline: deltas start from the current position.
		gm.panPointer = p.id
		if gm.everPinch {
			// Pinch collapsing to one finger keeps panning without
			// re-arming the slop.
			p.dragging = true
			p.press = p.last
		}
		gm.phase = PhasePanning
		gm.pinchBase = 0
	default:
		gm.phase = PhasePinching
		gm.everPinch = true
		gm.pinchBase = gm.pointers[0].last.Dist(gm.pointers[1].last)
		gm.sink.GesturePinchBegin()
	}
}
