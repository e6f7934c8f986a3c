package game

import "testing"

// recordingSink captures the interpreted gesture stream.
type recordingSink struct {
	pans        []Vec2
	pinchBegins int
	ratios      []float64
	taps        []Vec2
}

func (s *recordingSink) GesturePan(delta Vec2) { s.pans = append(s.pans, delta) }

func (s *recordingSink) GesturePinchBegin() { s.pinchBegins++ }

func (s *recordingSink) GesturePinch(ratio float64) { s.ratios = append(s.ratios, ratio) }

func (s *recordingSink) GestureTap(screen Vec2) { s.taps = append(s.taps, screen) }

func TestGesture_TapUnderThreshold(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 100, Y: 100})
	gm.PointerMove(1, Vec2{X: 103, Y: 100}) // 3px of jitter
	gm.PointerUp(1, Vec2{X: 103, Y: 100})

	if len(sink.taps) != 1 {
		t.Fatalf("taps = %d, want 1", len(sink.taps))
	}
	if sink.taps[0].X != 103 || sink.taps[0].Y != 100 {
		t.Fatalf("tap position = %+v, want release position (103,100)", sink.taps[0])
	}
	if len(sink.pans) != 0 {
		t.Fatalf("sub-threshold press emitted %d pans, want 0", len(sink.pans))
	}
	if gm.Phase() != PhaseIdle {
		t.Fatalf("phase after release = %v, want idle", gm.Phase())
	}
}

func TestGesture_DragBeyondThresholdIsNotATap(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 0, Y: 0})
	gm.PointerMove(1, Vec2{X: 20, Y: 0})
	if gm.Phase() != PhasePanning {
		t.Fatalf("phase = %v, want panning", gm.Phase())
	}
	gm.PointerMove(1, Vec2{X: 30, Y: 0})
	gm.PointerUp(1, Vec2{X: 30, Y: 0})

	if len(sink.taps) != 0 {
		t.Fatal("a 30px drag must not fire a tap")
	}
	// First pan covers the slop distance from the press point; the
	// second carries the incremental delta.
	if len(sink.pans) != 2 {
		t.Fatalf("pans = %d, want 2", len(sink.pans))
	}
	if sink.pans[0].X != 20 || sink.pans[1].X != 10 {
		t.Fatalf("pan deltas = %v, want X components 20 then 10", sink.pans)
	}
}

func TestGesture_TravelAccumulatesAcrossJitter(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	// Back-and-forth jitter: net displacement 0, total travel 12px.
	gm.PointerDown(1, Vec2{X: 0, Y: 0})
	gm.PointerMove(1, Vec2{X: 3, Y: 0})
	gm.PointerMove(1, Vec2{X: -3, Y: 0})
	gm.PointerMove(1, Vec2{X: 0, Y: 0})
	gm.PointerUp(1, Vec2{X: 0, Y: 0})

	if len(sink.taps) != 0 {
		t.Fatal("accumulated travel past the threshold must suppress the tap")
	}
}

func TestGesture_PinchRatio(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 100, Y: 100})
	gm.PointerDown(2, Vec2{X: 140, Y: 100}) // base distance 40
	if gm.Phase() != PhasePinching {
		t.Fatalf("phase = %v, want pinching", gm.Phase())
	}
	if sink.pinchBegins != 1 {
		t.Fatalf("pinch begins = %d, want 1", sink.pinchBegins)
	}

	gm.PointerMove(2, Vec2{X: 180, Y: 100}) // distance 80 -> ratio 2
	if len(sink.ratios) != 1 || sink.ratios[0] != 2.0 {
		t.Fatalf("ratios = %v, want [2]", sink.ratios)
	}
	gm.PointerMove(1, Vec2{X: 160, Y: 100}) // distance 20 -> ratio 0.5
	if len(sink.ratios) != 2 || sink.ratios[1] != 0.5 {
		t.Fatalf("ratios = %v, want second ratio 0.5", sink.ratios)
	}
}

func TestGesture_PinchCollapseToPan(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 100, Y: 100})
	gm.PointerDown(2, Vec2{X: 140, Y: 100})
	gm.PointerUp(2, Vec2{X: 140, Y: 100})

	if gm.Phase() != PhasePanning {
		t.Fatalf("phase after lifting one finger = %v, want panning", gm.Phase())
	}
	// The surviving pointer pans immediately, without re-arming the
	// tap slop, and from a fresh baseline.
	gm.PointerMove(1, Vec2{X: 105, Y: 100})
	if len(sink.pans) != 1 || sink.pans[0].X != 5 {
		t.Fatalf("pans = %v, want one pan of X=5", sink.pans)
	}
	// Releasing the finger must not fire a tap: the session pinched.
	gm.PointerUp(1, Vec2{X: 105, Y: 100})
	if len(sink.taps) != 0 {
		t.Fatal("a session that pinched must never end in a tap")
	}
}

func TestGesture_ThirdPointerIgnoredForPinch(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 100, Y: 100})
	gm.PointerDown(2, Vec2{X: 140, Y: 100})
	gm.PointerDown(3, Vec2{X: 500, Y: 500})

	// A third pointer re-evaluates but the pinch is still driven by the
	// first two; its moves change nothing.
	gm.PointerMove(3, Vec2{X: 600, Y: 600})
	if len(sink.ratios) != 0 {
		t.Fatalf("third pointer produced ratios %v", sink.ratios)
	}
	gm.PointerMove(2, Vec2{X: 180, Y: 100})
	if len(sink.ratios) != 1 || sink.ratios[0] != 2.0 {
		t.Fatalf("ratios = %v, want [2] from the first two pointers", sink.ratios)
	}
}

func TestGesture_CancelDiscardsSession(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 0, Y: 0})
	gm.PointerMove(1, Vec2{X: 50, Y: 0})
	gm.Cancel()

	if gm.Phase() != PhaseIdle {
		t.Fatalf("phase after cancel = %v, want idle", gm.Phase())
	}
	pansBefore := len(sink.pans)
	// The pointer is gone: further events for it are ignored.
	gm.PointerMove(1, Vec2{X: 90, Y: 0})
	gm.PointerUp(1, Vec2{X: 90, Y: 0})
	if len(sink.pans) != pansBefore || len(sink.taps) != 0 {
		t.Fatal("events after cancel must have no effect")
	}
}

func TestGesture_UnknownPointerIgnored(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerMove(42, Vec2{X: 10, Y: 10})
	gm.PointerUp(42, Vec2{X: 10, Y: 10})
	if gm.Phase() != PhaseIdle || len(sink.pans) != 0 || len(sink.taps) != 0 {
		t.Fatal("events for a pointer never pressed must be ignored")
	}
}

func TestGesture_DuplicateDownIgnored(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	gm.PointerDown(1, Vec2{X: 0, Y: 0})
	gm.PointerDown(1, Vec2{X: 500, Y: 500})
	if gm.Phase() != PhasePanning {
		t.Fatalf("phase = %v, want panning with one live pointer", gm.Phase())
	}
	if sink.pinchBegins != 0 {
		t.Fatal("duplicate down must not start a pinch")
	}
}

func TestGesture_SecondDownRestartsBaseline(t *testing.T) {
	sink := &recordingSink{}
	gm := NewGestureMachine(sink)

	// Pan, then a second finger lands: pinch baseline is the distance
	// at that moment, so the first ratio is relative to it.
	gm.PointerDown(1, Vec2{X: 0, Y: 0})
	gm.PointerMove(1, Vec2{X: 30, Y: 0})
	gm.PointerDown(2, Vec2{X: 90, Y: 0}) // base distance 60

	gm.PointerMove(2, Vec2{X: 150, Y: 0}) // distance 120
	if len(sink.ratios) != 1 || sink.ratios[0] != 2.0 {
		t.Fatalf("ratios = %v, want [2] against the fresh baseline", sink.ratios)
	}
}
