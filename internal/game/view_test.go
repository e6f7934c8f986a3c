package game

import (
	"sync"
	"testing"
)

// The default harness shows a 2048x1536 map in a 640x480 viewport:
// scale 3.2, camera centred at (1024,768), so the viewport centre
// (320,240) maps onto world (1024,768).

func TestView_NotReadyNoOps(t *testing.T) {
	v := NewMapView(Size{W: 640, H: 480})
	if v.Ready() {
		t.Fatal("view must not be ready before SetMapManager")
	}
	if v.FocusOn(1, false) {
		t.Fatal("FocusOn must return false when not ready")
	}
	if v.ResetCamera(false) {
		t.Fatal("ResetCamera must return false when not ready")
	}
	if v.RefreshPOI(1) {
		t.Fatal("RefreshPOI must return false when not ready")
	}
	v.GestureTap(Vec2{X: 10, Y: 10}) // must not panic
	v.Step()
}

func TestView_SetMapManagerNilTearsDown(t *testing.T) {
	tv := NewTestView()
	if !tv.View.Ready() {
		t.Fatal("harness view must be ready")
	}
	tv.View.SetMapManager(nil)
	if tv.View.Ready() || tv.View.Camera() != nil {
		t.Fatal("nil manager must return the view to the not-ready state")
	}
}

func TestView_TapSelectsPOI(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIBase),
	)
	tv.Tap(320, 240)

	if tv.View.Selection().SelectedID() != 1 {
		t.Fatalf("selected id = %d, want 1\n%s", tv.View.Selection().SelectedID(), tv.Log.Format())
	}
	if tv.View.Stats().Taps != 1 || tv.View.Stats().TapHits != 1 {
		t.Fatalf("stats = %+v, want 1 tap / 1 hit", *tv.View.Stats())
	}
	if tv.Log.Count("select", "tap_hit") != 1 {
		t.Fatalf("log missing tap_hit:\n%s", tv.Log.Format())
	}
}

func TestView_TapToleranceScalesWithZoom(t *testing.T) {
	// At scale 3.2 the 24px tap radius covers 76.8 world units. A POI
	// 76 units off the tap point hits; one 78 units off misses.
	tv := NewTestView(
		WithPOI(1, 1024+76, 768, POIVillage),
	)
	tv.Tap(320, 240)
	if tv.View.Selection().SelectedID() != 1 {
		t.Fatalf("POI inside the scaled tolerance missed\n%s", tv.Log.Format())
	}

	tv2 := NewTestView(
		WithPOI(1, 1024+78, 768, POIVillage),
	)
	tv2.Tap(320, 240)
	if tv2.View.Selection().SelectedID() != -1 {
		t.Fatal("POI outside the scaled tolerance must miss")
	}
}

func TestView_TapMissDeselects(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIBase),
	)
	tv.Tap(320, 240) // hit
	tv.Tap(10, 10)   // far corner: miss

	if tv.View.Selection().SelectedID() != -1 {
		t.Fatalf("selection survived a tap miss: %d", tv.View.Selection().SelectedID())
	}
	if tv.Log.Count("select", "tap_miss") != 1 {
		t.Fatalf("log missing tap_miss:\n%s", tv.Log.Format())
	}
}

func TestView_OverlappingPOIsTapDeterministic(t *testing.T) {
	// Two POIs equidistant from the tap point: the earlier insertion
	// wins, on every tap.
	tv := NewTestView(
		WithPOI(5, 1024-30, 768, POIVillage),
		WithPOI(6, 1024+30, 768, POIVillage),
	)
	for i := 0; i < 10; i++ {
		tv.Tap(320, 240)
		if got := tv.View.Selection().SelectedID(); got != 5 {
			t.Fatalf("tap %d selected %d, want 5 every time", i, got)
		}
	}
}

func TestView_SelectionSwitchFiresOneDeselect(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIBase),
		WithPOI(2, 524, 768, POIVillage), // 500 world units left: screen x 320-500/3.2
	)
	del := &recordingDelegate{}
	tv.View.SetDelegate(del)

	tv.Tap(320, 240)          // select 1
	tv.Tap(320-500/3.2, 240)  // select 2

	if len(del.selected) != 2 || del.selected[0] != 1 || del.selected[1] != 2 {
		t.Fatalf("selected callbacks = %v, want [1 2]\n%s", del.selected, tv.Log.Format())
	}
	if del.deselects != 1 {
		t.Fatalf("deselect callbacks = %d, want exactly 1", del.deselects)
	}
}

func TestView_DragPansCamera(t *testing.T) {
	// At the fit scale the camera is pinned; zoom in so it can move.
	tv := NewTestView(WithScale(1.6))
	before := tv.View.Camera().Position

	// Dragging content right moves the camera left.
	tv.Drag(100, 240, 200, 240, 4)

	after := tv.View.Camera().Position
	if after.X >= before.X {
		t.Fatalf("camera X %f -> %f, want a move left", before.X, after.X)
	}
	if tv.View.Stats().PanEvents == 0 {
		t.Fatal("drag recorded no pan events")
	}
	p := tv.View.Camera().Constrain(after)
	if p != after {
		t.Fatalf("camera position %+v violates the map constraint", after)
	}
}

func TestView_PinchZoomsAndClamps(t *testing.T) {
	tv := NewTestView()
	cam := tv.View.Camera()
	before := cam.Scale

	// Spreading the fingers zooms in: scale drops.
	tv.Pinch(
		Vec2{X: 300, Y: 240}, Vec2{X: 340, Y: 240},
		Vec2{X: 220, Y: 240}, Vec2{X: 420, Y: 240}, 5)
	if cam.Scale >= before {
		t.Fatalf("scale %f -> %f, want zoom in", before, cam.Scale)
	}
	if tv.View.Stats().PinchSessions != 1 {
		t.Fatalf("pinch sessions = %d, want 1", tv.View.Stats().PinchSessions)
	}

	// An absurd spread clamps at MinScale.
	tv.Pinch(
		Vec2{X: 319, Y: 240}, Vec2{X: 321, Y: 240},
		Vec2{X: 0, Y: 240}, Vec2{X: 640, Y: 240}, 5)
	if cam.Scale < cam.MinScale-1e-9 {
		t.Fatalf("scale %f fell below MinScale %f", cam.Scale, cam.MinScale)
	}
}

func TestView_FocusOnAndReset(t *testing.T) {
	tv := NewTestView(
		WithScale(1.6),
		WithPOI(3, 400, 400, POIWarehouse),
	)
	cam := tv.View.Camera()

	if !tv.View.FocusOn(3, false) {
		t.Fatal("FocusOn known id must succeed")
	}
	want := cam.Constrain(Vec2{X: 400, Y: 400})
	if cam.Position != want {
		t.Fatalf("camera at %+v, want %+v", cam.Position, want)
	}
	if tv.View.FocusOn(99, false) {
		t.Fatal("FocusOn unknown id must fail")
	}

	if !tv.View.ResetCamera(true) {
		t.Fatal("ResetCamera must succeed when ready")
	}
	tv.RunTicks(focusDuration)
	if cam.Scale != cam.InitialScale() {
		t.Fatalf("scale after animated reset = %v, want exactly %v", cam.Scale, cam.InitialScale())
	}
	if cam.Position.X != 1024 || cam.Position.Y != 768 {
		t.Fatalf("position after animated reset = %+v, want exactly (1024,768)", cam.Position)
	}
}

func TestView_StatusChangeRefreshesSelection(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIFactory),
	)
	tv.Tap(320, 240)

	tv.Map.SetStatus(1, StatusCaptured)
	tv.RunTicks(1)

	cached, ok := tv.View.Selection().Selected()
	if !ok || cached.Status != StatusCaptured {
		t.Fatalf("cached selection = %+v ok=%v, want captured", cached, ok)
	}
	if tv.View.Stats().StatusRefreshes != 1 {
		t.Fatalf("status refreshes = %d, want 1", tv.View.Stats().StatusRefreshes)
	}
	if !tv.Log.HasEntry("status", "refresh", "captured") {
		t.Fatalf("log missing refresh entry:\n%s", tv.Log.Format())
	}
}

func TestView_SetStatusNoOpEmitsNothing(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIBase),
	)
	tv.Map.SetStatus(1, StatusActive) // already active
	tv.Map.SetStatus(42, StatusCaptured)
	tv.RunTicks(1)
	if tv.View.Stats().StatusRefreshes != 0 {
		t.Fatalf("refreshes = %d, want 0 for no-op and unknown-id updates", tv.View.Stats().StatusRefreshes)
	}
}

func TestView_NotifyPOIChangedFromGoroutines(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 300, 300, POIBase),
		WithPOI(2, 600, 600, POIVillage),
	)
	var wg sync.WaitGroup
	for g := 0; g < 6; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tv.View.NotifyPOIChanged(1)
				tv.View.NotifyPOIChanged(2)
			}
		}()
	}
	wg.Wait()
	tv.RunTicks(1)

	// The inbox deduplicates: one refresh per POI, not 600.
	if tv.View.Stats().StatusRefreshes != 2 {
		t.Fatalf("refreshes = %d, want 2 (deduplicated)", tv.View.Stats().StatusRefreshes)
	}
}

func TestView_CancelGestureSuppressesTap(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 1024, 768, POIBase),
	)
	gm := tv.View.Gestures()
	gm.PointerDown(1, Vec2{X: 320, Y: 240})
	tv.View.CancelGesture()
	gm.PointerUp(1, Vec2{X: 320, Y: 240})
	tv.RunTicks(1)

	if tv.View.Stats().Taps != 0 {
		t.Fatal("cancelled press still produced a tap")
	}
	if tv.View.Selection().SelectedID() != -1 {
		t.Fatal("cancelled press still selected a POI")
	}
}

func TestView_RefreshPOIUnknownID(t *testing.T) {
	tv := NewTestView()
	if tv.View.RefreshPOI(123) {
		t.Fatal("RefreshPOI with an unknown id must return false")
	}
}

func TestView_CloseDetachesFromMap(t *testing.T) {
	tv := NewTestView(
		WithPOI(1, 300, 300, POIBase),
	)
	tv.View.Close()
	if tv.View.Ready() {
		t.Fatal("view must not be ready after Close")
	}
	// A status change on the old map must not reach the closed view.
	tv.Map.SetStatus(1, StatusDestroyed)
	tv.View.Step()
	if tv.View.Stats().StatusRefreshes != 0 {
		t.Fatal("closed view still received map change events")
	}
}

func TestView_ScenarioCameraLimits(t *testing.T) {
	// 1024x768 map in a 512x384 viewport pinned at scale 1: the
	// valid centre range is x in [256,768], y in [192,576].
	tv := NewTestView(
		WithMapSize(1024, 768),
		WithViewportSize(512, 384),
		WithScaleLimits(0.5, 2.0),
		WithScale(1.0),
	)
	cam := tv.View.Camera()
	cam.FocusOn(Vec2{X: 2000, Y: 2000}, false)
	if cam.Position.X != 768 || cam.Position.Y != 576 {
		t.Fatalf("focus landed at %+v, want (768,576)", cam.Position)
	}
}

func TestInteractionStats_HitRate(t *testing.T) {
	st := NewInteractionStats()
	if st.HitRate() != 0 {
		t.Fatal("hit rate with no taps must be 0")
	}
	st.Taps = 4
	st.TapHits = 3
	if st.HitRate() != 0.75 {
		t.Fatalf("hit rate = %f, want 0.75", st.HitRate())
	}
}

func TestViewLog_FilterAndLastOf(t *testing.T) {
	vl := NewViewLog(false)
	vl.Add(1, "POI-1", "select", "tap_hit", "d=3.0", 0)
	vl.Add(2, "--", "select", "tap_miss", "", 0)
	vl.Add(3, "POI-2", "select", "tap_hit", "d=8.0", 0)

	if got := vl.Count("select", "tap_hit"); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	last, ok := vl.LastOf("select", "tap_hit")
	if !ok || last.Subject != "POI-2" {
		t.Fatalf("last tap_hit = %+v ok=%v, want the POI-2 entry", last, ok)
	}
	vl.AddVerbose(4, "--", "camera", "state", "", 0)
	if vl.Count("camera", "state") != 0 {
		t.Fatal("verbose entries must be dropped when verbose mode is off")
	}
}
