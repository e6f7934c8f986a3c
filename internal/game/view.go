package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// tapPickRadiusPx is the tap tolerance in screen pixels. Converted to
// world units by the current scale before hit-testing, so POIs stay
// equally tappable at any zoom.
const tapPickRadiusPx = 24.0

// MapView is the interactive map surface: it owns the camera, the
// selection state and the gesture machine, holds a read reference to
// the externally owned MapState, and implements ebiten.Game. All of
// its state lives on the UI thread; the only cross-thread entry point
// is NotifyPOIChanged.
type MapView struct {
	viewport Size

	cam      *Camera
	sel      *Selection
	gestures *GestureMachine
	mapState *MapState
	inbox    *Inbox
	bus      *EventBus
	log      *ViewLog
	stats    *InteractionStats
	ticker   *Ticker
	input    *inputAdapter
	panel    poiPanel

	tick          int
	pinchBaseline float64
	mapToken      int // subscription on the map state's bus
	showHUD       bool

	worldBuf *ebiten.Image
	patches  []terrainPatch
}

// NewMapView creates a view for the given viewport size. The view is
// "not ready" until SetMapManager installs a map: every command is a
// documented no-op returning false until then.
func NewMapView(viewport Size) *MapView {
	v := &MapView{
		viewport: viewport,
		inbox:    NewInbox(),
		bus:      NewEventBus(),
		log:      NewViewLog(false),
		stats:    NewInteractionStats(),
		ticker:   NewTicker(),
		showHUD:  true,
	}
	v.sel = NewSelection(v.bus)
	v.gestures = NewGestureMachine(v)
	v.input = newInputAdapter()
	v.bus.Subscribe(EvtPOISelected, v.ticker.onEvent)
	v.bus.Subscribe(EvtPOIDeselected, v.ticker.onEvent)
	return v
}

// SetLog swaps in an externally owned log (used by the harness and the
// headless report).
func (v *MapView) SetLog(l *ViewLog) { v.log = l }

// Log returns the structured interaction log.
func (v *MapView) Log() *ViewLog { return v.log }

// Stats returns the interaction counters.
func (v *MapView) Stats() *InteractionStats { return v.stats }

// Camera returns the viewport controller, nil before SetMapManager.
func (v *MapView) Camera() *Camera { return v.cam }

// Selection returns the selection state.
func (v *MapView) Selection() *Selection { return v.sel }

// Gestures returns the gesture machine, for the input adapter and the
// harness.
func (v *MapView) Gestures() *GestureMachine { return v.gestures }

// SetDelegate installs the host callback surface.
func (v *MapView) SetDelegate(d ViewDelegate) { v.sel.SetDelegate(d) }

// SetMapManager installs the map collaborator, (re)builds the camera
// for its bounds, and moves the POI-changed subscription from any
// previous manager. A nil manager tears the view back down to the
// not-ready state.
func (v *MapView) SetMapManager(m *MapState) {
	if v.mapState != nil {
		v.mapState.Bus().Unsubscribe(v.mapToken)
	}
	v.mapState = m
	if m == nil {
		v.cam = nil
		return
	}
	v.mapToken = m.Bus().Subscribe(EvtPOIChanged, func(e Event) {
		v.inbox.Post(e.POIID)
	})
	v.cam = NewCamera(v.viewport, m.MapSize)
	v.patches = nil // regenerate the backdrop for the new map
}

// Ready reports whether a map manager and camera are installed.
func (v *MapView) Ready() bool { return v.mapState != nil && v.cam != nil }

// FocusOn centres the camera on a POI without changing scale. Returns
// false when the view is not ready or the id is unknown.
func (v *MapView) FocusOn(id int, animated bool) bool {
	if !v.Ready() {
		return false
	}
	p := v.mapState.POIByID(id)
	if p == nil {
		return false
	}
	v.cam.FocusOn(p.Position, animated)
	v.log.Add(v.tick, poiLabel(id), "camera", "focus", fmt.Sprintf("animated=%v", animated), 0)
	return true
}

// ResetCamera restores the fit-to-screen scale and map centre.
// Returns false when the view is not ready.
func (v *MapView) ResetCamera(animated bool) bool {
	if !v.Ready() {
		return false
	}
	v.cam.Reset(animated)
	v.log.Add(v.tick, "--", "camera", "reset", fmt.Sprintf("animated=%v", animated), 0)
	return true
}

// RefreshPOI pulls the current status of one POI into the presentation
// layer: the selection's cached copy is updated when the id matches.
// Idempotent; returns false when the view is not ready or the id is
// unknown.
func (v *MapView) RefreshPOI(id int) bool {
	if !v.Ready() {
		return false
	}
	p := v.mapState.POIByID(id)
	if p == nil {
		return false
	}
	v.sel.RefreshFrom(p)
	v.stats.StatusRefreshes++
	v.log.Add(v.tick, poiLabel(id), "status", "refresh", p.Status.String(), 0)
	v.ticker.Push(fmt.Sprintf("%s %s", p.Type.Name(), p.Status))
	return true
}

// NotifyPOIChanged marks a POI for refresh on the next frame tick.
// Safe to call from any goroutine: this is the single cross-thread
// handoff in the view.
func (v *MapView) NotifyPOIChanged(id int) {
	v.inbox.Post(id)
}

// CancelGesture tears down the current gesture session, discarding all
// baselines without firing tap/pan/pinch effects.
func (v *MapView) CancelGesture() {
	v.gestures.Cancel()
	v.log.Add(v.tick, "--", "gesture", "cancel", "", 0)
}

// Close releases the map subscription. The view is not usable after.
func (v *MapView) Close() {
	if v.mapState != nil {
		v.mapState.Bus().Unsubscribe(v.mapToken)
		v.mapState = nil
	}
	v.cam = nil
}

// Step runs one frame of view logic: drain the inbox on the UI thread,
// refresh the POIs it names, advance the camera animation. Pure state
// pull — no blocking, safe to call at any rate.
func (v *MapView) Step() {
	v.tick++
	for _, id := range v.inbox.Drain() {
		v.RefreshPOI(id)
	}
	if v.cam != nil {
		v.cam.Tick()
		v.log.AddVerbose(v.tick, "--", "camera", "state",
			fmt.Sprintf("pos=(%.1f,%.1f) scale=%.3f", v.cam.Position.X, v.cam.Position.Y, v.cam.Scale), v.cam.Scale)
	}
}

// GesturePan implements GestureSink.
func (v *MapView) GesturePan(delta Vec2) {
	if v.cam == nil {
		return
	}
	v.cam.Pan(delta)
	v.stats.PanEvents++
	v.log.AddVerbose(v.tick, "--", "gesture", "pan",
		fmt.Sprintf("d=(%.1f,%.1f)", delta.X, delta.Y), 0)
}

// GesturePinchBegin implements GestureSink: captures the scale
// baseline the incoming ratios are applied against.
func (v *MapView) GesturePinchBegin() {
	if v.cam == nil {
		return
	}
	v.pinchBaseline = v.cam.Scale
	v.stats.PinchSessions++
	v.log.Add(v.tick, "--", "gesture", "pinch_begin",
		fmt.Sprintf("baseline=%.3f", v.pinchBaseline), v.pinchBaseline)
}

// GesturePinch implements GestureSink.
func (v *MapView) GesturePinch(ratio float64) {
	if v.cam == nil {
		return
	}
	v.cam.PinchZoom(v.pinchBaseline, ratio)
	v.log.AddVerbose(v.tick, "--", "gesture", "pinch",
		fmt.Sprintf("ratio=%.3f scale=%.3f", ratio, v.cam.Scale), ratio)
}

// GestureTap implements GestureSink: resolves the tap against the POI
// collection. A hit selects; a miss deselects (which always emits).
func (v *MapView) GestureTap(screen Vec2) {
	if !v.Ready() {
		return
	}
	world := v.cam.ScreenToWorld(screen)
	tolerance := tapPickRadiusPx * v.cam.Scale
	v.stats.Taps++
	if p := v.mapState.POIAt(world, tolerance); p != nil {
		v.stats.TapHits++
		v.log.Add(v.tick, poiLabel(p.ID), "select", "tap_hit",
			fmt.Sprintf("d=%.1f", p.Position.Dist(world)), 0)
		v.sel.Select(p, screen)
		return
	}
	v.log.Add(v.tick, "--", "select", "tap_miss", "", 0)
	v.sel.Deselect()
}

// Update implements ebiten.Game: poll input into the gesture machine,
// then run one logic step.
func (v *MapView) Update() error {
	v.input.poll(v)
	v.Step()
	return nil
}

// Layout implements ebiten.Game with a fixed logical size.
func (v *MapView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.viewport.W), int(v.viewport.H)
}
