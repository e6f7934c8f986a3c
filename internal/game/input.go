package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointerID is the gesture pointer id used for the mouse cursor.
// Touch ids are offset by one so the two never collide.
const mousePointerID = 0

// inputAdapter translates Ebiten mouse/touch state into pointer events
// for the gesture machine, plus edge-triggered key handling. One
// instance per view, polled once per Update.
type inputAdapter struct {
	prevKeys  map[ebiten.Key]bool
	mouseDown bool

	touchIDs  []ebiten.TouchID
	justDown  []ebiten.TouchID
	justUp    []ebiten.TouchID
	focusNext int
}

func newInputAdapter() *inputAdapter {
	return &inputAdapter{prevKeys: make(map[ebiten.Key]bool)}
}

func (ia *inputAdapter) poll(v *MapView) {
	gm := v.gestures

	// Touch pointers. Release positions come from the previous tick
	// because a lifted touch no longer reports coordinates.
	ia.justDown = inpututil.AppendJustPressedTouchIDs(ia.justDown[:0])
	for _, id := range ia.justDown {
		x, y := ebiten.TouchPosition(id)
		gm.PointerDown(int(id)+1, Vec2{float64(x), float64(y)})
	}
	ia.touchIDs = ebiten.AppendTouchIDs(ia.touchIDs[:0])
	for _, id := range ia.touchIDs {
		x, y := ebiten.TouchPosition(id)
		gm.PointerMove(int(id)+1, Vec2{float64(x), float64(y)})
	}
	ia.justUp = inpututil.AppendJustReleasedTouchIDs(ia.justUp[:0])
	for _, id := range ia.justUp {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		gm.PointerUp(int(id)+1, Vec2{float64(x), float64(y)})
	}

	// Mouse as a single pointer: press/drag/release maps onto the
	// same pan/tap path as a finger.
	mx, my := ebiten.CursorPosition()
	mpos := Vec2{float64(mx), float64(my)}
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !ia.mouseDown:
		gm.PointerDown(mousePointerID, mpos)
	case down && ia.mouseDown:
		gm.PointerMove(mousePointerID, mpos)
	case !down && ia.mouseDown:
		gm.PointerUp(mousePointerID, mpos)
	}
	ia.mouseDown = down

	// Wheel zoom, multiplicative like the teacher sim.
	if _, wy := ebiten.Wheel(); wy != 0 && v.cam != nil {
		v.cam.ZoomBy(math.Pow(1.12, -wy))
	}

	ia.handleKeys(v)
}

// handleKeys processes edge-triggered keypresses.
func (ia *inputAdapter) handleKeys(v *MapView) {
	currentKeys := map[ebiten.Key]bool{}
	justPressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !ia.prevKeys[k]
	}

	// R: reset camera (animated).
	if justPressed(ebiten.KeyR) {
		v.ResetCamera(true)
	}

	// F: cycle camera focus through the POIs.
	if justPressed(ebiten.KeyF) && v.Ready() {
		pois := v.mapState.PointsOfInterest()
		if len(pois) > 0 {
			p := pois[ia.focusNext%len(pois)]
			ia.focusNext++
			v.FocusOn(p.ID, true)
		}
	}

	// Escape: deselect, or cancel an in-flight gesture.
	if justPressed(ebiten.KeyEscape) {
		if v.gestures.Phase() != PhaseIdle {
			v.CancelGesture()
			ia.mouseDown = false
		} else {
			v.sel.Deselect()
		}
	}

	// H: toggle HUD legend. I: toggle panel raw/curated view.
	if justPressed(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}
	if justPressed(ebiten.KeyI) {
		v.panel.rawView = !v.panel.rawView
	}

	// C: copy a debug snapshot to the clipboard.
	if justPressed(ebiten.KeyC) {
		if err := v.CopySnapshot(); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}

	ia.prevKeys = currentKeys
}
