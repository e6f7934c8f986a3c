package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// POI info panel — rendered into an offscreen buffer at 1x then
// blitted at panelScale.
const (
	panelScale = 2
	panelBufW  = 180
	panelBufH  = 96
	panelPad   = 4
	panelLineH = 13
)

// poiPanel holds the panel view toggle and its offscreen buffer.
type poiPanel struct {
	rawView bool // false = curated, true = raw dump
	buf     *ebiten.Image
}

// drawPanel renders the selected-POI panel bottom-left. Nothing is
// drawn when no POI is selected.
func (v *MapView) drawPanel(screen *ebiten.Image) {
	poi, ok := v.sel.Selected()
	if !ok {
		return
	}
	if v.panel.buf == nil {
		v.panel.buf = ebiten.NewImage(panelBufW, panelBufH)
	}
	buf := v.panel.buf
	buf.Clear()

	vector.FillRect(buf, 0, 0, panelBufW, panelBufH,
		color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, panelBufW, panelBufH, 1.0,
		color.RGBA{R: 55, G: 80, B: 55, A: 255}, false)

	lx := panelPad
	ly := panelPad
	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += panelLineH
	}

	if v.panel.rawView {
		line(fmt.Sprintf("id=%d type=%d status=%d", poi.ID, poi.Type, poi.Status))
		line(fmt.Sprintf("pos=(%.1f,%.1f) r=%.0f", poi.Position.X, poi.Position.Y, poi.Type.DisplayRadius()))
		line(fmt.Sprintf("cam=(%.1f,%.1f)", v.cam.Position.X, v.cam.Position.Y))
		line(fmt.Sprintf("scale=%.3f anim=%v", v.cam.Scale, v.cam.Animating()))
	} else {
		line(fmt.Sprintf("[ %s %s ]", poi.Type.Name(), poiLabel(poi.ID)))
		line(fmt.Sprintf("status: %s", poi.Status))
		line(fmt.Sprintf("pos: (%.0f, %.0f)", poi.Position.X, poi.Position.Y))
		line("[I] raw view")
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(panelScale, panelScale)
	opts.GeoM.Translate(8, v.viewport.H-panelBufH*panelScale-8)
	screen.DrawImage(buf, opts)
}
