package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// terrainPatch is a subtle ground colour variation tile.
type terrainPatch struct {
	x, y  float32
	w, h  float32
	shade uint8 // offset from base green
}

// statusColor maps a POI status to its marker colour.
func statusColor(s POIStatus) color.RGBA {
	switch s {
	case StatusCaptured:
		return colornames.Orange
	case StatusDestroyed:
		return colornames.Dimgray
	default:
		return colornames.Palegreen
	}
}

// Draw implements ebiten.Game. World content is rendered into an
// offscreen buffer at map resolution, then blitted with the camera
// transform; panels and HUD are drawn in screen space on top.
func (v *MapView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})
	if !v.Ready() {
		ebitenutil.DebugPrintAt(screen, "no map loaded", 8, 8)
		return
	}

	if v.worldBuf == nil {
		v.worldBuf = ebiten.NewImage(int(v.cam.MapSize.W), int(v.cam.MapSize.H))
	}
	if v.patches == nil {
		v.patches = genTerrainPatches(v.cam.MapSize, 17)
	}

	v.worldBuf.Clear()
	v.drawWorld(v.worldBuf)

	// Camera transform: translate the world centre onto the viewport
	// centre, then scale. Render zoom is the inverse of the camera
	// scale (world units per pixel).
	zoom := 1 / v.cam.Scale
	var cam ebiten.GeoM
	cam.Translate(-v.cam.Position.X, -v.cam.Position.Y)
	cam.Scale(zoom, zoom)
	cam.Translate(v.viewport.W/2, v.viewport.H/2)
	screen.DrawImage(v.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	// POI labels stay readable at any zoom: screen space.
	for _, p := range v.mapState.PointsOfInterest() {
		s := v.cam.WorldToScreen(p.Position)
		r := p.Type.DisplayRadius() * zoom
		ebitenutil.DebugPrintAt(screen, p.Type.Name(), int(s.X-12), int(s.Y+r)+4)
	}

	// Selection ring, screen space so its width is zoom independent.
	if poi, ok := v.sel.Selected(); ok {
		s := v.cam.WorldToScreen(poi.Position)
		r := float32(poi.Type.DisplayRadius()*zoom) + 5
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y), r, 2.0, colornames.Yellow, true)
	}

	v.ticker.Draw(screen, int(v.viewport.W))
	v.drawPanel(screen)
	if v.showHUD {
		v.drawHUD(screen)
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("scale: %.2f  %s", v.cam.Scale, v.gestures.Phase()), 6, 6)
}

// drawWorld renders the background and POI markers in world space.
func (v *MapView) drawWorld(dst *ebiten.Image) {
	mw := float32(v.cam.MapSize.W)
	mh := float32(v.cam.MapSize.H)
	vector.FillRect(dst, 0, 0, mw, mh, color.RGBA{R: 28, G: 42, B: 28, A: 255}, false)

	for _, tp := range v.patches {
		g := clampShade(42 + int(tp.shade) - 6)
		r := clampShade(28 + int(tp.shade)/2 - 3)
		b := clampShade(28 + int(tp.shade)/3 - 2)
		vector.FillRect(dst, tp.x, tp.y, tp.w, tp.h,
			color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, false)
	}

	// Map edge frame.
	vector.StrokeRect(dst, 0, 0, mw, mh, 3.0, color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)

	for _, p := range v.mapState.PointsOfInterest() {
		v.drawPOI(dst, p)
	}
}

// drawPOI renders one marker: the type picks the silhouette, the
// status picks the colour.
func (v *MapView) drawPOI(dst *ebiten.Image, p *POI) {
	x := float32(p.Position.X)
	y := float32(p.Position.Y)
	r := float32(p.Type.DisplayRadius())
	col := statusColor(p.Status)
	outline := color.RGBA{R: 16, G: 20, B: 16, A: 255}

	switch p.Type {
	case POIWarehouse, POIFactory:
		vector.FillRect(dst, x-r, y-r, 2*r, 2*r, col, false)
		vector.StrokeRect(dst, x-r, y-r, 2*r, 2*r, 2.0, outline, false)
		if p.Type == POIFactory {
			// Chimney notch distinguishes factories from warehouses.
			vector.FillRect(dst, x+r*0.2, y-r*1.5, r*0.35, r*0.5, col, false)
		}
	case POIStation:
		vector.FillRect(dst, x-r, y-r*0.6, 2*r, r*1.2, col, false)
		vector.StrokeRect(dst, x-r, y-r*0.6, 2*r, r*1.2, 2.0, outline, false)
	default: // bases and villages are round
		vector.FillCircle(dst, x, y, r, col, true)
		vector.StrokeCircle(dst, x, y, r, 2.0, outline, true)
		if p.Type == POIBase {
			vector.StrokeCircle(dst, x, y, r*0.55, 2.0, outline, true)
		}
	}

	if p.Status == StatusDestroyed {
		// Cross out destroyed sites.
		vector.StrokeLine(dst, x-r, y-r, x+r, y+r, 3.0, colornames.Darkred, false)
		vector.StrokeLine(dst, x-r, y+r, x+r, y-r, 3.0, colornames.Darkred, false)
	}
}

func (v *MapView) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"drag=pan  wheel/pinch=zoom  tap=select",
		"[R] reset  [F] focus next  [Esc] deselect",
		"[H] hud  [I] panel view  [C] copy snapshot",
	}
	y := int(v.viewport.H) - len(lines)*14 - 6
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, y+i*14)
	}
}

func genTerrainPatches(mapSize Size, seed int64) []terrainPatch {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic noise
	n := int(mapSize.W * mapSize.H / 18000)
	patches := make([]terrainPatch, 0, n)
	for i := 0; i < n; i++ {
		patches = append(patches, terrainPatch{
			x:     rng.Float32() * float32(mapSize.W),
			y:     rng.Float32() * float32(mapSize.H),
			w:     24 + rng.Float32()*90,
			h:     18 + rng.Float32()*70,
			shade: uint8(rng.Intn(14)),
		})
	}
	return patches
}

func clampShade(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
