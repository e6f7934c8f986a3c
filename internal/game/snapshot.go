package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Snapshot renders the full view state as text: camera, selection,
// interaction counters and the POI table. Used by the C-key clipboard
// export and the headless report.
func (v *MapView) Snapshot() string {
	var b strings.Builder
	b.WriteString("--- map view snapshot ---\n")
	if !v.Ready() {
		b.WriteString("not ready: no map manager set\n")
		return b.String()
	}
	c := v.cam
	fmt.Fprintf(&b, "tick=%d\n", v.tick)
	fmt.Fprintf(&b, "camera: pos=(%.1f,%.1f) scale=%.3f range=[%.3f,%.3f] viewport=%.0fx%.0f map=%.0fx%.0f\n",
		c.Position.X, c.Position.Y, c.Scale, c.MinScale, c.MaxScale,
		c.Viewport.W, c.Viewport.H, c.MapSize.W, c.MapSize.H)
	if poi, ok := v.sel.Selected(); ok {
		fmt.Fprintf(&b, "selected: %s %s at (%.0f,%.0f) status=%s\n",
			poiLabel(poi.ID), poi.Type.Name(), poi.Position.X, poi.Position.Y, poi.Status)
	} else {
		b.WriteString("selected: none\n")
	}
	b.WriteString(v.stats.Format())
	b.WriteString("pois:\n")
	for _, p := range v.mapState.PointsOfInterest() {
		fmt.Fprintf(&b, "  %-6s %-10s (%.0f,%.0f) %s\n",
			poiLabel(p.ID), p.Type.Name(), p.Position.X, p.Position.Y, p.Status)
	}
	return b.String()
}

// CopySnapshot puts the snapshot on the system clipboard.
func (v *MapView) CopySnapshot() error {
	return clipboard.WriteAll(v.Snapshot())
}
