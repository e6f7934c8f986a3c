package main

import (
	"log"
	"time"

	"github.com/Lepiozdyx/GRiver-sub001/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// demoGame wraps the map view with a scripted campaign: POI statuses
// change over time the way an external battle simulation would drive
// them.
type demoGame struct {
	*game.MapView
	mapState *game.MapState
	tick     int
	script   []scriptEvent
}

type scriptEvent struct {
	tick   int
	poiID  int
	status game.POIStatus
}

func (d *demoGame) Update() error {
	d.tick++
	// Status changes are applied on the UI thread; the view picks
	// them up through the map's change events.
	for _, ev := range d.script {
		if ev.tick == d.tick {
			d.mapState.SetStatus(ev.poiID, ev.status)
		}
	}
	return d.MapView.Update()
}

func main() {
	m := game.NewScenarioMap()
	view := game.NewMapView(game.Size{W: 1280, H: 800})
	view.SetMapManager(m)

	d := &demoGame{
		MapView:  view,
		mapState: m,
		script: []scriptEvent{
			{tick: 600, poiID: 2, status: game.StatusCaptured},
			{tick: 1100, poiID: 5, status: game.StatusCaptured},
			{tick: 1700, poiID: 3, status: game.StatusDestroyed},
			{tick: 2400, poiID: 6, status: game.StatusCaptured},
			{tick: 3000, poiID: 2, status: game.StatusDestroyed},
		},
	}

	// Background refresh poke: a collaborator on another goroutine may
	// only talk to the view through NotifyPOIChanged.
	go func() {
		for range time.Tick(5 * time.Second) {
			for _, p := range m.PointsOfInterest() {
				view.NotifyPOIChanged(p.ID)
			}
		}
	}()

	ebiten.SetWindowTitle("GRiver Tactical Map")
	ebiten.SetWindowSize(1280, 800)
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
