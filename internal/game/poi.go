package game

import "github.com/leonelquinteros/gotext"

// POIType classifies a point of interest. Each type has a display
// radius used both for rendering and for the default tap footprint.
type POIType int

const (
	POIBase POIType = iota
	POIVillage
	POIWarehouse
	POIStation
	POIFactory
)

// DisplayRadius returns the marker radius in world units.
func (t POIType) DisplayRadius() float64 {
	switch t {
	case POIBase:
		return 26
	case POIVillage:
		return 18
	case POIWarehouse:
		return 20
	case POIStation:
		return 16
	case POIFactory:
		return 22
	default:
		return 16
	}
}

// Name returns the user-facing type name. Strings go through the
// translation catalog; with no catalog loaded the key is returned
// unchanged.
func (t POIType) Name() string {
	switch t {
	case POIBase:
		return gotext.Get("Base")
	case POIVillage:
		return gotext.Get("Village")
	case POIWarehouse:
		return gotext.Get("Warehouse")
	case POIStation:
		return gotext.Get("Station")
	case POIFactory:
		return gotext.Get("Factory")
	default:
		return gotext.Get("Unknown")
	}
}

// POIStatus is the externally driven capture/destruction state.
type POIStatus int

const (
	StatusActive POIStatus = iota
	StatusCaptured
	StatusDestroyed
)

func (s POIStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCaptured:
		return "captured"
	case StatusDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// POI is one map entity. Instances are owned by MapState; the view
// layer holds read references plus a cached copy of the selected POI.
type POI struct {
	ID       int
	Position Vec2
	Type     POIType
	Status   POIStatus
}

// MapState owns the ordered POI collection and is the authority for
// status changes. Status mutations may be requested from any goroutine
// through the view's inbox; MapState itself is only touched on the UI
// thread.
type MapState struct {
	MapSize Size

	pois []*POI
	byID map[int]*POI
	bus  *EventBus
}

// NewMapState creates an empty map of the given world size.
func NewMapState(mapSize Size) *MapState {
	return &MapState{
		MapSize: mapSize,
		byID:    make(map[int]*POI),
		bus:     NewEventBus(),
	}
}

// Bus exposes the event bus POI-changed notifications are emitted on.
func (m *MapState) Bus() *EventBus { return m.bus }

// Add appends a POI. Insertion order is the iteration order used for
// hit-test tie breaking. Duplicate ids are ignored.
func (m *MapState) Add(p *POI) {
	if p == nil {
		return
	}
	if _, ok := m.byID[p.ID]; ok {
		return
	}
	m.pois = append(m.pois, p)
	m.byID[p.ID] = p
}

// PointsOfInterest returns the ordered collection. Callers must not
// reorder it.
func (m *MapState) PointsOfInterest() []*POI { return m.pois }

// POIByID looks up a POI, returning nil when the id is unknown.
func (m *MapState) POIByID(id int) *POI { return m.byID[id] }

// POIAt delegates to the hit-tester: nearest POI within tolerance of
// the world point, nil when none qualifies.
func (m *MapState) POIAt(world Vec2, tolerance float64) *POI {
	return FindPOI(m.pois, world, tolerance)
}

// SetStatus updates a POI's status and emits a POIChanged event.
// Unknown ids and no-op transitions are ignored silently.
func (m *MapState) SetStatus(id int, status POIStatus) {
	p := m.byID[id]
	if p == nil || p.Status == status {
		return
	}
	p.Status = status
	m.bus.Emit(Event{Type: EvtPOIChanged, POIID: id})
}

// NewScenarioMap seeds the demo tactical layout used by cmd/game and
// the headless report.
func NewScenarioMap() *MapState {
	m := NewMapState(Size{W: 2048, H: 1536})
	m.Add(&POI{ID: 1, Position: Vec2{320, 280}, Type: POIBase})
	m.Add(&POI{ID: 2, Position: Vec2{780, 420}, Type: POIVillage})
	m.Add(&POI{ID: 3, Position: Vec2{1210, 330}, Type: POIWarehouse})
	m.Add(&POI{ID: 4, Position: Vec2{1630, 610}, Type: POIStation})
	m.Add(&POI{ID: 5, Position: Vec2{520, 900}, Type: POIFactory})
	m.Add(&POI{ID: 6, Position: Vec2{1080, 1040}, Type: POIVillage})
	m.Add(&POI{ID: 7, Position: Vec2{1560, 1180}, Type: POIBase})
	return m
}
