package game

// ViewDelegate is the typed callback surface exposed to the host UI.
// It replaces dynamic selector-style dispatch with an explicit
// capability interface.
type ViewDelegate interface {
	OnPOISelected(poi POI, screenPos Vec2)
	OnPOIDeselected()
}

// Selection tracks the at-most-one selected POI. It keeps a cached
// value copy of the POI for display so the panel survives the owning
// MapState mutating underneath it; status-change notifications refresh
// the copy without altering which POI is selected.
type Selection struct {
	bus      *EventBus
	delegate ViewDelegate

	selected bool
	cached   POI
}

func NewSelection(bus *EventBus) *Selection {
	return &Selection{bus: bus}
}

// SetDelegate installs the host callback surface. A nil delegate is
// valid; events still flow on the bus.
func (s *Selection) SetDelegate(d ViewDelegate) { s.delegate = d }

// Selected returns a copy of the selected POI and whether one exists.
func (s *Selection) Selected() (POI, bool) { return s.cached, s.selected }

// SelectedID returns the selected id, or -1.
func (s *Selection) SelectedID() int {
	if !s.selected {
		return -1
	}
	return s.cached.ID
}

// Select replaces the current selection with poi, firing exactly one
// deselected transition for any previously selected POI first.
// screenPos is the input position forwarded to the host.
func (s *Selection) Select(poi *POI, screenPos Vec2) {
	if poi == nil {
		return
	}
	if s.selected {
		if s.cached.ID == poi.ID {
			// Re-tapping the selected POI just refreshes the copy.
			s.cached = *poi
			return
		}
		s.emitDeselected()
	}
	s.selected = true
	s.cached = *poi
	s.bus.Emit(Event{Type: EvtPOISelected, POIID: poi.ID, Pos: screenPos})
	if s.delegate != nil {
		s.delegate.OnPOISelected(s.cached, screenPos)
	}
}

// Deselect clears the selection. The deselected event is emitted even
// when nothing was selected — taps on empty ground always produce a
// deselect transition, matching the shipped behaviour.
func (s *Selection) Deselect() {
	s.selected = false
	s.cached = POI{}
	s.emitDeselected()
}

func (s *Selection) emitDeselected() {
	s.bus.Emit(Event{Type: EvtPOIDeselected})
	if s.delegate != nil {
		s.delegate.OnPOIDeselected()
	}
}

// RefreshFrom updates the cached copy when the changed POI is the
// selected one. Selection itself never changes here.
func (s *Selection) RefreshFrom(poi *POI) {
	if poi == nil || !s.selected || poi.ID != s.cached.ID {
		return
	}
	s.cached = *poi
}
