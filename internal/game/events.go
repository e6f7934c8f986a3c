package game

import (
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// EventType identifies a bus topic.
type EventType uint8

const (
	// EvtPOIChanged fires when a POI's status changes. POIID carries
	// the subject.
	EvtPOIChanged EventType = iota
	// EvtPOISelected fires after a tap selects a POI.
	EvtPOISelected
	// EvtPOIDeselected fires after a tap miss or explicit deselect.
	EvtPOIDeselected
)

// Event is one bus notification.
type Event struct {
	Type  EventType
	POIID int
	Pos   Vec2 // input position for selection events
}

// EventHandler receives dispatched events.
type EventHandler func(e Event)

// EventBus is an explicit, single-threaded pub/sub object replacing
// notification-center style globals. Subscribe returns a token so the
// owning view can unsubscribe on teardown. Not goroutine safe: all
// calls happen on the UI thread.
type EventBus struct {
	nextToken int
	handlers  map[EventType][]busEntry
}

type busEntry struct {
	token int
	fn    EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]busEntry)}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe token.
func (b *EventBus) Subscribe(t EventType, h EventHandler) int {
	b.nextToken++
	b.handlers[t] = append(b.handlers[t], busEntry{token: b.nextToken, fn: h})
	return b.nextToken
}

// Unsubscribe removes the handler registered under token. Unknown
// tokens are ignored.
func (b *EventBus) Unsubscribe(token int) {
	for t, entries := range b.handlers {
		for i, e := range entries {
			if e.token == token {
				b.handlers[t] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Emit dispatches synchronously to all handlers for e.Type.
func (b *EventBus) Emit(e Event) {
	for _, entry := range b.handlers[e.Type] {
		entry.fn(e)
	}
}

// Inbox is the one cross-thread handoff in the view: background
// collaborators post POI ids whose status changed, and the UI thread
// drains the deduplicated set once per frame tick. Posting never
// blocks beyond the mutex.
type Inbox struct {
	mu      sync.Mutex
	pending mapset.Set[int]
}

func NewInbox() *Inbox {
	return &Inbox{pending: mapset.New[int]()}
}

// Post marks a POI as needing a visual refresh. Safe from any
// goroutine.
func (in *Inbox) Post(id int) {
	in.mu.Lock()
	in.pending.Put(id)
	in.mu.Unlock()
}

// Drain returns and clears the pending set. Called once per frame on
// the UI thread; returns nil when nothing is pending.
func (in *Inbox) Drain() []int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.pending.Size() == 0 {
		return nil
	}
	out := make([]int, 0, in.pending.Size())
	in.pending.Each(func(id int) {
		out = append(out, id)
	})
	in.pending = mapset.New[int]()
	return out
}
