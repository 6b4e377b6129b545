// Event broadcasting — the one-way channel between the simulation loop
// and any number of observers (dashboard, persistence, logs).
package sim

import "sync"

// EventKind tags the payload shape of an Event.
type EventKind string

const (
	EventInit     EventKind = "init"
	EventState    EventKind = "state"
	EventActivity EventKind = "activity"
	EventThinking EventKind = "thinking"
	EventComplete EventKind = "complete"
)

// Event is one observer-facing record. Fields are populated per kind:
// init carries the company name, state a full snapshot, activity a
// message with a style tag, thinking the agent-busy indicator, and
// complete the final balance.
type Event struct {
	Kind        EventKind `json:"type"`
	Day         int       `json:"day,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	State       *Snapshot `json:"state,omitempty"`
	Message     string    `json:"message,omitempty"`
	Style       string    `json:"style,omitempty"` // "", "sale", "restock", "warning"
	Show        bool      `json:"show,omitempty"`
	Text        string    `json:"text,omitempty"`
	Balance     float64   `json:"balance,omitempty"`
}

// subscriber channel capacity. A subscriber that falls this far behind
// starts losing the newest events; the simulation never blocks on it.
const subscriberBuffer = 64

// recentBuffer bounds the catch-up history kept for late subscribers.
const recentBuffer = 200

// Broadcaster fans events out to subscribers without ever blocking the
// simulation loop. Events are delivered in publish order per subscriber;
// a slow subscriber drops events rather than stalling the produce side.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	recent []Event
	last   *Snapshot
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: map[int]chan Event{}}
}

// Subscribe registers a new observer and returns its ID and channel.
func (b *Broadcaster) Subscribe() (int, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes an observer and closes its channel.
func (b *Broadcaster) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers an event to every subscriber, dropping it for any
// subscriber whose buffer is full.
func (b *Broadcaster) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.recent = append(b.recent, e)
	if len(b.recent) > recentBuffer {
		b.recent = b.recent[len(b.recent)-recentBuffer:]
	}
	if e.Kind == EventState && e.State != nil {
		snap := *e.State
		b.last = &snap
	}

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Recent returns up to n of the most recent events, oldest first.
func (b *Broadcaster) Recent(n int) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	start := len(b.recent) - n
	if start < 0 {
		start = 0
	}
	out := make([]Event, len(b.recent)-start)
	copy(out, b.recent[start:])
	return out
}

// LatestState returns the most recently published snapshot, or nil if no
// state event has been published yet. Observers read this instead of the
// live GameState, which belongs to the simulation goroutine.
func (b *Broadcaster) LatestState() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return nil
	}
	snap := *b.last
	return &snap
}
