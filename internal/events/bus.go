package events

import (
	"log/slog"
	"sync"
)

// Bus fans events out to subscribed listeners, synchronously and in
// subscription order. A panicking listener is isolated and logged; delivery
// to the remaining listeners continues.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
	logger    *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

// Subscribe registers a listener. Subscribing the same listener instance
// twice is a no-op; no listener receives an event more than once.
func (b *Bus) Subscribe(l Listener) {
	if l == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

func (b *Bus) Unsubscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	snapshot := make([]Listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.RUnlock()

	for _, l := range snapshot {
		b.dispatch(l, e)
	}
}

func (b *Bus) dispatch(l Listener, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event listener panicked", "event", eventName(e), "panic", r)
		}
	}()
	l.HandleEvent(e)
}

func eventName(e Event) string {
	switch e.(type) {
	case EntryEvent:
		return "entry"
	case ExitEvent:
		return "exit"
	case OccupancyEvent:
		return "occupancy"
	default:
		return "unknown"
	}
}
