package events

import "parking-facility/internal/domain/vehicle"

// Event is the closed union of lot notifications. Events are ephemeral: they
// are consumed synchronously at publish time and never stored, and they carry
// everything a listener needs so derived state (statistics, metrics) can be
// rebuilt from the stream alone.
type Event interface {
	event()
}

// EntryEvent announces a vehicle taking a spot.
type EntryEvent struct {
	Plate      string
	SpotID     int
	Class      vehicle.Class
	Accessible bool
	Color      string
}

// ExitEvent announces a vehicle leaving its spot, after the session has been
// ended and the payment recorded.
type ExitEvent struct {
	Plate         string
	SpotID        int
	DurationHours float64
	Payment       float64
	Class         vehicle.Class
}

// OccupancyEvent announces the lot-wide spot counts after a change.
type OccupancyEvent struct {
	TotalSpots     int
	OccupiedSpots  int
	AvailableSpots int
}

func (EntryEvent) event()     {}
func (ExitEvent) event()      {}
func (OccupancyEvent) event() {}

// Listener consumes events synchronously on the publishing goroutine, inside
// the engine's critical section. Listeners must not call back into the
// engine: its lock is not reentrant.
type Listener interface {
	HandleEvent(Event)
}
