// Package lot holds the facility's system of record: the spot registry, the
// live sessions and the completed-session history, all guarded by a single
// mutex. Every state change is published on the event bus inside the same
// critical section, so listeners always observe committed state.
package lot

import (
	"sync"
	"time"

	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/session"
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/events"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/config"
	"parking-facility/internal/pkg/errs"
)

// Business outcomes of allocation. These never mutate state and are
// translated by the facade into user-facing responses.
var (
	ErrLotFull         = errs.New("lot full")
	ErrDuplicatePlate  = errs.New("plate already has an active session")
	ErrNoActiveSession = errs.New("no active session for plate")
)

type Engine struct {
	mu      sync.Mutex
	spots   []*spot.Spot
	current []*session.Session
	history []*session.Session
	bus     *events.Bus
	calc    *pricing.Calculator
	clk     clock.Clock
}

// NewEngine builds the spot registry from the configured layout: regular
// spots first, then accessible spots, ids ascending from 1.
func NewEngine(cfg config.LotConfig, calc *pricing.Calculator, bus *events.Bus, clk clock.Clock) *Engine {
	spots := make([]*spot.Spot, 0, cfg.TotalSpots())
	for i := 1; i <= cfg.RegularSpots; i++ {
		spots = append(spots, spot.New(i, false))
	}
	for i := cfg.RegularSpots + 1; i <= cfg.RegularSpots+cfg.AccessibleSpots; i++ {
		spots = append(spots, spot.New(i, true))
	}

	return &Engine{
		spots: spots,
		bus:   bus,
		calc:  calc,
		clk:   clk,
	}
}

// Park allocates a spot for the vehicle and opens a session. Duplicate-plate
// check, spot selection and occupancy mutation form one critical section.
func (e *Engine) Park(v vehicle.Vehicle, isSubscription bool) (*session.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findSessionLocked(v.Plate()) != nil {
		return nil, ErrDuplicatePlate
	}

	sp := e.findAvailableSpotLocked(v)
	if sp == nil {
		return nil, ErrLotFull
	}

	ses := session.New(v, sp.ID(), e.clk.Now(), isSubscription)
	if err := sp.Occupy(ses.Vehicle()); err != nil {
		// Unreachable with correct locking; treated as fatal, not as lot-full.
		return nil, errs.Mark(err, errs.ErrInvariantViolation)
	}
	e.current = append(e.current, ses)

	e.bus.Publish(events.EntryEvent{
		Plate:      v.Plate(),
		SpotID:     sp.ID(),
		Class:      v.Class(),
		Accessible: v.Accessible(),
		Color:      v.Color(),
	})
	e.publishOccupancyLocked()

	return ses, nil
}

// Remove ends the active session for the plate, computes and records the
// payment, vacates the spot and moves the session to history, all atomically.
// The exit event therefore carries the final duration and payment.
func (e *Engine) Remove(plate string) (*session.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ses := e.findSessionLocked(plate)
	if ses == nil {
		return nil, ErrNoActiveSession
	}

	now := e.clk.Now()
	ses.End(now)

	fee := e.calc.Fee(ses, now)
	ses.RecordPayment(fee)

	sp := e.spotByIDLocked(ses.SpotID())
	if sp == nil || sp.Vacate() == nil {
		return nil, errs.Mark(errs.New("session referenced a vacant spot"), errs.ErrInvariantViolation)
	}

	e.removeCurrentLocked(ses)
	e.history = append(e.history, ses)

	e.bus.Publish(events.ExitEvent{
		Plate:         plate,
		SpotID:        ses.SpotID(),
		DurationHours: ses.DurationHours(now),
		Payment:       fee,
		Class:         ses.Vehicle().Class(),
	})
	e.publishOccupancyLocked()

	return ses, nil
}

// findAvailableSpotLocked is the deterministic first-fit policy: exact
// accessibility-class match in ascending id order, then standard-spot
// overflow for accessibility-flagged vehicles. The reverse overflow is never
// allowed. Linear scan is fine at facility scale.
func (e *Engine) findAvailableSpotLocked(v vehicle.Vehicle) *spot.Spot {
	for _, sp := range e.spots {
		if sp.Accessible() == v.Accessible() && sp.CanAccept(v) {
			return sp
		}
	}

	if v.Accessible() {
		for _, sp := range e.spots {
			if sp.CanAccept(v) {
				return sp
			}
		}
	}

	return nil
}

func (e *Engine) findSessionLocked(plate string) *session.Session {
	for _, ses := range e.current {
		if ses.Vehicle().Plate() == plate {
			return ses
		}
	}
	return nil
}

func (e *Engine) spotByIDLocked(id int) *spot.Spot {
	for _, sp := range e.spots {
		if sp.ID() == id {
			return sp
		}
	}
	return nil
}

func (e *Engine) removeCurrentLocked(target *session.Session) {
	for i, ses := range e.current {
		if ses == target {
			e.current = append(e.current[:i], e.current[i+1:]...)
			return
		}
	}
}

func (e *Engine) publishOccupancyLocked() {
	occupied := e.occupiedLocked()
	e.bus.Publish(events.OccupancyEvent{
		TotalSpots:     len(e.spots),
		OccupiedSpots:  occupied,
		AvailableSpots: len(e.spots) - occupied,
	})
}

func (e *Engine) occupiedLocked() int {
	n := 0
	for _, sp := range e.spots {
		if sp.Occupied() {
			n++
		}
	}
	return n
}

func (e *Engine) TotalSpots() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.spots)
}

func (e *Engine) OccupiedSpots() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.occupiedLocked()
}

func (e *Engine) AvailableSpots() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.spots) - e.occupiedLocked()
}

func (e *Engine) OccupancyPercentage() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.spots) == 0 {
		return 0
	}
	return float64(e.occupiedLocked()) / float64(len(e.spots)) * 100
}

// CurrentSessions returns a snapshot of the active sessions in entry order.
func (e *Engine) CurrentSessions() []*session.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*session.Session, len(e.current))
	copy(out, e.current)
	return out
}

// SessionHistory returns a snapshot of completed sessions in exit order.
func (e *Engine) SessionHistory() []*session.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*session.Session, len(e.history))
	copy(out, e.history)
	return out
}

// Reset clears all current sessions and vacates every spot. History and any
// derived statistics are left intact.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = nil
	for _, sp := range e.spots {
		sp.Vacate()
	}
	e.publishOccupancyLocked()
}

// Subscribe and Unsubscribe expose the bus to collaborators through the
// engine handle, per the facade contract.
func (e *Engine) Subscribe(l events.Listener) {
	e.bus.Subscribe(l)
}

func (e *Engine) Unsubscribe(l events.Listener) {
	e.bus.Unsubscribe(l)
}

// Now is the engine's clock reading, used by read facades that compute
// durations of still-active sessions.
func (e *Engine) Now() time.Time {
	return e.clk.Now()
}
