package session

import (
	"time"

	"parking-facility/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Session records one vehicle's continuous stay in one spot. It owns its
// vehicle value and references the spot by id. exitTime is set exactly once;
// a session with a nil exitTime is active.
type Session struct {
	id             uuid.UUID
	vehicle        vehicle.Vehicle
	spotID         int
	entryTime      time.Time
	exitTime       *time.Time
	isSubscription bool
	amountPaid     float64
}

func New(v vehicle.Vehicle, spotID int, entryTime time.Time, isSubscription bool) *Session {
	return &Session{
		id:             uuid.New(),
		vehicle:        v.WithEntry(entryTime),
		spotID:         spotID,
		entryTime:      entryTime,
		isSubscription: isSubscription,
	}
}

// End closes the session at the given instant. Idempotent: a second call
// never overwrites the recorded exit time. Exit never precedes entry; a
// caller handing in an earlier instant gets the entry time instead.
func (s *Session) End(at time.Time) {
	if s.exitTime != nil {
		return
	}
	if at.Before(s.entryTime) {
		at = s.entryTime
	}
	s.exitTime = &at
}

// DurationHours is the elapsed stay in fractional hours, measured in whole
// minutes divided by 60. Sub-minute precision is not tracked. For an active
// session the duration runs up to now.
func (s *Session) DurationHours(now time.Time) float64 {
	end := now
	if s.exitTime != nil {
		end = *s.exitTime
	}
	minutes := int64(end.Sub(s.entryTime) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60.0
}

func (s *Session) RecordPayment(amount float64) {
	s.amountPaid = amount
}

func (s *Session) Active() bool {
	return s.exitTime == nil
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Vehicle() vehicle.Vehicle { return s.vehicle }
func (s *Session) SpotID() int { return s.spotID }
func (s *Session) EntryTime() time.Time { return s.entryTime }
func (s *Session) ExitTime() *time.Time { return s.exitTime }
func (s *Session) IsSubscription() bool { return s.isSubscription }
func (s *Session) AmountPaid() float64 { return s.amountPaid }
