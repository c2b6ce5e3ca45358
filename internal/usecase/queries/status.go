package queries

import (
	"time"

	"github.com/google/uuid"

	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/session"
	"parking-facility/internal/domain/subscription"
)

// Read models for the status facade.

type StatusView struct {
	TotalSpots          int     `json:"total_spots"`
	OccupiedSpots       int     `json:"occupied_spots"`
	AvailableSpots      int     `json:"available_spots"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

type SessionView struct {
	ID             uuid.UUID  `json:"id"`
	Plate          string     `json:"plate"`
	Owner          string     `json:"owner"`
	Class          string     `json:"class"`
	Accessible     bool       `json:"accessible"`
	Color          string     `json:"color"`
	SpotID         int        `json:"spot_id"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	DurationHours  float64    `json:"duration_hours"`
	IsSubscription bool       `json:"is_subscription"`
	AmountPaid     float64    `json:"amount_paid"`
	// CurrentFee is the discount-aware fee a vehicle would owe if it left
	// now. Only set for active sessions.
	CurrentFee *float64 `json:"current_fee,omitempty"`
}

// Read-side ports onto the engine and registry.

type LotReader interface {
	TotalSpots() int
	OccupiedSpots() int
	AvailableSpots() int
	OccupancyPercentage() float64
	CurrentSessions() []*session.Session
	SessionHistory() []*session.Session
	Now() time.Time
}

type SubscriptionReader interface {
	FindActiveByPlate(plate string) (*subscription.Subscription, bool)
}

type StatusQueries interface {
	Status() StatusView
	CurrentSessions() []SessionView
	SessionHistory() []SessionView
}

type statusQueriesImpl struct {
	lot           LotReader
	subscriptions SubscriptionReader
	calc          *pricing.Calculator
}

func NewStatusQueries(lot LotReader, subscriptions SubscriptionReader, calc *pricing.Calculator) StatusQueries {
	return &statusQueriesImpl{
		lot:           lot,
		subscriptions: subscriptions,
		calc:          calc,
	}
}

func (q *statusQueriesImpl) Status() StatusView {
	return StatusView{
		TotalSpots:          q.lot.TotalSpots(),
		OccupiedSpots:       q.lot.OccupiedSpots(),
		AvailableSpots:      q.lot.AvailableSpots(),
		OccupancyPercentage: q.lot.OccupancyPercentage(),
	}
}

func (q *statusQueriesImpl) CurrentSessions() []SessionView {
	now := q.lot.Now()
	sessions := q.lot.CurrentSessions()

	views := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		view := newSessionView(s, now)

		sub, _ := q.subscriptions.FindActiveByPlate(s.Vehicle().Plate())
		fee := q.calc.FeeWithSubscription(s, sub, now)
		view.CurrentFee = &fee

		views = append(views, view)
	}
	return views
}

func (q *statusQueriesImpl) SessionHistory() []SessionView {
	now := q.lot.Now()
	sessions := q.lot.SessionHistory()

	views := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, newSessionView(s, now))
	}
	return views
}

func newSessionView(s *session.Session, now time.Time) SessionView {
	v := s.Vehicle()
	return SessionView{
		ID:             s.ID(),
		Plate:          v.Plate(),
		Owner:          v.Owner(),
		Class:          string(v.Class()),
		Accessible:     v.Accessible(),
		Color:          v.Color(),
		SpotID:         s.SpotID(),
		EntryTime:      s.EntryTime(),
		ExitTime:       s.ExitTime(),
		DurationHours:  s.DurationHours(now),
		IsSubscription: s.IsSubscription(),
		AmountPaid:     s.AmountPaid(),
	}
}
