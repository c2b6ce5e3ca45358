package subscription

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyPlate      = errors.New("license plate cannot be empty")
	ErrEmptySubscriber = errors.New("subscriber name cannot be empty")
	ErrInvalidMonths   = errors.New("subscription months must be positive")
	ErrInvalidTier     = errors.New("invalid subscription tier")
)

// Subscription is a time-bounded fee waiver for a specific plate. Records are
// never deleted, only deactivated, so history queries keep working. Expiry is
// a pure predicate here; the registry performs the explicit deactivation.
type Subscription struct {
	id         string
	plate      string
	subscriber string
	startDate  time.Time
	endDate    time.Time
	tier       Tier
	multiplier float64
	active     bool
}

func New(id, plate, subscriber string, start time.Time, months int, tier Tier, multiplier float64) (*Subscription, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	subscriber = strings.TrimSpace(subscriber)
	if subscriber == "" {
		return nil, ErrEmptySubscriber
	}
	if months <= 0 {
		return nil, ErrInvalidMonths
	}
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}

	startDate := dateOf(start)
	return &Subscription{
		id:         id,
		plate:      plate,
		subscriber: subscriber,
		startDate:  startDate,
		endDate:    startDate.AddDate(0, months, 0),
		tier:       tier,
		multiplier: multiplier,
		active:     true,
	}, nil
}

// ExpiredAt reports whether the validity window has passed at the given
// instant. Comparison is at date granularity: the subscription is good through
// the whole of its end date.
func (s *Subscription) ExpiredAt(now time.Time) bool {
	return dateOf(now).After(s.endDate)
}

func (s *Subscription) Deactivate() {
	s.active = false
}

func (s *Subscription) Active() bool { return s.active }
func (s *Subscription) ID() string { return s.id }
func (s *Subscription) Plate() string { return s.plate }
func (s *Subscription) Subscriber() string { return s.subscriber }
func (s *Subscription) StartDate() time.Time { return s.startDate }
func (s *Subscription) EndDate() time.Time { return s.endDate }
func (s *Subscription) Tier() Tier { return s.tier }

func (s *Subscription) DiscountMultiplier() float64 {
	return s.multiplier
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
