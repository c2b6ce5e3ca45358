//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"parking-facility/internal/domain/subscription"
	reqdto "parking-facility/internal/handler/dto/request"
)

type SubscriptionBuilder struct {
	ID         string
	Plate      string
	Subscriber string
	Start      time.Time
	Months     int
	Tier       string
	Multiplier float64
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	return &SubscriptionBuilder{
		ID:         uuid.NewString(),
		Plate:      "AB-123-CD",
		Subscriber: "Alice Carter",
		Start:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Months:     6,
		Tier:       "standard",
		Multiplier: 0.8,
	}
}

func (b *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(b)
	return b
}

func (b *SubscriptionBuilder) BuildDomain() (*subscription.Subscription, error) {
	return subscription.New(b.ID, b.Plate, b.Subscriber, b.Start, b.Months, subscription.Tier(b.Tier), b.Multiplier)
}

func (b *SubscriptionBuilder) BuildCreateDTO() reqdto.CreateSubscriptionRequest {
	return reqdto.CreateSubscriptionRequest{
		Plate:      b.Plate,
		Subscriber: b.Subscriber,
		Months:     b.Months,
		Tier:       b.Tier,
	}
}
