package commands

import (
	"time"

	"parking-facility/internal/domain/subscription"
	reqdto "parking-facility/internal/handler/dto/request"
	"parking-facility/internal/pkg/errs"
)

var ErrSubscriptionNotFound = errs.New("subscription not found")

type SubscriptionResult struct {
	ID         string
	Plate      string
	Subscriber string
	StartDate  time.Time
	EndDate    time.Time
	Tier       subscription.Tier
}

type SubscriptionCommands interface {
	Create(req reqdto.CreateSubscriptionRequest) (*SubscriptionResult, error)
	// Validate reports whether the subscription may be used at the gate.
	// Expired subscriptions are deactivated as a consequence of the check,
	// so a false answer is permanent.
	Validate(id string) (bool, error)
}

type subscriptionCommandsImpl struct {
	registry SubscriptionRegistry
}

func NewSubscriptionCommands(registry SubscriptionRegistry) SubscriptionCommands {
	return &subscriptionCommandsImpl{registry: registry}
}

func (s *subscriptionCommandsImpl) Create(req reqdto.CreateSubscriptionRequest) (*SubscriptionResult, error) {
	tier, err := req.ToTier()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	sub, err := s.registry.Create(req.Plate, req.Subscriber, req.Months, tier)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return &SubscriptionResult{
		ID:         sub.ID(),
		Plate:      sub.Plate(),
		Subscriber: sub.Subscriber(),
		StartDate:  sub.StartDate(),
		EndDate:    sub.EndDate(),
		Tier:       sub.Tier(),
	}, nil
}

func (s *subscriptionCommandsImpl) Validate(id string) (bool, error) {
	if _, ok := s.registry.Find(id); !ok {
		return false, ErrSubscriptionNotFound
	}
	return s.registry.IsValid(id), nil
}
