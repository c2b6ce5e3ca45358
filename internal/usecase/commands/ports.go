package commands

import (
	"time"

	"parking-facility/internal/domain/session"
	"parking-facility/internal/domain/subscription"
	"parking-facility/internal/domain/vehicle"
)

// Ports onto the in-memory infrastructure, declared beside their consumers so
// the write side never depends on concrete engine types.

type AllocationEngine interface {
	Park(v vehicle.Vehicle, isSubscription bool) (*session.Session, error)
	Remove(plate string) (*session.Session, error)
	Reset()
	Now() time.Time
}

type SubscriptionRegistry interface {
	Create(plate, subscriber string, months int, tier subscription.Tier) (*subscription.Subscription, error)
	IsValid(id string) bool
	Find(id string) (*subscription.Subscription, bool)
}
