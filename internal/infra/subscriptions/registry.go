// Package subscriptions keeps every subscription ever created in process
// memory. The registry is not on the allocation hot path, so it carries its
// own lock, independent of the engine's.
package subscriptions

import (
	"sync"

	"parking-facility/internal/domain/subscription"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/config"

	"github.com/google/uuid"
)

type Registry struct {
	mu          sync.Mutex
	byID        map[string]*subscription.Subscription
	order       []*subscription.Subscription
	multipliers subscription.TierMultipliers
	clk         clock.Clock
}

func NewRegistry(cfg config.RatesConfig, clk clock.Clock) *Registry {
	return &Registry{
		byID: make(map[string]*subscription.Subscription),
		multipliers: subscription.TierMultipliers{
			Standard: cfg.StandardMultiplier,
			Premium:  cfg.PremiumMultiplier,
			VIP:      cfg.VIPMultiplier,
		},
		clk: clk,
	}
}

// Create registers a new subscription and returns it. Any prior active
// subscription for the same plate is deactivated first: a plate holds at most
// one active subscription. Ids are uuids; collisions across the process
// lifetime are unacceptable, so nothing derived from the plate or the clock
// is used.
func (r *Registry) Create(plate, subscriber string, months int, tier subscription.Tier) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, err := subscription.New(
		uuid.NewString(),
		plate,
		subscriber,
		r.clk.Now(),
		months,
		tier,
		r.multipliers.For(tier),
	)
	if err != nil {
		return nil, err
	}

	for _, existing := range r.order {
		if existing.Plate() == sub.Plate() && existing.Active() {
			existing.Deactivate()
		}
	}

	r.byID[sub.ID()] = sub
	r.order = append(r.order, sub)
	return sub, nil
}

// IsValid reports whether the subscription exists, is active and has not
// expired. Expiry enforcement is explicit here rather than hidden in the
// record: a subscription found past its end date is deactivated, so repeated
// queries keep answering false.
func (r *Registry) IsValid(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok || !sub.Active() {
		return false
	}
	if sub.ExpiredAt(r.clk.Now()) {
		sub.Deactivate()
		return false
	}
	return true
}

func (r *Registry) Find(id string) (*subscription.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.byID[id]
	return sub, ok
}

// FindActiveByPlate returns the plate's current active subscription, expired
// or not; validity still goes through IsValid.
func (r *Registry) FindActiveByPlate(plate string) (*subscription.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.order) - 1; i >= 0; i-- {
		if r.order[i].Plate() == plate && r.order[i].Active() {
			return r.order[i], true
		}
	}
	return nil, false
}

// History lists every subscription ever created for the plate, newest last.
func (r *Registry) History(plate string) []*subscription.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*subscription.Subscription
	for _, sub := range r.order {
		if sub.Plate() == plate {
			out = append(out, sub)
		}
	}
	return out
}
