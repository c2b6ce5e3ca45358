package pricing

import (
	"math"
	"time"

	"parking-facility/internal/domain/session"
	"parking-facility/internal/domain/subscription"
	"parking-facility/internal/domain/vehicle"
)

// RateTable maps (vehicle class, accessibility flag) to an hourly rate. The
// accessible rate is class-independent by facility policy, but the table keeps
// separate entries so a deployment can diverge.
type RateTable struct {
	CarHourly            float64
	CarAccessible        float64
	MotorcycleHourly     float64
	MotorcycleAccessible float64
}

func (r RateTable) HourlyRate(class vehicle.Class, accessible bool) float64 {
	switch class {
	case vehicle.ClassMotorcycle:
		if accessible {
			return r.MotorcycleAccessible
		}
		return r.MotorcycleHourly
	default:
		if accessible {
			return r.CarAccessible
		}
		return r.CarHourly
	}
}

// Calculator is the pure fee policy: a free grace period, then partial hours
// rounded up to full hours at the tabled rate. Subscription sessions are not
// metered at all.
type Calculator struct {
	rates     RateTable
	freeHours float64
}

func NewCalculator(rates RateTable, freeHours float64) *Calculator {
	return &Calculator{
		rates:     rates,
		freeHours: freeHours,
	}
}

func (c *Calculator) FreeHours() float64 {
	return c.freeHours
}

func (c *Calculator) Fee(s *session.Session, now time.Time) float64 {
	if s == nil || s.IsSubscription() {
		return 0.0
	}
	return c.feeForDuration(s.DurationHours(now), s.Vehicle())
}

func (c *Calculator) feeForDuration(durationHours float64, v vehicle.Vehicle) float64 {
	billable := durationHours - c.freeHours
	if billable <= 0 {
		return 0.0
	}

	chargeableHours := math.Ceil(billable)
	return chargeableHours * c.rates.HourlyRate(v.Class(), v.Accessible())
}

// FeeWithSubscription is the discount-aware entry point: an active
// subscription waives the fee entirely, a lapsed one still earns its tier's
// discount on the base fee. Callers wanting standard pricing use Fee.
func (c *Calculator) FeeWithSubscription(s *session.Session, sub *subscription.Subscription, now time.Time) float64 {
	if s == nil {
		return 0.0
	}
	if sub != nil && sub.Active() && !sub.ExpiredAt(now) {
		return 0.0
	}

	base := c.Fee(s, now)
	if sub != nil {
		return base * sub.DiscountMultiplier()
	}
	return base
}

// AnnualSubscriptionFee quotes a yearly subscription from an hourly rate,
// assuming 4 hours a day, 20 days a month, with a 40% annual discount.
func (c *Calculator) AnnualSubscriptionFee(hourlyRate float64) float64 {
	typicalMonthlyUsage := hourlyRate * 4 * 20
	return typicalMonthlyUsage * 12 * 0.6
}
