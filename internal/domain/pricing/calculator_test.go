//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/session"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/tests/common/builder"
)

var (
	baseTime   = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	rateTable  = pricing.RateTable{CarHourly: 18.0, CarAccessible: 8.0, MotorcycleHourly: 12.0, MotorcycleAccessible: 8.0}
	calculator = pricing.NewCalculator(rateTable, 2.0)
)

func sessionFor(t *testing.T, class string, accessible, isSubscription bool) *session.Session {
	t.Helper()
	v, err := builder.NewVehicleBuilder().
		With(func(b *builder.VehicleBuilder) { b.Class = class; b.Accessible = accessible }).
		BuildDomain()
	require.NoError(t, err)
	return session.New(v, 1, baseTime, isSubscription)
}

func TestHourlyRate(t *testing.T) {
	assert.Equal(t, 18.0, rateTable.HourlyRate(vehicle.ClassCar, false))
	assert.Equal(t, 12.0, rateTable.HourlyRate(vehicle.ClassMotorcycle, false))
	assert.Equal(t, 8.0, rateTable.HourlyRate(vehicle.ClassCar, true))
	assert.Equal(t, 8.0, rateTable.HourlyRate(vehicle.ClassMotorcycle, true), "accessible rate is class independent")
}

func TestFee(t *testing.T) {
	cases := []struct {
		name       string
		class      string
		accessible bool
		elapsed    time.Duration
		want       float64
	}{
		{name: "within free period", class: "car", elapsed: 90 * time.Minute, want: 0.0},
		{name: "exactly at free boundary", class: "car", elapsed: 2 * time.Hour, want: 0.0},
		{name: "one billable hour", class: "car", elapsed: 3 * time.Hour, want: 18.0},
		{name: "partial hour rounds up", class: "car", elapsed: 5*time.Hour + 30*time.Minute, want: 72.0},
		{name: "accessible car uses reduced rate", class: "car", accessible: true, elapsed: 4 * time.Hour, want: 16.0},
		{name: "motorcycle rate", class: "motorcycle", elapsed: 4 * time.Hour, want: 24.0},
		{name: "accessible motorcycle same reduced rate", class: "motorcycle", accessible: true, elapsed: 4 * time.Hour, want: 16.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionFor(t, tc.class, tc.accessible, false)
			got := calculator.Fee(s, baseTime.Add(tc.elapsed))
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}

	t.Run("nil session is free", func(t *testing.T) {
		assert.Zero(t, calculator.Fee(nil, baseTime))
	})

	t.Run("subscription session is never metered", func(t *testing.T) {
		s := sessionFor(t, "car", false, true)
		assert.Zero(t, calculator.Fee(s, baseTime.Add(12*time.Hour)))
	})
}

func TestFeeWithSubscription(t *testing.T) {
	now := baseTime.Add(5 * time.Hour)

	t.Run("active subscription waives the fee", func(t *testing.T) {
		sub, err := builder.NewSubscriptionBuilder().BuildDomain()
		require.NoError(t, err)

		s := sessionFor(t, "car", false, false)
		assert.Zero(t, calculator.FeeWithSubscription(s, sub, now))
	})

	t.Run("lapsed subscription earns its discount", func(t *testing.T) {
		sub, err := builder.NewSubscriptionBuilder().
			With(func(b *builder.SubscriptionBuilder) {
				b.Start = baseTime.AddDate(-1, 0, 0)
				b.Months = 1
				b.Multiplier = 0.8
			}).
			BuildDomain()
		require.NoError(t, err)
		require.True(t, sub.ExpiredAt(now))

		s := sessionFor(t, "car", false, false)
		// 5h elapsed, 3 billable at 18.0, discounted by 0.8.
		assert.InDelta(t, 43.2, calculator.FeeWithSubscription(s, sub, now), 1e-9)
	})

	t.Run("no subscription falls back to base fee", func(t *testing.T) {
		s := sessionFor(t, "car", false, false)
		assert.InDelta(t, 54.0, calculator.FeeWithSubscription(s, nil, now), 1e-9)
	})
}

func TestAnnualSubscriptionFee(t *testing.T) {
	// 18.0/h * 4h * 20d * 12mo * 0.6
	assert.InDelta(t, 10368.0, calculator.AnnualSubscriptionFee(18.0), 1e-9)
	assert.InDelta(t, 6912.0, calculator.AnnualSubscriptionFee(12.0), 1e-9)
}
