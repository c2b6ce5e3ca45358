//go:build unit

package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-facility/internal/domain/session"
	"parking-facility/tests/common/builder"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	v, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)
	return session.New(v, 7, baseTime, false)
}

func TestNewSession(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, 7, s.SpotID())
	assert.Equal(t, baseTime, s.EntryTime())
	assert.True(t, s.Active())
	assert.Nil(t, s.ExitTime())
	require.NotNil(t, s.Vehicle().EntryTime())
	assert.Equal(t, baseTime, *s.Vehicle().EntryTime(), "vehicle carries the entry stamp")
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{name: "ninety minutes", elapsed: 90 * time.Minute, want: 1.5},
		{name: "three hours", elapsed: 3 * time.Hour, want: 3.0},
		{name: "sub-minute remainder dropped", elapsed: 90*time.Minute + 59*time.Second, want: 1.5},
		{name: "zero elapsed", elapsed: 0, want: 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t)
			assert.InDelta(t, tc.want, s.DurationHours(baseTime.Add(tc.elapsed)), 1e-9)
		})
	}
}

func TestEnd(t *testing.T) {
	t.Run("sets exit time once", func(t *testing.T) {
		s := newSession(t)
		first := baseTime.Add(2 * time.Hour)
		s.End(first)

		require.NotNil(t, s.ExitTime())
		assert.Equal(t, first, *s.ExitTime())
		assert.False(t, s.Active())

		s.End(baseTime.Add(5 * time.Hour))
		assert.Equal(t, first, *s.ExitTime(), "second End must not overwrite the exit")
	})

	t.Run("exit never precedes entry", func(t *testing.T) {
		s := newSession(t)
		s.End(baseTime.Add(-time.Hour))

		require.NotNil(t, s.ExitTime())
		assert.Equal(t, baseTime, *s.ExitTime())
		assert.Zero(t, s.DurationHours(baseTime.Add(24*time.Hour)))
	})

	t.Run("duration freezes at exit", func(t *testing.T) {
		s := newSession(t)
		s.End(baseTime.Add(3 * time.Hour))
		assert.InDelta(t, 3.0, s.DurationHours(baseTime.Add(10*time.Hour)), 1e-9)
	})
}

func TestRecordPayment(t *testing.T) {
	s := newSession(t)
	assert.Zero(t, s.AmountPaid())

	s.RecordPayment(36.0)
	assert.Equal(t, 36.0, s.AmountPaid())
}
