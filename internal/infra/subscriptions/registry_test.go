//go:build unit

package subscriptions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"parking-facility/internal/domain/subscription"
	"parking-facility/internal/infra/subscriptions"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/config"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *subscriptions.Registry
	clk      *clock.MockClock
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.registry = subscriptions.NewRegistry(config.NewTestConfig().Rates, s.clk)
}

func (s *RegistryTestSuite) TestCreateAssignsUniqueIDs() {
	first, err := s.registry.Create("AB-123-CD", "Alice Carter", 6, subscription.TierStandard)
	s.Require().NoError(err)
	second, err := s.registry.Create("EF-456-GH", "Bob Reyes", 12, subscription.TierVIP)
	s.Require().NoError(err)

	s.NotEqual(first.ID(), second.ID())
	s.InDelta(0.8, first.DiscountMultiplier(), 1e-9)
	s.InDelta(0.6, second.DiscountMultiplier(), 1e-9)
}

func (s *RegistryTestSuite) TestCreateDeactivatesPriorActiveForPlate() {
	first, err := s.registry.Create("AB-123-CD", "Alice Carter", 6, subscription.TierStandard)
	s.Require().NoError(err)
	s.True(first.Active())

	second, err := s.registry.Create("AB-123-CD", "Alice Carter", 12, subscription.TierPremium)
	s.Require().NoError(err)

	s.False(first.Active(), "a plate holds at most one active subscription")
	s.True(second.Active())

	found, ok := s.registry.FindActiveByPlate("AB-123-CD")
	s.Require().True(ok)
	s.Equal(second.ID(), found.ID())
}

func (s *RegistryTestSuite) TestCreateRejectsInvalidInput() {
	_, err := s.registry.Create("", "Alice Carter", 6, subscription.TierStandard)
	s.Error(err)

	_, err = s.registry.Create("AB-123-CD", "Alice Carter", 0, subscription.TierStandard)
	s.Error(err)
}

func (s *RegistryTestSuite) TestIsValid() {
	sub, err := s.registry.Create("AB-123-CD", "Alice Carter", 6, subscription.TierStandard)
	s.Require().NoError(err)

	s.True(s.registry.IsValid(sub.ID()))
	s.False(s.registry.IsValid("no-such-id"))
}

func (s *RegistryTestSuite) TestIsValidDeactivatesOnExpiry() {
	sub, err := s.registry.Create("AB-123-CD", "Alice Carter", 6, subscription.TierStandard)
	s.Require().NoError(err)

	// Still good through the whole end date.
	s.clk.Set(sub.EndDate().Add(23 * time.Hour))
	s.True(s.registry.IsValid(sub.ID()))

	s.clk.Add(2 * time.Hour)
	s.False(s.registry.IsValid(sub.ID()))
	s.False(sub.Active(), "expiry check deactivates the record")

	// Rolling the clock back does not resurrect it.
	s.clk.Set(sub.StartDate())
	s.False(s.registry.IsValid(sub.ID()))
}

func (s *RegistryTestSuite) TestFindActiveByPlateIncludesExpired() {
	sub, err := s.registry.Create("AB-123-CD", "Alice Carter", 1, subscription.TierStandard)
	s.Require().NoError(err)

	s.clk.Set(sub.EndDate().AddDate(0, 0, 2))

	found, ok := s.registry.FindActiveByPlate("AB-123-CD")
	s.Require().True(ok, "lapsed but undetected subscriptions still surface for discount pricing")
	s.Equal(sub.ID(), found.ID())
	s.True(found.ExpiredAt(s.clk.Now()))
}

func (s *RegistryTestSuite) TestHistory() {
	first := s.mustCreate("AB-123-CD", 1, subscription.TierStandard)
	s.mustCreate("EF-456-GH", 6, subscription.TierPremium)
	second := s.mustCreate("AB-123-CD", 12, subscription.TierVIP)

	history := s.registry.History("AB-123-CD")
	s.Require().Len(history, 2)
	s.Equal(first.ID(), history[0].ID())
	s.Equal(second.ID(), history[1].ID())

	s.Empty(s.registry.History("ZZ-999-ZZ"))
}

func (s *RegistryTestSuite) mustCreate(plate string, months int, tier subscription.Tier) *subscription.Subscription {
	s.T().Helper()
	sub, err := s.registry.Create(plate, "Alice Carter", months, tier)
	s.Require().NoError(err)
	return sub
}
