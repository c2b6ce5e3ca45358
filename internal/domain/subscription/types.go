package subscription

// Tier is the closed set of subscription levels, each with an associated
// discount multiplier applied when a lapsed subscription is priced.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierVIP      Tier = "vip"
)

func (t Tier) String() string {
	return string(t)
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

func (t Tier) IsValid() bool {
	switch t {
	case TierStandard, TierPremium, TierVIP:
		return true
	default:
		return false
	}
}

// TierMultipliers resolves a tier to its discount multiplier. Values come
// from configuration; DefaultMultipliers matches the facility's published
// 20/30/40 percent discounts.
type TierMultipliers struct {
	Standard float64
	Premium  float64
	VIP      float64
}

func DefaultMultipliers() TierMultipliers {
	return TierMultipliers{
		Standard: 0.8,
		Premium:  0.7,
		VIP:      0.6,
	}
}

func (m TierMultipliers) For(t Tier) float64 {
	switch t {
	case TierPremium:
		return m.Premium
	case TierVIP:
		return m.VIP
	default:
		return m.Standard
	}
}
