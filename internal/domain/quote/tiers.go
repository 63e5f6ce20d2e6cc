package quote

import (
	"errors"
	"math"
)

var ErrInvalidTier = errors.New("invalid tier")

// Tier price multipliers relative to the basic tier.
const (
	StandardMultiplier = 1.2
	PremiumMultiplier  = 1.5
)

type TierID string

const (
	TierBasic    TierID = "basic"
	TierStandard TierID = "standard"
	TierPremium  TierID = "premium"
)

func (t TierID) String() string {
	return string(t)
}

func (t TierID) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

// Tier is a derived price bundle. Features are fixed per tier; the
// selected equipment is shown as separate line items, not folded in here.
type Tier struct {
	Name     string
	Price    Money
	Features []string
}

// QuoteResult is derived, never persisted.
type QuoteResult struct {
	Basic    Tier
	Standard Tier
	Premium  Tier
}

func (r QuoteResult) Tier(id TierID) (Tier, error) {
	switch id {
	case TierBasic:
		return r.Basic, nil
	case TierStandard:
		return r.Standard, nil
	case TierPremium:
		return r.Premium, nil
	default:
		return Tier{}, ErrInvalidTier
	}
}

var (
	basicFeatures = []string{
		"Standard equipment",
		"Sound technician",
		"Setup and teardown",
	}
	standardFeatures = []string{
		"Everything in Basic",
		"Higher-grade equipment",
		"Upgraded lighting",
		"Extra technical assistant",
	}
	premiumFeatures = []string{
		"Everything in Standard",
		"High-end professional equipment",
		"Custom lighting design",
		"Professional DJ included",
		"Priority technical support",
	}
)

// DeriveTiers computes the three price bundles from the equipment total.
// Multiplied tiers round half away from zero (half-up for these prices).
// Pure and total for any validated Equipment.
func (c *Calculator) DeriveTiers(eq Equipment) QuoteResult {
	base := c.EquipmentTotal(eq)

	return QuoteResult{
		Basic: Tier{
			Name:     "Basic",
			Price:    base,
			Features: basicFeatures,
		},
		Standard: Tier{
			Name:     "Standard",
			Price:    roundMoney(float64(base) * StandardMultiplier),
			Features: standardFeatures,
		},
		Premium: Tier{
			Name:     "Premium",
			Price:    roundMoney(float64(base) * PremiumMultiplier),
			Features: premiumFeatures,
		},
	}
}

func roundMoney(v float64) Money {
	return Money(math.Round(v))
}
