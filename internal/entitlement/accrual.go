package entitlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntitlementTier maps service tenure to an annual grant. Tiers are
// evaluated in order; the first tier whose BelowYears exceeds the tenure
// wins. A BelowYears of 0 marks the open-ended top tier.
type EntitlementTier struct {
	BelowYears int
	Days       decimal.Decimal
}

// DefaultTiers is the standard tenure table. It is configuration, not law;
// callers may substitute their own table.
var DefaultTiers = []EntitlementTier{
	{BelowYears: 1, Days: decimal.NewFromInt(6)},
	{BelowYears: 2, Days: decimal.NewFromInt(8)},
	{BelowYears: 3, Days: decimal.NewFromInt(10)},
	{BelowYears: 5, Days: decimal.NewFromInt(12)},
	{BelowYears: 10, Days: decimal.NewFromInt(15)},
	{BelowYears: 0, Days: decimal.NewFromInt(20)},
}

// DefaultEntitlementForTenure resolves the annual grant from a tier table.
func DefaultEntitlementForTenure(tiers []EntitlementTier, tenureYears int) decimal.Decimal {
	for _, tier := range tiers {
		if tier.BelowYears == 0 {
			return tier.Days
		}
		if tenureYears < tier.BelowYears {
			return tier.Days
		}
	}
	return decimal.Zero
}

// TenureYears returns full years of service at the given reference date.
func TenureYears(hireDate, asOf time.Time) int {
	years := asOf.Year() - hireDate.Year()
	anniversary := hireDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ProRata scales an annual grant by the months actually employed in the
// hire year, floored to a whole day. Only meaningful for the first
// partial year; later years get the full grant.
func ProRata(hireDate time.Time, annualEntitlement decimal.Decimal) decimal.Decimal {
	monthsEmployed := 12 - int(hireDate.Month()) + 1
	if monthsEmployed >= 12 {
		return annualEntitlement
	}
	return annualEntitlement.
		Mul(decimal.NewFromInt(int64(monthsEmployed))).
		Div(decimal.NewFromInt(12)).
		Floor()
}
