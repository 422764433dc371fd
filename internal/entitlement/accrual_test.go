package entitlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultEntitlementForTenure(t *testing.T) {
	cases := []struct {
		tenure int
		want   int64
	}{
		{0, 6},
		{1, 8},
		{2, 10},
		{3, 12},
		{4, 12},
		{5, 15},
		{9, 15},
		{10, 20},
		{25, 20},
	}

	for _, tc := range cases {
		got := DefaultEntitlementForTenure(DefaultTiers, tc.tenure)
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
			"tenure %d: want %d, got %s", tc.tenure, tc.want, got)
	}
}

func TestTenureYears(t *testing.T) {
	hire := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, TenureYears(hire, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, TenureYears(hire, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, TenureYears(hire, time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestProRata(t *testing.T) {
	annual := decimal.NewFromInt(12)

	// Hired in July: six months left of the year.
	julyHire := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ProRata(julyHire, annual).Equal(decimal.NewFromInt(6)))

	// Hired in January: the full grant.
	janHire := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)
	assert.True(t, ProRata(janHire, annual).Equal(annual))

	// Fractions floor to whole days: 15 * 3/12 = 3.75 -> 3.
	octHire := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, ProRata(octHire, decimal.NewFromInt(15)).Equal(decimal.NewFromInt(3)))
}
