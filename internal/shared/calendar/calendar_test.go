package calendar_test

import (
	"testing"
	"time"

	"go-leave/internal/shared/calendar"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	cal := calendar.New()

	t.Run("monday to wednesday counts three days", func(t *testing.T) {
		// 2026-03-02 is a Monday
		got := cal.BusinessDays(date(2026, 3, 2), date(2026, 3, 4), false)
		assert.Equal(t, "3", got.String())
	})

	t.Run("full week excludes weekend", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 2), date(2026, 3, 8), false)
		assert.Equal(t, "5", got.String())
	})

	t.Run("saturday to sunday counts zero", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 7), date(2026, 3, 8), false)
		assert.True(t, got.IsZero())
	})

	t.Run("single weekday counts one", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 4), date(2026, 3, 4), false)
		assert.Equal(t, "1", got.String())
	})

	t.Run("end before start counts zero", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 5), date(2026, 3, 2), false)
		assert.True(t, got.IsZero())
	})

	t.Run("half day counts as half", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 2), date(2026, 3, 6), true)
		assert.Equal(t, "0.5", got.String())
	})

	t.Run("half day on a weekend counts zero", func(t *testing.T) {
		got := cal.BusinessDays(date(2026, 3, 7), date(2026, 3, 7), true)
		assert.True(t, got.IsZero())
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		start := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
		end := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
		got := cal.BusinessDays(start, end, false)
		assert.Equal(t, "2", got.String())
	})
}

func TestBusinessDaysWithHolidays(t *testing.T) {
	cal := calendar.New().WithHolidays(date(2026, 3, 3))

	got := cal.BusinessDays(date(2026, 3, 2), date(2026, 3, 4), false)
	assert.Equal(t, "2", got.String())

	t.Run("holiday on weekend changes nothing", func(t *testing.T) {
		cal := calendar.New().WithHolidays(date(2026, 3, 7))
		got := cal.BusinessDays(date(2026, 3, 2), date(2026, 3, 8), false)
		assert.Equal(t, "5", got.String())
	})

	t.Run("base calendar is not mutated", func(t *testing.T) {
		base := calendar.New()
		_ = base.WithHolidays(date(2026, 3, 3))
		got := base.BusinessDays(date(2026, 3, 2), date(2026, 3, 4), false)
		assert.Equal(t, "3", got.String())
	})
}
