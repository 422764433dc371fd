package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	halfDay = decimal.NewFromFloat(0.5)
	oneDay  = decimal.NewFromInt(1)
)

// Calendar counts business days between dates. The zero value excludes
// weekends only; holidays can be layered on top with WithHolidays.
type Calendar struct {
	holidays map[string]struct{}
}

func New() *Calendar {
	return &Calendar{}
}

// WithHolidays returns a calendar that additionally excludes the given dates.
// Dates are compared by calendar day, time-of-day is ignored.
func (c *Calendar) WithHolidays(dates ...time.Time) *Calendar {
	next := &Calendar{holidays: make(map[string]struct{}, len(dates)+len(c.holidays))}
	for k := range c.holidays {
		next.holidays[k] = struct{}{}
	}
	for _, d := range dates {
		next.holidays[dayKey(d)] = struct{}{}
	}
	return next
}

// BusinessDays returns the number of working days from start to end inclusive.
// A half-day request counts as 0.5 when its day is a working day, 0 otherwise.
// Returns 0 when end is before start; rejecting that input is the caller's job.
func (c *Calendar) BusinessDays(start, end time.Time, isHalfDay bool) decimal.Decimal {
	if isHalfDay {
		if !c.isWorkingDay(truncateToDay(start)) {
			return decimal.Zero
		}
		return halfDay
	}

	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return decimal.Zero
	}

	total := decimal.Zero
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !c.isWorkingDay(d) {
			continue
		}
		total = total.Add(oneDay)
	}
	return total
}

func (c *Calendar) isWorkingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if c.holidays != nil {
		if _, ok := c.holidays[dayKey(d)]; ok {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
