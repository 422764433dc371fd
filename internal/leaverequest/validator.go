package leaverequest

import (
	"context"
	"time"

	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/shared/calendar"

	"github.com/shopspring/decimal"
)

// ValidateParams feeds the rule pipeline. Remaining and HasOverlap are
// callbacks so the pipeline stays fail-fast: the ledger and the overlap
// query are only consulted when the earlier rules pass.
type ValidateParams struct {
	LeaveType      *leavetype.LeaveType
	StartDate      time.Time
	EndDate        time.Time
	HalfDay        bool
	HalfDayPeriod  string
	HasCertificate bool

	// Remaining is consulted for paid leave types only.
	Remaining func(ctx context.Context) (decimal.Decimal, error)

	HasOverlap func(ctx context.Context) (bool, error)
}

// Validator runs the ordered rule pipeline and returns the first violated
// rule, never an aggregate. On success it returns the computed total days,
// which is the only total the caller may persist.
type Validator struct {
	calendar *calendar.Calendar
}

func NewValidator(cal *calendar.Calendar) *Validator {
	if cal == nil {
		cal = calendar.New()
	}
	return &Validator{calendar: cal}
}

func (v *Validator) Validate(ctx context.Context, p ValidateParams) (decimal.Decimal, error) {
	// Rule 1: leave type must exist and be active.
	if p.LeaveType == nil || !p.LeaveType.IsActive {
		return decimal.Zero, leaverequesterrors.ErrLeaveTypeInactive
	}

	// Rule 2: date-range sanity.
	if p.EndDate.Before(p.StartDate) {
		return decimal.Zero, leaverequesterrors.ErrInvalidDateRange
	}
	if p.HalfDay {
		sameDay := p.StartDate.Year() == p.EndDate.Year() &&
			p.StartDate.YearDay() == p.EndDate.YearDay()
		validPeriod := p.HalfDayPeriod == HalfDayMorning || p.HalfDayPeriod == HalfDayAfternoon
		if !sameDay || !validPeriod {
			return decimal.Zero, leaverequesterrors.ErrHalfDayRange
		}
	}

	totalDays := v.calendar.BusinessDays(p.StartDate, p.EndDate, p.HalfDay)
	if totalDays.IsZero() {
		return decimal.Zero, leaverequesterrors.ErrNoWorkingDays
	}

	// Rule 3: consecutive-day cap, when the leave type defines one.
	if p.LeaveType.MaxConsecutiveDays > 0 {
		maxDays := decimal.NewFromInt(int64(p.LeaveType.MaxConsecutiveDays))
		if totalDays.GreaterThan(maxDays) {
			return decimal.Zero, leaverequesterrors.ConsecutiveCapExceeded(p.LeaveType.MaxConsecutiveDays)
		}
	}

	// Rule 4: certificate requirement beyond the threshold.
	if p.LeaveType.RequiresCertificate {
		threshold := decimal.NewFromInt(int64(p.LeaveType.CertificateRequiredAfterDays))
		if totalDays.GreaterThan(threshold) && !p.HasCertificate {
			return decimal.Zero, leaverequesterrors.ErrCertificateRequired
		}
	}

	// Rule 5: balance sufficiency. Unpaid leave types skip the ledger.
	if p.LeaveType.IsPaid {
		remaining, err := p.Remaining(ctx)
		if err != nil {
			return decimal.Zero, err
		}
		if remaining.LessThan(totalDays) {
			return decimal.Zero, leaverequesterrors.InsufficientBalance(remaining, totalDays)
		}
	}

	// Rule 6: no overlap with existing pending or approved requests.
	overlap, err := p.HasOverlap(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if overlap {
		return decimal.Zero, leaverequesterrors.ErrLeaveOverlap
	}

	return totalDays, nil
}
