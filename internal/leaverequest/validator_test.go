package leaverequest

import (
	"context"
	"testing"
	"time"

	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/shared/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// 2026-03-02 is a Monday.
var (
	monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	friday = time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)
)

func activeType() *leavetype.LeaveType {
	return &leavetype.LeaveType{
		ID:       uuid.New(),
		Code:     "ANNUAL",
		Name:     "Annual Leave",
		IsActive: true,
		IsPaid:   true,
	}
}

func noOverlap(ctx context.Context) (bool, error) { return false, nil }

func plentyRemaining(ctx context.Context) (decimal.Decimal, error) {
	return decimal.NewFromInt(20), nil
}

func TestValidator_HappyPath(t *testing.T) {
	v := NewValidator(calendar.New())

	total, err := v.Validate(context.Background(), ValidateParams{
		LeaveType:  activeType(),
		StartDate:  monday,
		EndDate:    friday,
		Remaining:  plentyRemaining,
		HasOverlap: noOverlap,
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(5)), "got %s", total)
}

func TestValidator_HalfDay(t *testing.T) {
	v := NewValidator(calendar.New())

	total, err := v.Validate(context.Background(), ValidateParams{
		LeaveType:     activeType(),
		StartDate:     monday,
		EndDate:       monday,
		HalfDay:       true,
		HalfDayPeriod: HalfDayMorning,
		Remaining:     plentyRemaining,
		HasOverlap:    noOverlap,
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(0.5)), "got %s", total)
}

func TestValidator_RuleViolations(t *testing.T) {
	v := NewValidator(calendar.New())
	ctx := context.Background()

	inactive := activeType()
	inactive.IsActive = false

	capped := activeType()
	capped.MaxConsecutiveDays = 3

	needsCert := activeType()
	needsCert.RequiresCertificate = true
	needsCert.CertificateRequiredAfterDays = 2

	saturday := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		params  ValidateParams
		wantErr error
	}{
		{
			name:    "missing leave type",
			params:  ValidateParams{LeaveType: nil, StartDate: monday, EndDate: friday},
			wantErr: leaverequesterrors.ErrLeaveTypeInactive,
		},
		{
			name:    "inactive leave type",
			params:  ValidateParams{LeaveType: inactive, StartDate: monday, EndDate: friday},
			wantErr: leaverequesterrors.ErrLeaveTypeInactive,
		},
		{
			name:    "end before start",
			params:  ValidateParams{LeaveType: activeType(), StartDate: friday, EndDate: monday},
			wantErr: leaverequesterrors.ErrInvalidDateRange,
		},
		{
			name: "half day spanning two days",
			params: ValidateParams{
				LeaveType: activeType(), StartDate: monday, EndDate: friday,
				HalfDay: true, HalfDayPeriod: HalfDayMorning,
			},
			wantErr: leaverequesterrors.ErrHalfDayRange,
		},
		{
			name: "half day without period",
			params: ValidateParams{
				LeaveType: activeType(), StartDate: monday, EndDate: monday, HalfDay: true,
			},
			wantErr: leaverequesterrors.ErrHalfDayRange,
		},
		{
			name:    "weekend only",
			params:  ValidateParams{LeaveType: activeType(), StartDate: saturday, EndDate: sunday},
			wantErr: leaverequesterrors.ErrNoWorkingDays,
		},
		{
			name:    "consecutive cap exceeded",
			params:  ValidateParams{LeaveType: capped, StartDate: monday, EndDate: friday},
			wantErr: leaverequesterrors.ConsecutiveCapExceeded(3),
		},
		{
			name:    "certificate required",
			params:  ValidateParams{LeaveType: needsCert, StartDate: monday, EndDate: friday},
			wantErr: leaverequesterrors.ErrCertificateRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(ctx, tc.params)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidator_InsufficientBalance(t *testing.T) {
	v := NewValidator(calendar.New())

	_, err := v.Validate(context.Background(), ValidateParams{
		LeaveType: activeType(),
		StartDate: monday,
		EndDate:   friday,
		Remaining: func(ctx context.Context) (decimal.Decimal, error) {
			return decimal.NewFromInt(2), nil
		},
		HasOverlap: noOverlap,
	})
	assert.ErrorIs(t, err, leaverequesterrors.InsufficientBalance(decimal.NewFromInt(2), decimal.NewFromInt(5)))
}

func TestValidator_UnpaidTypeSkipsBalance(t *testing.T) {
	v := NewValidator(calendar.New())

	unpaid := activeType()
	unpaid.IsPaid = false

	// Remaining is nil on purpose: unpaid types never consult the ledger.
	total, err := v.Validate(context.Background(), ValidateParams{
		LeaveType:  unpaid,
		StartDate:  monday,
		EndDate:    friday,
		HasOverlap: noOverlap,
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(5)))
}

func TestValidator_Overlap(t *testing.T) {
	v := NewValidator(calendar.New())

	_, err := v.Validate(context.Background(), ValidateParams{
		LeaveType: activeType(),
		StartDate: monday,
		EndDate:   friday,
		Remaining: plentyRemaining,
		HasOverlap: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	})
	assert.ErrorIs(t, err, leaverequesterrors.ErrLeaveOverlap)
}

func TestValidator_CertificateSuppliedPasses(t *testing.T) {
	v := NewValidator(calendar.New())

	needsCert := activeType()
	needsCert.RequiresCertificate = true
	needsCert.CertificateRequiredAfterDays = 2

	total, err := v.Validate(context.Background(), ValidateParams{
		LeaveType:      needsCert,
		StartDate:      monday,
		EndDate:        friday,
		HasCertificate: true,
		Remaining:      plentyRemaining,
		HasOverlap:     noOverlap,
	})
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(5)))
}
