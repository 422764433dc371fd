package leaverequesterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

// Rule names surfaced in ValidationError details. The caller-facing layer
// localizes messages; these stay stable for machine consumption.
const (
	RuleLeaveType      = "leave_type"
	RuleDateRange      = "date_range"
	RuleConsecutiveCap = "consecutive_cap"
	RuleCertificate    = "certificate"
	RuleBalance        = "balance"
	RuleOverlap        = "overlap"
)

const codeValidation = "VALIDATION_ERROR"

func ruleError(rule, message string, status int) *apperror.AppError {
	err := apperror.New(codeValidation, message, status)
	return err.WithDetails(map[string]any{"rule": rule})
}

var (
	ErrLeaveTypeInactive = ruleError(
		RuleLeaveType,
		"leave type does not exist or is not active",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = ruleError(
		RuleDateRange,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = ruleError(
		RuleDateRange,
		"the requested period contains no working days",
		http.StatusBadRequest,
	)
	ErrHalfDayRange = ruleError(
		RuleDateRange,
		"a half-day request must start and end on the same date with a period",
		http.StatusBadRequest,
	)
	ErrCertificateRequired = ruleError(
		RuleCertificate,
		"a medical certificate is required for this duration",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = ruleError(
		RuleOverlap,
		"an existing leave request overlaps the requested period",
		http.StatusConflict,
	)
)

func ConsecutiveCapExceeded(maxDays int) *apperror.AppError {
	return ruleError(
		RuleConsecutiveCap,
		"requested days exceed the maximum consecutive days for this leave type",
		http.StatusBadRequest,
	).WithDetails(map[string]any{
		"rule":     RuleConsecutiveCap,
		"max_days": maxDays,
	})
}

func InsufficientBalance(remaining, requested decimal.Decimal) *apperror.AppError {
	return ruleError(
		RuleBalance,
		"remaining leave balance is not enough for the requested days",
		http.StatusConflict,
	).WithDetails(map[string]any{
		"rule":      RuleBalance,
		"remaining": remaining.String(),
		"requested": requested.String(),
	})
}

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"this operation does not apply to the request's current status",
		http.StatusConflict,
	)
	ErrInvalidActor = apperror.New(
		apperror.CodeForbidden,
		"only the requesting employee may perform this action",
		http.StatusForbidden,
	)
	ErrNotCurrentApprover = apperror.New(
		apperror.CodeForbidden,
		"you are not the approver for the current approval level",
		http.StatusForbidden,
	)
	ErrStepNotFound = apperror.New(
		"STEP_NOT_FOUND",
		"no approval step found at the current approval level",
		http.StatusInternalServerError,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNoApproverAvailable = apperror.New(
		apperror.CodeInvalidState,
		"no approver could be resolved for this employee",
		http.StatusUnprocessableEntity,
	)
)
