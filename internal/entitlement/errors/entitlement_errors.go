package entitlementerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrEntitlementNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave entitlement not found for this employee, leave type and year",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"remaining leave balance is not enough for the requested days",
		http.StatusConflict,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be greater than zero",
		http.StatusBadRequest,
	)
	ErrCarryOverNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"carry over is not allowed for this leave type",
		http.StatusBadRequest,
	)
)
