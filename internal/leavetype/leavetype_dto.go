package leavetype

type LeaveTypeResponse struct {
	ID                           string `json:"id"`
	Code                         string `json:"code"`
	Name                         string `json:"name"`
	IsActive                     bool   `json:"is_active"`
	IsPaid                       bool   `json:"is_paid"`
	MaxConsecutiveDays           int    `json:"max_consecutive_days"`
	RequiresCertificate          bool   `json:"requires_certificate"`
	CertificateRequiredAfterDays int    `json:"certificate_required_after_days"`
	DefaultEntitlement           string `json:"default_entitlement"`
	AccrualType                  string `json:"accrual_type"`
	CarryOverAllowed             bool   `json:"carry_over_allowed"`
	MaxCarryOverDays             string `json:"max_carry_over_days"`
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                           lt.ID.String(),
		Code:                         lt.Code,
		Name:                         lt.Name,
		IsActive:                     lt.IsActive,
		IsPaid:                       lt.IsPaid,
		MaxConsecutiveDays:           lt.MaxConsecutiveDays,
		RequiresCertificate:          lt.RequiresCertificate,
		CertificateRequiredAfterDays: lt.CertificateRequiredAfterDays,
		DefaultEntitlement:           lt.DefaultEntitlement.String(),
		AccrualType:                  lt.AccrualType,
		CarryOverAllowed:             lt.CarryOverAllowed,
		MaxCarryOverDays:             lt.MaxCarryOverDays.String(),
	}
}
