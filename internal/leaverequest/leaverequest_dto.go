package leaverequest

import "time"

type CreateLeaveRequest struct {
	LeaveTypeID         string  `json:"leave_type_id" binding:"required,uuid"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	HalfDay             bool    `json:"half_day"`
	HalfDayPeriod       string  `json:"half_day_period" binding:"omitempty,oneof=MORNING AFTERNOON"`
	Reason              string  `json:"reason" binding:"required,min=10"`
	HandoverTo          *string `json:"handover_to" binding:"omitempty,uuid"`
	HandoverNotes       *string `json:"handover_notes"`
	ContactDuringLeave  *string `json:"contact_during_leave"`
	HasCertificate      bool    `json:"has_certificate"`
	CertificateURL      *string `json:"certificate_url" binding:"omitempty,url"`
	CertificateFilename *string `json:"certificate_filename"`

	// Draft requests skip numbering-to-pending: no chain, no reservation,
	// editable and deletable until submitted.
	Draft bool `json:"draft"`
}

type UpdateLeaveRequest struct {
	LeaveTypeID         string  `json:"leave_type_id" binding:"required,uuid"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	HalfDay             bool    `json:"half_day"`
	HalfDayPeriod       string  `json:"half_day_period" binding:"omitempty,oneof=MORNING AFTERNOON"`
	Reason              string  `json:"reason" binding:"required,min=10"`
	HandoverTo          *string `json:"handover_to" binding:"omitempty,uuid"`
	HandoverNotes       *string `json:"handover_notes"`
	ContactDuringLeave  *string `json:"contact_during_leave"`
	HasCertificate      bool    `json:"has_certificate"`
	CertificateURL      *string `json:"certificate_url" binding:"omitempty,url"`
	CertificateFilename *string `json:"certificate_filename"`
}

type ApproveLeaveRequest struct {
	Comments *string `json:"comments"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateLeaveResponse struct {
	ID            string `json:"id"`
	RequestNumber string `json:"request_number"`
}

type ApprovalStepResponse struct {
	Level        int     `json:"level"`
	ApproverID   string  `json:"approver_id"`
	ApproverRole string  `json:"approver_role"`
	Status       string  `json:"status"`
	ActionedAt   *string `json:"actioned_at,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

type LeaveRequestResponse struct {
	ID                   string                 `json:"id"`
	RequestNumber        string                 `json:"request_number"`
	EmployeeID           string                 `json:"employee_id"`
	EmployeeName         string                 `json:"employee_name"`
	EmployeeNumber       string                 `json:"employee_number"`
	DepartmentName       string                 `json:"department_name,omitempty"`
	PositionName         string                 `json:"position_name,omitempty"`
	LeaveTypeID          string                 `json:"leave_type_id"`
	LeaveTypeCode        string                 `json:"leave_type_code"`
	LeaveTypeName        string                 `json:"leave_type_name"`
	StartDate            string                 `json:"start_date"`
	EndDate              string                 `json:"end_date"`
	HalfDay              bool                   `json:"half_day"`
	HalfDayPeriod        *string                `json:"half_day_period,omitempty"`
	TotalDays            string                 `json:"total_days"`
	Reason               string                 `json:"reason"`
	HandoverTo           *string                `json:"handover_to,omitempty"`
	HandoverNotes        *string                `json:"handover_notes,omitempty"`
	ContactDuringLeave   *string                `json:"contact_during_leave,omitempty"`
	HasCertificate       bool                   `json:"has_certificate"`
	CertificateURL       *string                `json:"certificate_url,omitempty"`
	Status               string                 `json:"status"`
	SubmittedAt          *string                `json:"submitted_at,omitempty"`
	CurrentApprovalLevel int                    `json:"current_approval_level"`
	ApprovalSteps        []ApprovalStepResponse `json:"approval_steps"`
	RejectedBy           *string                `json:"rejected_by,omitempty"`
	RejectedAt           *string                `json:"rejected_at,omitempty"`
	RejectionReason      *string                `json:"rejection_reason,omitempty"`
	CancelledBy          *string                `json:"cancelled_by,omitempty"`
	CancelledAt          *string                `json:"cancelled_at,omitempty"`
	CancellationReason   *string                `json:"cancellation_reason,omitempty"`
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                   lr.ID.String(),
		RequestNumber:        lr.RequestNumber,
		EmployeeID:           lr.EmployeeID.String(),
		EmployeeName:         lr.EmployeeName,
		EmployeeNumber:       lr.EmployeeNumber,
		DepartmentName:       lr.DepartmentName,
		PositionName:         lr.PositionName,
		LeaveTypeID:          lr.LeaveTypeID.String(),
		LeaveTypeCode:        lr.LeaveTypeCode,
		LeaveTypeName:        lr.LeaveTypeName,
		StartDate:            lr.StartDate.Format("2006-01-02"),
		EndDate:              lr.EndDate.Format("2006-01-02"),
		HalfDay:              lr.HalfDay,
		HalfDayPeriod:        lr.HalfDayPeriod,
		TotalDays:            lr.TotalDays.String(),
		Reason:               lr.Reason,
		HandoverNotes:        lr.HandoverNotes,
		ContactDuringLeave:   lr.ContactDuringLeave,
		HasCertificate:       lr.HasCertificate,
		CertificateURL:       lr.CertificateURL,
		Status:               lr.Status,
		CurrentApprovalLevel: lr.CurrentApprovalLevel,
		RejectionReason:      lr.RejectionReason,
		CancellationReason:   lr.CancellationReason,
	}

	if lr.HandoverTo != nil {
		v := lr.HandoverTo.String()
		resp.HandoverTo = &v
	}
	resp.SubmittedAt = formatTimePtr(lr.SubmittedAt)
	resp.RejectedAt = formatTimePtr(lr.RejectedAt)
	resp.CancelledAt = formatTimePtr(lr.CancelledAt)
	if lr.RejectedBy != nil {
		v := lr.RejectedBy.String()
		resp.RejectedBy = &v
	}
	if lr.CancelledBy != nil {
		v := lr.CancelledBy.String()
		resp.CancelledBy = &v
	}

	resp.ApprovalSteps = make([]ApprovalStepResponse, len(lr.ApprovalSteps))
	for i, step := range lr.ApprovalSteps {
		resp.ApprovalSteps[i] = ApprovalStepResponse{
			Level:        step.Level,
			ApproverID:   step.ApproverID.String(),
			ApproverRole: step.ApproverRole,
			Status:       step.Status,
			ActionedAt:   formatTimePtr(step.ActionedAt),
			Comments:     step.Comments,
		}
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveRequestResponse {
	resp := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		resp[i] = mapToResponse(lr)
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
