package entitlement

type EntitlementResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	LeaveTypeID      string `json:"leave_type_id"`
	Year             int    `json:"year"`
	Accrued          string `json:"accrued"`
	CarriedOver      string `json:"carried_over"`
	TotalEntitlement string `json:"total_entitlement"`
	Used             string `json:"used"`
	Pending          string `json:"pending"`
	Remaining        string `json:"remaining"`
	BasedOnTenure    bool   `json:"based_on_tenure"`
	TenureYears      int    `json:"tenure_years"`
}

type CarryOverRequest struct {
	FromYear int `json:"from_year" binding:"required,min=2000"`
}

type CarryOverResponse struct {
	FromYear int `json:"from_year"`
	ToYear   int `json:"to_year"`
	Applied  int `json:"applied"`
}

func mapToResponse(e LeaveEntitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:               e.ID.String(),
		EmployeeID:       e.EmployeeID.String(),
		LeaveTypeID:      e.LeaveTypeID.String(),
		Year:             e.Year,
		Accrued:          e.Accrued.String(),
		CarriedOver:      e.CarriedOver.String(),
		TotalEntitlement: e.TotalEntitlement.String(),
		Used:             e.Used.String(),
		Pending:          e.Pending.String(),
		Remaining:        e.Remaining.String(),
		BasedOnTenure:    e.BasedOnTenure,
		TenureYears:      e.TenureYears,
	}
}
