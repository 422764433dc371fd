package events

import "time"

const LeaveRequestLifecycleTopic = "hr.leave.request.lifecycle.v1"

const (
	LeaveRequestSubmitted = "leave_request.submitted"
	LeaveRequestApproved  = "leave_request.approved"
	LeaveRequestRejected  = "leave_request.rejected"
	LeaveRequestCancelled = "leave_request.cancelled"
)

type LeaveRequestLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	EmployeeID    string    `json:"employee_id"`
	LeaveTypeCode string    `json:"leave_type_code"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     string    `json:"total_days"`
	Status        string    `json:"status"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
