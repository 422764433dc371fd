package leaverequest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	StepPending  = "PENDING"
	StepApproved = "APPROVED"
	StepRejected = "REJECTED"
)

const (
	HalfDayMorning   = "MORNING"
	HalfDayAfternoon = "AFTERNOON"
)

// LeaveRequest snapshots employee and leave-type display fields at
// submission time so historical records stay readable after master-data
// changes. The snapshots are plain copies, never re-derived by join.
type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestNumber string    `gorm:"type:varchar(30);uniqueIndex;not null"`

	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	EmployeeName   string    `gorm:"type:varchar(120);not null"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null"`
	DepartmentName string    `gorm:"type:varchar(80)"`
	PositionName   string    `gorm:"type:varchar(80)"`

	LeaveTypeID   uuid.UUID `gorm:"type:uuid;not null"`
	LeaveTypeCode string    `gorm:"type:varchar(20);not null"`
	LeaveTypeName string    `gorm:"type:varchar(80);not null"`

	StartDate     time.Time       `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate       time.Time       `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	HalfDay       bool            `gorm:"not null;default:false"`
	HalfDayPeriod *string         `gorm:"type:varchar(10)"`
	TotalDays     decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	Reason             string  `gorm:"type:text;not null"`
	HandoverTo         *uuid.UUID
	HandoverNotes      *string `gorm:"type:text"`
	ContactDuringLeave *string `gorm:"type:varchar(120)"`

	HasCertificate      bool    `gorm:"not null;default:false"`
	CertificateURL      *string `gorm:"type:text"`
	CertificateFilename *string `gorm:"type:varchar(255)"`

	Status               string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	SubmittedAt          *time.Time
	CurrentApprovalLevel int            `gorm:"type:int;not null;default:1"`
	ApprovalSteps        []ApprovalStep `gorm:"foreignKey:LeaveRequestID"`

	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	CancelledAt        *time.Time
	CancellationReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApprovalStep is one link in the sequential approval chain. Levels are
// contiguous from 1; only the step at the request's current level may
// leave PENDING, and nothing after a rejected step is ever touched.
type ApprovalStep struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_approval_steps_level"`
	Level          int       `gorm:"type:int;not null;uniqueIndex:idx_approval_steps_level"`
	ApproverID     uuid.UUID `gorm:"type:uuid;not null"`
	ApproverRole   string    `gorm:"type:varchar(30);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ActionedAt     *time.Time
	Comments       *string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
