package leaverequest

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leaverequest_repo.go -destination=mock/leaverequest_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateDraft(ctx context.Context, lr *LeaveRequest) (updated bool, err error)
	DeleteDraft(ctx context.Context, id string) (deleted bool, err error)

	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)

	// The conditional mutations below return false when the guarded row was
	// not in the expected state, which is how two racing actors resolve to
	// exactly one winner.
	MarkSubmitted(ctx context.Context, id string, totalDays decimal.Decimal, at time.Time) (bool, error)
	CreateSteps(ctx context.Context, steps []ApprovalStep) error
	MarkStepApproved(ctx context.Context, stepID string, comments *string, at time.Time) (bool, error)
	MarkStepRejected(ctx context.Context, stepID string, reason string, at time.Time) (bool, error)
	AdvanceApprovalLevel(ctx context.Context, id string, fromLevel int) (bool, error)
	MarkApproved(ctx context.Context, id string, atLevel int) (bool, error)
	MarkRejected(ctx context.Context, id string, atLevel int, rejectedBy, reason string, at time.Time) (bool, error)
	MarkCancelled(ctx context.Context, id, fromStatus, cancelledBy, reason string, at time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("ApprovalSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		First(&lr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("ApprovalSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("ApprovalSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("level ASC")
		}).
		Order("start_date DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateDraft saves the editable fields, guarded on the row still being a
// draft so a concurrent submit cannot be overwritten.
func (r *repository) UpdateDraft(ctx context.Context, lr *LeaveRequest) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", lr.ID, StatusDraft).
		Updates(map[string]any{
			"leave_type_id":        lr.LeaveTypeID,
			"leave_type_code":      lr.LeaveTypeCode,
			"leave_type_name":      lr.LeaveTypeName,
			"start_date":           lr.StartDate,
			"end_date":             lr.EndDate,
			"half_day":             lr.HalfDay,
			"half_day_period":      lr.HalfDayPeriod,
			"total_days":           lr.TotalDays,
			"reason":               lr.Reason,
			"handover_to":          lr.HandoverTo,
			"handover_notes":       lr.HandoverNotes,
			"contact_during_leave": lr.ContactDuringLeave,
			"has_certificate":      lr.HasCertificate,
			"certificate_url":      lr.CertificateURL,
			"certificate_filename": lr.CertificateFilename,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) DeleteDraft(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusDraft).
		Delete(&LeaveRequest{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) MarkSubmitted(ctx context.Context, id string, totalDays decimal.Decimal, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, StatusDraft).
		Updates(map[string]any{
			"status":                 StatusPending,
			"total_days":             totalDays,
			"submitted_at":           at,
			"current_approval_level": 1,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) CreateSteps(ctx context.Context, steps []ApprovalStep) error {
	return r.db.WithContext(ctx).Create(&steps).Error
}

func (r *repository) MarkStepApproved(ctx context.Context, stepID string, comments *string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ApprovalStep{}).
		Where("id = ? AND status = ?", stepID, StepPending).
		Updates(map[string]any{
			"status":      StepApproved,
			"actioned_at": at,
			"comments":    comments,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkStepRejected(ctx context.Context, stepID string, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ApprovalStep{}).
		Where("id = ? AND status = ?", stepID, StepPending).
		Updates(map[string]any{
			"status":      StepRejected,
			"actioned_at": at,
			"comments":    reason,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) AdvanceApprovalLevel(ctx context.Context, id string, fromLevel int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ? AND current_approval_level = ?", id, StatusPending, fromLevel).
		Update("current_approval_level", fromLevel+1)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkApproved(ctx context.Context, id string, atLevel int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ? AND current_approval_level = ?", id, StatusPending, atLevel).
		Update("status", StatusApproved)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkRejected(ctx context.Context, id string, atLevel int, rejectedBy, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ? AND current_approval_level = ?", id, StatusPending, atLevel).
		Updates(map[string]any{
			"status":           StatusRejected,
			"rejected_by":      rejectedBy,
			"rejected_at":      at,
			"rejection_reason": reason,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkCancelled(ctx context.Context, id, fromStatus, cancelledBy, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]any{
			"status":              StatusCancelled,
			"cancelled_by":        cancelledBy,
			"cancelled_at":        at,
			"cancellation_reason": reason,
		})
	return res.RowsAffected > 0, res.Error
}
