package entitlement

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=entitlement_repo.go -destination=mock/entitlement_repo_mock.go -package=mock
type Repository interface {
	// WithTx returns a repository bound to the given transaction so ledger
	// mutations can commit or roll back together with the caller's writes.
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, e *LeaveEntitlement) error
	FindByKey(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveEntitlement, error)
	FindAllByEmployee(ctx context.Context, employeeID string, year *int) ([]LeaveEntitlement, error)
	FindAllByYear(ctx context.Context, year int) ([]LeaveEntitlement, error)

	// Reserve moves days from remaining into pending. It never clamps:
	// the conditional update fails when remaining < days, which is how
	// two racing reservations resolve to exactly one winner.
	Reserve(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error

	// CommitUsed, Release and ReturnFromUsed report clamped=true when the
	// counters had drifted and the mutation was clamped at zero instead
	// of going negative. Callers log that; it is not an error.
	CommitUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (clamped bool, err error)
	Release(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (clamped bool, err error)
	ReturnFromUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (clamped bool, err error)

	ApplyCarryOver(ctx context.Context, next *LeaveEntitlement) error
}

var errRowMissing = errors.New("entitlement row missing")

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *LeaveEntitlement) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByKey(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveEntitlement, error) {
	var e LeaveEntitlement
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string, year *int) ([]LeaveEntitlement, error) {
	db := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)
	if year != nil {
		db = db.Where("year = ?", *year)
	}

	var rows []LeaveEntitlement
	err := db.Order("year DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByYear(ctx context.Context, year int) ([]LeaveEntitlement, error) {
	var rows []LeaveEntitlement
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Reserve(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Where("remaining >= ?", days).
		Updates(map[string]any{
			"pending":    gorm.Expr("pending + ?", days),
			"remaining":  gorm.Expr("remaining - ?", days),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.classifyMiss(ctx, employeeID, leaveTypeID, year)
	}
	return nil
}

func (r *repository) CommitUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Where("pending >= ?", days).
		Updates(map[string]any{
			"pending":    gorm.Expr("pending - ?", days),
			"used":       gorm.Expr("used + ?", days),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	// Drift: commit whatever is still pending, keep the invariant intact.
	// SET expressions all read the pre-update row, so this is one atomic step.
	res = r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Updates(map[string]any{
			"used":       gorm.Expr("used + pending"),
			"pending":    gorm.Expr("0"),
			"remaining":  gorm.Expr("total_entitlement - used - pending"),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, errRowMissing
	}
	return true, nil
}

func (r *repository) Release(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Where("pending >= ?", days).
		Updates(map[string]any{
			"pending":    gorm.Expr("pending - ?", days),
			"remaining":  gorm.Expr("remaining + ?", days),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	res = r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Updates(map[string]any{
			"pending":    gorm.Expr("0"),
			"remaining":  gorm.Expr("total_entitlement - used"),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, errRowMissing
	}
	return true, nil
}

func (r *repository) ReturnFromUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Where("used >= ?", days).
		Updates(map[string]any{
			"used":       gorm.Expr("used - ?", days),
			"remaining":  gorm.Expr("remaining + ?", days),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	res = r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Updates(map[string]any{
			"used":       gorm.Expr("0"),
			"remaining":  gorm.Expr("total_entitlement - pending"),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, errRowMissing
	}
	return true, nil
}

// ApplyCarryOver creates or refreshes the next-year row. On conflict only
// the carried-over slice is replaced; counters already accumulated on the
// target year stay untouched.
func (r *repository) ApplyCarryOver(ctx context.Context, next *LeaveEntitlement) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO leave_entitlements (
			id, employee_id, leave_type_id, year,
			accrued, carried_over, total_entitlement, used, pending, remaining,
			based_on_tenure, tenure_years, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?, now(), now())
		ON CONFLICT (employee_id, leave_type_id, year) DO UPDATE
		SET carried_over = EXCLUDED.carried_over,
			total_entitlement = leave_entitlements.accrued + EXCLUDED.carried_over,
			remaining = leave_entitlements.accrued + EXCLUDED.carried_over
				- leave_entitlements.used - leave_entitlements.pending,
			updated_at = now()
	`,
		next.ID, next.EmployeeID, next.LeaveTypeID, next.Year,
		next.Accrued, next.CarriedOver, next.TotalEntitlement, next.Remaining,
		next.BasedOnTenure, next.TenureYears,
	).Error
}

func (r *repository) classifyMiss(ctx context.Context, employeeID, leaveTypeID string, year int) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&LeaveEntitlement{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return errInsufficient
}

var errInsufficient = errors.New("insufficient remaining balance")
