package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/employee"
	entitlementerrors "go-leave/internal/entitlement/errors"
	"go-leave/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=entitlement_service.go -destination=mock/entitlement_service_mock.go -package=mock
type Service interface {
	// WithTx returns a service whose ledger mutations run inside the given
	// transaction. State-machine callers use it so a request write and its
	// ledger mutation land atomically.
	WithTx(tx *gorm.DB) Service

	ListByEmployee(ctx context.Context, employeeID string, year *int) ([]EntitlementResponse, error)

	// EnsureForYear lazily creates the ledger row for (employee, leave type,
	// year) using the leave type's accrual policy: tenure-scaled when the
	// accrual type is TENURE, the flat default otherwise, pro-rated for an
	// employee's first partial year.
	EnsureForYear(ctx context.Context, emp *employee.Employee, lt *leavetype.LeaveType, year int) (*LeaveEntitlement, error)

	Reserve(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	CommitUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	Release(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	ReturnFromUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error

	CarryOver(ctx context.Context, employeeID string, lt *leavetype.LeaveType, fromYear int) error
	RunYearEndCarryOver(ctx context.Context, fromYear int) (int, error)
}

type service struct {
	repo          Repository
	leaveTypeRepo leavetype.Repository
	tiers         []EntitlementTier
	sf            *singleflight.Group
	logger        *zap.Logger
}

func NewService(repo Repository, leaveTypeRepo leavetype.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("entitlement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("entitlement.service")
	}
	return &service{
		repo:          repo,
		leaveTypeRepo: leaveTypeRepo,
		tiers:         DefaultTiers,
		sf:            &singleflight.Group{},
		logger:        l,
	}
}

func (s *service) WithTx(tx *gorm.DB) Service {
	clone := *s
	clone.repo = s.repo.WithTx(tx)
	return &clone
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, year *int) ([]EntitlementResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("list entitlements failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]EntitlementResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) EnsureForYear(ctx context.Context, emp *employee.Employee, lt *leavetype.LeaveType, year int) (*LeaveEntitlement, error) {
	key := fmt.Sprintf("%s:%s:%d", emp.ID, lt.ID, year)

	// singleflight collapses concurrent lazy creates for the same ledger key;
	// the unique index is the backstop for racing across processes.
	v, err, _ := s.sf.Do(key, func() (any, error) {
		existing, err := s.repo.FindByKey(ctx, emp.ID.String(), lt.ID.String(), year)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		row := s.buildRow(emp, lt, year)
		if err := s.repo.Create(ctx, row); err != nil {
			// Lost the cross-process race: someone else created it first.
			if fetched, ferr := s.repo.FindByKey(ctx, emp.ID.String(), lt.ID.String(), year); ferr == nil {
				return fetched, nil
			}
			return nil, err
		}

		s.logger.Info("entitlement row created",
			zap.String("employee_id", emp.ID.String()),
			zap.String("leave_type", lt.Code),
			zap.Int("year", year),
			zap.String("accrued", row.Accrued.String()),
			zap.Bool("based_on_tenure", row.BasedOnTenure),
		)
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*LeaveEntitlement), nil
}

func (s *service) buildRow(emp *employee.Employee, lt *leavetype.LeaveType, year int) *LeaveEntitlement {
	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	tenure := TenureYears(emp.HireDate, endOfYear)

	accrued := lt.DefaultEntitlement
	basedOnTenure := lt.AccrualType == leavetype.AccrualTenure
	if basedOnTenure {
		accrued = DefaultEntitlementForTenure(s.tiers, tenure)
	}
	if emp.HireDate.Year() == year {
		accrued = ProRata(emp.HireDate, accrued)
	}

	return &LeaveEntitlement{
		ID:               uuid.New(),
		EmployeeID:       emp.ID,
		LeaveTypeID:      lt.ID,
		Year:             year,
		Accrued:          accrued,
		CarriedOver:      decimal.Zero,
		TotalEntitlement: accrued,
		Used:             decimal.Zero,
		Pending:          decimal.Zero,
		Remaining:        accrued,
		BasedOnTenure:    basedOnTenure,
		TenureYears:      tenure,
	}
}

func (s *service) Reserve(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if days.LessThanOrEqual(decimal.Zero) {
		return entitlementerrors.ErrInvalidDays
	}

	err := s.repo.Reserve(ctx, employeeID, leaveTypeID, year, days)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entitlementerrors.ErrEntitlementNotFound
	case errors.Is(err, errInsufficient):
		s.logger.Warn("reserve rejected, insufficient balance",
			zap.String("employee_id", employeeID),
			zap.String("leave_type_id", leaveTypeID),
			zap.Int("year", year),
			zap.String("days", days.String()),
		)
		return entitlementerrors.ErrInsufficientBalance
	default:
		s.logger.Error("reserve failed", zap.Error(err))
		return err
	}
}

func (s *service) CommitUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if days.LessThanOrEqual(decimal.Zero) {
		return entitlementerrors.ErrInvalidDays
	}

	clamped, err := s.repo.CommitUsed(ctx, employeeID, leaveTypeID, year, days)
	if err != nil {
		return s.mapMutationError("commit used", employeeID, leaveTypeID, year, err)
	}
	if clamped {
		s.warnDrift("commit used", employeeID, leaveTypeID, year, days)
	}
	return nil
}

func (s *service) Release(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if days.LessThanOrEqual(decimal.Zero) {
		return entitlementerrors.ErrInvalidDays
	}

	clamped, err := s.repo.Release(ctx, employeeID, leaveTypeID, year, days)
	if err != nil {
		return s.mapMutationError("release", employeeID, leaveTypeID, year, err)
	}
	if clamped {
		s.warnDrift("release", employeeID, leaveTypeID, year, days)
	}
	return nil
}

func (s *service) ReturnFromUsed(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if days.LessThanOrEqual(decimal.Zero) {
		return entitlementerrors.ErrInvalidDays
	}

	clamped, err := s.repo.ReturnFromUsed(ctx, employeeID, leaveTypeID, year, days)
	if err != nil {
		return s.mapMutationError("return from used", employeeID, leaveTypeID, year, err)
	}
	if clamped {
		s.warnDrift("return from used", employeeID, leaveTypeID, year, days)
	}
	return nil
}

func (s *service) CarryOver(ctx context.Context, employeeID string, lt *leavetype.LeaveType, fromYear int) error {
	if !lt.CarryOverAllowed {
		return entitlementerrors.ErrCarryOverNotAllowed
	}

	current, err := s.repo.FindByKey(ctx, employeeID, lt.ID.String(), fromYear)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entitlementerrors.ErrEntitlementNotFound
		}
		return err
	}

	carried := decimal.Min(current.Remaining, lt.MaxCarryOverDays)
	if carried.IsNegative() {
		carried = decimal.Zero
	}

	nextYear := fromYear + 1
	accrued := lt.DefaultEntitlement
	if current.BasedOnTenure {
		accrued = DefaultEntitlementForTenure(s.tiers, current.TenureYears+1)
	}

	next := &LeaveEntitlement{
		ID:               uuid.New(),
		EmployeeID:       current.EmployeeID,
		LeaveTypeID:      current.LeaveTypeID,
		Year:             nextYear,
		Accrued:          accrued,
		CarriedOver:      carried,
		TotalEntitlement: accrued.Add(carried),
		Remaining:        accrued.Add(carried),
		BasedOnTenure:    current.BasedOnTenure,
		TenureYears:      current.TenureYears + 1,
	}

	if err := s.repo.ApplyCarryOver(ctx, next); err != nil {
		s.logger.Error("apply carry over failed",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", lt.Code),
			zap.Int("from_year", fromYear),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("carry over applied",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", lt.Code),
		zap.Int("from_year", fromYear),
		zap.String("carried", carried.String()),
	)
	return nil
}

// RunYearEndCarryOver walks every ledger row of fromYear and applies the
// carry-over rule of its leave type. Safe to re-run: applying the same
// carry-over twice writes the same carried-over value.
func (s *service) RunYearEndCarryOver(ctx context.Context, fromYear int) (int, error) {
	rows, err := s.repo.FindAllByYear(ctx, fromYear)
	if err != nil {
		return 0, err
	}

	typeCache := make(map[string]*leavetype.LeaveType)
	applied := 0
	for _, row := range rows {
		ltID := row.LeaveTypeID.String()
		lt, ok := typeCache[ltID]
		if !ok {
			lt, err = s.leaveTypeRepo.FindByID(ctx, ltID)
			if err != nil {
				s.logger.Error("carry over skipped, leave type lookup failed",
					zap.String("leave_type_id", ltID),
					zap.Error(err),
				)
				continue
			}
			typeCache[ltID] = lt
		}

		if !lt.CarryOverAllowed {
			continue
		}
		if err := s.CarryOver(ctx, row.EmployeeID.String(), lt, fromYear); err != nil {
			s.logger.Error("carry over failed for ledger row",
				zap.String("employee_id", row.EmployeeID.String()),
				zap.String("leave_type", lt.Code),
				zap.Error(err),
			)
			continue
		}
		applied++
	}

	return applied, nil
}

func (s *service) mapMutationError(op, employeeID, leaveTypeID string, year int, err error) error {
	if errors.Is(err, errRowMissing) || errors.Is(err, gorm.ErrRecordNotFound) {
		return entitlementerrors.ErrEntitlementNotFound
	}
	s.logger.Error(op+" failed",
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", leaveTypeID),
		zap.Int("year", year),
		zap.Error(err),
	)
	return err
}

func (s *service) warnDrift(op, employeeID, leaveTypeID string, year int, days decimal.Decimal) {
	s.logger.Warn("ledger counters drifted, mutation clamped at zero",
		zap.String("operation", op),
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", leaveTypeID),
		zap.Int("year", year),
		zap.String("days", days.String()),
	)
}
