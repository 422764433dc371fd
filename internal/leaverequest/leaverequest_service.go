package leaverequest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/entitlement"
	"go-leave/internal/events"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leaverequest_service.go -destination=mock/leaverequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (*CreateLeaveResponse, error)
	GetByID(ctx context.Context, actorID, role, id string) (*LeaveRequestResponse, error)
	GetAll(ctx context.Context, actorID, role string) ([]LeaveRequestResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (*LeaveRequestResponse, error)
	Submit(ctx context.Context, actorID, id string) (*LeaveRequestResponse, error)
	Approve(ctx context.Context, actorID, id string, req ApproveLeaveRequest) error
	Reject(ctx context.Context, actorID, id string, req RejectLeaveRequest) error
	Cancel(ctx context.Context, actorID, id string, req CancelLeaveRequest) error
	Delete(ctx context.Context, actorID, id string) error
}

// service drives the request state machine. Every transition that also
// moves ledger days runs the status flip and the ledger mutation in one
// database transaction, with the outbox row written alongside so the
// lifecycle event cannot outrun or lag the state it describes.
type service struct {
	db            *gorm.DB
	repo          Repository
	employeeRepo  employee.Repository
	leaveTypeRepo leavetype.Repository
	ledger        entitlement.Service
	validator     *Validator
	numbering     *Numbering
	chain         *ChainBuilder
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	leaveTypeRepo leavetype.Repository,
	ledger entitlement.Service,
	validator *Validator,
	numbering *Numbering,
	chain *ChainBuilder,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		employeeRepo:  employeeRepo,
		leaveTypeRepo: leaveTypeRepo,
		ledger:        ledger,
		validator:     validator,
		numbering:     numbering,
		chain:         chain,
		outbox:        outbox,
		logger:        l,
		now:           time.Now,
	}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (*CreateLeaveResponse, error) {
	emp, err := s.loadEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	lt, err := s.loadLeaveType(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, err
	}

	// The ledger year a request draws from is the year its start date
	// falls in, regardless of submission date.
	year := startDate.Year()

	totalDays, err := s.validator.Validate(ctx, ValidateParams{
		LeaveType:      lt,
		StartDate:      startDate,
		EndDate:        endDate,
		HalfDay:        req.HalfDay,
		HalfDayPeriod:  req.HalfDayPeriod,
		HasCertificate: req.HasCertificate,
		Remaining: func(ctx context.Context) (decimal.Decimal, error) {
			row, err := s.ledger.EnsureForYear(ctx, emp, lt, year)
			if err != nil {
				return decimal.Zero, err
			}
			return row.Remaining, nil
		},
		HasOverlap: func(ctx context.Context) (bool, error) {
			return s.repo.HasOverlappingPeriod(ctx, employeeID, startDate, endDate, nil)
		},
	})
	if err != nil {
		return nil, err
	}

	handoverTo, err := parseOptionalUUID(req.HandoverTo, "handover_to")
	if err != nil {
		return nil, err
	}

	now := s.now()
	lr := &LeaveRequest{
		ID:                   uuid.New(),
		RequestNumber:        s.numbering.Next(ctx, year),
		EmployeeID:           emp.ID,
		EmployeeName:         emp.FullName,
		EmployeeNumber:       emp.EmployeeNumber,
		DepartmentName:       emp.DepartmentName,
		PositionName:         emp.PositionName,
		LeaveTypeID:          lt.ID,
		LeaveTypeCode:        lt.Code,
		LeaveTypeName:        lt.Name,
		StartDate:            startDate,
		EndDate:              endDate,
		HalfDay:              req.HalfDay,
		HalfDayPeriod:        halfDayPeriodPtr(req.HalfDay, req.HalfDayPeriod),
		TotalDays:            totalDays,
		Reason:               req.Reason,
		HandoverTo:           handoverTo,
		HandoverNotes:        req.HandoverNotes,
		ContactDuringLeave:   req.ContactDuringLeave,
		HasCertificate:       req.HasCertificate,
		CertificateURL:       req.CertificateURL,
		CertificateFilename:  req.CertificateFilename,
		Status:               StatusDraft,
		CurrentApprovalLevel: 1,
	}

	if !req.Draft {
		steps, err := s.chain.Build(lr.ID, emp)
		if err != nil {
			return nil, err
		}
		lr.Status = StatusPending
		lr.SubmittedAt = &now
		lr.ApprovalSteps = steps
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, lr); err != nil {
			return err
		}
		if req.Draft {
			return nil
		}
		if lt.IsPaid {
			if err := s.ledger.WithTx(tx).Reserve(ctx, employeeID, lt.ID.String(), year, totalDays); err != nil {
				return err
			}
		}
		// The pre-validation overlap check ran outside this transaction, so
		// two concurrent creates can both pass it. The reserve's row lock on
		// the ledger key serializes them; the loser re-checks here, sees the
		// winner's committed request and rolls back.
		ownID := lr.ID.String()
		overlap, err := txRepo.HasOverlappingPeriod(ctx, employeeID, startDate, endDate, &ownID)
		if err != nil {
			return err
		}
		if overlap {
			return leaverequesterrors.ErrLeaveOverlap
		}
		return s.appendEvent(ctx, tx, lr, events.LeaveRequestSubmitted, employeeID, now)
	})
	if err != nil {
		s.logFailure("create leave request failed", lr.ID.String(), err)
		return nil, err
	}

	s.logger.Info("leave request created",
		zap.String("request_id", lr.ID.String()),
		zap.String("request_number", lr.RequestNumber),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", lt.Code),
		zap.String("total_days", totalDays.String()),
		zap.String("status", lr.Status),
	)
	return &CreateLeaveResponse{ID: lr.ID.String(), RequestNumber: lr.RequestNumber}, nil
}

func (s *service) GetByID(ctx context.Context, actorID, role, id string) (*LeaveRequestResponse, error) {
	lr, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(lr, actorID, role) {
		// Deliberately the same answer as a missing row.
		return nil, leaverequesterrors.ErrLeaveRequestNotFound
	}
	resp := mapToResponse(*lr)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, actorID, role string) ([]LeaveRequestResponse, error) {
	var (
		rows []LeaveRequest
		err  error
	)
	if isPrivileged(role) {
		rows, err = s.repo.FindAll(ctx)
	} else {
		rows, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (*LeaveRequestResponse, error) {
	lr, err := s.findOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if lr.Status != StatusDraft {
		return nil, leaverequesterrors.ErrInvalidTransition
	}

	emp, err := s.loadEmployee(ctx, actorID)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	lt, err := s.loadLeaveType(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, err
	}
	year := startDate.Year()

	totalDays, err := s.validator.Validate(ctx, ValidateParams{
		LeaveType:      lt,
		StartDate:      startDate,
		EndDate:        endDate,
		HalfDay:        req.HalfDay,
		HalfDayPeriod:  req.HalfDayPeriod,
		HasCertificate: req.HasCertificate,
		Remaining: func(ctx context.Context) (decimal.Decimal, error) {
			row, err := s.ledger.EnsureForYear(ctx, emp, lt, year)
			if err != nil {
				return decimal.Zero, err
			}
			return row.Remaining, nil
		},
		HasOverlap: func(ctx context.Context) (bool, error) {
			return s.repo.HasOverlappingPeriod(ctx, actorID, startDate, endDate, &id)
		},
	})
	if err != nil {
		return nil, err
	}

	handoverTo, err := parseOptionalUUID(req.HandoverTo, "handover_to")
	if err != nil {
		return nil, err
	}

	lr.LeaveTypeID = lt.ID
	lr.LeaveTypeCode = lt.Code
	lr.LeaveTypeName = lt.Name
	lr.StartDate = startDate
	lr.EndDate = endDate
	lr.HalfDay = req.HalfDay
	lr.HalfDayPeriod = halfDayPeriodPtr(req.HalfDay, req.HalfDayPeriod)
	lr.TotalDays = totalDays
	lr.Reason = req.Reason
	lr.HandoverTo = handoverTo
	lr.HandoverNotes = req.HandoverNotes
	lr.ContactDuringLeave = req.ContactDuringLeave
	lr.HasCertificate = req.HasCertificate
	lr.CertificateURL = req.CertificateURL
	lr.CertificateFilename = req.CertificateFilename

	updated, err := s.repo.UpdateDraft(ctx, lr)
	if err != nil {
		s.logFailure("update draft failed", id, err)
		return nil, err
	}
	if !updated {
		return nil, leaverequesterrors.ErrInvalidTransition
	}

	resp := mapToResponse(*lr)
	return &resp, nil
}

// Submit moves a draft to PENDING: the request is re-validated against the
// current ledger and master data, the approval chain is materialized, and
// for paid types the days are reserved. The draft keeps the request number
// issued at creation.
func (s *service) Submit(ctx context.Context, actorID, id string) (*LeaveRequestResponse, error) {
	lr, err := s.findOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if lr.Status != StatusDraft {
		return nil, leaverequesterrors.ErrInvalidTransition
	}

	emp, err := s.loadEmployee(ctx, actorID)
	if err != nil {
		return nil, err
	}
	lt, err := s.loadLeaveType(ctx, lr.LeaveTypeID.String())
	if err != nil {
		return nil, err
	}
	year := lr.StartDate.Year()

	halfDayPeriod := ""
	if lr.HalfDayPeriod != nil {
		halfDayPeriod = *lr.HalfDayPeriod
	}
	totalDays, err := s.validator.Validate(ctx, ValidateParams{
		LeaveType:      lt,
		StartDate:      lr.StartDate,
		EndDate:        lr.EndDate,
		HalfDay:        lr.HalfDay,
		HalfDayPeriod:  halfDayPeriod,
		HasCertificate: lr.HasCertificate,
		Remaining: func(ctx context.Context) (decimal.Decimal, error) {
			row, err := s.ledger.EnsureForYear(ctx, emp, lt, year)
			if err != nil {
				return decimal.Zero, err
			}
			return row.Remaining, nil
		},
		HasOverlap: func(ctx context.Context) (bool, error) {
			return s.repo.HasOverlappingPeriod(ctx, actorID, lr.StartDate, lr.EndDate, &id)
		},
	})
	if err != nil {
		return nil, err
	}

	steps, err := s.chain.Build(lr.ID, emp)
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		ok, err := txRepo.MarkSubmitted(ctx, id, totalDays, now)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}
		if err := txRepo.CreateSteps(ctx, steps); err != nil {
			return err
		}
		if lt.IsPaid {
			if err := s.ledger.WithTx(tx).Reserve(ctx, actorID, lt.ID.String(), year, totalDays); err != nil {
				return err
			}
		}
		// Same in-transaction re-check as on create: the reserve serializes
		// racing submitters on the ledger key.
		overlap, err := txRepo.HasOverlappingPeriod(ctx, actorID, lr.StartDate, lr.EndDate, &id)
		if err != nil {
			return err
		}
		if overlap {
			return leaverequesterrors.ErrLeaveOverlap
		}

		lr.Status = StatusPending
		lr.TotalDays = totalDays
		return s.appendEvent(ctx, tx, lr, events.LeaveRequestSubmitted, actorID, now)
	})
	if err != nil {
		s.logFailure("submit leave request failed", id, err)
		return nil, err
	}

	s.logger.Info("leave request submitted",
		zap.String("request_id", id),
		zap.String("request_number", lr.RequestNumber),
		zap.Int("approval_levels", len(steps)),
	)

	fresh, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(*fresh)
	return &resp, nil
}

func (s *service) Approve(ctx context.Context, actorID, id string, req ApproveLeaveRequest) error {
	lr, step, lt, err := s.loadPendingForAction(ctx, actorID, id)
	if err != nil {
		return err
	}

	finalLevel := step.Level == len(lr.ApprovalSteps)
	year := lr.StartDate.Year()
	now := s.now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		ok, err := txRepo.MarkStepApproved(ctx, step.ID.String(), req.Comments, now)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}

		if !finalLevel {
			ok, err = txRepo.AdvanceApprovalLevel(ctx, id, step.Level)
			if err != nil {
				return err
			}
			if !ok {
				return leaverequesterrors.ErrInvalidTransition
			}
			return nil
		}

		ok, err = txRepo.MarkApproved(ctx, id, step.Level)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}
		if lt.IsPaid {
			if err := s.ledger.WithTx(tx).CommitUsed(ctx, lr.EmployeeID.String(), lt.ID.String(), year, lr.TotalDays); err != nil {
				return err
			}
		}

		lr.Status = StatusApproved
		return s.appendEvent(ctx, tx, lr, events.LeaveRequestApproved, actorID, now)
	})
	if err != nil {
		s.logFailure("approve leave request failed", id, err)
		return err
	}

	if finalLevel {
		s.logger.Info("leave request approved",
			zap.String("request_id", id),
			zap.String("request_number", lr.RequestNumber),
			zap.String("approver_id", actorID),
		)
	} else {
		s.logger.Info("approval level advanced",
			zap.String("request_id", id),
			zap.Int("from_level", step.Level),
			zap.String("approver_id", actorID),
		)
	}
	return nil
}

func (s *service) Reject(ctx context.Context, actorID, id string, req RejectLeaveRequest) error {
	lr, step, lt, err := s.loadPendingForAction(ctx, actorID, id)
	if err != nil {
		return err
	}

	year := lr.StartDate.Year()
	now := s.now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		ok, err := txRepo.MarkStepRejected(ctx, step.ID.String(), req.Reason, now)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}

		ok, err = txRepo.MarkRejected(ctx, id, step.Level, actorID, req.Reason, now)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}
		if lt.IsPaid {
			if err := s.ledger.WithTx(tx).Release(ctx, lr.EmployeeID.String(), lt.ID.String(), year, lr.TotalDays); err != nil {
				return err
			}
		}

		lr.Status = StatusRejected
		return s.appendEvent(ctx, tx, lr, events.LeaveRequestRejected, actorID, now)
	})
	if err != nil {
		s.logFailure("reject leave request failed", id, err)
		return err
	}

	s.logger.Info("leave request rejected",
		zap.String("request_id", id),
		zap.String("request_number", lr.RequestNumber),
		zap.Int("at_level", step.Level),
		zap.String("approver_id", actorID),
	)
	return nil
}

// Cancel is owner-only. A pending cancellation releases the reservation; an
// approved cancellation returns the days from used. The ledger movement
// depends on the status at the moment the guarded update wins, so both run
// in the same transaction.
func (s *service) Cancel(ctx context.Context, actorID, id string, req CancelLeaveRequest) error {
	lr, err := s.findOwned(ctx, actorID, id)
	if err != nil {
		return err
	}
	if lr.Status != StatusPending && lr.Status != StatusApproved {
		return leaverequesterrors.ErrInvalidTransition
	}

	lt, err := s.loadLeaveType(ctx, lr.LeaveTypeID.String())
	if err != nil {
		return err
	}
	fromStatus := lr.Status
	year := lr.StartDate.Year()
	now := s.now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.WithTx(tx).MarkCancelled(ctx, id, fromStatus, actorID, req.Reason, now)
		if err != nil {
			return err
		}
		if !ok {
			return leaverequesterrors.ErrInvalidTransition
		}

		if lt.IsPaid {
			txLedger := s.ledger.WithTx(tx)
			if fromStatus == StatusPending {
				err = txLedger.Release(ctx, lr.EmployeeID.String(), lt.ID.String(), year, lr.TotalDays)
			} else {
				err = txLedger.ReturnFromUsed(ctx, lr.EmployeeID.String(), lt.ID.String(), year, lr.TotalDays)
			}
			if err != nil {
				return err
			}
		}

		lr.Status = StatusCancelled
		return s.appendEvent(ctx, tx, lr, events.LeaveRequestCancelled, actorID, now)
	})
	if err != nil {
		s.logFailure("cancel leave request failed", id, err)
		return err
	}

	s.logger.Info("leave request cancelled",
		zap.String("request_id", id),
		zap.String("request_number", lr.RequestNumber),
		zap.String("from_status", fromStatus),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	lr, err := s.findOwned(ctx, actorID, id)
	if err != nil {
		return err
	}
	if lr.Status != StatusDraft {
		return leaverequesterrors.ErrInvalidTransition
	}

	deleted, err := s.repo.DeleteDraft(ctx, id)
	if err != nil {
		s.logFailure("delete draft failed", id, err)
		return err
	}
	if !deleted {
		return leaverequesterrors.ErrInvalidTransition
	}

	s.logger.Info("draft leave request deleted",
		zap.String("request_id", id),
		zap.String("request_number", lr.RequestNumber),
	)
	return nil
}

// loadPendingForAction runs the shared approve/reject preamble: the request
// must be pending, a step must exist at the current level, and the actor
// must be that step's approver.
func (s *service) loadPendingForAction(ctx context.Context, actorID, id string) (*LeaveRequest, *ApprovalStep, *leavetype.LeaveType, error) {
	lr, err := s.findByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if lr.Status != StatusPending {
		return nil, nil, nil, leaverequesterrors.ErrInvalidTransition
	}

	step := stepAtLevel(lr, lr.CurrentApprovalLevel)
	if step == nil {
		s.logger.Error("no approval step at current level",
			zap.String("request_id", id),
			zap.Int("current_level", lr.CurrentApprovalLevel),
		)
		return nil, nil, nil, leaverequesterrors.ErrStepNotFound
	}
	if step.ApproverID.String() != actorID {
		return nil, nil, nil, leaverequesterrors.ErrNotCurrentApprover
	}

	lt, err := s.loadLeaveType(ctx, lr.LeaveTypeID.String())
	if err != nil {
		return nil, nil, nil, err
	}
	return lr, step, lt, nil
}

func (s *service) findByID(ctx context.Context, id string) (*LeaveRequest, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaverequesterrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("find leave request failed", zap.String("request_id", id), zap.Error(err))
		return nil, err
	}
	return lr, nil
}

func (s *service) findOwned(ctx context.Context, actorID, id string) (*LeaveRequest, error) {
	lr, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lr.EmployeeID.String() != actorID {
		return nil, leaverequesterrors.ErrInvalidActor
	}
	return lr, nil
}

func (s *service) loadEmployee(ctx context.Context, id string) (*employee.Employee, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		s.logger.Error("find employee failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	return emp, nil
}

func (s *service) loadLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	lt, err := s.leaveTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaverequesterrors.ErrLeaveTypeInactive
		}
		s.logger.Error("find leave type failed", zap.String("leave_type_id", id), zap.Error(err))
		return nil, err
	}
	return lt, nil
}

func (s *service) appendEvent(ctx context.Context, tx *gorm.DB, lr *LeaveRequest, eventType, actorID string, at time.Time) error {
	payload, err := json.Marshal(events.LeaveRequestLifecycleEvent{
		EventType:     eventType,
		RequestID:     lr.ID.String(),
		RequestNumber: lr.RequestNumber,
		EmployeeID:    lr.EmployeeID.String(),
		LeaveTypeCode: lr.LeaveTypeCode,
		StartDate:     lr.StartDate.Format(dateLayout),
		EndDate:       lr.EndDate.Format(dateLayout),
		TotalDays:     lr.TotalDays.String(),
		Status:        lr.Status,
		ActorID:       actorID,
		OccurredAt:    at,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, &kafka.OutboxEvent{
		ID:            uuid.New(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   lr.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveRequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) logFailure(msg, requestID string, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		// Business outcomes are the caller's problem, not an incident.
		s.logger.Debug(msg,
			zap.String("request_id", requestID),
			zap.String("code", appErr.Code),
		)
		return
	}
	s.logger.Error(msg, zap.String("request_id", requestID), zap.Error(err))
}

func stepAtLevel(lr *LeaveRequest, level int) *ApprovalStep {
	for i := range lr.ApprovalSteps {
		if lr.ApprovalSteps[i].Level == level {
			return &lr.ApprovalSteps[i]
		}
	}
	return nil
}

func canView(lr *LeaveRequest, actorID, role string) bool {
	if isPrivileged(role) || lr.EmployeeID.String() == actorID {
		return true
	}
	for _, step := range lr.ApprovalSteps {
		if step.ApproverID.String() == actorID {
			return true
		}
	}
	return false
}

func isPrivileged(role string) bool {
	return role == "hr" || role == "admin"
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	return startDate, endDate, nil
}

func parseOptionalUUID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &id, nil
}

func halfDayPeriodPtr(halfDay bool, period string) *string {
	if !halfDay || period == "" {
		return nil
	}
	return &period
}
