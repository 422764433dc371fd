package leaverequest

import (
	"go-leave/internal/employee"
	leaverequesterrors "go-leave/internal/leaverequest/errors"

	"github.com/google/uuid"
)

const (
	RoleManager = "MANAGER"
	RoleHR      = "HR"
)

// ChainBuilder assembles the sequential approval chain for a request:
// the employee's direct manager first, then the configured HR approver.
// The chain is an ordered list with a level cursor, not a workflow graph.
type ChainBuilder struct {
	hrApproverID uuid.UUID
}

func NewChainBuilder(hrApproverID uuid.UUID) *ChainBuilder {
	return &ChainBuilder{hrApproverID: hrApproverID}
}

func (b *ChainBuilder) Build(requestID uuid.UUID, emp *employee.Employee) ([]ApprovalStep, error) {
	var steps []ApprovalStep
	level := 1

	if emp.ManagerID != nil && *emp.ManagerID != b.hrApproverID {
		steps = append(steps, ApprovalStep{
			ID:             uuid.New(),
			LeaveRequestID: requestID,
			Level:          level,
			ApproverID:     *emp.ManagerID,
			ApproverRole:   RoleManager,
			Status:         StepPending,
		})
		level++
	}

	if b.hrApproverID != uuid.Nil {
		steps = append(steps, ApprovalStep{
			ID:             uuid.New(),
			LeaveRequestID: requestID,
			Level:          level,
			ApproverID:     b.hrApproverID,
			ApproverRole:   RoleHR,
			Status:         StepPending,
		})
	}

	if len(steps) == 0 {
		return nil, leaverequesterrors.ErrNoApproverAvailable
	}
	return steps, nil
}
