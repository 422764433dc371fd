package leaverequest

import (
	"testing"

	"go-leave/internal/employee"
	leaverequesterrors "go-leave/internal/leaverequest/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChainBuilder_ManagerThenHR(t *testing.T) {
	managerID := uuid.New()
	hrID := uuid.New()
	b := NewChainBuilder(hrID)

	steps, err := b.Build(uuid.New(), &employee.Employee{ID: uuid.New(), ManagerID: &managerID})
	assert.NoError(t, err)
	assert.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].Level)
	assert.Equal(t, managerID, steps[0].ApproverID)
	assert.Equal(t, RoleManager, steps[0].ApproverRole)
	assert.Equal(t, 2, steps[1].Level)
	assert.Equal(t, hrID, steps[1].ApproverID)
	assert.Equal(t, RoleHR, steps[1].ApproverRole)
}

func TestChainBuilder_ManagerIsHR(t *testing.T) {
	hrID := uuid.New()
	b := NewChainBuilder(hrID)

	// A single person never gets two consecutive levels.
	steps, err := b.Build(uuid.New(), &employee.Employee{ID: uuid.New(), ManagerID: &hrID})
	assert.NoError(t, err)
	assert.Len(t, steps, 1)
	assert.Equal(t, hrID, steps[0].ApproverID)
	assert.Equal(t, RoleHR, steps[0].ApproverRole)
}

func TestChainBuilder_NoManagerNoHR(t *testing.T) {
	b := NewChainBuilder(uuid.Nil)

	_, err := b.Build(uuid.New(), &employee.Employee{ID: uuid.New()})
	assert.ErrorIs(t, err, leaverequesterrors.ErrNoApproverAvailable)
}
