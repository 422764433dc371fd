package entitlement

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return NewRepository(gormDB), mock
}

const (
	testEmployeeID  = "5f0c5a9e-7a61-4a51-b7e0-1e0cf9a3a001"
	testLeaveTypeID = "5f0c5a9e-7a61-4a51-b7e0-1e0cf9a3a002"
)

func TestRepository_Reserve_GuardsRemaining(t *testing.T) {
	repo, mock := newMockRepo(t)
	days := decimal.NewFromInt(3)

	// The whole point of the SQL: remaining must cover the days or no row moves.
	mock.ExpectExec(`UPDATE "leave_entitlements" SET "pending"=pending \+ \$1,"remaining"=remaining - \$2,"updated_at"=now\(\) WHERE .*remaining >= \$6`).
		WithArgs(days, days, testEmployeeID, testLeaveTypeID, 2026, days).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reserve(context.Background(), testEmployeeID, testLeaveTypeID, 2026, days)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reserve_InsufficientBalance(t *testing.T) {
	repo, mock := newMockRepo(t)
	days := decimal.NewFromInt(3)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET .*remaining >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "leave_entitlements" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Reserve(context.Background(), testEmployeeID, testLeaveTypeID, 2026, days)
	assert.ErrorIs(t, err, errInsufficient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reserve_RowMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET .*remaining >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "leave_entitlements" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.Reserve(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(3))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CommitUsed_Guarded(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET "pending"=pending - \$1,"updated_at"=now\(\),"used"=used \+ \$2 WHERE .*pending >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	clamped, err := repo.CommitUsed(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.False(t, clamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CommitUsed_ClampsOnDrift(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET .*pending >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// Fallback commits whatever is still pending and recomputes remaining
	// from the counters, so the balance identity survives the drift.
	mock.ExpectExec(`UPDATE "leave_entitlements" SET "pending"=0,"remaining"=total_entitlement - used - pending,"updated_at"=now\(\),"used"=used \+ pending WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	clamped, err := repo.CommitUsed(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.True(t, clamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Release_ClampsOnDrift(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET "pending"=pending - \$1,"remaining"=remaining \+ \$2,"updated_at"=now\(\) WHERE .*pending >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "leave_entitlements" SET "pending"=0,"remaining"=total_entitlement - used,"updated_at"=now\(\) WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	clamped, err := repo.Release(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.True(t, clamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReturnFromUsed_Guarded(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET "remaining"=remaining \+ \$1,"updated_at"=now\(\),"used"=used - \$2 WHERE .*used >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	clamped, err := repo.ReturnFromUsed(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.False(t, clamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReturnFromUsed_ClampsOnDrift(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "leave_entitlements" SET .*used >= \$6`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "leave_entitlements" SET "remaining"=total_entitlement - pending,"updated_at"=now\(\),"used"=0 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	clamped, err := repo.ReturnFromUsed(context.Background(), testEmployeeID, testLeaveTypeID, 2026, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.True(t, clamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}
