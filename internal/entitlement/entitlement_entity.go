package entitlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveEntitlement is one ledger row per (employee, leave type, year).
// Invariant held after every mutation:
//
//	remaining = total_entitlement - used - pending
//
// with used, pending and remaining never negative.
type LeaveEntitlement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entitlements_key"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entitlements_key"`
	Year        int       `gorm:"type:int;not null;uniqueIndex:idx_entitlements_key"`

	Accrued          decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CarriedOver      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	TotalEntitlement decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Used             decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Pending          decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Remaining        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	// Audit trail for how the grant was computed.
	BasedOnTenure bool `gorm:"not null;default:false"`
	TenureYears   int  `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
