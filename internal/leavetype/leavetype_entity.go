package leavetype

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AccrualYearly = "YEARLY"
	AccrualTenure = "TENURE"
	AccrualNone   = "NONE"
)

type LeaveType struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code     string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name     string    `gorm:"type:varchar(80);not null"`
	IsActive bool      `gorm:"not null;default:true"`

	// Unpaid types are exempt from every balance check.
	IsPaid bool `gorm:"not null;default:true"`

	MaxConsecutiveDays           int  `gorm:"type:int;not null;default:0"`
	RequiresCertificate          bool `gorm:"not null;default:false"`
	CertificateRequiredAfterDays int  `gorm:"type:int;not null;default:0"`

	DefaultEntitlement decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	AccrualType        string          `gorm:"type:varchar(20);not null;default:'YEARLY'"`
	CarryOverAllowed   bool            `gorm:"not null;default:false"`
	MaxCarryOverDays   decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
