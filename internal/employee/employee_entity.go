package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the directory record this core reads from. Master-data
// management lives elsewhere; nothing here ever writes to it.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	FullName       string     `gorm:"type:varchar(120);not null"`
	DepartmentName string     `gorm:"type:varchar(80)"`
	PositionName   string     `gorm:"type:varchar(80)"`
	ManagerID      *uuid.UUID `gorm:"type:uuid"`
	HireDate       time.Time  `gorm:"type:date;not null"`
	IsActive       bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
