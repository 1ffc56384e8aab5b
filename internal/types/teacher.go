package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CreatedBy  uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Name       string         `gorm:"not null" json:"name"`
	Subject    string         `gorm:"not null" json:"subject"`
	GradeLevel string         `gorm:"column:grade_level" json:"grade_level"`
	Department string         `json:"department,omitempty"`
	HireDate   *time.Time     `gorm:"column:hire_date" json:"hire_date,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }

// TenureDays is days since hire; -1 when the hire date is unknown.
func (t Teacher) TenureDays(now time.Time) int {
	if t.HireDate == nil {
		return -1
	}
	days := int(now.Sub(*t.HireDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
