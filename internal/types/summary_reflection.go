package types

import (
	"time"

	"github.com/google/uuid"
)

// SummaryReflection is the teacher's own response to a periodic summary.
type SummaryReflection struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_reflection_user_teacher,unique" json:"user_id"`
	TeacherID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_reflection_user_teacher,unique" json:"teacher_id"`
	SelfReflection string     `gorm:"column:self_reflection" json:"self_reflection"`
	ActionsTaken   string     `gorm:"column:actions_taken" json:"actions_taken"`
	CreatedAt      time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (SummaryReflection) TableName() string { return "summary_reflections" }
