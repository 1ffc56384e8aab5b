package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScheduleStatusPlanned   = "planned"
	ScheduleStatusRecording = "recording"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// Schedule is an upcoming class session planned for observation.
type Schedule struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher         *Teacher       `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	Title           string         `gorm:"not null" json:"title"`
	ScheduledFor    time.Time      `gorm:"column:scheduled_for;not null;index" json:"scheduled_for"`
	DurationMinutes int            `gorm:"column:duration_minutes;not null;default:45" json:"duration_minutes"`
	Status          string         `gorm:"not null;default:'planned'" json:"status"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Schedule) TableName() string { return "schedules" }
