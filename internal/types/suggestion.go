package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Suggestion struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher         *Teacher       `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	PatternDetected string         `gorm:"column:pattern_detected;not null" json:"pattern_detected"`
	SuggestionType  string         `gorm:"column:suggestion_type;not null" json:"suggestion_type"`
	Priority        string         `gorm:"not null" json:"priority"`
	Body            string         `json:"body"`
	ConfidenceScore float64        `gorm:"column:confidence_score;not null;default:0" json:"confidence_score"`
	Status          string         `gorm:"not null;default:'pending';index" json:"status"`
	ExpiresAt       time.Time      `gorm:"column:expires_at;not null" json:"expires_at"`
	ResolvedAt      *time.Time     `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Suggestion) TableName() string { return "suggestions" }
