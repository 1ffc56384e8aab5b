package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Observation is a human note tied to a teacher and optionally to one
// framework element and one assessment.
type Observation struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher              *Teacher       `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	AssessmentID         *uuid.UUID     `gorm:"type:uuid;index" json:"assessment_id,omitempty"`
	ElementID            *string        `gorm:"column:element_id;index" json:"element_id,omitempty"`
	AdminComment         string         `gorm:"column:admin_comment" json:"admin_comment,omitempty"`
	TeacherResponse      string         `gorm:"column:teacher_response" json:"teacher_response,omitempty"`
	ImplementationStatus string         `gorm:"column:implementation_status" json:"implementation_status,omitempty"`
	CreatedAt            time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Observation) TableName() string { return "observations" }
