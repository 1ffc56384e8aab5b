package types

import (
	"time"

	"github.com/google/uuid"
)

// ScoreCorrection is one human override of an automated element score.
// The table is append-only; aggregates are always recomputed from it.
type ScoreCorrection struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	AssessmentID    *uuid.UUID `gorm:"type:uuid;index" json:"assessment_id,omitempty"`
	ElementID       string     `gorm:"column:element_id;not null;index" json:"element_id"`
	OriginalAIScore float64    `gorm:"column:original_ai_score;not null" json:"original_ai_score"`
	CorrectedScore  float64    `gorm:"column:corrected_score;not null" json:"corrected_score"`
	ExpertiseWeight float64    `gorm:"column:expertise_weight;not null;default:1" json:"expertise_weight"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (ScoreCorrection) TableName() string { return "score_corrections" }
