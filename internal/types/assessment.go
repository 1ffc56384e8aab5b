package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ElementScoreRecord is one element's score inside an assessment,
// serialized into the element_scores JSON column.
type ElementScoreRecord struct {
	ElementID    string   `json:"element_id"`
	ElementName  string   `json:"element_name"`
	Score        float64  `json:"score"`
	Level        string   `json:"level"`
	Observations []string `json:"observations,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type Assessment struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher         *Teacher       `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	FrameworkType   string         `gorm:"column:framework_type;not null" json:"framework_type"`
	ElementScores   datatypes.JSON `gorm:"type:jsonb;column:element_scores" json:"element_scores"`
	OverallScore    float64        `gorm:"column:overall_score;not null;default:0" json:"overall_score"`
	Summary         string         `json:"summary"`
	Recommendations datatypes.JSON `gorm:"type:jsonb" json:"recommendations"`
	AnalyzedAt      time.Time      `gorm:"column:analyzed_at;not null;index" json:"analyzed_at"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Assessment) TableName() string { return "assessments" }
