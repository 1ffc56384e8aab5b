package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrendPoint is one computed (teacher, element?, period) statistics row.
// Recomputation inserts a superseding row; rows are never mutated.
type TrendPoint struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TeacherID         uuid.UUID      `gorm:"type:uuid;not null;index:idx_trend_teacher_period" json:"teacher_id"`
	ElementID         *string        `gorm:"column:element_id;index" json:"element_id,omitempty"`
	PeriodType        string         `gorm:"column:period_type;not null;index:idx_trend_teacher_period" json:"period_type"`
	PeriodStart       time.Time      `gorm:"column:period_start;not null;index:idx_trend_teacher_period" json:"period_start"`
	PeriodEnd         time.Time      `gorm:"column:period_end;not null" json:"period_end"`
	AverageScore      float64        `gorm:"column:average_score;not null" json:"average_score"`
	ScoreChange       float64        `gorm:"column:score_change;not null;default:0" json:"score_change"`
	TrendDirection    string         `gorm:"column:trend_direction;not null" json:"trend_direction"`
	ObservationCount  int            `gorm:"column:observation_count;not null;default:0" json:"observation_count"`
	MinScore          float64        `gorm:"column:min_score" json:"min_score"`
	MaxScore          float64        `gorm:"column:max_score" json:"max_score"`
	StdDeviation      float64        `gorm:"column:std_deviation" json:"std_deviation"`
	ConfidenceAverage float64        `gorm:"column:confidence_average" json:"confidence_average"`
	SchoolAverage     float64        `gorm:"column:school_average" json:"school_average"`
	PercentileRank    float64        `gorm:"column:percentile_rank" json:"percentile_rank"`
	RiskLevel         *string        `gorm:"column:risk_level" json:"risk_level,omitempty"`
	RiskScore         *int           `gorm:"column:risk_score" json:"risk_score,omitempty"`
	PredictedScore    *float64       `gorm:"column:predicted_score" json:"predicted_score,omitempty"`
	RiskFactors       datatypes.JSON `gorm:"type:jsonb;column:risk_factors" json:"risk_factors"`
	ComputedAt        time.Time      `gorm:"column:computed_at;not null;default:now()" json:"computed_at"`
}

func (TrendPoint) TableName() string { return "trend_points" }
