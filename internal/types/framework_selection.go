package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FrameworkSelection pins a user's active rubric framework and the
// subset of elements shown on the roster.
type FrameworkSelection struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FrameworkType    string         `gorm:"column:framework_type;not null" json:"framework_type"`
	SelectedElements datatypes.JSON `gorm:"type:jsonb;column:selected_elements" json:"selected_elements"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (FrameworkSelection) TableName() string { return "framework_selections" }
