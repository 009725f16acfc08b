package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ObjectiveCategory string

const (
	ObjectiveCategoryMentorship ObjectiveCategory = "mentorship"
	ObjectiveCategoryContent    ObjectiveCategory = "content"
	ObjectiveCategorySupport    ObjectiveCategory = "support"
	ObjectiveCategoryEvents     ObjectiveCategory = "events"
)

type ObjectiveStatus string

const (
	ObjectiveStatusCompleted ObjectiveStatus = "COMPLETED"
)

// CareObjective is a discrete community contribution. Under current policy
// objectives are completed at creation; there is no pending-review state.
type CareObjective struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Username    string          `gorm:"not null" json:"username"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Points      int             `gorm:"not null" json:"points"`
	Status      ObjectiveStatus `gorm:"not null" json:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name for CareObjective model
func (CareObjective) TableName() string {
	return "care_objectives"
}

// BeforeCreate assigns the objective ID if not already set
func (o *CareObjective) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
