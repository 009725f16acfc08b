package models

import (
	"time"
)

// DailyCheckIn is one calendar-day mood record. Rows are append-only and
// never updated after creation; the (user_id, date) unique index is the
// authoritative once-per-day guard.
type DailyCheckIn struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_checkins_user_date" json:"user_id"`
	Date          string    `gorm:"size:10;not null;uniqueIndex:idx_checkins_user_date" json:"date"`
	Mood          int       `gorm:"not null" json:"mood"`
	MoodLabel     string    `gorm:"not null" json:"mood_label"`
	GratitudeNote string    `json:"gratitude_note,omitempty"`
	Points        int       `gorm:"not null" json:"points"`
	Streak        int       `gorm:"not null" json:"streak"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for DailyCheckIn model
func (DailyCheckIn) TableName() string {
	return "daily_checkins"
}
