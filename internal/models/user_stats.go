package models

import (
	"time"
)

// UserStats is the running per-user summary. One row per user, written
// exclusively by the check-in service; TotalPoints and TotalCheckins only
// ever grow. LastCheckIn is a date-only string ("2006-01-02"), empty when
// the user has never checked in.
type UserStats struct {
	UserID        uint      `gorm:"primaryKey" json:"user_id"`
	TotalPoints   int       `gorm:"not null;default:0" json:"total_points"`
	CurrentStreak int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int       `gorm:"not null;default:0" json:"longest_streak"`
	Level         int       `gorm:"not null;default:1" json:"level"`
	TotalCheckins int       `gorm:"not null;default:0" json:"total_checkins"`
	LastCheckIn   string    `gorm:"size:10" json:"last_checkin"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for UserStats model
func (UserStats) TableName() string {
	return "user_stats"
}
