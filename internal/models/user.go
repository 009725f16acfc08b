package models

import (
	"time"
)

// User represents a member of the community, identified by their wallet address
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletAddress string    `gorm:"uniqueIndex;not null" json:"wallet_address"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
