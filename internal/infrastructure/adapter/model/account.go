package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID          string    `gorm:"primaryKey;size:128"`
	DisplayName string    `gorm:"not null;size:20"`
	NameKey     string    `gorm:"uniqueIndex;not null;size:20"` // Lower-cased display name
	Email       string    `gorm:"size:255"`
	Balance     int64     `gorm:"not null;default:0"` // Balance in kyats
	Coins       int64     `gorm:"not null;default:0"`
	Version     uint64    `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
