package model

import (
	"time"
)

// Notification represents the database model for notifications
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36"`
	AccountID string    `gorm:"not null;index;size:128"`
	Title     string    `gorm:"not null;size:255"`
	Message   string    `gorm:"not null;type:text"`
	Read      bool      `gorm:"not null;default:false"`
	OrderID   string    `gorm:"size:16"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
