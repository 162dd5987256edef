package model

import (
	"time"
)

// PurchaseIntent represents the database model for purchase intents
type PurchaseIntent struct {
	ID        string    `gorm:"primaryKey;size:36"`
	RequestID *string   `gorm:"uniqueIndex;size:128"` // NULL when the client sent no key
	AccountID string    `gorm:"not null;index;size:128"`
	OrderID   string    `gorm:"not null;size:16"`
	Amount    int64     `gorm:"not null"`
	State     string    `gorm:"not null;size:32"`
	LastError string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PurchaseIntent
func (PurchaseIntent) TableName() string {
	return "purchase_intents"
}
