package model

import (
	"time"
)

// TopUp represents the database model for top-up requests
type TopUp struct {
	ID          string    `gorm:"primaryKey;size:36"`
	AccountID   string    `gorm:"not null;index;size:128"`
	Username    string    `gorm:"not null;size:20"`
	Amount      int64     `gorm:"not null"`
	EvidenceURL string    `gorm:"not null;type:text"`
	Status      string    `gorm:"not null;size:20;index"`
	CreatedAt   time.Time `gorm:"not null"`
	ReviewedAt  *time.Time
	ReviewedBy  string `gorm:"size:128"`
	BonusCoins  int64  `gorm:"not null;default:0"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for TopUp
func (TopUp) TableName() string {
	return "topup_requests"
}
