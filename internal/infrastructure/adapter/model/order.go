package model

import (
	"time"
)

// Order represents the database model for orders
type Order struct {
	ID          string    `gorm:"primaryKey;size:16"`
	AccountID   string    `gorm:"not null;index;size:128"`
	Username    string    `gorm:"not null;size:20"`
	LineID      string    `gorm:"not null;size:64"`
	ItemID      string    `gorm:"not null;size:64"`
	ItemName    string    `gorm:"not null;size:255"`
	UnitPrice   int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Price       int64     `gorm:"not null"`
	PlayerID    string    `gorm:"size:64"`
	ServerID    string    `gorm:"size:64"`
	Status      string    `gorm:"not null;size:20;index"`
	CreatedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}
