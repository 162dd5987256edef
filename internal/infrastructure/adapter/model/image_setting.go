package model

import (
	"time"
)

// ImageSetting maps a catalog key to the image shown for it
type ImageSetting struct {
	Key       string    `gorm:"primaryKey;size:128"`
	URL       string    `gorm:"not null;type:text"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ImageSetting
func (ImageSetting) TableName() string {
	return "image_settings"
}
