package models

import "time"

// Schedule is one weekly opening-hours row. Weekday is 0=Sunday .. 6=Saturday.
type Schedule struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Weekday   int    `gorm:"uniqueIndex" json:"weekday"`
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	Available bool   `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
