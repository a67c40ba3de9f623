package models

import "time"

// Duration and Price stay display strings ("60 min", "$50"), matching the
// catalog rows in the spreadsheet.
type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Duration    string `gorm:"size:20" json:"duration"`
	Price       string `gorm:"size:20" json:"price"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
