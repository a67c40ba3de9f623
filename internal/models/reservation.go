package models

import "time"

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Date is YYYY-MM-DD, Time is HH:MM (24h). Kept as strings because the
	// sheet store exchanges them literally and the grid compares them exactly.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Email      string `gorm:"size:100;not null" json:"email"`
	Phone      string `gorm:"size:20;not null" json:"phone"`

	ServiceName string `gorm:"size:100;not null" json:"service_name"`
	Comments    string `gorm:"size:255" json:"comments"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
