package models

import "time"

// Uma linha por (salão, dia da semana). Weekday segue time.Weekday (0 = domingo).
type SalonSchedule struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_salon_weekday,unique" json:"salon_id"`

	Weekday int `gorm:"index:idx_salon_weekday,unique" json:"weekday"`

	Open      bool   `json:"open"`
	OpenTime  string `gorm:"size:5" json:"open_time"`  // HH:MM
	CloseTime string `gorm:"size:5" json:"close_time"` // HH:MM

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
