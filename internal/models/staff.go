package models

import "time"

type Staff struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`
	Role string `gorm:"size:20;default:'stylist'" json:"role"` // owner|manager|stylist|assistant

	Specialties []string `gorm:"serializer:json" json:"specialties"`
	AvatarURL   string   `gorm:"size:255" json:"avatar_url"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
