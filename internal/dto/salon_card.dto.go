package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// SalonCardDTO é a fatia pública do salão exposta na listagem de
// descoberta. E-mail e campos operacionais ficam de fora.
type SalonCardDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logo_url"`
}

func FromSalon(s models.Salon) SalonCardDTO {
	return SalonCardDTO{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Address:     s.Address,
		Phone:       s.Phone,
		LogoURL:     s.LogoURL,
	}
}

func FromSalons(salons []models.Salon) []SalonCardDTO {
	out := make([]SalonCardDTO, 0, len(salons))
	for _, s := range salons {
		out = append(out, FromSalon(s))
	}
	return out
}
