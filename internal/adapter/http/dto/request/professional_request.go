package request

import (
	"strings"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"
)

type RegisterProfessionalRequest struct {
	UID             string   `json:"uid"`
	DisplayName     string   `json:"display_name" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Phone           string   `json:"phone"`
	WhatsApp        string   `json:"whatsapp"`
	Email           string   `json:"email"`
	Bio             string   `json:"bio"`
	PhotoURL        string   `json:"photo_url"`
	InstagramHandle string   `json:"instagram_handle"`
	PlanType        string   `json:"plan_type"`
}

func (r RegisterProfessionalRequest) ToInput() usecase.RegisterProfessionalInput {
	return usecase.RegisterProfessionalInput{
		UID:             r.UID,
		DisplayName:     r.DisplayName,
		Category:        r.Category,
		City:            r.City,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Phone:           r.Phone,
		WhatsApp:        r.WhatsApp,
		Email:           r.Email,
		Bio:             r.Bio,
		PhotoURL:        r.PhotoURL,
		InstagramHandle: r.InstagramHandle,
		PlanType:        r.PlanType,
	}
}

// ApproveProfessionalRequest is optional; an empty body keeps the current badge.
type ApproveProfessionalRequest struct {
	Badge string `json:"badge"`
}

func (r ApproveProfessionalRequest) ResolveBadge() *entities.Badge {
	v := strings.ToLower(strings.TrimSpace(r.Badge))
	if v == "" {
		return nil
	}
	b := entities.Badge(v)
	return &b
}
