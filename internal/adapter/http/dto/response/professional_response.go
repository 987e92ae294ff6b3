package response

import (
	"time"

	"bokaboka_api/internal/domain/entities"
)

type ProfessionalResponse struct {
	ID                 uint       `json:"id"`
	UID                string     `json:"uid"`
	DisplayName        string     `json:"display_name"`
	Category           string     `json:"category"`
	City               string     `json:"city"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	Phone              string     `json:"phone,omitempty"`
	WhatsApp           string     `json:"whatsapp,omitempty"`
	Email              string     `json:"email,omitempty"`
	Bio                string     `json:"bio,omitempty"`
	PhotoURL           string     `json:"photo_url,omitempty"`
	InstagramHandle    string     `json:"instagram_handle,omitempty"`
	Stars              int        `json:"stars"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"review_count"`
	Badge              string     `json:"badge"`
	PlanType           string     `json:"plan_type"`
	VerificationStatus string     `json:"verification_status"`
	TrialEndsAt        *time.Time `json:"trial_ends_at"`
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProfessionalViewResponse adds the per-request flags. Distance is null unless
// both sides have coordinates.
type ProfessionalViewResponse struct {
	ProfessionalResponse
	IsInActivePeriod bool     `json:"is_in_active_period"`
	Distance         *float64 `json:"distance"`
}

func FromProfessional(p entities.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:                 p.ID,
		UID:                p.UID,
		DisplayName:        p.DisplayName,
		Category:           p.Category,
		City:               p.City,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		Phone:              p.Phone,
		WhatsApp:           p.WhatsApp,
		Email:              p.Email,
		Bio:                p.Bio,
		PhotoURL:           p.PhotoURL,
		InstagramHandle:    p.InstagramHandle,
		Stars:              p.Stars,
		Rating:             starsToRating(p.Stars),
		ReviewCount:        p.ReviewCount,
		Badge:              string(p.Badge),
		PlanType:           string(p.PlanType),
		VerificationStatus: string(p.VerificationStatus),
		TrialEndsAt:        p.TrialEndsAt,
		SubscriptionEndsAt: p.SubscriptionEndsAt,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProfessionalView(v entities.ProfessionalView) ProfessionalViewResponse {
	return ProfessionalViewResponse{
		ProfessionalResponse: FromProfessional(v.Professional),
		IsInActivePeriod:     v.IsInActivePeriod,
		Distance:             v.DistanceKm,
	}
}

func FromProfessionalViews(views []entities.ProfessionalView) []ProfessionalViewResponse {
	out := make([]ProfessionalViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProfessionalView(v))
	}
	return out
}

type RatingResponse struct {
	ProfessionalID uint    `json:"professional_id"`
	Stars          int     `json:"stars"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"review_count"`
}

func FromRatingAggregate(professionalID uint, agg entities.RatingAggregate) RatingResponse {
	return RatingResponse{ProfessionalID: professionalID, Stars: agg.Stars, Rating: starsToRating(agg.Stars), ReviewCount: agg.ReviewCount}
}

// stars are stored times ten.
func starsToRating(stars int) float64 {
	return float64(stars) / 10
}
