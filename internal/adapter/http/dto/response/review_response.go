package response

import (
	"time"

	"bokaboka_api/internal/domain/entities"
)

// ReviewResponse never exposes the confirmation token.
type ReviewResponse struct {
	ID                   uint      `json:"id"`
	ProfessionalID       uint      `json:"professional_id"`
	UserID               *uint     `json:"user_id"`
	Rating               int       `json:"rating"`
	Weight               int       `json:"weight"`
	Comment              string    `json:"comment,omitempty"`
	AudioURL             string    `json:"audio_url,omitempty"`
	Emoji                string    `json:"emoji,omitempty"`
	ServicePhotoURL      string    `json:"service_photo_url,omitempty"`
	VerificationPhotoURL string    `json:"verification_photo_url,omitempty"`
	IsVerified           bool      `json:"is_verified"`
	CreatedAt            time.Time `json:"created_at"`
}

type CreateReviewResponse struct {
	Review ReviewResponse `json:"review"`
	Rating RatingResponse `json:"rating"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:                   r.ID,
		ProfessionalID:       r.ProfessionalID,
		UserID:               r.UserID,
		Rating:               r.Rating,
		Weight:               r.Weight,
		Comment:              r.Comment,
		AudioURL:             r.AudioURL,
		Emoji:                r.Emoji,
		ServicePhotoURL:      r.ServicePhotoURL,
		VerificationPhotoURL: r.VerificationPhotoURL,
		IsVerified:           r.IsVerified,
		CreatedAt:            r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}
