package request

import "bokaboka_api/internal/usecase"

type CreateReviewRequest struct {
	Rating               int    `json:"rating" binding:"required"`
	Comment              string `json:"comment"`
	AudioURL             string `json:"audio_url"`
	Emoji                string `json:"emoji"`
	ServicePhotoURL      string `json:"service_photo_url"`
	VerificationPhotoURL string `json:"verification_photo_url"`
}

// ToInput attaches the path professional and the authenticated user (0 = anonymous).
func (r CreateReviewRequest) ToInput(professionalID, userID uint) usecase.CreateReviewInput {
	in := usecase.CreateReviewInput{
		ProfessionalID:       professionalID,
		Rating:               r.Rating,
		Comment:              r.Comment,
		AudioURL:             r.AudioURL,
		Emoji:                r.Emoji,
		ServicePhotoURL:      r.ServicePhotoURL,
		VerificationPhotoURL: r.VerificationPhotoURL,
	}
	if userID != 0 {
		in.UserID = &userID
	}
	return in
}
