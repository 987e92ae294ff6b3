package entities

import (
	"math"
	"time"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 5
	// MaxStars is the stored value for a 5.0 average.
	MaxStars = 50
)

// Review belongs to exactly one professional and is immutable once created.
//
// Weight and IsVerified are derived from the attachments present at submission
// time and are never recomputed.
type Review struct {
	ID                   uint
	ProfessionalID       uint
	UserID               *uint
	Rating               int
	Weight               int
	Comment              string
	AudioURL             string
	Emoji                string
	ServicePhotoURL      string
	VerificationPhotoURL string
	ConfirmationToken    string
	IsVerified           bool
	CreatedAt            time.Time
}

// ReviewWeight is 2 when a service photo backs the review.
func ReviewWeight(servicePhotoURL string) int {
	if servicePhotoURL != "" {
		return 2
	}
	return 1
}

// ReviewIsVerified requires both the service photo and the verification selfie.
func ReviewIsVerified(servicePhotoURL, verificationPhotoURL string) bool {
	return servicePhotoURL != "" && verificationPhotoURL != ""
}

// RatingAggregate is what the directory displays for a professional.
type RatingAggregate struct {
	Stars       int
	ReviewCount int
}

// AggregateRating computes round(10 * Σ(rating·weight) / Σ(weight)) clamped to
// [0, MaxStars]. An empty set yields the zero aggregate.
func AggregateRating(reviews []Review) RatingAggregate {
	if len(reviews) == 0 {
		return RatingAggregate{}
	}
	var weighted, totalWeight int
	for _, r := range reviews {
		w := r.Weight
		if w <= 0 {
			w = 1
		}
		weighted += r.Rating * w
		totalWeight += w
	}
	stars := int(math.Round(float64(weighted) * 10 / float64(totalWeight)))
	if stars < 0 {
		stars = 0
	}
	if stars > MaxStars {
		stars = MaxStars
	}
	return RatingAggregate{Stars: stars, ReviewCount: len(reviews)}
}
