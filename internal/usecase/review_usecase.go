package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidReviewRating = errors.New("invalid review rating")

type CreateReviewInput struct {
	ProfessionalID       uint
	UserID               *uint
	Rating               int
	Comment              string
	AudioURL             string
	Emoji                string
	ServicePhotoURL      string
	VerificationPhotoURL string
}

// IRatingAggregator recomputes a professional's displayed rating from the
// committed review set. It never increments, so re-running it is always safe.
type IRatingAggregator interface {
	Recompute(ctx context.Context, professionalID uint) (entities.RatingAggregate, error)
}

type IReviewUseCase interface {
	IRatingAggregator
	Create(ctx context.Context, in CreateReviewInput) (entities.Review, entities.RatingAggregate, error)
	ListByProfessional(ctx context.Context, professionalID uint) ([]entities.Review, error)
}

type ReviewUseCase struct {
	reviews       interfaces.IReviewRepository
	professionals interfaces.IProfessionalRepository
	now           func() time.Time
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(reviews interfaces.IReviewRepository, professionals interfaces.IProfessionalRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, professionals: professionals, now: utcNow}
}

// Create stores the review and then refreshes the aggregate. The review is kept
// even if the aggregate write fails; the returned aggregate is then the stale one
// and an admin recompute fixes it.
func (u *ReviewUseCase) Create(ctx context.Context, in CreateReviewInput) (entities.Review, entities.RatingAggregate, error) {
	if in.ProfessionalID == 0 {
		return entities.Review{}, entities.RatingAggregate{}, ErrInvalidProfessionalID
	}
	if in.Rating < entities.MinReviewRating || in.Rating > entities.MaxReviewRating {
		return entities.Review{}, entities.RatingAggregate{}, ErrInvalidReviewRating
	}

	prof, err := u.professionals.GetByID(ctx, in.ProfessionalID)
	if err != nil {
		return entities.Review{}, entities.RatingAggregate{}, err
	}
	if prof.ID == 0 {
		return entities.Review{}, entities.RatingAggregate{}, ErrProfessionalNotFound
	}

	servicePhoto := strings.TrimSpace(in.ServicePhotoURL)
	selfie := strings.TrimSpace(in.VerificationPhotoURL)
	r := entities.Review{
		ProfessionalID:       in.ProfessionalID,
		UserID:               in.UserID,
		Rating:               in.Rating,
		Weight:               entities.ReviewWeight(servicePhoto),
		Comment:              strings.TrimSpace(in.Comment),
		AudioURL:             strings.TrimSpace(in.AudioURL),
		Emoji:                strings.TrimSpace(in.Emoji),
		ServicePhotoURL:      servicePhoto,
		VerificationPhotoURL: selfie,
		ConfirmationToken:    uuid.NewString(),
		IsVerified:           entities.ReviewIsVerified(servicePhoto, selfie),
		CreatedAt:            u.now(),
	}

	created, err := u.reviews.Create(ctx, r)
	if err != nil {
		log.Printf("[review][usecase] create failed professional_id=%d err=%v", in.ProfessionalID, err)
		return entities.Review{}, entities.RatingAggregate{}, err
	}
	log.Printf("[review][usecase] created id=%d professional_id=%d rating=%d weight=%d verified=%t", created.ID, created.ProfessionalID, created.Rating, created.Weight, created.IsVerified)

	agg, err := u.Recompute(ctx, in.ProfessionalID)
	if err != nil {
		stale := entities.RatingAggregate{Stars: prof.Stars, ReviewCount: prof.ReviewCount}
		log.Printf("[rating][usecase] aggregate stale professional_id=%d stars=%d review_count=%d err=%v", in.ProfessionalID, stale.Stars, stale.ReviewCount, err)
		return created, stale, nil
	}
	return created, agg, nil
}

func (u *ReviewUseCase) Recompute(ctx context.Context, professionalID uint) (entities.RatingAggregate, error) {
	if professionalID == 0 {
		return entities.RatingAggregate{}, ErrInvalidProfessionalID
	}
	reviews, err := u.reviews.ListByProfessionalID(ctx, professionalID)
	if err != nil {
		return entities.RatingAggregate{}, err
	}
	agg := entities.AggregateRating(reviews)
	if err := u.professionals.UpdateRating(ctx, professionalID, agg); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.RatingAggregate{}, ErrProfessionalNotFound
		}
		return entities.RatingAggregate{}, err
	}
	log.Printf("[rating][usecase] recomputed professional_id=%d stars=%d review_count=%d", professionalID, agg.Stars, agg.ReviewCount)
	return agg, nil
}

func (u *ReviewUseCase) ListByProfessional(ctx context.Context, professionalID uint) ([]entities.Review, error) {
	if professionalID == 0 {
		return nil, ErrInvalidProfessionalID
	}
	return u.reviews.ListByProfessionalID(ctx, professionalID)
}
