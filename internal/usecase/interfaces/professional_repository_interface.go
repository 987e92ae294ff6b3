package interfaces

import (
	"context"

	"bokaboka_api/internal/domain/entities"
)

// IProfessionalRepository persists professionals.
//
// Getters return the zero value and a nil error when nothing matches.
type IProfessionalRepository interface {
	Create(ctx context.Context, p entities.Professional) (entities.Professional, error)
	GetByID(ctx context.Context, id uint) (entities.Professional, error)
	GetByUID(ctx context.Context, uid string) (entities.Professional, error)
	UpdateVerification(ctx context.Context, id uint, status entities.VerificationStatus, badge *entities.Badge) (entities.Professional, error)
	UpdateRating(ctx context.Context, id uint, agg entities.RatingAggregate) error
	// Search returns searchable professionals in plan tier, stars DESC, id ASC order.
	Search(ctx context.Context, c entities.SearchCriteria) ([]entities.Professional, error)
}

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProfessionalID(ctx context.Context, professionalID uint) ([]entities.Review, error)
}
