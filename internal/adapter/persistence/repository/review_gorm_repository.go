package repository

import (
	"context"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IReviewRepository = (*ReviewGormRepository)(nil)

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Review{}, translateError(err)
	}
	return fromReviewModel(m), nil
}

// ListByProfessionalID returns reviews newest first.
func (r *ReviewGormRepository) ListByProfessionalID(ctx context.Context, professionalID uint) ([]entities.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromReviewModel(m))
	}
	return out, nil
}
