package repository

import (
	"context"
	"fmt"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PromoCodeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPromoCodeRepository = (*PromoCodeGormRepository)(nil)

func NewPromoCodeGormRepository(db *gorm.DB) *PromoCodeGormRepository {
	return &PromoCodeGormRepository{db: db}
}

func (r *PromoCodeGormRepository) Create(ctx context.Context, c entities.PromoCode) (entities.PromoCode, error) {
	m := toPromoCodeModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.PromoCode{}, translateError(err)
	}
	return fromPromoCodeModel(m), nil
}

// GetByCode matches the stored lowercase form.
func (r *PromoCodeGormRepository) GetByCode(ctx context.Context, code string) (entities.PromoCode, error) {
	var rows []promoCodeModel
	if err := r.db.WithContext(ctx).Where("code = ?", entities.NormalizePromoCode(code)).Limit(1).Find(&rows).Error; err != nil {
		return entities.PromoCode{}, err
	}
	if len(rows) == 0 {
		return entities.PromoCode{}, nil
	}
	return fromPromoCodeModel(rows[0]), nil
}

// Redeem runs usage insert, guarded increment and professional update in one
// transaction; any failure leaves no trace.
func (r *PromoCodeGormRepository) Redeem(ctx context.Context, promoCodeID uint, grant entities.SubscriptionGrant, usedAt time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		usage := promoCodeUsageModel{PromoCodeID: promoCodeID, ProfessionalID: grant.ProfessionalID, UsedAt: usedAt}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		res := tx.Model(&promoCodeModel{}).
			Where("id = ? AND (max_uses = 0 OR current_uses < max_uses)", promoCodeID).
			UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("promo code %d: %w", promoCodeID, interfaces.ErrConditionFailed)
		}

		return applyGrant(tx, grant, usedAt)
	})
	return translateError(err)
}
