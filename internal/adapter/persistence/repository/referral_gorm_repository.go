package repository

import (
	"context"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ReferralGormRepository keeps codes and redemptions in separate tables; both
// owner_id and referred_id are unique.
type ReferralGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IReferralRepository = (*ReferralGormRepository)(nil)

func NewReferralGormRepository(db *gorm.DB) *ReferralGormRepository {
	return &ReferralGormRepository{db: db}
}

func (r *ReferralGormRepository) GetCodeByOwner(ctx context.Context, ownerID uint) (entities.ReferralCode, error) {
	return r.firstCode(ctx, "owner_id = ?", ownerID)
}

func (r *ReferralGormRepository) GetCodeByCode(ctx context.Context, code string) (entities.ReferralCode, error) {
	return r.firstCode(ctx, "code = ?", entities.NormalizeReferralCode(code))
}

func (r *ReferralGormRepository) firstCode(ctx context.Context, query string, args ...any) (entities.ReferralCode, error) {
	var rows []referralCodeModel
	if err := r.db.WithContext(ctx).Where(query, args...).Limit(1).Find(&rows).Error; err != nil {
		return entities.ReferralCode{}, err
	}
	if len(rows) == 0 {
		return entities.ReferralCode{}, nil
	}
	return fromReferralCodeModel(rows[0]), nil
}

func (r *ReferralGormRepository) CreateCode(ctx context.Context, rc entities.ReferralCode) (entities.ReferralCode, error) {
	m := referralCodeModel{OwnerID: rc.OwnerID, Code: entities.NormalizeReferralCode(rc.Code), CreatedAt: rc.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ReferralCode{}, translateError(err)
	}
	return fromReferralCodeModel(m), nil
}

func (r *ReferralGormRepository) HasRedemption(ctx context.Context, referredID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&referralRedemptionModel{}).Where("referred_id = ?", referredID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReferralGormRepository) CreateRedemption(ctx context.Context, rd entities.ReferralRedemption) (entities.ReferralRedemption, error) {
	m := referralRedemptionModel{
		ReferrerID:     rd.ReferrerID,
		ReferredID:     rd.ReferredID,
		Code:           rd.Code,
		DiscountAmount: rd.DiscountAmount,
		CompletedAt:    rd.CompletedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ReferralRedemption{}, translateError(err)
	}
	return fromReferralRedemptionModel(m), nil
}

func (r *ReferralGormRepository) DeleteRedemption(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&referralRedemptionModel{}).Error
}

func (r *ReferralGormRepository) StatsByReferrer(ctx context.Context, referrerID uint) (entities.ReferralStats, error) {
	var out struct {
		Count        int64
		TotalSavings int64
	}
	err := r.db.WithContext(ctx).Model(&referralRedemptionModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(discount_amount), 0) AS total_savings").
		Where("referrer_id = ?", referrerID).
		Scan(&out).Error
	if err != nil {
		return entities.ReferralStats{}, err
	}
	return entities.ReferralStats{Count: out.Count, TotalSavings: out.TotalSavings}, nil
}
