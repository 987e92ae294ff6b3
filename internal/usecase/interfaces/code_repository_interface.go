package interfaces

import (
	"context"
	"time"

	"bokaboka_api/internal/domain/entities"
)

// IPromoCodeRepository persists promo codes and their one-per-professional usages.
type IPromoCodeRepository interface {
	Create(ctx context.Context, c entities.PromoCode) (entities.PromoCode, error)
	GetByCode(ctx context.Context, code string) (entities.PromoCode, error)
	// Redeem records the usage, increments the counter and applies the grant atomically.
	// ErrAlreadyExists: the professional already has a usage.
	// ErrConditionFailed: the code ran out of uses concurrently.
	// ErrNotFound: the professional does not exist.
	Redeem(ctx context.Context, promoCodeID uint, grant entities.SubscriptionGrant, usedAt time.Time) error
}

// IReferralRepository persists referral codes and redemptions.
type IReferralRepository interface {
	GetCodeByOwner(ctx context.Context, ownerID uint) (entities.ReferralCode, error)
	GetCodeByCode(ctx context.Context, code string) (entities.ReferralCode, error)
	// CreateCode returns ErrAlreadyExists when either the owner or the code is taken.
	CreateCode(ctx context.Context, rc entities.ReferralCode) (entities.ReferralCode, error)
	HasRedemption(ctx context.Context, referredID uint) (bool, error)
	// CreateRedemption returns ErrAlreadyExists when the referred professional already redeemed.
	CreateRedemption(ctx context.Context, r entities.ReferralRedemption) (entities.ReferralRedemption, error)
	// DeleteRedemption removes a redemption whose checkout never started. Missing rows are not an error.
	DeleteRedemption(ctx context.Context, id uint) error
	StatsByReferrer(ctx context.Context, referrerID uint) (entities.ReferralStats, error)
}
