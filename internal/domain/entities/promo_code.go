package entities

import (
	"strings"
	"time"
)

// PromoCode grants a free long-duration plan activation.
// MaxUses == 0 means unlimited.
type PromoCode struct {
	ID          uint
	Code        string
	PlanType    PlanType
	MaxUses     int
	CurrentUses int
	IsActive    bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// PromoCodeUsage is one row per professional: its existence means the
// professional already redeemed a promo code, whichever it was.
type PromoCodeUsage struct {
	ID             uint
	PromoCodeID    uint
	ProfessionalID uint
	UsedAt         time.Time
}

type PromoCodeState string

const (
	PromoCodeUsable    PromoCodeState = "usable"
	PromoCodeInactive  PromoCodeState = "inactive"
	PromoCodeExpired   PromoCodeState = "expired"
	PromoCodeExhausted PromoCodeState = "exhausted"
)

// State evaluates the code at now. Expiry is strict: a code expiring at now is still usable.
func (c PromoCode) State(now time.Time) PromoCodeState {
	if !c.IsActive {
		return PromoCodeInactive
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return PromoCodeExpired
	}
	if c.MaxUses > 0 && c.CurrentUses >= c.MaxUses {
		return PromoCodeExhausted
	}
	return PromoCodeUsable
}

// NormalizePromoCode is the canonical lookup form (lowercase).
func NormalizePromoCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
