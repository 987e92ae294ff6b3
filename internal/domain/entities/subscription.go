package entities

import "time"

// SubscriptionGrant is the professional-side effect of an approved payment or
// a promo activation.
type SubscriptionGrant struct {
	ProfessionalID     uint
	PlanType           PlanType
	SubscriptionEndsAt time.Time
	// Approve also moves verification to approved (promo activations).
	Approve bool
}

// PaymentGrant returns the grant for one approved gateway payment at now.
func PaymentGrant(professionalID uint, plan PlanType, now time.Time) SubscriptionGrant {
	return SubscriptionGrant{
		ProfessionalID:     professionalID,
		PlanType:           plan,
		SubscriptionEndsAt: now.Add(SubscriptionPeriod),
	}
}

// PromoGrant returns the grant for a promo code activation at now.
func PromoGrant(professionalID uint, plan PlanType, now time.Time) SubscriptionGrant {
	return SubscriptionGrant{
		ProfessionalID:     professionalID,
		PlanType:           plan,
		SubscriptionEndsAt: now.AddDate(PromoGrantYears, 0, 0),
		Approve:            true,
	}
}

// PromoCodeValidation is returned to the caller as-is; Valid=false is not an error.
type PromoCodeValidation struct {
	Valid    bool
	PlanType PlanType
	Message  string
}

// ReferralValidation describes whether a candidate may redeem a referral code.
type ReferralValidation struct {
	Valid         bool
	ReferrerID    uint
	DiscountCents int64
	Message       string
}
