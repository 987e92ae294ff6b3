package entities

import (
	"strings"
	"time"
)

const (
	// ReferralDiscountCents is granted to the redeemer at checkout (R$ 10,00).
	ReferralDiscountCents int64 = 1000
	ReferralCodeLength          = 8
	// ReferralCodeAlphabet excludes the confusable I, O, 0 and 1.
	ReferralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ReferralCode is the single code a professional shares with others.
// Both OwnerID and Code are unique.
type ReferralCode struct {
	ID        uint
	OwnerID   uint
	Code      string
	CreatedAt time.Time
}

// ReferralRedemption records one completed use of a referral code.
// ReferredID is unique: a professional redeems at most one referral ever.
type ReferralRedemption struct {
	ID             uint
	ReferrerID     uint
	ReferredID     uint
	Code           string
	DiscountAmount int64
	CompletedAt    time.Time
}

// ReferralStats summarizes the redemptions credited to a referrer.
type ReferralStats struct {
	Count        int64
	TotalSavings int64
}

// NormalizeReferralCode is the canonical lookup form (uppercase).
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
