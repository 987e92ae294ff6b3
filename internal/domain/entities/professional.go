package entities

import "time"

// TrialPeriod is granted to every professional at registration.
const TrialPeriod = 5 * 24 * time.Hour

type Badge string

const (
	BadgeNone     Badge = "none"
	BadgeVerified Badge = "verified"
	BadgeTrusted  Badge = "trusted"
)

func (b Badge) Valid() bool {
	switch b {
	case BadgeNone, BadgeVerified, BadgeTrusted:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Professional is a service provider listed in the directory.
//
// Visibility is decided by two independent mechanisms:
//   - IsActive is maintained by the payment/promo flows and the admin.
//   - TrialEndsAt / SubscriptionEndsAt windows gate contact actions, see IsInActivePeriod.
//
// Stars is the weighted review average times ten (0..50), kept current by the
// rating aggregator and never incremented in place.
type Professional struct {
	ID          uint
	UID         string
	DisplayName string
	Category    string
	City        string
	Latitude    *float64
	Longitude   *float64

	Phone           string
	WhatsApp        string
	Email           string
	Bio             string
	PhotoURL        string
	InstagramHandle string

	Stars       int
	ReviewCount int

	Badge              Badge
	PlanType           PlanType
	VerificationStatus VerificationStatus

	TrialEndsAt        *time.Time
	SubscriptionEndsAt *time.Time
	IsActive           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInActivePeriod reports whether the trial or the paid subscription window
// covers now. Both bounds are exclusive: at exactly TrialEndsAt the trial is over.
//
// Callers rendering a list must pass the same now for every row.
func (p Professional) IsInActivePeriod(now time.Time) bool {
	if p.TrialEndsAt != nil && now.Before(*p.TrialEndsAt) {
		return true
	}
	if p.SubscriptionEndsAt != nil && now.Before(*p.SubscriptionEndsAt) {
		return true
	}
	return false
}

func (p Professional) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// IsSearchable mirrors the base search filter.
func (p Professional) IsSearchable() bool {
	return p.IsActive && p.VerificationStatus == VerificationStatusApproved
}
