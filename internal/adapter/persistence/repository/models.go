package repository

import (
	"encoding/json"
	"time"

	"bokaboka_api/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type professionalModel struct {
	ID                 uint     `gorm:"primaryKey"`
	UID                string   `gorm:"uniqueIndex;size:64;not null"`
	DisplayName        string   `gorm:"size:255;not null"`
	Category           string   `gorm:"size:120;index"`
	City               string   `gorm:"size:120;index"`
	Latitude           *float64 `gorm:"index:idx_professionals_geo"`
	Longitude          *float64 `gorm:"index:idx_professionals_geo"`
	Phone              string   `gorm:"size:32"`
	WhatsApp           string   `gorm:"size:32"`
	Email              string   `gorm:"size:255"`
	Bio                string   `gorm:"type:text"`
	PhotoURL           string   `gorm:"size:512"`
	InstagramHandle    string   `gorm:"size:120"`
	Stars              int      `gorm:"not null"`
	ReviewCount        int      `gorm:"not null"`
	Badge              string   `gorm:"size:20;not null"`
	PlanType           string   `gorm:"size:20;not null"`
	VerificationStatus string   `gorm:"size:20;not null;index"`
	TrialEndsAt        *time.Time
	SubscriptionEndsAt *time.Time
	IsActive           bool `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (professionalModel) TableName() string { return "professionals" }

type reviewModel struct {
	ID                   uint `gorm:"primaryKey"`
	ProfessionalID       uint `gorm:"not null;index"`
	UserID               *uint
	Rating               int    `gorm:"not null"`
	Weight               int    `gorm:"not null"`
	Comment              string `gorm:"type:text"`
	AudioURL             string `gorm:"size:512"`
	Emoji                string `gorm:"size:16"`
	ServicePhotoURL      string `gorm:"size:512"`
	VerificationPhotoURL string `gorm:"size:512"`
	ConfirmationToken    string `gorm:"size:64;index"`
	IsVerified           bool   `gorm:"not null"`
	CreatedAt            time.Time
}

func (reviewModel) TableName() string { return "reviews" }

type paymentModel struct {
	ID                    uint   `gorm:"primaryKey"`
	ProfessionalID        uint   `gorm:"not null;index"`
	Amount                int64  `gorm:"not null"`
	PlanType              string `gorm:"size:20;not null"`
	PaymentMethod         string `gorm:"size:50"`
	PaymentStatus         string `gorm:"size:20;not null"`
	TransactionID         string `gorm:"uniqueIndex;size:64;not null"`
	PaymentGateway        string `gorm:"size:30;not null"`
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
	IsRecurring           bool `gorm:"not null"`
	NextBillingDate       *time.Time
	GatewayPayload        datatypes.JSON
	CreatedAt             time.Time `gorm:"index"`
}

func (paymentModel) TableName() string { return "payments" }

type promoCodeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;size:64;not null"`
	PlanType    string `gorm:"size:20;not null"`
	MaxUses     int    `gorm:"not null"`
	CurrentUses int    `gorm:"not null"`
	IsActive    bool   `gorm:"not null"`
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

func (promoCodeModel) TableName() string { return "promo_codes" }

// One row per professional: the unique index is what makes a second redemption fail.
type promoCodeUsageModel struct {
	ID             uint `gorm:"primaryKey"`
	PromoCodeID    uint `gorm:"not null;index"`
	ProfessionalID uint `gorm:"uniqueIndex;not null"`
	UsedAt         time.Time
}

func (promoCodeUsageModel) TableName() string { return "promo_code_usages" }

type referralCodeModel struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"uniqueIndex;not null"`
	Code      string `gorm:"uniqueIndex;size:16;not null"`
	CreatedAt time.Time
}

func (referralCodeModel) TableName() string { return "referral_codes" }

type referralRedemptionModel struct {
	ID             uint   `gorm:"primaryKey"`
	ReferrerID     uint   `gorm:"not null;index"`
	ReferredID     uint   `gorm:"uniqueIndex;not null"`
	Code           string `gorm:"size:16;not null"`
	DiscountAmount int64  `gorm:"not null"`
	CompletedAt    time.Time
}

func (referralRedemptionModel) TableName() string { return "referral_redemptions" }

// AutoMigrate creates or updates every table owned by this service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&professionalModel{},
		&reviewModel{},
		&paymentModel{},
		&promoCodeModel{},
		&promoCodeUsageModel{},
		&referralCodeModel{},
		&referralRedemptionModel{},
	)
}

func toProfessionalModel(p entities.Professional) professionalModel {
	return professionalModel{
		ID:                 p.ID,
		UID:                p.UID,
		DisplayName:        p.DisplayName,
		Category:           p.Category,
		City:               p.City,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		Phone:              p.Phone,
		WhatsApp:           p.WhatsApp,
		Email:              p.Email,
		Bio:                p.Bio,
		PhotoURL:           p.PhotoURL,
		InstagramHandle:    p.InstagramHandle,
		Stars:              p.Stars,
		ReviewCount:        p.ReviewCount,
		Badge:              string(p.Badge),
		PlanType:           string(p.PlanType),
		VerificationStatus: string(p.VerificationStatus),
		TrialEndsAt:        p.TrialEndsAt,
		SubscriptionEndsAt: p.SubscriptionEndsAt,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func fromProfessionalModel(m professionalModel) entities.Professional {
	return entities.Professional{
		ID:                 m.ID,
		UID:                m.UID,
		DisplayName:        m.DisplayName,
		Category:           m.Category,
		City:               m.City,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		Phone:              m.Phone,
		WhatsApp:           m.WhatsApp,
		Email:              m.Email,
		Bio:                m.Bio,
		PhotoURL:           m.PhotoURL,
		InstagramHandle:    m.InstagramHandle,
		Stars:              m.Stars,
		ReviewCount:        m.ReviewCount,
		Badge:              entities.Badge(m.Badge),
		PlanType:           entities.PlanType(m.PlanType),
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		TrialEndsAt:        utcPtr(m.TrialEndsAt),
		SubscriptionEndsAt: utcPtr(m.SubscriptionEndsAt),
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func toReviewModel(r entities.Review) reviewModel {
	return reviewModel{
		ID:                   r.ID,
		ProfessionalID:       r.ProfessionalID,
		UserID:               r.UserID,
		Rating:               r.Rating,
		Weight:               r.Weight,
		Comment:              r.Comment,
		AudioURL:             r.AudioURL,
		Emoji:                r.Emoji,
		ServicePhotoURL:      r.ServicePhotoURL,
		VerificationPhotoURL: r.VerificationPhotoURL,
		ConfirmationToken:    r.ConfirmationToken,
		IsVerified:           r.IsVerified,
		CreatedAt:            r.CreatedAt,
	}
}

func fromReviewModel(m reviewModel) entities.Review {
	return entities.Review{
		ID:                   m.ID,
		ProfessionalID:       m.ProfessionalID,
		UserID:               m.UserID,
		Rating:               m.Rating,
		Weight:               m.Weight,
		Comment:              m.Comment,
		AudioURL:             m.AudioURL,
		Emoji:                m.Emoji,
		ServicePhotoURL:      m.ServicePhotoURL,
		VerificationPhotoURL: m.VerificationPhotoURL,
		ConfirmationToken:    m.ConfirmationToken,
		IsVerified:           m.IsVerified,
		CreatedAt:            m.CreatedAt.UTC(),
	}
}

func toPaymentModel(p entities.Payment) paymentModel {
	m := paymentModel{
		ID:                    p.ID,
		ProfessionalID:        p.ProfessionalID,
		Amount:                p.Amount,
		PlanType:              string(p.PlanType),
		PaymentMethod:         p.PaymentMethod,
		PaymentStatus:         string(p.PaymentStatus),
		TransactionID:         p.TransactionID,
		PaymentGateway:        p.PaymentGateway,
		SubscriptionStartDate: p.SubscriptionStartDate,
		SubscriptionEndDate:   p.SubscriptionEndDate,
		IsRecurring:           p.IsRecurring,
		NextBillingDate:       p.NextBillingDate,
		CreatedAt:             p.CreatedAt,
	}
	if len(p.GatewayPayload) > 0 {
		m.GatewayPayload = datatypes.JSON(p.GatewayPayload)
	}
	return m
}

func fromPaymentModel(m paymentModel) entities.Payment {
	p := entities.Payment{
		ID:                    m.ID,
		ProfessionalID:        m.ProfessionalID,
		Amount:                m.Amount,
		PlanType:              entities.PlanType(m.PlanType),
		PaymentMethod:         m.PaymentMethod,
		PaymentStatus:         entities.PaymentStatus(m.PaymentStatus),
		TransactionID:         m.TransactionID,
		PaymentGateway:        m.PaymentGateway,
		SubscriptionStartDate: utcPtr(m.SubscriptionStartDate),
		SubscriptionEndDate:   utcPtr(m.SubscriptionEndDate),
		IsRecurring:           m.IsRecurring,
		NextBillingDate:       utcPtr(m.NextBillingDate),
		CreatedAt:             m.CreatedAt.UTC(),
	}
	if len(m.GatewayPayload) > 0 {
		p.GatewayPayload = json.RawMessage(m.GatewayPayload)
	}
	return p
}

func toPromoCodeModel(c entities.PromoCode) promoCodeModel {
	return promoCodeModel{
		ID:          c.ID,
		Code:        c.Code,
		PlanType:    string(c.PlanType),
		MaxUses:     c.MaxUses,
		CurrentUses: c.CurrentUses,
		IsActive:    c.IsActive,
		ExpiresAt:   c.ExpiresAt,
		CreatedAt:   c.CreatedAt,
	}
}

func fromPromoCodeModel(m promoCodeModel) entities.PromoCode {
	return entities.PromoCode{
		ID:          m.ID,
		Code:        m.Code,
		PlanType:    entities.PlanType(m.PlanType),
		MaxUses:     m.MaxUses,
		CurrentUses: m.CurrentUses,
		IsActive:    m.IsActive,
		ExpiresAt:   utcPtr(m.ExpiresAt),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func fromReferralCodeModel(m referralCodeModel) entities.ReferralCode {
	return entities.ReferralCode{ID: m.ID, OwnerID: m.OwnerID, Code: m.Code, CreatedAt: m.CreatedAt.UTC()}
}

func fromReferralRedemptionModel(m referralRedemptionModel) entities.ReferralRedemption {
	return entities.ReferralRedemption{
		ID:             m.ID,
		ReferrerID:     m.ReferrerID,
		ReferredID:     m.ReferredID,
		Code:           m.Code,
		DiscountAmount: m.DiscountAmount,
		CompletedAt:    m.CompletedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
