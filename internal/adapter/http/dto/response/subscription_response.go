package response

import (
	"encoding/json"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"
)

type PromoCodeValidationResponse struct {
	Valid    bool   `json:"valid"`
	PlanType string `json:"plan_type,omitempty"`
	Message  string `json:"message"`
}

func FromPromoCodeValidation(v entities.PromoCodeValidation) PromoCodeValidationResponse {
	return PromoCodeValidationResponse{Valid: v.Valid, PlanType: string(v.PlanType), Message: v.Message}
}

type PromoActivationResponse struct {
	Success            bool      `json:"success"`
	PlanType           string    `json:"plan_type"`
	SubscriptionEndsAt time.Time `json:"subscription_ends_at"`
	Message            string    `json:"message"`
}

func FromPromoActivation(a usecase.PromoActivation) PromoActivationResponse {
	return PromoActivationResponse{Success: true, PlanType: string(a.PlanType), SubscriptionEndsAt: a.SubscriptionEndsAt, Message: a.Message}
}

type PromoCodeResponse struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	PlanType    string     `json:"plan_type"`
	MaxUses     int        `json:"max_uses"`
	CurrentUses int        `json:"current_uses"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromPromoCode(c entities.PromoCode) PromoCodeResponse {
	return PromoCodeResponse{
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

type ReferralCodeResponse struct {
	Code      string    `json:"code"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReferralCode(rc entities.ReferralCode) ReferralCodeResponse {
	return ReferralCodeResponse{Code: rc.Code, OwnerID: rc.OwnerID, CreatedAt: rc.CreatedAt}
}

type ReferralValidationResponse struct {
	Valid         bool   `json:"valid"`
	ReferrerID    uint   `json:"referrer_id,omitempty"`
	DiscountCents int64  `json:"discount_cents,omitempty"`
	Message       string `json:"message"`
}

func FromReferralValidation(v entities.ReferralValidation) ReferralValidationResponse {
	return ReferralValidationResponse{Valid: v.Valid, ReferrerID: v.ReferrerID, DiscountCents: v.DiscountCents, Message: v.Message}
}

type ReferralStatsResponse struct {
	TotalReferrals int64 `json:"total_referrals"`
	TotalSavings   int64 `json:"total_savings"`
}

func FromReferralStats(s entities.ReferralStats) ReferralStatsResponse {
	return ReferralStatsResponse{TotalReferrals: s.Count, TotalSavings: s.TotalSavings}
}

type CheckoutResponse struct {
	PreferenceID     string  `json:"preference_id"`
	InitPoint        string  `json:"init_point"`
	SandboxInitPoint string  `json:"sandbox_init_point"`
	PlanType         string  `json:"plan_type"`
	PriceCents       int64   `json:"price_cents"`
	DiscountCents    int64   `json:"discount_cents"`
	UnitPriceCents   int64   `json:"unit_price_cents"`
	UnitPrice        float64 `json:"unit_price"`
	ReferralApplied  bool    `json:"referral_applied"`
	ReferralMessage  string  `json:"referral_message,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		PreferenceID:     r.Preference.ID,
		InitPoint:        r.Preference.InitPoint,
		SandboxInitPoint: r.Preference.SandboxInitPoint,
		PlanType:         string(r.Plan.ID),
		PriceCents:       r.Plan.PriceCents,
		DiscountCents:    r.DiscountCents,
		UnitPriceCents:   r.UnitPriceCents,
		UnitPrice:        float64(r.UnitPriceCents) / 100,
		ReferralApplied:  r.ReferralApplied,
		ReferralMessage:  r.ReferralMessage,
	}
}

// PaymentStatusResponse is the live gateway view, not the local row.
type PaymentStatusResponse struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	StatusDetail      string     `json:"status_detail,omitempty"`
	LocalStatus       string     `json:"local_status,omitempty"`
	PaymentMethodID   string     `json:"payment_method_id,omitempty"`
	TransactionAmount float64    `json:"transaction_amount"`
	DateApproved      *time.Time `json:"date_approved"`
	ExternalReference string     `json:"external_reference,omitempty"`
}

func FromGatewayPayment(gp entities.GatewayPayment) PaymentStatusResponse {
	return PaymentStatusResponse{
		ID:                gp.ID,
		Status:            gp.Status,
		StatusDetail:      gp.StatusDetail,
		LocalStatus:       string(usecase.MapGatewayStatus(gp.Status)),
		PaymentMethodID:   gp.PaymentMethodID,
		TransactionAmount: gp.TransactionAmount,
		DateApproved:      gp.DateApproved,
		ExternalReference: gp.ExternalReference,
	}
}

type PaymentResponse struct {
	ID                    uint            `json:"id"`
	ProfessionalID        uint            `json:"professional_id"`
	Amount                int64           `json:"amount"`
	PlanType              string          `json:"plan_type"`
	PaymentMethod         string          `json:"payment_method"`
	PaymentStatus         string          `json:"payment_status"`
	TransactionID         string          `json:"transaction_id"`
	PaymentGateway        string          `json:"payment_gateway"`
	SubscriptionStartDate *time.Time      `json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time      `json:"subscription_end_date"`
	IsRecurring           bool            `json:"is_recurring"`
	NextBillingDate       *time.Time      `json:"next_billing_date"`
	GatewayPayload        json.RawMessage `json:"gateway_payload,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

func FromPayment(p entities.Payment, withPayload bool) PaymentResponse {
	out := PaymentResponse{
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
	if withPayload && len(p.GatewayPayload) > 0 && json.Valid(p.GatewayPayload) {
		out.GatewayPayload = p.GatewayPayload
	}
	return out
}

func FromPayments(payments []entities.Payment, withPayload bool) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p, withPayload))
	}
	return out
}

type WebhookAckResponse struct {
	Message string `json:"message"`
	Outcome string `json:"outcome"`
}

func FromWebhookOutcome(o usecase.WebhookOutcome) WebhookAckResponse {
	msg := "Webhook processed successfully"
	if o == usecase.WebhookOutcomeIgnored {
		msg = "Notification ignored"
	}
	return WebhookAckResponse{Message: msg, Outcome: string(o)}
}

type WebhookEventResponse struct {
	ID            string          `json:"id"`
	PaymentID     string          `json:"payment_id"`
	Type          string          `json:"type"`
	GatewayStatus string          `json:"gateway_status"`
	Outcome       string          `json:"outcome"`
	ReceivedAt    time.Time       `json:"received_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

func FromWebhookEvents(events []entities.WebhookEvent) []WebhookEventResponse {
	out := make([]WebhookEventResponse, 0, len(events))
	for _, e := range events {
		r := WebhookEventResponse{
			ID:            e.ID,
			PaymentID:     e.PaymentID,
			Type:          e.Type,
			GatewayStatus: e.GatewayStatus,
			Outcome:       e.Outcome,
			ReceivedAt:    e.ReceivedAt,
		}
		if len(e.Payload) > 0 && json.Valid(e.Payload) {
			r.Payload = e.Payload
		}
		out = append(out, r)
	}
	return out
}
