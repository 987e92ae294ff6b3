package entities

import (
	"encoding/json"
	"time"
)

// WebhookNotification is the inbound gateway body: {"type": "...", "data": {"id": "..."}}.
// Its fields are only used to locate the payment; amount and status are always
// re-fetched from the gateway.
type WebhookNotification struct {
	Type   string
	DataID string
}

const WebhookTypePayment = "payment"

// Gateway payment statuses as reported by Mercado Pago.
const (
	GatewayStatusApproved    = "approved"
	GatewayStatusPending     = "pending"
	GatewayStatusInProcess   = "in_process"
	GatewayStatusRejected    = "rejected"
	GatewayStatusCancelled   = "cancelled"
	GatewayStatusRefunded    = "refunded"
	GatewayStatusChargedBack = "charged_back"
	GatewayStatusAuthorized  = "authorized"
	GatewayStatusInMediation = "in_mediation"
)

// GatewayPayment is the authoritative view of a payment fetched from the gateway.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	PaymentMethodID   string
	TransactionAmount float64
	DateApproved      *time.Time
	ExternalReference string
	Metadata          map[string]any
	Raw               json.RawMessage
}

// PreferenceRequest describes a hosted checkout for one plan.
type PreferenceRequest struct {
	ProfessionalID uint
	PayerName      string
	PayerEmail     string
	Plan           Plan
	DiscountCents  int64
}

// UnitPriceCents is the plan price minus the discount, never negative.
func (r PreferenceRequest) UnitPriceCents() int64 {
	if p := r.Plan.PriceCents - r.DiscountCents; p > 0 {
		return p
	}
	return 0
}

// CheckoutPreference is the hosted checkout returned by the gateway.
type CheckoutPreference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// WebhookEvent is the archived trace of one processed notification.
type WebhookEvent struct {
	ID            string
	PaymentID     string
	Type          string
	GatewayStatus string
	Outcome       string
	ReceivedAt    time.Time
	Payload       json.RawMessage
}
