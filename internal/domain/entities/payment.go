package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the local lifecycle of one gateway transaction.
//
// Only pending -> completed is driven today. Failed and refunded exist in the
// schema so refund handling can be added to the reconciler's transition table.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

const PaymentGatewayMercadoPago = "mercadopago"

// Payment is persisted by the webhook reconciler on first sight of a gateway
// transaction id. TransactionID is unique at the storage layer and is treated
// as the idempotency key for webhook redelivery.
//
// GatewayPayload keeps the authoritative gateway document for traceability.
type Payment struct {
	ID                    uint
	ProfessionalID        uint
	Amount                int64
	PlanType              PlanType
	PaymentMethod         string
	PaymentStatus         PaymentStatus
	TransactionID         string
	PaymentGateway        string
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
	IsRecurring           bool
	NextBillingDate       *time.Time
	GatewayPayload        json.RawMessage
	CreatedAt             time.Time
}
