package interfaces

import (
	"context"

	"bokaboka_api/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// GetPayment is the source of truth for status, amount and metadata; webhook
// bodies are never trusted for those fields.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.CheckoutPreference, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
}
