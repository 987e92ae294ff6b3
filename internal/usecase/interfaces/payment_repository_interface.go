package interfaces

import (
	"context"

	"bokaboka_api/internal/domain/entities"
)

// IPaymentRepository persists gateway payments.
//
// RecordApproved inserts the payment and applies the grant in one transaction.
// It returns created=false, with no side effect, when a payment with the same
// transaction id already exists.
type IPaymentRepository interface {
	RecordApproved(ctx context.Context, p entities.Payment, grant entities.SubscriptionGrant) (created bool, err error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error)
	ListByProfessionalID(ctx context.Context, professionalID uint, limit int) ([]entities.Payment, error)
	List(ctx context.Context, limit, offset int) ([]entities.Payment, error)
}

// IWebhookEventRepository archives processed gateway notifications.
type IWebhookEventRepository interface {
	Save(ctx context.Context, e entities.WebhookEvent) error
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookEvent, error)
}
