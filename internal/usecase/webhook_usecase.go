package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WebhookOutcome tells the gateway-facing handler what happened. Every outcome
// is acknowledged with 200; only returned errors make the gateway retry.
type WebhookOutcome string

const (
	WebhookOutcomeIgnored      WebhookOutcome = "ignored"
	WebhookOutcomeProcessed    WebhookOutcome = "processed"
	WebhookOutcomeDuplicate    WebhookOutcome = "duplicate"
	WebhookOutcomeNoTransition WebhookOutcome = "no_transition"
	WebhookOutcomeUnlinked     WebhookOutcome = "unlinked"
)

// IWebhookUseCase reconciles gateway notifications into local subscription state.
type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error)
	ListEvents(ctx context.Context, paymentID string) ([]entities.WebhookEvent, error)
}

// paymentTransition applies the local effect for one target status.
type paymentTransition func(ctx context.Context, gp entities.GatewayPayment) (WebhookOutcome, error)

type WebhookUseCase struct {
	professionals interfaces.IProfessionalRepository
	payments      interfaces.IPaymentRepository
	events        interfaces.IWebhookEventRepository
	gateway       interfaces.IPaymentGateway
	transitions   map[entities.PaymentStatus]paymentTransition
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase wires the reconciler. events may be nil: archiving is best effort.
func NewWebhookUseCase(professionals interfaces.IProfessionalRepository, payments interfaces.IPaymentRepository, events interfaces.IWebhookEventRepository, gateway interfaces.IPaymentGateway) *WebhookUseCase {
	u := &WebhookUseCase{
		professionals: professionals,
		payments:      payments,
		events:        events,
		gateway:       gateway,
		now:           utcNow,
	}
	// Failed and refunded have no handler yet; those notifications are acknowledged untouched.
	u.transitions = map[entities.PaymentStatus]paymentTransition{
		entities.PaymentStatusCompleted: u.completePayment,
	}
	return u
}

func (u *WebhookUseCase) HandleNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error) {
	log.Printf("[webhook][usecase] start type=%q data_id=%q", n.Type, n.DataID)
	if n.Type != entities.WebhookTypePayment {
		log.Printf("[webhook][usecase] ignored type=%q", n.Type)
		return WebhookOutcomeIgnored, nil
	}
	paymentID := strings.TrimSpace(n.DataID)
	if paymentID == "" {
		log.Printf("[webhook][usecase] ignored payment notification without data.id")
		return WebhookOutcomeIgnored, nil
	}
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}

	gp, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] gateway lookup failed payment_id=%s err=%v", paymentID, err)
		return "", err
	}

	status := MapGatewayStatus(gp.Status)
	transition, ok := u.transitions[status]
	outcome := WebhookOutcomeNoTransition
	if ok {
		outcome, err = transition(ctx, gp)
		if err != nil {
			log.Printf("[webhook][usecase] transition failed payment_id=%s status=%s err=%v", paymentID, status, err)
			return "", err
		}
	}
	log.Printf("[webhook][usecase] done payment_id=%s gateway_status=%s local_status=%s outcome=%s", paymentID, gp.Status, status, outcome)

	u.archive(ctx, n, gp, outcome)
	return outcome, nil
}

func (u *WebhookUseCase) completePayment(ctx context.Context, gp entities.GatewayPayment) (WebhookOutcome, error) {
	professionalID, ok := professionalIDFromGatewayPayment(gp)
	if !ok {
		log.Printf("[webhook][usecase] payment without professional reference payment_id=%s external_reference=%q", gp.ID, gp.ExternalReference)
		return WebhookOutcomeUnlinked, nil
	}
	prof, err := u.professionals.GetByID(ctx, professionalID)
	if err != nil {
		return "", err
	}
	if prof.ID == 0 {
		log.Printf("[webhook][usecase] unknown professional payment_id=%s professional_id=%d", gp.ID, professionalID)
		return WebhookOutcomeUnlinked, nil
	}

	planType := planTypeFromGatewayPayment(gp)
	plan, _ := entities.PlanByType(planType)
	now := u.now()
	grant := entities.PaymentGrant(professionalID, planType, now)
	start := now
	end := grant.SubscriptionEndsAt

	payment := entities.Payment{
		ProfessionalID:        professionalID,
		Amount:                plan.PriceCents,
		PlanType:              planType,
		PaymentMethod:         gp.PaymentMethodID,
		PaymentStatus:         entities.PaymentStatusCompleted,
		TransactionID:         gp.ID,
		PaymentGateway:        entities.PaymentGatewayMercadoPago,
		SubscriptionStartDate: &start,
		SubscriptionEndDate:   &end,
		IsRecurring:           true,
		NextBillingDate:       &end,
		GatewayPayload:        gp.Raw,
		CreatedAt:             now,
	}
	created, err := u.payments.RecordApproved(ctx, payment, grant)
	if err != nil {
		return "", err
	}
	if !created {
		log.Printf("[webhook][usecase] duplicate delivery payment_id=%s professional_id=%d", gp.ID, professionalID)
		return WebhookOutcomeDuplicate, nil
	}
	log.Printf("[webhook][usecase] subscription extended payment_id=%s professional_id=%d plan=%s amount=%d subscription_ends_at=%s", gp.ID, professionalID, planType, plan.PriceCents, end.Format(time.RFC3339))
	return WebhookOutcomeProcessed, nil
}

func (u *WebhookUseCase) ListEvents(ctx context.Context, paymentID string) ([]entities.WebhookEvent, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	if u.events == nil {
		return []entities.WebhookEvent{}, nil
	}
	return u.events.ListByPaymentID(ctx, paymentID)
}

func (u *WebhookUseCase) archive(ctx context.Context, n entities.WebhookNotification, gp entities.GatewayPayment, outcome WebhookOutcome) {
	if u.events == nil {
		return
	}
	ev := entities.WebhookEvent{
		ID:            uuid.NewString(),
		PaymentID:     gp.ID,
		Type:          n.Type,
		GatewayStatus: gp.Status,
		Outcome:       string(outcome),
		ReceivedAt:    u.now(),
		Payload:       gp.Raw,
	}
	if err := u.events.Save(ctx, ev); err != nil {
		log.Printf("[webhook][usecase] archive failed payment_id=%s err=%v", gp.ID, err)
	}
}

// MapGatewayStatus maps a Mercado Pago status to the local payment status.
// Unknown statuses map to the empty status, which has no transition.
func MapGatewayStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case entities.GatewayStatusApproved:
		return entities.PaymentStatusCompleted
	case entities.GatewayStatusPending, entities.GatewayStatusInProcess, entities.GatewayStatusAuthorized, entities.GatewayStatusInMediation:
		return entities.PaymentStatusPending
	case entities.GatewayStatusRejected, entities.GatewayStatusCancelled:
		return entities.PaymentStatusFailed
	case entities.GatewayStatusRefunded, entities.GatewayStatusChargedBack:
		return entities.PaymentStatusRefunded
	}
	return ""
}

func professionalIDFromGatewayPayment(gp entities.GatewayPayment) (uint, bool) {
	if id, ok := parseID(gp.ExternalReference); ok {
		return id, true
	}
	switch v := gp.Metadata["professional_id"].(type) {
	case string:
		return parseID(v)
	case json.Number:
		return parseID(v.String())
	case float64:
		if v > 0 && v == float64(uint(v)) {
			return uint(v), true
		}
	}
	return 0, false
}

func planTypeFromGatewayPayment(gp entities.GatewayPayment) entities.PlanType {
	if raw, ok := gp.Metadata["plan_type"].(string); ok {
		if pt, ok := entities.ParsePlanType(raw); ok {
			return pt
		}
	}
	return entities.PlanTypeBase
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
