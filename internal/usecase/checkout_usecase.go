package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"
)

const (
	defaultPayerEmail    = "contato@bokaboka.com"
	myPaymentsLimit      = 50
	defaultPaymentsLimit = 50
	maxPaymentsListLimit = 200
)

var (
	ErrInvalidPlanType             = errors.New("invalid plan type")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayPaymentNotFound      = errors.New("gateway payment not found")
)

type CheckoutInput struct {
	ProfessionalID uint
	PlanType       string
	ReferralCode   string
	PayerEmail     string
}

// CheckoutResult is the hosted checkout plus the pricing actually sent.
// ReferralMessage explains why a given referral code did not apply.
type CheckoutResult struct {
	Preference      entities.CheckoutPreference
	Plan            entities.Plan
	DiscountCents   int64
	UnitPriceCents  int64
	ReferralApplied bool
	ReferralMessage string
}

// ICheckoutUseCase starts paid subscriptions. Payments themselves are only
// persisted by the webhook reconciler.
type ICheckoutUseCase interface {
	Plans() []entities.Plan
	CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	PaymentStatus(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	ListByProfessional(ctx context.Context, professionalID uint) ([]entities.Payment, error)
	ListAll(ctx context.Context, limit, offset int) ([]entities.Payment, error)
}

type CheckoutUseCase struct {
	professionals interfaces.IProfessionalRepository
	payments      interfaces.IPaymentRepository
	referrals     IReferralUseCase
	gateway       interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(professionals interfaces.IProfessionalRepository, payments interfaces.IPaymentRepository, referrals IReferralUseCase, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{professionals: professionals, payments: payments, referrals: referrals, gateway: gateway}
}

func (u *CheckoutUseCase) Plans() []entities.Plan {
	return entities.Plans()
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] start professional_id=%d plan=%q referral=%t", in.ProfessionalID, in.PlanType, strings.TrimSpace(in.ReferralCode) != "")
	if in.ProfessionalID == 0 {
		return CheckoutResult{}, ErrInvalidProfessionalID
	}
	planType, ok := entities.ParsePlanType(in.PlanType)
	if !ok {
		return CheckoutResult{}, ErrInvalidPlanType
	}
	plan, _ := entities.PlanByType(planType)
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured professional_id=%d", in.ProfessionalID)
		return CheckoutResult{}, ErrPaymentGatewayNotConfigured
	}

	prof, err := u.professionals.GetByID(ctx, in.ProfessionalID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if prof.ID == 0 {
		return CheckoutResult{}, ErrProfessionalNotFound
	}

	result := CheckoutResult{Plan: plan}
	var redemption entities.ReferralRedemption
	if code := strings.TrimSpace(in.ReferralCode); code != "" && u.referrals != nil {
		applied, err := u.referrals.Apply(ctx, code, prof.ID)
		if err != nil {
			msg, validation := ReferralMessage(err)
			if !validation {
				log.Printf("[checkout][usecase] referral apply failed professional_id=%d err=%v", prof.ID, err)
				return CheckoutResult{}, err
			}
			// Checkout proceeds at full price.
			log.Printf("[checkout][usecase] referral not applied professional_id=%d reason=%v", prof.ID, err)
			result.ReferralMessage = msg
		} else {
			redemption = applied
			result.DiscountCents = redemption.DiscountAmount
			result.ReferralApplied = true
		}
	}

	payerEmail := firstNonEmpty(in.PayerEmail, prof.Email, defaultPayerEmail)
	req := entities.PreferenceRequest{
		ProfessionalID: prof.ID,
		PayerName:      prof.DisplayName,
		PayerEmail:     payerEmail,
		Plan:           plan,
		DiscountCents:  result.DiscountCents,
	}
	result.UnitPriceCents = req.UnitPriceCents()

	pref, err := u.gateway.CreatePreference(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] preference failed professional_id=%d plan=%s err=%v", prof.ID, plan.ID, err)
		if result.ReferralApplied {
			// The professional keeps the referral for the next attempt, even when
			// the request context is what failed the gateway call.
			if rErr := u.referrals.Revoke(context.WithoutCancel(ctx), redemption); rErr != nil {
				log.Printf("[checkout][usecase] referral revoke failed professional_id=%d redemption_id=%d err=%v", prof.ID, redemption.ID, rErr)
			}
		}
		return CheckoutResult{}, err
	}
	result.Preference = pref
	log.Printf("[checkout][usecase] preference created professional_id=%d plan=%s preference_id=%s unit_price=%d discount=%d", prof.ID, plan.ID, pref.ID, result.UnitPriceCents, result.DiscountCents)
	return result, nil
}

func (u *CheckoutUseCase) PaymentStatus(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.GatewayPayment{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.GatewayPayment{}, ErrPaymentGatewayNotConfigured
	}
	gp, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[checkout][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayPayment{}, err
	}
	if gp.ID == "" {
		return entities.GatewayPayment{}, ErrGatewayPaymentNotFound
	}
	return gp, nil
}

func (u *CheckoutUseCase) ListByProfessional(ctx context.Context, professionalID uint) ([]entities.Payment, error) {
	if professionalID == 0 {
		return nil, ErrInvalidProfessionalID
	}
	return u.payments.ListByProfessionalID(ctx, professionalID, myPaymentsLimit)
}

func (u *CheckoutUseCase) ListAll(ctx context.Context, limit, offset int) ([]entities.Payment, error) {
	if limit <= 0 {
		limit = defaultPaymentsLimit
	}
	if limit > maxPaymentsListLimit {
		limit = maxPaymentsListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return u.payments.List(ctx, limit, offset)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
