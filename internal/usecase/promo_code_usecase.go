package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code")
	ErrPromoCodeNotFound      = errors.New("promo code not found")
	ErrPromoCodeInactive      = errors.New("promo code inactive")
	ErrPromoCodeExpired       = errors.New("promo code expired")
	ErrPromoCodeExhausted     = errors.New("promo code exhausted")
	ErrPromoCodeAlreadyUsed   = errors.New("already used a promo code")
	ErrPromoCodeAlreadyExists = errors.New("promo code already exists")
)

// User-facing messages (pt-BR).
const (
	MsgPromoCodeInvalid   = "Código inválido"
	MsgPromoCodeInactive  = "Código desativado"
	MsgPromoCodeExpired   = "Código expirado"
	MsgPromoCodeExhausted = "Código esgotado"
	MsgPromoCodeValid     = "Código válido!"
	MsgPromoCodeUsed      = "Você já utilizou um código promocional"
	MsgPromoCodeActivated = "Plano ativado com sucesso!"
)

type PromoActivation struct {
	PlanType           entities.PlanType
	SubscriptionEndsAt time.Time
	Message            string
}

type CreatePromoCodeInput struct {
	Code      string
	PlanType  string
	MaxUses   int
	ExpiresAt *time.Time
}

// IPromoCodeUseCase grants free plan activations.
//
// A professional redeems at most one promo code ever; the storage layer
// enforces it, so concurrent activations cannot both succeed.
type IPromoCodeUseCase interface {
	Validate(ctx context.Context, code string) (entities.PromoCodeValidation, error)
	Activate(ctx context.Context, professionalID uint, code string) (PromoActivation, error)
	Create(ctx context.Context, in CreatePromoCodeInput) (entities.PromoCode, error)
}

type PromoCodeUseCase struct {
	codes         interfaces.IPromoCodeRepository
	professionals interfaces.IProfessionalRepository
	now           func() time.Time
}

var _ IPromoCodeUseCase = (*PromoCodeUseCase)(nil)

func NewPromoCodeUseCase(codes interfaces.IPromoCodeRepository, professionals interfaces.IProfessionalRepository) *PromoCodeUseCase {
	return &PromoCodeUseCase{codes: codes, professionals: professionals, now: utcNow}
}

func (u *PromoCodeUseCase) Validate(ctx context.Context, code string) (entities.PromoCodeValidation, error) {
	pc, err := u.lookup(ctx, code)
	if err != nil {
		if errors.Is(err, ErrInvalidPromoCode) || errors.Is(err, ErrPromoCodeNotFound) {
			return entities.PromoCodeValidation{Valid: false, Message: MsgPromoCodeInvalid}, nil
		}
		return entities.PromoCodeValidation{}, err
	}
	if err := stateError(pc.State(u.now())); err != nil {
		return entities.PromoCodeValidation{Valid: false, Message: PromoCodeMessage(err)}, nil
	}
	return entities.PromoCodeValidation{Valid: true, PlanType: pc.PlanType, Message: MsgPromoCodeValid}, nil
}

func (u *PromoCodeUseCase) Activate(ctx context.Context, professionalID uint, code string) (PromoActivation, error) {
	if professionalID == 0 {
		return PromoActivation{}, ErrInvalidProfessionalID
	}
	pc, err := u.lookup(ctx, code)
	if err != nil {
		return PromoActivation{}, err
	}
	now := u.now()
	if err := stateError(pc.State(now)); err != nil {
		log.Printf("[promo][usecase] activation refused code=%s professional_id=%d err=%v", pc.Code, professionalID, err)
		return PromoActivation{}, err
	}

	prof, err := u.professionals.GetByID(ctx, professionalID)
	if err != nil {
		return PromoActivation{}, err
	}
	if prof.ID == 0 {
		return PromoActivation{}, ErrProfessionalNotFound
	}

	grant := entities.PromoGrant(professionalID, pc.PlanType, now)
	if err := u.codes.Redeem(ctx, pc.ID, grant, now); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrAlreadyExists):
			log.Printf("[promo][usecase] already redeemed professional_id=%d code=%s", professionalID, pc.Code)
			return PromoActivation{}, ErrPromoCodeAlreadyUsed
		case errors.Is(err, interfaces.ErrConditionFailed):
			log.Printf("[promo][usecase] exhausted during redeem professional_id=%d code=%s", professionalID, pc.Code)
			return PromoActivation{}, ErrPromoCodeExhausted
		case errors.Is(err, interfaces.ErrNotFound):
			return PromoActivation{}, ErrProfessionalNotFound
		}
		log.Printf("[promo][usecase] redeem failed professional_id=%d code=%s err=%v", professionalID, pc.Code, err)
		return PromoActivation{}, err
	}

	log.Printf("[promo][usecase] activated professional_id=%d code=%s plan=%s subscription_ends_at=%s", professionalID, pc.Code, pc.PlanType, grant.SubscriptionEndsAt.Format(time.RFC3339))
	return PromoActivation{PlanType: pc.PlanType, SubscriptionEndsAt: grant.SubscriptionEndsAt, Message: MsgPromoCodeActivated}, nil
}

func (u *PromoCodeUseCase) Create(ctx context.Context, in CreatePromoCodeInput) (entities.PromoCode, error) {
	code := entities.NormalizePromoCode(in.Code)
	if code == "" || in.MaxUses < 0 {
		return entities.PromoCode{}, ErrInvalidPromoCode
	}
	plan, ok := entities.ParsePlanType(in.PlanType)
	if !ok {
		return entities.PromoCode{}, ErrInvalidPlanType
	}
	created, err := u.codes.Create(ctx, entities.PromoCode{
		Code:      code,
		PlanType:  plan,
		MaxUses:   in.MaxUses,
		IsActive:  true,
		ExpiresAt: in.ExpiresAt,
		CreatedAt: u.now(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.PromoCode{}, ErrPromoCodeAlreadyExists
		}
		return entities.PromoCode{}, err
	}
	log.Printf("[promo][usecase] created code=%s plan=%s max_uses=%d", created.Code, created.PlanType, created.MaxUses)
	return created, nil
}

func (u *PromoCodeUseCase) lookup(ctx context.Context, raw string) (entities.PromoCode, error) {
	code := entities.NormalizePromoCode(raw)
	if code == "" {
		return entities.PromoCode{}, ErrInvalidPromoCode
	}
	pc, err := u.codes.GetByCode(ctx, code)
	if err != nil {
		log.Printf("[promo][usecase] lookup failed code=%s err=%v", code, err)
		return entities.PromoCode{}, err
	}
	if pc.ID == 0 {
		return entities.PromoCode{}, ErrPromoCodeNotFound
	}
	return pc, nil
}

func stateError(s entities.PromoCodeState) error {
	switch s {
	case entities.PromoCodeInactive:
		return ErrPromoCodeInactive
	case entities.PromoCodeExpired:
		return ErrPromoCodeExpired
	case entities.PromoCodeExhausted:
		return ErrPromoCodeExhausted
	}
	return nil
}

// PromoCodeMessage is the pt-BR message shown for a promo code error.
func PromoCodeMessage(err error) string {
	switch {
	case errors.Is(err, ErrPromoCodeInactive):
		return MsgPromoCodeInactive
	case errors.Is(err, ErrPromoCodeExpired):
		return MsgPromoCodeExpired
	case errors.Is(err, ErrPromoCodeExhausted):
		return MsgPromoCodeExhausted
	case errors.Is(err, ErrPromoCodeAlreadyUsed):
		return MsgPromoCodeUsed
	}
	return MsgPromoCodeInvalid
}
