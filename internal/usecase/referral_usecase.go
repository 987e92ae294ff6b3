package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"
)

// MaxReferralCodeAttempts bounds code regeneration on collision.
const MaxReferralCodeAttempts = 10

var (
	ErrInvalidReferralCode       = errors.New("invalid referral code")
	ErrReferralCodeNotFound      = errors.New("referral code not found")
	ErrSelfReferral              = errors.New("self referral")
	ErrReferralAlreadyRedeemed   = errors.New("referral already redeemed")
	ErrReferralCodeGenerationMax = errors.New("could not generate a unique referral code")
)

const (
	MsgReferralInvalid  = "Código de indicação inválido"
	MsgReferralSelf     = "Você não pode usar seu próprio código"
	MsgReferralRedeemed = "Você já usou um código de indicação anteriormente"
	MsgReferralValid    = "Código válido! Você e o indicador ganharão R$ 10,00 de desconto"
)

// IReferralUseCase manages per-professional referral codes and their
// one-per-redeemer discount.
//
// Apply only records eligibility; the discount itself is applied to the
// checkout price. Revoke undoes an Apply whose checkout could not be created.
type IReferralUseCase interface {
	GetOrCreateCode(ctx context.Context, ownerID uint) (entities.ReferralCode, error)
	Validate(ctx context.Context, code string, candidateID uint) (entities.ReferralValidation, error)
	Apply(ctx context.Context, code string, referredID uint) (entities.ReferralRedemption, error)
	Revoke(ctx context.Context, r entities.ReferralRedemption) error
	Stats(ctx context.Context, referrerID uint) (entities.ReferralStats, error)
}

type ReferralUseCase struct {
	repo     interfaces.IReferralRepository
	generate func() (string, error)
	now      func() time.Time
}

var _ IReferralUseCase = (*ReferralUseCase)(nil)

func NewReferralUseCase(repo interfaces.IReferralRepository) *ReferralUseCase {
	return &ReferralUseCase{repo: repo, generate: generateReferralCode, now: utcNow}
}

func (u *ReferralUseCase) GetOrCreateCode(ctx context.Context, ownerID uint) (entities.ReferralCode, error) {
	if ownerID == 0 {
		return entities.ReferralCode{}, ErrInvalidProfessionalID
	}
	existing, err := u.repo.GetCodeByOwner(ctx, ownerID)
	if err != nil {
		return entities.ReferralCode{}, err
	}
	if existing.ID != 0 {
		return existing, nil
	}

	for attempt := 1; attempt <= MaxReferralCodeAttempts; attempt++ {
		code, err := u.generate()
		if err != nil {
			return entities.ReferralCode{}, err
		}
		created, err := u.repo.CreateCode(ctx, entities.ReferralCode{OwnerID: ownerID, Code: code, CreatedAt: u.now()})
		if err == nil {
			log.Printf("[referral][usecase] code created owner_id=%d code=%s attempt=%d", ownerID, created.Code, attempt)
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.ReferralCode{}, err
		}
		// Either the code collided or a concurrent request created the owner's code.
		if raced, rErr := u.repo.GetCodeByOwner(ctx, ownerID); rErr == nil && raced.ID != 0 {
			return raced, nil
		}
		log.Printf("[referral][usecase] code collision owner_id=%d attempt=%d", ownerID, attempt)
	}
	log.Printf("[referral][usecase] code generation exhausted owner_id=%d attempts=%d", ownerID, MaxReferralCodeAttempts)
	return entities.ReferralCode{}, fmt.Errorf("%w after %d attempts", ErrReferralCodeGenerationMax, MaxReferralCodeAttempts)
}

func (u *ReferralUseCase) Validate(ctx context.Context, code string, candidateID uint) (entities.ReferralValidation, error) {
	rc, err := u.check(ctx, code, candidateID)
	if err != nil {
		if msg, ok := ReferralMessage(err); ok {
			return entities.ReferralValidation{Valid: false, Message: msg}, nil
		}
		return entities.ReferralValidation{}, err
	}
	return entities.ReferralValidation{
		Valid:         true,
		ReferrerID:    rc.OwnerID,
		DiscountCents: entities.ReferralDiscountCents,
		Message:       MsgReferralValid,
	}, nil
}

func (u *ReferralUseCase) Apply(ctx context.Context, code string, referredID uint) (entities.ReferralRedemption, error) {
	rc, err := u.check(ctx, code, referredID)
	if err != nil {
		return entities.ReferralRedemption{}, err
	}
	created, err := u.repo.CreateRedemption(ctx, entities.ReferralRedemption{
		ReferrerID:     rc.OwnerID,
		ReferredID:     referredID,
		Code:           rc.Code,
		DiscountAmount: entities.ReferralDiscountCents,
		CompletedAt:    u.now(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.ReferralRedemption{}, ErrReferralAlreadyRedeemed
		}
		log.Printf("[referral][usecase] redemption failed code=%s referred_id=%d err=%v", rc.Code, referredID, err)
		return entities.ReferralRedemption{}, err
	}
	log.Printf("[referral][usecase] redeemed code=%s referrer_id=%d referred_id=%d discount=%d", created.Code, created.ReferrerID, created.ReferredID, created.DiscountAmount)
	return created, nil
}

func (u *ReferralUseCase) Revoke(ctx context.Context, r entities.ReferralRedemption) error {
	if r.ID == 0 {
		return nil
	}
	if err := u.repo.DeleteRedemption(ctx, r.ID); err != nil {
		log.Printf("[referral][usecase] revoke failed id=%d referred_id=%d err=%v", r.ID, r.ReferredID, err)
		return err
	}
	log.Printf("[referral][usecase] revoked id=%d code=%s referrer_id=%d referred_id=%d", r.ID, r.Code, r.ReferrerID, r.ReferredID)
	return nil
}

func (u *ReferralUseCase) Stats(ctx context.Context, referrerID uint) (entities.ReferralStats, error) {
	if referrerID == 0 {
		return entities.ReferralStats{}, ErrInvalidProfessionalID
	}
	return u.repo.StatsByReferrer(ctx, referrerID)
}

func (u *ReferralUseCase) check(ctx context.Context, raw string, candidateID uint) (entities.ReferralCode, error) {
	if candidateID == 0 {
		return entities.ReferralCode{}, ErrInvalidProfessionalID
	}
	code := entities.NormalizeReferralCode(raw)
	if code == "" {
		return entities.ReferralCode{}, ErrInvalidReferralCode
	}
	rc, err := u.repo.GetCodeByCode(ctx, code)
	if err != nil {
		return entities.ReferralCode{}, err
	}
	if rc.ID == 0 {
		return entities.ReferralCode{}, ErrReferralCodeNotFound
	}
	if rc.OwnerID == candidateID {
		return entities.ReferralCode{}, ErrSelfReferral
	}
	redeemed, err := u.repo.HasRedemption(ctx, candidateID)
	if err != nil {
		return entities.ReferralCode{}, err
	}
	if redeemed {
		return entities.ReferralCode{}, ErrReferralAlreadyRedeemed
	}
	return rc, nil
}

// ReferralMessage maps validation errors to their pt-BR message. ok is false
// for infrastructure errors.
func ReferralMessage(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, ErrInvalidReferralCode), errors.Is(err, ErrReferralCodeNotFound):
		return MsgReferralInvalid, true
	case errors.Is(err, ErrSelfReferral):
		return MsgReferralSelf, true
	case errors.Is(err, ErrReferralAlreadyRedeemed):
		return MsgReferralRedeemed, true
	}
	return "", false
}

func generateReferralCode() (string, error) {
	alphabet := entities.ReferralCodeAlphabet
	size := big.NewInt(int64(len(alphabet)))
	b := make([]byte, entities.ReferralCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
