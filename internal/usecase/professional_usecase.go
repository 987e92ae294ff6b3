package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound      = errors.New("professional not found")
	ErrProfessionalAlreadyExists = errors.New("professional already exists")
	ErrInvalidProfessionalID     = errors.New("invalid professional id")
	ErrInvalidProfessionalInput  = errors.New("invalid professional input")
	ErrInvalidCoordinates        = errors.New("invalid coordinates")
	ErrInvalidBadge              = errors.New("invalid badge")
)

// RegisterProfessionalInput carries the presentation fields of a new listing.
type RegisterProfessionalInput struct {
	UID             string
	DisplayName     string
	Category        string
	City            string
	Latitude        *float64
	Longitude       *float64
	Phone           string
	WhatsApp        string
	Email           string
	Bio             string
	PhotoURL        string
	InstagramHandle string
	PlanType        string
}

// IProfessionalUseCase covers the listing lifecycle outside of payments:
// registration with a trial window, profile reads and admin moderation.
type IProfessionalUseCase interface {
	Register(ctx context.Context, in RegisterProfessionalInput) (entities.Professional, error)
	GetByID(ctx context.Context, id uint) (entities.ProfessionalView, error)
	GetByUID(ctx context.Context, uid string) (entities.ProfessionalView, error)
	Approve(ctx context.Context, id uint, badge *entities.Badge) (entities.Professional, error)
	Reject(ctx context.Context, id uint) (entities.Professional, error)
}

type ProfessionalUseCase struct {
	repo interfaces.IProfessionalRepository
	now  func() time.Time
}

var _ IProfessionalUseCase = (*ProfessionalUseCase)(nil)

func NewProfessionalUseCase(repo interfaces.IProfessionalRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{repo: repo, now: utcNow}
}

func (u *ProfessionalUseCase) Register(ctx context.Context, in RegisterProfessionalInput) (entities.Professional, error) {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Category = strings.TrimSpace(in.Category)
	if in.DisplayName == "" || in.Category == "" {
		return entities.Professional{}, ErrInvalidProfessionalInput
	}
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return entities.Professional{}, err
	}

	plan := entities.PlanTypeBase
	if strings.TrimSpace(in.PlanType) != "" {
		parsed, ok := entities.ParsePlanType(in.PlanType)
		if !ok {
			return entities.Professional{}, ErrInvalidPlanType
		}
		plan = parsed
	}

	uid := strings.TrimSpace(in.UID)
	if uid == "" {
		uid = uuid.NewString()
	}

	now := u.now()
	trialEndsAt := now.Add(entities.TrialPeriod)
	p := entities.Professional{
		UID:                uid,
		DisplayName:        in.DisplayName,
		Category:           in.Category,
		City:               strings.TrimSpace(in.City),
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		Phone:              strings.TrimSpace(in.Phone),
		WhatsApp:           strings.TrimSpace(in.WhatsApp),
		Email:              strings.TrimSpace(in.Email),
		Bio:                strings.TrimSpace(in.Bio),
		PhotoURL:           strings.TrimSpace(in.PhotoURL),
		InstagramHandle:    strings.TrimSpace(in.InstagramHandle),
		Badge:              entities.BadgeNone,
		PlanType:           plan,
		VerificationStatus: entities.VerificationStatusPending,
		TrialEndsAt:        &trialEndsAt,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Professional{}, ErrProfessionalAlreadyExists
		}
		log.Printf("[professional][usecase] create failed uid=%s err=%v", uid, err)
		return entities.Professional{}, err
	}
	log.Printf("[professional][usecase] registered id=%d uid=%s trial_ends_at=%s", created.ID, created.UID, trialEndsAt.Format(time.RFC3339))
	return created, nil
}

func (u *ProfessionalUseCase) GetByID(ctx context.Context, id uint) (entities.ProfessionalView, error) {
	if id == 0 {
		return entities.ProfessionalView{}, ErrInvalidProfessionalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProfessionalView{}, err
	}
	if p.ID == 0 {
		return entities.ProfessionalView{}, ErrProfessionalNotFound
	}
	return entities.ProfessionalView{Professional: p, IsInActivePeriod: p.IsInActivePeriod(u.now())}, nil
}

func (u *ProfessionalUseCase) GetByUID(ctx context.Context, uid string) (entities.ProfessionalView, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.ProfessionalView{}, ErrInvalidProfessionalID
	}
	p, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		return entities.ProfessionalView{}, err
	}
	if p.ID == 0 {
		return entities.ProfessionalView{}, ErrProfessionalNotFound
	}
	return entities.ProfessionalView{Professional: p, IsInActivePeriod: p.IsInActivePeriod(u.now())}, nil
}

func (u *ProfessionalUseCase) Approve(ctx context.Context, id uint, badge *entities.Badge) (entities.Professional, error) {
	if badge != nil && !badge.Valid() {
		return entities.Professional{}, ErrInvalidBadge
	}
	return u.setVerification(ctx, id, entities.VerificationStatusApproved, badge)
}

func (u *ProfessionalUseCase) Reject(ctx context.Context, id uint) (entities.Professional, error) {
	return u.setVerification(ctx, id, entities.VerificationStatusRejected, nil)
}

func (u *ProfessionalUseCase) setVerification(ctx context.Context, id uint, status entities.VerificationStatus, badge *entities.Badge) (entities.Professional, error) {
	if id == 0 {
		return entities.Professional{}, ErrInvalidProfessionalID
	}
	updated, err := u.repo.UpdateVerification(ctx, id, status, badge)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.Professional{}, ErrProfessionalNotFound
		}
		log.Printf("[professional][usecase] verification update failed id=%d status=%s err=%v", id, status, err)
		return entities.Professional{}, err
	}
	log.Printf("[professional][usecase] verification updated id=%d status=%s badge=%s", id, updated.VerificationStatus, updated.Badge)
	return updated, nil
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return ErrInvalidCoordinates
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
