package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"
	mock_interfaces "bokaboka_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func floatPtr(v float64) *float64 { return &v }

func TestProfessionalUseCase_Register(t *testing.T) {
	t.Run("missing display name", func(t *testing.T) {
		uc := NewProfessionalUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterProfessionalInput{Category: "Psicólogo"})
		if !errors.Is(err, ErrInvalidProfessionalInput) {
			t.Fatalf("expected ErrInvalidProfessionalInput, got %v", err)
		}
	})

	t.Run("half coordinates", func(t *testing.T) {
		uc := NewProfessionalUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterProfessionalInput{DisplayName: "Ana", Category: "Psicólogo", Latitude: floatPtr(-23.5)})
		if !errors.Is(err, ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc := NewProfessionalUseCase(nil)
		_, err := uc.Register(context.Background(), RegisterProfessionalInput{DisplayName: "Ana", Category: "Psicólogo", PlanType: "gold"})
		if !errors.Is(err, ErrInvalidPlanType) {
			t.Fatalf("expected ErrInvalidPlanType, got %v", err)
		}
	})

	t.Run("trial is five days from registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Professional) (entities.Professional, error) {
			if p.TrialEndsAt == nil || !p.TrialEndsAt.Equal(fixedNow.Add(5*24*time.Hour)) {
				t.Fatalf("unexpected trial end: %v", p.TrialEndsAt)
			}
			if p.VerificationStatus != entities.VerificationStatusPending || p.Badge != entities.BadgeNone || p.PlanType != entities.PlanTypeBase {
				t.Fatalf("unexpected defaults: %+v", p)
			}
			if p.UID == "" {
				t.Fatalf("uid must be generated")
			}
			p.ID = 10
			return p, nil
		})

		created, err := uc.Register(context.Background(), RegisterProfessionalInput{DisplayName: " Ana ", Category: "Psicólogo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 10 || created.DisplayName != "Ana" {
			t.Fatalf("unexpected professional: %+v", created)
		}
		if !created.IsInActivePeriod(fixedNow) || created.IsInActivePeriod(fixedNow.Add(5*24*time.Hour)) {
			t.Fatalf("trial window must cover registration and end strictly at +5 days")
		}
	})

	t.Run("duplicate uid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Professional{}, interfaces.ErrAlreadyExists)

		_, err := uc.Register(context.Background(), RegisterProfessionalInput{UID: "u-1", DisplayName: "Ana", Category: "Psicólogo"})
		if !errors.Is(err, ErrProfessionalAlreadyExists) {
			t.Fatalf("expected ErrProfessionalAlreadyExists, got %v", err)
		}
	})
}

func TestProfessionalUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProfessionalUseCase(nil)
		if _, err := uc.GetByID(context.Background(), 0); !errors.Is(err, ErrInvalidProfessionalID) {
			t.Fatalf("expected ErrInvalidProfessionalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Professional{}, nil)

		if _, err := uc.GetByID(context.Background(), 3); !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("annotates active period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)
		uc.now = fixedClock

		ends := fixedNow.Add(time.Hour)
		repo.EXPECT().GetByUID(gomock.Any(), "abc").Return(entities.Professional{ID: 3, SubscriptionEndsAt: &ends}, nil)

		view, err := uc.GetByUID(context.Background(), " abc ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.IsInActivePeriod {
			t.Fatalf("expected active period")
		}
	})
}

func TestProfessionalUseCase_Verification(t *testing.T) {
	t.Run("approve with badge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)

		badge := entities.BadgeVerified
		repo.EXPECT().UpdateVerification(gomock.Any(), uint(4), entities.VerificationStatusApproved, &badge).
			Return(entities.Professional{ID: 4, VerificationStatus: entities.VerificationStatusApproved, Badge: badge}, nil)

		p, err := uc.Approve(context.Background(), 4, &badge)
		if err != nil || p.VerificationStatus != entities.VerificationStatusApproved {
			t.Fatalf("unexpected result: %+v err=%v", p, err)
		}
	})

	t.Run("approve with unknown badge", func(t *testing.T) {
		uc := NewProfessionalUseCase(nil)
		badge := entities.Badge("gold")
		if _, err := uc.Approve(context.Background(), 4, &badge); !errors.Is(err, ErrInvalidBadge) {
			t.Fatalf("expected ErrInvalidBadge, got %v", err)
		}
	})

	t.Run("reject missing professional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewProfessionalUseCase(repo)

		repo.EXPECT().UpdateVerification(gomock.Any(), uint(9), entities.VerificationStatusRejected, nil).
			Return(entities.Professional{}, interfaces.ErrNotFound)

		if _, err := uc.Reject(context.Background(), 9); !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})
}
