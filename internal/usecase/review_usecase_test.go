package usecase

import (
	"context"
	"errors"
	"testing"

	"bokaboka_api/internal/domain/entities"
	mock_interfaces "bokaboka_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReviewUseCase_Create(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		for _, rating := range []int{0, 6, -1} {
			_, _, err := uc.Create(context.Background(), CreateReviewInput{ProfessionalID: 1, Rating: rating})
			if !errors.Is(err, ErrInvalidReviewRating) {
				t.Fatalf("rating %d: expected ErrInvalidReviewRating, got %v", rating, err)
			}
		}
	})

	t.Run("unknown professional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		profs := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewReviewUseCase(reviews, profs)

		profs.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Professional{}, nil)

		_, _, err := uc.Create(context.Background(), CreateReviewInput{ProfessionalID: 1, Rating: 5})
		if !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("photo review weighs double and aggregate is recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		profs := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewReviewUseCase(reviews, profs)
		uc.now = fixedClock

		profs.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Professional{ID: 1, Stars: 50, ReviewCount: 1}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Review) (entities.Review, error) {
			if r.Weight != 2 || r.IsVerified || r.ConfirmationToken == "" {
				t.Fatalf("unexpected review: %+v", r)
			}
			r.ID = 2
			return r, nil
		})
		reviews.EXPECT().ListByProfessionalID(gomock.Any(), uint(1)).Return([]entities.Review{
			{ID: 1, Rating: 5, Weight: 1},
			{ID: 2, Rating: 3, Weight: 2},
		}, nil)
		profs.EXPECT().UpdateRating(gomock.Any(), uint(1), entities.RatingAggregate{Stars: 37, ReviewCount: 2}).Return(nil)

		created, agg, err := uc.Create(context.Background(), CreateReviewInput{ProfessionalID: 1, Rating: 3, ServicePhotoURL: "https://cdn/x.jpg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 2 || agg.Stars != 37 || agg.ReviewCount != 2 {
			t.Fatalf("unexpected result: %+v %+v", created, agg)
		}
	})

	t.Run("aggregate write failure keeps review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		profs := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewReviewUseCase(reviews, profs)

		profs.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Professional{ID: 1, Stars: 40, ReviewCount: 3}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{ID: 8, ProfessionalID: 1, Rating: 4, Weight: 1}, nil)
		reviews.EXPECT().ListByProfessionalID(gomock.Any(), uint(1)).Return([]entities.Review{{Rating: 4, Weight: 1}}, nil)
		profs.EXPECT().UpdateRating(gomock.Any(), uint(1), gomock.Any()).Return(errors.New("db down"))

		created, agg, err := uc.Create(context.Background(), CreateReviewInput{ProfessionalID: 1, Rating: 4})
		if err != nil {
			t.Fatalf("review creation must succeed, got %v", err)
		}
		if created.ID != 8 || agg.Stars != 40 || agg.ReviewCount != 3 {
			t.Fatalf("expected stale aggregate, got %+v %+v", created, agg)
		}
	})
}

func TestReviewUseCase_Recompute(t *testing.T) {
	t.Run("zero reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		profs := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewReviewUseCase(reviews, profs)

		reviews.EXPECT().ListByProfessionalID(gomock.Any(), uint(5)).Return(nil, nil)
		profs.EXPECT().UpdateRating(gomock.Any(), uint(5), entities.RatingAggregate{}).Return(nil)

		agg, err := uc.Recompute(context.Background(), 5)
		if err != nil || agg != (entities.RatingAggregate{}) {
			t.Fatalf("unexpected result: %+v err=%v", agg, err)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(reviews, nil)

		reviews.EXPECT().ListByProfessionalID(gomock.Any(), uint(5)).Return(nil, errors.New("db"))

		if _, err := uc.Recompute(context.Background(), 5); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
