package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bokaboka_api/internal/adapter/http/handlers/mocks"
	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type professionalFixture struct {
	uc     *mocks.MockIProfessionalUseCase
	rating *mocks.MockIRatingAggregator
	router *gin.Engine
}

func newProfessionalFixture(t *testing.T) professionalFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := professionalFixture{
		uc:     mocks.NewMockIProfessionalUseCase(ctrl),
		rating: mocks.NewMockIRatingAggregator(ctrl),
		router: newTestRouter(),
	}
	h := NewProfessionalHandler(f.uc, f.rating)
	f.router.POST("/v1/professionals", authRequired(), h.Register)
	f.router.GET("/v1/professionals/:id", h.GetByID)
	f.router.GET("/v1/professionals/uid/:uid", h.GetByUID)
	f.router.PATCH("/v1/admin/professionals/:id/approve", h.Approve)
	f.router.PATCH("/v1/admin/professionals/:id/reject", h.Reject)
	f.router.POST("/v1/admin/professionals/:id/rating/recompute", h.RecomputeRating)
	return f
}

func TestProfessionalHandler_Register(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		f := newProfessionalFixture(t)
		w := doRequest(f.router, http.MethodPost, "/v1/professionals", `{"display_name":"Ana","category":"eletricista"}`, "")
		expectStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing required fields", func(t *testing.T) {
		f := newProfessionalFixture(t)
		w := doRequest(f.router, http.MethodPost, "/v1/professionals", `{"display_name":"Ana"}`, bearerFor(t, 0, 9))
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("mapped usecase errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrInvalidCoordinates:        http.StatusBadRequest,
			usecase.ErrInvalidPlanType:           http.StatusBadRequest,
			usecase.ErrProfessionalAlreadyExists: http.StatusConflict,
			errors.New("db down"):                http.StatusInternalServerError,
		}
		for err, want := range cases {
			f := newProfessionalFixture(t)
			f.uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Professional{}, err)
			w := doRequest(f.router, http.MethodPost, "/v1/professionals", `{"display_name":"Ana","category":"eletricista"}`, bearerFor(t, 0, 9))
			expectStatus(t, w, want)
		}
	})

	t.Run("created", func(t *testing.T) {
		f := newProfessionalFixture(t)
		trial := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		f.uc.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.RegisterProfessionalInput) (entities.Professional, error) {
				if in.DisplayName != "Ana" || in.Latitude == nil || *in.Latitude != -23.5 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Professional{ID: 7, UID: "u-7", DisplayName: "Ana", TrialEndsAt: &trial, VerificationStatus: entities.VerificationStatusPending}, nil
			})

		w := doRequest(f.router, http.MethodPost, "/v1/professionals",
			`{"display_name":"Ana","category":"eletricista","latitude":-23.5,"longitude":-46.6}`, bearerFor(t, 0, 9))

		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["id"] != float64(7) || body["verification_status"] != "pending" || body["trial_ends_at"] != "2026-03-15T12:00:00Z" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProfessionalHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newProfessionalFixture(t)
		expectStatus(t, doRequest(f.router, http.MethodGet, "/v1/professionals/abc", "", ""), http.StatusBadRequest)
		expectStatus(t, doRequest(f.router, http.MethodGet, "/v1/professionals/0", "", ""), http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.ProfessionalView{}, usecase.ErrProfessionalNotFound)
		expectStatus(t, doRequest(f.router, http.MethodGet, "/v1/professionals/3", "", ""), http.StatusNotFound)
	})

	t.Run("by id with active flag", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.ProfessionalView{
			Professional:     entities.Professional{ID: 3, Stars: 42},
			IsInActivePeriod: true,
		}, nil)

		w := doRequest(f.router, http.MethodGet, "/v1/professionals/3", "", "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["is_in_active_period"] != true || body["rating"] != 4.2 || body["distance"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("by uid", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().GetByUID(gomock.Any(), "abc-123").Return(entities.ProfessionalView{Professional: entities.Professional{ID: 3, UID: "abc-123"}}, nil)

		w := doRequest(f.router, http.MethodGet, "/v1/professionals/uid/abc-123", "", "")
		expectStatus(t, w, http.StatusOK)
		if decodeBody(t, w)["uid"] != "abc-123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProfessionalHandler_Moderation(t *testing.T) {
	t.Run("approve with badge", func(t *testing.T) {
		f := newProfessionalFixture(t)
		badge := entities.BadgeTrusted
		f.uc.EXPECT().Approve(gomock.Any(), uint(5), &badge).Return(entities.Professional{ID: 5, Badge: badge, VerificationStatus: entities.VerificationStatusApproved}, nil)

		w := doRequest(f.router, http.MethodPatch, "/v1/admin/professionals/5/approve", `{"badge":"trusted"}`, "")
		expectStatus(t, w, http.StatusOK)
		if decodeBody(t, w)["badge"] != "trusted" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("approve without body keeps the badge", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().Approve(gomock.Any(), uint(5), (*entities.Badge)(nil)).Return(entities.Professional{ID: 5}, nil)
		expectStatus(t, doRequest(f.router, http.MethodPatch, "/v1/admin/professionals/5/approve", "", ""), http.StatusOK)
	})

	t.Run("approve invalid badge", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().Approve(gomock.Any(), uint(5), gomock.Any()).Return(entities.Professional{}, usecase.ErrInvalidBadge)
		expectStatus(t, doRequest(f.router, http.MethodPatch, "/v1/admin/professionals/5/approve", `{"badge":"gold"}`, ""), http.StatusBadRequest)
	})

	t.Run("reject unknown", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.uc.EXPECT().Reject(gomock.Any(), uint(5)).Return(entities.Professional{}, usecase.ErrProfessionalNotFound)
		expectStatus(t, doRequest(f.router, http.MethodPatch, "/v1/admin/professionals/5/reject", "", ""), http.StatusNotFound)
	})

	t.Run("recompute rating", func(t *testing.T) {
		f := newProfessionalFixture(t)
		f.rating.EXPECT().Recompute(gomock.Any(), uint(5)).Return(entities.RatingAggregate{Stars: 45, ReviewCount: 2}, nil)

		w := doRequest(f.router, http.MethodPost, "/v1/admin/professionals/5/rating/recompute", "", "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["stars"] != float64(45) || body["rating"] != 4.5 || body["review_count"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
