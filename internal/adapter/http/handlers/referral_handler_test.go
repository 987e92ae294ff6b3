package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bokaboka_api/internal/adapter/http/handlers/mocks"
	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReferralRouter(t *testing.T) (*mocks.MockIReferralUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIReferralUseCase(ctrl)
	h := NewReferralHandler(uc)
	r := newTestRouter()
	me := r.Group("/v1/referrals", authRequired())
	me.GET("/me/code", h.MyCode)
	me.GET("/me/stats", h.MyStats)
	me.GET("/:code/validate", h.Validate)
	return uc, r
}

func TestReferralHandler_MyCode(t *testing.T) {
	t.Run("created on first call", func(t *testing.T) {
		uc, r := newReferralRouter(t)
		uc.EXPECT().GetOrCreateCode(gomock.Any(), uint(4)).Return(entities.ReferralCode{ID: 1, OwnerID: 4, Code: "ABCD2345"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/referrals/me/code", "", bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		if decodeBody(t, w)["code"] != "ABCD2345" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("generation exhausted", func(t *testing.T) {
		uc, r := newReferralRouter(t)
		uc.EXPECT().GetOrCreateCode(gomock.Any(), uint(4)).Return(entities.ReferralCode{}, fmt.Errorf("%w after 10 attempts", usecase.ErrReferralCodeGenerationMax))
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/referrals/me/code", "", bearerFor(t, 4, 9)), http.StatusServiceUnavailable)
	})

	t.Run("no professional in token", func(t *testing.T) {
		_, r := newReferralRouter(t)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/referrals/me/code", "", bearerFor(t, 0, 9)), http.StatusForbidden)
	})
}

func TestReferralHandler_Validate(t *testing.T) {
	t.Run("self referral is a structured 200", func(t *testing.T) {
		uc, r := newReferralRouter(t)
		uc.EXPECT().Validate(gomock.Any(), "ABCD2345", uint(4)).Return(entities.ReferralValidation{Valid: false, Message: usecase.MsgReferralSelf}, nil)

		w := doRequest(r, http.MethodGet, "/v1/referrals/ABCD2345/validate", "", bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["valid"] != false || body["message"] != usecase.MsgReferralSelf {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("valid", func(t *testing.T) {
		uc, r := newReferralRouter(t)
		uc.EXPECT().Validate(gomock.Any(), "ABCD2345", uint(4)).Return(entities.ReferralValidation{Valid: true, ReferrerID: 2, DiscountCents: 1000, Message: usecase.MsgReferralValid}, nil)

		w := doRequest(r, http.MethodGet, "/v1/referrals/ABCD2345/validate", "", bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		if decodeBody(t, w)["discount_cents"] != float64(1000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc, r := newReferralRouter(t)
		uc.EXPECT().Validate(gomock.Any(), "ABCD2345", uint(4)).Return(entities.ReferralValidation{}, errors.New("db down"))
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/referrals/ABCD2345/validate", "", bearerFor(t, 4, 9)), http.StatusInternalServerError)
	})
}

func TestReferralHandler_MyStats(t *testing.T) {
	uc, r := newReferralRouter(t)
	uc.EXPECT().Stats(gomock.Any(), uint(4)).Return(entities.ReferralStats{Count: 3, TotalSavings: 3000}, nil)

	w := doRequest(r, http.MethodGet, "/v1/referrals/me/stats", "", bearerFor(t, 4, 9))
	expectStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["total_referrals"] != float64(3) || body["total_savings"] != float64(3000) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
