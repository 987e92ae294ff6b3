package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"bokaboka_api/internal/adapter/http/handlers/mocks"
	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSubscriptionRouter(t *testing.T) (*mocks.MockICheckoutUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewSubscriptionHandler(uc)
	r := newTestRouter()
	r.GET("/v1/plans", h.Plans)
	subs := r.Group("/v1/subscriptions", authRequired())
	subs.POST("/checkout", h.Checkout)
	subs.GET("/payments/:payment_id/status", h.PaymentStatus)
	subs.GET("/me/payments", h.MyPayments)
	r.GET("/v1/admin/payments", h.AdminPayments)
	return uc, r
}

func TestSubscriptionHandler_Plans(t *testing.T) {
	uc, r := newSubscriptionRouter(t)
	uc.EXPECT().Plans().Return(entities.Plans())

	w := doRequest(r, http.MethodGet, "/v1/plans", "", "")
	expectStatus(t, w, http.StatusOK)
	list := decodeList(t, w)
	if len(list) != 2 || list[0]["id"] != "base" || list[1]["price_cents"] != float64(4990) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSubscriptionHandler_Checkout(t *testing.T) {
	t.Run("missing plan", func(t *testing.T) {
		_, r := newSubscriptionRouter(t)
		expectStatus(t, doRequest(r, http.MethodPost, "/v1/subscriptions/checkout", `{}`, bearerFor(t, 4, 9)), http.StatusBadRequest)
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrInvalidPlanType:             http.StatusBadRequest,
			usecase.ErrProfessionalNotFound:        http.StatusNotFound,
			usecase.ErrPaymentGatewayNotConfigured: http.StatusServiceUnavailable,
			errors.New("gateway timeout"):          http.StatusInternalServerError,
		}
		for err, want := range cases {
			uc, r := newSubscriptionRouter(t)
			uc.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, err)
			expectStatus(t, doRequest(r, http.MethodPost, "/v1/subscriptions/checkout", `{"plan_type":"gold"}`, bearerFor(t, 4, 9)), want)
		}
	})

	t.Run("preference with rejected referral", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		plan, _ := entities.PlanByType(entities.PlanTypeDestaque)
		uc.EXPECT().CreateCheckout(gomock.Any(), usecase.CheckoutInput{ProfessionalID: 4, PlanType: "destaque", ReferralCode: "ME123456"}).
			Return(usecase.CheckoutResult{
				Preference:      entities.CheckoutPreference{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"},
				Plan:            plan,
				UnitPriceCents:  4990,
				ReferralMessage: usecase.MsgReferralSelf,
			}, nil)

		w := doRequest(r, http.MethodPost, "/v1/subscriptions/checkout", `{"plan_type":"destaque","referral_code":"ME123456"}`, bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["preference_id"] != "pref-1" || body["init_point"] != "https://mp/init" || body["unit_price"] != 49.9 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["referral_applied"] != false || body["referral_message"] != usecase.MsgReferralSelf {
			t.Fatalf("unexpected referral fields: %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_PaymentStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		uc.EXPECT().PaymentStatus(gomock.Any(), "555").Return(entities.GatewayPayment{}, usecase.ErrGatewayPaymentNotFound)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/subscriptions/payments/555/status", "", bearerFor(t, 4, 9)), http.StatusNotFound)
	})

	t.Run("found", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		uc.EXPECT().PaymentStatus(gomock.Any(), "555").Return(entities.GatewayPayment{ID: "555", Status: "in_process", TransactionAmount: 49.9}, nil)

		w := doRequest(r, http.MethodGet, "/v1/subscriptions/payments/555/status", "", bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["status"] != "in_process" || body["local_status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_PaymentLists(t *testing.T) {
	payload := json.RawMessage(`{"id":555}`)
	payments := []entities.Payment{{ID: 1, TransactionID: "555", PaymentStatus: entities.PaymentStatusCompleted, GatewayPayload: payload}}

	t.Run("mine hides the gateway payload", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		uc.EXPECT().ListByProfessional(gomock.Any(), uint(4)).Return(payments, nil)

		w := doRequest(r, http.MethodGet, "/v1/subscriptions/me/payments", "", bearerFor(t, 4, 9))
		expectStatus(t, w, http.StatusOK)
		list := decodeList(t, w)
		if len(list) != 1 || list[0]["transaction_id"] != "555" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := list[0]["gateway_payload"]; ok {
			t.Fatalf("payload must be hidden: %s", w.Body.String())
		}
	})

	t.Run("admin passes paging and sees the payload", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		uc.EXPECT().ListAll(gomock.Any(), 10, 20).Return(payments, nil)

		w := doRequest(r, http.MethodGet, "/v1/admin/payments?limit=10&offset=20", "", "")
		expectStatus(t, w, http.StatusOK)
		list := decodeList(t, w)
		gp, _ := list[0]["gateway_payload"].(map[string]any)
		if gp["id"] != float64(555) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("admin with garbage paging falls back to defaults", func(t *testing.T) {
		uc, r := newSubscriptionRouter(t)
		uc.EXPECT().ListAll(gomock.Any(), 0, 0).Return(nil, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/admin/payments?limit=x", "", ""), http.StatusOK)
	})
}
