package handlers

import (
	"encoding/json"
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

func newWebhookRouter(t *testing.T) (*mocks.MockIWebhookUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIWebhookUseCase(ctrl)
	h := NewWebhookHandler(uc)
	r := newTestRouter()
	r.POST("/api/webhooks/mercadopago", h.MercadoPago)
	r.GET("/v1/admin/webhook-events/:payment_id", h.Events)
	return uc, r
}

func TestWebhookHandler_MercadoPago(t *testing.T) {
	t.Run("acknowledges every outcome", func(t *testing.T) {
		for _, outcome := range []usecase.WebhookOutcome{
			usecase.WebhookOutcomeProcessed,
			usecase.WebhookOutcomeDuplicate,
			usecase.WebhookOutcomeNoTransition,
			usecase.WebhookOutcomeUnlinked,
		} {
			uc, r := newWebhookRouter(t)
			uc.EXPECT().HandleNotification(gomock.Any(), entities.WebhookNotification{Type: "payment", DataID: "555"}).Return(outcome, nil)

			w := doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", `{"type":"payment","action":"payment.updated","data":{"id":"555"}}`, "")
			expectStatus(t, w, http.StatusOK)
			body := decodeBody(t, w)
			if body["outcome"] != string(outcome) || body["message"] != "Webhook processed successfully" {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		}
	})

	t.Run("numeric data id", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), entities.WebhookNotification{Type: "payment", DataID: "555"}).Return(usecase.WebhookOutcomeProcessed, nil)
		expectStatus(t, doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", `{"type":"payment","data":{"id":555}}`, ""), http.StatusOK)
	})

	t.Run("ignored type", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), entities.WebhookNotification{Type: "merchant_order", DataID: "1"}).Return(usecase.WebhookOutcomeIgnored, nil)

		w := doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", `{"type":"merchant_order","data":{"id":"1"}}`, "")
		expectStatus(t, w, http.StatusOK)
		if decodeBody(t, w)["message"] != "Notification ignored" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query string notification", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), entities.WebhookNotification{Type: "payment", DataID: "777"}).Return(usecase.WebhookOutcomeProcessed, nil)
		expectStatus(t, doRequest(r, http.MethodPost, "/api/webhooks/mercadopago?topic=payment&id=777", "", ""), http.StatusOK)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, r := newWebhookRouter(t)
		expectStatus(t, doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", `{`, ""), http.StatusBadRequest)
		expectStatus(t, doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", "", ""), http.StatusBadRequest)
	})

	t.Run("processing failure asks for redelivery", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome(""), errors.New("gateway timeout"))

		w := doRequest(r, http.MethodPost, "/api/webhooks/mercadopago", `{"type":"payment","data":{"id":"555"}}`, "")
		expectStatus(t, w, http.StatusInternalServerError)
		if decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWebhookHandler_Events(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		received := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().ListEvents(gomock.Any(), "555").Return([]entities.WebhookEvent{
			{ID: "e1", PaymentID: "555", Type: "payment", GatewayStatus: "approved", Outcome: "processed", ReceivedAt: received, Payload: json.RawMessage(`{"id":555}`)},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/admin/webhook-events/555", "", "")
		expectStatus(t, w, http.StatusOK)
		list := decodeList(t, w)
		if len(list) != 1 || list[0]["outcome"] != "processed" || list[0]["received_at"] != "2026-03-10T12:00:00Z" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, r := newWebhookRouter(t)
		uc.EXPECT().ListEvents(gomock.Any(), " ").Return(nil, usecase.ErrInvalidPaymentID)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/admin/webhook-events/%20", "", ""), http.StatusBadRequest)
	})
}
