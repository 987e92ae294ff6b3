package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"bokaboka_api/internal/adapter/http/dto/request"
	"bokaboka_api/internal/adapter/http/dto/response"
	"bokaboka_api/internal/usecase"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago notifications. Any non-2xx makes the
// gateway redeliver, so only processing failures return 500.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// MercadoPago godoc
// @Summary  Mercado Pago notification callback
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Param    body  body      request.WebhookNotificationRequest  true  "Notification"
// @Success  200   {object}  response.WebhookAckResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  500   {object}  pkg.HTTPError
// @Router   /api/webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	req, err := readNotification(c)
	if err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		invalidRequest(c)
		return
	}
	n := req.ToNotification()

	outcome, err := h.usecase.HandleNotification(c.Request.Context(), n)
	if err != nil {
		log.Printf("[webhook][handler] processing failed type=%s data_id=%s err=%v", n.Type, n.DataID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
}

// Events godoc
// @Summary  Archived notifications for a gateway payment
// @Tags     admin
// @Produce  json
// @Param    payment_id  path     string  true  "Gateway payment ID"
// @Success  200         {array}  response.WebhookEventResponse
// @Security Bearer
// @Router   /admin/webhook-events/{payment_id} [get]
func (h *WebhookHandler) Events(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookEvents(events))
}

// readNotification takes the body, falling back to the type/data.id query
// parameters that older Mercado Pago topics send.
func readNotification(c *gin.Context) (n request.WebhookNotificationRequest, err error) {
	raw, err := c.GetRawData()
	if err != nil {
		return n, err
	}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &n); err != nil {
			return n, err
		}
	}
	if n.Type == "" {
		n.Type = c.Query("type")
		if n.Type == "" {
			n.Type = c.Query("topic")
		}
	}
	if n.Data.ID == "" {
		n.Data.ID = request.NotificationID(strings.TrimSpace(firstQuery(c, "data.id", "id")))
	}
	if n.Type == "" && n.Data.ID == "" {
		return n, errors.New("empty notification")
	}
	return n, nil
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
