package handlers

import (
	"errors"
	"log"
	"net/http"

	"bokaboka_api/internal/adapter/http/dto/request"
	"bokaboka_api/internal/adapter/http/dto/response"
	"bokaboka_api/internal/usecase"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler serves plans, hosted checkout and payment reads.
type SubscriptionHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewSubscriptionHandler(uc usecase.ICheckoutUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// Plans godoc
// @Summary  List the plan catalog
// @Tags     subscriptions
// @Produce  json
// @Success  200  {array}  entities.Plan
// @Router   /plans [get]
func (h *SubscriptionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Plans())
}

// Checkout godoc
// @Summary      Start a hosted checkout for the caller's listing
// @Description  A referral code that cannot be applied does not fail the checkout; referral_message says why.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Checkout"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /subscriptions/checkout [post]
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid payload professional_id=%d err=%v", professionalID, err)
		invalidRequest(c)
		return
	}

	result, err := h.usecase.CreateCheckout(c.Request.Context(), req.ToInput(professionalID))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// PaymentStatus godoc
// @Summary  Live gateway status of a payment
// @Tags     subscriptions
// @Produce  json
// @Param    payment_id  path      string  true  "Gateway payment ID"
// @Success  200         {object}  response.PaymentStatusResponse
// @Failure  404         {object}  pkg.HTTPError
// @Security Bearer
// @Router   /subscriptions/payments/{payment_id}/status [get]
func (h *SubscriptionHandler) PaymentStatus(c *gin.Context) {
	gp, err := h.usecase.PaymentStatus(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayPayment(gp))
}

// @Summary  The caller's payments, newest first
// @Tags     subscriptions
// @Produce  json
// @Success  200  {array}  response.PaymentResponse
// @Security Bearer
// @Router   /subscriptions/me/payments [get]
func (h *SubscriptionHandler) MyPayments(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	payments, err := h.usecase.ListByProfessional(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments, false))
}

// @Summary  All payments with their gateway payload
// @Tags     admin
// @Produce  json
// @Param    limit   query    int  false  "Page size (default 50, max 200)"
// @Param    offset  query    int  false  "Offset"
// @Success  200     {array}  response.PaymentResponse
// @Security Bearer
// @Router   /admin/payments [get]
func (h *SubscriptionHandler) AdminPayments(c *gin.Context) {
	payments, err := h.usecase.ListAll(c.Request.Context(), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments, true))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return mapReferralError(err)
	}
}
