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

type PromoCodeHandler struct {
	usecase usecase.IPromoCodeUseCase
}

func NewPromoCodeHandler(uc usecase.IPromoCodeUseCase) *PromoCodeHandler {
	return &PromoCodeHandler{usecase: uc}
}

// Validate godoc
// @Summary      Check a promo code
// @Description  Invalid codes are a 200 with valid=false and a pt-BR message.
// @Tags         promo-codes
// @Produce      json
// @Param        code  path      string  true  "Promo code"
// @Success      200   {object}  response.PromoCodeValidationResponse
// @Security     Bearer
// @Router       /promo-codes/{code}/validate [get]
func (h *PromoCodeHandler) Validate(c *gin.Context) {
	v, err := h.usecase.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		log.Printf("[promo][handler] validate failed err=%v", err)
		appErr := mapPromoCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPromoCodeValidation(v))
}

// Activate godoc
// @Summary  Redeem a promo code for the caller's listing
// @Tags     promo-codes
// @Accept   json
// @Produce  json
// @Param    body  body      request.ActivatePromoCodeRequest  true  "Code"
// @Success  200   {object}  response.PromoActivationResponse
// @Failure  409   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /promo-codes/activate [post]
func (h *PromoCodeHandler) Activate(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	var req request.ActivatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	activation, err := h.usecase.Activate(c.Request.Context(), professionalID, req.Code)
	if err != nil {
		appErr := mapPromoCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPromoActivation(activation))
}

// @Summary  Create a promo code
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreatePromoCodeRequest  true  "Promo code"
// @Success  201   {object}  response.PromoCodeResponse
// @Security Bearer
// @Router   /admin/promo-codes [post]
func (h *PromoCodeHandler) Create(c *gin.Context) {
	var req request.CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		appErr := mapPromoCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPromoCode(created))
}

// Messages stay in pt-BR since they are shown to the professional as-is.
func mapPromoCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPromoCode), errors.Is(err, usecase.ErrPromoCodeNotFound):
		return pkg.NewDomainErrorSimple("PROMO_CODE_INVALID", usecase.PromoCodeMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPromoCodeInactive):
		return pkg.NewDomainErrorSimple("PROMO_CODE_INACTIVE", usecase.PromoCodeMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPromoCodeExpired):
		return pkg.NewDomainErrorSimple("PROMO_CODE_EXPIRED", usecase.PromoCodeMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPromoCodeExhausted):
		return pkg.NewDomainErrorSimple("PROMO_CODE_EXHAUSTED", usecase.PromoCodeMessage(err), http.StatusConflict)
	case errors.Is(err, usecase.ErrPromoCodeAlreadyUsed):
		return pkg.NewDomainErrorSimple("PROMO_CODE_ALREADY_USED", usecase.PromoCodeMessage(err), http.StatusConflict)
	case errors.Is(err, usecase.ErrPromoCodeAlreadyExists):
		return pkg.NewDomainErrorSimple("PROMO_CODE_ALREADY_EXISTS", "Promo code already exists", http.StatusConflict)
	default:
		return mapProfessionalError(err)
	}
}
