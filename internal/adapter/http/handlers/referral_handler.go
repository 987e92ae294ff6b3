package handlers

import (
	"errors"
	"net/http"

	"bokaboka_api/internal/adapter/http/dto/response"
	"bokaboka_api/internal/usecase"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	usecase usecase.IReferralUseCase
}

func NewReferralHandler(uc usecase.IReferralUseCase) *ReferralHandler {
	return &ReferralHandler{usecase: uc}
}

// MyCode godoc
// @Summary  Get or create the caller's referral code
// @Tags     referrals
// @Produce  json
// @Success  200  {object}  response.ReferralCodeResponse
// @Security Bearer
// @Router   /referrals/me/code [get]
func (h *ReferralHandler) MyCode(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	rc, err := h.usecase.GetOrCreateCode(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapReferralError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReferralCode(rc))
}

// Validate godoc
// @Summary  Check whether the caller may redeem a referral code
// @Tags     referrals
// @Produce  json
// @Param    code  path      string  true  "Referral code"
// @Success  200   {object}  response.ReferralValidationResponse
// @Security Bearer
// @Router   /referrals/{code}/validate [get]
func (h *ReferralHandler) Validate(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	v, err := h.usecase.Validate(c.Request.Context(), c.Param("code"), professionalID)
	if err != nil {
		appErr := mapReferralError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReferralValidation(v))
}

// @Summary  Redemptions credited to the caller
// @Tags     referrals
// @Produce  json
// @Success  200  {object}  response.ReferralStatsResponse
// @Security Bearer
// @Router   /referrals/me/stats [get]
func (h *ReferralHandler) MyStats(c *gin.Context) {
	professionalID, ok := callerProfessionalID(c)
	if !ok {
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapReferralError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReferralStats(stats))
}

func mapReferralError(err error) *pkg.AppError {
	if msg, ok := usecase.ReferralMessage(err); ok {
		return pkg.NewDomainErrorSimple("REFERRAL_INVALID", msg, http.StatusBadRequest)
	}
	switch {
	case errors.Is(err, usecase.ErrReferralCodeGenerationMax):
		return pkg.NewDomainError("REFERRAL_CODE_UNAVAILABLE", "Could not generate a referral code, try again", err, http.StatusServiceUnavailable)
	default:
		return mapProfessionalError(err)
	}
}
