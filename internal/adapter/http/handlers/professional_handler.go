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

type ProfessionalHandler struct {
	usecase usecase.IProfessionalUseCase
	rating  usecase.IRatingAggregator
}

func NewProfessionalHandler(uc usecase.IProfessionalUseCase, rating usecase.IRatingAggregator) *ProfessionalHandler {
	return &ProfessionalHandler{usecase: uc, rating: rating}
}

// Register godoc
// @Summary      Register a professional listing
// @Description  Creates a pending listing with a 5 day trial window.
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterProfessionalRequest  true  "Listing"
// @Success      201   {object}  response.ProfessionalResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /professionals [post]
func (h *ProfessionalHandler) Register(c *gin.Context) {
	var req request.RegisterProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[professional][handler] invalid payload err=%v", err)
		invalidRequest(c)
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProfessional(created))
}

// GetByID godoc
// @Summary  Get a professional with its active-period flag
// @Tags     professionals
// @Produce  json
// @Param    id   path      int  true  "Professional ID"
// @Success  200  {object}  response.ProfessionalViewResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /professionals/{id} [get]
func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfessionalView(view))
}

// GetByUID godoc
// @Summary  Get a professional by its public uid
// @Tags     professionals
// @Produce  json
// @Param    uid  path      string  true  "Professional UID"
// @Success  200  {object}  response.ProfessionalViewResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /professionals/uid/{uid} [get]
func (h *ProfessionalHandler) GetByUID(c *gin.Context) {
	view, err := h.usecase.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfessionalView(view))
}

// Approve godoc
// @Summary  Approve a listing, optionally setting its badge
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id    path      int                                  true   "Professional ID"
// @Param    body  body      request.ApproveProfessionalRequest  false  "Badge"
// @Success  200   {object}  response.ProfessionalResponse
// @Security Bearer
// @Router   /admin/professionals/{id}/approve [patch]
func (h *ProfessionalHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req request.ApproveProfessionalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c)
			return
		}
	}

	updated, err := h.usecase.Approve(c.Request.Context(), id, req.ResolveBadge())
	if err != nil {
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[professional][handler] approved id=%d badge=%s", updated.ID, updated.Badge)
	c.JSON(http.StatusOK, response.FromProfessional(updated))
}

// @Summary  Reject a listing
// @Tags     admin
// @Produce  json
// @Param    id   path      int  true  "Professional ID"
// @Success  200  {object}  response.ProfessionalResponse
// @Security Bearer
// @Router   /admin/professionals/{id}/reject [patch]
func (h *ProfessionalHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updated, err := h.usecase.Reject(c.Request.Context(), id)
	if err != nil {
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[professional][handler] rejected id=%d", updated.ID)
	c.JSON(http.StatusOK, response.FromProfessional(updated))
}

// RecomputeRating rebuilds stars and review count from the stored reviews.
//
// @Summary  Recompute a professional's rating
// @Tags     admin
// @Produce  json
// @Param    id   path      int  true  "Professional ID"
// @Success  200  {object}  response.RatingResponse
// @Security Bearer
// @Router   /admin/professionals/{id}/rating/recompute [post]
func (h *ProfessionalHandler) RecomputeRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	agg, err := h.rating.Recompute(c.Request.Context(), id)
	if err != nil {
		log.Printf("[rating][handler] recompute failed professional_id=%d err=%v", id, err)
		appErr := mapProfessionalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRatingAggregate(id, agg))
}

func mapProfessionalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfessionalID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid professional id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProfessionalInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "display_name and category are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCoordinates):
		return pkg.NewDomainErrorSimple("INVALID_COORDINATES", "Latitude and longitude must be given together and within range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlanType):
		return pkg.NewDomainErrorSimple("INVALID_PLAN_TYPE", "Invalid plan type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBadge):
		return pkg.NewDomainErrorSimple("INVALID_BADGE", "Invalid badge", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfessionalAlreadyExists):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_ALREADY_EXISTS", "Professional already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
