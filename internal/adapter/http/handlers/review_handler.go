package handlers

import (
	"errors"
	"log"
	"net/http"

	"bokaboka_api/internal/adapter/http/dto/request"
	"bokaboka_api/internal/adapter/http/dto/response"
	"bokaboka_api/internal/adapter/http/middleware"
	"bokaboka_api/internal/usecase"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// Create godoc
// @Summary      Submit a review
// @Description  Stores the review and returns the refreshed rating of the professional.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Professional ID"
// @Param        body  body      request.CreateReviewRequest  true  "Review"
// @Success      201   {object}  response.CreateReviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /professionals/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[review][handler] invalid payload professional_id=%d err=%v", professionalID, err)
		invalidRequest(c)
		return
	}

	review, agg, err := h.usecase.Create(c.Request.Context(), req.ToInput(professionalID, middleware.GetUserID(c)))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CreateReviewResponse{
		Review: response.FromReview(review),
		Rating: response.FromRatingAggregate(professionalID, agg),
	})
}

// List godoc
// @Summary  List reviews of a professional, newest first
// @Tags     reviews
// @Produce  json
// @Param    id   path     int  true  "Professional ID"
// @Success  200  {array}  response.ReviewResponse
// @Router   /professionals/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	professionalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.usecase.ListByProfessional(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewRating):
		return pkg.NewDomainErrorSimple("INVALID_RATING", "Rating must be between 1 and 5", http.StatusBadRequest)
	default:
		return mapProfessionalError(err)
	}
}
