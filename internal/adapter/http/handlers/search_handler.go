package handlers

import (
	"log"
	"net/http"

	"bokaboka_api/internal/adapter/http/dto/request"
	"bokaboka_api/internal/adapter/http/dto/response"
	"bokaboka_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	usecase usecase.ISearchUseCase
}

func NewSearchHandler(uc usecase.ISearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: uc}
}

// Search godoc
// @Summary      Search the directory
// @Description  Ranked by plan tier then rating. With lat/lon the page is ordered by distance instead. Without max_distance_km only the top SEARCH_CANDIDATE_CAP ranked rows (default 500) are distance-sorted; with it rows inside the radius are read in batches of that size, at most 20 batches.
// @Tags         professionals
// @Produce      json
// @Param        query            query    string  false  "Free text"
// @Param        category         query    string  false  "Category"
// @Param        city             query    string  false  "City"
// @Param        limit            query    int     false  "Page size (default 20, max 100)"
// @Param        offset           query    int     false  "Offset"
// @Param        lat              query    number  false  "User latitude, -90 to 90"
// @Param        lon              query    number  false  "User longitude, -180 to 180"
// @Param        max_distance_km  query    number  false  "Radius in km (>= 0), needs lat/lon"
// @Success      200              {array}  response.ProfessionalViewResponse
// @Failure      400              {object} pkg.HTTPError
// @Router       /professionals/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Printf("[search][handler] invalid query err=%v", err)
		invalidRequest(c)
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("[search][handler] invalid location err=%v", err)
		invalidRequest(c)
		return
	}
	views := h.usecase.Search(c.Request.Context(), req.ToQuery())
	c.JSON(http.StatusOK, response.FromProfessionalViews(views))
}
