package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"bokaboka_api/internal/adapter/http/middleware"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive numeric path parameter and writes 400 otherwise.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_ID", "Invalid "+name, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return uint(id), true
}

// callerProfessionalID writes 403 when the token carries no professional.
func callerProfessionalID(c *gin.Context) (uint, bool) {
	id := middleware.GetProfessionalID(c)
	if id == 0 {
		appErr := pkg.NewDomainErrorSimple("PROFESSIONAL_REQUIRED", "A professional profile is required", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	if err != nil {
		return def
	}
	return v
}

func invalidRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
