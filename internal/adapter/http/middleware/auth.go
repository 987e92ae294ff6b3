package middleware

import (
	"log"
	"net/http"
	"strings"

	"bokaboka_api/internal/infrastructure/auth"
	"bokaboka_api/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxProfessionalID = "professional_id"
	ctxUserID         = "user_id"
	ctxRole           = "role"
	ctxClaims         = "claims"
)

// AuthRequired validates the Bearer JWT and stores its claims in the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authorization header", http.StatusUnauthorized))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization format", http.StatusUnauthorized))
			return
		}
		claims, err := auth.ParseAccessToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}
		c.Set(ctxProfessionalID, claims.ProfessionalID)
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// RequireRole must run after AuthRequired.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxRole)
		if role == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized))
			return
		}
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden))
	}
}

// GetProfessionalID returns 0 when the caller has no listing or is anonymous.
func GetProfessionalID(c *gin.Context) uint {
	v, ok := c.Get(ctxProfessionalID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func GetUserID(c *gin.Context) uint {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
