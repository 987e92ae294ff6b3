package routes

import (
	"log"
	"net/http"

	_ "bokaboka_api/docs" // generated by swag init
	"bokaboka_api/internal/adapter/http/handlers"
	"bokaboka_api/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Professional *handlers.ProfessionalHandler
	Review       *handlers.ReviewHandler
	Search       *handlers.SearchHandler
	PromoCode    *handlers.PromoCodeHandler
	Referral     *handlers.ReferralHandler
	Subscription *handlers.SubscriptionHandler
	Webhook      *handlers.WebhookHandler
}

// NewRouter builds the engine. jwtSecret signs the Bearer tokens checked on
// authenticated groups.
func NewRouter(jwtSecret string, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mercado Pago posts outside the versioned prefix.
	router.POST(PathMercadoPagoWebhook, h.Webhook.MercadoPago)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := middleware.AuthRequired(jwtSecret)
	addProfessionalRoutes(v1, authed, h.Professional, h.Review, h.Search)
	addSubscriptionRoutes(v1, authed, h.PromoCode, h.Referral, h.Subscription)
	addAdminRoutes(v1, authed, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middleware.TraceIDMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[http][recovery] panic path=%s trace_id=%s err=%v", c.Request.URL.Path, c.GetString("trace_id"), recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
