package routes

import (
	"bokaboka_api/internal/adapter/http/handlers"
	"bokaboka_api/internal/adapter/http/middleware"
	"bokaboka_api/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathProfessionals      = "/professionals"
	PathPromoCodes         = "/promo-codes"
	PathReferrals          = "/referrals"
	PathSubscriptions      = "/subscriptions"
	PathAdmin              = "/admin"
	PathMercadoPagoWebhook = "/api/webhooks/mercadopago"
)

func addProfessionalRoutes(rg *gin.RouterGroup, authed gin.HandlerFunc, professional *handlers.ProfessionalHandler, review *handlers.ReviewHandler, search *handlers.SearchHandler) {
	professionals := rg.Group(PathProfessionals)
	{
		professionals.GET("/search", search.Search)
		professionals.GET("/uid/:uid", professional.GetByUID)
		professionals.GET("/:id", professional.GetByID)
		professionals.GET("/:id/reviews", review.List)

		professionals.POST("", authed, professional.Register)
		professionals.POST("/:id/reviews", authed, review.Create)
	}
}

func addSubscriptionRoutes(rg *gin.RouterGroup, authed gin.HandlerFunc, promo *handlers.PromoCodeHandler, referral *handlers.ReferralHandler, subscription *handlers.SubscriptionHandler) {
	rg.GET("/plans", subscription.Plans)

	promoCodes := rg.Group(PathPromoCodes, authed)
	{
		promoCodes.GET("/:code/validate", promo.Validate)
		promoCodes.POST("/activate", promo.Activate)
	}

	referrals := rg.Group(PathReferrals, authed)
	{
		referrals.GET("/me/code", referral.MyCode)
		referrals.GET("/me/stats", referral.MyStats)
		referrals.GET("/:code/validate", referral.Validate)
	}

	subscriptions := rg.Group(PathSubscriptions, authed)
	{
		subscriptions.POST("/checkout", subscription.Checkout)
		subscriptions.GET("/payments/:payment_id/status", subscription.PaymentStatus)
		subscriptions.GET("/me/payments", subscription.MyPayments)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, authed gin.HandlerFunc, h Handlers) {
	admin := rg.Group(PathAdmin, authed, middleware.RequireRole(auth.RoleAdmin))
	{
		admin.PATCH("/professionals/:id/approve", h.Professional.Approve)
		admin.PATCH("/professionals/:id/reject", h.Professional.Reject)
		admin.POST("/professionals/:id/rating/recompute", h.Professional.RecomputeRating)
		admin.POST(PathPromoCodes, h.PromoCode.Create)
		admin.GET("/payments", h.Subscription.AdminPayments)
		admin.GET("/webhook-events/:payment_id", h.Webhook.Events)
	}
}
