package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	_ "bokaboka_api/docs"
	"bokaboka_api/internal/adapter/http/handlers"
	"bokaboka_api/internal/adapter/http/routes"
	"bokaboka_api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

// @title           BokaBoka API
// @version         1.0
// @description     Marketplace listings, visibility plans, promo and referral codes, Mercado Pago checkout and webhook reconciliation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		infrastructureModule,
		repositoryModule,
		usecaseModule,
		handlerModule,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	professional *handlers.ProfessionalHandler,
	review *handlers.ReviewHandler,
	search *handlers.SearchHandler,
	promo *handlers.PromoCodeHandler,
	referral *handlers.ReferralHandler,
	subscription *handlers.SubscriptionHandler,
	webhook *handlers.WebhookHandler,
) *gin.Engine {
	return routes.NewRouter(cfg.JWTSecret, routes.Handlers{
		Professional: professional,
		Review:       review,
		Search:       search,
		PromoCode:    promo,
		Referral:     referral,
		Subscription: subscription,
		Webhook:      webhook,
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: engine,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("[http][server] listening addr=%s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to startup the application: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("[http][server] shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
