package main

import (
	"context"
	"log"
	"time"

	"bokaboka_api/internal/adapter/http/handlers"
	"bokaboka_api/internal/adapter/persistence/repository"
	"bokaboka_api/internal/domain/textnorm"
	"bokaboka_api/internal/infrastructure/config"
	"bokaboka_api/internal/infrastructure/database"
	"bokaboka_api/internal/infrastructure/payments"
	"bokaboka_api/internal/usecase"
	"bokaboka_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var infrastructureModule = fx.Module("infrastructure",
	fx.Provide(provideGormDB, provideDynamoDB, providePaymentGateway),
)

var repositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(repository.NewProfessionalGormRepository, fx.As(new(interfaces.IProfessionalRepository))),
		fx.Annotate(repository.NewReviewGormRepository, fx.As(new(interfaces.IReviewRepository))),
		fx.Annotate(repository.NewPaymentGormRepository, fx.As(new(interfaces.IPaymentRepository))),
		fx.Annotate(repository.NewPromoCodeGormRepository, fx.As(new(interfaces.IPromoCodeRepository))),
		fx.Annotate(repository.NewReferralGormRepository, fx.As(new(interfaces.IReferralRepository))),
		provideWebhookEventRepository,
	),
)

var usecaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(usecase.NewProfessionalUseCase, fx.As(new(usecase.IProfessionalUseCase))),
		fx.Annotate(usecase.NewReviewUseCase, fx.As(new(usecase.IReviewUseCase), new(usecase.IRatingAggregator))),
		fx.Annotate(usecase.NewPromoCodeUseCase, fx.As(new(usecase.IPromoCodeUseCase))),
		fx.Annotate(usecase.NewReferralUseCase, fx.As(new(usecase.IReferralUseCase))),
		fx.Annotate(usecase.NewCheckoutUseCase, fx.As(new(usecase.ICheckoutUseCase))),
		fx.Annotate(usecase.NewWebhookUseCase, fx.As(new(usecase.IWebhookUseCase))),
		provideSearchUseCase,
	),
)

var handlerModule = fx.Module("handler",
	fx.Provide(
		handlers.NewProfessionalHandler,
		handlers.NewReviewHandler,
		handlers.NewSearchHandler,
		handlers.NewPromoCodeHandler,
		handlers.NewReferralHandler,
		handlers.NewSubscriptionHandler,
		handlers.NewWebhookHandler,
	),
)

func provideGormDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewGormDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Printf("[database][postgres] schema migrated")
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func provideDynamoDB() (*dynamodb.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return database.NewDynamoDBClient(ctx)
}

// provideWebhookEventRepository returns a nil repository when the archive
// table cannot be reached; the reconciler then skips archiving.
func provideWebhookEventRepository(ddb *dynamodb.Client) interfaces.IWebhookEventRepository {
	repo := repository.NewWebhookEventDynamoRepository(ddb)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureWebhookEventsTable(ctx, ddb, repo.TableName()); err != nil {
		log.Printf("[database][dynamodb] webhook archive disabled table=%s err=%v", repo.TableName(), err)
		return nil
	}
	return repo
}

// providePaymentGateway returns a nil gateway when Mercado Pago is not
// configured; checkout and webhook reads then fail with a 503.
func providePaymentGateway(cfg *config.Config) interfaces.IPaymentGateway {
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func provideSearchUseCase(repo interfaces.IProfessionalRepository, cfg *config.Config) usecase.ISearchUseCase {
	return usecase.NewSearchUseCase(repo, textnorm.PortugueseGender{}, cfg.SearchCandidateCap)
}
