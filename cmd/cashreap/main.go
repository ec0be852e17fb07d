package main

import (
	"context"
	"log/slog"
	"os"

	"cashreap/config"
	"cashreap/internal/delivery"
	"cashreap/internal/delivery/http"
	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/router/handler"
	"cashreap/internal/domain/service"
	"cashreap/internal/infra/auth"
	"cashreap/internal/infra/cache"
	logs "cashreap/internal/infra/log"
	"cashreap/internal/infra/persistence/sqlite"
	"cashreap/internal/infra/qrcode"
	"cashreap/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			prepareDatabase,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUserRepository,
			sqlite.NewRefreshTokenRepository,
			sqlite.NewCardRepository,
			sqlite.NewCategoryRepository,
			sqlite.NewRewardRepository,
			sqlite.NewStoreRepository,
			sqlite.NewSavedCardRepository,
			sqlite.NewSearchHistoryRepository,
			sqlite.NewSpendingProfileRepository,
			sqlite.NewPurchasePlanRepository,
			sqlite.NewBonusTrackingRepository,
			sqlite.NewPreferencesRepository,
			sqlite.NewComparisonRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://cashreap.app")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecommendationService,
			impl.NewCatalogService,
			impl.NewUserService,
			impl.NewSavedCardService,
			impl.NewSearchHistoryService,
			impl.NewSpendingService,
			impl.NewPreferencesService,
			impl.NewPlanService,
			impl.NewBonusService,
			impl.NewComparisonService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewCacheMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewSavedCardHandler,
			handler.NewSpendingHandler,
			handler.NewPlanHandler,
			handler.NewBonusHandler,
			handler.NewComparisonHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// prepareDatabase migrates the schema and, when enabled, seeds the card
// and merchant catalog before the server starts taking requests. Seeding
// rewrites catalog rows, so any cached catalog responses are dropped.
func prepareDatabase(ctx context.Context, cfg *config.Config, db *gorm.DB, cacheMW *middleware.CacheMiddleware, logger *slog.Logger) error {
	if err := sqlite.Migrate(db); err != nil {
		return err
	}

	if cfg.Seed == nil || !cfg.Seed.Enabled {
		logger.Info("catalog seeding disabled")

		return nil
	}

	if err := sqlite.Seed(ctx, db); err != nil {
		return err
	}
	cacheMW.Invalidate(ctx)
	logger.Info("catalog seeded")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
