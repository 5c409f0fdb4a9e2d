package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"threadboard/internal/app/health"
	"threadboard/internal/app/layout"
	"threadboard/internal/app/message"
	"threadboard/internal/app/thread"
	"threadboard/internal/config"
	"threadboard/internal/db"
	"threadboard/internal/db/seeder"
	"threadboard/internal/providers/redis"
	"threadboard/internal/router"
	"threadboard/internal/utils"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.SeedSample {
		seed := seeder.NewSeeder(dbConn, logger)
		if err := seed.Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	threadRepo := thread.NewRepository(dbConn)
	messageRepo := message.NewRepository(dbConn)
	layoutRepo := layout.NewRepository(dbConn)

	threadService := thread.NewService(threadRepo, messageRepo, redisProvider, eventBus, logger)
	messageService := message.NewService(messageRepo, threadService, eventBus, logger)
	layoutService := layout.NewService(layoutRepo, eventBus, logger)

	// Audit trail: every store mutation publishes an event; drain them into
	// the structured log.
	go func() {
		for event := range eventBus.SubscribeCh() {
			logger.Info("Store event",
				zap.String("event", event.Event),
				zap.Any("data", event.Data),
			)
		}
	}()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	threadHandler := thread.NewHandler(threadService)
	messageHandler := message.NewHandler(messageService)
	layoutHandler := layout.NewHandler(layoutService)

	r := router.NewRouter(logger)
	r.RegisterHealthRoutes(healthHandler)
	r.RegisterThreadRoutes(threadHandler)
	r.RegisterMessageRoutes(messageHandler)
	r.RegisterLayoutRoutes(layoutHandler)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
