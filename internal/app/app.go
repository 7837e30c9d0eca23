package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/testbuddy/marketplace_service/internal/adapter/handler/http"
	"github.com/testbuddy/marketplace_service/internal/adapter/kafka"
	"github.com/testbuddy/marketplace_service/internal/adapter/logger"
	"github.com/testbuddy/marketplace_service/internal/adapter/pdf"
	"github.com/testbuddy/marketplace_service/internal/adapter/postgres"
	"github.com/testbuddy/marketplace_service/internal/adapter/prometheus"
	"github.com/testbuddy/marketplace_service/internal/adapter/redis"
	"github.com/testbuddy/marketplace_service/internal/adapter/registry"
	"github.com/testbuddy/marketplace_service/internal/config"
	"github.com/testbuddy/marketplace_service/internal/core/matching"
	"github.com/testbuddy/marketplace_service/internal/core/ports"
	"github.com/testbuddy/marketplace_service/internal/core/services"
)

type swapEventPublisher interface {
	ports.EventPublisher
	io.Closer
}

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	Publisher    swapEventPublisher
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":            cfg.App.Name,
		"env":            cfg.App.Env,
		"pricing_policy": cfg.Pricing.Policy,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		redisConn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	swapRepo := postgres.NewSwapRepository(db)

	// Outbound adapters
	registryClient := registry.New(
		cfg.Registry.Host,
		cfg.Registry.BasePath,
		cfg.Registry.Scheme,
		cfg.Registry.APIKey,
		cfg.Registry.Timeout,
	)
	renderer := pdf.NewCertificateRenderer(cfg.App.Name)

	var publisher swapEventPublisher
	if cfg.Kafka.Enabled() {
		publisher = kafka.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, loggerAdapter)
	} else {
		loggerAdapter.Warn("No Kafka brokers configured, swap events will only be logged", nil)
		publisher = kafka.NewLogPublisher(loggerAdapter)
	}

	scorer := matching.NewScorer(cfg.Matching.CentreWeight, cfg.Matching.DateWindowDays)

	// Services
	profileService := services.NewProfileService(profileRepo, loggerAdapter, validate, cfg.Pricing.Policy)
	quoteService := services.NewQuoteService(profileService, renderer, loggerAdapter, cfg.Pricing.Policy)
	vehicleService := services.NewVehicleService(registryClient, cacheAdapter, metrics, loggerAdapter, cfg.Redis.CacheTTL)
	swapService := services.NewSwapService(swapRepo, publisher, scorer, loggerAdapter, validate)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	profileHandler := http.NewProfileHandler(profileService, loggerAdapter, metrics)
	quoteHandler := http.NewQuoteHandler(quoteService, loggerAdapter, metrics)
	vehicleHandler := http.NewVehicleHandler(vehicleService, loggerAdapter, metrics)
	swapHandler := http.NewSwapHandler(swapService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		profileHandler,
		quoteHandler,
		vehicleHandler,
		swapHandler,
	)
	if err != nil {
		publisher.Close()
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		Publisher:    publisher,
		HTTPRouter:   router,
	}, nil
}

// Run blocks while the HTTP server is up.
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stop drains HTTP traffic before closing downstream connections.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := a.Publisher.Close(); err != nil {
		a.Logger.Error("Event publisher close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	if syncer, ok := a.Logger.(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}
	return nil
}
