package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jince360/styvia/internal/config"
	"github.com/jince360/styvia/internal/event"
	handler "github.com/jince360/styvia/internal/handler/http"
	"github.com/jince360/styvia/internal/repository/postgres"
	"github.com/jince360/styvia/internal/service"
	"github.com/jince360/styvia/pkg/database"
	"github.com/jince360/styvia/pkg/health"
	pkgkafka "github.com/jince360/styvia/pkg/kafka"
	"github.com/jince360/styvia/pkg/middleware"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize PostgreSQL connection pool.
	pgCfg := cfg.PostgresConfig()

	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)
	database.RegisterPoolMetrics(pool, "styvia")

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	productRepo := postgres.NewProductRepository(pool)
	storefrontRepo := postgres.NewStorefrontRepository(pool)
	taxonomyRepo := postgres.NewTaxonomyRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	promoRepo := postgres.NewPromoRepository(pool)

	eventProducer := event.NewProducer(producer, logger)

	catalogService := service.NewCatalogService(productRepo, storefrontRepo, taxonomyRepo, sizeRepo, eventProducer, logger)
	storefrontService := service.NewStorefrontService(storefrontRepo, productRepo, taxonomyRepo, promoRepo, logger)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo, logger)
	sizeService := service.NewSizeService(sizeRepo, logger)
	brandService := service.NewBrandService(brandRepo, logger)
	sellerService := service.NewSellerService(sellerRepo, logger)
	promoService := service.NewPromoService(promoRepo, taxonomyRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	// CORS policy comes from the environment so production deployments can
	// pin the storefront origin.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		Storefront: storefrontService,
		Catalog:    catalogService,
		Taxonomy:   taxonomyService,
		Sizes:      sizeService,
		Brands:     brandService,
		Sellers:    sellerService,
		Promos:     promoService,
		Health:     healthHandler,
		CORS:       corsCfg,
		Logger:     logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return nil
}
