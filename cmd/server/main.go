package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfeed "github.com/turbota/feedsync/internal/application/feed"
	"github.com/turbota/feedsync/internal/infrastructure/config"
	"github.com/turbota/feedsync/internal/infrastructure/logger"
	"github.com/turbota/feedsync/internal/infrastructure/persistence"
	"github.com/turbota/feedsync/internal/infrastructure/shopify"
	"github.com/turbota/feedsync/internal/interfaces/http/handler"
	"github.com/turbota/feedsync/internal/interfaces/http/middleware"
	"github.com/turbota/feedsync/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting feedsync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories
	marketplaceRepo := persistence.NewGormMarketplaceRepository(db.DB)
	mappingRepo := persistence.NewGormCategoryMappingRepository(db.DB)
	multiplierRepo := persistence.NewGormPriceMultiplierRepository(db.DB)
	feedLogRepo := persistence.NewGormFeedLogRepository(db.DB)

	// Initialize upstream catalog client
	shopifyClient, err := shopify.NewClient(&shopify.Config{
		StoreDomain:    cfg.Shopify.StoreDomain,
		AccessToken:    cfg.Shopify.AccessToken,
		APIVersion:     cfg.Shopify.APIVersion,
		TimeoutSeconds: cfg.Shopify.TimeoutSeconds,
	})
	if err != nil {
		log.Fatal("Failed to initialize Shopify client", zap.Error(err))
	}

	// Initialize application services
	feedService := appfeed.NewService(
		shopifyClient,
		marketplaceRepo,
		mappingRepo,
		multiplierRepo,
		feedLogRepo,
		cfg.Feed.PublicBaseURL,
		log,
	)

	// Initialize HTTP server
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(),
	)

	handler.NewHealthHandler(db).Register(engine)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewFeedHandler(feedService))
	r.Register(handler.NewMarketplaceHandler(marketplaceRepo))
	r.Register(handler.NewCategoryMappingHandler(mappingRepo, marketplaceRepo))
	r.Register(handler.NewPriceMultiplierHandler(multiplierRepo, marketplaceRepo))
	r.Register(handler.NewFeedLogHandler(feedLogRepo))
	r.Register(handler.NewShopifyHandler(shopifyClient))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
