package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/soukly/api/config"
	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/handler"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/router"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/database"
	"github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/mailer"
	"github.com/soukly/api/pkg/payment"
	"github.com/soukly/api/pkg/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	handler.SetDebugMode(cfg.App.Debug)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		// seed data may already exist
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(cfg)
		if err != nil {
			logger.GetLogger().Warn("Redis unavailable, listing cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	} else {
		logger.GetLogger().Info("Redis disabled, listing cache off")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewRepository[model.Coupon](db)
	reviewRepo := repository.NewRepository[model.Review](db)

	// Services
	jwtService := service.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	mail := mailer.NewMailer(cfg)
	gateway := payment.NewGateway(cfg)
	cacheService := service.NewCacheService(redisClient, cfg.Redis.ListingTTL)
	authService := service.NewAuthService(userRepo, jwtService, mail, cfg.App.Name)
	userService := service.NewUserService(userRepo, jwtService)
	cartService := service.NewCartService(cartRepo, productRepo, couponRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, userRepo, gateway)
	orderService.TaxPrice = cfg.Payment.TaxPrice
	orderService.ShippingPrice = cfg.Payment.ShippingPrice

	// Middleware
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, authService)

	r := router.NewRouter(
		handler.NewCategoryHandler(db, cacheService),
		handler.NewSubCategoryHandler(db, cacheService),
		handler.NewBrandHandler(db, cacheService),
		handler.NewProductHandler(db, cacheService),
		handler.NewReviewHandler(db, reviewService),
		handler.NewCouponHandler(db),
		handler.NewUserHandler(db, userService),
		handler.NewAuthHandler(authService),
		handler.NewWishlistHandler(userRepo),
		handler.NewAddressHandler(userRepo),
		handler.NewCartHandler(cartService),
		handler.NewOrderHandler(db, orderService, cfg.App.BaseURL, cfg.Payment.WebhookSecret),
		handler.NewHealthHandler(db, redisClient),
		jwtMiddleware,
		cfg,
	).SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  cfg.App.Timeout,
		WriteTimeout: cfg.App.Timeout,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", cfg.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", cfg.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.GetLogger().Error("Forced shutdown", zap.Error(err))
	}
	logger.GetLogger().Info("Server stopped")
}
