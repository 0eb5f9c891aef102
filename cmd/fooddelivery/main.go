package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/fooddelivery/config"
	"github.com/rookgm/fooddelivery/internal/auth"
	handler "github.com/rookgm/fooddelivery/internal/handler/http"
	"github.com/rookgm/fooddelivery/internal/middleware"
	"github.com/rookgm/fooddelivery/internal/repository"
	"github.com/rookgm/fooddelivery/internal/repository/postgres"
	"github.com/rookgm/fooddelivery/internal/service"
	"go.uber.org/zap"
)

const defaultAuthTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	err = db.Migrate()
	if err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKeyHex := cfg.AuthTokenKey
	if tokenKeyHex == "" {
		tokenKeyHex = defaultAuthTokenKey
	}
	tokenKey, err := hex.DecodeString(tokenKeyHex)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	// user
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService, token, logger)

	// auth
	authService := service.NewAuthService(userRepo, token)
	authHandler := handler.NewAuthHandler(authService, logger)

	// order
	orderRepo := repository.NewOrderRepository(db)
	pricing := service.NewPricingCalculator(cfg.DeliveryFee, cfg.TaxRate)
	lifecycle := service.NewOrderLifecycle()
	numbers := service.NewOrderNumberGenerator(orderRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, pricing, lifecycle, numbers)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// admin
	adminSaga := service.NewAdminOrderCreationSaga(userRepo, orderService, logger)
	adminHandler := handler.NewAdminOrderHandler(orderService, adminSaga, logger)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Post("/api/user/register", userHandler.RegisterUser())
	router.Post("/api/user/login", authHandler.LoginUser())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))

		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Get("/api/orders", orderHandler.ListOrders())
		group.Get("/api/orders/{id}", orderHandler.GetOrder())
		group.Put("/api/orders/{id}/cancel", orderHandler.CancelOrder())

		// administrative routes
		group.Group(func(admin chi.Router) {
			admin.Use(handler.AdminMiddleware())

			admin.Get("/api/orders/admin", adminHandler.ListAllOrders())
			admin.Post("/api/orders/admin", adminHandler.CreateOrder())
			admin.Put("/api/orders/admin/{id}/status", adminHandler.UpdateOrderStatus())
		})
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
