package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"complab/internal/adapter/api"
	"complab/internal/adapter/api/handler"
	"complab/internal/adapter/api/router"
	"complab/internal/adapter/repository"
	"complab/internal/infrastructure/database"
	"complab/internal/usecase"
	"complab/pkg/config"
	"complab/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Repositories
	productRepo := repository.NewGormProductRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	promoRepo := repository.NewGormPromoCodeRepository(db)
	repairServiceRepo := repository.NewGormRepairServiceRepository(db)
	repairRequestRepo := repository.NewGormRepairRequestRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	addressRepo := repository.NewGormAddressRepository(db)
	bannerRepo := repository.NewGormBannerRepository(db)

	// Use cases
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, addressRepo, userRepo, promoRepo, usecase.CheckoutConfig{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingCost:      cfg.FlatShippingCost,
	})
	repairUseCase := usecase.NewRepairUseCase(repairServiceRepo, repairRequestRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, addressRepo)
	bannerUseCase := usecase.NewBannerUseCase(bannerRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = api.NewValidator()

	router.Setup(e, router.Handlers{
		Product:  handler.NewProductHandler(productUseCase),
		Category: handler.NewCategoryHandler(categoryUseCase),
		Order:    handler.NewOrderHandler(orderUseCase),
		Repair:   handler.NewRepairHandler(repairUseCase),
		Review:   handler.NewReviewHandler(reviewUseCase),
		User:     handler.NewUserHandler(userUseCase),
		Banner:   handler.NewBannerHandler(bannerUseCase),
	})

	logger.Info("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
