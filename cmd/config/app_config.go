package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/maximebaudoin/expired-products/internal/api/handlers"
	"github.com/maximebaudoin/expired-products/internal/api/routes"
	"github.com/maximebaudoin/expired-products/internal/middleware"
	"github.com/maximebaudoin/expired-products/internal/utils"
	"github.com/maximebaudoin/expired-products/internal/utils/storage"
	"github.com/maximebaudoin/expired-products/pkg/catalog"
	"github.com/maximebaudoin/expired-products/pkg/device"
	"github.com/maximebaudoin/expired-products/pkg/jwt"
	"github.com/maximebaudoin/expired-products/pkg/notification"
	"github.com/maximebaudoin/expired-products/pkg/product"
	"github.com/maximebaudoin/expired-products/pkg/scan"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Paris",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	storageRepository := product.NewStorageRepository(db)
	deviceRepository := device.NewDeviceRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	deviceService := device.NewDeviceService(deviceRepository, jwtService)
	catalogService := catalog.NewCatalogService(utils.GetConfig("OPENFOODFACTS_URL"))
	scanService := scan.NewScanService(catalogService)
	notificationService := notification.NewNotificationService(
		deviceRepository,
		s3,
		utils.GetConfig("SCHEDULER_URL"),
		utils.GetConfig("SCHEDULER_SECRET"),
	)
	productStore := product.NewProductStore(storageRepository)
	productService := product.NewProductService(productStore, notificationService)

	// Handler
	deviceHandler := handlers.NewDeviceHandler(deviceService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		DeviceHandler:  deviceHandler,
		ScanHandler:    scanHandler,
		ProductHandler: productHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
