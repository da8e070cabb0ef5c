package config

import (
	"os"
	"strconv"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/handlers"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/routes"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/middleware"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/utils/storage"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/document"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/extraction"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/jwt"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/matching"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/product"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/purchaseorder"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// file storage
	var fileStorage storage.Storage
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		fileStorage = storage.NewAwsS3()
	} else {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		fileStorage = storage.NewLocal(uploadDir)
	}

	// outbound collaborator clients
	timeout := 60 * time.Second
	if raw := utils.GetConfig("HTTP_CLIENT_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}
	extractionClient := extraction.NewClient(utils.GetConfig("EXTRACTION_API_URL"), timeout)
	matchClient := matching.NewMatchClient(utils.GetConfig("MATCHING_API_URL"), timeout)

	// Repository
	userRepository := user.NewUserRepository(db)
	documentRepository := document.NewDocumentRepository(db)
	purchaseOrderRepository := purchaseorder.NewPurchaseOrderRepository(db)
	matchingRepository := matching.NewMatchingRepository(db)
	productRepository := product.NewProductRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	documentService := document.NewDocumentService(documentRepository, extractionClient, fileStorage)
	purchaseOrderService := purchaseorder.NewPurchaseOrderService(purchaseOrderRepository, fileStorage)
	matchingService := matching.NewMatchingService(matchingRepository, matchClient)
	productService := product.NewProductService(productRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	documentHandler := handlers.NewDocumentHandler(documentService)
	purchaseOrderHandler := handlers.NewPurchaseOrderHandler(purchaseOrderService, validator)
	matchingHandler := handlers.NewMatchingHandler(matchingService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		DocumentHandler:      documentHandler,
		PurchaseOrderHandler: purchaseOrderHandler,
		MatchingHandler:      matchingHandler,
		ProductHandler:       productHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
		UserService:          userService,
	}
	routesConfig.Setup()
	return app, nil
}
