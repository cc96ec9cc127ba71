package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"florada/internal/catalog"
	"florada/internal/config"
	"florada/internal/database"
	"florada/internal/handlers"
	"florada/internal/logger"
	"florada/internal/messaging"
	"florada/internal/middleware"
	"florada/internal/quote"
	"florada/internal/services"
	"florada/internal/session"
	"florada/internal/validator"
	"florada/internal/webhook"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Catalog, session store and external clients
	catalogStore, err := catalog.NewStore(dbManager.DB())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	sessionStore := session.NewStore()
	gateway := messaging.NewClient(appConfig.MessagingBaseURL, appConfig.MessagingAPIKey, appConfig.MessagingInstance, nil)
	orderClient := webhook.NewClient(appConfig.OrderWebhookURL, nil)

	renderer, err := quote.NewRenderer(appConfig.CompanyName)
	if err != nil {
		return fmt.Errorf("failed to parse quote templates: %w", err)
	}

	// Initialize services
	authService := services.NewAuthService(sessionStore, gateway, appConfig.CountryCode, appConfig.AdminPhones)
	catalogService := services.NewCatalogService(catalogStore)
	budgetService := services.NewBudgetService(sessionStore, catalogStore, appConfig.FreightFee)
	quoteService := services.NewQuoteService(sessionStore, renderer)
	orderService := services.NewOrderService(sessionStore, orderClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.Profile)
	protected.POST("/auth/logout", authHandler.Logout)

	// Catalog routes
	catalogGroup := protected.Group("/catalog")
	catalogGroup.GET("/flowers", catalogHandler.ListFlowers)
	catalogGroup.GET("/furniture", catalogHandler.ListFurniture)
	catalogGroup.GET("/professionals", catalogHandler.ListProfessionals)
	catalogGroup.GET("/suppliers", catalogHandler.ListSuppliers)

	// Admin-only flower catalog management
	admin := catalogGroup.Group("/")
	admin.Use(middleware.AdminRequired())
	admin.POST("/flowers", catalogHandler.CreateFlower)
	admin.PUT("/flowers/:id", catalogHandler.UpdateFlower)
	admin.DELETE("/flowers/:id", catalogHandler.DeleteFlower)
	admin.GET("/flowers/export", catalogHandler.ExportFlowers)
	admin.POST("/flowers/import", catalogHandler.ImportFlowers)

	// Budget session routes
	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)

	budget.POST("/arrangements/start", budgetHandler.StartArrangement)
	budget.POST("/arrangements/flowers", budgetHandler.AddFlower)
	budget.DELETE("/arrangements/flowers/:index", budgetHandler.RemoveFlower)
	budget.POST("/arrangements/save", budgetHandler.SaveArrangement)
	budget.POST("/arrangements/new", budgetHandler.NewArrangement)
	budget.DELETE("/arrangements/:index", budgetHandler.RemoveArrangement)

	budget.POST("/rental", budgetHandler.AddRental)
	budget.DELETE("/rental/:index", budgetHandler.RemoveRental)

	budget.POST("/labor/:section/rows", budgetHandler.AddLaborRow)
	budget.PATCH("/labor/:section/rows/:index", budgetHandler.UpdateLaborRow)
	budget.DELETE("/labor/:section/rows/:index", budgetHandler.RemoveLaborRow)
	budget.POST("/labor/reserve", budgetHandler.ReserveProfessional)
	budget.PUT("/labor/discount", budgetHandler.SetDiscount)

	budget.PATCH("/scenography/wood", budgetHandler.UpdateWood)
	budget.PATCH("/scenography/materials/:index", budgetHandler.UpdateMaterial)
	budget.PATCH("/scenography/cleaning/:index", budgetHandler.UpdateCleaning)
	budget.POST("/scenography/supplier-items", budgetHandler.AddSupplierItem)

	// Printable documents
	quotes := protected.Group("/quotes")
	quotes.GET("/full", quoteHandler.Full)
	quotes.GET("/rental", quoteHandler.Rental)
	quotes.GET("/scenography", quoteHandler.Scenography)

	// Order confirmation
	protected.POST("/orders", orderHandler.Submit)

	log.Infow("Starting server", "port", appConfig.Port, "env", appConfig.Env)
	return router.Run(":" + appConfig.Port)
}
