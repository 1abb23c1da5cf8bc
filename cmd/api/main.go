package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on system env")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}

	// 2. Setup Database
	db := database.ConnectDB()
	defer database.Close(db)
	db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Inventory{},
		&model.Transaction{},
		&model.User{},
	)

	// 3. Seed default admin user
	seedAdmin(db, log)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)
	ledgerStore := repository.NewLedgerStore(db, log)

	ledgerService := service.NewLedgerService(ledgerStore, wsHub)
	queryService := service.NewQueryService(inventoryRepo, txRepo, productRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo, txRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	supplierService := service.NewSupplierService(supplierRepo, productRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	inventoryHandler := handler.NewInventoryHandler(queryService, ledgerService, inventoryRepo)
	txHandler := handler.NewTransactionHandler(ledgerService, queryService)
	reportHandler := handler.NewReportHandler(queryService, productService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Inventory API v1.0",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", authHandler.Verify)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User management (admin only)
	users := auth.Group("/users", middleware.RequireAuth(userRepo), middleware.RequireRole(model.RoleAdmin))
	users.Get("", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products
	products := protected.Group("/products")
	products.Get("", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.Get)
	products.Post("", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", middleware.RequireRole(model.RoleAdmin), productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categories.Get("", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", middleware.RequireRole(model.RoleAdmin), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	suppliers.Get("", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Get("/:id/products", supplierHandler.Products)
	suppliers.Post("", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", middleware.RequireRole(model.RoleAdmin), supplierHandler.Delete)

	// Inventory
	inventory := protected.Group("/inventory")
	inventory.Get("", inventoryHandler.List)
	inventory.Get("/summary", inventoryHandler.Summary)
	inventory.Get("/by-category", inventoryHandler.ByCategory)
	inventory.Get("/by-supplier", inventoryHandler.BySupplier)
	inventory.Get("/:productId", inventoryHandler.Get)
	inventory.Put("/:productId", inventoryHandler.Update)

	// Transactions (stock ledger)
	transactions := protected.Group("/transactions")
	transactions.Get("", txHandler.List)
	transactions.Get("/summary", txHandler.Summary)
	transactions.Get("/recent", txHandler.Recent)
	transactions.Get("/history/:productId", txHandler.History)
	transactions.Get("/:id", txHandler.Get)
	transactions.Post("/stock-in", txHandler.StockIn)
	transactions.Post("/stock-out", txHandler.StockOut)
	transactions.Post("/adjust", txHandler.Adjust)

	// Reports
	reports := protected.Group("/reports")
	reports.Get("/stock-summary", reportHandler.StockSummary)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/transaction-summary", reportHandler.TransactionSummary)
	reports.Get("/category-wise", reportHandler.CategoryWise)
	reports.Get("/supplier-wise", reportHandler.SupplierWise)
	reports.Get("/dashboard-stats", reportHandler.DashboardStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB, log *logrus.Logger) {
	userRepo := repository.NewUserRepo(db)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	if _, err := userRepo.FindByUsername(username); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Username: username,
		FullName: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.WithError(err).Warn("failed to hash admin password")
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.WithError(err).Warn("failed to create admin user")
		return
	}
	log.WithField("username", username).Info("admin user created")
}
