// cmd/restro-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	v1 "github.com/ravipangali7/My-Restro-Server/internal/api/rest/v1"
	"github.com/ravipangali7/My-Restro-Server/internal/app"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/connector"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/qr"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// An optional positional argument overrides the configured port:
	// restro-rest-api [port]
	if len(os.Args) > 1 {
		restConfig.Port = os.Args[1]
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// initializeDependencies sets up repositories, infrastructure and services
// and bundles them as route dependencies.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*v1.RouteDeps, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	customerRepo, err := persistence.NewGormCustomerRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer repository: %w", err)
	}
	linkRepo, err := persistence.NewGormCustomerLinkRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer link repository: %w", err)
	}
	restaurantRepo, err := persistence.NewGormRestaurantRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant repository: %w", err)
	}
	tableRepo, err := persistence.NewGormTableRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create table repository: %w", err)
	}
	staffRepo, err := persistence.NewGormStaffRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff repository: %w", err)
	}
	attendanceRepo, err := persistence.NewGormAttendanceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance repository: %w", err)
	}
	unitRepo, err := persistence.NewGormUnitRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit repository: %w", err)
	}
	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	comboRepo, err := persistence.NewGormComboRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create combo repository: %w", err)
	}
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	materialRepo, err := persistence.NewGormRawMaterialRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create raw material repository: %w", err)
	}
	consumptionRepo, err := persistence.NewGormConsumptionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumption repository: %w", err)
	}
	stockLogRepo, err := persistence.NewGormStockLogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock log repository: %w", err)
	}
	transactionRepo, err := persistence.NewGormTransactionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}
	feedbackRepo, err := persistence.NewGormFeedbackRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback repository: %w", err)
	}
	callRepo, err := persistence.NewGormWaiterCallRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create waiter call repository: %w", err)
	}

	// Initialize infrastructure
	ctx := context.Background()

	tokenStore := cache.NewNoopTokenStore()
	if cfg.Redis.Enabled {
		tokenStore, err = cache.NewRedisTokenStore(ctx, &cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis token store: %w", err)
		}
	}

	var media connector.MediaConnector
	if cfg.Media.Enabled {
		media, err = connector.NewMinioMediaConnector(ctx, &cfg.Media, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create media connector: %w", err)
		}
	}

	// Initialize services
	authService, err := app.NewAuthService(userRepo, customerRepo, staffRepo, restaurantRepo, tokenStore, &cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	adminService, err := app.NewAdminService(userRepo, &cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}
	restaurantService, err := app.NewRestaurantService(restaurantRepo, tableRepo, staffRepo, attendanceRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %w", err)
	}
	menuService, err := app.NewMenuService(unitRepo, categoryRepo, productRepo, comboRepo, restaurantRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}
	inventoryService, err := app.NewInventoryService(materialRepo, consumptionRepo, stockLogRepo, orderRepo, comboRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory service: %w", err)
	}
	orderService, err := app.NewOrderService(orderRepo, productRepo, comboRepo, restaurantRepo, staffRepo, customerRepo, linkRepo, inventoryService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	billingService, err := app.NewBillingService(orderRepo, restaurantRepo, tableRepo, staffRepo, userRepo, customerRepo, linkRepo, transactionRepo, media, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create billing service: %w", err)
	}
	feedbackService, err := app.NewFeedbackService(feedbackRepo, callRepo, restaurantRepo, customerRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback service: %w", err)
	}

	return &v1.RouteDeps{
		AuthService:       authService,
		AdminService:      adminService,
		RestaurantService: restaurantService,
		MenuService:       menuService,
		OrderService:      orderService,
		InventoryService:  inventoryService,
		BillingService:    billingService,
		FeedbackService:   feedbackService,
		TokenStore:        tokenStore,
		JWTSecret:         cfg.Auth.JWTSecret,
		QR:                qr.NewGenerator(cfg.FrontendBaseURL),
		Media:             media,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *v1.RouteDeps, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	r.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		FrameDeny:          true,
	}))

	// Configure CORS. Auth rides in the Authorization header, not cookies,
	// so the wildcard origin needs no credentials support.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, *deps)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
