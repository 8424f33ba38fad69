package commands

import (
	"fmt"
	"os"

	"github.com/ravipangali7/My-Restro-Server/internal/app"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// cliServices bundles the application services the CLI commands operate on.
// The CLI talks to the same database as the REST server but never issues or
// checks tokens, so it runs with a no-op token store and no media connector.
type cliServices struct {
	authService         users.AuthService
	adminService        users.AdminService
	restaurantService   restaurants.RestaurantService
	subscriptionService restaurants.SubscriptionService
	menuService         menu.MenuService
}

// setupServices loads the configuration from CONFIG_PATH, connects to the
// database, runs the schema migrations and wires the services.
func setupServices(loggerInstance logger.Logger) (*cliServices, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	customerRepo, err := persistence.NewGormCustomerRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer repository: %w", err)
	}
	restaurantRepo, err := persistence.NewGormRestaurantRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant repository: %w", err)
	}
	tableRepo, err := persistence.NewGormTableRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create table repository: %w", err)
	}
	staffRepo, err := persistence.NewGormStaffRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff repository: %w", err)
	}
	attendanceRepo, err := persistence.NewGormAttendanceRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance repository: %w", err)
	}
	unitRepo, err := persistence.NewGormUnitRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit repository: %w", err)
	}
	categoryRepo, err := persistence.NewGormCategoryRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	comboRepo, err := persistence.NewGormComboRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create combo repository: %w", err)
	}

	tokenStore := cache.NewNoopTokenStore()

	authService, err := app.NewAuthService(userRepo, customerRepo, staffRepo, restaurantRepo, tokenStore, &restConfig.Auth, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	adminService, err := app.NewAdminService(userRepo, &restConfig.Auth, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}
	restaurantService, err := app.NewRestaurantService(restaurantRepo, tableRepo, staffRepo, attendanceRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %w", err)
	}
	subscriptionService, err := app.NewSubscriptionService(restaurantRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %w", err)
	}
	menuService, err := app.NewMenuService(unitRepo, categoryRepo, productRepo, comboRepo, restaurantRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}

	return &cliServices{
		authService:         authService,
		adminService:        adminService,
		restaurantService:   restaurantService,
		subscriptionService: subscriptionService,
		menuService:         menuService,
	}, nil
}
