package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// SeedCommandHandler encapsulates logic for seeding a demo tenant via CLI.
type SeedCommandHandler struct {
	authService       users.AuthService
	adminService      users.AdminService
	restaurantService restaurants.RestaurantService
	menuService       menu.MenuService
	logger            logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler instance with
// configured logger and services.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &SeedCommandHandler{
		authService:       services.authService,
		adminService:      services.adminService,
		restaurantService: services.restaurantService,
		menuService:       services.menuService,
		logger:            loggerInstance,
	}, nil
}

// SeedDemoCmd sets up a demo tenant for local development: an approved owner,
// an open restaurant, two tables and a small menu.
func (commandHandler *SeedCommandHandler) SeedDemoCmd(cmd *cobra.Command, _ []string) {
	phone, err := cmd.Flags().GetString("owner-phone")
	if err != nil {
		commandHandler.logger.Error("invalid owner-phone flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("owner-password")
	if err != nil {
		commandHandler.logger.Error("invalid owner-password flag ", err)
		return
	}
	slug, err := cmd.Flags().GetString("slug")
	if err != nil {
		commandHandler.logger.Error("invalid slug flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	ctx := context.Background()

	owner, err := commandHandler.authService.RegisterOwner(ctx, &users.User{
		Name:        "Demo Owner",
		CountryCode: "+977",
		Phone:       phone,
		Email:       "owner@" + slug + ".example",
	}, password)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if _, err := commandHandler.adminService.DecideKyc(ctx, owner.ID, users.KycApproved, ""); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	subscriptionStart := time.Now()
	subscriptionEnd := subscriptionStart.AddDate(0, 1, 0)
	restaurant, err := commandHandler.restaurantService.Create(ctx, &restaurants.Restaurant{
		OwnerID:           owner.ID,
		Slug:              slug,
		Name:              name,
		CountryCode:       "+977",
		Phone:             phone,
		Address:           "Demo Street, Kathmandu",
		SubscriptionStart: &subscriptionStart,
		SubscriptionEnd:   &subscriptionEnd,
		IsOpen:            true,
		IsActive:          true,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, tableName := range []string{"Table 1", "Table 2"} {
		if _, err := commandHandler.restaurantService.CreateTable(ctx, &restaurants.Table{
			RestaurantID: restaurant.ID,
			Name:         tableName,
			Capacity:     4,
			Floor:        "Ground",
		}); err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	unit, err := commandHandler.menuService.CreateUnit(ctx, &menu.Unit{
		RestaurantID: restaurant.ID,
		Name:         "Plate",
		Symbol:       "plate",
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	category, err := commandHandler.menuService.CreateCategory(ctx, &menu.Category{
		RestaurantID: restaurant.ID,
		Name:         "Momo",
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if _, err := commandHandler.menuService.CreateProduct(ctx, &menu.Product{
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Steam Momo",
		IsActive:     true,
		DishType:     menu.DishVeg,
		Variants: []menu.ProductVariant{
			{UnitID: unit.ID, Price: decimal.NewFromInt(180)},
			{UnitID: unit.ID, Price: decimal.NewFromInt(250), DiscountType: menu.DiscountFlat, Discount: decimal.NewFromInt(20)},
		},
	}); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Seeded demo restaurant ", restaurant.Slug, " with id ", restaurant.ID)
	commandHandler.logger.Info("Owner login: phone ", phone, " password ", password)
}

// InitSeedCommands registers demo seeding commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedDemoCmd = &cobra.Command{
		Use:   "seed-demo",
		Short: "Seed a demo owner, restaurant and menu for local development",
		Run:   handler.SeedDemoCmd,
	}
	seedDemoCmd.Flags().StringP("owner-phone", "", "9800000000", "Phone number for the demo owner login")
	seedDemoCmd.Flags().StringP("owner-password", "", "demo1234", "Password for the demo owner login")
	seedDemoCmd.Flags().StringP("slug", "", "demo-kitchen", "Public slug for the demo restaurant")
	seedDemoCmd.Flags().StringP("name", "", "Demo Kitchen", "Display name for the demo restaurant")
	rootCmd.AddCommand(seedDemoCmd)

	return nil
}
