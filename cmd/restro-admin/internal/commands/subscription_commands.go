package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SubscriptionCommandHandler encapsulates logic for the subscription expiry sweep via CLI.
type SubscriptionCommandHandler struct {
	subscriptionService restaurants.SubscriptionService
	restaurantService   restaurants.RestaurantService
	logger              logger.Logger
}

// NewSubscriptionCommandHandler initializes and returns a SubscriptionCommandHandler
// instance with configured logger and subscription services.
func NewSubscriptionCommandHandler() (*SubscriptionCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &SubscriptionCommandHandler{
		subscriptionService: services.subscriptionService,
		restaurantService:   services.restaurantService,
		logger:              loggerInstance,
	}, nil
}

// ExpireSubscriptionsCmd deactivates restaurants whose subscription ended
// before today. With --dry-run it only reports what would be deactivated.
func (commandHandler *SubscriptionCommandHandler) ExpireSubscriptionsCmd(cmd *cobra.Command, _ []string) {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		commandHandler.logger.Error("invalid dry-run flag ", err)
		return
	}

	ctx := context.Background()
	today := time.Now()

	if dryRun {
		active, err := commandHandler.restaurantService.List(ctx, &restaurants.RestaurantQuery{ActiveOnly: true})
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}

		expired := 0
		for _, restaurant := range active {
			if restaurant.SubscriptionExpired(today) {
				expired++
				commandHandler.logger.Info("Would deactivate restaurant ", restaurant.Slug, " with id ", restaurant.ID)
			}
		}
		commandHandler.logger.Info("Dry run complete, ", expired, " restaurant(s) due for deactivation")
		return
	}

	ids, err := commandHandler.subscriptionService.ExpireDue(ctx, today)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, id := range ids {
		commandHandler.logger.Info("Deactivated restaurant with id ", id)
	}
	commandHandler.logger.Info("Expiry sweep complete, ", len(ids), " restaurant(s) deactivated")
}

// InitSubscriptionCommands registers subscription sweep commands
func InitSubscriptionCommands(rootCmd *cobra.Command) error {
	handler, err := NewSubscriptionCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create subscription command handler %w", err)
	}

	var expireSubscriptionsCmd = &cobra.Command{
		Use:   "expire-subscriptions",
		Short: "Deactivate restaurants whose subscription has lapsed",
		Run:   handler.ExpireSubscriptionsCmd,
	}
	expireSubscriptionsCmd.Flags().BoolP("dry-run", "", false, "Report expired subscriptions without deactivating")
	rootCmd.AddCommand(expireSubscriptionsCmd)

	return nil
}
