package commands

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler encapsulates logic for managing platform administrator accounts via CLI.
type AdminCommandHandler struct {
	adminService users.AdminService
	logger       logger.Logger
}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler instance with
// configured logger and admin service.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &AdminCommandHandler{
		adminService: services.adminService,
		logger:       loggerInstance,
	}, nil
}

// CreateSuperAdminCmd creates a super-admin account that can log into the
// platform back office.
func (commandHandler *AdminCommandHandler) CreateSuperAdminCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	countryCode, err := cmd.Flags().GetString("country-code")
	if err != nil {
		commandHandler.logger.Error("invalid country-code flag ", err)
		return
	}
	phone, err := cmd.Flags().GetString("phone")
	if err != nil {
		commandHandler.logger.Error("invalid phone flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	user := &users.User{
		Name:        name,
		CountryCode: countryCode,
		Phone:       phone,
		Email:       email,
	}

	created, err := commandHandler.adminService.CreateSuperAdmin(context.Background(), user, password)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Super admin ", created.Phone, " created with id ", created.ID)
}

// InitAdminCommands registers administrator account commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create admin command handler %w", err)
	}

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create a super-admin account",
		Run:   handler.CreateSuperAdminCmd,
	}
	createAdminCmd.Flags().StringP("name", "", "", "Full name of the administrator")
	createAdminCmd.Flags().StringP("country-code", "", "+977", "Phone country code")
	createAdminCmd.Flags().StringP("phone", "", "", "Phone number used to log in")
	createAdminCmd.Flags().StringP("email", "", "", "Email address")
	createAdminCmd.Flags().StringP("password", "", "", "Login password")
	rootCmd.AddCommand(createAdminCmd)

	return nil
}
