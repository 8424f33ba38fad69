package app

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// adminService implements the users.AdminService interface
type adminService struct {
	userRepo users.UserRepository
	settings *config.AuthSettings
	logger   logger.Logger
}

// NewAdminService creates a new adminService instance
func NewAdminService(userRepo users.UserRepository, settings *config.AuthSettings, logger logger.Logger) (users.AdminService, error) {
	return &adminService{
		userRepo: userRepo,
		settings: settings,
		logger:   logger,
	}, nil
}

func (s *adminService) ListOwners(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	isOwner := true
	query.IsOwner = &isOwner
	list, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// DecideKyc approves or rejects an owner's KYC submission.
func (s *adminService) DecideKyc(ctx context.Context, userID uint, status, reason string) (*users.User, error) {
	if status != users.KycApproved && status != users.KycRejected {
		return nil, fmt.Errorf("unknown kyc decision: %s", status)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	user.KycStatus = status
	user.RejectReason = ""
	if status == users.KycRejected {
		user.RejectReason = reason
	}
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("KYC for user ", userID, " marked ", status)
	return user, nil
}

// CreateSuperAdmin creates a platform administrator account.
func (s *adminService) CreateSuperAdmin(ctx context.Context, user *users.User, password string) (*users.User, error) {
	hash, err := auth.HashPassword(password, s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	user.PasswordHash = hash
	user.IsSuperuser = true
	user.IsActive = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created super admin with id ", user.ID)
	return user, nil
}
