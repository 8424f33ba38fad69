package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// ErrInvalidCredentials is returned for any login failure so the response
// never reveals whether the phone exists.
var ErrInvalidCredentials = errors.New("invalid phone or password")

// ErrAccountDisabled is returned when the password matches but the account
// has been deactivated.
var ErrAccountDisabled = fmt.Errorf("account disabled: %w", domain.ErrForbidden)

// authService implements the users.AuthService interface
type authService struct {
	userRepo       users.UserRepository
	customerRepo   users.CustomerRepository
	staffRepo      restaurants.StaffRepository
	restaurantRepo restaurants.RestaurantRepository
	tokenStore     cache.TokenStore
	settings       *config.AuthSettings
	logger         logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	customerRepo users.CustomerRepository,
	staffRepo restaurants.StaffRepository,
	restaurantRepo restaurants.RestaurantRepository,
	tokenStore cache.TokenStore,
	settings *config.AuthSettings,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo:       userRepo,
		customerRepo:   customerRepo,
		staffRepo:      staffRepo,
		restaurantRepo: restaurantRepo,
		tokenStore:     tokenStore,
		settings:       settings,
		logger:         logger,
	}, nil
}

// Login authenticates by phone. Without an accountType hint customers are
// tried first so a diner and a staff member sharing a phone both keep
// working; the staff surface is still reachable because customer rows
// without a usable password fall through to the user table. A hint of
// "customer" or "user" restricts the lookup to that side.
func (s *authService) Login(ctx context.Context, countryCode, phone, password, accountType string) (*users.AuthResult, error) {
	if accountType != auth.AccountUser {
		customer, err := s.customerRepo.GetByPhone(ctx, countryCode, phone)
		if err == nil && customer.CanLogin() && auth.CheckPassword(password, customer.PasswordHash) {
			token, _, err := auth.GenerateToken(s.settings.JWTSecret, customer.ID, auth.AccountCustomer, users.RoleCustomer, s.settings.TokenTTL())
			if err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			s.logger.Info("Customer logged in with id ", customer.ID)
			return &users.AuthResult{
				Token:       token,
				AccountID:   customer.ID,
				AccountType: auth.AccountCustomer,
				Name:        customer.Name,
				Role:        users.RoleCustomer,
			}, nil
		}
		if accountType == auth.AccountCustomer {
			return nil, ErrInvalidCredentials
		}
	}

	user, err := s.userRepo.GetByPhone(ctx, countryCode, phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	role, restaurantIDs, err := s.RoleOf(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	token, _, err := auth.GenerateToken(s.settings.JWTSecret, user.ID, auth.AccountUser, role, s.settings.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("User logged in with id ", user.ID)
	return &users.AuthResult{
		Token:         token,
		AccountID:     user.ID,
		AccountType:   auth.AccountUser,
		Name:          user.Name,
		Role:          role,
		RestaurantIDs: restaurantIDs,
	}, nil
}

// RoleOf derives the effective role from account flags and staff rows.
func (s *authService) RoleOf(ctx context.Context, user *users.User) (string, []uint, error) {
	if user.IsSuperuser {
		return users.RoleSuperAdmin, nil, nil
	}
	if user.IsOwner {
		owned, err := s.restaurantRepo.List(ctx, &restaurants.RestaurantQuery{OwnerID: user.ID})
		if err != nil {
			return "", nil, fmt.Errorf("%w", err)
		}
		ids := make([]uint, len(owned))
		for i, r := range owned {
			ids[i] = r.ID
		}
		return users.RoleOwner, ids, nil
	}

	staff, err := s.staffRepo.GetByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return users.RoleCustomer, nil, nil
		}
		return "", nil, fmt.Errorf("%w", err)
	}

	ids, err := s.staffRepo.RestaurantIDsForUser(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("%w", err)
	}

	switch {
	case staff.IsManager:
		return users.RoleManager, ids, nil
	case user.IsKitchen:
		return users.RoleKitchen, ids, nil
	case staff.IsWaiter:
		return users.RoleWaiter, ids, nil
	}
	return users.RoleCustomer, ids, nil
}

// RegisterOwner creates an owner account awaiting KYC approval.
func (s *authService) RegisterOwner(ctx context.Context, user *users.User, password string) (*users.User, error) {
	hash, err := auth.HashPassword(password, s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	user.PasswordHash = hash
	user.IsOwner = true
	user.IsActive = true
	user.KycStatus = users.KycPending

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// RegisterStaff creates a staff user account for waiter, kitchen or
// manager logins.
func (s *authService) RegisterStaff(ctx context.Context, user *users.User, password string) (*users.User, error) {
	hash, err := auth.HashPassword(password, s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	user.PasswordHash = hash
	user.IsStaff = true
	user.IsActive = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// RegisterCustomer creates a diner account. If a walk-in row with an
// unusable password already exists for the phone, it is claimed instead.
func (s *authService) RegisterCustomer(ctx context.Context, customer *users.Customer, password string) (*users.Customer, error) {
	hash, err := auth.HashPassword(password, s.settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	existing, err := s.customerRepo.GetByPhone(ctx, customer.CountryCode, customer.Phone)
	if err == nil {
		if existing.CanLogin() {
			return nil, fmt.Errorf("customer with phone %s%s already exists: %w", customer.CountryCode, customer.Phone, domain.ErrConflict)
		}
		existing.Name = customer.Name
		existing.Address = customer.Address
		existing.PasswordHash = hash
		if err := s.customerRepo.UpdateByID(ctx, existing); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	customer.PasswordHash = hash
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return customer, nil
}

// ChangePassword verifies the old password and replaces it.
func (s *authService) ChangePassword(ctx context.Context, accountType string, accountID uint, oldPassword, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.settings.BcryptCost)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	switch accountType {
	case auth.AccountCustomer:
		customer, err := s.customerRepo.GetByID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if customer.CanLogin() && !auth.CheckPassword(oldPassword, customer.PasswordHash) {
			return ErrInvalidCredentials
		}
		customer.PasswordHash = hash
		return s.customerRepo.UpdateByID(ctx, customer)

	case auth.AccountUser:
		user, err := s.userRepo.GetByID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if !auth.CheckPassword(oldPassword, user.PasswordHash) {
			return ErrInvalidCredentials
		}
		user.PasswordHash = hash
		return s.userRepo.UpdateByID(ctx, user)
	}
	return fmt.Errorf("unsupported account type: %s", accountType)
}

// Account loads the profile behind a token with the derived role.
func (s *authService) Account(ctx context.Context, accountType string, accountID uint) (*users.Account, error) {
	switch accountType {
	case auth.AccountCustomer:
		customer, err := s.customerRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return &users.Account{Customer: customer, Role: users.RoleCustomer}, nil

	case auth.AccountUser:
		user, err := s.userRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		role, restaurantIDs, err := s.RoleOf(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return &users.Account{User: user, Role: role, RestaurantIDs: restaurantIDs}, nil
	}
	return nil, fmt.Errorf("unsupported account type: %s", accountType)
}

// Logout revokes the token id until its natural expiry.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := s.tokenStore.Revoke(ctx, jti, time.Until(expiresAt)); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
