package users

import (
	"context"
	"time"
)

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	// Create adds a new User
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByPhone retrieves a User by (countryCode, phone)
	GetByPhone(ctx context.Context, countryCode, phone string) (*User, error)
	// List lists Users, optionally filtered to owners awaiting KYC etc.
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	// UpdateByID updates a User
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User
	DeleteByID(ctx context.Context, id uint) error
}

// CustomerRepository defines persistence operations for diner accounts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	// GetByPhone matches (countryCode, phone); an empty countryCode matches any.
	GetByPhone(ctx context.Context, countryCode, phone string) (*Customer, error)
	List(ctx context.Context, query *CustomerQuery) ([]*Customer, error)
	UpdateByID(ctx context.Context, customer *Customer) error
	DeleteByID(ctx context.Context, id uint) error
}

// AuthResult is what a successful login returns.
type AuthResult struct {
	Token         string
	AccountID     uint
	AccountType   string
	Name          string
	Role          string
	RestaurantIDs []uint
}

// Account is the profile behind a token. Exactly one of User and Customer
// is set, matching the account type.
type Account struct {
	User          *User
	Customer      *Customer
	Role          string
	RestaurantIDs []uint
}

// AuthService handles the unified login for staff users and customers, and
// account lifecycle operations.
type AuthService interface {
	// Login authenticates by (countryCode, phone, password). With an empty
	// accountType customers are checked first and staff users second, so a
	// diner and a waiter can share a phone number; "customer" or "user"
	// restricts the lookup to that side.
	Login(ctx context.Context, countryCode, phone, password, accountType string) (*AuthResult, error)
	// RegisterOwner creates an owner account awaiting KYC approval.
	RegisterOwner(ctx context.Context, user *User, password string) (*User, error)
	// RegisterStaff creates a staff user account (waiter / kitchen / manager
	// login), ready to be attached to a restaurant via a Staff row.
	RegisterStaff(ctx context.Context, user *User, password string) (*User, error)
	// RegisterCustomer creates a diner account with a usable password.
	RegisterCustomer(ctx context.Context, customer *Customer, password string) (*Customer, error)
	// ChangePassword verifies the old password and replaces it.
	ChangePassword(ctx context.Context, accountType string, accountID uint, oldPassword, newPassword string) error
	// Logout revokes the token id until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// Account loads the profile behind a token with the derived role.
	Account(ctx context.Context, accountType string, accountID uint) (*Account, error)
	// RoleOf derives the effective role name for a staff user.
	RoleOf(ctx context.Context, user *User) (string, []uint, error)
}

// AdminService covers the platform back office: owner onboarding review
// and privileged account creation.
type AdminService interface {
	ListOwners(ctx context.Context, query *UserQuery) ([]*User, error)
	// DecideKyc approves or rejects an owner's KYC submission. Rejection
	// records the reason on the account.
	DecideKyc(ctx context.Context, userID uint, status, reason string) (*User, error)
	// CreateSuperAdmin creates a platform administrator account.
	CreateSuperAdmin(ctx context.Context, user *User, password string) (*User, error)
}

// UserQuery filters staff account listings.
type UserQuery struct {
	KycStatus string
	IsOwner   *bool
	Limit     int
	Offset    int
}

// CustomerQuery filters customer listings.
type CustomerQuery struct {
	RestaurantID uint // via customer-restaurant links; 0 means all
	Search       string
	Limit        int
	Offset       int
}
