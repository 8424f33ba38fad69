//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	pkgTesting "github.com/ravipangali7/My-Restro-Server/internal/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (*persistence.TestContext, users.AuthService) {
	t.Helper()

	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := pkgTesting.SetupTestLogger(t)

	settings := &config.AuthSettings{
		JWTSecret:     "integration-test-secret-key",
		TokenTTLHours: 1,
		BcryptCost:    4,
	}

	svc, err := NewAuthService(tc.UserRepo, tc.CustomerRepo, tc.StaffRepo, tc.RestaurantRepo, cache.NewNoopTokenStore(), settings, logger)
	require.NoError(t, err)
	return tc, svc
}

func TestAuthService_OwnerLogin(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	owner := persistence.CreateTestUser(t)
	registered, err := svc.RegisterOwner(ctx, owner, "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, users.KycPending, registered.KycStatus)

	restaurant := persistence.CreateTestRestaurant(t, registered.ID)
	require.NoError(t, tc.RestaurantRepo.Create(ctx, restaurant))

	result, err := svc.Login(ctx, owner.CountryCode, owner.Phone, "secret-pass", "")
	require.NoError(t, err)
	assert.Equal(t, users.RoleOwner, result.Role)
	assert.Equal(t, auth.AccountUser, result.AccountType)
	assert.Contains(t, result.RestaurantIDs, restaurant.ID)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAuthService(t)

	owner := persistence.CreateTestUser(t)
	_, err := svc.RegisterOwner(ctx, owner, "secret-pass")
	require.NoError(t, err)

	_, err = svc.Login(ctx, owner.CountryCode, owner.Phone, "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "+977", "0000000000", "whatever", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CustomerTriedBeforeUser(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	// A staff user and a diner sharing the same phone.
	user := persistence.CreateTestUser(t)
	user.IsOwner = false
	hash, err := auth.HashPassword("staff-pass", 4)
	require.NoError(t, err)
	user.PasswordHash = hash
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	customer := persistence.CreateTestCustomer(t)
	customer.CountryCode = user.CountryCode
	customer.Phone = user.Phone
	_, err = svc.RegisterCustomer(ctx, customer, "diner-pass")
	require.NoError(t, err)

	result, err := svc.Login(ctx, user.CountryCode, user.Phone, "diner-pass", "")
	require.NoError(t, err)
	assert.Equal(t, auth.AccountCustomer, result.AccountType)

	// The staff password still reaches the user row.
	result, err = svc.Login(ctx, user.CountryCode, user.Phone, "staff-pass", "")
	require.NoError(t, err)
	assert.Equal(t, auth.AccountUser, result.AccountType)
}

func TestAuthService_AccountTypeHint(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	// A staff user and a diner sharing the same phone.
	user := persistence.CreateTestUser(t)
	user.IsOwner = false
	hash, err := auth.HashPassword("staff-pass", 4)
	require.NoError(t, err)
	user.PasswordHash = hash
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	customer := persistence.CreateTestCustomer(t)
	customer.CountryCode = user.CountryCode
	customer.Phone = user.Phone
	_, err = svc.RegisterCustomer(ctx, customer, "diner-pass")
	require.NoError(t, err)

	// "user" skips the customer table entirely.
	_, err = svc.Login(ctx, user.CountryCode, user.Phone, "diner-pass", auth.AccountUser)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	result, err := svc.Login(ctx, user.CountryCode, user.Phone, "staff-pass", auth.AccountUser)
	require.NoError(t, err)
	assert.Equal(t, auth.AccountUser, result.AccountType)

	// "customer" never falls through to the user table.
	_, err = svc.Login(ctx, user.CountryCode, user.Phone, "staff-pass", auth.AccountCustomer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	result, err = svc.Login(ctx, user.CountryCode, user.Phone, "diner-pass", auth.AccountCustomer)
	require.NoError(t, err)
	assert.Equal(t, auth.AccountCustomer, result.AccountType)
}

func TestAuthService_DisabledAccountLogin(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	user := persistence.CreateTestUser(t)
	user.IsOwner = false
	user.IsActive = false
	hash, err := auth.HashPassword("staff-pass", 4)
	require.NoError(t, err)
	user.PasswordHash = hash
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	// The disabled flag survives the round trip.
	stored, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "user created inactive must be stored inactive")

	// Correct password on a disabled account is distinguishable from bad
	// credentials so the API can answer 403 instead of 401.
	_, err = svc.Login(ctx, user.CountryCode, user.Phone, "staff-pass", "")
	assert.ErrorIs(t, err, ErrAccountDisabled)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Wrong password on the same account stays a credentials failure.
	_, err = svc.Login(ctx, user.CountryCode, user.Phone, "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterCustomerClaimsWalkIn(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	// Walk-in row created at the counter, no usable password.
	walkIn := persistence.CreateTestCustomer(t)
	require.NoError(t, tc.CustomerRepo.Create(ctx, walkIn))
	require.False(t, walkIn.CanLogin())

	claim := &users.Customer{
		Name:        "Claimed Diner",
		CountryCode: walkIn.CountryCode,
		Phone:       walkIn.Phone,
	}
	claimed, err := svc.RegisterCustomer(ctx, claim, "diner-pass")
	require.NoError(t, err)
	assert.Equal(t, walkIn.ID, claimed.ID, "existing row is claimed, not duplicated")
	assert.Equal(t, "Claimed Diner", claimed.Name)

	result, err := svc.Login(ctx, walkIn.CountryCode, walkIn.Phone, "diner-pass", "")
	require.NoError(t, err)
	assert.Equal(t, claimed.ID, result.AccountID)

	// A second registration on the same phone now conflicts.
	_, err = svc.RegisterCustomer(ctx, &users.Customer{
		Name:        "Impostor",
		CountryCode: walkIn.CountryCode,
		Phone:       walkIn.Phone,
	}, "other-pass")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_StaffRoles(t *testing.T) {
	ctx := context.Background()
	tc, svc := setupAuthService(t)

	owner := persistence.CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(ctx, owner))
	restaurant := persistence.CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(ctx, restaurant))

	waiterUser := persistence.CreateTestUser(t)
	waiterUser.IsOwner = false
	hash, err := auth.HashPassword("waiter-pass", 4)
	require.NoError(t, err)
	waiterUser.PasswordHash = hash
	require.NoError(t, tc.UserRepo.Create(ctx, waiterUser))
	require.NoError(t, tc.StaffRepo.Create(ctx, &restaurants.Staff{
		RestaurantID: restaurant.ID,
		UserID:       waiterUser.ID,
		IsWaiter:     true,
		Designation:  "Waiter",
	}))

	result, err := svc.Login(ctx, waiterUser.CountryCode, waiterUser.Phone, "waiter-pass", "")
	require.NoError(t, err)
	assert.Equal(t, users.RoleWaiter, result.Role)
	assert.Equal(t, []uint{restaurant.ID}, result.RestaurantIDs)
}

func TestAuthService_ChangePasswordAndLogout(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAuthService(t)

	customer := persistence.CreateTestCustomer(t)
	_, err := svc.RegisterCustomer(ctx, customer, "first-pass")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, auth.AccountCustomer, customer.ID, "wrong", "second-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, auth.AccountCustomer, customer.ID, "first-pass", "second-pass")
	require.NoError(t, err)

	_, err = svc.Login(ctx, customer.CountryCode, customer.Phone, "first-pass", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	result, err := svc.Login(ctx, customer.CountryCode, customer.Phone, "second-pass", "")
	require.NoError(t, err)

	claims, err := auth.ParseToken(result.Token, "integration-test-secret-key")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims.ID, time.Now().Add(time.Hour)))
}
