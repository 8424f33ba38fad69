//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	err := tc.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestUserSqliteRepository_GetByPhone(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))

	fetched, err := tc.UserRepo.GetByPhone(context.Background(), user.CountryCode, user.Phone)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.True(t, fetched.IsOwner)
}

func TestUserSqliteRepository_GetByPhone_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	user, err := tc.UserRepo.GetByPhone(context.Background(), "+977", "0000000000")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserSqliteRepository_DuplicatePhone(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))

	dup := CreateTestUser(t)
	dup.CountryCode = user.CountryCode
	dup.Phone = user.Phone
	err := tc.UserRepo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCustomerSqliteRepository_GetByPhone_AnyCountryCode(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	customer := CreateTestCustomer(t)
	require.NoError(t, tc.CustomerRepo.Create(context.Background(), customer))

	// Empty country code matches any customer with that phone.
	fetched, err := tc.CustomerRepo.GetByPhone(context.Background(), "", customer.Phone)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, fetched.ID)
	assert.False(t, fetched.CanLogin())
}

func TestCustomerLinkSqliteRepository_GetOrCreate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))
	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))
	customer := CreateTestCustomer(t)
	require.NoError(t, tc.CustomerRepo.Create(context.Background(), customer))

	link, err := tc.LinkRepo.GetOrCreate(context.Background(), customer.ID, restaurant.ID)
	require.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.True(t, link.ToPay.IsZero())

	// Second call returns the same row.
	again, err := tc.LinkRepo.GetOrCreate(context.Background(), customer.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, again.ID)
}
