//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantSqliteRepository_GetBySlug(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))

	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))

	fetched, err := tc.RestaurantRepo.GetBySlug(context.Background(), restaurant.Slug)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, fetched.ID)

	_, err = tc.RestaurantRepo.GetBySlug(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestaurantSqliteRepository_DuplicateSlugConflict(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))

	first := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), first))

	second := CreateTestRestaurant(t, owner.ID)
	second.Slug = first.Slug
	err := tc.RestaurantRepo.Create(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRestaurantSqliteRepository_ClosedFlagsSurviveCreate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))

	restaurant := CreateTestRestaurant(t, owner.ID)
	restaurant.IsOpen = false
	restaurant.IsActive = false
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))

	fetched, err := tc.RestaurantRepo.GetByID(context.Background(), restaurant.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsOpen, "restaurant created closed must be stored closed")
	assert.False(t, fetched.IsActive, "restaurant created inactive must be stored inactive")
}

func TestRestaurantSqliteRepository_List_ActiveOnly(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))

	active := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), active))

	inactive := CreateTestRestaurant(t, owner.ID)
	inactive.IsActive = false
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), inactive))

	list, err := tc.RestaurantRepo.List(context.Background(), &restaurants.RestaurantQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
}

func TestRestaurantSqliteRepository_ExpireSubscriptions(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))

	expired := CreateTestRestaurant(t, owner.ID)
	yesterday := time.Now().AddDate(0, 0, -1)
	expired.SubscriptionEnd = &yesterday
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), expired))

	current := CreateTestRestaurant(t, owner.ID)
	nextMonth := time.Now().AddDate(0, 1, 0)
	current.SubscriptionEnd = &nextMonth
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), current))

	unlimited := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), unlimited))

	ids, err := tc.RestaurantRepo.ExpireSubscriptions(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, expired.ID, ids[0])

	deactivated, err := tc.RestaurantRepo.GetByID(context.Background(), expired.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	// Running again finds nothing new.
	ids, err = tc.RestaurantRepo.ExpireSubscriptions(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStaffSqliteRepository_AssignedTables(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))
	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))

	waiterUser := CreateTestUser(t)
	waiterUser.IsOwner = false
	waiterUser.IsStaff = true
	require.NoError(t, tc.UserRepo.Create(context.Background(), waiterUser))

	table := &restaurants.Table{RestaurantID: restaurant.ID, Name: "T1", Capacity: 4}
	require.NoError(t, tc.TableRepo.Create(context.Background(), table))

	staff := &restaurants.Staff{
		RestaurantID:     restaurant.ID,
		UserID:           waiterUser.ID,
		IsWaiter:         true,
		SalaryType:       restaurants.SalaryPerDay,
		AssignedTableIDs: []uint{table.ID},
	}
	require.NoError(t, tc.StaffRepo.Create(context.Background(), staff))

	fetched, err := tc.StaffRepo.GetByUser(context.Background(), waiterUser.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsWaiter)
	assert.Equal(t, []uint{table.ID}, fetched.AssignedTableIDs)

	ids, err := tc.StaffRepo.RestaurantIDsForUser(context.Background(), waiterUser.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{restaurant.ID}, ids)
}

func TestAttendanceSqliteRepository_Upsert(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))
	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))
	staffUser := CreateTestUser(t)
	staffUser.IsOwner = false
	staffUser.IsStaff = true
	require.NoError(t, tc.UserRepo.Create(context.Background(), staffUser))
	staff := &restaurants.Staff{RestaurantID: restaurant.ID, UserID: staffUser.ID, IsWaiter: true}
	require.NoError(t, tc.StaffRepo.Create(context.Background(), staff))

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	att := &restaurants.Attendance{StaffID: staff.ID, Date: day, Status: restaurants.AttendancePresent}
	require.NoError(t, tc.AttendanceRepo.Upsert(context.Background(), att))

	// Same day again flips the status instead of adding a row.
	att2 := &restaurants.Attendance{StaffID: staff.ID, Date: day, Status: restaurants.AttendanceLeave}
	require.NoError(t, tc.AttendanceRepo.Upsert(context.Background(), att2))

	list, err := tc.AttendanceRepo.ListByStaff(context.Background(), staff.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, restaurants.AttendanceLeave, list[0].Status)
}
