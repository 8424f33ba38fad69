//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedMenu creates a restaurant with one product variant and returns both.
func seedMenu(t *testing.T, tc *TestContext) (restaurantID, variantID uint) {
	t.Helper()

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))
	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))

	unit := &menu.Unit{RestaurantID: restaurant.ID, Name: "Plate"}
	require.NoError(t, tc.UnitRepo.Create(context.Background(), unit))
	category := &menu.Category{RestaurantID: restaurant.ID, Name: "Snacks"}
	require.NoError(t, tc.CategoryRepo.Create(context.Background(), category))

	product := CreateTestProduct(t, restaurant.ID, category.ID, unit.ID)
	require.NoError(t, tc.ProductRepo.Create(context.Background(), product))

	return restaurant.ID, product.Variants[0].ID
}

func TestOrderSqliteRepository_CreateWithItems(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	order := CreateTestOrder(t, restaurantID, variantID)
	require.NoError(t, tc.OrderRepo.Create(context.Background(), order))
	assert.NotZero(t, order.ID)

	fetched, err := tc.OrderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Test Momo", fetched.Items[0].Name)
	assert.True(t, fetched.Items[0].Total.Equal(decimal.NewFromInt(500)))
}

func TestOrderSqliteRepository_List_ByStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	pending := CreateTestOrder(t, restaurantID, variantID)
	require.NoError(t, tc.OrderRepo.Create(context.Background(), pending))

	served := CreateTestOrder(t, restaurantID, variantID)
	served.Status = orders.StatusServed
	require.NoError(t, tc.OrderRepo.Create(context.Background(), served))

	query := orders.NewOrderQuery()
	query.RestaurantIDs = []uint{restaurantID}
	query.Statuses = orders.OpenStatuses

	open, err := tc.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, pending.ID, open[0].ID)
}

func TestOrderSqliteRepository_List_RejectsUnknownSortField(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	query := orders.NewOrderQuery()
	query.SortBy = "total; DROP TABLE orders"

	_, err := tc.OrderRepo.List(context.Background(), query)
	assert.Error(t, err)
}

func TestOrderSqliteRepository_UpdateByID_HeaderOnly(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	order := CreateTestOrder(t, restaurantID, variantID)
	require.NoError(t, tc.OrderRepo.Create(context.Background(), order))

	order.Status = orders.StatusAccepted
	require.NoError(t, tc.OrderRepo.UpdateByID(context.Background(), order))

	fetched, err := tc.OrderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusAccepted, fetched.Status)
	assert.Len(t, fetched.Items, 1)
}

func TestOrderSqliteRepository_SalesTotals(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	served := CreateTestOrder(t, restaurantID, variantID)
	served.Status = orders.StatusServed
	require.NoError(t, tc.OrderRepo.Create(context.Background(), served))

	pending := CreateTestOrder(t, restaurantID, variantID)
	require.NoError(t, tc.OrderRepo.Create(context.Background(), pending))

	total, count, err := tc.OrderRepo.SalesTotals(context.Background(), []uint{restaurantID}, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.True(t, total.Equal(decimal.NewFromInt(500)), "got %s", total)
}
