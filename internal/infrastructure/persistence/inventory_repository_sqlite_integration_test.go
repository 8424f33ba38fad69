//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMaterialSqliteRepository_AdjustStock(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	owner := CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(context.Background(), owner))
	restaurant := CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(context.Background(), restaurant))

	material := &inventory.RawMaterial{
		RestaurantID: restaurant.ID,
		Name:         "Flour",
		Stock:        decimal.NewFromInt(10),
	}
	require.NoError(t, tc.RawMaterialRepo.Create(context.Background(), material))

	require.NoError(t, tc.RawMaterialRepo.AdjustStock(context.Background(), material.ID, decimal.NewFromInt(-3)))

	fetched, err := tc.RawMaterialRepo.GetByID(context.Background(), material.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Stock.Equal(decimal.NewFromInt(7)), "got %s", fetched.Stock)
}

func TestStockLogSqliteRepository_ExistsForOrder(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	material := &inventory.RawMaterial{
		RestaurantID: restaurantID,
		Name:         "Flour",
		Stock:        decimal.NewFromInt(10),
	}
	require.NoError(t, tc.RawMaterialRepo.Create(context.Background(), material))

	order := CreateTestOrder(t, restaurantID, variantID)
	require.NoError(t, tc.OrderRepo.Create(context.Background(), order))

	exists, err := tc.StockLogRepo.ExistsForOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	log := &inventory.StockLog{
		RestaurantID:  restaurantID,
		RawMaterialID: material.ID,
		Type:          inventory.StockOut,
		Quantity:      decimal.NewFromInt(2),
		OrderID:       &order.ID,
	}
	require.NoError(t, tc.StockLogRepo.Create(context.Background(), log))

	exists, err = tc.StockLogRepo.ExistsForOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConsumptionSqliteRepository_ListForVariant(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	restaurantID, variantID := seedMenu(t, tc)

	material := &inventory.RawMaterial{
		RestaurantID: restaurantID,
		Name:         "Flour",
		Stock:        decimal.NewFromInt(10),
	}
	require.NoError(t, tc.RawMaterialRepo.Create(context.Background(), material))

	variant, err := tc.ProductRepo.GetVariantByID(context.Background(), variantID)
	require.NoError(t, err)

	// One link scoped to the variant, one product-wide.
	scoped := &inventory.ProductRawMaterial{
		ProductID:        variant.ProductID,
		ProductVariantID: &variantID,
		RawMaterialID:    material.ID,
		Quantity:         decimal.NewFromFloat(0.5),
	}
	require.NoError(t, tc.ConsumptionRepo.Create(context.Background(), scoped))

	productWide := &inventory.ProductRawMaterial{
		ProductID:     variant.ProductID,
		RawMaterialID: material.ID,
		Quantity:      decimal.NewFromFloat(0.25),
	}
	require.NoError(t, tc.ConsumptionRepo.Create(context.Background(), productWide))

	links, err := tc.ConsumptionRepo.ListForVariant(context.Background(), variant.ProductID, &variantID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}
