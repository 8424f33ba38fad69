//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	pkgTesting "github.com/ravipangali7/My-Restro-Server/internal/pkg/testing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	tc           *persistence.TestContext
	orderService orders.OrderService
	invService   inventory.InventoryService
	restaurant   *restaurants.Restaurant
	product      *menu.Product
}

func setupOrderService(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	logger := pkgTesting.SetupTestLogger(t)

	invService, err := NewInventoryService(tc.RawMaterialRepo, tc.ConsumptionRepo, tc.StockLogRepo, tc.OrderRepo, tc.ComboRepo, logger)
	require.NoError(t, err)
	orderService, err := NewOrderService(tc.OrderRepo, tc.ProductRepo, tc.ComboRepo, tc.RestaurantRepo, tc.StaffRepo, tc.CustomerRepo, tc.LinkRepo, invService, logger)
	require.NoError(t, err)

	owner := persistence.CreateTestUser(t)
	require.NoError(t, tc.UserRepo.Create(ctx, owner))
	restaurant := persistence.CreateTestRestaurant(t, owner.ID)
	require.NoError(t, tc.RestaurantRepo.Create(ctx, restaurant))

	unit := &menu.Unit{RestaurantID: restaurant.ID, Name: "Plate", Symbol: "pl"}
	require.NoError(t, tc.UnitRepo.Create(ctx, unit))
	category := &menu.Category{RestaurantID: restaurant.ID, Name: "Mains"}
	require.NoError(t, tc.CategoryRepo.Create(ctx, category))
	product := persistence.CreateTestProduct(t, restaurant.ID, category.ID, unit.ID)
	require.NoError(t, tc.ProductRepo.Create(ctx, product))

	return &orderFixture{
		tc:           tc,
		orderService: orderService,
		invService:   invService,
		restaurant:   restaurant,
		product:      product,
	}
}

func (f *orderFixture) place(t *testing.T, qty int64) *orders.Order {
	t.Helper()

	order, err := f.orderService.Place(context.Background(), &orders.PlaceOrderInput{
		RestaurantID: f.restaurant.ID,
		TableNumber:  "T1",
		OrderType:    orders.TypeTable,
		Items: []orders.PlacedItem{
			{ProductVariantID: &f.product.Variants[0].ID, Quantity: decimal.NewFromInt(qty)},
		},
	})
	require.NoError(t, err)
	return order
}

func TestOrderService_PlaceResolvesPrices(t *testing.T) {
	f := setupOrderService(t)

	order := f.place(t, 2)
	assert.Equal(t, orders.StatusPending, order.Status)
	assert.Equal(t, orders.PaymentPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Test Momo", order.Items[0].Name)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(250)), "price comes from the menu, not the client")
	assert.True(t, order.Total.Equal(decimal.NewFromInt(500)))
}

func TestOrderService_PlaceClosedRestaurant(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	f.restaurant.IsOpen = false
	require.NoError(t, f.tc.RestaurantRepo.UpdateByID(ctx, f.restaurant))

	_, err := f.orderService.Place(ctx, &orders.PlaceOrderInput{
		RestaurantID: f.restaurant.ID,
		OrderType:    orders.TypeTable,
		Items: []orders.PlacedItem{
			{ProductVariantID: &f.product.Variants[0].ID, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderService_PlaceBySlugCreatesWalkIn(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	order, err := f.orderService.PlaceBySlug(ctx, &orders.PublicOrderInput{
		Slug:         f.restaurant.Slug,
		CustomerName: "Walk In",
		CountryCode:  "+977",
		Phone:        "9811111111",
		TableNumber:  "T3",
		OrderType:    orders.TypeTable,
		Items: []orders.PlacedItem{
			{ProductVariantID: &f.product.Variants[0].ID, Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order.CustomerID)

	customer, err := f.tc.CustomerRepo.GetByID(ctx, *order.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Walk In", customer.Name)
	assert.False(t, customer.CanLogin(), "walk-in rows carry no usable password")

	// Same phone on a later order reuses the row.
	again, err := f.orderService.PlaceBySlug(ctx, &orders.PublicOrderInput{
		Slug:      f.restaurant.Slug,
		Phone:     "9811111111",
		OrderType: orders.TypePacking,
		Items: []orders.PlacedItem{
			{ProductVariantID: &f.product.Variants[0].ID, Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, *order.CustomerID, *again.CustomerID)
}

func TestOrderService_StatusMachine(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)
	manager := orders.Actor{Role: users.RoleManager}

	order := f.place(t, 1)

	// Cannot skip straight to served.
	_, err := f.orderService.UpdateStatus(ctx, order.ID, orders.StatusServed, "", manager)
	assert.Error(t, err)

	for _, next := range []string{orders.StatusAccepted, orders.StatusRunning, orders.StatusReady, orders.StatusServed} {
		order, err = f.orderService.UpdateStatus(ctx, order.ID, next, "", manager)
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}
}

func TestOrderService_RejectRequiresReason(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)
	manager := orders.Actor{Role: users.RoleManager}

	order := f.place(t, 1)

	_, err := f.orderService.UpdateStatus(ctx, order.ID, orders.StatusRejected, "", manager)
	assert.Error(t, err)

	updated, err := f.orderService.UpdateStatus(ctx, order.ID, orders.StatusRejected, "out of stock", manager)
	require.NoError(t, err)
	assert.Equal(t, "out of stock", updated.RejectReason)
}

func TestOrderService_KitchenCannotServeOrReject(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)
	kitchen := orders.Actor{Role: users.RoleKitchen}

	order := f.place(t, 1)

	_, err := f.orderService.UpdateStatus(ctx, order.ID, orders.StatusRejected, "no", kitchen)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	// The error names the transitions the kitchen may still take.
	assert.Contains(t, err.Error(), orders.StatusAccepted)

	order, err = f.orderService.UpdateStatus(ctx, order.ID, orders.StatusAccepted, "", kitchen)
	require.NoError(t, err)
	order, err = f.orderService.UpdateStatus(ctx, order.ID, orders.StatusRunning, "", kitchen)
	require.NoError(t, err)
	order, err = f.orderService.UpdateStatus(ctx, order.ID, orders.StatusReady, "", kitchen)
	require.NoError(t, err)

	_, err = f.orderService.UpdateStatus(ctx, order.ID, orders.StatusServed, "", kitchen)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderService_SettleMath(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	tax := decimal.NewFromInt(13)
	f.restaurant.TaxPercent = &tax
	require.NoError(t, f.tc.RestaurantRepo.UpdateByID(ctx, f.restaurant))

	order := f.place(t, 2) // subtotal 500

	discount := decimal.NewFromInt(50)
	serviceCharge := decimal.NewFromInt(25)
	settled, err := f.orderService.Settle(ctx, order.ID, orders.MethodCash, &discount, &serviceCharge)
	require.NoError(t, err)

	// 500 + 13% tax (65) + 25 service - 50 discount = 540
	assert.Equal(t, "540.00", settled.Total.StringFixed(2))
	assert.Equal(t, orders.PaymentPaid, settled.PaymentStatus)
	assert.Equal(t, orders.MethodCash, settled.PaymentMethod)
}

func TestOrderService_SettleNeverNegative(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	order := f.place(t, 1) // subtotal 250
	discount := decimal.NewFromInt(1000)
	settled, err := f.orderService.Settle(ctx, order.ID, orders.MethodCash, &discount, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.00", settled.Total.StringFixed(2))
}

func TestOrderService_ReadyDeductsStockOnce(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)
	manager := orders.Actor{Role: users.RoleManager}

	material, err := f.invService.CreateMaterial(ctx, &inventory.RawMaterial{
		RestaurantID: f.restaurant.ID,
		Name:         "Flour",
		Stock:        decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	// Each plate consumes 3 units of flour, for any variant.
	_, err = f.invService.LinkConsumption(ctx, &inventory.ProductRawMaterial{
		ProductID:     f.product.ID,
		RawMaterialID: material.ID,
		Quantity:      decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	order := f.place(t, 2)
	for _, next := range []string{orders.StatusAccepted, orders.StatusRunning, orders.StatusReady} {
		_, err = f.orderService.UpdateStatus(ctx, order.ID, next, "", manager)
		require.NoError(t, err)
	}

	after, err := f.tc.RawMaterialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, "94", after.Stock.String(), "100 - 3*2")

	// A retried deduction is a no-op.
	require.NoError(t, f.invService.DeductForOrder(ctx, order.ID))
	after, err = f.tc.RawMaterialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, "94", after.Stock.String())
}

func TestOrderService_AssignWaiter(t *testing.T) {
	ctx := context.Background()
	f := setupOrderService(t)

	waiterUser := persistence.CreateTestUser(t)
	waiterUser.IsOwner = false
	require.NoError(t, f.tc.UserRepo.Create(ctx, waiterUser))
	staff := &restaurants.Staff{RestaurantID: f.restaurant.ID, UserID: waiterUser.ID, IsWaiter: true}
	require.NoError(t, f.tc.StaffRepo.Create(ctx, staff))

	cookUser := persistence.CreateTestUser(t)
	cookUser.IsOwner = false
	require.NoError(t, f.tc.UserRepo.Create(ctx, cookUser))
	cook := &restaurants.Staff{RestaurantID: f.restaurant.ID, UserID: cookUser.ID}
	require.NoError(t, f.tc.StaffRepo.Create(ctx, cook))

	order := f.place(t, 1)

	require.NoError(t, f.orderService.AssignWaiter(ctx, order.ID, staff.ID))
	assert.ErrorIs(t, f.orderService.AssignWaiter(ctx, order.ID, cook.ID), domain.ErrForbidden)

	loaded, err := f.orderService.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.WaiterID)
	assert.Equal(t, staff.ID, *loaded.WaiterID)
}
