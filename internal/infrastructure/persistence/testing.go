//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	pkgTesting "github.com/ravipangali7/My-Restro-Server/internal/pkg/testing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB              *gorm.DB
	UserRepo        users.UserRepository
	CustomerRepo    users.CustomerRepository
	LinkRepo        users.CustomerLinkRepository
	RestaurantRepo  restaurants.RestaurantRepository
	TableRepo       restaurants.TableRepository
	StaffRepo       restaurants.StaffRepository
	AttendanceRepo  restaurants.AttendanceRepository
	UnitRepo        menu.UnitRepository
	CategoryRepo    menu.CategoryRepository
	ProductRepo     menu.ProductRepository
	ComboRepo       menu.ComboRepository
	OrderRepo       orders.OrderRepository
	RawMaterialRepo inventory.RawMaterialRepository
	ConsumptionRepo inventory.ConsumptionRepository
	StockLogRepo    inventory.StockLogRepository
	TransactionRepo billing.TransactionRepository
	FeedbackRepo    feedback.FeedbackRepository
	WaiterCallRepo  feedback.WaiterCallRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = AutoMigrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)

	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)
	tc.CustomerRepo, err = NewGormCustomerRepository(db, logger)
	require.NoError(t, err)
	tc.LinkRepo, err = NewGormCustomerLinkRepository(db, logger)
	require.NoError(t, err)
	tc.RestaurantRepo, err = NewGormRestaurantRepository(db, logger)
	require.NoError(t, err)
	tc.TableRepo, err = NewGormTableRepository(db, logger)
	require.NoError(t, err)
	tc.StaffRepo, err = NewGormStaffRepository(db, logger)
	require.NoError(t, err)
	tc.AttendanceRepo, err = NewGormAttendanceRepository(db, logger)
	require.NoError(t, err)
	tc.UnitRepo, err = NewGormUnitRepository(db, logger)
	require.NoError(t, err)
	tc.CategoryRepo, err = NewGormCategoryRepository(db, logger)
	require.NoError(t, err)
	tc.ProductRepo, err = NewGormProductRepository(db, logger)
	require.NoError(t, err)
	tc.ComboRepo, err = NewGormComboRepository(db, logger)
	require.NoError(t, err)
	tc.OrderRepo, err = NewGormOrderRepository(db, logger)
	require.NoError(t, err)
	tc.RawMaterialRepo, err = NewGormRawMaterialRepository(db, logger)
	require.NoError(t, err)
	tc.ConsumptionRepo, err = NewGormConsumptionRepository(db, logger)
	require.NoError(t, err)
	tc.StockLogRepo, err = NewGormStockLogRepository(db, logger)
	require.NoError(t, err)
	tc.TransactionRepo, err = NewGormTransactionRepository(db, logger)
	require.NoError(t, err)
	tc.FeedbackRepo, err = NewGormFeedbackRepository(db, logger)
	require.NoError(t, err)
	tc.WaiterCallRepo, err = NewGormWaiterCallRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestUser builds an owner account with a unique phone.
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	return &users.User{
		Name:         "Test Owner",
		CountryCode:  "+977",
		Phone:        strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		PasswordHash: "$2a$04$notarealhashnotarealhashnota",
		IsOwner:      true,
		KycStatus:    users.KycApproved,
		IsActive:     true,
	}
}

// CreateTestCustomer builds a diner account with a unique phone.
func CreateTestCustomer(t *testing.T) *users.Customer {
	t.Helper()

	return &users.Customer{
		Name:         "Test Diner",
		CountryCode:  "+977",
		Phone:        strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		PasswordHash: users.UnusablePassword,
	}
}

// CreateTestRestaurant builds an active restaurant owned by ownerID.
func CreateTestRestaurant(t *testing.T, ownerID uint) *restaurants.Restaurant {
	t.Helper()

	return &restaurants.Restaurant{
		OwnerID:  ownerID,
		Slug:     "test-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Name:     "Test Restaurant",
		IsOpen:   true,
		IsActive: true,
	}
}

// CreateTestProduct builds an active product with one variant.
func CreateTestProduct(t *testing.T, restaurantID, categoryID, unitID uint) *menu.Product {
	t.Helper()

	return &menu.Product{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         "Test Momo",
		IsActive:     true,
		DishType:     menu.DishVeg,
		Variants: []menu.ProductVariant{
			{
				UnitID: unitID,
				Price:  decimal.NewFromInt(250),
			},
		},
	}
}

// CreateTestOrder builds a pending dine-in order with one variant line.
func CreateTestOrder(t *testing.T, restaurantID uint, variantID uint) *orders.Order {
	t.Helper()

	price := decimal.NewFromInt(250)
	qty := decimal.NewFromInt(2)
	return &orders.Order{
		RestaurantID:  restaurantID,
		OrderType:     orders.TypeTable,
		Status:        orders.StatusPending,
		PaymentStatus: orders.PaymentPending,
		Total:         price.Mul(qty),
		Items: []orders.OrderItem{
			{
				ProductVariantID: &variantID,
				Name:             "Test Momo",
				Price:            price,
				Quantity:         qty,
				Total:            price.Mul(qty),
			},
		},
	}
}
