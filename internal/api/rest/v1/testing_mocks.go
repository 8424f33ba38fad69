//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, countryCode, phone, password, accountType string) (*users.AuthResult, error) {
	args := m.Called(ctx, countryCode, phone, password, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthResult), args.Error(1)
}

func (m *MockAuthService) RegisterOwner(ctx context.Context, user *users.User, password string) (*users.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) RegisterStaff(ctx context.Context, user *users.User, password string) (*users.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) RegisterCustomer(ctx context.Context, customer *users.Customer, password string) (*users.Customer, error) {
	args := m.Called(ctx, customer, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Customer), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, accountType string, accountID uint, oldPassword, newPassword string) error {
	args := m.Called(ctx, accountType, accountID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	args := m.Called(ctx, jti, expiresAt)
	return args.Error(0)
}

func (m *MockAuthService) Account(ctx context.Context, accountType string, accountID uint) (*users.Account, error) {
	args := m.Called(ctx, accountType, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Account), args.Error(1)
}

func (m *MockAuthService) RoleOf(ctx context.Context, user *users.User) (string, []uint, error) {
	args := m.Called(ctx, user)
	ids, _ := args.Get(1).([]uint)
	return args.String(0), ids, args.Error(2)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListOwners(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockAdminService) DecideKyc(ctx context.Context, userID uint, status, reason string) (*users.User, error) {
	args := m.Called(ctx, userID, status, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAdminService) CreateSuperAdmin(ctx context.Context, user *users.User, password string) (*users.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockRestaurantService is a mock implementation of RestaurantService
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Create(ctx context.Context, restaurant *restaurants.Restaurant) (*restaurants.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetByID(ctx context.Context, id uint) (*restaurants.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetBySlug(ctx context.Context, slug string) (*restaurants.Restaurant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) List(ctx context.Context, query *restaurants.RestaurantQuery) ([]*restaurants.Restaurant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Update(ctx context.Context, restaurant *restaurants.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRestaurantService) CreateTable(ctx context.Context, table *restaurants.Table) (*restaurants.Table, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurants.Table), args.Error(1)
}

func (m *MockRestaurantService) ListTables(ctx context.Context, restaurantID uint) ([]*restaurants.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurants.Table), args.Error(1)
}

func (m *MockRestaurantService) UpdateTable(ctx context.Context, restaurantID uint, table *restaurants.Table) error {
	args := m.Called(ctx, restaurantID, table)
	return args.Error(0)
}

func (m *MockRestaurantService) DeleteTable(ctx context.Context, restaurantID, tableID uint) error {
	args := m.Called(ctx, restaurantID, tableID)
	return args.Error(0)
}

func (m *MockRestaurantService) AddStaff(ctx context.Context, staff *restaurants.Staff) (*restaurants.Staff, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurants.Staff), args.Error(1)
}

func (m *MockRestaurantService) ListStaff(ctx context.Context, restaurantID uint) ([]*restaurants.Staff, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurants.Staff), args.Error(1)
}

func (m *MockRestaurantService) UpdateStaff(ctx context.Context, restaurantID uint, staff *restaurants.Staff) error {
	args := m.Called(ctx, restaurantID, staff)
	return args.Error(0)
}

func (m *MockRestaurantService) RemoveStaff(ctx context.Context, restaurantID, staffID uint) error {
	args := m.Called(ctx, restaurantID, staffID)
	return args.Error(0)
}

func (m *MockRestaurantService) RecordAttendance(ctx context.Context, restaurantID uint, attendance *restaurants.Attendance) error {
	args := m.Called(ctx, restaurantID, attendance)
	return args.Error(0)
}

func (m *MockRestaurantService) ListAttendance(ctx context.Context, restaurantID uint, date time.Time) ([]*restaurants.Attendance, error) {
	args := m.Called(ctx, restaurantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurants.Attendance), args.Error(1)
}

// MockMenuService is a mock implementation of MenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) CreateUnit(ctx context.Context, unit *menu.Unit) (*menu.Unit, error) {
	args := m.Called(ctx, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Unit), args.Error(1)
}

func (m *MockMenuService) ListUnits(ctx context.Context, restaurantID uint) ([]*menu.Unit, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Unit), args.Error(1)
}

func (m *MockMenuService) UpdateUnit(ctx context.Context, restaurantID uint, unit *menu.Unit) error {
	args := m.Called(ctx, restaurantID, unit)
	return args.Error(0)
}

func (m *MockMenuService) DeleteUnit(ctx context.Context, restaurantID, unitID uint) error {
	args := m.Called(ctx, restaurantID, unitID)
	return args.Error(0)
}

func (m *MockMenuService) CreateCategory(ctx context.Context, category *menu.Category) (*menu.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Category), args.Error(1)
}

func (m *MockMenuService) GetCategory(ctx context.Context, id uint) (*menu.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Category), args.Error(1)
}

func (m *MockMenuService) ListCategories(ctx context.Context, restaurantID uint) ([]*menu.Category, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Category), args.Error(1)
}

func (m *MockMenuService) UpdateCategory(ctx context.Context, restaurantID uint, category *menu.Category) error {
	args := m.Called(ctx, restaurantID, category)
	return args.Error(0)
}

func (m *MockMenuService) DeleteCategory(ctx context.Context, restaurantID, categoryID uint) error {
	args := m.Called(ctx, restaurantID, categoryID)
	return args.Error(0)
}

func (m *MockMenuService) CreateProduct(ctx context.Context, product *menu.Product) (*menu.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Product), args.Error(1)
}

func (m *MockMenuService) GetProduct(ctx context.Context, id uint) (*menu.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Product), args.Error(1)
}

func (m *MockMenuService) ListProducts(ctx context.Context, query *menu.ProductQuery) ([]*menu.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Product), args.Error(1)
}

func (m *MockMenuService) UpdateProduct(ctx context.Context, restaurantID uint, product *menu.Product) error {
	args := m.Called(ctx, restaurantID, product)
	return args.Error(0)
}

func (m *MockMenuService) DeleteProduct(ctx context.Context, restaurantID, productID uint) error {
	args := m.Called(ctx, restaurantID, productID)
	return args.Error(0)
}

func (m *MockMenuService) CreateCombo(ctx context.Context, combo *menu.ComboSet) (*menu.ComboSet, error) {
	args := m.Called(ctx, combo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.ComboSet), args.Error(1)
}

func (m *MockMenuService) GetCombo(ctx context.Context, id uint) (*menu.ComboSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.ComboSet), args.Error(1)
}

func (m *MockMenuService) ListCombos(ctx context.Context, restaurantID uint) ([]*menu.ComboSet, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.ComboSet), args.Error(1)
}

func (m *MockMenuService) UpdateCombo(ctx context.Context, restaurantID uint, combo *menu.ComboSet) error {
	args := m.Called(ctx, restaurantID, combo)
	return args.Error(0)
}

func (m *MockMenuService) DeleteCombo(ctx context.Context, restaurantID, comboID uint) error {
	args := m.Called(ctx, restaurantID, comboID)
	return args.Error(0)
}

func (m *MockMenuService) PublicMenu(ctx context.Context, slug string) (*menu.PublicMenu, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.PublicMenu), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, input *orders.PlaceOrderInput) (*orders.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) PlaceBySlug(ctx context.Context, input *orders.PublicOrderInput) (*orders.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uint) (*orders.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID uint, to, reason string, actor orders.Actor) (*orders.Order, error) {
	args := m.Called(ctx, orderID, to, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) Settle(ctx context.Context, orderID uint, method string, discount, serviceCharge *decimal.Decimal) (*orders.Order, error) {
	args := m.Called(ctx, orderID, method, discount, serviceCharge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) AssignWaiter(ctx context.Context, orderID, staffID uint) error {
	args := m.Called(ctx, orderID, staffID)
	return args.Error(0)
}

// MockInventoryService is a mock implementation of InventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateMaterial(ctx context.Context, material *inventory.RawMaterial) (*inventory.RawMaterial, error) {
	args := m.Called(ctx, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.RawMaterial), args.Error(1)
}

func (m *MockInventoryService) ListMaterials(ctx context.Context, restaurantID uint) ([]*inventory.RawMaterial, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.RawMaterial), args.Error(1)
}

func (m *MockInventoryService) UpdateMaterial(ctx context.Context, restaurantID uint, material *inventory.RawMaterial) error {
	args := m.Called(ctx, restaurantID, material)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteMaterial(ctx context.Context, restaurantID, materialID uint) error {
	args := m.Called(ctx, restaurantID, materialID)
	return args.Error(0)
}

func (m *MockInventoryService) LinkConsumption(ctx context.Context, link *inventory.ProductRawMaterial) (*inventory.ProductRawMaterial, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.ProductRawMaterial), args.Error(1)
}

func (m *MockInventoryService) UnlinkConsumption(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryService) RecordMovement(ctx context.Context, restaurantID, materialID uint, direction string, quantity decimal.Decimal) error {
	args := m.Called(ctx, restaurantID, materialID, direction, quantity)
	return args.Error(0)
}

func (m *MockInventoryService) DeductForOrder(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockInventoryService) ListMovements(ctx context.Context, restaurantID uint, limit, offset int) ([]*inventory.StockLog, error) {
	args := m.Called(ctx, restaurantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.StockLog), args.Error(1)
}

// MockBillingService is a mock implementation of BillingService
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) InvoiceForOrder(ctx context.Context, orderID uint) (*billing.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockBillingService) RecordDuePayment(ctx context.Context, customerID, restaurantID uint, amount decimal.Decimal, direction string, remarks string) (*billing.Transaction, error) {
	args := m.Called(ctx, customerID, restaurantID, amount, direction, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

func (m *MockBillingService) PaySubscriptionDue(ctx context.Context, restaurantID uint, amount decimal.Decimal, remarks string) (*billing.Transaction, error) {
	args := m.Called(ctx, restaurantID, amount, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

func (m *MockBillingService) ListTransactions(ctx context.Context, query *billing.TransactionQuery) ([]*billing.Transaction, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Transaction), args.Error(1)
}

// MockFeedbackService is a mock implementation of FeedbackService
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, fb *feedback.Feedback) (*feedback.Feedback, error) {
	args := m.Called(ctx, fb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) SubmitPublic(ctx context.Context, slug, name, countryCode, phone string, fb *feedback.Feedback) (*feedback.Feedback, error) {
	args := m.Called(ctx, slug, name, countryCode, phone, fb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, restaurantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) ListByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) RaiseCall(ctx context.Context, call *feedback.WaiterCall) (*feedback.WaiterCall, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.WaiterCall), args.Error(1)
}

func (m *MockFeedbackService) ListPendingCalls(ctx context.Context, restaurantID uint) ([]*feedback.WaiterCall, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feedback.WaiterCall), args.Error(1)
}

func (m *MockFeedbackService) CompleteCall(ctx context.Context, restaurantID, callID uint, staffID *uint) error {
	args := m.Called(ctx, restaurantID, callID, staffID)
	return args.Error(0)
}
