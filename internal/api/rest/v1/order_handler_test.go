//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/pdf"
)

func ownerClaims() *auth.Claims {
	return &auth.Claims{AccountID: 7, AccountType: auth.AccountUser, Role: users.RoleOwner}
}

func pendingOrder() *orders.Order {
	return &orders.Order{
		ID:            14,
		RestaurantID:  3,
		OrderType:     orders.TypeTable,
		Status:        orders.StatusPending,
		PaymentStatus: orders.PaymentPending,
		Total:         decimal.NewFromInt(500),
	}
}

func TestOrderHandler_UpdateStatus_Accepts(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(pendingOrder(), nil)
	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{3}}, nil)

	accepted := pendingOrder()
	accepted.Status = orders.StatusAccepted
	mockOrderService.
		On("UpdateStatus", mock.Anything, uint(14), orders.StatusAccepted, "", orders.Actor{Role: users.RoleOwner}).
		Return(accepted, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("PATCH", "/api/orders/14/status", `{"status": "accepted"}`)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orders.StatusAccepted)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_GetByID_OtherRestaurantForbidden(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(pendingOrder(), nil)
	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{99}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/orders/14", nil)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderHandler_GetByID_CustomerOwnOrder(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	customerID := uint(21)
	own := pendingOrder()
	own.CustomerID = &customerID
	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(own, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/orders/14", nil)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, &auth.Claims{AccountID: 21, AccountType: auth.AccountCustomer, Role: users.RoleCustomer})

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuthService.AssertNotCalled(t, "Account")
}

func TestOrderHandler_GetByID_CustomerForeignOrderHidden(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	otherCustomer := uint(99)
	foreign := pendingOrder()
	foreign.CustomerID = &otherCustomer
	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(foreign, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/orders/14", nil)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, &auth.Claims{AccountID: 21, AccountType: auth.AccountCustomer, Role: users.RoleCustomer})

	handler.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderHandler_Settle_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(pendingOrder(), nil)
	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{3}}, nil)

	settled := pendingOrder()
	settled.Status = orders.StatusServed
	settled.PaymentStatus = orders.PaymentPaid
	settled.PaymentMethod = orders.MethodCash
	mockOrderService.
		On("Settle", mock.Anything, uint(14), orders.MethodCash, mock.Anything, mock.Anything).
		Return(settled, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/orders/14/settle", `{"payment_method": "cash", "discount": 50}`)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.Settle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orders.PaymentPaid)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_List_CustomerScopedToOwnOrders(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	mockOrderService.
		On("List", mock.Anything, mock.MatchedBy(func(query *orders.OrderQuery) bool {
			return query.CustomerID == 21 && len(query.RestaurantIDs) == 0
		})).
		Return([]*orders.Order{pendingOrder()}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/orders", nil)
	c.Set(claimsContextKey, &auth.Claims{AccountID: 21, AccountType: auth.AccountCustomer, Role: users.RoleCustomer})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_Bill_ServesPdf(t *testing.T) {
	mockOrderService := new(MockOrderService)
	mockBillingService := new(MockBillingService)
	mockAuthService := new(MockAuthService)

	handler := NewOrderHandler(mockOrderService, mockBillingService, mockAuthService, pdf.NewBillRenderer())

	mockOrderService.On("GetByID", mock.Anything, uint(14)).Return(pendingOrder(), nil)
	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{3}}, nil)
	mockBillingService.
		On("InvoiceForOrder", mock.Anything, uint(14)).
		Return(&billing.Invoice{
			RestaurantName: "Momo House",
			InvoiceNumber:  "INV-000014",
			PaymentStatus:  orders.PaymentPaid,
			Items: []billing.InvoiceItem{
				{SN: 1, ItemName: "Steam Momo", Price: "250", Quantity: "2", Total: "500"},
			},
			Subtotal:   "500",
			GrandTotal: "500",
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/orders/14/bill", nil)
	c.Params = gin.Params{{Key: "id", Value: "14"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.Bill(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
	mockBillingService.AssertExpectations(t)
}
