//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
)

func activeRestaurant() *restaurants.Restaurant {
	return &restaurants.Restaurant{
		ID:       3,
		OwnerID:  7,
		Slug:     "momo-house",
		Name:     "Momo House",
		IsOpen:   true,
		IsActive: true,
	}
}

func TestPublicHandler_GetRestaurant_Success(t *testing.T) {
	mockRestaurantService := new(MockRestaurantService)
	mockMenuService := new(MockMenuService)
	mockOrderService := new(MockOrderService)
	mockFeedbackService := new(MockFeedbackService)

	handler := NewPublicHandler(mockRestaurantService, mockMenuService, mockOrderService, mockFeedbackService, nil, identityURLs)

	mockRestaurantService.On("GetBySlug", mock.Anything, "momo-house").Return(activeRestaurant(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/public/restaurants/momo-house", nil)
	c.Params = gin.Params{{Key: "slug", Value: "momo-house"}}

	handler.GetRestaurant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Momo House")
	mockRestaurantService.AssertExpectations(t)
}

func TestPublicHandler_GetRestaurant_InactiveHidden(t *testing.T) {
	mockRestaurantService := new(MockRestaurantService)
	mockMenuService := new(MockMenuService)
	mockOrderService := new(MockOrderService)
	mockFeedbackService := new(MockFeedbackService)

	handler := NewPublicHandler(mockRestaurantService, mockMenuService, mockOrderService, mockFeedbackService, nil, identityURLs)

	deactivated := activeRestaurant()
	deactivated.IsActive = false
	mockRestaurantService.On("GetBySlug", mock.Anything, "momo-house").Return(deactivated, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/public/restaurants/momo-house", nil)
	c.Params = gin.Params{{Key: "slug", Value: "momo-house"}}

	handler.GetRestaurant(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_Menu_Success(t *testing.T) {
	mockRestaurantService := new(MockRestaurantService)
	mockMenuService := new(MockMenuService)
	mockOrderService := new(MockOrderService)
	mockFeedbackService := new(MockFeedbackService)

	handler := NewPublicHandler(mockRestaurantService, mockMenuService, mockOrderService, mockFeedbackService, nil, identityURLs)

	mockRestaurantService.On("GetBySlug", mock.Anything, "momo-house").Return(activeRestaurant(), nil)
	mockMenuService.On("PublicMenu", mock.Anything, "momo-house").Return(&menu.PublicMenu{
		Categories: []menu.PublicCategory{
			{
				Category: &menu.Category{ID: 1, RestaurantID: 3, Name: "Mains"},
				Products: []*menu.Product{
					{
						ID:           5,
						RestaurantID: 3,
						CategoryID:   1,
						Name:         "Steam Momo",
						DishType:     menu.DishVeg,
						IsActive:     true,
						Variants: []menu.ProductVariant{
							{ID: 9, ProductID: 5, UnitID: 2, Price: decimal.NewFromInt(250)},
						},
					},
				},
			},
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/public/restaurants/momo-house/menu", nil)
	c.Params = gin.Params{{Key: "slug", Value: "momo-house"}}

	handler.Menu(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Steam Momo")
	assert.Contains(t, w.Body.String(), "250")
	mockMenuService.AssertExpectations(t)
}

func TestPublicHandler_PlaceOrder_Success(t *testing.T) {
	mockRestaurantService := new(MockRestaurantService)
	mockMenuService := new(MockMenuService)
	mockOrderService := new(MockOrderService)
	mockFeedbackService := new(MockFeedbackService)

	handler := NewPublicHandler(mockRestaurantService, mockMenuService, mockOrderService, mockFeedbackService, nil, identityURLs)

	variantID := uint(9)
	customerID := uint(21)
	placed := &orders.Order{
		ID:            14,
		RestaurantID:  3,
		CustomerID:    &customerID,
		OrderType:     orders.TypeTable,
		Status:        orders.StatusPending,
		PaymentStatus: orders.PaymentPending,
		Total:         decimal.NewFromInt(500),
		Items: []orders.OrderItem{
			{ID: 1, OrderID: 14, ProductVariantID: &variantID, Name: "Steam Momo", Price: decimal.NewFromInt(250), Quantity: decimal.NewFromInt(2), Total: decimal.NewFromInt(500)},
		},
	}
	mockOrderService.
		On("PlaceBySlug", mock.Anything, mock.MatchedBy(func(input *orders.PublicOrderInput) bool {
			return input.Slug == "momo-house" && input.Phone == "9800000002" && len(input.Items) == 1
		})).
		Return(placed, nil)

	body := `{"customer_name": "Sita Rai", "country_code": "+977", "phone": "9800000002", "order_type": "table", "table_number": "T4", "items": [{"product_variant_id": 9, "quantity": 2}]}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/public/restaurants/momo-house/orders", body)
	c.Params = gin.Params{{Key: "slug", Value: "momo-house"}}

	handler.PlaceOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Steam Momo")
	mockOrderService.AssertExpectations(t)
}

func TestPublicHandler_PlaceOrder_ClosedRestaurant(t *testing.T) {
	mockRestaurantService := new(MockRestaurantService)
	mockMenuService := new(MockMenuService)
	mockOrderService := new(MockOrderService)
	mockFeedbackService := new(MockFeedbackService)

	handler := NewPublicHandler(mockRestaurantService, mockMenuService, mockOrderService, mockFeedbackService, nil, identityURLs)

	mockOrderService.
		On("PlaceBySlug", mock.Anything, mock.Anything).
		Return(nil, errors.New("restaurant is closed: forbidden"))

	body := `{"country_code": "+977", "phone": "9800000002", "order_type": "table", "items": [{"product_variant_id": 9, "quantity": 1}]}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/public/restaurants/momo-house/orders", body)
	c.Params = gin.Params{{Key: "slug", Value: "momo-house"}}

	handler.PlaceOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
