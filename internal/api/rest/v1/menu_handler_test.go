//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
)

func TestMenuHandler_CreateProduct_Success(t *testing.T) {
	mockMenuService := new(MockMenuService)
	mockAuthService := new(MockAuthService)

	handler := NewMenuHandler(mockMenuService, mockAuthService, identityURLs)

	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{3}}, nil)
	mockMenuService.
		On("CreateProduct", mock.Anything, mock.MatchedBy(func(product *menu.Product) bool {
			return product.RestaurantID == 3 && product.Name == "Steam Momo" && product.IsActive && len(product.Variants) == 1
		})).
		Return(&menu.Product{
			ID:           5,
			RestaurantID: 3,
			CategoryID:   1,
			Name:         "Steam Momo",
			DishType:     menu.DishVeg,
			IsActive:     true,
		}, nil)

	body := `{"category_id": 1, "name": "Steam Momo", "dish_type": "veg", "variants": [{"unit_id": 2, "price": 250}]}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/restaurants/3/products", body)
	c.Params = gin.Params{{Key: "restaurantID", Value: "3"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.CreateProduct(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Steam Momo")
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_ListUnits_ForeignRestaurantForbidden(t *testing.T) {
	mockMenuService := new(MockMenuService)
	mockAuthService := new(MockAuthService)

	handler := NewMenuHandler(mockMenuService, mockAuthService, identityURLs)

	mockAuthService.
		On("Account", mock.Anything, auth.AccountUser, uint(7)).
		Return(&users.Account{Role: users.RoleOwner, RestaurantIDs: []uint{99}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/restaurants/3/units", nil)
	c.Params = gin.Params{{Key: "restaurantID", Value: "3"}}
	c.Set(claimsContextKey, ownerClaims())

	handler.ListUnits(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockMenuService.AssertNotCalled(t, "ListUnits")
}

func TestMenuHandler_ListUnits_SuperAdminSeesAll(t *testing.T) {
	mockMenuService := new(MockMenuService)
	mockAuthService := new(MockAuthService)

	handler := NewMenuHandler(mockMenuService, mockAuthService, identityURLs)

	mockMenuService.
		On("ListUnits", mock.Anything, uint(3)).
		Return([]*menu.Unit{{ID: 2, RestaurantID: 3, Name: "Plate", Symbol: "plt"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/restaurants/3/units", nil)
	c.Params = gin.Params{{Key: "restaurantID", Value: "3"}}
	c.Set(claimsContextKey, &auth.Claims{AccountID: 1, AccountType: auth.AccountUser, Role: users.RoleSuperAdmin})

	handler.ListUnits(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plate")
	mockAuthService.AssertNotCalled(t, "Account")
}
