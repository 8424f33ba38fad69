//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
)

func identityURLs(key string) string { return key }

func jsonRequest(method, target, body string) *http.Request {
	req, _ := http.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("Login", mock.Anything, "+977", "9800000001", "secret-pass", "").
		Return(&users.AuthResult{
			Token:         "signed.jwt.token",
			AccountID:     7,
			AccountType:   auth.AccountUser,
			Name:          "Ram Thapa",
			Role:          users.RoleOwner,
			RestaurantIDs: []uint{3},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/login", `{"country_code": "+977", "phone": "9800000001", "password": "secret-pass"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")
	assert.Contains(t, w.Body.String(), users.RoleOwner)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("Login", mock.Anything, "+977", "9800000001", "wrong-pass", "").
		Return(nil, errors.New("invalid credentials"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/login", `{"country_code": "+977", "phone": "9800000001", "password": "wrong-pass"}`)

	handler.Login(c)

	// The body never reveals whether the phone exists.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid phone or password")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_DisabledAccount(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("Login", mock.Anything, "+977", "9800000001", "secret-pass", "").
		Return(nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/login", `{"country_code": "+977", "phone": "9800000001", "password": "secret-pass"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account disabled")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_AccountTypeHintForwarded(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("Login", mock.Anything, "+977", "9800000001", "secret-pass", auth.AccountCustomer).
		Return(&users.AuthResult{
			Token:       "signed.jwt.token",
			AccountID:   12,
			AccountType: auth.AccountCustomer,
			Name:        "Sita Rai",
			Role:        users.RoleCustomer,
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/login", `{"country_code": "+977", "phone": "9800000001", "password": "secret-pass", "account_type": "customer"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), users.RoleCustomer)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/login", `{"country_code": "+977", "phone": "9800000001"}`)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Login")
}

func TestAuthHandler_RegisterCustomer_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("RegisterCustomer", mock.Anything, mock.AnythingOfType("*users.Customer"), "diner-pass").
		Return(&users.Customer{ID: 12, Name: "Sita Rai", CountryCode: "+977", Phone: "9800000002"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/auth/register/customer", `{"name": "Sita Rai", "country_code": "+977", "phone": "9800000002", "password": "diner-pass"}`)

	handler.RegisterCustomer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Sita Rai")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Me_Customer(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, identityURLs)

	mockAuthService.
		On("Account", mock.Anything, auth.AccountCustomer, uint(12)).
		Return(&users.Account{
			Customer: &users.Customer{ID: 12, Name: "Sita Rai", Phone: "9800000002"},
			Role:     users.RoleCustomer,
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/auth/me", nil)
	c.Set(claimsContextKey, &auth.Claims{AccountID: 12, AccountType: auth.AccountCustomer, Role: users.RoleCustomer})

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sita Rai")
	mockAuthService.AssertExpectations(t)
}
