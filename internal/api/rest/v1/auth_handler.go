package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	RegisterOwner(ctx *gin.Context)
	RegisterCustomer(ctx *gin.Context)
	Me(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	urls        urlFor
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, urls urlFor) AuthHandler {
	return &authHandler{authService: authService, urls: urls}
}

// Login handles the unified phone+password login for diners and staff.
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid login data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	result, err := handler.authService.Login(ctx, request.CountryCode, request.Phone, request.Password, request.AccountType)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "account disabled"})
			return
		}
		// Never reveal whether the phone exists.
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid phone or password"})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Token:         result.Token,
		AccountID:     result.AccountID,
		AccountType:   result.AccountType,
		Name:          result.Name,
		Role:          result.Role,
		RestaurantIDs: result.RestaurantIDs,
	})
}

// RegisterOwner creates an owner account awaiting KYC approval.
func (handler *authHandler) RegisterOwner(ctx *gin.Context) {
	var request RegisterOwnerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid registration data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	user := &users.User{
		Name:        request.Name,
		CountryCode: request.CountryCode,
		Phone:       request.Phone,
		Email:       request.Email,
	}
	created, err := handler.authService.RegisterOwner(ctx, user, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toUserResponse(created, handler.urls))
}

// RegisterCustomer creates a diner account, claiming a walk-in row when
// the phone already exists without a password.
func (handler *authHandler) RegisterCustomer(ctx *gin.Context) {
	var request RegisterCustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid registration data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	customer := &users.Customer{
		Name:        request.Name,
		CountryCode: request.CountryCode,
		Phone:       request.Phone,
		Address:     request.Address,
	}
	created, err := handler.authService.RegisterCustomer(ctx, customer, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toCustomerResponse(created))
}

// Me returns the profile behind the token.
func (handler *authHandler) Me(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	account, err := handler.authService.Account(ctx, claims.AccountType, claims.AccountID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := AccountResponse{Role: account.Role, RestaurantIDs: account.RestaurantIDs}
	if account.User != nil {
		user := toUserResponse(account.User, handler.urls)
		response.User = &user
	}
	if account.Customer != nil {
		customer := toCustomerResponse(account.Customer)
		response.Customer = &customer
	}
	ctx.JSON(http.StatusOK, response)
}

// ChangePassword verifies the old password and replaces it.
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	var request ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.authService.ChangePassword(ctx, claims.AccountType, claims.AccountID, request.OldPassword, request.NewPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "password change failed"})
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "password changed"})
}

// Logout revokes the current token until its natural expiry.
func (handler *authHandler) Logout(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	if err := handler.authService.Logout(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "logged out"})
}
