package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// AdminHandler is the super-admin surface: owner KYC, restaurant
// activation and the platform ledger.
type AdminHandler interface {
	ListOwners(ctx *gin.Context)
	DecideKyc(ctx *gin.Context)
	SetRestaurantActivation(ctx *gin.Context)
	ListSystemTransactions(ctx *gin.Context)
}

type adminHandler struct {
	adminService      users.AdminService
	restaurantService restaurants.RestaurantService
	billingService    billing.BillingService
	urls              urlFor
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService users.AdminService, restaurantService restaurants.RestaurantService, billingService billing.BillingService, urls urlFor) AdminHandler {
	return &adminHandler{
		adminService:      adminService,
		restaurantService: restaurantService,
		billingService:    billingService,
		urls:              urls,
	}
}

func (handler *adminHandler) ListOwners(ctx *gin.Context) {
	query := &users.UserQuery{Limit: 200}
	if kycStatus := ctx.Query("kyc_status"); len(kycStatus) > 0 {
		query.KycStatus = kycStatus
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	owners, err := handler.adminService.ListOwners(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []UserResponse{}
	for _, owner := range owners {
		response = append(response, toUserResponse(owner, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *adminHandler) DecideKyc(ctx *gin.Context) {
	var request KycDecisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid kyc decision: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	userID := strutil.ConvertToUint(ctx.Param("id"))
	user, err := handler.adminService.DecideKyc(ctx, userID, request.Status, request.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user, handler.urls))
}

// SetRestaurantActivation flips the platform-level switch. Deactivated
// restaurants drop off the public listing and stop taking orders.
func (handler *adminHandler) SetRestaurantActivation(ctx *gin.Context) {
	var request ActivationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid activation data: %v", err)})
		return
	}

	restaurant, err := handler.restaurantService.GetByID(ctx, strutil.ConvertToUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	restaurant.IsActive = request.IsActive
	if request.SubscriptionEnd != nil {
		restaurant.SubscriptionEnd = request.SubscriptionEnd
	}
	if err := handler.restaurantService.Update(ctx, restaurant); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant, handler.urls))
}

func (handler *adminHandler) ListSystemTransactions(ctx *gin.Context) {
	query := &billing.TransactionQuery{SystemOnly: true, Limit: 200}
	if restaurantID := ctx.Query("restaurant_id"); len(restaurantID) > 0 {
		query.RestaurantID = strutil.ConvertToUint(restaurantID)
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	transactions, err := handler.billingService.ListTransactions(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []TransactionResponse{}
	for _, transaction := range transactions {
		response = append(response, toTransactionResponse(transaction))
	}
	ctx.JSON(http.StatusOK, response)
}
