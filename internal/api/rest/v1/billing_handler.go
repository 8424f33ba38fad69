package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// BillingHandler covers the transaction ledger, customer due settlement and
// subscription due payments.
type BillingHandler interface {
	ListTransactions(ctx *gin.Context)
	RecordDuePayment(ctx *gin.Context)
	PaySubscriptionDue(ctx *gin.Context)
}

type billingHandler struct {
	billingService billing.BillingService
	authService    users.AuthService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(billingService billing.BillingService, authService users.AuthService) BillingHandler {
	return &billingHandler{
		billingService: billingService,
		authService:    authService,
	}
}

func (handler *billingHandler) scoped(ctx *gin.Context) (uint, bool) {
	restaurantID := strutil.ConvertToUint(ctx.Param("restaurantID"))
	ids, all, err := restaurantScope(ctx, handler.authService)
	if err != nil {
		respondError(ctx, err)
		return 0, false
	}
	if !scopeContains(ids, all, restaurantID) {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "restaurant not accessible"})
		return 0, false
	}
	return restaurantID, true
}

func (handler *billingHandler) ListTransactions(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	query := &billing.TransactionQuery{RestaurantID: restaurantID, Limit: 200}
	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}
	if txType := ctx.Query("type"); len(txType) > 0 {
		query.Type = txType
	}
	if from := ctx.Query("from"); len(from) > 0 {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid from date: %v", err)})
			return
		}
		query.From = parsed
	}
	if to := ctx.Query("to"); len(to) > 0 {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid to date: %v", err)})
			return
		}
		query.To = parsed
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

func (handler *billingHandler) RecordDuePayment(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request DuePaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid payment data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	transaction, err := handler.billingService.RecordDuePayment(ctx, request.CustomerID, restaurantID, request.Amount, request.Direction, request.Remarks)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

func (handler *billingHandler) PaySubscriptionDue(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request SubscriptionPaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid payment data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	transaction, err := handler.billingService.PaySubscriptionDue(ctx, restaurantID, request.Amount, request.Remarks)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toTransactionResponse(transaction))
}
