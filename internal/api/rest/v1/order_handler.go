package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/pdf"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// OrderHandler covers order placement, the kitchen status board, settlement
// and invoices.
type OrderHandler interface {
	Place(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	Settle(ctx *gin.Context)
	AssignWaiter(ctx *gin.Context)
	Invoice(ctx *gin.Context)
	Bill(ctx *gin.Context)
}

type orderHandler struct {
	orderService   orders.OrderService
	billingService billing.BillingService
	authService    users.AuthService
	bills          *pdf.BillRenderer
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService, billingService billing.BillingService, authService users.AuthService, bills *pdf.BillRenderer) OrderHandler {
	return &orderHandler{
		orderService:   orderService,
		billingService: billingService,
		authService:    authService,
		bills:          bills,
	}
}

func (handler *orderHandler) Place(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	var request PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid order data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	input := &orders.PlaceOrderInput{
		RestaurantID: request.RestaurantID,
		TableID:      request.TableID,
		TableNumber:  request.TableNumber,
		OrderType:    request.OrderType,
		Address:      request.Address,
		PeopleFor:    request.PeopleFor,
		Items:        placedItems(request.Items),
	}
	if claims.AccountType == auth.AccountCustomer {
		customerID := claims.AccountID
		input.CustomerID = &customerID
	} else {
		ids, all, err := restaurantScope(ctx, handler.authService)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if !scopeContains(ids, all, request.RestaurantID) {
			ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "restaurant not accessible"})
			return
		}
	}

	order, err := handler.orderService.Place(ctx, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// List scopes results by caller: customers see their own orders, staff see
// their restaurants'. The ?open=true filter narrows to kitchen states.
func (handler *orderHandler) List(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	query := orders.NewOrderQuery()
	if claims.AccountType == auth.AccountCustomer {
		query.CustomerID = claims.AccountID
	} else {
		ids, all, err := restaurantScope(ctx, handler.authService)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if !all {
			if len(ids) == 0 {
				ctx.JSON(http.StatusOK, []OrderResponse{})
				return
			}
			query.RestaurantIDs = ids
		}
		if restaurantID := ctx.Query("restaurant_id"); len(restaurantID) > 0 {
			id := strutil.ConvertToUint(restaurantID)
			if !scopeContains(ids, all, id) {
				ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "restaurant not accessible"})
				return
			}
			query.RestaurantIDs = []uint{id}
		}
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Statuses = []string{status}
	}
	if ctx.Query("open") == "true" {
		query.Statuses = orders.OpenStatuses
	}
	if orderType := ctx.Query("order_type"); len(orderType) > 0 {
		query.OrderType = orderType
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	results, err := handler.orderService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []OrderResponse{}
	for _, order := range results {
		response = append(response, toOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *orderHandler) GetByID(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

func (handler *orderHandler) UpdateStatus(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	var request OrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid status data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	actor := orders.Actor{Role: claims.Role}
	updated, err := handler.orderService.UpdateStatus(ctx, order.ID, request.Status, request.Reason, actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

func (handler *orderHandler) Settle(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}

	var request SettleOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid settlement data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	settled, err := handler.orderService.Settle(ctx, order.ID, request.PaymentMethod, request.Discount, request.ServiceCharge)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(settled))
}

func (handler *orderHandler) AssignWaiter(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}

	var request AssignWaiterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid waiter data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.orderService.AssignWaiter(ctx, order.ID, request.StaffID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("assigned waiter to order with id %d", order.ID)})
}

func (handler *orderHandler) Invoice(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}
	invoice, err := handler.billingService.InvoiceForOrder(ctx, order.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invoice)
}

// Bill serves the printable PDF rendition of the invoice. Waiters, owners,
// managers and the ordering customer all share this endpoint.
func (handler *orderHandler) Bill(ctx *gin.Context) {
	order, ok := handler.accessibleOrder(ctx)
	if !ok {
		return
	}
	invoice, err := handler.billingService.InvoiceForOrder(ctx, order.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	data, err := handler.bills.Render(invoice)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", invoice.InvoiceNumber))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// accessibleOrder loads the order and enforces that the caller may see it:
// customers only their own, staff only their restaurants'.
func (handler *orderHandler) accessibleOrder(ctx *gin.Context) (*orders.Order, bool) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return nil, false
	}

	order, err := handler.orderService.GetByID(ctx, strutil.ConvertToUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}

	if claims.AccountType == auth.AccountCustomer {
		if order.CustomerID == nil || *order.CustomerID != claims.AccountID {
			ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "order not accessible"})
			return nil, false
		}
		return order, true
	}

	ids, all, err := restaurantScope(ctx, handler.authService)
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}
	if !scopeContains(ids, all, order.RestaurantID) {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "order not accessible"})
		return nil, false
	}
	return order, true
}

func placedItems(items []OrderItemRequest) []orders.PlacedItem {
	placed := make([]orders.PlacedItem, len(items))
	for i, item := range items {
		placed[i] = orders.PlacedItem{
			ProductVariantID: item.ProductVariantID,
			ComboSetID:       item.ComboSetID,
			Quantity:         item.Quantity,
		}
	}
	return placed
}
