package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/qr"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// PublicHandler defines the unauthenticated QR surface.
type PublicHandler interface {
	ListRestaurants(ctx *gin.Context)
	GetRestaurant(ctx *gin.Context)
	ListTables(ctx *gin.Context)
	Menu(ctx *gin.Context)
	MenuQR(ctx *gin.Context)
	PlaceOrder(ctx *gin.Context)
	CallWaiter(ctx *gin.Context)
	SubmitFeedback(ctx *gin.Context)
}

type publicHandler struct {
	restaurantService restaurants.RestaurantService
	menuService       menu.MenuService
	orderService      orders.OrderService
	feedbackService   feedback.FeedbackService
	qrGenerator       *qr.Generator
	urls              urlFor
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(
	restaurantService restaurants.RestaurantService,
	menuService menu.MenuService,
	orderService orders.OrderService,
	feedbackService feedback.FeedbackService,
	qrGenerator *qr.Generator,
	urls urlFor,
) PublicHandler {
	return &publicHandler{
		restaurantService: restaurantService,
		menuService:       menuService,
		orderService:      orderService,
		feedbackService:   feedbackService,
		qrGenerator:       qrGenerator,
		urls:              urls,
	}
}

// ListRestaurants lists active restaurants for the public directory.
func (handler *publicHandler) ListRestaurants(ctx *gin.Context) {
	query := &restaurants.RestaurantQuery{ActiveOnly: true}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	list, err := handler.restaurantService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []RestaurantResponse{}
	for _, restaurant := range list {
		response = append(response, toRestaurantResponse(restaurant, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurant fetches one restaurant by slug.
func (handler *publicHandler) GetRestaurant(ctx *gin.Context) {
	restaurant, err := handler.restaurantService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil || !restaurant.IsActive {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("restaurant %s not found", ctx.Param("slug"))})
		return
	}
	ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant, handler.urls))
}

// ListTables lists a restaurant's tables so the QR page can pin one.
func (handler *publicHandler) ListTables(ctx *gin.Context) {
	restaurant, err := handler.restaurantService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil || !restaurant.IsActive {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("restaurant %s not found", ctx.Param("slug"))})
		return
	}

	tables, err := handler.restaurantService.ListTables(ctx, restaurant.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []TableResponse{}
	for _, table := range tables {
		response = append(response, toTableResponse(table))
	}
	ctx.JSON(http.StatusOK, response)
}

// Menu assembles the QR menu. A closed restaurant still returns its
// payload, just with no categories.
func (handler *publicHandler) Menu(ctx *gin.Context) {
	slug := ctx.Param("slug")
	restaurant, err := handler.restaurantService.GetBySlug(ctx, slug)
	if err != nil || !restaurant.IsActive {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("restaurant %s not found", slug)})
		return
	}

	publicMenu, err := handler.menuService.PublicMenu(ctx, slug)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := PublicMenuResponse{
		Restaurant: toRestaurantResponse(restaurant, handler.urls),
		Categories: []PublicCategoryResponse{},
		Combos:     []ComboResponse{},
	}
	for _, group := range publicMenu.Categories {
		category := PublicCategoryResponse{
			Category: toCategoryResponse(group.Category, handler.urls),
			Products: []ProductResponse{},
		}
		for _, product := range group.Products {
			category.Products = append(category.Products, toProductResponse(product, handler.urls))
		}
		response.Categories = append(response.Categories, category)
	}
	for _, combo := range publicMenu.Combos {
		response.Combos = append(response.Combos, toComboResponse(combo, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

// MenuQR renders the menu link as a PNG QR code, optionally pinned to a
// table via ?table=<id>.
func (handler *publicHandler) MenuQR(ctx *gin.Context) {
	slug := ctx.Param("slug")
	restaurant, err := handler.restaurantService.GetBySlug(ctx, slug)
	if err != nil || !restaurant.IsActive {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("restaurant %s not found", slug)})
		return
	}

	var tableID uint
	if table := ctx.Query("table"); len(table) > 0 {
		tableID = strutil.ConvertToUint(table)
	}

	png, err := handler.qrGenerator.MenuPNG(slug, tableID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to render qr code"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// PlaceOrder places an unauthenticated order from the QR menu page.
func (handler *publicHandler) PlaceOrder(ctx *gin.Context) {
	var request PublicOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid order data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	input := &orders.PublicOrderInput{
		Slug:         ctx.Param("slug"),
		CustomerName: request.CustomerName,
		CountryCode:  request.CountryCode,
		Phone:        request.Phone,
		TableID:      request.TableID,
		TableNumber:  request.TableNumber,
		OrderType:    request.OrderType,
		Address:      request.Address,
		PeopleFor:    request.PeopleFor,
	}
	for _, item := range request.Items {
		input.Items = append(input.Items, orders.PlacedItem{
			ProductVariantID: item.ProductVariantID,
			ComboSetID:       item.ComboSetID,
			Quantity:         item.Quantity,
		})
	}

	order, err := handler.orderService.PlaceBySlug(ctx, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// CallWaiter raises a pending waiter call for a table.
func (handler *publicHandler) CallWaiter(ctx *gin.Context) {
	var request WaiterCallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid call data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	restaurant, err := handler.restaurantService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	call := &feedback.WaiterCall{
		RestaurantID: restaurant.ID,
		TableID:      request.TableID,
		TableNumber:  request.TableNumber,
		CustomerName: request.CustomerName,
		Message:      request.Message,
		Status:       feedback.CallPending,
	}
	created, err := handler.feedbackService.RaiseCall(ctx, call)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toWaiterCallResponse(created))
}

// SubmitFeedback records a rating from the QR page. The diner is resolved
// by phone.
func (handler *publicHandler) SubmitFeedback(ctx *gin.Context) {
	var request PublicFeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid feedback data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	fb := &feedback.Feedback{
		OrderID: request.OrderID,
		StaffID: request.StaffID,
		Rating:  request.Rating,
		Review:  request.Review,
	}
	created, err := handler.feedbackService.SubmitPublic(ctx, ctx.Param("slug"), request.CustomerName, request.CountryCode, request.Phone, fb)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toFeedbackResponse(created))
}
