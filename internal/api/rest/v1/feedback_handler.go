package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/auth"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// FeedbackHandler covers the authenticated feedback and waiter-call
// surfaces. Public submission lives on PublicHandler.
type FeedbackHandler interface {
	Submit(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	ListByRestaurant(ctx *gin.Context)
	ListPendingCalls(ctx *gin.Context)
	CompleteCall(ctx *gin.Context)
}

type feedbackHandler struct {
	feedbackService feedback.FeedbackService
	authService     users.AuthService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService feedback.FeedbackService, authService users.AuthService) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		authService:     authService,
	}
}

func (handler *feedbackHandler) scoped(ctx *gin.Context) (uint, bool) {
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

// Submit records feedback from a logged-in diner against their own account.
func (handler *feedbackHandler) Submit(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}
	if claims.AccountType != auth.AccountCustomer {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "only customers can submit feedback"})
		return
	}

	var request FeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid feedback data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	fb := &feedback.Feedback{
		RestaurantID: request.RestaurantID,
		CustomerID:   claims.AccountID,
		OrderID:      request.OrderID,
		StaffID:      request.StaffID,
		Rating:       request.Rating,
		Review:       request.Review,
	}
	created, err := handler.feedbackService.Submit(ctx, fb)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toFeedbackResponse(created))
}

func (handler *feedbackHandler) ListMine(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}
	if claims.AccountType != auth.AccountCustomer {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "only customers have personal feedback"})
		return
	}

	limit, offset := pageParams(ctx)
	results, err := handler.feedbackService.ListByCustomer(ctx, claims.AccountID, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []FeedbackResponse{}
	for _, fb := range results {
		response = append(response, toFeedbackResponse(fb))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *feedbackHandler) ListByRestaurant(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	limit, offset := pageParams(ctx)
	results, err := handler.feedbackService.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []FeedbackResponse{}
	for _, fb := range results {
		response = append(response, toFeedbackResponse(fb))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *feedbackHandler) ListPendingCalls(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	calls, err := handler.feedbackService.ListPendingCalls(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []WaiterCallResponse{}
	for _, call := range calls {
		response = append(response, toWaiterCallResponse(call))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *feedbackHandler) CompleteCall(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	callID := strutil.ConvertToUint(ctx.Param("id"))
	var staffID *uint
	if raw := ctx.Query("staff_id"); len(raw) > 0 {
		id := strutil.ConvertToUint(raw)
		staffID = &id
	}

	if err := handler.feedbackService.CompleteCall(ctx, restaurantID, callID, staffID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("completed waiter call with id %d", callID)})
}

func pageParams(ctx *gin.Context) (int, int) {
	limit := 100
	offset := 0
	if raw := ctx.Query("limit"); len(raw) > 0 {
		limit = strutil.ConvertToInt(raw)
	}
	if raw := ctx.Query("offset"); len(raw) > 0 {
		offset = strutil.ConvertToInt(raw)
	}
	return limit, offset
}
