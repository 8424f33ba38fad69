package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// InventoryHandler covers raw materials, consumption links and manual stock
// movements.
type InventoryHandler interface {
	CreateMaterial(ctx *gin.Context)
	ListMaterials(ctx *gin.Context)
	UpdateMaterial(ctx *gin.Context)
	DeleteMaterial(ctx *gin.Context)
	LinkConsumption(ctx *gin.Context)
	UnlinkConsumption(ctx *gin.Context)
	RecordMovement(ctx *gin.Context)
	ListMovements(ctx *gin.Context)
}

type inventoryHandler struct {
	inventoryService inventory.InventoryService
	authService      users.AuthService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService inventory.InventoryService, authService users.AuthService) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		authService:      authService,
	}
}

func (handler *inventoryHandler) scoped(ctx *gin.Context) (uint, bool) {
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

func (handler *inventoryHandler) CreateMaterial(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request RawMaterialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid material data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	material := &inventory.RawMaterial{
		RestaurantID: restaurantID,
		Name:         request.Name,
		UnitID:       request.UnitID,
		Vendor:       request.Vendor,
		Stock:        request.Stock,
	}
	created, err := handler.inventoryService.CreateMaterial(ctx, material)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toRawMaterialResponse(created))
}

func (handler *inventoryHandler) ListMaterials(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	materials, err := handler.inventoryService.ListMaterials(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []RawMaterialResponse{}
	for _, material := range materials {
		response = append(response, toRawMaterialResponse(material))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *inventoryHandler) UpdateMaterial(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request RawMaterialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid material data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	material := &inventory.RawMaterial{
		ID:           strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID: restaurantID,
		Name:         request.Name,
		UnitID:       request.UnitID,
		Vendor:       request.Vendor,
		Stock:        request.Stock,
	}
	if err := handler.inventoryService.UpdateMaterial(ctx, restaurantID, material); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRawMaterialResponse(material))
}

func (handler *inventoryHandler) DeleteMaterial(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	materialID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.inventoryService.DeleteMaterial(ctx, restaurantID, materialID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted raw material with id %d", materialID)})
}

func (handler *inventoryHandler) LinkConsumption(ctx *gin.Context) {
	if _, ok := handler.scoped(ctx); !ok {
		return
	}

	var request ConsumptionLinkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid consumption data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	link := &inventory.ProductRawMaterial{
		ProductID:        request.ProductID,
		ProductVariantID: request.ProductVariantID,
		RawMaterialID:    request.RawMaterialID,
		Quantity:         request.Quantity,
	}
	created, err := handler.inventoryService.LinkConsumption(ctx, link)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toConsumptionLinkResponse(created))
}

func (handler *inventoryHandler) UnlinkConsumption(ctx *gin.Context) {
	if _, ok := handler.scoped(ctx); !ok {
		return
	}
	linkID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.inventoryService.UnlinkConsumption(ctx, linkID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("removed consumption link with id %d", linkID)})
}

func (handler *inventoryHandler) RecordMovement(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request StockMovementRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid movement data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	if err := handler.inventoryService.RecordMovement(ctx, restaurantID, request.RawMaterialID, request.Type, request.Quantity); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("recorded stock %s for material with id %d", request.Type, request.RawMaterialID)})
}

func (handler *inventoryHandler) ListMovements(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	limit := 100
	offset := 0
	if raw := ctx.Query("limit"); len(raw) > 0 {
		limit = strutil.ConvertToInt(raw)
	}
	if raw := ctx.Query("offset"); len(raw) > 0 {
		offset = strutil.ConvertToInt(raw)
	}

	movements, err := handler.inventoryService.ListMovements(ctx, restaurantID, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []StockLogResponse{}
	for _, movement := range movements {
		response = append(response, toStockLogResponse(movement))
	}
	ctx.JSON(http.StatusOK, response)
}
