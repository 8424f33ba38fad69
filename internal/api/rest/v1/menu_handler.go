package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// MenuHandler defines the owner and manager surface for menu management.
type MenuHandler interface {
	CreateUnit(ctx *gin.Context)
	ListUnits(ctx *gin.Context)
	UpdateUnit(ctx *gin.Context)
	DeleteUnit(ctx *gin.Context)

	CreateCategory(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
	DeleteCategory(ctx *gin.Context)

	CreateProduct(ctx *gin.Context)
	ListProducts(ctx *gin.Context)
	GetProduct(ctx *gin.Context)
	UpdateProduct(ctx *gin.Context)
	DeleteProduct(ctx *gin.Context)

	CreateCombo(ctx *gin.Context)
	ListCombos(ctx *gin.Context)
	UpdateCombo(ctx *gin.Context)
	DeleteCombo(ctx *gin.Context)
}

type menuHandler struct {
	menuService menu.MenuService
	authService users.AuthService
	urls        urlFor
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService menu.MenuService, authService users.AuthService, urls urlFor) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		authService: authService,
		urls:        urls,
	}
}

func (handler *menuHandler) scoped(ctx *gin.Context) (uint, bool) {
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

func (handler *menuHandler) CreateUnit(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request UnitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid unit data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	unit := &menu.Unit{RestaurantID: restaurantID, Name: request.Name, Symbol: request.Symbol}
	created, err := handler.menuService.CreateUnit(ctx, unit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toUnitResponse(created))
}

func (handler *menuHandler) ListUnits(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	units, err := handler.menuService.ListUnits(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []UnitResponse{}
	for _, unit := range units {
		response = append(response, toUnitResponse(unit))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *menuHandler) UpdateUnit(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request UnitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid unit data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	unit := &menu.Unit{
		ID:           strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID: restaurantID,
		Name:         request.Name,
		Symbol:       request.Symbol,
	}
	if err := handler.menuService.UpdateUnit(ctx, restaurantID, unit); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUnitResponse(unit))
}

func (handler *menuHandler) DeleteUnit(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	unitID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.menuService.DeleteUnit(ctx, restaurantID, unitID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted unit with id %d", unitID)})
}

func (handler *menuHandler) CreateCategory(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid category data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	category := &menu.Category{RestaurantID: restaurantID, Name: request.Name}
	created, err := handler.menuService.CreateCategory(ctx, category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toCategoryResponse(created, handler.urls))
}

func (handler *menuHandler) ListCategories(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	categories, err := handler.menuService.ListCategories(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []CategoryResponse{}
	for _, category := range categories {
		response = append(response, toCategoryResponse(category, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *menuHandler) UpdateCategory(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid category data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	category := &menu.Category{
		ID:           strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID: restaurantID,
		Name:         request.Name,
	}
	if err := handler.menuService.UpdateCategory(ctx, restaurantID, category); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toCategoryResponse(category, handler.urls))
}

func (handler *menuHandler) DeleteCategory(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	categoryID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.menuService.DeleteCategory(ctx, restaurantID, categoryID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted category with id %d", categoryID)})
}

func (handler *menuHandler) CreateProduct(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid product data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	product := productFromRequest(restaurantID, 0, &request)
	created, err := handler.menuService.CreateProduct(ctx, product)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toProductResponse(created, handler.urls))
}

func (handler *menuHandler) ListProducts(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	query := &menu.ProductQuery{RestaurantID: restaurantID}
	if categoryID := ctx.Query("category_id"); len(categoryID) > 0 {
		query.CategoryID = strutil.ConvertToUint(categoryID)
	}
	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	products, err := handler.menuService.ListProducts(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []ProductResponse{}
	for _, product := range products {
		response = append(response, toProductResponse(product, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *menuHandler) GetProduct(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	product, err := handler.menuService.GetProduct(ctx, strutil.ConvertToUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if product.RestaurantID != restaurantID {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "product not accessible"})
		return
	}
	ctx.JSON(http.StatusOK, toProductResponse(product, handler.urls))
}

func (handler *menuHandler) UpdateProduct(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid product data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	product := productFromRequest(restaurantID, strutil.ConvertToUint(ctx.Param("id")), &request)
	if err := handler.menuService.UpdateProduct(ctx, restaurantID, product); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProductResponse(product, handler.urls))
}

func (handler *menuHandler) DeleteProduct(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	productID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.menuService.DeleteProduct(ctx, restaurantID, productID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted product with id %d", productID)})
}

func (handler *menuHandler) CreateCombo(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request ComboRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid combo data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	combo := &menu.ComboSet{
		RestaurantID: restaurantID,
		Name:         request.Name,
		Description:  request.Description,
		ProductIDs:   request.ProductIDs,
		Price:        request.Price,
	}
	created, err := handler.menuService.CreateCombo(ctx, combo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toComboResponse(created, handler.urls))
}

func (handler *menuHandler) ListCombos(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	combos, err := handler.menuService.ListCombos(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []ComboResponse{}
	for _, combo := range combos {
		response = append(response, toComboResponse(combo, handler.urls))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *menuHandler) UpdateCombo(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request ComboRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid combo data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	combo := &menu.ComboSet{
		ID:           strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID: restaurantID,
		Name:         request.Name,
		Description:  request.Description,
		ProductIDs:   request.ProductIDs,
		Price:        request.Price,
	}
	if err := handler.menuService.UpdateCombo(ctx, restaurantID, combo); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toComboResponse(combo, handler.urls))
}

func (handler *menuHandler) DeleteCombo(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	comboID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.menuService.DeleteCombo(ctx, restaurantID, comboID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted combo with id %d", comboID)})
}

func productFromRequest(restaurantID, productID uint, request *ProductRequest) *menu.Product {
	product := &menu.Product{
		ID:           productID,
		RestaurantID: restaurantID,
		CategoryID:   request.CategoryID,
		Name:         request.Name,
		DishType:     request.DishType,
		IsActive:     true,
	}
	if request.IsActive != nil {
		product.IsActive = *request.IsActive
	}
	for _, variant := range request.Variants {
		product.Variants = append(product.Variants, menu.ProductVariant{
			UnitID:       variant.UnitID,
			Price:        variant.Price,
			DiscountType: variant.DiscountType,
			Discount:     variant.Discount,
		})
	}
	return product
}
