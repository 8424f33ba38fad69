package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/connector"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// maxUploadBytes caps menu and logo images at 8 MiB.
const maxUploadBytes = 8 << 20

// MediaHandler uploads images to the object store and attaches the stored
// key to the owning entity. Routes 404 when no object store is configured.
type MediaHandler interface {
	UploadRestaurantLogo(ctx *gin.Context)
	UploadCategoryImage(ctx *gin.Context)
	UploadProductImage(ctx *gin.Context)
	UploadComboImage(ctx *gin.Context)
}

type mediaHandler struct {
	media             connector.MediaConnector
	restaurantService restaurants.RestaurantService
	menuService       menu.MenuService
	authService       users.AuthService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(media connector.MediaConnector, restaurantService restaurants.RestaurantService, menuService menu.MenuService, authService users.AuthService) MediaHandler {
	return &mediaHandler{
		media:             media,
		restaurantService: restaurantService,
		menuService:       menuService,
		authService:       authService,
	}
}

func (handler *mediaHandler) scoped(ctx *gin.Context) (uint, bool) {
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

// upload reads the multipart "file" field and stores it under prefix.
func (handler *mediaHandler) upload(ctx *gin.Context, prefix string) (string, bool) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("missing file field: %v", err)})
		return "", false
	}
	if fileHeader.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "file exceeds the 8 MiB upload limit"})
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unreadable file: %v", err)})
		return "", false
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key, err := handler.media.Upload(ctx, prefix, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		respondError(ctx, err)
		return "", false
	}
	return key, true
}

func (handler *mediaHandler) UploadRestaurantLogo(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	restaurant, err := handler.restaurantService.GetByID(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	key, ok := handler.upload(ctx, "restaurants")
	if !ok {
		return
	}
	previous := restaurant.LogoKey
	restaurant.LogoKey = key
	if err := handler.restaurantService.Update(ctx, restaurant); err != nil {
		respondError(ctx, err)
		return
	}
	if len(previous) > 0 {
		_ = handler.media.Delete(ctx, previous)
	}
	ctx.JSON(http.StatusOK, MediaUploadResponse{Key: key, URL: handler.media.PublicURL(key)})
}

func (handler *mediaHandler) UploadCategoryImage(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	category, err := handler.menuService.GetCategory(ctx, strutil.ConvertToUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if category.RestaurantID != restaurantID {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "category not accessible"})
		return
	}

	key, ok := handler.upload(ctx, "categories")
	if !ok {
		return
	}
	previous := category.ImageKey
	category.ImageKey = key
	if err := handler.menuService.UpdateCategory(ctx, restaurantID, category); err != nil {
		respondError(ctx, err)
		return
	}
	if len(previous) > 0 {
		_ = handler.media.Delete(ctx, previous)
	}
	ctx.JSON(http.StatusOK, MediaUploadResponse{Key: key, URL: handler.media.PublicURL(key)})
}

func (handler *mediaHandler) UploadProductImage(ctx *gin.Context) {
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

	key, ok := handler.upload(ctx, "products")
	if !ok {
		return
	}
	previous := product.ImageKey
	product.ImageKey = key
	if err := handler.menuService.UpdateProduct(ctx, restaurantID, product); err != nil {
		respondError(ctx, err)
		return
	}
	if len(previous) > 0 {
		_ = handler.media.Delete(ctx, previous)
	}
	ctx.JSON(http.StatusOK, MediaUploadResponse{Key: key, URL: handler.media.PublicURL(key)})
}

func (handler *mediaHandler) UploadComboImage(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	combo, err := handler.menuService.GetCombo(ctx, strutil.ConvertToUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if combo.RestaurantID != restaurantID {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "combo not accessible"})
		return
	}

	key, ok := handler.upload(ctx, "combos")
	if !ok {
		return
	}
	previous := combo.ImageKey
	combo.ImageKey = key
	if err := handler.menuService.UpdateCombo(ctx, restaurantID, combo); err != nil {
		respondError(ctx, err)
		return
	}
	if len(previous) > 0 {
		_ = handler.media.Delete(ctx, previous)
	}
	ctx.JSON(http.StatusOK, MediaUploadResponse{Key: key, URL: handler.media.PublicURL(key)})
}
