package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/cache"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/connector"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/pdf"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/qr"
)

// RouteDeps bundles everything the API surface needs.
type RouteDeps struct {
	AuthService       users.AuthService
	AdminService      users.AdminService
	RestaurantService restaurants.RestaurantService
	MenuService       menu.MenuService
	OrderService      orders.OrderService
	InventoryService  inventory.InventoryService
	BillingService    billing.BillingService
	FeedbackService   feedback.FeedbackService

	TokenStore cache.TokenStore
	JWTSecret  string
	QR         *qr.Generator
	// Media is nil when no object store is configured; upload routes are
	// not registered in that case.
	Media connector.MediaConnector
}

// SetupRoutes sets up all the API routes.
func SetupRoutes(r *gin.Engine, deps RouteDeps) {
	urls := func(key string) string { return key }
	if deps.Media != nil {
		urls = deps.Media.PublicURL
	}

	api := r.Group(BasePath)

	// Public routes: login, registration and the QR dining surface.
	authHandler := NewAuthHandler(deps.AuthService, urls)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register/owner", authHandler.RegisterOwner)
	api.POST("/auth/register/customer", authHandler.RegisterCustomer)

	publicHandler := NewPublicHandler(deps.RestaurantService, deps.MenuService, deps.OrderService, deps.FeedbackService, deps.QR, urls)
	api.GET("/public/restaurants", publicHandler.ListRestaurants)
	api.GET("/public/restaurants/:slug", publicHandler.GetRestaurant)
	api.GET("/public/restaurants/:slug/tables", publicHandler.ListTables)
	api.GET("/public/restaurants/:slug/menu", publicHandler.Menu)
	api.GET("/public/restaurants/:slug/menu/qr", publicHandler.MenuQR)
	api.POST("/public/restaurants/:slug/orders", publicHandler.PlaceOrder)
	api.POST("/public/restaurants/:slug/waiter-calls", publicHandler.CallWaiter)
	api.POST("/public/restaurants/:slug/feedback", publicHandler.SubmitFeedback)

	authed := api.Group("", AuthMiddleware(deps.JWTSecret, deps.TokenStore))

	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/change-password", authHandler.ChangePassword)
	authed.POST("/auth/logout", authHandler.Logout)

	// Restaurant management. Handlers enforce per-restaurant access from
	// the token's account, so staff roles share the group.
	staffRoles := RequireRoles(users.RoleSuperAdmin, users.RoleOwner, users.RoleManager, users.RoleWaiter, users.RoleKitchen)
	managerRoles := RequireRoles(users.RoleSuperAdmin, users.RoleOwner, users.RoleManager)

	restaurantHandler := NewRestaurantHandler(deps.RestaurantService, deps.AuthService, urls)
	authed.POST("/restaurants", RequireRoles(users.RoleOwner), restaurantHandler.Create)
	authed.GET("/restaurants", staffRoles, restaurantHandler.ListMine)

	restaurant := authed.Group("/restaurants/:restaurantID", staffRoles)
	restaurant.GET("", restaurantHandler.Get)
	restaurant.PUT("", managerRoles, restaurantHandler.Update)

	restaurant.POST("/tables", managerRoles, restaurantHandler.CreateTable)
	restaurant.GET("/tables", restaurantHandler.ListTables)
	restaurant.PUT("/tables/:id", managerRoles, restaurantHandler.UpdateTable)
	restaurant.DELETE("/tables/:id", managerRoles, restaurantHandler.DeleteTable)

	restaurant.POST("/staff", managerRoles, restaurantHandler.AddStaff)
	restaurant.GET("/staff", managerRoles, restaurantHandler.ListStaff)
	restaurant.PUT("/staff/:id", managerRoles, restaurantHandler.UpdateStaff)
	restaurant.DELETE("/staff/:id", managerRoles, restaurantHandler.RemoveStaff)
	restaurant.POST("/attendance", managerRoles, restaurantHandler.RecordAttendance)
	restaurant.GET("/attendance", managerRoles, restaurantHandler.ListAttendance)

	menuHandler := NewMenuHandler(deps.MenuService, deps.AuthService, urls)
	restaurant.POST("/units", managerRoles, menuHandler.CreateUnit)
	restaurant.GET("/units", menuHandler.ListUnits)
	restaurant.PUT("/units/:id", managerRoles, menuHandler.UpdateUnit)
	restaurant.DELETE("/units/:id", managerRoles, menuHandler.DeleteUnit)

	restaurant.POST("/categories", managerRoles, menuHandler.CreateCategory)
	restaurant.GET("/categories", menuHandler.ListCategories)
	restaurant.PUT("/categories/:id", managerRoles, menuHandler.UpdateCategory)
	restaurant.DELETE("/categories/:id", managerRoles, menuHandler.DeleteCategory)

	restaurant.POST("/products", managerRoles, menuHandler.CreateProduct)
	restaurant.GET("/products", menuHandler.ListProducts)
	restaurant.GET("/products/:id", menuHandler.GetProduct)
	restaurant.PUT("/products/:id", managerRoles, menuHandler.UpdateProduct)
	restaurant.DELETE("/products/:id", managerRoles, menuHandler.DeleteProduct)

	restaurant.POST("/combos", managerRoles, menuHandler.CreateCombo)
	restaurant.GET("/combos", menuHandler.ListCombos)
	restaurant.PUT("/combos/:id", managerRoles, menuHandler.UpdateCombo)
	restaurant.DELETE("/combos/:id", managerRoles, menuHandler.DeleteCombo)

	inventoryHandler := NewInventoryHandler(deps.InventoryService, deps.AuthService)
	restaurant.POST("/materials", managerRoles, inventoryHandler.CreateMaterial)
	restaurant.GET("/materials", inventoryHandler.ListMaterials)
	restaurant.PUT("/materials/:id", managerRoles, inventoryHandler.UpdateMaterial)
	restaurant.DELETE("/materials/:id", managerRoles, inventoryHandler.DeleteMaterial)
	restaurant.POST("/consumption-links", managerRoles, inventoryHandler.LinkConsumption)
	restaurant.DELETE("/consumption-links/:id", managerRoles, inventoryHandler.UnlinkConsumption)
	restaurant.POST("/stock-movements", managerRoles, inventoryHandler.RecordMovement)
	restaurant.GET("/stock-movements", inventoryHandler.ListMovements)

	billingHandler := NewBillingHandler(deps.BillingService, deps.AuthService)
	restaurant.GET("/transactions", managerRoles, billingHandler.ListTransactions)
	restaurant.POST("/due-payments", managerRoles, billingHandler.RecordDuePayment)
	restaurant.POST("/subscription-payments", RequireRoles(users.RoleSuperAdmin, users.RoleOwner), billingHandler.PaySubscriptionDue)

	feedbackHandler := NewFeedbackHandler(deps.FeedbackService, deps.AuthService)
	restaurant.GET("/feedback", feedbackHandler.ListByRestaurant)
	restaurant.GET("/waiter-calls", feedbackHandler.ListPendingCalls)
	restaurant.POST("/waiter-calls/:id/complete", feedbackHandler.CompleteCall)

	authed.POST("/feedback", feedbackHandler.Submit)
	authed.GET("/feedback/mine", feedbackHandler.ListMine)

	// Orders scope themselves by account, so customers and staff share
	// these routes.
	orderHandler := NewOrderHandler(deps.OrderService, deps.BillingService, deps.AuthService, pdf.NewBillRenderer())
	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.GetByID)
	authed.PATCH("/orders/:id/status", staffRoles, orderHandler.UpdateStatus)
	authed.POST("/orders/:id/settle", staffRoles, orderHandler.Settle)
	authed.POST("/orders/:id/waiter", staffRoles, orderHandler.AssignWaiter)
	authed.GET("/orders/:id/invoice", orderHandler.Invoice)
	authed.GET("/orders/:id/bill", orderHandler.Bill)

	if deps.Media != nil {
		mediaHandler := NewMediaHandler(deps.Media, deps.RestaurantService, deps.MenuService, deps.AuthService)
		restaurant.POST("/logo", managerRoles, mediaHandler.UploadRestaurantLogo)
		restaurant.POST("/categories/:id/image", managerRoles, mediaHandler.UploadCategoryImage)
		restaurant.POST("/products/:id/image", managerRoles, mediaHandler.UploadProductImage)
		restaurant.POST("/combos/:id/image", managerRoles, mediaHandler.UploadComboImage)
	}

	admin := authed.Group("/admin", RequireRoles(users.RoleSuperAdmin))
	adminHandler := NewAdminHandler(deps.AdminService, deps.RestaurantService, deps.BillingService, urls)
	admin.GET("/owners", adminHandler.ListOwners)
	admin.POST("/owners/:id/kyc", adminHandler.DecideKyc)
	admin.POST("/restaurants/:id/activation", adminHandler.SetRestaurantActivation)
	admin.GET("/transactions", adminHandler.ListSystemTransactions)
}
