package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/strutil"
)

// RestaurantHandler defines the owner and manager surface for restaurants,
// tables, staff and attendance.
type RestaurantHandler interface {
	Create(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)

	CreateTable(ctx *gin.Context)
	ListTables(ctx *gin.Context)
	UpdateTable(ctx *gin.Context)
	DeleteTable(ctx *gin.Context)

	AddStaff(ctx *gin.Context)
	ListStaff(ctx *gin.Context)
	UpdateStaff(ctx *gin.Context)
	RemoveStaff(ctx *gin.Context)
	RecordAttendance(ctx *gin.Context)
	ListAttendance(ctx *gin.Context)
}

type restaurantHandler struct {
	restaurantService restaurants.RestaurantService
	authService       users.AuthService
	urls              urlFor
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService restaurants.RestaurantService, authService users.AuthService, urls urlFor) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		authService:       authService,
		urls:              urls,
	}
}

// scoped parses :restaurantID and verifies the caller can manage it.
func (handler *restaurantHandler) scoped(ctx *gin.Context) (uint, bool) {
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

// Create opens a new restaurant for the logged-in owner. The owner must
// have passed KYC.
func (handler *restaurantHandler) Create(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	account, err := handler.authService.Account(ctx, claims.AccountType, claims.AccountID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if account.User == nil || account.User.KycStatus != users.KycApproved {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "owner account is not KYC approved"})
		return
	}

	var request RestaurantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid restaurant data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	restaurant := &restaurants.Restaurant{
		OwnerID:     account.User.ID,
		Slug:        request.Slug,
		Name:        request.Name,
		CountryCode: request.CountryCode,
		Phone:       request.Phone,
		Email:       request.Email,
		Address:     request.Address,
		TaxPercent:  request.TaxPercent,
		IsOpen:      request.IsOpen,
		IsActive:    true,
	}
	created, err := handler.restaurantService.Create(ctx, restaurant)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toRestaurantResponse(created, handler.urls))
}

// ListMine lists the restaurants the caller can manage.
func (handler *restaurantHandler) ListMine(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	account, err := handler.authService.Account(ctx, claims.AccountType, claims.AccountID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	query := &restaurants.RestaurantQuery{}
	switch {
	case account.Role == users.RoleSuperAdmin:
		// no filter
	case account.Role == users.RoleOwner:
		query.OwnerID = account.User.ID
	default:
		if len(account.RestaurantIDs) == 0 {
			ctx.JSON(http.StatusOK, []RestaurantResponse{})
			return
		}
		query.IDs = account.RestaurantIDs
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

// Get fetches one managed restaurant.
func (handler *restaurantHandler) Get(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	restaurant, err := handler.restaurantService.GetByID(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant, handler.urls))
}

// Update edits restaurant settings. Activation and balances are platform
// controlled and never touched here.
func (handler *restaurantHandler) Update(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request RestaurantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid restaurant data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	restaurant, err := handler.restaurantService.GetByID(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	restaurant.Slug = request.Slug
	restaurant.Name = request.Name
	restaurant.CountryCode = request.CountryCode
	restaurant.Phone = request.Phone
	restaurant.Email = request.Email
	restaurant.Address = request.Address
	restaurant.TaxPercent = request.TaxPercent
	restaurant.IsOpen = request.IsOpen

	if err := handler.restaurantService.Update(ctx, restaurant); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant, handler.urls))
}

func (handler *restaurantHandler) CreateTable(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request TableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid table data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	table := &restaurants.Table{
		RestaurantID: restaurantID,
		Name:         request.Name,
		Capacity:     request.Capacity,
		Floor:        request.Floor,
		NearBy:       request.NearBy,
		Notes:        request.Notes,
	}
	created, err := handler.restaurantService.CreateTable(ctx, table)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toTableResponse(created))
}

func (handler *restaurantHandler) ListTables(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	tables, err := handler.restaurantService.ListTables(ctx, restaurantID)
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

func (handler *restaurantHandler) UpdateTable(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request TableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid table data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	table := &restaurants.Table{
		ID:           strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID: restaurantID,
		Name:         request.Name,
		Capacity:     request.Capacity,
		Floor:        request.Floor,
		NearBy:       request.NearBy,
		Notes:        request.Notes,
	}
	if err := handler.restaurantService.UpdateTable(ctx, restaurantID, table); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toTableResponse(table))
}

func (handler *restaurantHandler) DeleteTable(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	tableID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.restaurantService.DeleteTable(ctx, restaurantID, tableID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted table with id %d", tableID)})
}

// AddStaff creates the staff user account and attaches it to the
// restaurant in one call.
func (handler *restaurantHandler) AddStaff(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request RegisterStaffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid staff data: %v", err)})
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
		IsKitchen:   request.IsKitchen,
	}
	created, err := handler.authService.RegisterStaff(ctx, user, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	staff := &restaurants.Staff{
		RestaurantID:     restaurantID,
		UserID:           created.ID,
		IsManager:        request.IsManager,
		IsWaiter:         request.IsWaiter,
		Designation:      request.Designation,
		Salary:           request.Salary,
		SalaryType:       request.SalaryType,
		AssignedTableIDs: request.AssignedIDs,
	}
	added, err := handler.restaurantService.AddStaff(ctx, staff)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toStaffResponse(added))
}

func (handler *restaurantHandler) ListStaff(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	staff, err := handler.restaurantService.ListStaff(ctx, restaurantID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []StaffResponse{}
	for _, member := range staff {
		response = append(response, toStaffResponse(member))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *restaurantHandler) UpdateStaff(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request StaffUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid staff data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	staff := &restaurants.Staff{
		ID:               strutil.ConvertToUint(ctx.Param("id")),
		RestaurantID:     restaurantID,
		IsManager:        request.IsManager,
		IsWaiter:         request.IsWaiter,
		Designation:      request.Designation,
		Salary:           request.Salary,
		SalaryType:       request.SalaryType,
		IsSuspended:      request.IsSuspended,
		AssignedTableIDs: request.AssignedIDs,
	}
	if err := handler.restaurantService.UpdateStaff(ctx, restaurantID, staff); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStaffResponse(staff))
}

func (handler *restaurantHandler) RemoveStaff(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}
	staffID := strutil.ConvertToUint(ctx.Param("id"))
	if err := handler.restaurantService.RemoveStaff(ctx, restaurantID, staffID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("removed staff with id %d", staffID)})
}

// RecordAttendance upserts attendance for (staff, date).
func (handler *restaurantHandler) RecordAttendance(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	var request AttendanceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid attendance data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid date"})
		return
	}

	attendance := &restaurants.Attendance{
		StaffID: request.StaffID,
		Date:    date,
		Status:  request.Status,
		Note:    request.Note,
	}
	if err := handler.restaurantService.RecordAttendance(ctx, restaurantID, attendance); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAttendanceResponse(attendance))
}

// ListAttendance lists attendance for one day, defaulting to today.
func (handler *restaurantHandler) ListAttendance(ctx *gin.Context) {
	restaurantID, ok := handler.scoped(ctx)
	if !ok {
		return
	}

	date := time.Now()
	if raw := ctx.Query("date"); len(raw) > 0 {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid date"})
			return
		}
		date = parsed
	}

	list, err := handler.restaurantService.ListAttendance(ctx, restaurantID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := []AttendanceResponse{}
	for _, attendance := range list {
		response = append(response, toAttendanceResponse(attendance))
	}
	ctx.JSON(http.StatusOK, response)
}
