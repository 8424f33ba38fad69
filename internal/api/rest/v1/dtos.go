package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the generic informational payload.
type InfoResponse struct {
	Message string `json:"message"`
}

func validateRequest(v interface{}) error {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// --- auth ---

// LoginRequest carries the unified login credentials. An empty AccountType
// tries the customer table first; "user" or "customer" restricts the lookup
// to that side.
type LoginRequest struct {
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone" validate:"required"`
	Password    string `json:"password" validate:"required"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=user customer"`
}

// Validate checks the request fields.
func (r *LoginRequest) Validate() error { return validateRequest(r) }

type RegisterOwnerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	CountryCode string `json:"country_code" validate:"required,max=10"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

// Validate checks the request fields.
func (r *RegisterOwnerRequest) Validate() error { return validateRequest(r) }

type RegisterCustomerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	CountryCode string `json:"country_code" validate:"max=10"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Address     string `json:"address"`
	Password    string `json:"password" validate:"required,min=6"`
}

// Validate checks the request fields.
func (r *RegisterCustomerRequest) Validate() error { return validateRequest(r) }

type RegisterStaffRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	CountryCode  string          `json:"country_code" validate:"required,max=10"`
	Phone        string          `json:"phone" validate:"required,max=20"`
	Password     string          `json:"password" validate:"required,min=6"`
	IsManager    bool            `json:"is_manager"`
	IsWaiter     bool            `json:"is_waiter"`
	IsKitchen    bool            `json:"is_kitchen"`
	Designation  string          `json:"designation" validate:"max=100"`
	Salary       decimal.Decimal `json:"salary"`
	SalaryType   string          `json:"salary_type" validate:"omitempty,oneof=per_day monthly"`
	AssignedIDs  []uint          `json:"assigned_table_ids"`
}

// Validate checks the request fields.
func (r *RegisterStaffRequest) Validate() error { return validateRequest(r) }

type StaffUpdateRequest struct {
	IsManager   bool            `json:"is_manager"`
	IsWaiter    bool            `json:"is_waiter"`
	Designation string          `json:"designation" validate:"max=100"`
	Salary      decimal.Decimal `json:"salary"`
	SalaryType  string          `json:"salary_type" validate:"omitempty,oneof=per_day monthly"`
	IsSuspended bool            `json:"is_suspended"`
	AssignedIDs []uint          `json:"assigned_table_ids"`
}

// Validate checks the request fields.
func (r *StaffUpdateRequest) Validate() error { return validateRequest(r) }

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Validate checks the request fields.
func (r *ChangePasswordRequest) Validate() error { return validateRequest(r) }

// --- restaurants ---

type RestaurantRequest struct {
	Slug        string           `json:"slug" validate:"required,max=100"`
	Name        string           `json:"name" validate:"required,max=255"`
	CountryCode string           `json:"country_code" validate:"max=10"`
	Phone       string           `json:"phone" validate:"max=20"`
	Email       string           `json:"email" validate:"omitempty,email"`
	Address     string           `json:"address"`
	TaxPercent  *decimal.Decimal `json:"tax_percent"`
	IsOpen      bool             `json:"is_open"`
}

// Validate checks the request fields.
func (r *RestaurantRequest) Validate() error { return validateRequest(r) }

type TableRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"min=0"`
	Floor    string `json:"floor" validate:"max=50"`
	NearBy   string `json:"near_by" validate:"max=255"`
	Notes    string `json:"notes"`
}

// Validate checks the request fields.
func (r *TableRequest) Validate() error { return validateRequest(r) }

type AttendanceRequest struct {
	StaffID uint   `json:"staff_id" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=present absent leave"`
	Note    string `json:"note"`
}

// Validate checks the request fields.
func (r *AttendanceRequest) Validate() error { return validateRequest(r) }

// --- menu ---

type UnitRequest struct {
	Name   string `json:"name" validate:"required,max=50"`
	Symbol string `json:"symbol" validate:"max=20"`
}

// Validate checks the request fields.
func (r *UnitRequest) Validate() error { return validateRequest(r) }

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Validate checks the request fields.
func (r *CategoryRequest) Validate() error { return validateRequest(r) }

type VariantRequest struct {
	UnitID       uint            `json:"unit_id" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	DiscountType string          `json:"discount_type" validate:"omitempty,oneof=flat percentage"`
	Discount     decimal.Decimal `json:"discount"`
}

type ProductRequest struct {
	CategoryID uint             `json:"category_id" validate:"required"`
	Name       string           `json:"name" validate:"required,max=255"`
	DishType   string           `json:"dish_type" validate:"required,oneof=veg non_veg"`
	IsActive   *bool            `json:"is_active"`
	Variants   []VariantRequest `json:"variants" validate:"required,min=1,dive"`
}

// Validate checks the request fields.
func (r *ProductRequest) Validate() error { return validateRequest(r) }

type ComboRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	ProductIDs  []uint          `json:"product_ids" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// Validate checks the request fields.
func (r *ComboRequest) Validate() error { return validateRequest(r) }

// --- orders ---

type OrderItemRequest struct {
	ProductVariantID *uint           `json:"product_variant_id"`
	ComboSetID       *uint           `json:"combo_set_id"`
	Quantity         decimal.Decimal `json:"quantity" validate:"required"`
}

type PlaceOrderRequest struct {
	RestaurantID uint               `json:"restaurant_id" validate:"required"`
	TableID      *uint              `json:"table_id"`
	TableNumber  string             `json:"table_number" validate:"max=64"`
	OrderType    string             `json:"order_type" validate:"required,oneof=table packing delivery"`
	Address      string             `json:"address"`
	PeopleFor    int                `json:"people_for"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Validate checks the request fields.
func (r *PlaceOrderRequest) Validate() error { return validateRequest(r) }

type PublicOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"max=255"`
	CountryCode  string             `json:"country_code" validate:"max=10"`
	Phone        string             `json:"phone" validate:"max=20"`
	TableID      *uint              `json:"table_id"`
	TableNumber  string             `json:"table_number" validate:"max=64"`
	OrderType    string             `json:"order_type" validate:"required,oneof=table packing delivery"`
	Address      string             `json:"address"`
	PeopleFor    int                `json:"people_for"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Validate checks the request fields.
func (r *PublicOrderRequest) Validate() error { return validateRequest(r) }

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted running ready served rejected"`
	Reason string `json:"reason"`
}

// Validate checks the request fields.
func (r *OrderStatusRequest) Validate() error { return validateRequest(r) }

type SettleOrderRequest struct {
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash e_wallet bank"`
	Discount      *decimal.Decimal `json:"discount"`
	ServiceCharge *decimal.Decimal `json:"service_charge"`
}

// Validate checks the request fields.
func (r *SettleOrderRequest) Validate() error { return validateRequest(r) }

type AssignWaiterRequest struct {
	StaffID uint `json:"staff_id" validate:"required"`
}

// Validate checks the request fields.
func (r *AssignWaiterRequest) Validate() error { return validateRequest(r) }

// --- inventory ---

type RawMaterialRequest struct {
	Name   string          `json:"name" validate:"required,max=255"`
	UnitID *uint           `json:"unit_id"`
	Vendor string          `json:"vendor" validate:"max=255"`
	Stock  decimal.Decimal `json:"stock"`
}

// Validate checks the request fields.
func (r *RawMaterialRequest) Validate() error { return validateRequest(r) }

type ConsumptionLinkRequest struct {
	ProductID        uint            `json:"product_id" validate:"required"`
	ProductVariantID *uint           `json:"product_variant_id"`
	RawMaterialID    uint            `json:"raw_material_id" validate:"required"`
	Quantity         decimal.Decimal `json:"quantity" validate:"required"`
}

// Validate checks the request fields.
func (r *ConsumptionLinkRequest) Validate() error { return validateRequest(r) }

type StockMovementRequest struct {
	RawMaterialID uint            `json:"raw_material_id" validate:"required"`
	Type          string          `json:"type" validate:"required,oneof=in out"`
	Quantity      decimal.Decimal `json:"quantity" validate:"required"`
}

// Validate checks the request fields.
func (r *StockMovementRequest) Validate() error { return validateRequest(r) }

// --- billing ---

type DuePaymentRequest struct {
	CustomerID uint            `json:"customer_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Direction  string          `json:"direction" validate:"required,oneof=in out"`
	Remarks    string          `json:"remarks"`
}

// Validate checks the request fields.
func (r *DuePaymentRequest) Validate() error { return validateRequest(r) }

type SubscriptionPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Remarks string          `json:"remarks"`
}

// Validate checks the request fields.
func (r *SubscriptionPaymentRequest) Validate() error { return validateRequest(r) }

// --- engagement ---

type FeedbackRequest struct {
	RestaurantID uint   `json:"restaurant_id" validate:"required"`
	OrderID      *uint  `json:"order_id"`
	StaffID      *uint  `json:"staff_id"`
	Rating       int    `json:"rating" validate:"min=0,max=5"`
	Review       string `json:"review"`
}

// Validate checks the request fields.
func (r *FeedbackRequest) Validate() error { return validateRequest(r) }

type PublicFeedbackRequest struct {
	CustomerName string `json:"customer_name" validate:"max=255"`
	CountryCode  string `json:"country_code" validate:"max=10"`
	Phone        string `json:"phone" validate:"required,max=20"`
	OrderID      *uint  `json:"order_id"`
	StaffID      *uint  `json:"staff_id"`
	Rating       int    `json:"rating" validate:"min=0,max=5"`
	Review       string `json:"review"`
}

// Validate checks the request fields.
func (r *PublicFeedbackRequest) Validate() error { return validateRequest(r) }

type WaiterCallRequest struct {
	TableID      *uint  `json:"table_id"`
	TableNumber  string `json:"table_number" validate:"max=64"`
	CustomerName string `json:"customer_name" validate:"max=255"`
	Message      string `json:"message"`
}

// Validate checks the request fields.
func (r *WaiterCallRequest) Validate() error { return validateRequest(r) }

// --- admin ---

type KycDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Reason string `json:"reason"`
}

// Validate checks the request fields.
func (r *KycDecisionRequest) Validate() error { return validateRequest(r) }

type ActivationRequest struct {
	IsActive        bool       `json:"is_active"`
	SubscriptionEnd *time.Time `json:"subscription_end"`
}

// --- responses ---

type AuthResponse struct {
	Token         string `json:"token"`
	AccountID     uint   `json:"account_id"`
	AccountType   string `json:"account_type"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	RestaurantIDs []uint `json:"restaurant_ids,omitempty"`
}

type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CountryCode string    `json:"country_code"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Image       string    `json:"image,omitempty"`
	IsSuperuser bool      `json:"is_superuser"`
	IsOwner     bool      `json:"is_owner"`
	IsKitchen   bool      `json:"is_kitchen"`
	KycStatus   string    `json:"kyc_status,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CountryCode string    `json:"country_code"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	CanLogin    bool      `json:"can_login"`
	CreatedAt   time.Time `json:"created_at"`
}

type AccountResponse struct {
	Role          string            `json:"role"`
	RestaurantIDs []uint            `json:"restaurant_ids,omitempty"`
	User          *UserResponse     `json:"user,omitempty"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
}

type RestaurantResponse struct {
	ID                uint       `json:"id"`
	OwnerID           uint       `json:"owner_id"`
	Slug              string     `json:"slug"`
	Name              string     `json:"name"`
	CountryCode       string     `json:"country_code,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty"`
	Logo              string     `json:"logo,omitempty"`
	Address           string     `json:"address,omitempty"`
	TaxPercent        *string    `json:"tax_percent,omitempty"`
	Balance           string     `json:"balance"`
	DueBalance        string     `json:"due_balance"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	IsOpen            bool       `json:"is_open"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

type TableResponse struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	Floor        string `json:"floor,omitempty"`
	NearBy       string `json:"near_by,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type StaffResponse struct {
	ID               uint       `json:"id"`
	RestaurantID     uint       `json:"restaurant_id"`
	UserID           uint       `json:"user_id"`
	IsManager        bool       `json:"is_manager"`
	IsWaiter         bool       `json:"is_waiter"`
	Designation      string     `json:"designation,omitempty"`
	JoinedAt         *time.Time `json:"joined_at,omitempty"`
	Salary           string     `json:"salary"`
	SalaryType       string     `json:"salary_type,omitempty"`
	IsSuspended      bool       `json:"is_suspended"`
	AssignedTableIDs []uint     `json:"assigned_table_ids,omitempty"`
}

type AttendanceResponse struct {
	ID      uint   `json:"id"`
	StaffID uint   `json:"staff_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Note    string `json:"note,omitempty"`
}

type UnitResponse struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol,omitempty"`
}

type CategoryResponse struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
}

type VariantResponse struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"product_id"`
	UnitID       uint   `json:"unit_id"`
	Price        string `json:"price"`
	DiscountType string `json:"discount_type,omitempty"`
	Discount     string `json:"discount,omitempty"`
	FinalPrice   string `json:"final_price"`
}

type ProductResponse struct {
	ID           uint              `json:"id"`
	RestaurantID uint              `json:"restaurant_id"`
	CategoryID   uint              `json:"category_id"`
	Name         string            `json:"name"`
	Image        string            `json:"image,omitempty"`
	IsActive     bool              `json:"is_active"`
	DishType     string            `json:"dish_type"`
	Variants     []VariantResponse `json:"variants"`
}

type ComboResponse struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductIDs   []uint `json:"product_ids"`
	Price        string `json:"price"`
}

type OrderItemResponse struct {
	ID               uint   `json:"id"`
	ProductID        *uint  `json:"product_id,omitempty"`
	ProductVariantID *uint  `json:"product_variant_id,omitempty"`
	ComboSetID       *uint  `json:"combo_set_id,omitempty"`
	Name             string `json:"name"`
	Price            string `json:"price"`
	Quantity         string `json:"quantity"`
	Total            string `json:"total"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	RestaurantID  uint                `json:"restaurant_id"`
	CustomerID    *uint               `json:"customer_id,omitempty"`
	TableID       *uint               `json:"table_id,omitempty"`
	WaiterID      *uint               `json:"waiter_id,omitempty"`
	OrderType     string              `json:"order_type"`
	Address       string              `json:"address,omitempty"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	PeopleFor     int                 `json:"people_for,omitempty"`
	Total         string              `json:"total"`
	ServiceCharge *string             `json:"service_charge,omitempty"`
	Discount      *string             `json:"discount,omitempty"`
	RejectReason  string              `json:"reject_reason,omitempty"`
	TableNumber   string              `json:"table_number,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

type TransactionResponse struct {
	ID            uint      `json:"id"`
	RestaurantID  *uint     `json:"restaurant_id,omitempty"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	IsSystem      bool      `json:"is_system"`
	Remarks       string    `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RawMaterialResponse struct {
	ID           uint   `json:"id"`
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	UnitID       *uint  `json:"unit_id,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
	Stock        string `json:"stock"`
}

type ConsumptionLinkResponse struct {
	ID               uint   `json:"id"`
	ProductID        uint   `json:"product_id"`
	ProductVariantID *uint  `json:"product_variant_id,omitempty"`
	RawMaterialID    uint   `json:"raw_material_id"`
	Quantity         string `json:"quantity"`
}

type StockLogResponse struct {
	ID            uint      `json:"id"`
	RestaurantID  uint      `json:"restaurant_id"`
	RawMaterialID uint      `json:"raw_material_id"`
	Type          string    `json:"type"`
	Quantity      string    `json:"quantity"`
	OrderID       *uint     `json:"order_id,omitempty"`
	OrderItemID   *uint     `json:"order_item_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedbackResponse struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	CustomerID   uint      `json:"customer_id"`
	OrderID      *uint     `json:"order_id,omitempty"`
	StaffID      *uint     `json:"staff_id,omitempty"`
	Rating       int       `json:"rating"`
	Review       string    `json:"review,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type WaiterCallResponse struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	TableID      *uint     `json:"table_id,omitempty"`
	TableNumber  string    `json:"table_number,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	AssignedTo   *uint     `json:"assigned_to,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type PublicCategoryResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

type PublicMenuResponse struct {
	Restaurant RestaurantResponse       `json:"restaurant"`
	Categories []PublicCategoryResponse `json:"categories"`
	Combos     []ComboResponse          `json:"combos"`
}

type MediaUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// --- mappers ---

// urlFor turns a stored media key into a public URL. Handlers without an
// object store pass the identity function.
type urlFor func(key string) string

func toUserResponse(u *users.User, urls urlFor) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		CountryCode: u.CountryCode,
		Phone:       u.Phone,
		Email:       u.Email,
		Image:       urls(u.ImageKey),
		IsSuperuser: u.IsSuperuser,
		IsOwner:     u.IsOwner,
		IsKitchen:   u.IsKitchen,
		KycStatus:   u.KycStatus,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func toCustomerResponse(c *users.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		CountryCode: c.CountryCode,
		Phone:       c.Phone,
		Address:     c.Address,
		CanLogin:    c.CanLogin(),
		CreatedAt:   c.CreatedAt,
	}
}

func toRestaurantResponse(r *restaurants.Restaurant, urls urlFor) RestaurantResponse {
	resp := RestaurantResponse{
		ID:                r.ID,
		OwnerID:           r.OwnerID,
		Slug:              r.Slug,
		Name:              r.Name,
		CountryCode:       r.CountryCode,
		Phone:             r.Phone,
		Email:             r.Email,
		Logo:              urls(r.LogoKey),
		Address:           r.Address,
		Balance:           money.String(r.Balance),
		DueBalance:        money.String(r.DueBalance),
		SubscriptionStart: r.SubscriptionStart,
		SubscriptionEnd:   r.SubscriptionEnd,
		IsOpen:            r.IsOpen,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
	}
	if r.TaxPercent != nil {
		tax := r.TaxPercent.String()
		resp.TaxPercent = &tax
	}
	return resp
}

func toTableResponse(t *restaurants.Table) TableResponse {
	return TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Name:         t.Name,
		Capacity:     t.Capacity,
		Floor:        t.Floor,
		NearBy:       t.NearBy,
		Notes:        t.Notes,
	}
}

func toStaffResponse(s *restaurants.Staff) StaffResponse {
	return StaffResponse{
		ID:               s.ID,
		RestaurantID:     s.RestaurantID,
		UserID:           s.UserID,
		IsManager:        s.IsManager,
		IsWaiter:         s.IsWaiter,
		Designation:      s.Designation,
		JoinedAt:         s.JoinedAt,
		Salary:           money.String(s.Salary),
		SalaryType:       s.SalaryType,
		IsSuspended:      s.IsSuspended,
		AssignedTableIDs: s.AssignedTableIDs,
	}
}

func toAttendanceResponse(a *restaurants.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:      a.ID,
		StaffID: a.StaffID,
		Date:    a.Date.Format("2006-01-02"),
		Status:  a.Status,
		Note:    a.Note,
	}
}

func toUnitResponse(u *menu.Unit) UnitResponse {
	return UnitResponse{ID: u.ID, RestaurantID: u.RestaurantID, Name: u.Name, Symbol: u.Symbol}
}

func toCategoryResponse(c *menu.Category, urls urlFor) CategoryResponse {
	return CategoryResponse{ID: c.ID, RestaurantID: c.RestaurantID, Name: c.Name, Image: urls(c.ImageKey)}
}

func toProductResponse(p *menu.Product, urls urlFor) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Image:        urls(p.ImageKey),
		IsActive:     p.IsActive,
		DishType:     p.DishType,
		Variants:     []VariantResponse{},
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		variant := VariantResponse{
			ID:           v.ID,
			ProductID:    v.ProductID,
			UnitID:       v.UnitID,
			Price:        money.String(v.Price),
			DiscountType: v.DiscountType,
			FinalPrice:   money.String(v.FinalPrice()),
		}
		if !v.Discount.IsZero() {
			variant.Discount = v.Discount.String()
		}
		resp.Variants = append(resp.Variants, variant)
	}
	return resp
}

func toComboResponse(c *menu.ComboSet, urls urlFor) ComboResponse {
	return ComboResponse{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		Description:  c.Description,
		Image:        urls(c.ImageKey),
		ProductIDs:   c.ProductIDs,
		Price:        money.String(c.Price),
	}
}

func toOrderResponse(o *orders.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		CustomerID:    o.CustomerID,
		TableID:       o.TableID,
		WaiterID:      o.WaiterID,
		OrderType:     o.OrderType,
		Address:       o.Address,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		PeopleFor:     o.PeopleFor,
		Total:         money.String(o.Total),
		RejectReason:  o.RejectReason,
		TableNumber:   o.TableNumber,
		Items:         []OrderItemResponse{},
		CreatedAt:     o.CreatedAt,
	}
	if o.ServiceCharge != nil {
		s := money.String(*o.ServiceCharge)
		resp.ServiceCharge = &s
	}
	if o.Discount != nil {
		d := money.String(*o.Discount)
		resp.Discount = &d
	}
	for i := range o.Items {
		item := &o.Items[i]
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			ComboSetID:       item.ComboSetID,
			Name:             item.Name,
			Price:            money.String(item.Price),
			Quantity:         item.Quantity.String(),
			Total:            money.String(item.Total),
		})
	}
	return resp
}

func toTransactionResponse(t *billing.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		RestaurantID:  t.RestaurantID,
		Amount:        money.String(t.Amount),
		Type:          t.Type,
		Category:      t.Category,
		PaymentStatus: t.PaymentStatus,
		IsSystem:      t.IsSystem,
		Remarks:       t.Remarks,
		CreatedAt:     t.CreatedAt,
	}
}

func toRawMaterialResponse(m *inventory.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		UnitID:       m.UnitID,
		Vendor:       m.Vendor,
		Stock:        m.Stock.String(),
	}
}

func toConsumptionLinkResponse(l *inventory.ProductRawMaterial) ConsumptionLinkResponse {
	return ConsumptionLinkResponse{
		ID:               l.ID,
		ProductID:        l.ProductID,
		ProductVariantID: l.ProductVariantID,
		RawMaterialID:    l.RawMaterialID,
		Quantity:         l.Quantity.String(),
	}
}

func toStockLogResponse(l *inventory.StockLog) StockLogResponse {
	return StockLogResponse{
		ID:            l.ID,
		RestaurantID:  l.RestaurantID,
		RawMaterialID: l.RawMaterialID,
		Type:          l.Type,
		Quantity:      l.Quantity.String(),
		OrderID:       l.OrderID,
		OrderItemID:   l.OrderItemID,
		CreatedAt:     l.CreatedAt,
	}
}

func toFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           f.ID,
		RestaurantID: f.RestaurantID,
		CustomerID:   f.CustomerID,
		OrderID:      f.OrderID,
		StaffID:      f.StaffID,
		Rating:       f.Rating,
		Review:       f.Review,
		CreatedAt:    f.CreatedAt,
	}
}

func toWaiterCallResponse(w *feedback.WaiterCall) WaiterCallResponse {
	return WaiterCallResponse{
		ID:           w.ID,
		RestaurantID: w.RestaurantID,
		TableID:      w.TableID,
		TableNumber:  w.TableNumber,
		CustomerName: w.CustomerName,
		Message:      w.Message,
		Status:       w.Status,
		AssignedTo:   w.AssignedTo,
		CreatedAt:    w.CreatedAt,
	}
}
