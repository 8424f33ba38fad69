package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// RawMaterialRepository defines persistence operations for raw materials.
type RawMaterialRepository interface {
	Create(ctx context.Context, material *RawMaterial) error
	GetByID(ctx context.Context, id uint) (*RawMaterial, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*RawMaterial, error)
	UpdateByID(ctx context.Context, material *RawMaterial) error
	DeleteByID(ctx context.Context, id uint) error
	// AdjustStock atomically adds delta (negative for consumption) to the
	// material's stock level.
	AdjustStock(ctx context.Context, id uint, delta decimal.Decimal) error
}

// ConsumptionRepository defines persistence for product↔raw-material links.
type ConsumptionRepository interface {
	Create(ctx context.Context, link *ProductRawMaterial) error
	// ListForVariant returns links matching (product, variant); links with a
	// nil variant apply to every variant of the product.
	ListForVariant(ctx context.Context, productID uint, variantID *uint) ([]*ProductRawMaterial, error)
	ListByProduct(ctx context.Context, productID uint) ([]*ProductRawMaterial, error)
	DeleteByID(ctx context.Context, id uint) error
}

// InventoryService manages raw materials and their consumption.
type InventoryService interface {
	CreateMaterial(ctx context.Context, material *RawMaterial) (*RawMaterial, error)
	ListMaterials(ctx context.Context, restaurantID uint) ([]*RawMaterial, error)
	UpdateMaterial(ctx context.Context, restaurantID uint, material *RawMaterial) error
	DeleteMaterial(ctx context.Context, restaurantID, materialID uint) error

	LinkConsumption(ctx context.Context, link *ProductRawMaterial) (*ProductRawMaterial, error)
	UnlinkConsumption(ctx context.Context, id uint) error

	// RecordMovement adjusts stock manually and writes the matching log.
	RecordMovement(ctx context.Context, restaurantID, materialID uint, direction string, quantity decimal.Decimal) error
	// DeductForOrder consumes raw materials for every order line, once.
	// A second call for the same order is a no-op.
	DeductForOrder(ctx context.Context, orderID uint) error
	ListMovements(ctx context.Context, restaurantID uint, limit, offset int) ([]*StockLog, error)
}

// StockLogRepository defines persistence for stock movements.
type StockLogRepository interface {
	Create(ctx context.Context, log *StockLog) error
	// ExistsForOrder reports whether any movement references the order,
	// the idempotency guard for deduction.
	ExistsForOrder(ctx context.Context, orderID uint) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*StockLog, error)
}
