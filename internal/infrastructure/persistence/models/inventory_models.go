package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// RawMaterialModel is the GORM model for raw materials.
type RawMaterialModel struct {
	ID           uint            `gorm:"primaryKey"`
	RestaurantID uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null;type:varchar(255)"`
	UnitID       *uint           `gorm:"index"`
	Vendor       string          `gorm:"type:varchar(255)"`
	Stock        decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (RawMaterialModel) TableName() string {
	return "raw_materials"
}

// ToDomain converts GORM model to domain entity
func (m *RawMaterialModel) ToDomain() *inventory.RawMaterial {
	return &inventory.RawMaterial{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		UnitID:       m.UnitID,
		Vendor:       m.Vendor,
		Stock:        m.Stock,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RawMaterialModel) FromDomain(r *inventory.RawMaterial) {
	m.ID = r.ID
	m.RestaurantID = r.RestaurantID
	m.Name = r.Name
	m.UnitID = r.UnitID
	m.Vendor = r.Vendor
	m.Stock = r.Stock
}

// ProductRawMaterialModel is the GORM model for product consumption links.
type ProductRawMaterialModel struct {
	ID               uint            `gorm:"primaryKey"`
	ProductID        uint            `gorm:"not null;index"`
	ProductVariantID *uint           `gorm:"index"`
	RawMaterialID    uint            `gorm:"not null;index"`
	Quantity         decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ProductRawMaterialModel) TableName() string {
	return "product_raw_materials"
}

// ToDomain converts GORM model to domain entity
func (m *ProductRawMaterialModel) ToDomain() *inventory.ProductRawMaterial {
	return &inventory.ProductRawMaterial{
		ID:               m.ID,
		ProductID:        m.ProductID,
		ProductVariantID: m.ProductVariantID,
		RawMaterialID:    m.RawMaterialID,
		Quantity:         m.Quantity,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductRawMaterialModel) FromDomain(l *inventory.ProductRawMaterial) {
	m.ID = l.ID
	m.ProductID = l.ProductID
	m.ProductVariantID = l.ProductVariantID
	m.RawMaterialID = l.RawMaterialID
	m.Quantity = l.Quantity
}

// StockLogModel is the GORM model for stock movements.
type StockLogModel struct {
	ID            uint            `gorm:"primaryKey"`
	RestaurantID  uint            `gorm:"not null;index"`
	RawMaterialID uint            `gorm:"not null;index"`
	Type          string          `gorm:"not null;type:varchar(10)"`
	Quantity      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	OrderID       *uint           `gorm:"index"`
	OrderItemID   *uint
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (StockLogModel) TableName() string {
	return "stock_logs"
}

// ToDomain converts GORM model to domain entity
func (m *StockLogModel) ToDomain() *inventory.StockLog {
	return &inventory.StockLog{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		RawMaterialID: m.RawMaterialID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		OrderID:       m.OrderID,
		OrderItemID:   m.OrderItemID,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StockLogModel) FromDomain(s *inventory.StockLog) {
	m.ID = s.ID
	m.RestaurantID = s.RestaurantID
	m.RawMaterialID = s.RawMaterialID
	m.Type = s.Type
	m.Quantity = s.Quantity
	m.OrderID = s.OrderID
	m.OrderItemID = s.OrderItemID
}
