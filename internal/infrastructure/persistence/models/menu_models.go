package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/shopspring/decimal"
)

// UnitModel is the GORM model for measurement units.
type UnitModel struct {
	ID           uint      `gorm:"primaryKey"`
	RestaurantID uint      `gorm:"not null;index"`
	Name         string    `gorm:"not null;type:varchar(50)"`
	Symbol       string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts GORM model to domain entity
func (m *UnitModel) ToDomain() *menu.Unit {
	return &menu.Unit{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Symbol:       m.Symbol,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UnitModel) FromDomain(u *menu.Unit) {
	m.ID = u.ID
	m.RestaurantID = u.RestaurantID
	m.Name = u.Name
	m.Symbol = u.Symbol
}

// CategoryModel is the GORM model for menu categories.
type CategoryModel struct {
	ID           uint      `gorm:"primaryKey"`
	RestaurantID uint      `gorm:"not null;index"`
	Name         string    `gorm:"not null;type:varchar(255)"`
	ImageKey     string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *menu.Category {
	return &menu.Category{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		ImageKey:     m.ImageKey,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *menu.Category) {
	m.ID = c.ID
	m.RestaurantID = c.RestaurantID
	m.Name = c.Name
	m.ImageKey = c.ImageKey
}

// ProductModel is the GORM model for products.
type ProductModel struct {
	ID           uint                  `gorm:"primaryKey"`
	RestaurantID uint                  `gorm:"not null;index"`
	CategoryID   uint                  `gorm:"not null;index"`
	Name         string                `gorm:"not null;type:varchar(255)"`
	ImageKey     string                `gorm:"type:varchar(255)"`
	IsActive     bool                  `gorm:"not null"`
	DishType     string                `gorm:"not null;type:varchar(20)"`
	Variants     []ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time             `gorm:"autoCreateTime"`
	UpdatedAt    time.Time             `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *menu.Product {
	variants := make([]menu.ProductVariant, 0, len(m.Variants))
	for i := range m.Variants {
		variants = append(variants, *m.Variants[i].ToDomain())
	}
	return &menu.Product{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		ImageKey:     m.ImageKey,
		IsActive:     m.IsActive,
		DishType:     m.DishType,
		Variants:     variants,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *menu.Product) {
	m.ID = p.ID
	m.RestaurantID = p.RestaurantID
	m.CategoryID = p.CategoryID
	m.Name = p.Name
	m.ImageKey = p.ImageKey
	m.IsActive = p.IsActive
	m.DishType = p.DishType
	m.Variants = make([]ProductVariantModel, 0, len(p.Variants))
	for i := range p.Variants {
		var vm ProductVariantModel
		vm.FromDomain(&p.Variants[i])
		m.Variants = append(m.Variants, vm)
	}
}

// ProductVariantModel is the GORM model for product variants.
type ProductVariantModel struct {
	ID           uint            `gorm:"primaryKey"`
	ProductID    uint            `gorm:"not null;index"`
	UnitID       uint            `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountType string          `gorm:"type:varchar(20)"`
	Discount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ToDomain converts GORM model to domain entity
func (m *ProductVariantModel) ToDomain() *menu.ProductVariant {
	return &menu.ProductVariant{
		ID:           m.ID,
		ProductID:    m.ProductID,
		UnitID:       m.UnitID,
		Price:        m.Price,
		DiscountType: m.DiscountType,
		Discount:     m.Discount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductVariantModel) FromDomain(v *menu.ProductVariant) {
	m.ID = v.ID
	m.ProductID = v.ProductID
	m.UnitID = v.UnitID
	m.Price = v.Price
	m.DiscountType = v.DiscountType
	m.Discount = v.Discount
}

// ComboSetModel is the GORM model for combo sets.
type ComboSetModel struct {
	ID           uint            `gorm:"primaryKey"`
	RestaurantID uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null;type:varchar(255)"`
	Description  string          `gorm:"type:text"`
	ImageKey     string          `gorm:"type:varchar(255)"`
	Products     []ProductModel  `gorm:"many2many:combo_set_products"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ComboSetModel) TableName() string {
	return "combo_sets"
}

// ToDomain converts GORM model to domain entity
func (m *ComboSetModel) ToDomain() *menu.ComboSet {
	productIDs := make([]uint, 0, len(m.Products))
	for _, p := range m.Products {
		productIDs = append(productIDs, p.ID)
	}
	return &menu.ComboSet{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		ImageKey:     m.ImageKey,
		ProductIDs:   productIDs,
		Price:        m.Price,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Product links are
// handled by the repository through the association API.
func (m *ComboSetModel) FromDomain(c *menu.ComboSet) {
	m.ID = c.ID
	m.RestaurantID = c.RestaurantID
	m.Name = c.Name
	m.Description = c.Description
	m.ImageKey = c.ImageKey
	m.Price = c.Price
}
