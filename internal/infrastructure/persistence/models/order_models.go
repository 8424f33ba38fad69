package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM model for orders.
type OrderModel struct {
	ID            uint   `gorm:"primaryKey"`
	RestaurantID  uint   `gorm:"not null;index"`
	CustomerID    *uint  `gorm:"index"`
	TableID       *uint  `gorm:"index"`
	WaiterID      *uint  `gorm:"index"`
	OrderType     string `gorm:"not null;type:varchar(20)"`
	Address       string `gorm:"type:text"`
	Status        string `gorm:"not null;type:varchar(20);index"`
	PaymentStatus string `gorm:"not null;type:varchar(20)"`
	PaymentMethod string `gorm:"type:varchar(20)"`
	PeopleFor     int    `gorm:"not null;default:0"`
	Total         decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	ServiceCharge *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	RejectReason  string           `gorm:"type:text"`
	TableNumber   string           `gorm:"type:varchar(50)"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	items := make([]orders.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToDomain())
	}
	return &orders.Order{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		CustomerID:    m.CustomerID,
		TableID:       m.TableID,
		WaiterID:      m.WaiterID,
		OrderType:     m.OrderType,
		Address:       m.Address,
		Status:        m.Status,
		PaymentStatus: m.PaymentStatus,
		PaymentMethod: m.PaymentMethod,
		PeopleFor:     m.PeopleFor,
		Total:         m.Total,
		ServiceCharge: m.ServiceCharge,
		Discount:      m.Discount,
		RejectReason:  m.RejectReason,
		TableNumber:   m.TableNumber,
		Items:         items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.RestaurantID = o.RestaurantID
	m.CustomerID = o.CustomerID
	m.TableID = o.TableID
	m.WaiterID = o.WaiterID
	m.OrderType = o.OrderType
	m.Address = o.Address
	m.Status = o.Status
	m.PaymentStatus = o.PaymentStatus
	m.PaymentMethod = o.PaymentMethod
	m.PeopleFor = o.PeopleFor
	m.Total = o.Total
	m.ServiceCharge = o.ServiceCharge
	m.Discount = o.Discount
	m.RejectReason = o.RejectReason
	m.TableNumber = o.TableNumber
	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for i := range o.Items {
		var im OrderItemModel
		im.FromDomain(&o.Items[i])
		m.Items = append(m.Items, im)
	}
}

// OrderItemModel is the GORM model for order lines.
type OrderItemModel struct {
	ID               uint            `gorm:"primaryKey"`
	OrderID          uint            `gorm:"not null;index"`
	ProductID        *uint           `gorm:"index"`
	ProductVariantID *uint           `gorm:"index"`
	ComboSetID       *uint           `gorm:"index"`
	Name             string          `gorm:"not null;type:varchar(255)"`
	Price            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts GORM model to domain entity
func (m *OrderItemModel) ToDomain() *orders.OrderItem {
	return &orders.OrderItem{
		ID:               m.ID,
		OrderID:          m.OrderID,
		ProductID:        m.ProductID,
		ProductVariantID: m.ProductVariantID,
		ComboSetID:       m.ComboSetID,
		Name:             m.Name,
		Price:            m.Price,
		Quantity:         m.Quantity,
		Total:            m.Total,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderItemModel) FromDomain(i *orders.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.ProductVariantID = i.ProductVariantID
	m.ComboSetID = i.ComboSetID
	m.Name = i.Name
	m.Price = i.Price
	m.Quantity = i.Quantity
	m.Total = i.Total
}
