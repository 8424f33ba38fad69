package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// TransactionModel is the GORM model for ledger transactions.
type TransactionModel struct {
	ID            uint            `gorm:"primaryKey"`
	RestaurantID  *uint           `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type          string          `gorm:"not null;type:varchar(10)"`
	Category      string          `gorm:"not null;type:varchar(50);index"`
	PaymentStatus string          `gorm:"type:varchar(20)"`
	IsSystem      bool            `gorm:"not null;default:false;index"`
	Remarks       string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *billing.Transaction {
	return &billing.Transaction{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		Amount:        m.Amount,
		Type:          m.Type,
		Category:      m.Category,
		PaymentStatus: m.PaymentStatus,
		IsSystem:      m.IsSystem,
		Remarks:       m.Remarks,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *billing.Transaction) {
	m.ID = t.ID
	m.RestaurantID = t.RestaurantID
	m.Amount = t.Amount
	m.Type = t.Type
	m.Category = t.Category
	m.PaymentStatus = t.PaymentStatus
	m.IsSystem = t.IsSystem
	m.Remarks = t.Remarks
}
