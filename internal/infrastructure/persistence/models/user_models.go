package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/shopspring/decimal"
)

// UserModel is the GORM model for staff-side accounts.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"type:varchar(255)"`
	CountryCode  string    `gorm:"not null;type:varchar(10);uniqueIndex:idx_users_country_phone"`
	Phone        string    `gorm:"not null;type:varchar(20);uniqueIndex:idx_users_country_phone"`
	Email        string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(128)"`
	ImageKey     string    `gorm:"type:varchar(255)"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	IsOwner      bool      `gorm:"not null;default:false"`
	IsStaff      bool      `gorm:"not null;default:false"`
	IsKitchen    bool      `gorm:"not null;default:false"`
	KycStatus    string    `gorm:"type:varchar(20);default:pending"`
	RejectReason string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Name:         m.Name,
		CountryCode:  m.CountryCode,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		ImageKey:     m.ImageKey,
		IsSuperuser:  m.IsSuperuser,
		IsOwner:      m.IsOwner,
		IsStaff:      m.IsStaff,
		IsKitchen:    m.IsKitchen,
		KycStatus:    m.KycStatus,
		RejectReason: m.RejectReason,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.CountryCode = u.CountryCode
	m.Phone = u.Phone
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.ImageKey = u.ImageKey
	m.IsSuperuser = u.IsSuperuser
	m.IsOwner = u.IsOwner
	m.IsStaff = u.IsStaff
	m.IsKitchen = u.IsKitchen
	m.KycStatus = u.KycStatus
	m.RejectReason = u.RejectReason
	m.IsActive = u.IsActive
}

// CustomerModel is the GORM model for diner accounts.
type CustomerModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null;type:varchar(255)"`
	CountryCode  string    `gorm:"type:varchar(10);uniqueIndex:idx_customers_country_phone"`
	Phone        string    `gorm:"not null;type:varchar(20);uniqueIndex:idx_customers_country_phone"`
	Address      string    `gorm:"type:text"`
	PasswordHash string    `gorm:"not null;type:varchar(128);default:!"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts GORM model to domain entity
func (m *CustomerModel) ToDomain() *users.Customer {
	return &users.Customer{
		ID:           m.ID,
		Name:         m.Name,
		CountryCode:  m.CountryCode,
		Phone:        m.Phone,
		Address:      m.Address,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CustomerModel) FromDomain(c *users.Customer) {
	m.ID = c.ID
	m.Name = c.Name
	m.CountryCode = c.CountryCode
	m.Phone = c.Phone
	m.Address = c.Address
	m.PasswordHash = c.PasswordHash
}

// CustomerLinkModel ties customers to restaurants with running balances.
type CustomerLinkModel struct {
	ID           uint            `gorm:"primaryKey"`
	CustomerID   uint            `gorm:"not null;uniqueIndex:idx_customer_restaurant"`
	RestaurantID uint            `gorm:"not null;uniqueIndex:idx_customer_restaurant"`
	ToPay        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ToReceive    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CustomerLinkModel) TableName() string {
	return "customer_restaurants"
}

// ToDomain converts GORM model to domain entity
func (m *CustomerLinkModel) ToDomain() *users.CustomerLink {
	return &users.CustomerLink{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		RestaurantID: m.RestaurantID,
		ToPay:        m.ToPay,
		ToReceive:    m.ToReceive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CustomerLinkModel) FromDomain(l *users.CustomerLink) {
	m.ID = l.ID
	m.CustomerID = l.CustomerID
	m.RestaurantID = l.RestaurantID
	m.ToPay = l.ToPay
	m.ToReceive = l.ToReceive
}
