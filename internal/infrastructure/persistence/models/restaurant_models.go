package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/shopspring/decimal"
)

// RestaurantModel is the GORM model for restaurants.
type RestaurantModel struct {
	ID                uint             `gorm:"primaryKey"`
	OwnerID           uint             `gorm:"not null;index"`
	Slug              string           `gorm:"not null;type:varchar(100);uniqueIndex"`
	Name              string           `gorm:"not null;type:varchar(255)"`
	CountryCode       string           `gorm:"type:varchar(10)"`
	Phone             string           `gorm:"type:varchar(20)"`
	Email             string           `gorm:"type:varchar(255)"`
	LogoKey           string           `gorm:"type:varchar(255)"`
	Address           string           `gorm:"type:text"`
	TaxPercent        *decimal.Decimal `gorm:"type:numeric(5,2)"`
	Balance           decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	DueBalance        decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time `gorm:"index"`
	IsOpen            bool       `gorm:"not null"`
	IsActive          bool       `gorm:"not null"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ToDomain converts GORM model to domain entity
func (m *RestaurantModel) ToDomain() *restaurants.Restaurant {
	return &restaurants.Restaurant{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		Slug:              m.Slug,
		Name:              m.Name,
		CountryCode:       m.CountryCode,
		Phone:             m.Phone,
		Email:             m.Email,
		LogoKey:           m.LogoKey,
		Address:           m.Address,
		TaxPercent:        m.TaxPercent,
		Balance:           m.Balance,
		DueBalance:        m.DueBalance,
		SubscriptionStart: m.SubscriptionStart,
		SubscriptionEnd:   m.SubscriptionEnd,
		IsOpen:            m.IsOpen,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RestaurantModel) FromDomain(r *restaurants.Restaurant) {
	m.ID = r.ID
	m.OwnerID = r.OwnerID
	m.Slug = r.Slug
	m.Name = r.Name
	m.CountryCode = r.CountryCode
	m.Phone = r.Phone
	m.Email = r.Email
	m.LogoKey = r.LogoKey
	m.Address = r.Address
	m.TaxPercent = r.TaxPercent
	m.Balance = r.Balance
	m.DueBalance = r.DueBalance
	m.SubscriptionStart = r.SubscriptionStart
	m.SubscriptionEnd = r.SubscriptionEnd
	m.IsOpen = r.IsOpen
	m.IsActive = r.IsActive
}

// TableModel is the GORM model for dining tables.
type TableModel struct {
	ID           uint      `gorm:"primaryKey"`
	RestaurantID uint      `gorm:"not null;index"`
	Name         string    `gorm:"not null;type:varchar(100)"`
	Capacity     int       `gorm:"not null;default:0"`
	Floor        string    `gorm:"type:varchar(50)"`
	NearBy       string    `gorm:"type:varchar(255)"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (TableModel) TableName() string {
	return "dining_tables"
}

// ToDomain converts GORM model to domain entity
func (m *TableModel) ToDomain() *restaurants.Table {
	return &restaurants.Table{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Capacity:     m.Capacity,
		Floor:        m.Floor,
		NearBy:       m.NearBy,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TableModel) FromDomain(t *restaurants.Table) {
	m.ID = t.ID
	m.RestaurantID = t.RestaurantID
	m.Name = t.Name
	m.Capacity = t.Capacity
	m.Floor = t.Floor
	m.NearBy = t.NearBy
	m.Notes = t.Notes
}

// StaffModel is the GORM model for staff assignments.
type StaffModel struct {
	ID             uint            `gorm:"primaryKey"`
	RestaurantID   uint            `gorm:"not null;uniqueIndex:idx_staff_restaurant_user"`
	UserID         uint            `gorm:"not null;uniqueIndex:idx_staff_restaurant_user"`
	IsManager      bool            `gorm:"not null;default:false"`
	IsWaiter       bool            `gorm:"not null;default:false"`
	Designation    string          `gorm:"type:varchar(100)"`
	JoinedAt       *time.Time
	Salary         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PerDaySalary   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	SalaryType     string          `gorm:"type:varchar(20);default:per_day"`
	IsSuspended    bool            `gorm:"not null;default:false"`
	AssignedTables []TableModel    `gorm:"many2many:staff_assigned_tables"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (StaffModel) TableName() string {
	return "staff"
}

// ToDomain converts GORM model to domain entity
func (m *StaffModel) ToDomain() *restaurants.Staff {
	tableIDs := make([]uint, 0, len(m.AssignedTables))
	for _, t := range m.AssignedTables {
		tableIDs = append(tableIDs, t.ID)
	}
	return &restaurants.Staff{
		ID:               m.ID,
		RestaurantID:     m.RestaurantID,
		UserID:           m.UserID,
		IsManager:        m.IsManager,
		IsWaiter:         m.IsWaiter,
		Designation:      m.Designation,
		JoinedAt:         m.JoinedAt,
		Salary:           m.Salary,
		PerDaySalary:     m.PerDaySalary,
		SalaryType:       m.SalaryType,
		IsSuspended:      m.IsSuspended,
		AssignedTableIDs: tableIDs,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Assigned tables are
// handled by the repository through the association API.
func (m *StaffModel) FromDomain(s *restaurants.Staff) {
	m.ID = s.ID
	m.RestaurantID = s.RestaurantID
	m.UserID = s.UserID
	m.IsManager = s.IsManager
	m.IsWaiter = s.IsWaiter
	m.Designation = s.Designation
	m.JoinedAt = s.JoinedAt
	m.Salary = s.Salary
	m.PerDaySalary = s.PerDaySalary
	m.SalaryType = s.SalaryType
	m.IsSuspended = s.IsSuspended
}

// AttendanceModel is the GORM model for staff attendance.
type AttendanceModel struct {
	ID        uint      `gorm:"primaryKey"`
	StaffID   uint      `gorm:"not null;uniqueIndex:idx_attendance_staff_date"`
	Date      time.Time `gorm:"not null;type:date;uniqueIndex:idx_attendance_staff_date"`
	Status    string    `gorm:"not null;type:varchar(20)"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendances"
}

// ToDomain converts GORM model to domain entity
func (m *AttendanceModel) ToDomain() *restaurants.Attendance {
	return &restaurants.Attendance{
		ID:        m.ID,
		StaffID:   m.StaffID,
		Date:      m.Date,
		Status:    m.Status,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AttendanceModel) FromDomain(a *restaurants.Attendance) {
	m.ID = a.ID
	m.StaffID = a.StaffID
	m.Date = a.Date
	m.Status = a.Status
	m.Note = a.Note
}
