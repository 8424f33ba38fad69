package models

import (
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
)

// FeedbackModel is the GORM model for customer feedback.
type FeedbackModel struct {
	ID           uint      `gorm:"primaryKey"`
	RestaurantID uint      `gorm:"not null;index"`
	CustomerID   uint      `gorm:"not null;index"`
	OrderID      *uint     `gorm:"index"`
	StaffID      *uint     `gorm:"index"`
	Rating       int       `gorm:"not null;default:0"`
	Review       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// ToDomain converts GORM model to domain entity
func (m *FeedbackModel) ToDomain() *feedback.Feedback {
	return &feedback.Feedback{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		CustomerID:   m.CustomerID,
		OrderID:      m.OrderID,
		StaffID:      m.StaffID,
		Rating:       m.Rating,
		Review:       m.Review,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FeedbackModel) FromDomain(f *feedback.Feedback) {
	m.ID = f.ID
	m.RestaurantID = f.RestaurantID
	m.CustomerID = f.CustomerID
	m.OrderID = f.OrderID
	m.StaffID = f.StaffID
	m.Rating = f.Rating
	m.Review = f.Review
}

// WaiterCallModel is the GORM model for table-side waiter calls.
type WaiterCallModel struct {
	ID           uint      `gorm:"primaryKey"`
	RestaurantID uint      `gorm:"not null;index"`
	TableID      *uint     `gorm:"index"`
	TableNumber  string    `gorm:"type:varchar(64)"`
	CustomerName string    `gorm:"type:varchar(255)"`
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"not null;type:varchar(20);index"`
	AssignedTo   *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (WaiterCallModel) TableName() string {
	return "waiter_calls"
}

// ToDomain converts GORM model to domain entity
func (m *WaiterCallModel) ToDomain() *feedback.WaiterCall {
	return &feedback.WaiterCall{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		TableID:      m.TableID,
		TableNumber:  m.TableNumber,
		CustomerName: m.CustomerName,
		Message:      m.Message,
		Status:       m.Status,
		AssignedTo:   m.AssignedTo,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WaiterCallModel) FromDomain(w *feedback.WaiterCall) {
	m.ID = w.ID
	m.RestaurantID = w.RestaurantID
	m.TableID = w.TableID
	m.TableNumber = w.TableNumber
	m.CustomerName = w.CustomerName
	m.Message = w.Message
	m.Status = w.Status
	m.AssignedTo = w.AssignedTo
}
