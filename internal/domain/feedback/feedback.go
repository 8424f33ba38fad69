package feedback

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Waiter call status values.
const (
	CallPending   = "pending"
	CallCompleted = "completed"
)

// Feedback is a customer rating, optionally tied to an order or the staff
// member who served it.
type Feedback struct {
	ID           uint
	RestaurantID uint `validate:"required"`
	CustomerID   uint `validate:"required"`
	OrderID      *uint
	StaffID      *uint
	Rating       int `validate:"min=0,max=5"`
	Review       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WaiterCall is a table-side request for service, raised from the public QR
// page without authentication.
type WaiterCall struct {
	ID           uint
	RestaurantID uint `validate:"required"`
	TableID      *uint
	TableNumber  string `validate:"max=64"`
	CustomerName string `validate:"max=255"`
	Message      string
	Status       string `validate:"required,oneof=pending completed"`
	AssignedTo   *uint  // staff id
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the entity against its business rules.
func (f *Feedback) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("validation failed for Feedback: %w", err)
	}
	return nil
}

// Validate checks the entity against its business rules.
func (w *WaiterCall) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("validation failed for WaiterCall: %w", err)
	}
	return nil
}
