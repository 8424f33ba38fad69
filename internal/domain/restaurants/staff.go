package restaurants

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Salary type values.
const (
	SalaryPerDay  = "per_day"
	SalaryMonthly = "monthly"
)

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

// Staff links a User to a Restaurant with a role. A user can be staff in
// at most one role per restaurant.
type Staff struct {
	ID           uint
	RestaurantID uint `validate:"required"`
	UserID       uint `validate:"required"`
	IsManager    bool
	IsWaiter     bool
	Designation  string `validate:"max=100"`
	JoinedAt     *time.Time
	Salary       decimal.Decimal
	PerDaySalary decimal.Decimal
	SalaryType   string `validate:"omitempty,oneof=per_day monthly"`
	IsSuspended  bool
	// AssignedTableIDs holds the tables a waiter is responsible for.
	AssignedTableIDs []uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the entity against its business rules.
func (s *Staff) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// Attendance records one staff member's presence for one date.
// Unique per (StaffID, Date).
type Attendance struct {
	ID        uint
	StaffID   uint      `validate:"required"`
	Date      time.Time `validate:"required"`
	Status    string    `validate:"required,oneof=present absent leave"`
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the entity against its business rules.
func (a *Attendance) Validate() error {
	validate := validator.New()
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("validation failed for Attendance: %w", err)
	}
	return nil
}
