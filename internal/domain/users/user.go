package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KYC status values for owner onboarding.
const (
	KycPending  = "pending"
	KycApproved = "approved"
	KycRejected = "rejected"
)

// Role names derived from account flags and staff rows.
const (
	RoleSuperAdmin = "super_admin"
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleWaiter     = "waiter"
	RoleKitchen    = "kitchen"
	RoleCustomer   = "customer"
)

// User is a staff-side account (super admin, owner, manager, waiter, kitchen).
// Identity is (CountryCode, Phone), unique together.
type User struct {
	ID           uint
	Name         string `validate:"max=255"`
	CountryCode  string `validate:"required,max=10"`
	Phone        string `validate:"required,max=20"`
	Email        string `validate:"omitempty,email"`
	PasswordHash string `validate:"required"`
	ImageKey     string
	IsSuperuser  bool
	IsOwner      bool
	IsStaff      bool // restaurant staff (manager / waiter / kitchen)
	IsKitchen    bool
	KycStatus    string `validate:"omitempty,oneof=pending approved rejected"`
	RejectReason string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the entity against its business rules.
func (u *User) Validate() error {
	validate := validator.New()
	if err := validate.Struct(u); err != nil {
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
