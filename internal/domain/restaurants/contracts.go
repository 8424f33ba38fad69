package restaurants

import (
	"context"
	"time"
)

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	GetByID(ctx context.Context, id uint) (*Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)
	// List lists restaurants with optional filters.
	List(ctx context.Context, query *RestaurantQuery) ([]*Restaurant, error)
	UpdateByID(ctx context.Context, restaurant *Restaurant) error
	DeleteByID(ctx context.Context, id uint) error
	// ExpireSubscriptions deactivates restaurants whose subscription ended
	// before the given day. Returns the ids it deactivated and is safe to
	// run repeatedly.
	ExpireSubscriptions(ctx context.Context, today time.Time) ([]uint, error)
}

// TableRepository defines persistence operations for tables.
type TableRepository interface {
	Create(ctx context.Context, table *Table) error
	GetByID(ctx context.Context, id uint) (*Table, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*Table, error)
	UpdateByID(ctx context.Context, table *Table) error
	DeleteByID(ctx context.Context, id uint) error
}

// StaffRepository defines persistence operations for staff assignments.
type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	// GetByUser returns the first staff row for a user, if any.
	GetByUser(ctx context.Context, userID uint) (*Staff, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*Staff, error)
	// RestaurantIDsForUser returns the distinct restaurants a user is staff of.
	RestaurantIDsForUser(ctx context.Context, userID uint) ([]uint, error)
	UpdateByID(ctx context.Context, staff *Staff) error
	DeleteByID(ctx context.Context, id uint) error
}

// AttendanceRepository defines persistence operations for attendance rows.
type AttendanceRepository interface {
	// Upsert records attendance for (staff, date), replacing an existing row.
	Upsert(ctx context.Context, attendance *Attendance) error
	ListByStaff(ctx context.Context, staffID uint, from, to time.Time) ([]*Attendance, error)
	ListByRestaurant(ctx context.Context, restaurantID uint, date time.Time) ([]*Attendance, error)
}

// RestaurantService manages restaurants, their tables and their staff.
// Operations that take restaurantID enforce that the entity belongs to it.
type RestaurantService interface {
	Create(ctx context.Context, restaurant *Restaurant) (*Restaurant, error)
	GetByID(ctx context.Context, id uint) (*Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)
	List(ctx context.Context, query *RestaurantQuery) ([]*Restaurant, error)
	Update(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, id uint) error

	CreateTable(ctx context.Context, table *Table) (*Table, error)
	ListTables(ctx context.Context, restaurantID uint) ([]*Table, error)
	UpdateTable(ctx context.Context, restaurantID uint, table *Table) error
	DeleteTable(ctx context.Context, restaurantID, tableID uint) error

	AddStaff(ctx context.Context, staff *Staff) (*Staff, error)
	ListStaff(ctx context.Context, restaurantID uint) ([]*Staff, error)
	UpdateStaff(ctx context.Context, restaurantID uint, staff *Staff) error
	RemoveStaff(ctx context.Context, restaurantID, staffID uint) error
	RecordAttendance(ctx context.Context, restaurantID uint, attendance *Attendance) error
	ListAttendance(ctx context.Context, restaurantID uint, date time.Time) ([]*Attendance, error)
}

// SubscriptionService deactivates restaurants whose subscription lapsed.
type SubscriptionService interface {
	// ExpireDue runs the expiry sweep for the given day and returns the
	// ids it deactivated.
	ExpireDue(ctx context.Context, today time.Time) ([]uint, error)
}

// RestaurantQuery filters restaurant listings.
type RestaurantQuery struct {
	OwnerID    uint // 0 means any owner
	ActiveOnly bool // public listings hide deactivated restaurants
	IDs        []uint
	Limit      int
	Offset     int
}
