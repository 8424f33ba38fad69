package feedback

import "context"

// FeedbackRepository defines persistence operations for customer feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
	ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*Feedback, error)
	ListByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]*Feedback, error)
}

// FeedbackService records ratings and table-side waiter calls.
type FeedbackService interface {
	Submit(ctx context.Context, fb *Feedback) (*Feedback, error)
	// SubmitPublic records feedback from the QR page, resolving the diner
	// by phone and creating a walk-in row when needed.
	SubmitPublic(ctx context.Context, slug, name, countryCode, phone string, fb *Feedback) (*Feedback, error)
	ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*Feedback, error)
	ListByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]*Feedback, error)

	// RaiseCall opens a pending waiter call from the public QR page.
	RaiseCall(ctx context.Context, call *WaiterCall) (*WaiterCall, error)
	ListPendingCalls(ctx context.Context, restaurantID uint) ([]*WaiterCall, error)
	// CompleteCall marks a call handled, optionally noting who took it.
	CompleteCall(ctx context.Context, restaurantID, callID uint, staffID *uint) error
}

// WaiterCallRepository defines persistence operations for waiter calls.
type WaiterCallRepository interface {
	Create(ctx context.Context, call *WaiterCall) error
	GetByID(ctx context.Context, id uint) (*WaiterCall, error)
	// ListPending returns open calls for a restaurant, oldest first.
	ListPending(ctx context.Context, restaurantID uint) ([]*WaiterCall, error)
	UpdateByID(ctx context.Context, call *WaiterCall) error
}
