package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// feedbackService implements the feedback.FeedbackService interface
type feedbackService struct {
	feedbackRepo   feedback.FeedbackRepository
	callRepo       feedback.WaiterCallRepository
	restaurantRepo restaurants.RestaurantRepository
	customerRepo   users.CustomerRepository
	logger         logger.Logger
}

// NewFeedbackService creates a new feedbackService instance
func NewFeedbackService(
	feedbackRepo feedback.FeedbackRepository,
	callRepo feedback.WaiterCallRepository,
	restaurantRepo restaurants.RestaurantRepository,
	customerRepo users.CustomerRepository,
	logger logger.Logger,
) (feedback.FeedbackService, error) {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		callRepo:       callRepo,
		restaurantRepo: restaurantRepo,
		customerRepo:   customerRepo,
		logger:         logger,
	}, nil
}

func (s *feedbackService) Submit(ctx context.Context, fb *feedback.Feedback) (*feedback.Feedback, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, fb.RestaurantID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.Info("Recorded feedback with id ", fb.ID, " for restaurant ", fb.RestaurantID)
	return fb, nil
}

// SubmitPublic records feedback from the QR page. The diner is resolved
// by phone; a walk-in customer row is created when none exists.
func (s *feedbackService) SubmitPublic(ctx context.Context, slug, name, countryCode, phone string, fb *feedback.Feedback) (*feedback.Feedback, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if phone == "" {
		return nil, fmt.Errorf("feedback requires a phone number")
	}

	customer, err := s.customerRepo.GetByPhone(ctx, countryCode, phone)
	if errors.Is(err, domain.ErrNotFound) {
		customer = &users.Customer{
			Name:         name,
			CountryCode:  countryCode,
			Phone:        phone,
			PasswordHash: users.UnusablePassword,
		}
		err = s.customerRepo.Create(ctx, customer)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	fb.RestaurantID = restaurant.ID
	fb.CustomerID = customer.ID
	return s.Submit(ctx, fb)
}

func (s *feedbackService) ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*feedback.Feedback, error) {
	list, err := s.feedbackRepo.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

func (s *feedbackService) ListByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]*feedback.Feedback, error) {
	list, err := s.feedbackRepo.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// RaiseCall opens a pending waiter call. The restaurant must exist and be
// active, since the call comes from an unauthenticated QR page.
func (s *feedbackService) RaiseCall(ctx context.Context, call *feedback.WaiterCall) (*feedback.WaiterCall, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, call.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant with id %d: %w", call.RestaurantID, domain.ErrNotFound)
	}
	call.Status = feedback.CallPending
	call.AssignedTo = nil
	if err := s.callRepo.Create(ctx, call); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.Info("Raised waiter call with id ", call.ID, " for restaurant ", call.RestaurantID)
	return call, nil
}

func (s *feedbackService) ListPendingCalls(ctx context.Context, restaurantID uint) ([]*feedback.WaiterCall, error) {
	list, err := s.callRepo.ListPending(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

func (s *feedbackService) CompleteCall(ctx context.Context, restaurantID, callID uint, staffID *uint) error {
	call, err := s.callRepo.GetByID(ctx, callID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if call.RestaurantID != restaurantID {
		return fmt.Errorf("waiter call with id %d: %w", callID, domain.ErrForbidden)
	}
	call.Status = feedback.CallCompleted
	if staffID != nil {
		call.AssignedTo = staffID
	}
	if err := s.callRepo.UpdateByID(ctx, call); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.Info("Completed waiter call with id ", callID)
	return nil
}
