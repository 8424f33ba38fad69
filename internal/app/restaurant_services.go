package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// restaurantService implements the restaurants.RestaurantService interface
type restaurantService struct {
	restaurantRepo restaurants.RestaurantRepository
	tableRepo      restaurants.TableRepository
	staffRepo      restaurants.StaffRepository
	attendanceRepo restaurants.AttendanceRepository
	logger         logger.Logger
}

// NewRestaurantService creates a new restaurantService instance
func NewRestaurantService(
	restaurantRepo restaurants.RestaurantRepository,
	tableRepo restaurants.TableRepository,
	staffRepo restaurants.StaffRepository,
	attendanceRepo restaurants.AttendanceRepository,
	logger logger.Logger,
) (restaurants.RestaurantService, error) {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}, nil
}

func (s *restaurantService) Create(ctx context.Context, restaurant *restaurants.Restaurant) (*restaurants.Restaurant, error) {
	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id uint) (*restaurants.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) GetBySlug(ctx context.Context, slug string) (*restaurants.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) List(ctx context.Context, query *restaurants.RestaurantQuery) ([]*restaurants.Restaurant, error) {
	list, err := s.restaurantRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

func (s *restaurantService) Update(ctx context.Context, restaurant *restaurants.Restaurant) error {
	if err := s.restaurantRepo.UpdateByID(ctx, restaurant); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) Delete(ctx context.Context, id uint) error {
	if err := s.restaurantRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) CreateTable(ctx context.Context, table *restaurants.Table) (*restaurants.Table, error) {
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return table, nil
}

func (s *restaurantService) ListTables(ctx context.Context, restaurantID uint) ([]*restaurants.Table, error) {
	tables, err := s.tableRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return tables, nil
}

func (s *restaurantService) UpdateTable(ctx context.Context, restaurantID uint, table *restaurants.Table) error {
	existing, err := s.tableRepo.GetByID(ctx, table.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("table %d does not belong to restaurant %d: %w", table.ID, restaurantID, domain.ErrForbidden)
	}
	table.RestaurantID = restaurantID
	if err := s.tableRepo.UpdateByID(ctx, table); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) DeleteTable(ctx context.Context, restaurantID, tableID uint) error {
	existing, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("table %d does not belong to restaurant %d: %w", tableID, restaurantID, domain.ErrForbidden)
	}
	if err := s.tableRepo.DeleteByID(ctx, tableID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) AddStaff(ctx context.Context, staff *restaurants.Staff) (*restaurants.Staff, error) {
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return staff, nil
}

func (s *restaurantService) ListStaff(ctx context.Context, restaurantID uint) ([]*restaurants.Staff, error) {
	staff, err := s.staffRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return staff, nil
}

func (s *restaurantService) UpdateStaff(ctx context.Context, restaurantID uint, staff *restaurants.Staff) error {
	existing, err := s.staffRepo.GetByID(ctx, staff.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("staff %d does not belong to restaurant %d: %w", staff.ID, restaurantID, domain.ErrForbidden)
	}
	staff.RestaurantID = restaurantID
	staff.UserID = existing.UserID
	if err := s.staffRepo.UpdateByID(ctx, staff); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) RemoveStaff(ctx context.Context, restaurantID, staffID uint) error {
	existing, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("staff %d does not belong to restaurant %d: %w", staffID, restaurantID, domain.ErrForbidden)
	}
	if err := s.staffRepo.DeleteByID(ctx, staffID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) RecordAttendance(ctx context.Context, restaurantID uint, attendance *restaurants.Attendance) error {
	staff, err := s.staffRepo.GetByID(ctx, attendance.StaffID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if staff.RestaurantID != restaurantID {
		return fmt.Errorf("staff %d does not belong to restaurant %d: %w", attendance.StaffID, restaurantID, domain.ErrForbidden)
	}
	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *restaurantService) ListAttendance(ctx context.Context, restaurantID uint, date time.Time) ([]*restaurants.Attendance, error) {
	list, err := s.attendanceRepo.ListByRestaurant(ctx, restaurantID, date)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// subscriptionService implements the restaurants.SubscriptionService interface
type subscriptionService struct {
	restaurantRepo restaurants.RestaurantRepository
	logger         logger.Logger
}

// NewSubscriptionService creates a new subscriptionService instance
func NewSubscriptionService(restaurantRepo restaurants.RestaurantRepository, logger logger.Logger) (restaurants.SubscriptionService, error) {
	return &subscriptionService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}, nil
}

// ExpireDue deactivates restaurants whose subscription ended before today.
// Safe to run from cron as often as needed.
func (s *subscriptionService) ExpireDue(ctx context.Context, today time.Time) ([]uint, error) {
	ids, err := s.restaurantRepo.ExpireSubscriptions(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(ids) > 0 {
		s.logger.Info("Expired subscriptions for restaurants ", ids)
	}
	return ids, nil
}
