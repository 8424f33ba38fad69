package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/feedback"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormFeedbackRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFeedbackRepository creates a new GORM-based FeedbackRepository implementation
func NewGormFeedbackRepository(db *gorm.DB, logger logger.Logger) (feedback.FeedbackRepository, error) {
	return &gormFeedbackRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFeedbackRepository) Create(ctx context.Context, fb *feedback.Feedback) error {
	if err := fb.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FeedbackModel{}
	model.FromDomain(fb)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	fb.ID = model.ID

	r.logger.Info("Created feedback with id ", fb.ID)
	return nil
}

func (r *gormFeedbackRepository) ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*feedback.Feedback, error) {
	var modelList []*models.FeedbackModel
	dbQuery := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	domainList := make([]*feedback.Feedback, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFeedbackRepository) ListByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]*feedback.Feedback, error) {
	var modelList []*models.FeedbackModel
	dbQuery := r.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	domainList := make([]*feedback.Feedback, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormWaiterCallRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWaiterCallRepository creates a new GORM-based WaiterCallRepository implementation
func NewGormWaiterCallRepository(db *gorm.DB, logger logger.Logger) (feedback.WaiterCallRepository, error) {
	return &gormWaiterCallRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWaiterCallRepository) Create(ctx context.Context, call *feedback.WaiterCall) error {
	if err := call.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WaiterCallModel{}
	model.FromDomain(call)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create waiter call: %w", err)
	}
	call.ID = model.ID

	r.logger.Info("Created waiter call with id ", call.ID)
	return nil
}

func (r *gormWaiterCallRepository) GetByID(ctx context.Context, id uint) (*feedback.WaiterCall, error) {
	var model models.WaiterCallModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("waiter call with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch waiter call: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormWaiterCallRepository) ListPending(ctx context.Context, restaurantID uint) ([]*feedback.WaiterCall, error) {
	var modelList []*models.WaiterCallModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND status = ?", restaurantID, feedback.CallPending).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waiter calls: %w", err)
	}

	domainList := make([]*feedback.WaiterCall, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormWaiterCallRepository) UpdateByID(ctx context.Context, call *feedback.WaiterCall) error {
	if err := call.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.WaiterCallModel{}
	model.FromDomain(call)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update waiter call: %w", err)
	}

	r.logger.Info("Updated waiter call with id ", call.ID)
	return nil
}
