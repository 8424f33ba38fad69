package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = model.ID
	for i := range model.Items {
		order.Items[i].ID = model.Items[i].ID
		order.Items[i].OrderID = model.ID
	}

	r.logger.Info("Created order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id uint) (*orders.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{}).Preload("Items")

	if len(query.RestaurantIDs) > 0 {
		dbQuery = dbQuery.Where("restaurant_id IN ?", query.RestaurantIDs)
	}
	if query.CustomerID != 0 {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if query.TableID != 0 {
		dbQuery = dbQuery.Where("table_id = ?", query.TableID)
	}
	if query.WaiterID != 0 {
		dbQuery = dbQuery.Where("waiter_id = ?", query.WaiterID)
	}
	if len(query.Statuses) > 0 {
		dbQuery = dbQuery.Where("status IN ?", query.Statuses)
	}
	if query.OrderType != "" {
		dbQuery = dbQuery.Where("order_type = ?", query.OrderType)
	}
	if !query.CreatedAfter.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.CreatedAfter)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Items are immutable after create, so only header columns change.
	updates := map[string]interface{}{
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
		"payment_method": order.PaymentMethod,
		"waiter_id":      order.WaiterID,
		"total":          order.Total,
		"service_charge": order.ServiceCharge,
		"discount":       order.Discount,
		"reject_reason":  order.RejectReason,
	}
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order with id %d: %w", order.ID, domain.ErrNotFound)
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.OrderModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	r.logger.Info("Deleted order with id ", id)
	return nil
}

func (r *gormOrderRepository) SalesTotals(ctx context.Context, restaurantIDs []uint, from, to time.Time) (decimal.Decimal, int64, error) {
	type row struct {
		Total decimal.Decimal
		Count int64
	}
	var res row

	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("status = ?", orders.StatusServed)
	if len(restaurantIDs) > 0 {
		dbQuery = dbQuery.Where("restaurant_id IN ?", restaurantIDs)
	}
	if !from.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		dbQuery = dbQuery.Where("created_at < ?", to)
	}

	if err := dbQuery.Scan(&res).Error; err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return res.Total, res.Count, nil
}
