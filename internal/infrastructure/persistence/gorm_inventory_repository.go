package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormRawMaterialRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRawMaterialRepository creates a new GORM-based RawMaterialRepository implementation
func NewGormRawMaterialRepository(db *gorm.DB, logger logger.Logger) (inventory.RawMaterialRepository, error) {
	return &gormRawMaterialRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRawMaterialRepository) Create(ctx context.Context, material *inventory.RawMaterial) error {
	if err := material.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RawMaterialModel{}
	model.FromDomain(material)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create raw material: %w", err)
	}
	material.ID = model.ID

	r.logger.Info("Created raw material with id ", material.ID)
	return nil
}

func (r *gormRawMaterialRepository) GetByID(ctx context.Context, id uint) (*inventory.RawMaterial, error) {
	var model models.RawMaterialModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("raw material with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch raw material: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRawMaterialRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*inventory.RawMaterial, error) {
	var modelList []*models.RawMaterialModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw materials: %w", err)
	}

	domainList := make([]*inventory.RawMaterial, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormRawMaterialRepository) UpdateByID(ctx context.Context, material *inventory.RawMaterial) error {
	if err := material.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RawMaterialModel{}
	model.FromDomain(material)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update raw material: %w", err)
	}

	r.logger.Info("Updated raw material with id ", material.ID)
	return nil
}

func (r *gormRawMaterialRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.RawMaterialModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete raw material: %w", err)
	}

	r.logger.Info("Deleted raw material with id ", id)
	return nil
}

func (r *gormRawMaterialRepository) AdjustStock(ctx context.Context, id uint, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.RawMaterialModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("raw material with id %d: %w", id, domain.ErrNotFound)
	}

	r.logger.Info("Adjusted stock of raw material ", id, " by ", delta.String())
	return nil
}

type gormConsumptionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormConsumptionRepository creates a new GORM-based ConsumptionRepository implementation
func NewGormConsumptionRepository(db *gorm.DB, logger logger.Logger) (inventory.ConsumptionRepository, error) {
	return &gormConsumptionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormConsumptionRepository) Create(ctx context.Context, link *inventory.ProductRawMaterial) error {
	if err := link.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductRawMaterialModel{}
	model.FromDomain(link)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create consumption link: %w", err)
	}
	link.ID = model.ID

	r.logger.Info("Created consumption link with id ", link.ID)
	return nil
}

func (r *gormConsumptionRepository) ListForVariant(ctx context.Context, productID uint, variantID *uint) ([]*inventory.ProductRawMaterial, error) {
	var modelList []*models.ProductRawMaterialModel
	dbQuery := r.db.WithContext(ctx).Where("product_id = ?", productID)
	if variantID != nil {
		dbQuery = dbQuery.Where("product_variant_id = ? OR product_variant_id IS NULL", *variantID)
	} else {
		dbQuery = dbQuery.Where("product_variant_id IS NULL")
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch consumption links: %w", err)
	}

	domainList := make([]*inventory.ProductRawMaterial, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormConsumptionRepository) ListByProduct(ctx context.Context, productID uint) ([]*inventory.ProductRawMaterial, error) {
	var modelList []*models.ProductRawMaterialModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consumption links: %w", err)
	}

	domainList := make([]*inventory.ProductRawMaterial, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormConsumptionRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductRawMaterialModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete consumption link: %w", err)
	}

	r.logger.Info("Deleted consumption link with id ", id)
	return nil
}

type gormStockLogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStockLogRepository creates a new GORM-based StockLogRepository implementation
func NewGormStockLogRepository(db *gorm.DB, logger logger.Logger) (inventory.StockLogRepository, error) {
	return &gormStockLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStockLogRepository) Create(ctx context.Context, log *inventory.StockLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StockLogModel{}
	model.FromDomain(log)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create stock log: %w", err)
	}
	log.ID = model.ID

	r.logger.Info("Created stock log with id ", log.ID)
	return nil
}

func (r *gormStockLogRepository) ExistsForOrder(ctx context.Context, orderID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StockLogModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check stock logs: %w", err)
	}
	return count > 0, nil
}

func (r *gormStockLogRepository) ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*inventory.StockLog, error) {
	var modelList []*models.StockLogModel
	dbQuery := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stock logs: %w", err)
	}

	domainList := make([]*inventory.StockLog, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
