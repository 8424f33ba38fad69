package persistence

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (billing.TransactionRepository, error) {
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, tx *billing.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(tx)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	tx.ID = model.ID

	r.logger.Info("Created transaction with id ", tx.ID)
	return nil
}

func (r *gormTransactionRepository) List(ctx context.Context, query *billing.TransactionQuery) ([]*billing.Transaction, error) {
	var modelList []*models.TransactionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TransactionModel{})

	if query.RestaurantID != 0 {
		dbQuery = dbQuery.Where("restaurant_id = ?", query.RestaurantID)
	}
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.SystemOnly {
		dbQuery = dbQuery.Where("is_system = ?", true)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at < ?", query.To)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	domainList := make([]*billing.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
