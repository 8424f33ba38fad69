package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormUnitRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUnitRepository creates a new GORM-based UnitRepository implementation
func NewGormUnitRepository(db *gorm.DB, logger logger.Logger) (menu.UnitRepository, error) {
	return &gormUnitRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUnitRepository) Create(ctx context.Context, unit *menu.Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UnitModel{}
	model.FromDomain(unit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	unit.ID = model.ID

	r.logger.Info("Created unit with id ", unit.ID)
	return nil
}

func (r *gormUnitRepository) GetByID(ctx context.Context, id uint) (*menu.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unit with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch unit: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUnitRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*menu.Unit, error) {
	var modelList []*models.UnitModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch units: %w", err)
	}

	domainList := make([]*menu.Unit, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUnitRepository) UpdateByID(ctx context.Context, unit *menu.Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UnitModel{}
	model.FromDomain(unit)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	r.logger.Info("Updated unit with id ", unit.ID)
	return nil
}

func (r *gormUnitRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UnitModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	r.logger.Info("Deleted unit with id ", id)
	return nil
}

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (menu.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *menu.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.ID = model.ID

	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id uint) (*menu.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*menu.Category, error) {
	var modelList []*models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*menu.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCategoryRepository) UpdateByID(ctx context.Context, category *menu.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	r.logger.Info("Updated category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	r.logger.Info("Deleted category with id ", id)
	return nil
}

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (menu.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *menu.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = model.ID
	for i := range model.Variants {
		product.Variants[i].ID = model.Variants[i].ID
		product.Variants[i].ProductID = model.ID
	}

	r.logger.Info("Created product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id uint) (*menu.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) GetVariantByID(ctx context.Context, variantID uint) (*menu.ProductVariant, error) {
	var model models.ProductVariantModel
	if err := r.db.WithContext(ctx).Where("id = ?", variantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product variant with id %d: %w", variantID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product variant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) List(ctx context.Context, query *menu.ProductQuery) ([]*menu.Product, error) {
	var modelList []*models.ProductModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProductModel{}).Preload("Variants")

	if query.RestaurantID != 0 {
		dbQuery = dbQuery.Where("restaurant_id = ?", query.RestaurantID)
	}
	if query.CategoryID != 0 {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}
	if query.Search != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Search+"%")
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*menu.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *menu.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	// Replace variants wholesale so deleted ones disappear.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVariantModel{}).Error; err != nil {
			return err
		}
		for i := range model.Variants {
			model.Variants[i].ID = 0
			model.Variants[i].ProductID = product.ID
		}
		return tx.Save(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariantModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.ProductModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Info("Deleted product with id ", id)
	return nil
}

type gormComboRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComboRepository creates a new GORM-based ComboRepository implementation
func NewGormComboRepository(db *gorm.DB, logger logger.Logger) (menu.ComboRepository, error) {
	return &gormComboRepository{
		db:     db,
		logger: logger,
	}, nil
}

// linkProducts replaces the combo's product association.
func (r *gormComboRepository) linkProducts(ctx context.Context, model *models.ComboSetModel, productIDs []uint) error {
	products := make([]models.ProductModel, len(productIDs))
	for i, id := range productIDs {
		products[i] = models.ProductModel{ID: id}
	}
	err := r.db.WithContext(ctx).Model(model).Association("Products").Replace(products)
	if err != nil {
		return fmt.Errorf("failed to link combo products: %w", err)
	}
	return nil
}

func (r *gormComboRepository) Create(ctx context.Context, combo *menu.ComboSet) error {
	if err := combo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComboSetModel{}
	model.FromDomain(combo)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create combo set: %w", err)
	}
	combo.ID = model.ID

	if len(combo.ProductIDs) > 0 {
		if err := r.linkProducts(ctx, model, combo.ProductIDs); err != nil {
			return err
		}
	}

	r.logger.Info("Created combo set with id ", combo.ID)
	return nil
}

func (r *gormComboRepository) GetByID(ctx context.Context, id uint) (*menu.ComboSet, error) {
	var model models.ComboSetModel
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("combo set with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch combo set: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormComboRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*menu.ComboSet, error) {
	var modelList []*models.ComboSetModel
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch combo sets: %w", err)
	}

	domainList := make([]*menu.ComboSet, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormComboRepository) UpdateByID(ctx context.Context, combo *menu.ComboSet) error {
	if err := combo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComboSetModel{}
	model.FromDomain(combo)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update combo set: %w", err)
	}
	if err := r.linkProducts(ctx, model, combo.ProductIDs); err != nil {
		return err
	}

	r.logger.Info("Updated combo set with id ", combo.ID)
	return nil
}

func (r *gormComboRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ComboSetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete combo set: %w", err)
	}

	r.logger.Info("Deleted combo set with id ", id)
	return nil
}
