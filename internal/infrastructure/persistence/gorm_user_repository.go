package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user with phone %s%s already exists: %w", user.CountryCode, user.Phone, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = model.ID

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, countryCode, phone string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("country_code = ? AND phone = ?", countryCode, phone).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with phone %s%s: %w", countryCode, phone, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	var modelList []*models.UserModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})

	if query.KycStatus != "" {
		dbQuery = dbQuery.Where("kyc_status = ?", query.KycStatus)
	}
	if query.IsOwner != nil {
		dbQuery = dbQuery.Where("is_owner = ?", *query.IsOwner)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Info("Deleted user with id ", id)
	return nil
}

type gormCustomerRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCustomerRepository creates a new GORM-based CustomerRepository implementation
func NewGormCustomerRepository(db *gorm.DB, logger logger.Logger) (users.CustomerRepository, error) {
	return &gormCustomerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer *users.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerModel{}
	model.FromDomain(customer)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("customer with phone %s%s already exists: %w", customer.CountryCode, customer.Phone, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = model.ID

	r.logger.Info("Created customer with id ", customer.ID)
	return nil
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, id uint) (*users.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCustomerRepository) GetByPhone(ctx context.Context, countryCode, phone string) (*users.Customer, error) {
	dbQuery := r.db.WithContext(ctx).Where("phone = ?", phone)
	if countryCode != "" {
		dbQuery = dbQuery.Where("country_code = ?", countryCode)
	}

	var model models.CustomerModel
	if err := dbQuery.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with phone %s%s: %w", countryCode, phone, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCustomerRepository) List(ctx context.Context, query *users.CustomerQuery) ([]*users.Customer, error) {
	var modelList []*models.CustomerModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CustomerModel{})

	if query.RestaurantID != 0 {
		dbQuery = dbQuery.
			Joins("JOIN customer_restaurants ON customer_restaurants.customer_id = customers.id").
			Where("customer_restaurants.restaurant_id = ?", query.RestaurantID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		dbQuery = dbQuery.Where("customers.name LIKE ? OR customers.phone LIKE ?", pattern, pattern)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("customers.id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	domainList := make([]*users.Customer, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCustomerRepository) UpdateByID(ctx context.Context, customer *users.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CustomerModel{}
	model.FromDomain(customer)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	r.logger.Info("Updated customer with id ", customer.ID)
	return nil
}

func (r *gormCustomerRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CustomerModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	r.logger.Info("Deleted customer with id ", id)
	return nil
}

type gormCustomerLinkRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCustomerLinkRepository creates a new GORM-based CustomerLinkRepository implementation
func NewGormCustomerLinkRepository(db *gorm.DB, logger logger.Logger) (users.CustomerLinkRepository, error) {
	return &gormCustomerLinkRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCustomerLinkRepository) GetOrCreate(ctx context.Context, customerID, restaurantID uint) (*users.CustomerLink, error) {
	model := models.CustomerLinkModel{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		FirstOrCreate(&model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create customer link: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCustomerLinkRepository) ListByRestaurant(ctx context.Context, restaurantID uint, limit, offset int) ([]*users.CustomerLink, error) {
	var modelList []*models.CustomerLinkModel
	dbQuery := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customer links: %w", err)
	}

	domainList := make([]*users.CustomerLink, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCustomerLinkRepository) UpdateByID(ctx context.Context, link *users.CustomerLink) error {
	model := &models.CustomerLinkModel{}
	model.FromDomain(link)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update customer link: %w", err)
	}

	r.logger.Info("Updated customer link with id ", link.ID)
	return nil
}
