package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/persistence/models"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRestaurantRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRestaurantRepository creates a new GORM-based RestaurantRepository implementation
func NewGormRestaurantRepository(db *gorm.DB, logger logger.Logger) (restaurants.RestaurantRepository, error) {
	return &gormRestaurantRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRestaurantRepository) Create(ctx context.Context, restaurant *restaurants.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RestaurantModel{}
	model.FromDomain(restaurant)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("restaurant with slug %s already exists: %w", restaurant.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	restaurant.ID = model.ID

	r.logger.Info("Created restaurant with id ", restaurant.ID)
	return nil
}

func (r *gormRestaurantRepository) GetByID(ctx context.Context, id uint) (*restaurants.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch restaurant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRestaurantRepository) GetBySlug(ctx context.Context, slug string) (*restaurants.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with slug %s: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch restaurant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRestaurantRepository) List(ctx context.Context, query *restaurants.RestaurantQuery) ([]*restaurants.Restaurant, error) {
	var modelList []*models.RestaurantModel
	dbQuery := r.db.WithContext(ctx).Model(&models.RestaurantModel{})

	if query.OwnerID != 0 {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}
	if len(query.IDs) > 0 {
		dbQuery = dbQuery.Where("id IN ?", query.IDs)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants: %w", err)
	}

	domainList := make([]*restaurants.Restaurant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormRestaurantRepository) UpdateByID(ctx context.Context, restaurant *restaurants.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RestaurantModel{}
	model.FromDomain(restaurant)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	r.logger.Info("Updated restaurant with id ", restaurant.ID)
	return nil
}

func (r *gormRestaurantRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.RestaurantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	r.logger.Info("Deleted restaurant with id ", id)
	return nil
}

func (r *gormRestaurantRepository) ExpireSubscriptions(ctx context.Context, today time.Time) ([]uint, error) {
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.RestaurantModel{}).
		Where("is_active = ? AND subscription_end IS NOT NULL AND subscription_end < ?", true, dayStart).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).Model(&models.RestaurantModel{}).
		Where("id IN ?", ids).
		Update("is_active", false).Error
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate expired restaurants: %w", err)
	}

	r.logger.Info("Deactivated restaurants with expired subscriptions: ", ids)
	return ids, nil
}

type gormTableRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTableRepository creates a new GORM-based TableRepository implementation
func NewGormTableRepository(db *gorm.DB, logger logger.Logger) (restaurants.TableRepository, error) {
	return &gormTableRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTableRepository) Create(ctx context.Context, table *restaurants.Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableModel{}
	model.FromDomain(table)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	table.ID = model.ID

	r.logger.Info("Created table with id ", table.ID)
	return nil
}

func (r *gormTableRepository) GetByID(ctx context.Context, id uint) (*restaurants.Table, error) {
	var model models.TableModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("table with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch table: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTableRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*restaurants.Table, error) {
	var modelList []*models.TableModel
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}

	domainList := make([]*restaurants.Table, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTableRepository) UpdateByID(ctx context.Context, table *restaurants.Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableModel{}
	model.FromDomain(table)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}

	r.logger.Info("Updated table with id ", table.ID)
	return nil
}

func (r *gormTableRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TableModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	r.logger.Info("Deleted table with id ", id)
	return nil
}

type gormStaffRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStaffRepository creates a new GORM-based StaffRepository implementation
func NewGormStaffRepository(db *gorm.DB, logger logger.Logger) (restaurants.StaffRepository, error) {
	return &gormStaffRepository{
		db:     db,
		logger: logger,
	}, nil
}

// assignTables replaces the staff member's assigned tables association.
func (r *gormStaffRepository) assignTables(ctx context.Context, model *models.StaffModel, tableIDs []uint) error {
	tables := make([]models.TableModel, len(tableIDs))
	for i, id := range tableIDs {
		tables[i] = models.TableModel{ID: id}
	}
	err := r.db.WithContext(ctx).Model(model).Association("AssignedTables").Replace(tables)
	if err != nil {
		return fmt.Errorf("failed to assign tables: %w", err)
	}
	return nil
}

func (r *gormStaffRepository) Create(ctx context.Context, staff *restaurants.Staff) error {
	if err := staff.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StaffModel{}
	model.FromDomain(staff)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %d is already staff of restaurant %d: %w", staff.UserID, staff.RestaurantID, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create staff: %w", err)
	}
	staff.ID = model.ID

	if len(staff.AssignedTableIDs) > 0 {
		if err := r.assignTables(ctx, model, staff.AssignedTableIDs); err != nil {
			return err
		}
	}

	r.logger.Info("Created staff with id ", staff.ID)
	return nil
}

func (r *gormStaffRepository) GetByID(ctx context.Context, id uint) (*restaurants.Staff, error) {
	var model models.StaffModel
	err := r.db.WithContext(ctx).
		Preload("AssignedTables").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffRepository) GetByUser(ctx context.Context, userID uint) (*restaurants.Staff, error) {
	var model models.StaffModel
	err := r.db.WithContext(ctx).
		Preload("AssignedTables").
		Where("user_id = ?", userID).
		Order("id asc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff for user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*restaurants.Staff, error) {
	var modelList []*models.StaffModel
	err := r.db.WithContext(ctx).
		Preload("AssignedTables").
		Where("restaurant_id = ?", restaurantID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	domainList := make([]*restaurants.Staff, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStaffRepository) RestaurantIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.StaffModel{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff restaurants: %w", err)
	}
	return ids, nil
}

func (r *gormStaffRepository) UpdateByID(ctx context.Context, staff *restaurants.Staff) error {
	if err := staff.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StaffModel{}
	model.FromDomain(staff)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if err := r.assignTables(ctx, model, staff.AssignedTableIDs); err != nil {
		return err
	}

	r.logger.Info("Updated staff with id ", staff.ID)
	return nil
}

func (r *gormStaffRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StaffModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	r.logger.Info("Deleted staff with id ", id)
	return nil
}

type gormAttendanceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAttendanceRepository creates a new GORM-based AttendanceRepository implementation
func NewGormAttendanceRepository(db *gorm.DB, logger logger.Logger) (restaurants.AttendanceRepository, error) {
	return &gormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAttendanceRepository) Upsert(ctx context.Context, attendance *restaurants.Attendance) error {
	if err := attendance.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AttendanceModel{}
	model.FromDomain(attendance)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}
	attendance.ID = model.ID

	r.logger.Info("Recorded attendance for staff ", attendance.StaffID)
	return nil
}

func (r *gormAttendanceRepository) ListByStaff(ctx context.Context, staffID uint, from, to time.Time) ([]*restaurants.Attendance, error) {
	var modelList []*models.AttendanceModel
	dbQuery := r.db.WithContext(ctx).Where("staff_id = ?", staffID)
	if !from.IsZero() {
		dbQuery = dbQuery.Where("date >= ?", from)
	}
	if !to.IsZero() {
		dbQuery = dbQuery.Where("date <= ?", to)
	}

	if err := dbQuery.Order("date asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	domainList := make([]*restaurants.Attendance, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAttendanceRepository) ListByRestaurant(ctx context.Context, restaurantID uint, date time.Time) ([]*restaurants.Attendance, error) {
	var modelList []*models.AttendanceModel
	err := r.db.WithContext(ctx).
		Joins("JOIN staff ON staff.id = attendances.staff_id").
		Where("staff.restaurant_id = ? AND attendances.date = ?", restaurantID, date).
		Order("attendances.staff_id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}

	domainList := make([]*restaurants.Attendance, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
