package app

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// menuService implements the menu.MenuService interface
type menuService struct {
	unitRepo       menu.UnitRepository
	categoryRepo   menu.CategoryRepository
	productRepo    menu.ProductRepository
	comboRepo      menu.ComboRepository
	restaurantRepo restaurants.RestaurantRepository
	logger         logger.Logger
}

// NewMenuService creates a new menuService instance
func NewMenuService(
	unitRepo menu.UnitRepository,
	categoryRepo menu.CategoryRepository,
	productRepo menu.ProductRepository,
	comboRepo menu.ComboRepository,
	restaurantRepo restaurants.RestaurantRepository,
	logger logger.Logger,
) (menu.MenuService, error) {
	return &menuService{
		unitRepo:       unitRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		comboRepo:      comboRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}, nil
}

func (s *menuService) CreateUnit(ctx context.Context, unit *menu.Unit) (*menu.Unit, error) {
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return unit, nil
}

func (s *menuService) ListUnits(ctx context.Context, restaurantID uint) ([]*menu.Unit, error) {
	units, err := s.unitRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return units, nil
}

func (s *menuService) UpdateUnit(ctx context.Context, restaurantID uint, unit *menu.Unit) error {
	existing, err := s.unitRepo.GetByID(ctx, unit.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("unit %d does not belong to restaurant %d: %w", unit.ID, restaurantID, domain.ErrForbidden)
	}
	unit.RestaurantID = restaurantID
	if err := s.unitRepo.UpdateByID(ctx, unit); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) DeleteUnit(ctx context.Context, restaurantID, unitID uint) error {
	existing, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("unit %d does not belong to restaurant %d: %w", unitID, restaurantID, domain.ErrForbidden)
	}
	if err := s.unitRepo.DeleteByID(ctx, unitID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) CreateCategory(ctx context.Context, category *menu.Category) (*menu.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return category, nil
}

func (s *menuService) GetCategory(ctx context.Context, id uint) (*menu.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return category, nil
}

func (s *menuService) ListCategories(ctx context.Context, restaurantID uint) ([]*menu.Category, error) {
	categories, err := s.categoryRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return categories, nil
}

func (s *menuService) UpdateCategory(ctx context.Context, restaurantID uint, category *menu.Category) error {
	existing, err := s.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("category %d does not belong to restaurant %d: %w", category.ID, restaurantID, domain.ErrForbidden)
	}
	category.RestaurantID = restaurantID
	if err := s.categoryRepo.UpdateByID(ctx, category); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) DeleteCategory(ctx context.Context, restaurantID, categoryID uint) error {
	existing, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("category %d does not belong to restaurant %d: %w", categoryID, restaurantID, domain.ErrForbidden)
	}
	if err := s.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) CreateProduct(ctx context.Context, product *menu.Product) (*menu.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if category.RestaurantID != product.RestaurantID {
		return nil, fmt.Errorf("category %d does not belong to restaurant %d: %w", product.CategoryID, product.RestaurantID, domain.ErrForbidden)
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return product, nil
}

func (s *menuService) GetProduct(ctx context.Context, id uint) (*menu.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return product, nil
}

func (s *menuService) ListProducts(ctx context.Context, query *menu.ProductQuery) ([]*menu.Product, error) {
	products, err := s.productRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return products, nil
}

func (s *menuService) UpdateProduct(ctx context.Context, restaurantID uint, product *menu.Product) error {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("product %d does not belong to restaurant %d: %w", product.ID, restaurantID, domain.ErrForbidden)
	}
	product.RestaurantID = restaurantID
	if err := s.productRepo.UpdateByID(ctx, product); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) DeleteProduct(ctx context.Context, restaurantID, productID uint) error {
	existing, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("product %d does not belong to restaurant %d: %w", productID, restaurantID, domain.ErrForbidden)
	}
	if err := s.productRepo.DeleteByID(ctx, productID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) CreateCombo(ctx context.Context, combo *menu.ComboSet) (*menu.ComboSet, error) {
	if err := s.comboRepo.Create(ctx, combo); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return combo, nil
}

func (s *menuService) GetCombo(ctx context.Context, id uint) (*menu.ComboSet, error) {
	combo, err := s.comboRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return combo, nil
}

func (s *menuService) ListCombos(ctx context.Context, restaurantID uint) ([]*menu.ComboSet, error) {
	combos, err := s.comboRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return combos, nil
}

func (s *menuService) UpdateCombo(ctx context.Context, restaurantID uint, combo *menu.ComboSet) error {
	existing, err := s.comboRepo.GetByID(ctx, combo.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("combo %d does not belong to restaurant %d: %w", combo.ID, restaurantID, domain.ErrForbidden)
	}
	combo.RestaurantID = restaurantID
	if err := s.comboRepo.UpdateByID(ctx, combo); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *menuService) DeleteCombo(ctx context.Context, restaurantID, comboID uint) error {
	existing, err := s.comboRepo.GetByID(ctx, comboID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("combo %d does not belong to restaurant %d: %w", comboID, restaurantID, domain.ErrForbidden)
	}
	if err := s.comboRepo.DeleteByID(ctx, comboID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// PublicMenu assembles the QR menu for a slug. A closed restaurant serves
// an empty menu so the page still renders its header.
func (s *menuService) PublicMenu(ctx context.Context, slug string) (*menu.PublicMenu, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant %s is not available: %w", slug, domain.ErrNotFound)
	}

	result := &menu.PublicMenu{}
	if !restaurant.IsOpen {
		return result, nil
	}

	categories, err := s.categoryRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	products, err := s.productRepo.List(ctx, &menu.ProductQuery{
		RestaurantID: restaurant.ID,
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	byCategory := make(map[uint][]*menu.Product)
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	for _, c := range categories {
		items := byCategory[c.ID]
		if len(items) == 0 {
			continue
		}
		result.Categories = append(result.Categories, menu.PublicCategory{
			Category: c,
			Products: items,
		})
	}

	combos, err := s.comboRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	result.Combos = combos

	return result, nil
}
