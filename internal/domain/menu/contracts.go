package menu

import "context"

// UnitRepository defines persistence operations for measurement units.
type UnitRepository interface {
	Create(ctx context.Context, unit *Unit) error
	GetByID(ctx context.Context, id uint) (*Unit, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*Unit, error)
	UpdateByID(ctx context.Context, unit *Unit) error
	DeleteByID(ctx context.Context, id uint) error
}

// CategoryRepository defines persistence operations for menu categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*Category, error)
	UpdateByID(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, id uint) error
}

// ProductRepository defines persistence operations for products and their
// variants. Variants are saved and loaded with their product.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetVariantByID(ctx context.Context, variantID uint) (*ProductVariant, error)
	// List loads products with variants; ActiveOnly hides disabled dishes.
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	UpdateByID(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, id uint) error
}

// ComboRepository defines persistence operations for combo sets.
type ComboRepository interface {
	Create(ctx context.Context, combo *ComboSet) error
	GetByID(ctx context.Context, id uint) (*ComboSet, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]*ComboSet, error)
	UpdateByID(ctx context.Context, combo *ComboSet) error
	DeleteByID(ctx context.Context, id uint) error
}

// PublicMenu is the QR menu payload: categories with their active
// products and the restaurant's combo sets.
type PublicMenu struct {
	Categories []PublicCategory
	Combos     []*ComboSet
}

// PublicCategory groups a category with its visible products.
type PublicCategory struct {
	Category *Category
	Products []*Product
}

// MenuService manages a restaurant's menu. Mutations that take
// restaurantID enforce that the entity belongs to it.
type MenuService interface {
	CreateUnit(ctx context.Context, unit *Unit) (*Unit, error)
	ListUnits(ctx context.Context, restaurantID uint) ([]*Unit, error)
	UpdateUnit(ctx context.Context, restaurantID uint, unit *Unit) error
	DeleteUnit(ctx context.Context, restaurantID, unitID uint) error

	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context, restaurantID uint) ([]*Category, error)
	UpdateCategory(ctx context.Context, restaurantID uint, category *Category) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID uint) error

	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, query *ProductQuery) ([]*Product, error)
	UpdateProduct(ctx context.Context, restaurantID uint, product *Product) error
	DeleteProduct(ctx context.Context, restaurantID, productID uint) error

	CreateCombo(ctx context.Context, combo *ComboSet) (*ComboSet, error)
	GetCombo(ctx context.Context, id uint) (*ComboSet, error)
	ListCombos(ctx context.Context, restaurantID uint) ([]*ComboSet, error)
	UpdateCombo(ctx context.Context, restaurantID uint, combo *ComboSet) error
	DeleteCombo(ctx context.Context, restaurantID, comboID uint) error

	// PublicMenu assembles the QR menu for a restaurant slug. A closed or
	// inactive restaurant yields an empty menu.
	PublicMenu(ctx context.Context, slug string) (*PublicMenu, error)
}

// ProductQuery filters product listings.
type ProductQuery struct {
	RestaurantID uint
	CategoryID   uint // 0 means any
	ActiveOnly   bool
	Search       string
	Limit        int
	Offset       int
}
