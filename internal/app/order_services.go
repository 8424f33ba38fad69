package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// orderService implements the orders.OrderService interface
type orderService struct {
	orderRepo        orders.OrderRepository
	productRepo      menu.ProductRepository
	comboRepo        menu.ComboRepository
	restaurantRepo   restaurants.RestaurantRepository
	staffRepo        restaurants.StaffRepository
	customerRepo     users.CustomerRepository
	linkRepo         users.CustomerLinkRepository
	inventoryService inventory.InventoryService
	logger           logger.Logger
}

// NewOrderService creates a new orderService instance
func NewOrderService(
	orderRepo orders.OrderRepository,
	productRepo menu.ProductRepository,
	comboRepo menu.ComboRepository,
	restaurantRepo restaurants.RestaurantRepository,
	staffRepo restaurants.StaffRepository,
	customerRepo users.CustomerRepository,
	linkRepo users.CustomerLinkRepository,
	inventoryService inventory.InventoryService,
	logger logger.Logger,
) (orders.OrderService, error) {
	return &orderService{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		comboRepo:        comboRepo,
		restaurantRepo:   restaurantRepo,
		staffRepo:        staffRepo,
		customerRepo:     customerRepo,
		linkRepo:         linkRepo,
		inventoryService: inventoryService,
		logger:           logger,
	}, nil
}

// Place resolves item prices from the menu so clients can never set their
// own prices, captures display names, and persists the order as pending.
func (s *orderService) Place(ctx context.Context, input *orders.PlaceOrderInput) (*orders.Order, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant %d is deactivated: %w", restaurant.ID, domain.ErrForbidden)
	}
	if !restaurant.IsOpen {
		return nil, fmt.Errorf("restaurant %d is closed: %w", restaurant.ID, domain.ErrForbidden)
	}

	order := &orders.Order{
		RestaurantID:  input.RestaurantID,
		CustomerID:    input.CustomerID,
		TableID:       input.TableID,
		TableNumber:   input.TableNumber,
		OrderType:     input.OrderType,
		Address:       input.Address,
		PeopleFor:     input.PeopleFor,
		Status:        orders.StatusPending,
		PaymentStatus: orders.PaymentPending,
	}

	for _, line := range input.Items {
		item, err := s.resolveItem(ctx, restaurant.ID, line)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}
	order.Total = money.Round2(order.Subtotal())

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if input.CustomerID != nil {
		// Link the diner to the restaurant for credit and history views.
		if _, err := s.linkRepo.GetOrCreate(ctx, *input.CustomerID, restaurant.ID); err != nil {
			s.logger.Warn("Failed to link customer to restaurant: ", err)
		}
	}

	s.logger.Info("Placed order with id ", order.ID)
	return order, nil
}

// PlaceBySlug places an unauthenticated QR order. A walk-in customer row
// is created for the phone when none exists; the diner can claim it later
// by registering.
func (s *orderService) PlaceBySlug(ctx context.Context, input *orders.PublicOrderInput) (*orders.Order, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var customerID *uint
	if input.Phone != "" {
		customer, err := s.customerRepo.GetByPhone(ctx, input.CountryCode, input.Phone)
		if errors.Is(err, domain.ErrNotFound) {
			customer = &users.Customer{
				Name:         input.CustomerName,
				CountryCode:  input.CountryCode,
				Phone:        input.Phone,
				PasswordHash: users.UnusablePassword,
			}
			err = s.customerRepo.Create(ctx, customer)
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		customerID = &customer.ID
	}

	return s.Place(ctx, &orders.PlaceOrderInput{
		RestaurantID: restaurant.ID,
		CustomerID:   customerID,
		TableID:      input.TableID,
		TableNumber:  input.TableNumber,
		OrderType:    input.OrderType,
		Address:      input.Address,
		PeopleFor:    input.PeopleFor,
		Items:        input.Items,
	})
}

// resolveItem turns a requested line into a priced order item.
func (s *orderService) resolveItem(ctx context.Context, restaurantID uint, line orders.PlacedItem) (*orders.OrderItem, error) {
	if !line.Quantity.IsPositive() {
		return nil, fmt.Errorf("item quantity must be positive")
	}

	switch {
	case line.ComboSetID != nil:
		combo, err := s.comboRepo.GetByID(ctx, *line.ComboSetID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if combo.RestaurantID != restaurantID {
			return nil, fmt.Errorf("combo %d does not belong to restaurant %d: %w", combo.ID, restaurantID, domain.ErrForbidden)
		}
		return &orders.OrderItem{
			ComboSetID: line.ComboSetID,
			Name:       combo.Name,
			Price:      combo.Price,
			Quantity:   line.Quantity,
			Total:      money.Round2(combo.Price.Mul(line.Quantity)),
		}, nil

	case line.ProductVariantID != nil:
		variant, err := s.productRepo.GetVariantByID(ctx, *line.ProductVariantID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		product, err := s.productRepo.GetByID(ctx, variant.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if product.RestaurantID != restaurantID {
			return nil, fmt.Errorf("product %d does not belong to restaurant %d: %w", product.ID, restaurantID, domain.ErrForbidden)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("product %d is not available: %w", product.ID, domain.ErrForbidden)
		}
		price := variant.FinalPrice()
		return &orders.OrderItem{
			ProductID:        &product.ID,
			ProductVariantID: line.ProductVariantID,
			Name:             product.Name,
			Price:            price,
			Quantity:         line.Quantity,
			Total:            money.Round2(price.Mul(line.Quantity)),
		}, nil
	}
	return nil, fmt.Errorf("item needs a product variant or a combo set")
}

func (s *orderService) GetByID(ctx context.Context, id uint) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	list, err := s.orderRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// UpdateStatus drives the status machine. Kitchen actors are restricted to
// the kitchen transitions and can never serve or reject.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uint, to, reason string, actor orders.Actor) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if actor.Role == users.RoleKitchen {
		allowed := false
		for _, next := range orders.KitchenAllowedNext[order.Status] {
			if next == to {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("kitchen cannot move order from %s to %s (allowed: %v): %w", order.Status, to, orders.KitchenAllowedNext[order.Status], domain.ErrForbidden)
		}
	} else if !orders.CanTransition(order.Status, to) {
		return nil, fmt.Errorf("cannot move order from %s to %s (allowed: %v)", order.Status, to, orders.AllowedNext(order.Status))
	}

	if to == orders.StatusRejected {
		if reason == "" {
			return nil, fmt.Errorf("rejection requires a reason")
		}
		order.RejectReason = reason
	}

	order.Status = to
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if to == orders.StatusReady {
		// Deduction is idempotent, so a retried transition is harmless.
		if err := s.inventoryService.DeductForOrder(ctx, order.ID); err != nil {
			s.logger.Error("Stock deduction failed for order ", order.ID, ": ", err)
		}
	}

	s.logger.Info("Order ", order.ID, " moved to ", to)
	return order, nil
}

// Settle records payment and folds tax, discount and service charge into
// the grand total.
func (s *orderService) Settle(ctx context.Context, orderID uint, method string, discount, serviceCharge *decimal.Decimal) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	restaurant, err := s.restaurantRepo.GetByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	subtotal := order.Subtotal()
	total := subtotal
	if restaurant.TaxPercent != nil {
		total = total.Add(money.PercentOf(subtotal, *restaurant.TaxPercent))
	}
	if serviceCharge != nil {
		total = total.Add(*serviceCharge)
		order.ServiceCharge = serviceCharge
	}
	if discount != nil {
		total = total.Sub(*discount)
		order.Discount = discount
	}

	order.Total = money.Round2(money.ClampNonNegative(total))
	order.PaymentMethod = method
	order.PaymentStatus = orders.PaymentPaid

	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Settled order ", order.ID, " for ", money.String(order.Total))
	return order, nil
}

// AssignWaiter pins a waiter to an order. The staff member must be a
// waiter of the order's restaurant.
func (s *orderService) AssignWaiter(ctx context.Context, orderID, staffID uint) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if staff.RestaurantID != order.RestaurantID {
		return fmt.Errorf("staff %d does not belong to restaurant %d: %w", staffID, order.RestaurantID, domain.ErrForbidden)
	}
	if !staff.IsWaiter {
		return fmt.Errorf("staff %d is not a waiter: %w", staffID, domain.ErrForbidden)
	}

	order.WaiterID = &staffID
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
