package app

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/inventory"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/menu"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// inventoryService implements the inventory.InventoryService interface
type inventoryService struct {
	materialRepo    inventory.RawMaterialRepository
	consumptionRepo inventory.ConsumptionRepository
	stockLogRepo    inventory.StockLogRepository
	orderRepo       orders.OrderRepository
	comboRepo       menu.ComboRepository
	logger          logger.Logger
}

// NewInventoryService creates a new inventoryService instance
func NewInventoryService(
	materialRepo inventory.RawMaterialRepository,
	consumptionRepo inventory.ConsumptionRepository,
	stockLogRepo inventory.StockLogRepository,
	orderRepo orders.OrderRepository,
	comboRepo menu.ComboRepository,
	logger logger.Logger,
) (inventory.InventoryService, error) {
	return &inventoryService{
		materialRepo:    materialRepo,
		consumptionRepo: consumptionRepo,
		stockLogRepo:    stockLogRepo,
		orderRepo:       orderRepo,
		comboRepo:       comboRepo,
		logger:          logger,
	}, nil
}

func (s *inventoryService) CreateMaterial(ctx context.Context, material *inventory.RawMaterial) (*inventory.RawMaterial, error) {
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if material.Stock.IsPositive() {
		// Opening stock becomes the first movement.
		log := &inventory.StockLog{
			RestaurantID:  material.RestaurantID,
			RawMaterialID: material.ID,
			Type:          inventory.StockIn,
			Quantity:      material.Stock,
		}
		if err := s.stockLogRepo.Create(ctx, log); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
	return material, nil
}

func (s *inventoryService) ListMaterials(ctx context.Context, restaurantID uint) ([]*inventory.RawMaterial, error) {
	materials, err := s.materialRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return materials, nil
}

func (s *inventoryService) UpdateMaterial(ctx context.Context, restaurantID uint, material *inventory.RawMaterial) error {
	existing, err := s.materialRepo.GetByID(ctx, material.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("raw material %d does not belong to restaurant %d: %w", material.ID, restaurantID, domain.ErrForbidden)
	}
	material.RestaurantID = restaurantID
	// Stock changes only through movements.
	material.Stock = existing.Stock
	if err := s.materialRepo.UpdateByID(ctx, material); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *inventoryService) DeleteMaterial(ctx context.Context, restaurantID, materialID uint) error {
	existing, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("raw material %d does not belong to restaurant %d: %w", materialID, restaurantID, domain.ErrForbidden)
	}
	if err := s.materialRepo.DeleteByID(ctx, materialID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *inventoryService) LinkConsumption(ctx context.Context, link *inventory.ProductRawMaterial) (*inventory.ProductRawMaterial, error) {
	if err := s.consumptionRepo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return link, nil
}

func (s *inventoryService) UnlinkConsumption(ctx context.Context, id uint) error {
	if err := s.consumptionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// RecordMovement adjusts stock manually and writes the matching log.
func (s *inventoryService) RecordMovement(ctx context.Context, restaurantID, materialID uint, direction string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("movement quantity must be positive")
	}

	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if material.RestaurantID != restaurantID {
		return fmt.Errorf("raw material %d does not belong to restaurant %d: %w", materialID, restaurantID, domain.ErrForbidden)
	}

	delta := quantity
	switch direction {
	case inventory.StockIn:
	case inventory.StockOut:
		delta = quantity.Neg()
	default:
		return fmt.Errorf("unknown movement direction: %s", direction)
	}

	if err := s.materialRepo.AdjustStock(ctx, materialID, delta); err != nil {
		return fmt.Errorf("%w", err)
	}

	log := &inventory.StockLog{
		RestaurantID:  restaurantID,
		RawMaterialID: materialID,
		Type:          direction,
		Quantity:      quantity,
	}
	if err := s.stockLogRepo.Create(ctx, log); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeductForOrder consumes raw materials for every order line. The stock
// logs themselves are the idempotency guard: if any movement already
// references the order, the whole call is a no-op.
func (s *inventoryService) DeductForOrder(ctx context.Context, orderID uint) error {
	done, err := s.stockLogRepo.ExistsForOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if done {
		s.logger.Info("Stock already deducted for order ", orderID)
		return nil
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		switch {
		case item.ComboSetID != nil:
			combo, err := s.comboRepo.GetByID(ctx, *item.ComboSetID)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			for _, productID := range combo.ProductIDs {
				if err := s.deductLine(ctx, order, item, productID, nil); err != nil {
					return err
				}
			}
		case item.ProductID != nil:
			if err := s.deductLine(ctx, order, item, *item.ProductID, item.ProductVariantID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *inventoryService) deductLine(ctx context.Context, order *orders.Order, item *orders.OrderItem, productID uint, variantID *uint) error {
	links, err := s.consumptionRepo.ListForVariant(ctx, productID, variantID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	for _, link := range links {
		consumed := link.Quantity.Mul(item.Quantity)
		if err := s.materialRepo.AdjustStock(ctx, link.RawMaterialID, consumed.Neg()); err != nil {
			return fmt.Errorf("%w", err)
		}
		log := &inventory.StockLog{
			RestaurantID:  order.RestaurantID,
			RawMaterialID: link.RawMaterialID,
			Type:          inventory.StockOut,
			Quantity:      consumed,
			OrderID:       &order.ID,
			OrderItemID:   &item.ID,
		}
		if err := s.stockLogRepo.Create(ctx, log); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

func (s *inventoryService) ListMovements(ctx context.Context, restaurantID uint, limit, offset int) ([]*inventory.StockLog, error) {
	logs, err := s.stockLogRepo.ListByRestaurant(ctx, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return logs, nil
}
