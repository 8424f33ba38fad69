package app

import (
	"context"
	"fmt"

	"github.com/ravipangali7/My-Restro-Server/internal/domain/billing"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/orders"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/restaurants"
	"github.com/ravipangali7/My-Restro-Server/internal/domain/users"
	"github.com/ravipangali7/My-Restro-Server/internal/infrastructure/connector"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// billingService implements the billing.BillingService interface
type billingService struct {
	orderRepo       orders.OrderRepository
	restaurantRepo  restaurants.RestaurantRepository
	tableRepo       restaurants.TableRepository
	staffRepo       restaurants.StaffRepository
	userRepo        users.UserRepository
	customerRepo    users.CustomerRepository
	linkRepo        users.CustomerLinkRepository
	transactionRepo billing.TransactionRepository
	media           connector.MediaConnector
	logger          logger.Logger
}

// NewBillingService creates a new billingService instance. media may be
// nil when the object store is disabled; invoices then omit the logo.
func NewBillingService(
	orderRepo orders.OrderRepository,
	restaurantRepo restaurants.RestaurantRepository,
	tableRepo restaurants.TableRepository,
	staffRepo restaurants.StaffRepository,
	userRepo users.UserRepository,
	customerRepo users.CustomerRepository,
	linkRepo users.CustomerLinkRepository,
	transactionRepo billing.TransactionRepository,
	media connector.MediaConnector,
	logger logger.Logger,
) (billing.BillingService, error) {
	return &billingService{
		orderRepo:       orderRepo,
		restaurantRepo:  restaurantRepo,
		tableRepo:       tableRepo,
		staffRepo:       staffRepo,
		userRepo:        userRepo,
		customerRepo:    customerRepo,
		linkRepo:        linkRepo,
		transactionRepo: transactionRepo,
		media:           media,
		logger:          logger,
	}, nil
}

// InvoiceForOrder assembles the printable invoice payload. Amounts are
// rendered as two-decimal strings, matching what the frontend prints.
func (s *billingService) InvoiceForOrder(ctx context.Context, orderID uint) (*billing.Invoice, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	restaurant, err := s.restaurantRepo.GetByID(ctx, order.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	subtotal := order.Subtotal()
	tax := decimal.Zero
	if restaurant.TaxPercent != nil {
		tax = money.PercentOf(subtotal, *restaurant.TaxPercent)
	}
	discount := decimal.Zero
	if order.Discount != nil {
		discount = *order.Discount
	}
	serviceCharge := decimal.Zero
	if order.ServiceCharge != nil {
		serviceCharge = *order.ServiceCharge
	}
	grandTotal := money.ClampNonNegative(subtotal.Add(tax).Add(serviceCharge).Sub(discount))

	inv := &billing.Invoice{
		RestaurantName:    restaurant.Name,
		RestaurantAddress: restaurant.Address,
		RestaurantPhone:   restaurant.CountryCode + restaurant.Phone,
		RestaurantEmail:   restaurant.Email,
		InvoiceNumber:     fmt.Sprintf("INV-%06d", order.ID),
		Date:              order.CreatedAt.Format("2006-01-02 15:04"),
		TableNumber:       order.TableNumber,
		PaymentMethod:     order.PaymentMethod,
		PaymentStatus:     order.PaymentStatus,
		Subtotal:          money.String(subtotal),
		Tax:               money.String(tax),
		Discount:          money.String(discount),
		ServiceCharge:     money.String(serviceCharge),
		GrandTotal:        money.String(grandTotal),
	}

	if s.media != nil && restaurant.LogoKey != "" {
		inv.RestaurantLogo = s.media.PublicURL(restaurant.LogoKey)
	}

	if order.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *order.CustomerID)
		if err == nil {
			inv.CustomerName = customer.Name
		}
	}
	if order.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *order.TableID)
		if err == nil {
			inv.TableName = table.Name
			if inv.TableNumber == "" {
				inv.TableNumber = table.Name
			}
		}
	}
	if order.WaiterID != nil {
		staff, err := s.staffRepo.GetByID(ctx, *order.WaiterID)
		if err == nil {
			if user, err := s.userRepo.GetByID(ctx, staff.UserID); err == nil {
				inv.WaiterName = user.Name
			}
		}
	}

	for i, item := range order.Items {
		inv.Items = append(inv.Items, billing.InvoiceItem{
			ID:       item.ID,
			SN:       i + 1,
			ItemName: item.Name,
			Price:    money.String(item.Price),
			Quantity: item.Quantity.String(),
			Total:    money.String(item.Total),
		})
	}

	return inv, nil
}

// RecordDuePayment settles credit between a customer and a restaurant and
// writes the matching ledger entry.
func (s *billingService) RecordDuePayment(ctx context.Context, customerID, restaurantID uint, amount decimal.Decimal, direction string, remarks string) (*billing.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	link, err := s.linkRepo.GetOrCreate(ctx, customerID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var category string
	switch direction {
	case billing.TxIn:
		// Customer pays down what they owe.
		link.ToPay = money.ClampNonNegative(link.ToPay.Sub(amount))
		category = billing.CategoryReceivedRecord
	case billing.TxOut:
		// Restaurant returns what it owes the customer.
		link.ToReceive = money.ClampNonNegative(link.ToReceive.Sub(amount))
		category = billing.CategoryPaidRecord
	default:
		return nil, fmt.Errorf("unknown payment direction: %s", direction)
	}

	if err := s.linkRepo.UpdateByID(ctx, link); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	tx := &billing.Transaction{
		RestaurantID:  &restaurantID,
		Amount:        amount,
		Type:          direction,
		Category:      category,
		PaymentStatus: orders.PaymentPaid,
		Remarks:       remarks,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Recorded due payment of ", money.String(amount), " for customer ", customerID)
	return tx, nil
}

// PaySubscriptionDue pays down a restaurant's platform dues.
func (s *billingService) PaySubscriptionDue(ctx context.Context, restaurantID uint, amount decimal.Decimal, remarks string) (*billing.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	restaurant.DueBalance = money.ClampNonNegative(restaurant.DueBalance.Sub(amount))
	if err := s.restaurantRepo.UpdateByID(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	tx := &billing.Transaction{
		RestaurantID:  &restaurantID,
		Amount:        amount,
		Type:          billing.TxOut,
		Category:      billing.CategoryDuePaid,
		PaymentStatus: orders.PaymentPaid,
		IsSystem:      true,
		Remarks:       remarks,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Restaurant ", restaurantID, " paid ", money.String(amount), " toward dues")
	return tx, nil
}

func (s *billingService) ListTransactions(ctx context.Context, query *billing.TransactionQuery) ([]*billing.Transaction, error) {
	list, err := s.transactionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}
