package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rookgm/fooddelivery/internal/models"
)

const (
	defaultEstimatedMinutes = 30

	// createOrderAttempts bounds the transparent retry on an order
	// number collision
	createOrderAttempts = 3

	customerPageSizeLimit = 50
	adminPageSizeLimit    = 100
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id, scoped to customer when customerID is non-empty
	GetOrderByID(ctx context.Context, orderID, customerID string) (*models.Order, error)
	// ListOrders returns page of orders matching filter, newest first
	ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]models.Order, error)
	// CountOrders returns total number of orders matching filter
	CountOrders(ctx context.Context, filter models.OrderFilter) (int64, error)
	// UpdateOrderStatus conditionally moves order to target status
	UpdateOrderStatus(ctx context.Context, orderID, target string, from []string, deliveredAt *time.Time) (*models.Order, error)
}

// CustomerProvider is interface for resolving customer records
type CustomerProvider interface {
	// GetUserByID returns user by id
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// CreateOrderParams carries validated-at-the-edge order creation input
type CreateOrderParams struct {
	CustomerID          string
	Items               []models.OrderItem
	Address             models.DeliveryAddress
	Contact             models.ContactInfo
	PaymentMethod       string
	ClientTotal         float64
	SpecialInstructions string
}

// OrderService implements the order lifecycle operations
type OrderService struct {
	repo      OrderRepository
	users     CustomerProvider
	pricing   *PricingCalculator
	lifecycle *OrderLifecycle
	numbers   *OrderNumberGenerator
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, users CustomerProvider, pricing *PricingCalculator, lifecycle *OrderLifecycle, numbers *OrderNumberGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		users:     users,
		pricing:   pricing,
		lifecycle: lifecycle,
		numbers:   numbers,
	}
}

func validateCreateOrder(params *CreateOrderParams) error {
	if len(params.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", models.ErrValidation)
	}
	for i, item := range params.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d: name is required", models.ErrValidation, i+1)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d: quantity must be at least 1", models.ErrValidation, i+1)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %d: price must not be negative", models.ErrValidation, i+1)
		}
	}

	params.Address.Street = strings.TrimSpace(params.Address.Street)
	params.Address.City = strings.TrimSpace(params.Address.City)
	params.Address.ZipCode = strings.TrimSpace(params.Address.ZipCode)
	if params.Address.Street == "" {
		return fmt.Errorf("%w: street is required", models.ErrValidation)
	}
	if params.Address.City == "" {
		return fmt.Errorf("%w: city is required", models.ErrValidation)
	}
	if params.Address.ZipCode == "" {
		return fmt.Errorf("%w: zip code is required", models.ErrValidation)
	}

	params.Contact.Phone = strings.TrimSpace(params.Contact.Phone)
	if params.Contact.Phone == "" {
		return fmt.Errorf("%w: phone is required", models.ErrValidation)
	}

	if params.PaymentMethod != models.PaymentMethodCard && params.PaymentMethod != models.PaymentMethodCash {
		return fmt.Errorf("%w: payment method must be card or cash", models.ErrValidation)
	}

	return nil
}

// Create validates input, verifies the client pricing quote, assigns an
// order number and persists the new order. The returned order carries
// customer data attached at read time.
func (os *OrderService) Create(ctx context.Context, params CreateOrderParams) (*models.Order, error) {
	if err := validateCreateOrder(&params); err != nil {
		return nil, err
	}

	customer, err := os.users.GetUserByID(ctx, params.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, models.ErrCustomerNotFound
		}
		return nil, err
	}

	pricing, err := os.pricing.Validate(params.ClientTotal, params.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:          customer.ID,
		Items:               params.Items,
		Address:             params.Address,
		Contact:             params.Contact,
		PaymentMethod:       params.PaymentMethod,
		Pricing:             pricing,
		Status:              models.OrderStatusPending,
		EstimatedMinutes:    defaultEstimatedMinutes,
		SpecialInstructions: strings.TrimSpace(params.SpecialInstructions),
	}

	// a sequence collision should not happen, but when it does the
	// order is retried with a freshly generated number instead of
	// surfacing the conflict
	var created *models.Order
	for attempt := 0; attempt < createOrderAttempts; attempt++ {
		order.OrderNumber, err = os.numbers.Next(ctx)
		if err != nil {
			return nil, err
		}

		created, err = os.repo.CreateOrder(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, models.ErrConflictData) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	created.Customer = customerOf(customer)
	return created, nil
}

// GetByID returns order by id. Ownership is part of the lookup
// predicate, a foreign order is reported as not found.
func (os *OrderService) GetByID(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	order, err := os.repo.GetOrderByID(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	os.attachCustomers(ctx, order)
	return order, nil
}

// ListForCustomer returns page of customer orders, newest first
func (os *OrderService) ListForCustomer(ctx context.Context, customerID string, page, pageSize int) ([]models.Order, models.Pagination, error) {
	page, pageSize = clampPage(page, pageSize, customerPageSizeLimit)
	filter := models.OrderFilter{CustomerID: customerID}

	orders, total, err := os.listPage(ctx, filter, page, pageSize)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return orders, models.NewPagination(page, pageSize, total), nil
}

// ListAll returns page of all orders, optionally filtered by status.
// An unrecognized status filter is ignored rather than rejected.
func (os *OrderService) ListAll(ctx context.Context, status string, page, pageSize int) ([]models.Order, models.Pagination, error) {
	page, pageSize = clampPage(page, pageSize, adminPageSizeLimit)

	filter := models.OrderFilter{}
	if _, known := transitions[status]; known {
		filter.Status = status
	}

	orders, total, err := os.listPage(ctx, filter, page, pageSize)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return orders, models.NewPagination(page, pageSize, total), nil
}

// Cancel cancels customer order. Cancellation is permitted only while
// the order is pending or confirmed.
func (os *OrderService) Cancel(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	order, err := os.repo.GetOrderByID(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	if !os.lifecycle.CanTransition(order.Status, models.OrderStatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel order in status %s", models.ErrInvalidOrderState, order.Status)
	}

	// the update re-checks the status so a concurrent transition cannot
	// slip past the check above
	cancelled, err := os.repo.UpdateOrderStatus(ctx, order.ID, models.OrderStatusCancelled,
		os.lifecycle.AllowedFrom(models.OrderStatusCancelled), nil)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: order status changed concurrently", models.ErrInvalidOrderState)
		}
		return nil, err
	}

	os.attachCustomers(ctx, cancelled)
	return cancelled, nil
}

// UpdateStatus moves order to target status following the transition
// table. It is administrative and not scoped by customer.
func (os *OrderService) UpdateStatus(ctx context.Context, orderID, target string) (*models.Order, error) {
	order, err := os.repo.GetOrderByID(ctx, orderID, "")
	if err != nil {
		return nil, err
	}

	staged := *order
	if err := os.lifecycle.Transition(&staged, target); err != nil {
		return nil, err
	}

	updated, err := os.repo.UpdateOrderStatus(ctx, order.ID, target, []string{order.Status}, staged.ActualDeliveryTime)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: order status changed concurrently", models.ErrInvalidTransition)
		}
		return nil, err
	}

	os.attachCustomers(ctx, updated)
	return updated, nil
}

// listPage loads one page alongside the total count
func (os *OrderService) listPage(ctx context.Context, filter models.OrderFilter, page, pageSize int) ([]models.Order, int64, error) {
	total, err := os.repo.CountOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	orders, err := os.repo.ListOrders(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	refs := make([]*models.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	os.attachCustomers(ctx, refs...)

	return orders, total, nil
}

// attachCustomers enriches orders with customer data. A missing
// customer record leaves the order unenriched, reads do not fail on it.
func (os *OrderService) attachCustomers(ctx context.Context, orders ...*models.Order) {
	cache := map[string]*models.Customer{}

	for _, order := range orders {
		if customer, ok := cache[order.CustomerID]; ok {
			order.Customer = customer
			continue
		}
		user, err := os.users.GetUserByID(ctx, order.CustomerID)
		if err != nil {
			continue
		}
		order.Customer = customerOf(user)
		cache[order.CustomerID] = order.Customer
	}
}

func customerOf(user *models.User) *models.Customer {
	return &models.Customer{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.Phone,
		Email: user.Email,
	}
}

func clampPage(page, pageSize, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > limit {
		pageSize = limit
	}
	return page, pageSize
}
