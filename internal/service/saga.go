package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rookgm/fooddelivery/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// OrderCreator is interface for placing orders
type OrderCreator interface {
	Create(ctx context.Context, params CreateOrderParams) (*models.Order, error)
}

// AdminCreateOrderParams is admin order creation input. Either
// CustomerID names an existing customer, or Customer describes a new
// one to provision.
type AdminCreateOrderParams struct {
	CustomerID string
	Customer   NewCustomer
	Order      CreateOrderParams
}

// NewCustomer describes a customer record to provision
type NewCustomer struct {
	Name  string
	Phone string
	Email string
}

// AdminOrderCreationSaga places an order on behalf of a customer who
// may not exist yet. It is a two-step workflow without a shared
// transaction: user provisioning and order creation commit
// independently. When step two fails after a customer was provisioned,
// the customer record remains without an order. That partial outcome is
// accepted and logged, not rolled back.
type AdminOrderCreationSaga struct {
	users  UserRepository
	orders OrderCreator
	logger *zap.Logger
}

// NewAdminOrderCreationSaga creates new AdminOrderCreationSaga instance
func NewAdminOrderCreationSaga(users UserRepository, orders OrderCreator, logger *zap.Logger) *AdminOrderCreationSaga {
	return &AdminOrderCreationSaga{
		users:  users,
		orders: orders,
		logger: logger,
	}
}

// Run resolves or provisions the customer, then creates the order
func (s *AdminOrderCreationSaga) Run(ctx context.Context, params AdminCreateOrderParams) (*models.Order, error) {
	customerID := params.CustomerID
	provisioned := false

	if customerID == "" {
		user, err := s.provisionCustomer(ctx, params.Customer)
		if err != nil {
			return nil, err
		}
		customerID = user.ID
		provisioned = true
	}

	params.Order.CustomerID = customerID

	order, err := s.orders.Create(ctx, params.Order)
	if err != nil {
		if provisioned {
			s.logger.Warn("order creation failed after customer was provisioned, customer record remains",
				zap.String("customer_id", customerID),
				zap.Error(err))
		}
		return nil, err
	}

	return order, nil
}

// provisionCustomer creates customer record with a generated
// placeholder credential
func (s *AdminOrderCreationSaga) provisionCustomer(ctx context.Context, customer NewCustomer) (*models.User, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Email = strings.TrimSpace(customer.Email)

	if customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", models.ErrValidation)
	}
	if customer.Phone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", models.ErrValidation)
	}

	if _, err := s.users.GetUserByPhoneOrEmail(ctx, customer.Phone, customer.Email); err == nil {
		return nil, fmt.Errorf("%w: phone or email already registered", models.ErrCustomerCreationFailed)
	} else if !errors.Is(err, models.ErrDataNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Name:         customer.Name,
		Phone:        customer.Phone,
		Email:        customer.Email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, fmt.Errorf("%w: phone or email already registered", models.ErrCustomerCreationFailed)
		}
		return nil, err
	}

	s.logger.Info("customer provisioned for admin order",
		zap.String("customer_id", user.ID),
		zap.String("phone", user.Phone))

	return user, nil
}
