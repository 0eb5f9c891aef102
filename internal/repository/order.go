package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	orderColumns = `id, order_number, customer_id, items, street, city, zip_code, phone, email,
						payment_method, subtotal, delivery_fee, tax, total, status,
						estimated_minutes, actual_delivery_time, special_instructions, created_at, updated_at`

	insertOrderQuery = `
						INSERT INTO orders (id, order_number, customer_id, items, street, city, zip_code, phone, email,
							payment_method, subtotal, delivery_fee, tax, total, status,
							estimated_minutes, special_instructions)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
						RETURNING ` + orderColumns

	selectOrderByIDQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE id = $1
`
	selectOrderByIDOwnedQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE id = $1 AND customer_id::TEXT = $2
`
	selectOrdersQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE ($1 = '' OR customer_id::TEXT = $1)
						  AND ($2 = '' OR status = $2)
						ORDER BY created_at DESC
						LIMIT $3 OFFSET $4
`
	countOrdersQuery = `
						SELECT COUNT(*) FROM orders
						WHERE ($1 = '' OR customer_id::TEXT = $1)
						  AND ($2 = '' OR status = $2)
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $2,
						    actual_delivery_time = COALESCE($3, actual_delivery_time),
						    updated_at = now()
						WHERE id = $1 AND status = ANY($4)
						RETURNING ` + orderColumns

	nextOrderSeqQuery = `SELECT nextval('order_number_seq')`
)

// OrderRepository implements order persistence on postgres
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// orderScanDest destination list must match orderColumns
func orderScanDest(order *models.Order) []any {
	return []any{
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.Items,
		&order.Address.Street, &order.Address.City, &order.Address.ZipCode,
		&order.Contact.Phone, &order.Contact.Email,
		&order.PaymentMethod,
		&order.Pricing.Subtotal, &order.Pricing.DeliveryFee, &order.Pricing.Tax, &order.Pricing.Total,
		&order.Status, &order.EstimatedMinutes, &order.ActualDeliveryTime,
		&order.SpecialInstructions, &order.CreatedAt, &order.UpdatedAt,
	}
}

// CreateOrder inserts new order to database.
// Order id is generated by the store, returns models.ErrConflictData
// when order number is already taken.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery,
		uuid.NewString(), order.OrderNumber, order.CustomerID, order.Items,
		order.Address.Street, order.Address.City, order.Address.ZipCode,
		order.Contact.Phone, order.Contact.Email,
		order.PaymentMethod,
		order.Pricing.Subtotal, order.Pricing.DeliveryFee, order.Pricing.Tax, order.Pricing.Total,
		order.Status, order.EstimatedMinutes, order.SpecialInstructions,
	).Scan(orderScanDest(order)...)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id. Non-empty customerID folds ownership
// into the lookup predicate so foreign orders are indistinguishable from
// missing ones. An id that is not a valid uuid cannot match any row and
// is reported as not found without touching the store.
func (or *OrderRepository) GetOrderByID(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, models.ErrDataNotFound
	}

	order := models.Order{}

	var err error
	if customerID != "" {
		err = or.db.QueryRow(ctx, selectOrderByIDOwnedQuery, orderID, customerID).Scan(orderScanDest(&order)...)
	} else {
		err = or.db.QueryRow(ctx, selectOrderByIDQuery, orderID).Scan(orderScanDest(&order)...)
	}
	if err != nil {
		if or.db.IsNoRows(err) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// ListOrders returns page of orders matching filter, newest first
func (or *OrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter, limit, offset int) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery, filter.CustomerID, filter.Status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		if err := rows.Scan(orderScanDest(&order)...); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// CountOrders returns total number of orders matching filter
func (or *OrderRepository) CountOrders(ctx context.Context, filter models.OrderFilter) (int64, error) {
	var count int64
	if err := or.db.QueryRow(ctx, countOrdersQuery, filter.CustomerID, filter.Status).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateOrderStatus moves order to target status only when its current
// status is still one of from. The precondition is part of the UPDATE
// predicate, two concurrent updates cannot both pass it.
// Returns models.ErrDataNotFound when no row matched.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID, target string, from []string, deliveredAt *time.Time) (*models.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, models.ErrDataNotFound
	}

	order := models.Order{}
	err := or.db.QueryRow(ctx, updateOrderStatusQuery, orderID, target, deliveredAt, from).Scan(orderScanDest(&order)...)
	if err != nil {
		if or.db.IsNoRows(err) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// NextOrderSeq atomically increments and returns the store-backed order
// number sequence
func (or *OrderRepository) NextOrderSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := or.db.QueryRow(ctx, nextOrderSeqQuery).Scan(&seq); err != nil {
		return 0, err
	}

	return seq, nil
}
