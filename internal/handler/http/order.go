package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/service"
	"go.uber.org/zap"
)

// OrderService is interface for customer order operations
type OrderService interface {
	// Create places new order
	Create(ctx context.Context, params service.CreateOrderParams) (*models.Order, error)
	// GetByID returns customer order by id
	GetByID(ctx context.Context, orderID, customerID string) (*models.Order, error)
	// ListForCustomer returns page of customer orders
	ListForCustomer(ctx context.Context, customerID string, page, pageSize int) ([]models.Order, models.Pagination, error)
	// Cancel cancels customer order
	Cancel(ctx context.Context, orderID, customerID string) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc    OrderService
	logger *zap.Logger
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		svc:    svc,
		logger: logger,
	}
}

type createOrderRequest struct {
	Items               []models.OrderItem     `json:"items"`
	DeliveryAddress     models.DeliveryAddress `json:"delivery_address"`
	ContactInfo         models.ContactInfo     `json:"contact_info"`
	PaymentMethod       string                 `json:"payment_method"`
	Pricing             models.Pricing         `json:"pricing"`
	SpecialInstructions string                 `json:"special_instructions"`
}

// CreateOrder creates order for the authenticated customer
// 201 - order created
// 400 - invalid request body, failed validation or pricing mismatch
// 401 - unauthenticated
// 404 - customer record not found
// 500 - internal server error
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.Create(r.Context(), service.CreateOrderParams{
			CustomerID:          payload.UserID,
			Items:               req.Items,
			Address:             req.DeliveryAddress,
			Contact:             req.ContactInfo,
			PaymentMethod:       req.PaymentMethod,
			ClientTotal:         req.Pricing.Total,
			SpecialInstructions: req.SpecialInstructions,
		})
		if err != nil {
			oh.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOrderResponse(order))
	}
}

// GetOrder returns single order of the authenticated customer
// 200 - successful request
// 401 - unauthenticated
// 404 - order not found or owned by another customer
// 500 - internal server error
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		order, err := oh.svc.GetByID(r.Context(), chi.URLParam(r, "id"), payload.UserID)
		if err != nil {
			oh.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}

// ListOrders returns page of the authenticated customer orders
// 200 - successful request
// 401 - unauthenticated
// 500 - internal server error
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		page, limit := pageParams(r)

		orders, pagination, err := oh.svc.ListForCustomer(r.Context(), payload.UserID, page, limit)
		if err != nil {
			oh.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toListOrdersResponse(orders, pagination))
	}
}

// CancelOrder cancels order of the authenticated customer
// 200 - order cancelled
// 400 - order status does not permit cancellation
// 401 - unauthenticated
// 404 - order not found or owned by another customer
// 500 - internal server error
func (oh *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		order, err := oh.svc.Cancel(r.Context(), chi.URLParam(r, "id"), payload.UserID)
		if err != nil {
			oh.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}

func (oh *OrderHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrPricingMismatch),
		errors.Is(err, models.ErrInvalidOrderState):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrCustomerNotFound):
		http.Error(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	default:
		oh.logger.Error("order request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
