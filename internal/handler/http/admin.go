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

// AdminOrderService is interface for administrative order operations
type AdminOrderService interface {
	// ListAll returns page of all orders, optionally filtered by status
	ListAll(ctx context.Context, status string, page, pageSize int) ([]models.Order, models.Pagination, error)
	// UpdateStatus moves order to target status
	UpdateStatus(ctx context.Context, orderID, target string) (*models.Order, error)
}

// AdminOrderCreator is interface for the create-order-on-behalf workflow
type AdminOrderCreator interface {
	Run(ctx context.Context, params service.AdminCreateOrderParams) (*models.Order, error)
}

// AdminOrderHandler represents HTTP handler for administrative
// order-related requests
type AdminOrderHandler struct {
	svc    AdminOrderService
	saga   AdminOrderCreator
	logger *zap.Logger
}

// NewAdminOrderHandler creates new AdminOrderHandler instance
func NewAdminOrderHandler(svc AdminOrderService, saga AdminOrderCreator, logger *zap.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{
		svc:    svc,
		saga:   saga,
		logger: logger,
	}
}

// ListAllOrders returns page of all orders
// 200 - successful request
// 401 - unauthenticated
// 403 - caller is not administrator
// 500 - internal server error
func (ah *AdminOrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		status := r.URL.Query().Get("status")

		orders, pagination, err := ah.svc.ListAll(r.Context(), status, page, limit)
		if err != nil {
			ah.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toListOrdersResponse(orders, pagination))
	}
}

type adminCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type adminCreateOrderRequest struct {
	CustomerID          string                 `json:"customer_id"`
	Customer            adminCustomerRequest   `json:"customer"`
	Items               []models.OrderItem     `json:"items"`
	DeliveryAddress     models.DeliveryAddress `json:"delivery_address"`
	ContactInfo         models.ContactInfo     `json:"contact_info"`
	PaymentMethod       string                 `json:"payment_method"`
	Pricing             models.Pricing         `json:"pricing"`
	SpecialInstructions string                 `json:"special_instructions"`
}

// CreateOrder places order on behalf of an existing or new customer
// 201 - order created
// 400 - invalid request body, failed validation or pricing mismatch
// 401 - unauthenticated
// 403 - caller is not administrator
// 404 - referenced customer not found
// 409 - customer provisioning failed
// 500 - internal server error
func (ah *AdminOrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminCreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := ah.saga.Run(r.Context(), service.AdminCreateOrderParams{
			CustomerID: req.CustomerID,
			Customer: service.NewCustomer{
				Name:  req.Customer.Name,
				Phone: req.Customer.Phone,
				Email: req.Customer.Email,
			},
			Order: service.CreateOrderParams{
				Items:               req.Items,
				Address:             req.DeliveryAddress,
				Contact:             req.ContactInfo,
				PaymentMethod:       req.PaymentMethod,
				ClientTotal:         req.Pricing.Total,
				SpecialInstructions: req.SpecialInstructions,
			},
		})
		if err != nil {
			ah.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOrderResponse(order))
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus forces order status transition
// 200 - status updated
// 400 - unknown status or transition not permitted
// 401 - unauthenticated
// 403 - caller is not administrator
// 404 - order not found
// 500 - internal server error
func (ah *AdminOrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := ah.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			ah.respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}

func (ah *AdminOrderHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrPricingMismatch),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrInvalidOrderState):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrCustomerNotFound):
		http.Error(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrCustomerCreationFailed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		ah.logger.Error("admin order request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
