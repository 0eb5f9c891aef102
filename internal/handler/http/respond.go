package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rookgm/fooddelivery/internal/models"
)

type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type orderResponse struct {
	ID                  string                 `json:"id"`
	OrderNumber         string                 `json:"order_number"`
	Status              string                 `json:"status"`
	Items               []models.OrderItem     `json:"items"`
	DeliveryAddress     models.DeliveryAddress `json:"delivery_address"`
	ContactInfo         models.ContactInfo     `json:"contact_info"`
	PaymentMethod       string                 `json:"payment_method"`
	Pricing             models.Pricing         `json:"pricing"`
	EstimatedMinutes    int                    `json:"estimated_delivery_minutes"`
	ActualDeliveryTime  *time.Time             `json:"actual_delivery_time,omitempty"`
	SpecialInstructions string                 `json:"special_instructions,omitempty"`
	Customer            *customerResponse      `json:"customer,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

type listOrdersResponse struct {
	Orders     []orderResponse   `json:"orders"`
	Pagination models.Pagination `json:"pagination"`
}

func toOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		Status:              order.Status,
		Items:               order.Items,
		DeliveryAddress:     order.Address,
		ContactInfo:         order.Contact,
		PaymentMethod:       order.PaymentMethod,
		Pricing:             order.Pricing,
		EstimatedMinutes:    order.EstimatedMinutes,
		ActualDeliveryTime:  order.ActualDeliveryTime,
		SpecialInstructions: order.SpecialInstructions,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}

	if order.Customer != nil {
		resp.Customer = &customerResponse{
			ID:    order.Customer.ID,
			Name:  order.Customer.Name,
			Phone: order.Customer.Phone,
			Email: order.Customer.Email,
		}
	}

	return resp
}

func toListOrdersResponse(orders []models.Order, pagination models.Pagination) listOrdersResponse {
	resp := listOrdersResponse{
		Orders:     make([]orderResponse, 0, len(orders)),
		Pagination: pagination,
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&orders[i]))
	}
	return resp
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// the status line is already written, an encode failure cannot be
	// reported to the client anymore
	_ = json.NewEncoder(w).Encode(v)
}

// pageParams extracts page and limit query parameters, zero values are
// clamped by the service
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	return page, limit
}
