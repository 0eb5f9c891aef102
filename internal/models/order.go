package models

import "time"

// order status
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// payment method
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// OrderItem is a snapshot of a catalog item at order time.
// Later catalog changes never alter a placed order.
type OrderItem struct {
	FoodID   string  `json:"food_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

// DeliveryAddress is order delivery address, all fields are required
type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// ContactInfo is order contact information
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Pricing contains order amounts, total = subtotal + delivery fee + tax
type Pricing struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Order is order entity
type Order struct {
	ID                  string
	OrderNumber         string
	CustomerID          string
	Items               []OrderItem
	Address             DeliveryAddress
	Contact             ContactInfo
	PaymentMethod       string
	Pricing             Pricing
	Status              string
	EstimatedMinutes    int
	ActualDeliveryTime  *time.Time
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Customer is attached at read time, it is not stored with the order
	Customer *Customer
}

// Customer is customer data attached to order responses
type Customer struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// OrderFilter restricts order listing
type OrderFilter struct {
	// CustomerID scopes listing to a single customer when non-empty
	CustomerID string
	// Status filters by order status when non-empty
	Status string
}
