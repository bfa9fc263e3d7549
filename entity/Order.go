package entity

import (
	"gorm.io/gorm"
)

// Payment status of an order. An order is inserted "pending" before the
// customer is redirected to the hosted checkout; the provider webhook flips
// it to "paid". Fulfillment runs on its own status (FulfillmentStatus).
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`

	// TotalPrice is fixed at creation as sum(unit price × qty) over Items,
	// minor currency units. Never recomputed, even if menu prices change.
	TotalPrice int64 `json:"totalPrice"`

	// HoleNumber 1–18, nil when the order was placed without location.
	HoleNumber *int   `json:"holeNumber"`
	Notes      string `json:"notes"`

	Status            string            `json:"status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`

	// Correlation key for the thank-you lookup after the hosted checkout
	// redirects back; set once by the checkout endpoint.
	StripeSessionID string `json:"stripeSessionId" gorm:"index"`

	CourseID uint   `json:"courseId" gorm:"index"`
	Course   Course `json:"-"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
