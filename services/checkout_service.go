package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/payments"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

// Geolocation happens on the customer's device; the checkout request reports
// its outcome with one of these codes when no coordinates could be obtained.
const (
	GeoPermissionDenied    = "PERMISSION_DENIED"
	GeoPositionUnavailable = "POSITION_UNAVAILABLE"
	GeoTimeout             = "TIMEOUT"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrHoleSelectionRequired tells the client to present the manual 1–18
	// hole picker: location permission was denied, so nothing can be
	// resolved automatically.
	ErrHoleSelectionRequired = errors.New("hole selection required")
	ErrInvalidHoleNumber     = errors.New("hole number must be between 1 and 18")
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CheckoutIn struct {
	SuccessURL string    `json:"success_url" binding:"required"`
	CancelURL  string    `json:"cancel_url" binding:"required"`
	Notes      string    `json:"notes"`
	HoleNumber *int      `json:"hole_number"`
	Location   *Location `json:"location"`
	GeoError   string    `json:"geo_error"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	Holes     *HoleService
	Provider  payments.CheckoutProvider
	Events    OrderEvents
	Currency  string
}

func NewCheckoutService(db *gorm.DB, cr *repository.CartRepository, or *repository.OrderRepository,
	hs *HoleService, p payments.CheckoutProvider, ev OrderEvents, currency string) *CheckoutService {
	return &CheckoutService{
		DB: db, CartRepo: cr, OrderRepo: or,
		Holes: hs, Provider: p, Events: ev, Currency: currency,
	}
}

// Submit turns the cart into a pending order plus a hosted checkout session
// and returns the redirect URL. The cart is left untouched in every outcome:
// only the thank-you flow (or the customer) clears it.
func (s *CheckoutService) Submit(ctx context.Context, token string, courseID uint, in *CheckoutIn) (string, error) {
	cart, err := s.CartRepo.GetCartWithItems(token, courseID)
	if err != nil {
		return "", err
	}
	if len(cart.Items) == 0 {
		return "", ErrEmptyCart
	}

	hole, err := s.resolveHole(courseID, in)
	if err != nil {
		return "", err
	}

	notes := RenderNotes(BuildOrderNotes(in.Notes, cart.Items))

	var total int64
	orderItems := make([]entity.OrderItem, 0, len(cart.Items))
	lineItems := make([]payments.LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		total += it.UnitPrice * int64(it.Qty)
		orderItems = append(orderItems, entity.OrderItem{
			ItemName:  it.ItemName,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
		})
		lineItems = append(lineItems, payments.LineItem{
			Name:       it.ItemName,
			ImageURL:   it.ImageURL,
			UnitAmount: it.UnitPrice,
			Quantity:   int64(it.Qty),
			Currency:   s.Currency,
		})
	}

	// Durable pending order first; if this fails there must be no dangling
	// provider session to reconcile later.
	order := entity.Order{
		CustomerName:      in.CustomerName,
		CustomerEmail:     in.CustomerEmail,
		TotalPrice:        total,
		HoleNumber:        hole,
		Notes:             notes,
		Status:            entity.PaymentPending,
		FulfillmentStatus: entity.FulfillmentNew,
		CourseID:          courseID,
		Items:             orderItems,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.OrderRepo.CreateOrder(tx, &order)
	}); err != nil {
		return "", err
	}

	meta := map[string]string{
		"course_id": strconv.FormatUint(uint64(courseID), 10),
		"order_id":  strconv.FormatUint(uint64(order.ID), 10),
		"notes":     notes,
	}
	if hole != nil {
		meta["hole_number"] = strconv.Itoa(*hole)
	}

	sess, err := s.Provider.CreateSession(ctx, &payments.SessionParams{
		LineItems:  lineItems,
		SuccessURL: in.SuccessURL,
		CancelURL:  in.CancelURL,
		Metadata:   meta,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	// Backfill the correlation key. Non-fatal: the thank-you lookup retries
	// and the webhook carries the order id in metadata anyway.
	if err := s.OrderRepo.SetSessionID(order.ID, sess.ID); err != nil {
		log.Printf("failed to save session id for order %d: %v", order.ID, err)
	} else {
		order.StripeSessionID = sess.ID
	}

	if s.Events != nil {
		s.Events.OrderCreated(&order)
	}

	return sess.URL, nil
}

// resolveHole: explicit selection wins, then coordinates through the
// nearest-hole resolver. Denied location permission demands a manual pick;
// any other geolocation failure submits without a hole.
func (s *CheckoutService) resolveHole(courseID uint, in *CheckoutIn) (*int, error) {
	if in.HoleNumber != nil {
		if *in.HoleNumber < 1 || *in.HoleNumber > 18 {
			return nil, ErrInvalidHoleNumber
		}
		return in.HoleNumber, nil
	}
	if in.Location != nil {
		nearest, err := s.Holes.Nearest(courseID, in.Location.Lat, in.Location.Lng)
		if err != nil {
			return nil, err
		}
		n := nearest.HoleNumber
		return &n, nil
	}
	if in.GeoError == GeoPermissionDenied {
		return nil, ErrHoleSelectionRequired
	}
	return nil, nil
}
