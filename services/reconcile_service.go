package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

var (
	// ErrMissingSessionID: the redirect arrived without a session_id query
	// parameter. Malformed redirect, terminal, never retried.
	ErrMissingSessionID = errors.New("missing session id")
	// ErrOrderNotReady: no order row matched after the full retry budget.
	ErrOrderNotReady = errors.New("order not found for session")
)

// ReconcileService resolves a checkout session id back to the order row for
// the thank-you page. Absence right after redirect is an expected race (the
// session-id backfill or the webhook may still be in flight), so the lookup
// retries with doubling delay before giving up.
type ReconcileService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository

	RetryDelay  time.Duration
	MaxAttempts int
}

func NewReconcileService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository,
	retryDelay time.Duration, maxAttempts int) *ReconcileService {
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &ReconcileService{
		DB: db, OrderRepo: or, CartRepo: cr,
		RetryDelay: retryDelay, MaxAttempts: maxAttempts,
	}
}

const maxRetryDelay = 8 * time.Second

// Lookup finds the order for sessionID. When cartToken is non-empty the
// matching cart is cleared on success (idempotent if already cleared).
func (s *ReconcileService) Lookup(ctx context.Context, sessionID, cartToken string) (*entity.Order, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	delay := s.RetryDelay
	for attempt := 1; ; attempt++ {
		o, err := s.OrderRepo.GetBySessionID(sessionID)
		if err == nil {
			s.clearCart(cartToken, o.CourseID)
			return o, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if attempt >= s.MaxAttempts {
			return nil, ErrOrderNotReady
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}

func (s *ReconcileService) clearCart(token string, courseID uint) {
	if token == "" {
		return
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, token, courseID)
	})
	if err != nil {
		log.Printf("clear cart after checkout: %v", err)
	}
}
