package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown fulfillment status")
	ErrInvalidTransition = errors.New("invalid fulfillment transition")
	// ErrTransitionConflict: the guarded update matched zero rows — another
	// staffer moved the order first. Retryable after a re-fetch; the caller
	// must not keep any optimistic local value.
	ErrTransitionConflict = errors.New("order status changed concurrently, refresh and retry")
)

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Events OrderEvents
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, ev OrderEvents) *OrderService {
	return &OrderService{DB: db, Repo: repo, Events: ev}
}

func (s *OrderService) ListForCourse(courseID uint, f repository.OrderListFilter) ([]entity.Order, error) {
	return s.Repo.ListOrdersForCourse(courseID, f)
}

func (s *OrderService) GetForCourse(courseID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForCourse(courseID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// Transition moves an order along the fulfillment graph. The write is a
// compare-and-set scoped by (order, course, current status): terminal states
// are rejected up front, and a lost race surfaces as ErrTransitionConflict
// instead of silently applying.
func (s *OrderService) Transition(courseID, orderID uint, target entity.FulfillmentStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.GetForCourse(courseID, orderID)
	if err != nil {
		return nil, err
	}

	from := o.FulfillmentStatus
	if from.Terminal() || !from.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateFulfillmentGuard(tx, orderID, courseID, from, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read rather than patching the in-memory copy: the store's value is
	// authoritative.
	updated, err := s.GetForCourse(courseID, orderID)
	if err != nil {
		return nil, err
	}
	if s.Events != nil {
		s.Events.OrderUpdated(updated)
	}
	return updated, nil
}

// FinalizePayment is the webhook path: pending → paid, keyed by the order id
// from session metadata. Idempotent: a second completed event for the same
// session matches zero rows and is ignored.
func (s *OrderService) FinalizePayment(orderID uint, customerName, customerEmail string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.MarkPaid(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}
		if customerName != "" || customerEmail != "" {
			if err := s.Repo.SetCustomer(tx, orderID, customerName, customerEmail); err != nil {
				return err
			}
		}
		return nil
	})
}

// BroadcastUpdate pushes the current row to dashboards, used after webhook
// finalization where the transaction has already committed.
func (s *OrderService) BroadcastUpdate(courseID, orderID uint) {
	if s.Events == nil {
		return
	}
	if o, err := s.GetForCourse(courseID, orderID); err == nil {
		s.Events.OrderUpdated(o)
	}
}
