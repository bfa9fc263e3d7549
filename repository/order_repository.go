package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrderForCourse scopes the read by course so one course's dashboard can
// never observe another's orders.
func (r *OrderRepository) GetOrderForCourse(courseID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND course_id = ?", orderID, courseID).
		Preload("Items").First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderListFilter struct {
	Status string // payment status, empty = all
	Since  *time.Time
	Limit  int
}

// ListOrdersForCourse returns newest first. Most-recent-first is what the
// dashboard's recent-activity view relies on, so it is ordered here, not in
// the UI.
func (r *OrderRepository) ListOrdersForCourse(courseID uint, f OrderListFilter) ([]entity.Order, error) {
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	db := r.DB.Where("course_id = ?", courseID)
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Since != nil {
		db = db.Where("created_at >= ?", *f.Since)
	}
	var out []entity.Order
	err := db.Preload("Items").Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetBySessionID(sessionID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("stripe_session_id = ?", sessionID).
		Preload("Items").First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// SetSessionID backfills the checkout session id after the provider session
// exists. Best-effort: the caller logs failure and moves on.
func (r *OrderRepository) SetSessionID(orderID uint, sessionID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("stripe_session_id", sessionID).Error
}

// UpdateFulfillmentGuard is a compare-and-set on fulfillment status, scoped
// by both order id and course id. Zero rows affected means the expected
// current status no longer holds (or the order is not this course's).
func (r *OrderRepository) UpdateFulfillmentGuard(tx *gorm.DB, orderID, courseID uint, from, to entity.FulfillmentStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND course_id = ? AND fulfillment_status = ?", orderID, courseID, from).
		Update("fulfillment_status", to)
	return res.RowsAffected, res.Error
}

// MarkPaid flips the payment status pending → paid, guarded the same way.
func (r *OrderRepository) MarkPaid(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.PaymentPending).
		Update("status", entity.PaymentPaid)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetCustomer(tx *gorm.DB, orderID uint, name, email string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"customer_name": name, "customer_email": email}).Error
}
