package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v79"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
)

const testWebhookSecret = "whsec_test_secret"

type recordEvents struct {
	updated []*entity.Order
}

func (e *recordEvents) OrderCreated(o *entity.Order) {}
func (e *recordEvents) OrderUpdated(o *entity.Order) { e.updated = append(e.updated, o) }

type webhookFixture struct {
	db     *gorm.DB
	router *gin.Engine
	events *recordEvents
	course *entity.Course
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Course{}, &entity.Order{}, &entity.OrderItem{}))

	course := &entity.Course{Name: "Test Course", Slug: "test-course"}
	require.NoError(t, db.Create(course).Error)

	events := &recordEvents{}
	orders := services.NewOrderService(db, repository.NewOrderRepository(db), events)
	ctrl := NewWebhookController(orders, testWebhookSecret)

	r := gin.New()
	r.POST("/webhooks/stripe", ctrl.HandleStripe)
	return &webhookFixture{db: db, router: r, events: events, course: course}
}

func (fx *webhookFixture) pendingOrder(t *testing.T) *entity.Order {
	t.Helper()
	o := &entity.Order{
		TotalPrice:        2400,
		Status:            entity.PaymentPending,
		FulfillmentStatus: entity.FulfillmentNew,
		StripeSessionID:   "cs_done",
		CourseID:          fx.course.ID,
		Items:             []entity.OrderItem{{ItemName: "Burger", Qty: 2, UnitPrice: 1200}},
	}
	require.NoError(t, fx.db.Create(o).Error)
	return o
}

// signStripe produces the t=...,v1=... header the verifier expects: an
// HMAC-SHA256 of "<timestamp>.<payload>" under the endpoint secret.
func signStripe(secret string, payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func completedPayload(orderID, courseID uint) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_done",
			"metadata": {"order_id": "%d", "course_id": "%d"},
			"customer_details": {"name": "Pat Golfer", "email": "pat@example.com"}
		}}
	}`, stripe.APIVersion, orderID, courseID))
}

func (fx *webhookFixture) post(payload []byte, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", sig)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func TestWebhookFinalizesPaidOrder(t *testing.T) {
	fx := newWebhookFixture(t)
	o := fx.pendingOrder(t)

	payload := completedPayload(o.ID, fx.course.ID)
	w := fx.post(payload, signStripe(testWebhookSecret, payload))
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh entity.Order
	require.NoError(t, fx.db.First(&fresh, o.ID).Error)
	assert.Equal(t, entity.PaymentPaid, fresh.Status)
	assert.Equal(t, entity.FulfillmentNew, fresh.FulfillmentStatus)
	assert.Equal(t, "Pat Golfer", fresh.CustomerName)
	assert.Equal(t, "pat@example.com", fresh.CustomerEmail)

	// dashboards hear about the paid order
	require.Len(t, fx.events.updated, 1)
	assert.Equal(t, o.ID, fx.events.updated[0].ID)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	fx := newWebhookFixture(t)
	o := fx.pendingOrder(t)

	payload := completedPayload(o.ID, fx.course.ID)
	w := fx.post(payload, signStripe("whsec_wrong_secret", payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fresh entity.Order
	require.NoError(t, fx.db.First(&fresh, o.ID).Error)
	assert.Equal(t, entity.PaymentPending, fresh.Status)
	assert.Empty(t, fx.events.updated)
}

func TestWebhookAcknowledgesOtherEventTypes(t *testing.T) {
	fx := newWebhookFixture(t)
	o := fx.pendingOrder(t)

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"api_version": %q,
		"type": "payment_intent.created",
		"data": {"object": {}}
	}`, stripe.APIVersion))
	w := fx.post(payload, signStripe(testWebhookSecret, payload))

	// 200 so the provider stops retrying, but nothing is finalized
	assert.Equal(t, http.StatusOK, w.Code)
	var fresh entity.Order
	require.NoError(t, fx.db.First(&fresh, o.ID).Error)
	assert.Equal(t, entity.PaymentPending, fresh.Status)
	assert.Empty(t, fx.events.updated)
}

func TestWebhookRequiresOrderIDMetadata(t *testing.T) {
	fx := newWebhookFixture(t)
	fx.pendingOrder(t)

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_done",
			"metadata": {"course_id": "1"},
			"customer_details": {"name": "Pat Golfer", "email": "pat@example.com"}
		}}
	}`, stripe.APIVersion))
	w := fx.post(payload, signStripe(testWebhookSecret, payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fx.events.updated)
}
