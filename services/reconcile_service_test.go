package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
)

func newReconcileFixture(t *testing.T) (*ReconcileService, *CartService, *entity.Course) {
	t.Helper()
	db := newTestDB(t)
	course := createCourse(t, db)
	cartRepo := repository.NewCartRepository(db)
	svc := NewReconcileService(db, repository.NewOrderRepository(db), cartRepo,
		5*time.Millisecond, 3)
	carts := NewCartService(db, cartRepo, repository.NewMenuRepository(db))
	return svc, carts, course
}

func TestLookupMissingSessionIDIsTerminal(t *testing.T) {
	svc, _, _ := newReconcileFixture(t)

	start := time.Now()
	_, err := svc.Lookup(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingSessionID)
	assert.Less(t, time.Since(start), svc.RetryDelay, "must fail without waiting out a retry")
}

func TestLookupFindsOrderImmediately(t *testing.T) {
	svc, _, course := newReconcileFixture(t)
	o := createOrder(t, svc.DB, course.ID, entity.FulfillmentNew)
	require.NoError(t, svc.OrderRepo.SetSessionID(o.ID, "cs_ready"))

	found, err := svc.Lookup(context.Background(), "cs_ready", "")
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.ID)
	assert.NotEmpty(t, found.Items)
}

func TestLookupRetriesUntilBackfillLands(t *testing.T) {
	svc, _, course := newReconcileFixture(t)
	o := createOrder(t, svc.DB, course.ID, entity.FulfillmentNew)

	// backfill the session id after the first attempt has already missed
	go func() {
		time.Sleep(8 * time.Millisecond)
		_ = svc.OrderRepo.SetSessionID(o.ID, "cs_late")
	}()

	found, err := svc.Lookup(context.Background(), "cs_late", "")
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.ID)
}

func TestLookupGivesUpAfterMaxAttempts(t *testing.T) {
	svc, _, _ := newReconcileFixture(t)

	_, err := svc.Lookup(context.Background(), "cs_never", "")
	assert.ErrorIs(t, err, ErrOrderNotReady)
}

func TestLookupHonoursContextCancellation(t *testing.T) {
	svc, _, _ := newReconcileFixture(t)
	svc.RetryDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Lookup(ctx, "cs_never", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookupClearsCartOnSuccess(t *testing.T) {
	svc, carts, course := newReconcileFixture(t)
	item := createMenuItem(t, svc.DB, course.ID, "Burger", 1200)
	require.NoError(t, carts.Add("tok-1", course.ID, &AddToCartIn{MenuItemID: item.ID, Qty: 2}))

	o := createOrder(t, svc.DB, course.ID, entity.FulfillmentNew)
	require.NoError(t, svc.OrderRepo.SetSessionID(o.ID, "cs_done"))

	_, err := svc.Lookup(context.Background(), "cs_done", "tok-1")
	require.NoError(t, err)

	cart, subtotal, err := carts.Get("tok-1", course.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "cart must be emptied after a confirmed order")
	assert.Zero(t, subtotal)

	// a second lookup with the same token is a no-op
	_, err = svc.Lookup(context.Background(), "cs_done", "tok-1")
	assert.NoError(t, err)
}
