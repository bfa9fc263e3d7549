package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

func order(id uint, status entity.FulfillmentStatus) *entity.Order {
	return &entity.Order{
		Model:             gorm.Model{ID: id},
		FulfillmentStatus: status,
		TotalPrice:        1200,
	}
}

func insert(f *Feed, id uint) {
	f.Apply(ws.OrderEvent{Type: ws.EventInsert, Order: order(id, entity.FulfillmentNew)})
}

func TestFeedKeepsArrivalOrderNewestFirst(t *testing.T) {
	f := New()
	insert(f, 1)
	insert(f, 2)
	insert(f, 3)

	got := f.Orders()
	require.Len(t, got, 3)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
	assert.Equal(t, uint(1), got[2].ID)
}

func TestFeedOverlayQueuesWhileOneIsShowing(t *testing.T) {
	f := New()
	insert(f, 1)
	insert(f, 2)
	insert(f, 3)

	// the first arrival holds the overlay; the rest wait their turn
	require.NotNil(t, f.Overlay())
	assert.Equal(t, uint(1), f.Overlay().ID)

	next := f.Dismiss()
	require.NotNil(t, next)
	assert.Equal(t, uint(2), next.ID)

	next = f.Dismiss()
	require.NotNil(t, next)
	assert.Equal(t, uint(3), next.ID)

	assert.Nil(t, f.Dismiss())
	assert.Nil(t, f.Overlay())
}

func TestFeedUnreadCountsEveryInsert(t *testing.T) {
	f := New()
	insert(f, 1)
	insert(f, 2)

	// dismissing overlays does not touch the counter
	f.Dismiss()
	f.Dismiss()
	assert.Equal(t, 2, f.Unread())

	f.MarkViewed()
	assert.Zero(t, f.Unread())

	insert(f, 3)
	assert.Equal(t, 1, f.Unread())
}

func TestFeedUpdateReplacesInPlace(t *testing.T) {
	f := New()
	insert(f, 1)
	insert(f, 2)

	f.Apply(ws.OrderEvent{Type: ws.EventUpdate, Order: order(1, entity.FulfillmentPreparing)})

	got := f.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(1), got[1].ID)
	assert.Equal(t, entity.FulfillmentPreparing, got[1].FulfillmentStatus)
}

func TestFeedUpdateForUnknownOrderIsIgnored(t *testing.T) {
	f := New()
	insert(f, 1)

	f.Apply(ws.OrderEvent{Type: ws.EventUpdate, Order: order(99, entity.FulfillmentDelivered)})

	assert.Len(t, f.Orders(), 1)
	assert.Equal(t, uint(1), f.Orders()[0].ID)
}

func TestFeedReplaceSwapsListOnly(t *testing.T) {
	f := New()
	insert(f, 1)
	f.MarkViewed()
	insert(f, 2) // queued behind the overlay for order 1

	f.Replace([]entity.Order{*order(7, entity.FulfillmentNew), *order(6, entity.FulfillmentNew)})

	got := f.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, uint(7), got[0].ID)

	// overlay and unread are untouched by a refresh
	require.NotNil(t, f.Overlay())
	assert.Equal(t, uint(1), f.Overlay().ID)
	assert.Equal(t, 1, f.Unread())
}

func TestFeedIgnoresEmptyEvents(t *testing.T) {
	f := New()
	f.Apply(ws.OrderEvent{Type: ws.EventInsert})
	assert.Empty(t, f.Orders())
	assert.Zero(t, f.Unread())
}
