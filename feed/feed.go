// Package feed implements the staff-dashboard side of the realtime order
// stream: a most-recent-first order list, a new-order alert queue, and an
// unread counter.
package feed

import (
	"sync"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

type Feed struct {
	mu sync.Mutex

	orders []entity.Order // newest first

	// One alert overlay shows at a time; inserts arriving while one is up
	// queue FIFO and surface as each overlay is dismissed.
	overlay *entity.Order
	queue   []entity.Order

	unread int
}

func New() *Feed { return &Feed{} }

// Apply folds one realtime event into the feed.
func (f *Feed) Apply(ev ws.OrderEvent) {
	if ev.Order == nil {
		return
	}
	switch ev.Type {
	case ws.EventInsert:
		f.applyInsert(*ev.Order)
	case ws.EventUpdate:
		f.applyUpdate(*ev.Order)
	}
}

func (f *Feed) applyInsert(o entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// prepend: arrival order is preserved at the head
	f.orders = append([]entity.Order{o}, f.orders...)

	if f.overlay == nil {
		f.overlay = &o
	} else {
		f.queue = append(f.queue, o)
	}

	// counts every insert, whatever the overlay is doing
	f.unread++
}

// applyUpdate replaces the matching order in place: the store's value wins
// over anything applied locally.
func (f *Feed) applyUpdate(o entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.orders {
		if f.orders[i].ID == o.ID {
			f.orders[i] = o
			return
		}
	}
}

// Overlay returns the order currently shown as an alert, nil when none.
func (f *Feed) Overlay() *entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.overlay == nil {
		return nil
	}
	o := *f.overlay
	return &o
}

// Dismiss closes the current overlay and promotes the oldest queued order,
// returning the newly shown one (nil when the queue is empty).
func (f *Feed) Dismiss() *entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.overlay = nil
	if len(f.queue) > 0 {
		next := f.queue[0]
		f.queue = f.queue[1:]
		f.overlay = &next
		o := next
		return &o
	}
	return nil
}

func (f *Feed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

// MarkViewed resets the unread counter. Only an explicit viewed action does
// this — not time, not overlay dismissal.
func (f *Feed) MarkViewed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unread = 0
}

// Orders returns a copy of the list, newest first.
func (f *Feed) Orders() []entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

// Replace swaps in a freshly fetched list (manual refresh after a dropped
// subscription; there is no event backfill). Overlay state and the unread
// counter are left alone.
func (f *Feed) Replace(orders []entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = make([]entity.Order, len(orders))
	copy(f.orders, orders)
}
