package entity

// FulfillmentStatus is the lifecycle stage of an order on the staff side.
// Stored as the literal string so dashboards and realtime payloads see the
// same value the database holds.
type FulfillmentStatus string

const (
	FulfillmentNew       FulfillmentStatus = "new"
	FulfillmentPreparing FulfillmentStatus = "preparing"
	FulfillmentOnTheWay  FulfillmentStatus = "on_the_way"
	FulfillmentDelivered FulfillmentStatus = "delivered"
	FulfillmentCancelled FulfillmentStatus = "cancelled"
)

// position along the delivery path new → preparing → on_the_way → delivered;
// cancelled sits outside it
var fulfillmentOrder = map[FulfillmentStatus]int{
	FulfillmentNew:       0,
	FulfillmentPreparing: 1,
	FulfillmentOnTheWay:  2,
	FulfillmentDelivered: 3,
}

func (s FulfillmentStatus) Valid() bool {
	if s == FulfillmentCancelled {
		return true
	}
	_, ok := fulfillmentOrder[s]
	return ok
}

// Terminal reports whether no further transition may leave s.
func (s FulfillmentStatus) Terminal() bool {
	return s == FulfillmentDelivered || s == FulfillmentCancelled
}

// CanTransition reports whether s → to is allowed: any forward move along the
// delivery path (a walk-up order may go straight from new to delivered), or
// cancelling a non-terminal order. Backward moves and transitions out of a
// terminal state are not.
func (s FulfillmentStatus) CanTransition(to FulfillmentStatus) bool {
	if s.Terminal() || !to.Valid() {
		return false
	}
	if to == FulfillmentCancelled {
		return true
	}
	return fulfillmentOrder[to] > fulfillmentOrder[s]
}
