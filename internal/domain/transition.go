package domain

// TransitionPolicy decides whether an operator may move an order from one
// status to another. Both statuses are already known to be valid.
type TransitionPolicy interface {
	Allowed(from, to OrderStatus) bool
}

// PermissiveTransitions lets operators assign any status from any status.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allowed(from, to OrderStatus) bool {
	return true
}

// StrictTransitions follows the fulfillment path: Pending -> Confirmed ->
// Dispatched -> Delivered, with Cancelled reachable from any non-terminal
// state. Re-assigning the current status is always allowed.
type StrictTransitions struct{}

var strictTable = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusDelivered, OrderStatusCancelled},
}

func (StrictTransitions) Allowed(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range strictTable[from] {
		if next == to {
			return true
		}
	}
	return false
}
