package domain

import (
	"fmt"
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusDispatched OrderStatus = "Dispatched"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses is in fulfillment order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusDispatched,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

type Order struct {
	ID        string
	OrderCode string
	Status    OrderStatus
	FullName  string
	Phone     string
	WhatsApp  *string
	Address   string
	City      string
	State     string
	Pincode   string
	Notes     *string
	Total     int64
	CreatedAt time.Time
	Items     []OrderItem
}

type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Size        string
	Quantity    int
	Price       int64
}

func (i OrderItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// TotalOverflowError names the first line whose amount pushes the order
// total past int64.
type TotalOverflowError struct {
	Index int
}

func (e *TotalOverflowError) Error() string {
	return fmt.Sprintf("order total overflows at line %d", e.Index)
}

// ItemsTotal is the authoritative order total for a set of line items.
func ItemsTotal(items []OrderItem) (int64, error) {
	var total int64
	for i, item := range items {
		qty := int64(item.Quantity)
		if item.Price < 0 || qty < 0 || (qty != 0 && item.Price > math.MaxInt64/qty) {
			return 0, &TotalOverflowError{Index: i}
		}
		line := item.Price * qty
		if total > math.MaxInt64-line {
			return 0, &TotalOverflowError{Index: i}
		}
		total += line
	}
	return total, nil
}

// ContactNumber prefers the WhatsApp number when one was given.
func (o Order) ContactNumber() string {
	if o.WhatsApp != nil && *o.WhatsApp != "" {
		return *o.WhatsApp
	}
	return o.Phone
}

type OrderFilter struct {
	Search string
	Status OrderStatus
}

type StatusTotal struct {
	Status OrderStatus
	Count  int
	Sum    int64
}
