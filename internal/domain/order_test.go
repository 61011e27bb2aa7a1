package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, st := range OrderStatuses {
		assert.True(t, st.Valid(), string(st))
	}

	assert.False(t, OrderStatus("Shipped").Valid())
	assert.False(t, OrderStatus("pending").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
	assert.False(t, OrderStatusDispatched.Terminal())
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", Size: "M", Quantity: 2, Price: 24900},
		{ProductID: "p2", Size: "L", Quantity: 1, Price: 18500},
		{ProductID: "p3", Size: "XS", Quantity: 3, Price: 999},
	}

	total, err := ItemsTotal(items)
	require.NoError(t, err)
	assert.Equal(t, int64(49800+18500+2997), total)

	total, err = ItemsTotal(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestItemsTotal_LargeQuantities(t *testing.T) {
	total, err := ItemsTotal([]OrderItem{{Quantity: 1_000_000, Price: 3_000_000}})

	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000_000_000), total)
}

func TestItemsTotal_Overflow(t *testing.T) {
	tests := []struct {
		name      string
		items     []OrderItem
		wantIndex int
	}{
		{
			name:      "line amount wraps",
			items:     []OrderItem{{Quantity: 4, Price: 1 << 62}, {Quantity: 1, Price: 24900}},
			wantIndex: 0,
		},
		{
			name:      "running sum wraps",
			items:     []OrderItem{{Quantity: 1, Price: 24900}, {Quantity: 1, Price: math.MaxInt64 - 100}, {Quantity: 1, Price: 24900}},
			wantIndex: 2,
		},
		{
			name:      "negative price",
			items:     []OrderItem{{Quantity: 1, Price: -5}},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ItemsTotal(tt.items)

			var overflow *TotalOverflowError
			require.ErrorAs(t, err, &overflow)
			assert.Equal(t, tt.wantIndex, overflow.Index)
		})
	}
}

func TestOrder_ContactNumber(t *testing.T) {
	order := Order{Phone: "9876543210"}
	assert.Equal(t, "9876543210", order.ContactNumber())

	order.WhatsApp = strPtr("")
	assert.Equal(t, "9876543210", order.ContactNumber())

	order.WhatsApp = strPtr("9123456780")
	assert.Equal(t, "9123456780", order.ContactNumber())
}
