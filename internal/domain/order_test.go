package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"draft to pending", StatusDraft, StatusPending, true},
		{"draft to cancelled", StatusDraft, StatusCancelled, true},
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"paid to confirmed", StatusPaid, StatusConfirmed, true},
		{"paid to cancelled", StatusPaid, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},

		{"no skipping payment", StatusPending, StatusConfirmed, false},
		{"no skipping confirmation", StatusPaid, StatusCompleted, false},
		{"no going backwards", StatusPaid, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"no self transition", StatusPending, StatusPending, false},
		{"unknown from", OrderStatus("bogus"), StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusDraft, StatusPending, StatusPaid, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus(OrderStatus("delivered")))
	assert.False(t, ValidStatus(OrderStatus("")))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: 150, OptionsPrice: 25}
	assert.InDelta(t, 475.0, item.LineTotal(), 0.001)

	noOptions := OrderItem{Quantity: 2, UnitPrice: 99.50}
	assert.InDelta(t, 199.0, noOptions.LineTotal(), 0.001)
}

func TestEffectivePrice(t *testing.T) {
	product := Product{BasePrice: 200}

	assert.InDelta(t, 200.0, EffectivePrice(product, nil), 0.001)

	override := 180.0
	lp := &LocationProduct{PriceOverride: &override}
	assert.InDelta(t, 180.0, EffectivePrice(product, lp), 0.001)

	noOverride := &LocationProduct{}
	assert.InDelta(t, 200.0, EffectivePrice(product, noOverride), 0.001)
}
