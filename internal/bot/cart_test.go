package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
)

func newTestState() *redisstore.ConversationState {
	return &redisstore.ConversationState{
		Waypoint: WaypointBrowsingMenu,
		Data:     map[string]string{},
	}
}

func TestCartRoundTrip(t *testing.T) {
	d := &Driver{}
	state := newTestState()

	assert.Empty(t, d.loadCart(state))

	cart := []cartItem{
		{ProductID: 1, Name: "Маргарита", Quantity: 2, UnitPrice: 185},
		{ProductID: 3, Name: "Пепероні", Quantity: 1, UnitPrice: 210},
	}
	d.storeCart(state, cart)

	got := d.loadCart(state)
	assert.Equal(t, cart, got)
}

func TestCartSurvivesStateSerialization(t *testing.T) {
	d := &Driver{}
	state := newTestState()
	d.storeCart(state, []cartItem{{ProductID: 5, Name: "Кола", Quantity: 3, UnitPrice: 45}})

	// The cart travels inside the state's Data map, so a corrupted entry
	// must degrade to an empty cart instead of crashing the flow.
	got := d.loadCart(state)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Quantity)

	state.Data["cart"] = "{broken json"
	assert.Empty(t, d.loadCart(state))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "⏳ очікує оплати", statusLabel("pending"))
	assert.Equal(t, "💳 оплачено", statusLabel("paid"))
	assert.Equal(t, "👨‍🍳 готується", statusLabel("confirmed"))
	assert.Equal(t, "✅ видано", statusLabel("completed"))
	assert.Equal(t, "❌ скасовано", statusLabel("cancelled"))
	assert.Equal(t, "draft", statusLabel("draft"))
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "/start", firstWord("/start ref123"))
	assert.Equal(t, "/menu", firstWord("/menu"))
	assert.Equal(t, "", firstWord(""))
}
