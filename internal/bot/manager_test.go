package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
)

func TestConfirmedOrderTextIncludesLocation(t *testing.T) {
	text := confirmedOrderText(&client.Order{
		OrderCode:       "482913",
		LocationName:    "PizzaMat Центр",
		LocationAddress: "вул. Соборна, 12",
	})

	assert.Contains(t, text, "№482913")
	assert.Contains(t, text, "PizzaMat Центр")
	assert.Contains(t, text, "вул. Соборна, 12")
	assert.Contains(t, text, "Покажіть код 482913")
}

func TestConfirmedOrderTextWithoutLocation(t *testing.T) {
	// A pickup order always has a location, but the backend may omit it
	// from an older order; the message still has to carry the code.
	text := confirmedOrderText(&client.Order{OrderCode: "100200"})

	assert.Contains(t, text, "№100200")
	assert.Contains(t, text, "Покажіть код 100200")
	assert.NotContains(t, text, "Заклад")
}
