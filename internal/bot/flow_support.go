package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (d *Driver) startSupportFlow(ctx context.Context, chatID, telegramID int64, state *redisstore.ConversationState) {
	if state.Data["ticket_id"] == "" {
		state.Data["ticket_id"] = fmt.Sprintf("T-%d-%d", telegramID, time.Now().Unix())
	}
	state.Waypoint = WaypointSupportChat
	d.saveState(ctx, telegramID, state)

	d.send(tgbotapi.NewMessage(chatID,
		"💬 Напишіть ваше питання, менеджер відповість найближчим часом.\n/cancel — вийти з чату підтримки."))
}

func (d *Driver) handleSupportMessage(ctx context.Context, msg *tgbotapi.Message, state *redisstore.ConversationState) {
	ticketID := state.Data["ticket_id"]

	err := d.backend.LogSupportMessage(ctx, &client.SupportMessageRequest{
		TelegramID:  msg.From.ID,
		TicketID:    ticketID,
		MessageText: msg.Text,
		SenderType:  "user",
		MessageType: "text",
	})
	if err != nil {
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Не вдалося надіслати повідомлення, спробуйте ще раз."))
		return
	}

	// Relay to the manager channel so staff can reply from there.
	if d.managerChannelID != 0 {
		relay := tgbotapi.NewMessage(d.managerChannelID, fmt.Sprintf(
			"💬 Підтримка [%s]\nВід: %s (id %d)\n\n%s",
			ticketID, msg.From.FirstName, msg.From.ID, msg.Text))
		d.send(relay)
	}

	d.send(tgbotapi.NewMessage(msg.Chat.ID, "Повідомлення передано менеджеру ✅"))
}
