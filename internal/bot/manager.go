package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleManagerAction processes the confirm/reject buttons posted to the
// manager channel. Two managers can press at once; the backend's conditional
// status update lets exactly one win, the loser gets a conflict and the
// message is refreshed with the real outcome.
func (d *Driver) handleManagerAction(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	confirm := strings.HasPrefix(cb.Data, cbManagerConfirm)

	var orderID int64
	var err error
	if confirm {
		orderID, err = strconv.ParseInt(strings.TrimPrefix(cb.Data, cbManagerConfirm), 10, 64)
	} else {
		orderID, err = strconv.ParseInt(strings.TrimPrefix(cb.Data, cbManagerReject), 10, 64)
	}
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}

	actorID := cb.From.ID
	req := &client.UpdateStatusRequest{ActorTelegramID: &actorID}
	if confirm {
		req.Status = "confirmed"
	} else {
		req.Status = "cancelled"
		req.CancellationReason = "rejected by manager"
	}

	if err := d.backend.UpdateOrderStatus(ctx, orderID, req); err != nil {
		logger.L().Info("manager action lost",
			zap.Int64("order_id", orderID),
			zap.Int64("manager_id", actorID),
			zap.Error(err))
		d.answerCallback(cb.ID, "Замовлення вже оброблено іншим менеджером")
		d.refreshManagerMessage(ctx, cb, orderID)
		return
	}

	if confirm {
		d.answerCallback(cb.ID, "Підтверджено ✅")
	} else {
		d.answerCallback(cb.ID, "Відхилено ❌")
	}
	d.refreshManagerMessage(ctx, cb, orderID)
	d.notifyCustomer(ctx, orderID)
}

// refreshManagerMessage replaces the buttons with the order's final status.
func (d *Driver) refreshManagerMessage(ctx context.Context, cb *tgbotapi.CallbackQuery, orderID int64) {
	if cb.Message == nil {
		return
	}

	order, err := d.backend.GetOrder(ctx, orderID)
	if err != nil {
		return
	}

	text := fmt.Sprintf("%s\n\nСтатус: %s (менеджер: %s)",
		cb.Message.Text, statusLabel(order.Status), cb.From.FirstName)
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	d.send(edit)
}

// notifyCustomer tells the order's owner about the manager decision.
func (d *Driver) notifyCustomer(ctx context.Context, orderID int64) {
	order, err := d.backend.GetOrder(ctx, orderID)
	if err != nil {
		return
	}

	if order.UserTelegramID == 0 {
		logger.L().Debug("order has no telegram owner", zap.Int64("order_id", orderID))
		return
	}

	var text string
	switch order.Status {
	case "confirmed":
		text = confirmedOrderText(order)
	case "cancelled":
		text = fmt.Sprintf("На жаль, замовлення №%s відхилено. %s",
			order.OrderCode, order.CancellationReason)
	default:
		return
	}

	d.send(tgbotapi.NewMessage(order.UserTelegramID, text))
}

// confirmedOrderText builds the pickup message with the code and where to go.
func confirmedOrderText(order *client.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Замовлення №%s підтверджено! 👨‍🍳\n", order.OrderCode)
	if order.LocationName != "" {
		fmt.Fprintf(&b, "Заклад: %s", order.LocationName)
		if order.LocationAddress != "" {
			fmt.Fprintf(&b, ", %s", order.LocationAddress)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Покажіть код %s при отриманні.", order.OrderCode)
	return b.String()
}
