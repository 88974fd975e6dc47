package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type cartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (d *Driver) startMenuFlow(ctx context.Context, chatID, telegramID int64, state *redisstore.ConversationState) {
	if _, err := d.backend.GetUser(ctx, telegramID); err != nil {
		d.send(tgbotapi.NewMessage(chatID, "Спершу зареєструйтесь через /start"))
		return
	}

	cities, err := d.backend.ListCities(ctx)
	if err != nil || len(cities) == 0 {
		d.send(tgbotapi.NewMessage(chatID, "Меню тимчасово недоступне."))
		return
	}

	state.Waypoint = WaypointChoosingCity
	d.saveState(ctx, telegramID, state)

	reply := tgbotapi.NewMessage(chatID, "Оберіть місто:")
	reply.ReplyMarkup = citiesKeyboard(cities, cbCity)
	d.send(reply)
}

func (d *Driver) handleCityChosen(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	cityID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbCity), 10, 64)
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}

	locations, err := d.backend.ListLocations(ctx, cityID)
	if err != nil || len(locations) == 0 {
		d.answerCallback(cb.ID, "У цьому місті поки немає точок")
		return
	}

	state.Waypoint = WaypointChoosingStore
	state.Data["city_id"] = strconv.FormatInt(cityID, 10)
	d.saveState(ctx, cb.From.ID, state)
	d.answerCallback(cb.ID, "")

	reply := tgbotapi.NewMessage(cb.Message.Chat.ID, "Оберіть точку видачі:")
	reply.ReplyMarkup = locationsKeyboard(locations)
	d.send(reply)
}

func (d *Driver) handleLocationChosen(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	locationID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbLocation), 10, 64)
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}

	categories, err := d.backend.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		d.answerCallback(cb.ID, "Меню тимчасово недоступне")
		return
	}

	state.Waypoint = WaypointBrowsingMenu
	state.Data["location_id"] = strconv.FormatInt(locationID, 10)
	d.saveState(ctx, cb.From.ID, state)
	d.answerCallback(cb.ID, "")

	reply := tgbotapi.NewMessage(cb.Message.Chat.ID, "Оберіть категорію:")
	reply.ReplyMarkup = categoriesKeyboard(categories)
	d.send(reply)
}

func (d *Driver) handleCategoryChosen(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	categoryID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbCategory), 10, 64)
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}
	locationID, _ := strconv.ParseInt(state.Data["location_id"], 10, 64)

	products, err := d.backend.ListMenu(ctx, locationID, categoryID)
	if err != nil || len(products) == 0 {
		d.answerCallback(cb.ID, "У цій категорії поки порожньо")
		return
	}

	// Prices are cached in the conversation state so add-to-cart does not
	// refetch the menu.
	cache := make(map[string]cartItem, len(products))
	for _, p := range products {
		cache[strconv.FormatInt(p.ID, 10)] = cartItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
		}
	}
	raw, _ := json.Marshal(cache)
	state.Data["menu_cache"] = string(raw)
	d.saveState(ctx, cb.From.ID, state)
	d.answerCallback(cb.ID, "")

	reply := tgbotapi.NewMessage(cb.Message.Chat.ID, "Додайте позиції до кошика:")
	reply.ReplyMarkup = productsKeyboard(products)
	d.send(reply)
}

func (d *Driver) handleAddToCart(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	productKey := strings.TrimPrefix(cb.Data, cbAddProduct)

	var cache map[string]cartItem
	if err := json.Unmarshal([]byte(state.Data["menu_cache"]), &cache); err != nil {
		d.answerCallback(cb.ID, "Оберіть категорію заново")
		return
	}
	item, ok := cache[productKey]
	if !ok {
		d.answerCallback(cb.ID, "Позиція недоступна")
		return
	}

	cart := d.loadCart(state)
	merged := false
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = 1
		cart = append(cart, item)
	}
	d.storeCart(state, cart)
	d.saveState(ctx, cb.From.ID, state)

	d.answerCallback(cb.ID, item.Name+" додано 🛒")
}

func (d *Driver) loadCart(state *redisstore.ConversationState) []cartItem {
	var cart []cartItem
	if raw, ok := state.Data["cart"]; ok {
		_ = json.Unmarshal([]byte(raw), &cart)
	}
	return cart
}

func (d *Driver) storeCart(state *redisstore.ConversationState, cart []cartItem) {
	raw, _ := json.Marshal(cart)
	state.Data["cart"] = string(raw)
}

func (d *Driver) showCart(ctx context.Context, chatID int64, state *redisstore.ConversationState) {
	cart := d.loadCart(state)
	if len(cart) == 0 {
		d.send(tgbotapi.NewMessage(chatID, "Кошик порожній. Відкрийте 🍕 Меню, щоб додати позиції."))
		return
	}

	var b strings.Builder
	b.WriteString("🛒 Ваш кошик:\n\n")
	var total float64
	for _, item := range cart {
		line := float64(item.Quantity) * item.UnitPrice
		total += line
		fmt.Fprintf(&b, "• %s × %d = %.0f грн\n", item.Name, item.Quantity, line)
	}
	fmt.Fprintf(&b, "\nРазом: %.0f грн", total)

	reply := tgbotapi.NewMessage(chatID, b.String())
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Оформити", cbCheckout),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистити", cbClearCart),
		),
	)
	d.send(reply)
}

func (d *Driver) handleClearCart(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	delete(state.Data, "cart")
	d.saveState(ctx, cb.From.ID, state)
	d.answerCallback(cb.ID, "Кошик очищено")
}

func (d *Driver) handleCheckout(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	cart := d.loadCart(state)
	if len(cart) == 0 {
		d.answerCallback(cb.ID, "Кошик порожній")
		return
	}
	locationID, err := strconv.ParseInt(state.Data["location_id"], 10, 64)
	if err != nil || locationID == 0 {
		d.answerCallback(cb.ID, "Оберіть точку видачі через 🍕 Меню")
		return
	}

	req := &client.CreateOrderRequest{
		TelegramID: cb.From.ID,
		LocationID: locationID,
	}
	for _, item := range cart {
		req.Items = append(req.Items, client.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		req.TotalAmount += float64(item.Quantity) * item.UnitPrice
	}

	order, err := d.backend.CreateOrder(ctx, req)
	if err != nil {
		logger.L().Warn("order creation failed", zap.Int64("telegram_id", cb.From.ID), zap.Error(err))
		d.answerCallback(cb.ID, "Не вдалося створити замовлення")
		return
	}

	delete(state.Data, "cart")
	state.Data["pending_order_id"] = strconv.FormatInt(order.ID, 10)
	state.Waypoint = WaypointAwaitingReceipt
	d.saveState(ctx, cb.From.ID, state)
	d.answerCallback(cb.ID, "")

	text := fmt.Sprintf(
		"Замовлення №%s створено! 📦\nСума до сплати: %.0f %s\n\n"+
			"Оплатіть замовлення та надішліть фото чека у цей чат.",
		order.OrderCode, order.TotalAmount, order.Currency)
	reply := tgbotapi.NewMessage(cb.Message.Chat.ID, text)
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Скасувати", cbCancelOrder+strconv.FormatInt(order.ID, 10)),
		),
	)
	d.send(reply)
}

func (d *Driver) handleCancelOrder(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	orderID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbCancelOrder), 10, 64)
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}

	err = d.backend.UpdateOrderStatus(ctx, orderID, &client.UpdateStatusRequest{
		Status:             "cancelled",
		CancellationReason: "cancelled by customer",
	})
	if err != nil {
		d.answerCallback(cb.ID, "Замовлення вже не можна скасувати")
		return
	}

	d.resetState(ctx, cb.From.ID)
	d.answerCallback(cb.ID, "Замовлення скасовано")
	d.send(tgbotapi.NewMessage(cb.Message.Chat.ID, "Замовлення скасовано ❌"))
}

func (d *Driver) handleReceiptUpload(ctx context.Context, msg *tgbotapi.Message, state *redisstore.ConversationState) {
	orderID, err := strconv.ParseInt(state.Data["pending_order_id"], 10, 64)
	if err != nil || orderID == 0 {
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Немає замовлення, що очікує оплати."))
		return
	}

	fileID := ""
	if len(msg.Photo) > 0 {
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	} else if msg.Document != nil {
		fileID = msg.Document.FileID
	}
	if fileID == "" {
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Надішліть чек фотографією або файлом."))
		return
	}

	image, err := d.downloadFile(fileID)
	if err != nil {
		logger.L().Warn("receipt download failed", zap.Int64("order_id", orderID), zap.Error(err))
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Не вдалося отримати файл, спробуйте ще раз."))
		return
	}

	receipt, err := d.backend.SubmitReceipt(ctx, orderID, image, 0)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			d.send(tgbotapi.NewMessage(msg.Chat.ID,
				"Цей чек уже використовувався. Надішліть, будь ласка, чек саме за це замовлення."))
			return
		}
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Не вдалося завантажити чек, спробуйте ще раз."))
		return
	}

	state.Waypoint = WaypointIdle
	delete(state.Data, "pending_order_id")
	d.saveState(ctx, msg.From.ID, state)

	reply := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(
		"Чек за замовленням №%s отримано ✅\nПеревіряємо оплату, це займе кілька хвилин.",
		receipt.OrderCode))
	reply.ReplyMarkup = mainMenuKeyboard()
	d.send(reply)
}

func (d *Driver) downloadFile(fileID string) ([]byte, error) {
	url, err := d.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (d *Driver) showOrders(ctx context.Context, chatID, telegramID int64) {
	orders, err := d.backend.ListUserOrders(ctx, telegramID, 10)
	if err != nil {
		d.send(tgbotapi.NewMessage(chatID, "Не вдалося отримати замовлення."))
		return
	}
	if len(orders) == 0 {
		d.send(tgbotapi.NewMessage(chatID, "У вас поки немає замовлень."))
		return
	}

	var b strings.Builder
	b.WriteString("📋 Ваші замовлення:\n\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "№%s — %.0f %s — %s\n",
			order.OrderCode, order.TotalAmount, order.Currency, statusLabel(order.Status))
	}
	d.send(tgbotapi.NewMessage(chatID, b.String()))
}

func statusLabel(status string) string {
	switch status {
	case "pending":
		return "⏳ очікує оплати"
	case "paid":
		return "💳 оплачено"
	case "confirmed":
		return "👨‍🍳 готується"
	case "completed":
		return "✅ видано"
	case "cancelled":
		return "❌ скасовано"
	}
	return status
}
