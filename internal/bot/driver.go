package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Driver runs the conversational flow. All state lives in Redis and all data
// comes from the backend API, so the process itself is disposable.
type Driver struct {
	api      *tgbotapi.BotAPI
	backend  *client.APIClient
	sessions *redisstore.SessionStore

	// Telegram allows ~30 messages per second per bot.
	sendLimiter *rate.Limiter

	managerChannelID int64
}

func NewDriver(api *tgbotapi.BotAPI, backend *client.APIClient, sessions *redisstore.SessionStore, managerChannelID int64) *Driver {
	return &Driver{
		api:              api,
		backend:          backend,
		sessions:         sessions,
		sendLimiter:      rate.NewLimiter(rate.Limit(25), 5),
		managerChannelID: managerChannelID,
	}
}

func (d *Driver) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := d.api.GetUpdatesChan(updateConfig)
	logger.L().Info("bot update loop started", zap.String("username", d.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			d.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errors.New("update channel closed")
			}
			d.handleUpdate(ctx, update)
		}
	}
}

func (d *Driver) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error("panic in update handler", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	}
}

func (d *Driver) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := msg.From.ID

	d.logInteraction(ctx, msg)

	if msg.IsCommand() {
		d.handleCommand(ctx, msg)
		return
	}

	state := d.state(ctx, telegramID)

	if msg.Contact != nil {
		d.handleContact(ctx, msg, state)
		return
	}

	if state.Waypoint == WaypointAwaitingName {
		d.handleNameEntered(ctx, msg, state)
		return
	}

	if len(msg.Photo) > 0 || msg.Document != nil {
		if state.Waypoint == WaypointAwaitingReceipt {
			d.handleReceiptUpload(ctx, msg, state)
			return
		}
	}

	switch msg.Text {
	case "🍕 Меню":
		d.startMenuFlow(ctx, msg.Chat.ID, telegramID, state)
	case "🛒 Кошик":
		d.showCart(ctx, msg.Chat.ID, state)
	case "📋 Мої замовлення":
		d.showOrders(ctx, msg.Chat.ID, telegramID)
	case "💬 Підтримка":
		d.startSupportFlow(ctx, msg.Chat.ID, telegramID, state)
	default:
		if state.Waypoint == WaypointSupportChat {
			d.handleSupportMessage(ctx, msg, state)
			return
		}
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Оберіть дію з меню 👇"))
	}
}

func (d *Driver) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		d.handleStart(ctx, msg)
	case "menu":
		state := d.state(ctx, msg.From.ID)
		d.startMenuFlow(ctx, msg.Chat.ID, msg.From.ID, state)
	case "orders":
		d.showOrders(ctx, msg.Chat.ID, msg.From.ID)
	case "support":
		state := d.state(ctx, msg.From.ID)
		d.startSupportFlow(ctx, msg.Chat.ID, msg.From.ID, state)
	case "cancel":
		d.resetState(ctx, msg.From.ID)
		reply := tgbotapi.NewMessage(msg.Chat.ID, "Скасовано. Повертаємось до головного меню.")
		reply.ReplyMarkup = mainMenuKeyboard()
		d.send(reply)
	default:
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Невідома команда. Спробуйте /menu"))
	}
}

func (d *Driver) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data

	// Manager actions arrive from the manager channel, everything else from
	// customer chats.
	switch {
	case strings.HasPrefix(data, cbManagerConfirm), strings.HasPrefix(data, cbManagerReject):
		d.handleManagerAction(ctx, cb)
		return
	}

	telegramID := cb.From.ID
	state := d.state(ctx, telegramID)
	d.logCallback(ctx, cb, state)

	switch {
	case strings.HasPrefix(data, cbHomeCity):
		d.handleHomeCityChosen(ctx, cb, state)
	case strings.HasPrefix(data, cbCity):
		d.handleCityChosen(ctx, cb, state)
	case strings.HasPrefix(data, cbLocation):
		d.handleLocationChosen(ctx, cb, state)
	case strings.HasPrefix(data, cbCategory):
		d.handleCategoryChosen(ctx, cb, state)
	case strings.HasPrefix(data, cbAddProduct):
		d.handleAddToCart(ctx, cb, state)
	case data == cbCheckout:
		d.handleCheckout(ctx, cb, state)
	case data == cbClearCart:
		d.handleClearCart(ctx, cb, state)
	case strings.HasPrefix(data, cbCancelOrder):
		d.handleCancelOrder(ctx, cb)
	default:
		d.answerCallback(cb.ID, "")
	}
}

// state fetches the conversation state, starting a fresh idle state (and a
// telemetry session) when none exists.
func (d *Driver) state(ctx context.Context, telegramID int64) *redisstore.ConversationState {
	state, err := d.sessions.Get(ctx, telegramID)
	if err == nil {
		return state
	}
	if !errors.Is(err, redisstore.ErrNoState) {
		logger.L().Warn("session read failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
	}

	state = &redisstore.ConversationState{
		Waypoint: WaypointIdle,
		Data:     map[string]string{},
	}
	sessionID, err := d.backend.StartSession(ctx, &client.StartSessionRequest{
		TelegramID: telegramID,
		Platform:   "telegram",
	})
	if err == nil {
		state.SessionID = sessionID
	}
	d.saveState(ctx, telegramID, state)
	return state
}

func (d *Driver) saveState(ctx context.Context, telegramID int64, state *redisstore.ConversationState) {
	if err := d.sessions.Set(ctx, telegramID, state); err != nil {
		logger.L().Warn("session write failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
	}
}

func (d *Driver) resetState(ctx context.Context, telegramID int64) {
	state := d.state(ctx, telegramID)
	state.Waypoint = WaypointIdle
	state.Data = map[string]string{}
	d.saveState(ctx, telegramID, state)
}

// send pushes one message through the outbound throttle.
func (d *Driver) send(c tgbotapi.Chattable) {
	if err := d.sendLimiter.Wait(context.Background()); err != nil {
		return
	}
	if _, err := d.api.Send(c); err != nil {
		logger.L().Warn("telegram send failed", zap.Error(err))
	}
}

func (d *Driver) answerCallback(callbackID, text string) {
	if _, err := d.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logger.L().Warn("callback answer failed", zap.Error(err))
	}
}

func (d *Driver) logCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	var sessionID *int64
	if state.SessionID != 0 {
		sessionID = &state.SessionID
	}

	var chatID int64
	if cb.Message != nil {
		chatID = cb.Message.Chat.ID
	}

	if err := d.backend.LogInteraction(ctx, &client.InteractionRequest{
		SessionID:       sessionID,
		TelegramID:      cb.From.ID,
		InteractionType: "callback_query",
		CallbackData:    cb.Data,
		ChatID:          chatID,
		FSMState:        state.Waypoint,
	}); err != nil {
		logger.L().Debug("interaction log failed", zap.Error(err))
	}
}

func (d *Driver) logInteraction(ctx context.Context, msg *tgbotapi.Message) {
	interactionType := "message"
	command := ""
	if msg.IsCommand() {
		interactionType = "command"
		command = msg.Command()
	} else if len(msg.Photo) > 0 {
		interactionType = "photo"
	}

	state, err := d.sessions.Get(ctx, msg.From.ID)
	var sessionID *int64
	fsmState := WaypointIdle
	if err == nil {
		fsmState = state.Waypoint
		if state.SessionID != 0 {
			sessionID = &state.SessionID
		}
	}

	if err := d.backend.LogInteraction(ctx, &client.InteractionRequest{
		SessionID:       sessionID,
		TelegramID:      msg.From.ID,
		InteractionType: interactionType,
		Command:         command,
		MessageText:     msg.Text,
		ChatID:          msg.Chat.ID,
		FSMState:        fsmState,
	}); err != nil {
		logger.L().Debug("interaction log failed", zap.Error(err))
	}
}
