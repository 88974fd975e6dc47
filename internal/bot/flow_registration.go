package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (d *Driver) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	telegramID := msg.From.ID

	user, err := d.backend.GetUser(ctx, telegramID)
	if err == nil {
		d.resetState(ctx, telegramID)
		reply := tgbotapi.NewMessage(msg.Chat.ID,
			fmt.Sprintf("З поверненням, %s! 🍕", firstWord(user.FullName)))
		reply.ReplyMarkup = mainMenuKeyboard()
		d.send(reply)
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		state := d.state(ctx, telegramID)
		state.Waypoint = WaypointAwaitingPhone
		d.saveState(ctx, telegramID, state)

		reply := tgbotapi.NewMessage(msg.Chat.ID,
			"Вітаємо у PizzaMat! 🍕\nДля оформлення замовлень потрібен ваш номер телефону.")
		reply.ReplyMarkup = contactKeyboard()
		d.send(reply)
		return
	}

	d.send(tgbotapi.NewMessage(msg.Chat.ID, "Сервіс тимчасово недоступний, спробуйте пізніше."))
}

func (d *Driver) handleContact(ctx context.Context, msg *tgbotapi.Message, state *redisstore.ConversationState) {
	telegramID := msg.From.ID

	// Only the sender's own contact counts as registration.
	if msg.Contact.UserID != telegramID {
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Будь ласка, поділіться власним номером."))
		return
	}

	state.Waypoint = WaypointAwaitingName
	state.Data["phone"] = msg.Contact.PhoneNumber
	state.Data["language"] = msg.From.LanguageCode
	d.saveState(ctx, telegramID, state)

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Як до вас звертатись?")
	reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	d.send(reply)
}

func (d *Driver) handleNameEntered(ctx context.Context, msg *tgbotapi.Message, state *redisstore.ConversationState) {
	name := strings.TrimSpace(msg.Text)
	if utf8.RuneCountInString(name) < 2 {
		d.send(tgbotapi.NewMessage(msg.Chat.ID, "Ім'я закоротке, введіть принаймні 2 символи."))
		return
	}

	state.Data["full_name"] = name
	d.saveState(ctx, msg.From.ID, state)

	cities, err := d.backend.ListCities(ctx)
	if err != nil || len(cities) == 0 {
		// City is optional; finish registration without one.
		d.completeRegistration(ctx, msg.Chat.ID, msg.From.ID, state, nil)
		return
	}

	state.Waypoint = WaypointChoosingHomeCity
	d.saveState(ctx, msg.From.ID, state)

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Оберіть ваше місто:")
	reply.ReplyMarkup = citiesKeyboard(cities, cbHomeCity)
	d.send(reply)
}

func (d *Driver) handleHomeCityChosen(ctx context.Context, cb *tgbotapi.CallbackQuery, state *redisstore.ConversationState) {
	cityID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, cbHomeCity), 10, 64)
	if err != nil {
		d.answerCallback(cb.ID, "")
		return
	}

	d.answerCallback(cb.ID, "")
	d.completeRegistration(ctx, cb.Message.Chat.ID, cb.From.ID, state, &cityID)
}

func (d *Driver) completeRegistration(ctx context.Context, chatID, telegramID int64, state *redisstore.ConversationState, cityID *int64) {
	user, err := d.backend.RegisterUser(ctx, &client.RegisterUserRequest{
		TelegramID: telegramID,
		Phone:      state.Data["phone"],
		FullName:   state.Data["full_name"],
		CityID:     cityID,
		Language:   state.Data["language"],
	})

	// A replayed registration is a conflict on the backend; the account is
	// already there, so just greet the user.
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		user, err = d.backend.GetUser(ctx, telegramID)
	}
	if err != nil {
		d.send(tgbotapi.NewMessage(chatID, "Не вдалося зареєструватись, спробуйте /start ще раз."))
		return
	}

	d.resetState(ctx, telegramID)

	reply := tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Дякуємо, %s! Реєстрацію завершено ✅", firstWord(user.FullName)))
	reply.ReplyMarkup = mainMenuKeyboard()
	d.send(reply)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
