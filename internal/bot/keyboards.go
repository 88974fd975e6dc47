package bot

import (
	"fmt"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/bot/client"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("📱 Поділитися номером"),
		),
	)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🍕 Меню"),
			tgbotapi.NewKeyboardButton("🛒 Кошик"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📋 Мої замовлення"),
			tgbotapi.NewKeyboardButton("💬 Підтримка"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func citiesKeyboard(cities []client.City, prefix string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, city := range cities {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(city.Name, prefix+strconv.FormatInt(city.ID, 10)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func locationsKeyboard(locations []client.Location) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, loc := range locations {
		label := loc.Name
		if loc.Address != "" {
			label = fmt.Sprintf("%s (%s)", loc.Name, loc.Address)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbLocation+strconv.FormatInt(loc.ID, 10)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func categoriesKeyboard(categories []client.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category.Name, cbCategory+strconv.FormatInt(category.ID, 10)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productsKeyboard(products []client.MenuProduct) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range products {
		label := fmt.Sprintf("%s — %.0f грн", p.Name, p.Price)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbAddProduct+strconv.FormatInt(p.ID, 10)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Оформити", cbCheckout),
		tgbotapi.NewInlineKeyboardButtonData("🗑 Очистити", cbClearCart),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
