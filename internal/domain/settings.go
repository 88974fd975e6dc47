package domain

import "time"

// SiteSettings is a singleton row (id = 1) holding vendor configuration
// editable from the admin panel.
type SiteSettings struct {
	ID int64

	SiteName        string
	SiteLogo        string
	SiteDescription string

	Phone   string
	Email   string
	Address string

	BotToken         string
	ManagerChannelID string
	AdminTelegramIDs string // comma-separated

	N8NURL           string
	N8NWebhookSecret string

	ExtraSettings string // free-form JSON

	IsActive  bool
	UpdatedAt time.Time
}
