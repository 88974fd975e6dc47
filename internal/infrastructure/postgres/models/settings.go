package models

import "time"

type SiteSettingsModel struct {
	ID int64 `gorm:"primaryKey"`

	SiteName        string `gorm:"size:100;not null;default:PizzaMat"`
	SiteLogo        string `gorm:"size:500"`
	SiteDescription string `gorm:"type:text"`

	Phone   string `gorm:"size:20"`
	Email   string `gorm:"size:100"`
	Address string `gorm:"type:text"`

	BotToken         string `gorm:"size:200"`
	ManagerChannelID string `gorm:"size:50"`
	AdminTelegramIDs string `gorm:"type:text"`

	N8NURL           string `gorm:"size:200;column:n8n_url"`
	N8NWebhookSecret string `gorm:"size:200;column:n8n_webhook_secret"`

	ExtraSettings string `gorm:"type:jsonb"`

	IsActive  bool `gorm:"not null;default:true"`
	UpdatedAt time.Time
}

func (SiteSettingsModel) TableName() string { return "site_settings" }
