package mappers

import (
	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
)

func ToGORMSettings(s *domain.SiteSettings) *models.SiteSettingsModel {
	return &models.SiteSettingsModel{
		ID:               s.ID,
		SiteName:         s.SiteName,
		SiteLogo:         s.SiteLogo,
		SiteDescription:  s.SiteDescription,
		Phone:            s.Phone,
		Email:            s.Email,
		Address:          s.Address,
		BotToken:         s.BotToken,
		ManagerChannelID: s.ManagerChannelID,
		AdminTelegramIDs: s.AdminTelegramIDs,
		N8NURL:           s.N8NURL,
		N8NWebhookSecret: s.N8NWebhookSecret,
		ExtraSettings:    s.ExtraSettings,
		IsActive:         s.IsActive,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToDomainSettings(m *models.SiteSettingsModel) *domain.SiteSettings {
	return &domain.SiteSettings{
		ID:               m.ID,
		SiteName:         m.SiteName,
		SiteLogo:         m.SiteLogo,
		SiteDescription:  m.SiteDescription,
		Phone:            m.Phone,
		Email:            m.Email,
		Address:          m.Address,
		BotToken:         m.BotToken,
		ManagerChannelID: m.ManagerChannelID,
		AdminTelegramIDs: m.AdminTelegramIDs,
		N8NURL:           m.N8NURL,
		N8NWebhookSecret: m.N8NWebhookSecret,
		ExtraSettings:    m.ExtraSettings,
		IsActive:         m.IsActive,
		UpdatedAt:        m.UpdatedAt,
	}
}
