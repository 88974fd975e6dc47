package mappers

import (
	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
)

func ToGORMSession(s *domain.UserSession) *models.UserSessionModel {
	return &models.UserSessionModel{
		ID:              s.ID,
		UserID:          s.UserID,
		TelegramID:      s.TelegramID,
		SessionStart:    s.SessionStart,
		SessionEnd:      s.SessionEnd,
		DurationSeconds: s.DurationSeconds,
		Language:        s.Language,
		Username:        s.Username,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Platform:        s.Platform,
		MessagesSent:    s.MessagesSent,
		CommandsUsed:    s.CommandsUsed,
		ButtonsClicked:  s.ButtonsClicked,
		CreatedAt:       s.CreatedAt,
	}
}

func ToDomainSession(m *models.UserSessionModel) *domain.UserSession {
	return &domain.UserSession{
		ID:              m.ID,
		UserID:          m.UserID,
		TelegramID:      m.TelegramID,
		SessionStart:    m.SessionStart,
		SessionEnd:      m.SessionEnd,
		DurationSeconds: m.DurationSeconds,
		Language:        m.Language,
		Username:        m.Username,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Platform:        m.Platform,
		MessagesSent:    m.MessagesSent,
		CommandsUsed:    m.CommandsUsed,
		ButtonsClicked:  m.ButtonsClicked,
		CreatedAt:       m.CreatedAt,
	}
}

func ToGORMInteraction(i *domain.BotInteraction) *models.BotInteractionModel {
	return &models.BotInteractionModel{
		ID:              i.ID,
		SessionID:       i.SessionID,
		UserID:          i.UserID,
		TelegramID:      i.TelegramID,
		InteractionType: i.InteractionType,
		Command:         i.Command,
		MessageText:     i.MessageText,
		CallbackData:    i.CallbackData,
		ChatID:          i.ChatID,
		MessageID:       i.MessageID,
		BotResponse:     i.BotResponse,
		BotResponseType: i.BotResponseType,
		FSMState:        i.FSMState,
		Metadata:        i.Metadata,
		IsSuccessful:    i.IsSuccessful,
		ErrorMessage:    i.ErrorMessage,
		CreatedAt:       i.CreatedAt,
	}
}

func ToGORMSupportMessage(m *domain.SupportMessage) *models.SupportMessageModel {
	return &models.SupportMessageModel{
		ID:          m.ID,
		UserID:      m.UserID,
		TelegramID:  m.TelegramID,
		TicketID:    m.TicketID,
		MessageText: m.MessageText,
		SenderType:  m.SenderType,
		MessageType: m.MessageType,
		FileURL:     m.FileURL,
		OrderID:     m.OrderID,
		ThreadID:    m.ThreadID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainSupportMessage(m *models.SupportMessageModel) *domain.SupportMessage {
	return &domain.SupportMessage{
		ID:          m.ID,
		UserID:      m.UserID,
		TelegramID:  m.TelegramID,
		TicketID:    m.TicketID,
		MessageText: m.MessageText,
		SenderType:  m.SenderType,
		MessageType: m.MessageType,
		FileURL:     m.FileURL,
		OrderID:     m.OrderID,
		ThreadID:    m.ThreadID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToGORMStatistics(s *domain.BotStatistics) *models.BotStatisticsModel {
	return &models.BotStatisticsModel{
		ID:                s.ID,
		Date:              s.Date,
		TotalSessions:     s.TotalSessions,
		TotalInteractions: s.TotalInteractions,
		UniqueUsers:       s.UniqueUsers,
		NewUsers:          s.NewUsers,
		OrdersCreated:     s.OrdersCreated,
		OrdersCompleted:   s.OrdersCompleted,
		SupportTickets:    s.SupportTickets,
		AvgSessionSeconds: s.AvgSessionSeconds,
		CreatedAt:         s.CreatedAt,
	}
}
