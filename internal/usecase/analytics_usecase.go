package usecase

import (
	"context"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	"go.uber.org/zap"
)

type AnalyticsUsecase interface {
	// StartSession opens a telemetry session for a bot conversation.
	StartSession(ctx context.Context, s *domain.UserSession) (int64, error)
	EndSession(ctx context.Context, sessionID int64) error

	LogInteraction(ctx context.Context, i *domain.BotInteraction) error
	LogSupportMessage(ctx context.Context, m *domain.SupportMessage) error
	GetSupportThread(ctx context.Context, ticketID string) ([]*domain.SupportMessage, error)

	GetDashboard(ctx context.Context, days int) (*domain.DashboardStats, error)

	// RollupDay computes and stores the daily statistics row. Safe to rerun
	// for the same day, the rollup upserts.
	RollupDay(ctx context.Context, day time.Time) error
}

type DefaultAnalyticsUsecase struct {
	telemetryRepo domain.TelemetryRepository
}

func NewDefaultAnalyticsUsecase(telemetryRepo domain.TelemetryRepository) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{telemetryRepo: telemetryRepo}
}

func (uc *DefaultAnalyticsUsecase) StartSession(ctx context.Context, s *domain.UserSession) (int64, error) {
	if s.TelegramID <= 0 {
		return 0, &domain.ValidationError{Field: "telegram_id", Reason: "must be positive"}
	}
	if s.SessionStart.IsZero() {
		s.SessionStart = time.Now()
	}
	if err := uc.telemetryRepo.CreateSession(ctx, s); err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (uc *DefaultAnalyticsUsecase) EndSession(ctx context.Context, sessionID int64) error {
	return uc.telemetryRepo.EndSession(ctx, sessionID, time.Now())
}

func (uc *DefaultAnalyticsUsecase) LogInteraction(ctx context.Context, i *domain.BotInteraction) error {
	if i.TelegramID <= 0 {
		return &domain.ValidationError{Field: "telegram_id", Reason: "must be positive"}
	}
	return uc.telemetryRepo.CreateInteraction(ctx, i)
}

func (uc *DefaultAnalyticsUsecase) LogSupportMessage(ctx context.Context, m *domain.SupportMessage) error {
	if m.TicketID == "" {
		return &domain.ValidationError{Field: "ticket_id", Reason: "must not be empty"}
	}
	return uc.telemetryRepo.CreateSupportMessage(ctx, m)
}

func (uc *DefaultAnalyticsUsecase) GetSupportThread(ctx context.Context, ticketID string) ([]*domain.SupportMessage, error) {
	return uc.telemetryRepo.ListSupportThread(ctx, ticketID)
}

func (uc *DefaultAnalyticsUsecase) GetDashboard(ctx context.Context, days int) (*domain.DashboardStats, error) {
	if days <= 0 || days > 365 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	stats, err := uc.telemetryRepo.DashboardStats(ctx, since)
	if err != nil {
		return nil, err
	}
	stats.Days = days
	return stats, nil
}

func (uc *DefaultAnalyticsUsecase) RollupDay(ctx context.Context, day time.Time) error {
	day = day.Truncate(24 * time.Hour)

	stats, err := uc.telemetryRepo.CollectDailyStatistics(ctx, day)
	if err != nil {
		return err
	}
	if err := uc.telemetryRepo.UpsertDailyStatistics(ctx, stats); err != nil {
		return err
	}

	logger.L().Info("daily statistics rolled up",
		zap.Time("date", day),
		zap.Int("sessions", stats.TotalSessions),
		zap.Int("orders_created", stats.OrdersCreated))
	return nil
}
