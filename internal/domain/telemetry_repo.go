package domain

import (
	"context"
	"time"
)

type TelemetryRepository interface {
	CreateSession(ctx context.Context, s *UserSession) error
	// EndSession stamps session_end and the computed duration.
	EndSession(ctx context.Context, sessionID int64, endedAt time.Time) error

	CreateInteraction(ctx context.Context, i *BotInteraction) error
	CreateSupportMessage(ctx context.Context, m *SupportMessage) error
	ListSupportThread(ctx context.Context, ticketID string) ([]*SupportMessage, error)

	// DashboardStats aggregates the trailing window for the manager surface.
	DashboardStats(ctx context.Context, since time.Time) (*DashboardStats, error)

	// UpsertDailyStatistics writes (or rewrites) the rollup row for one day.
	UpsertDailyStatistics(ctx context.Context, s *BotStatistics) error
	CollectDailyStatistics(ctx context.Context, day time.Time) (*BotStatistics, error)
}
