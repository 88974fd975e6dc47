package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/mappers"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTelemetryRepository struct {
	DB *gorm.DB
}

func NewDefaultTelemetryRepository(db *gorm.DB) *DefaultTelemetryRepository {
	return &DefaultTelemetryRepository{DB: db}
}

func (r *DefaultTelemetryRepository) CreateSession(ctx context.Context, s *domain.UserSession) error {
	m := mappers.ToGORMSession(s)
	if m.SessionStart.IsZero() {
		m.SessionStart = time.Now()
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.SessionStart = m.SessionStart
	return nil
}

func (r *DefaultTelemetryRepository) EndSession(ctx context.Context, sessionID int64, endedAt time.Time) error {
	var m models.UserSessionModel
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSessionNotFound
		}
		return err
	}

	duration := int(endedAt.Sub(m.SessionStart).Seconds())
	return r.DB.WithContext(ctx).
		Model(&m).
		Updates(map[string]interface{}{
			"session_end":      endedAt,
			"duration_seconds": duration,
		}).Error
}

func (r *DefaultTelemetryRepository) CreateInteraction(ctx context.Context, i *domain.BotInteraction) error {
	m := mappers.ToGORMInteraction(i)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	i.ID = m.ID
	i.CreatedAt = m.CreatedAt
	return nil
}

func (r *DefaultTelemetryRepository) CreateSupportMessage(ctx context.Context, msg *domain.SupportMessage) error {
	m := mappers.ToGORMSupportMessage(msg)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

func (r *DefaultTelemetryRepository) ListSupportThread(ctx context.Context, ticketID string) ([]*domain.SupportMessage, error) {
	var rows []models.SupportMessageModel
	err := r.DB.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.SupportMessage, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainSupportMessage(&rows[i])
	}
	return out, nil
}

func (r *DefaultTelemetryRepository) DashboardStats(ctx context.Context, since time.Time) (*domain.DashboardStats, error) {
	db := r.DB.WithContext(ctx)
	stats := &domain.DashboardStats{}

	if err := db.Model(&models.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.UserModel{}).Where("created_at >= ?", since).Count(&stats.NewUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.UserSessionModel{}).
		Where("session_start >= ?", since).
		Distinct("user_id").
		Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.UserSessionModel{}).
		Where("session_start >= ?", since).
		Count(&stats.TotalSessions).Error; err != nil {
		return nil, err
	}

	var avgDuration *float64
	if err := db.Model(&models.UserSessionModel{}).
		Where("session_start >= ? AND duration_seconds IS NOT NULL", since).
		Select("AVG(duration_seconds)").
		Scan(&avgDuration).Error; err != nil {
		return nil, err
	}
	if avgDuration != nil {
		stats.AvgSessionDuration = *avgDuration
	}

	orderCounts := []struct {
		filter domain.OrderStatus
		dest   *int64
	}{
		{"", &stats.OrdersCreated},
		{domain.StatusPaid, &stats.OrdersPaid},
		{domain.StatusCompleted, &stats.OrdersCompleted},
		{domain.StatusCancelled, &stats.OrdersCancelled},
	}
	for _, oc := range orderCounts {
		q := db.Model(&models.OrderModel{}).Where("created_at >= ?", since)
		if oc.filter != "" {
			q = q.Where("status = ?", oc.filter)
		}
		if err := q.Count(oc.dest).Error; err != nil {
			return nil, err
		}
	}

	var revenue *float64
	err := db.Model(&models.OrderModel{}).
		Where("created_at >= ?", since).
		Where("status IN ?", []domain.OrderStatus{domain.StatusPaid, domain.StatusConfirmed, domain.StatusCompleted}).
		Select("SUM(total_amount)").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	if err := db.Model(&models.SupportMessageModel{}).
		Where("created_at >= ?", since).
		Distinct("ticket_id").
		Count(&stats.SupportTickets).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *DefaultTelemetryRepository) CollectDailyStatistics(ctx context.Context, day time.Time) (*domain.BotStatistics, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	db := r.DB.WithContext(ctx)

	stats := &domain.BotStatistics{Date: dayStart}

	var sessions, interactions, uniqueUsers, newUsers, ordersCreated, ordersCompleted, tickets int64

	if err := db.Model(&models.UserSessionModel{}).
		Where("session_start >= ? AND session_start < ?", dayStart, dayEnd).
		Count(&sessions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.BotInteractionModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&interactions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.BotInteractionModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Distinct("telegram_id").
		Count(&uniqueUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.UserModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&newUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.OrderModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&ordersCreated).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.OrderModel{}).
		Where("completed_at >= ? AND completed_at < ?", dayStart, dayEnd).
		Count(&ordersCompleted).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.SupportMessageModel{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Distinct("ticket_id").
		Count(&tickets).Error; err != nil {
		return nil, err
	}

	var avgDuration *float64
	if err := db.Model(&models.UserSessionModel{}).
		Where("session_start >= ? AND session_start < ? AND duration_seconds IS NOT NULL", dayStart, dayEnd).
		Select("AVG(duration_seconds)").
		Scan(&avgDuration).Error; err != nil {
		return nil, err
	}

	stats.TotalSessions = int(sessions)
	stats.TotalInteractions = int(interactions)
	stats.UniqueUsers = int(uniqueUsers)
	stats.NewUsers = int(newUsers)
	stats.OrdersCreated = int(ordersCreated)
	stats.OrdersCompleted = int(ordersCompleted)
	stats.SupportTickets = int(tickets)
	if avgDuration != nil {
		stats.AvgSessionSeconds = int(*avgDuration)
	}

	return stats, nil
}

func (r *DefaultTelemetryRepository) UpsertDailyStatistics(ctx context.Context, s *domain.BotStatistics) error {
	m := mappers.ToGORMStatistics(s)
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_sessions", "total_interactions", "unique_users", "new_users",
				"orders_created", "orders_completed", "support_tickets", "avg_session_seconds",
			}),
		}).
		Create(m).Error
}
