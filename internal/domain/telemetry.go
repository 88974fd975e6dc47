package domain

import "time"

// Bot telemetry. Written once by the logging endpoints and read only by the
// analytics surface; nothing here feeds back into order or catalog behavior.

type UserSession struct {
	ID         int64
	UserID     int64
	TelegramID int64

	SessionStart    time.Time
	SessionEnd      *time.Time
	DurationSeconds *int

	Language  string
	Username  string
	FirstName string
	LastName  string
	Platform  string

	MessagesSent   int
	CommandsUsed   int
	ButtonsClicked int

	CreatedAt time.Time
}

type BotInteraction struct {
	ID         int64
	SessionID  *int64
	UserID     *int64
	TelegramID int64

	// command, message, callback_query, photo, document
	InteractionType string

	Command      string
	MessageText  string
	CallbackData string

	ChatID    int64
	MessageID *int64

	BotResponse     string
	BotResponseType string

	// Waypoint the conversation driver was at when the update arrived.
	FSMState string

	Metadata string // free-form JSON

	IsSuccessful bool
	ErrorMessage string

	CreatedAt time.Time
}

type SupportMessage struct {
	ID         int64
	UserID     int64
	TelegramID int64
	TicketID   string

	MessageText string
	SenderType  string // user, manager
	MessageType string // text, photo, document
	FileURL     string

	OrderID  *int64
	ThreadID string

	CreatedAt time.Time
}

// BotStatistics is one daily rollup row written by the background task.
type BotStatistics struct {
	ID   int64
	Date time.Time

	TotalSessions     int
	TotalInteractions int
	UniqueUsers       int
	NewUsers          int
	OrdersCreated     int
	OrdersCompleted   int
	SupportTickets    int
	AvgSessionSeconds int

	CreatedAt time.Time
}

// DashboardStats aggregates activity over a trailing window for the manager
// dashboard.
type DashboardStats struct {
	Days int

	TotalUsers  int64
	NewUsers    int64
	ActiveUsers int64

	TotalSessions      int64
	AvgSessionDuration float64

	OrdersCreated   int64
	OrdersPaid      int64
	OrdersCompleted int64
	OrdersCancelled int64
	TotalRevenue    float64

	SupportTickets int64
}
