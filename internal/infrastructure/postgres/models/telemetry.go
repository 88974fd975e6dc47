package models

import "time"

type UserSessionModel struct {
	ID         int64 `gorm:"primaryKey"`
	UserID     int64 `gorm:"not null;index"`
	TelegramID int64 `gorm:"not null;index"`

	SessionStart    time.Time `gorm:"not null;index"`
	SessionEnd      *time.Time
	DurationSeconds *int

	Language  string `gorm:"size:5"`
	Username  string `gorm:"size:255"`
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`
	Platform  string `gorm:"size:50"`

	MessagesSent   int `gorm:"not null;default:0"`
	CommandsUsed   int `gorm:"not null;default:0"`
	ButtonsClicked int `gorm:"not null;default:0"`

	CreatedAt time.Time
}

func (UserSessionModel) TableName() string { return "user_sessions" }

type BotInteractionModel struct {
	ID         int64  `gorm:"primaryKey"`
	SessionID  *int64 `gorm:"index"`
	UserID     *int64 `gorm:"index"`
	TelegramID int64  `gorm:"not null;index"`

	InteractionType string `gorm:"size:50;not null;index"`

	Command      string `gorm:"size:100;index"`
	MessageText  string `gorm:"type:text"`
	CallbackData string `gorm:"size:255"`

	ChatID    int64 `gorm:"not null"`
	MessageID *int64

	BotResponse     string `gorm:"type:text"`
	BotResponseType string `gorm:"size:50"`

	FSMState string `gorm:"size:100;column:fsm_state"`
	Metadata string `gorm:"type:jsonb;column:meta_data"`

	IsSuccessful bool   `gorm:"not null;default:true"`
	ErrorMessage string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
}

func (BotInteractionModel) TableName() string { return "bot_interactions" }

type SupportMessageModel struct {
	ID         int64  `gorm:"primaryKey"`
	UserID     int64  `gorm:"not null;index"`
	TelegramID int64  `gorm:"not null;index"`
	TicketID   string `gorm:"size:36;not null;index"`

	MessageText string `gorm:"type:text;not null"`
	SenderType  string `gorm:"size:20;not null;default:user"`
	MessageType string `gorm:"size:20;not null;default:text"`
	FileURL     string `gorm:"size:500"`

	OrderID  *int64 `gorm:"index"`
	ThreadID string `gorm:"size:100"`

	CreatedAt time.Time
}

func (SupportMessageModel) TableName() string { return "support_messages" }

type BotStatisticsModel struct {
	ID   int64     `gorm:"primaryKey"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex"`

	TotalSessions     int `gorm:"not null;default:0"`
	TotalInteractions int `gorm:"not null;default:0"`
	UniqueUsers       int `gorm:"not null;default:0"`
	NewUsers          int `gorm:"not null;default:0"`
	OrdersCreated     int `gorm:"not null;default:0"`
	OrdersCompleted   int `gorm:"not null;default:0"`
	SupportTickets    int `gorm:"not null;default:0"`
	AvgSessionSeconds int `gorm:"not null;default:0"`

	CreatedAt time.Time
}

func (BotStatisticsModel) TableName() string { return "bot_statistics" }
