package domain

import "time"

// User is a registered Telegram customer. Users are created once at
// registration and never deleted: orders keep referencing them.
type User struct {
	ID         int64
	TelegramID int64
	Phone      string
	FullName   string
	CityID     *int64
	Language   string
	IsActive   bool
	IsAdmin    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
