package domain

import "context"

type UserRepository interface {
	// CreateUser returns ErrUserExists when the telegram id is taken.
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID int64) (*User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
