package usecase

import (
	"context"
	"strings"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type RegisterUserInput struct {
	TelegramID int64
	Phone      string
	FullName   string
	CityID     *int64
	Language   string
}

type UserUsecase interface {
	// RegisterUser creates the user. A telegram id that is already
	// registered is a conflict (domain.ErrUserExists), never a silent
	// re-registration.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*domain.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type DefaultUserUsecase struct {
	userRepo domain.UserRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{userRepo: userRepo}
}

func (uc *DefaultUserUsecase) RegisterUser(ctx context.Context, input *RegisterUserInput) (*domain.User, error) {
	if input.TelegramID <= 0 {
		return nil, &domain.ValidationError{Field: "telegram_id", Reason: "must be positive"}
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, &domain.ValidationError{Field: "phone", Reason: "must not be empty"}
	}

	language := input.Language
	if language == "" {
		language = "uk"
	}

	user := &domain.User{
		TelegramID: input.TelegramID,
		Phone:      strings.TrimSpace(input.Phone),
		FullName:   strings.TrimSpace(input.FullName),
		CityID:     input.CityID,
		Language:   language,
		IsActive:   true,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *DefaultUserUsecase) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return uc.userRepo.GetUserByTelegramID(ctx, telegramID)
}

func (uc *DefaultUserUsecase) UpdateProfile(ctx context.Context, user *domain.User) error {
	if user.ID <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "must be positive"}
	}
	return uc.userRepo.UpdateUser(ctx, user)
}
