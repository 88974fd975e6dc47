package usecase

import (
	"context"
	"testing"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestRegisterUser_NewUser(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewDefaultUserUsecase(repo)

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.TelegramID == 111 && u.Phone == "+380501112233" && u.IsActive && u.Language == "uk"
	})).Return(nil)

	user, err := uc.RegisterUser(context.Background(), &RegisterUserInput{
		TelegramID: 111,
		Phone:      " +380501112233 ",
		FullName:   "Іван Петренко",
	})

	assert.NoError(t, err)
	assert.Equal(t, "+380501112233", user.Phone)
	repo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateIsAConflict(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewDefaultUserUsecase(repo)

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(domain.ErrUserExists)

	user, err := uc.RegisterUser(context.Background(), &RegisterUserInput{
		TelegramID: 111,
		Phone:      "+380501112233",
	})

	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Nil(t, user)
	repo.AssertNotCalled(t, "GetUserByTelegramID", mock.Anything, mock.Anything)
}

func TestRegisterUser_MissingPhone(t *testing.T) {
	uc := NewDefaultUserUsecase(new(mockUserRepo))

	_, err := uc.RegisterUser(context.Background(), &RegisterUserInput{TelegramID: 111})

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone", validationErr.Field)
}
