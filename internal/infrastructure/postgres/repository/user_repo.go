package repository

import (
	"context"
	"errors"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/mappers"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := mappers.ToGORMUser(user)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return err
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	var m models.UserModel
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&m), nil
}

func (r *DefaultUserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	var m models.UserModel
	if err := r.DB.WithContext(ctx).First(&m, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&m), nil
}

func (r *DefaultUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	res := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"phone":     user.Phone,
			"full_name": user.FullName,
			"city_id":   user.CityID,
			"language":  user.Language,
			"is_active": user.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
