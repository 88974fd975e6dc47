package mappers

import (
	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
)

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Phone:      user.Phone,
		FullName:   user.FullName,
		CityID:     user.CityID,
		Language:   user.Language,
		IsActive:   user.IsActive,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func ToDomainUser(m *models.UserModel) *domain.User {
	return &domain.User{
		ID:         m.ID,
		TelegramID: m.TelegramID,
		Phone:      m.Phone,
		FullName:   m.FullName,
		CityID:     m.CityID,
		Language:   m.Language,
		IsActive:   m.IsActive,
		IsAdmin:    m.IsAdmin,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
