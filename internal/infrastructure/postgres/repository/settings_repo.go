package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/mappers"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// settingsRowID pins the singleton row.
const settingsRowID = 1

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

func (r *DefaultSettingsRepository) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var m models.SiteSettingsModel
	err := r.DB.WithContext(ctx).First(&m, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = models.SiteSettingsModel{ID: settingsRowID, SiteName: "PizzaMat", IsActive: true}
		if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
		return mappers.ToDomainSettings(&m), nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainSettings(&m), nil
}

func (r *DefaultSettingsRepository) SaveSettings(ctx context.Context, s *domain.SiteSettings) error {
	s.ID = settingsRowID
	m := mappers.ToGORMSettings(s)
	m.UpdatedAt = time.Now()
	return r.DB.WithContext(ctx).Save(m).Error
}
