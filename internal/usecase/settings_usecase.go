package usecase

import (
	"context"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*domain.SiteSettings, error)
	SaveSettings(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error)
}

type DefaultSettingsUsecase struct {
	settingsRepo domain.SettingsRepository
}

func NewDefaultSettingsUsecase(settingsRepo domain.SettingsRepository) *DefaultSettingsUsecase {
	return &DefaultSettingsUsecase{settingsRepo: settingsRepo}
}

func (uc *DefaultSettingsUsecase) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return uc.settingsRepo.GetSettings(ctx)
}

// SaveSettings writes the singleton row. The id is forced to 1 so a stray
// payload can never create a second row.
func (uc *DefaultSettingsUsecase) SaveSettings(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	s.ID = 1
	if err := uc.settingsRepo.SaveSettings(ctx, s); err != nil {
		return nil, err
	}
	return uc.settingsRepo.GetSettings(ctx)
}
