package domain

import "context"

type SettingsRepository interface {
	// GetSettings returns the singleton row, creating it with defaults when
	// missing.
	GetSettings(ctx context.Context) (*SiteSettings, error)
	SaveSettings(ctx context.Context, s *SiteSettings) error
}
