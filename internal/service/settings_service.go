package service

import (
	"context"

	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/repository"
	"github.com/cinestream-cms/internal/validation"
	"github.com/rs/zerolog"
)

type settingsService struct {
	config repository.ConfigRepository
	log    zerolog.Logger
}

func newSettingsService(config repository.ConfigRepository, log zerolog.Logger) SettingsService {
	return &settingsService{
		config: config,
		log:    log.With().Str("component", "settings_service").Logger(),
	}
}

// Get returns the site configuration, seeded with defaults on first read
func (s *settingsService) Get(ctx context.Context) (models.SiteConfig, error) {
	return s.config.Get(ctx)
}

// Save validates and replaces the site configuration. A non-empty
// validation result means nothing was saved.
func (s *settingsService) Save(ctx context.Context, cfg models.SiteConfig) ([]validation.ValidationError, error) {
	if errs := validation.ValidateSiteConfig(&cfg); len(errs) > 0 {
		return errs, nil
	}
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, err
	}
	s.log.Info().Str("site_name", cfg.SiteName).Msg("Site configuration updated")
	return nil, nil
}
