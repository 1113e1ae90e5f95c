package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cinestream-cms/internal/database"
	"github.com/cinestream-cms/internal/models"
	"github.com/rs/zerolog"
)

// configRepo is the concrete implementation of ConfigRepository
type configRepo struct {
	db  *database.DB
	log zerolog.Logger
}

// NewConfigRepo creates a new site configuration repository
func NewConfigRepo(db *database.DB, log zerolog.Logger) ConfigRepository {
	return &configRepo{
		db:  db,
		log: log.With().Str("component", "config_repo").Logger(),
	}
}

// Get returns the singleton site configuration, seeding and persisting the
// defaults on first read. An unreadable blob falls back to defaults the
// same way, with the loss logged.
func (r *configRepo) Get(ctx context.Context) (models.SiteConfig, error) {
	raw, err := readBlob(ctx, r.db, siteConfigKey)
	if errors.Is(err, sql.ErrNoRows) {
		return r.seed(ctx)
	}
	if err != nil {
		return models.SiteConfig{}, err
	}

	var cfg models.SiteConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		r.log.Warn().Err(err).Msg("Stored site config blob is unreadable, reseeding defaults")
		return r.seed(ctx)
	}
	return cfg, nil
}

// Save replaces the singleton site configuration
func (r *configRepo) Save(ctx context.Context, cfg models.SiteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode site config: %w", err)
	}
	return writeBlob(ctx, r.db, siteConfigKey, string(data))
}

func (r *configRepo) seed(ctx context.Context) (models.SiteConfig, error) {
	cfg := models.DefaultSiteConfig()
	if err := r.Save(ctx, cfg); err != nil {
		return models.SiteConfig{}, err
	}
	r.log.Info().Msg("Seeded default site configuration")
	return cfg, nil
}
