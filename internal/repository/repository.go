package repository

import (
	"context"

	"github.com/cinestream-cms/internal/database"
	"github.com/cinestream-cms/internal/models"
	"github.com/rs/zerolog"
)

// ArticleRepository is the sole authority for the durable article
// collection. The collection is stored newest-first: Upsert prepends new
// articles and replaces existing ones in place.
type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	FindByID(ctx context.Context, id string) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	Upsert(ctx context.Context, article models.Article) error
	Delete(ctx context.Context, id string) error
	SlugInUse(ctx context.Context, slug, excludeID string) (bool, error)
}

// ConfigRepository manages the singleton site configuration record
type ConfigRepository interface {
	Get(ctx context.Context) (models.SiteConfig, error)
	Save(ctx context.Context, cfg models.SiteConfig) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Config  ConfigRepository
}

// New creates all repositories over the given content store
func New(db *database.DB, log zerolog.Logger) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db, log),
		Config:  NewConfigRepo(db, log),
	}
}
