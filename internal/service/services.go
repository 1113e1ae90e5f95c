package service

import (
	"context"
	"time"

	"github.com/cinestream-cms/internal/config"
	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/repository"
	"github.com/cinestream-cms/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContentService is the public reading surface backing the navigation layer
type ContentService interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	GetArticle(ctx context.Context, slug string) (*models.Article, error)
	ByCategory(ctx context.Context, categorySlug string) ([]models.Article, error)
	ByPlatform(ctx context.Context, platformSlug string) ([]models.Article, error)
	Featured(ctx context.Context) (*models.Article, error)
	Homepage(ctx context.Context) (*Homepage, error)
}

// EditorService drives admin authoring sessions: login, draft editing and
// the publish transaction. A session is either listing (no draft open) or
// editing (one draft open); all draft operations act on the session draft
// and never touch the store until Publish.
type EditorService interface {
	Login(passcode string) (string, error)
	Logout(token string)
	Authenticated(token string) bool

	NewDraft(token string) (*models.Draft, error)
	EditArticle(ctx context.Context, token, articleID string) (*models.Draft, error)
	Draft(token string) (*models.Draft, error)
	UpdateDraft(token string, upd DraftUpdate) (*models.Draft, error)
	ChangeCategory(token string, cat models.Category) (*models.Draft, error)

	AddFAQ(token string) (*models.Draft, error)
	UpdateFAQ(token string, index int, faq models.FAQ) (*models.Draft, error)
	RemoveFAQ(token string, index int) (*models.Draft, error)

	AddListItem(token string, item models.MovieListItem) (*models.Draft, error)
	UpdateListItem(token, itemID string, item models.MovieListItem) (*models.Draft, error)
	RemoveListItem(token, itemID string) (*models.Draft, error)

	Publish(ctx context.Context, token string) (*models.Article, []validation.ValidationError, error)
	Discard(token string) error
	DeleteArticle(ctx context.Context, token, id string) error
	Notice(token string) string
}

// SettingsService manages the singleton site configuration
type SettingsService interface {
	Get(ctx context.Context) (models.SiteConfig, error)
	Save(ctx context.Context, cfg models.SiteConfig) ([]validation.ValidationError, error)
}

// Services holds all service interfaces
type Services struct {
	Content  ContentService
	Editor   EditorService
	Settings SettingsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Content:  newContentService(repos.Article, log),
		Editor:   newEditorService(repos, cfg, uuid.NewString, time.Now, log),
		Settings: newSettingsService(repos.Config, log),
	}
}
