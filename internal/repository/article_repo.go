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

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db  *database.DB
	log zerolog.Logger
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB, log zerolog.Logger) ArticleRepository {
	return &articleRepo{
		db:  db,
		log: log.With().Str("component", "article_repo").Logger(),
	}
}

// List returns all articles in persisted order, seeding the built-in
// sample set when the store is empty. A blob that fails to parse is
// treated as lost: the loss is logged and defaults are reseeded rather
// than failing the read.
func (r *articleRepo) List(ctx context.Context) ([]models.Article, error) {
	raw, err := readBlob(ctx, r.db, articlesKey)
	if errors.Is(err, sql.ErrNoRows) {
		return r.seed(ctx)
	}
	if err != nil {
		return nil, err
	}

	var articles []models.Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		r.log.Warn().Err(err).Msg("Stored articles blob is unreadable, reseeding defaults")
		return r.seed(ctx)
	}
	return articles, nil
}

// FindByID retrieves an article by its id
func (r *articleRepo) FindByID(ctx context.Context, id string) (*models.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// FindBySlug retrieves the first article with the given slug. Slug
// uniqueness is enforced at publish time, not here.
func (r *articleRepo) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].Slug == slug {
			return &articles[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Upsert replaces the article with the same id in place, or prepends it
// to the collection when no match exists, then persists the whole
// collection. Validation is the caller's responsibility.
func (r *articleRepo) Upsert(ctx context.Context, article models.Article) error {
	articles, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range articles {
		if articles[i].ID == article.ID {
			articles[i] = article
			replaced = true
			break
		}
	}
	if !replaced {
		articles = append([]models.Article{article}, articles...)
	}

	return r.persist(ctx, articles)
}

// Delete removes the article with the given id. Deleting an absent id is
// a no-op.
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	articles, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := articles[:0]
	for _, a := range articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(articles) {
		return nil
	}

	return r.persist(ctx, kept)
}

// SlugInUse reports whether another article (id != excludeID) already
// carries the given slug
func (r *articleRepo) SlugInUse(ctx context.Context, slug, excludeID string) (bool, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *articleRepo) seed(ctx context.Context) ([]models.Article, error) {
	articles := models.SeedArticles()
	if err := r.persist(ctx, articles); err != nil {
		return nil, err
	}
	r.log.Info().Int("count", len(articles)).Msg("Seeded article collection")
	return articles, nil
}

func (r *articleRepo) persist(ctx context.Context, articles []models.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to encode articles: %w", err)
	}
	return writeBlob(ctx, r.db, articlesKey, string(data))
}
