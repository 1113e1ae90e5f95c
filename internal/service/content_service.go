package service

import (
	"context"

	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/policy"
	"github.com/cinestream-cms/internal/repository"
	"github.com/rs/zerolog"
)

// Homepage bundles everything the home view renders in one read
type Homepage struct {
	Featured *models.Article  `json:"featured,omitempty"`
	OTT      []models.Article `json:"ott"`
	Movies   []models.Article `json:"movies"`
	News     []models.Article `json:"news"`
}

type contentService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newContentService(articles repository.ArticleRepository, log zerolog.Logger) ContentService {
	return &contentService{
		articles: articles,
		log:      log.With().Str("component", "content_service").Logger(),
	}
}

// ListArticles returns all articles newest-first
func (s *contentService) ListArticles(ctx context.Context) ([]models.Article, error) {
	return s.articles.List(ctx)
}

// GetArticle looks up an article by slug for the detail view. The caller
// is expected to fall back to a default view on models.ErrNotFound.
func (s *contentService) GetArticle(ctx context.Context, slug string) (*models.Article, error) {
	return s.articles.FindBySlug(ctx, slug)
}

// ByCategory filters articles by a category URL token such as
// "ott-releases". An unknown token yields an empty result, not an error.
func (s *contentService) ByCategory(ctx context.Context, categorySlug string) ([]models.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Article, 0)
	for _, a := range articles {
		if policy.CategorySlug(a.Category) == categorySlug {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// ByPlatform filters articles by a platform URL token such as "netflix"
func (s *contentService) ByPlatform(ctx context.Context, platformSlug string) ([]models.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Article, 0)
	for _, a := range articles {
		if a.Platform != "" && policy.PlatformSlug(a.Platform) == platformSlug {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Featured returns the home-page spotlight: the first article flagged as
// featured, else the first in the collection
func (s *contentService) Featured(ctx context.Context) (*models.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.ErrNotFound
	}
	for i := range articles {
		if articles[i].IsFeatured {
			return &articles[i], nil
		}
	}
	return &articles[0], nil
}

// Homepage assembles the featured spotlight and the per-category buckets
func (s *contentService) Homepage(ctx context.Context) (*Homepage, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	home := &Homepage{
		OTT:    make([]models.Article, 0),
		Movies: make([]models.Article, 0),
		News:   make([]models.Article, 0),
	}
	for i := range articles {
		switch articles[i].Category {
		case models.CategoryOTT:
			home.OTT = append(home.OTT, articles[i])
		case models.CategoryMovie:
			home.Movies = append(home.Movies, articles[i])
		case models.CategoryNews:
			home.News = append(home.News, articles[i])
		}
		if home.Featured == nil && articles[i].IsFeatured {
			home.Featured = &articles[i]
		}
	}
	if home.Featured == nil && len(articles) > 0 {
		home.Featured = &articles[0]
	}
	return home, nil
}
