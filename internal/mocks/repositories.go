package mocks

import (
	"context"

	"github.com/cinestream-cms/internal/models"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
// Articles keeps insertion order, matching the real store's newest-first
// prepend semantics.
type MockArticleRepository struct {
	Articles    []models.Article
	ListError   error
	SaveError   error
	ListCalls   int
	UpsertCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{}
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append([]models.Article(nil), m.Articles...), nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			a := m.Articles[i]
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MockArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	for i := range m.Articles {
		if m.Articles[i].Slug == slug {
			a := m.Articles[i]
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MockArticleRepository) Upsert(ctx context.Context, article models.Article) error {
	m.UpsertCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	for i := range m.Articles {
		if m.Articles[i].ID == article.ID {
			m.Articles[i] = article
			return nil
		}
	}
	m.Articles = append([]models.Article{article}, m.Articles...)
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	kept := m.Articles[:0]
	for _, a := range m.Articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	m.Articles = kept
	return nil
}

func (m *MockArticleRepository) SlugInUse(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.ListError != nil {
		return false, m.ListError
	}
	for _, a := range m.Articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// MockConfigRepository is a mock implementation of ConfigRepository
type MockConfigRepository struct {
	Config    *models.SiteConfig
	GetError  error
	SaveError error
	SaveCalls int
}

func NewMockConfigRepository() *MockConfigRepository {
	return &MockConfigRepository{}
}

func (m *MockConfigRepository) Get(ctx context.Context) (models.SiteConfig, error) {
	if m.GetError != nil {
		return models.SiteConfig{}, m.GetError
	}
	if m.Config == nil {
		cfg := models.DefaultSiteConfig()
		m.Config = &cfg
	}
	return *m.Config, nil
}

func (m *MockConfigRepository) Save(ctx context.Context, cfg models.SiteConfig) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Config = &cfg
	return nil
}
