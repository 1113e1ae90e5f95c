package api

import (
	"errors"
	"net/http"

	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublicHandler serves the public reading surface
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("component", "public_handler").Logger(),
	}
}

// ListArticles handles GET /v1/articles with optional category and
// platform filter slugs
func (h *PublicHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		articles []models.Article
		err      error
	)
	switch {
	case c.Query("category") != "":
		articles, err = h.services.Content.ByCategory(ctx, c.Query("category"))
	case c.Query("platform") != "":
		articles, err = h.services.Content.ByPlatform(ctx, c.Query("platform"))
	default:
		articles, err = h.services.Content.ListArticles(ctx)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetArticle handles GET /v1/articles/:slug
func (h *PublicHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Content.GetArticle(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// Homepage handles GET /v1/homepage
func (h *PublicHandler) Homepage(c *gin.Context) {
	home, err := h.services.Content.Homepage(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build homepage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build homepage"})
		return
	}

	c.JSON(http.StatusOK, home)
}

// SiteConfig handles GET /v1/site-config
func (h *PublicHandler) SiteConfig(c *gin.Context) {
	cfg, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load site config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
