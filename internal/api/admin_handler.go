package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// adminTokenHeader carries the session token issued by login
const adminTokenHeader = "X-Admin-Token"

// AdminHandler serves the admin console surface
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("component", "admin_handler").Logger(),
	}
}

// requireSession rejects requests without a live admin session
func (h *AdminHandler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(adminTokenHeader)
		if token == "" || !h.services.Editor.Authenticated(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *AdminHandler) token(c *gin.Context) string {
	return c.GetHeader(adminTokenHeader)
}

// draftError maps draft operation failures to responses
func (h *AdminHandler) draftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
	case errors.Is(err, models.ErrNoDraft):
		c.JSON(http.StatusConflict, gin.H{"error": "no draft in progress"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrListFull):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "movie list already holds the maximum of 10 items"})
	default:
		h.log.Error().Err(err).Msg("Draft operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Login handles POST /v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Passcode string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.services.Editor.Login(req.Passcode)
	if errors.Is(err, models.ErrInvalidPasscode) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid passcode"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles POST /v1/admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	h.services.Editor.Logout(h.token(c))
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Notice handles GET /v1/admin/notice; the publish notice auto-clears
// after a few seconds, so reads past the window see an empty notice
func (h *AdminHandler) Notice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notice": h.services.Editor.Notice(h.token(c))})
}

// ListArticles handles GET /v1/admin/articles
func (h *AdminHandler) ListArticles(c *gin.Context) {
	articles, err := h.services.Content.ListArticles(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// DeleteArticle handles DELETE /v1/admin/articles/:id; deleting an
// unknown id succeeds as a no-op
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	if err := h.services.Editor.DeleteArticle(c.Request.Context(), h.token(c), c.Param("id")); err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// NewDraft handles POST /v1/admin/drafts
func (h *AdminHandler) NewDraft(c *gin.Context) {
	draft, err := h.services.Editor.NewDraft(h.token(c))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// EditArticle handles POST /v1/admin/drafts/from/:id
func (h *AdminHandler) EditArticle(c *gin.Context) {
	draft, err := h.services.Editor.EditArticle(c.Request.Context(), h.token(c), c.Param("id"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft handles GET /v1/admin/draft
func (h *AdminHandler) GetDraft(c *gin.Context) {
	draft, err := h.services.Editor.Draft(h.token(c))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateDraft handles PATCH /v1/admin/draft
func (h *AdminHandler) UpdateDraft(c *gin.Context) {
	var upd service.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.services.Editor.UpdateDraft(h.token(c), upd)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ChangeCategory handles PUT /v1/admin/draft/category
func (h *AdminHandler) ChangeCategory(c *gin.Context) {
	var req struct {
		Category models.Category `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !models.ValidCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	draft, err := h.services.Editor.ChangeCategory(h.token(c), req.Category)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Publish handles POST /v1/admin/draft/publish. Validation failures come
// back as 422 with the field errors; the draft stays open so no input is
// lost.
func (h *AdminHandler) Publish(c *gin.Context) {
	article, validationErrs, err := h.services.Editor.Publish(c.Request.Context(), h.token(c))
	if err != nil {
		h.draftError(c, err)
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": validationErrs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": article,
		"notice":  h.services.Editor.Notice(h.token(c)),
	})
}

// Discard handles DELETE /v1/admin/draft
func (h *AdminHandler) Discard(c *gin.Context) {
	if err := h.services.Editor.Discard(h.token(c)); err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}

// AddFAQ handles POST /v1/admin/draft/faqs
func (h *AdminHandler) AddFAQ(c *gin.Context) {
	draft, err := h.services.Editor.AddFAQ(h.token(c))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateFAQ handles PUT /v1/admin/draft/faqs/:index
func (h *AdminHandler) UpdateFAQ(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid faq index"})
		return
	}

	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.services.Editor.UpdateFAQ(h.token(c), index, faq)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveFAQ handles DELETE /v1/admin/draft/faqs/:index
func (h *AdminHandler) RemoveFAQ(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid faq index"})
		return
	}

	draft, err := h.services.Editor.RemoveFAQ(h.token(c), index)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddListItem handles POST /v1/admin/draft/movie-list
func (h *AdminHandler) AddListItem(c *gin.Context) {
	var item models.MovieListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.services.Editor.AddListItem(h.token(c), item)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateListItem handles PUT /v1/admin/draft/movie-list/:item_id
func (h *AdminHandler) UpdateListItem(c *gin.Context) {
	var item models.MovieListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.services.Editor.UpdateListItem(h.token(c), c.Param("item_id"), item)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveListItem handles DELETE /v1/admin/draft/movie-list/:item_id
func (h *AdminHandler) RemoveListItem(c *gin.Context) {
	draft, err := h.services.Editor.RemoveListItem(h.token(c), c.Param("item_id"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetSiteConfig handles GET /v1/admin/site-config
func (h *AdminHandler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load site config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveSiteConfig handles PUT /v1/admin/site-config
func (h *AdminHandler) SaveSiteConfig(c *gin.Context) {
	var cfg models.SiteConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	validationErrs, err := h.services.Settings.Save(c.Request.Context(), cfg)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to save site config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save site config"})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": validationErrs,
		})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
