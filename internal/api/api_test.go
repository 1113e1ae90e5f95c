package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinestream-cms/internal/api"
	"github.com/cinestream-cms/internal/config"
	"github.com/cinestream-cms/internal/mocks"
	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/repository"
	"github.com/cinestream-cms/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockArticleRepository, *mocks.MockConfigRepository) {
	gin.SetMode(gin.TestMode)

	mockArticles := mocks.NewMockArticleRepository()
	mockConfig := mocks.NewMockConfigRepository()

	repos := &repository.Repositories{
		Article: mockArticles,
		Config:  mockConfig,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Admin: config.AdminConfig{
			Passcode:   "admin123",
			SessionTTL: 24 * time.Hour,
		},
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, cfg, log)
	router := api.NewRouter(services, cfg, log)

	return router, mockArticles, mockConfig
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, "POST", "/v1/admin/login", "", map[string]string{"passcode": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatal("Expected a session token")
	}
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "cinestream-cms" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestPublicListArticles(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	mockArticles.Articles = models.SeedArticles()

	w := doJSON(router, "GET", "/v1/articles", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Count != len(mockArticles.Articles) {
		t.Errorf("Expected count %d, got %d", len(mockArticles.Articles), response.Count)
	}
}

func TestPublicListArticlesByCategory(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	mockArticles.Articles = models.SeedArticles()

	w := doJSON(router, "GET", "/v1/articles?category=ott-releases", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	for _, a := range response.Articles {
		if a.Category != models.CategoryOTT {
			t.Errorf("Expected only OTT articles, got %q", a.Category)
		}
	}
}

func TestPublicGetArticleNotFound(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/v1/articles/no-such-slug", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestPublicHomepage(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	mockArticles.Articles = models.SeedArticles()

	w := doJSON(router, "GET", "/v1/homepage", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var home service.Homepage
	json.Unmarshal(w.Body.Bytes(), &home)
	if home.Featured == nil {
		t.Error("Expected a featured article on the homepage")
	}
}

func TestPublicSiteConfig(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/v1/site-config", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var cfg models.SiteConfig
	json.Unmarshal(w.Body.Bytes(), &cfg)
	if cfg.SiteName == "" {
		t.Error("Expected seeded site config")
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doJSON(router, "GET", "/v1/admin/articles", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/v1/admin/articles", "bogus-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 with stale token, got %d", w.Code)
	}
}

func TestAdminLoginRejectsWrongPasscode(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doJSON(router, "POST", "/v1/admin/login", "", map[string]string{"passcode": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestAdminPublishFlow(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	token := loginAdmin(t, router)

	w := doJSON(router, "POST", "/v1/admin/drafts", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "PATCH", "/v1/admin/draft", token, map[string]interface{}{
		"title":     "RRR Sequel Confirmed",
		"image_url": "https://example.com/rrr.jpg",
		"content":   "<p>Official word from the studio.</p>",
		"cast":      "Ram Charan, Jr NTR",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var draft models.Draft
	json.Unmarshal(w.Body.Bytes(), &draft)
	if draft.Slug != "rrr-sequel-confirmed" {
		t.Errorf("Expected derived slug, got %q", draft.Slug)
	}
	if len(draft.Cast) != 2 {
		t.Errorf("Expected parsed cast list, got %v", draft.Cast)
	}

	w = doJSON(router, "POST", "/v1/admin/draft/publish", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var published struct {
		Article models.Article `json:"article"`
		Notice  string         `json:"notice"`
	}
	json.Unmarshal(w.Body.Bytes(), &published)
	if published.Notice == "" {
		t.Error("Expected a publish notice")
	}

	if len(mockArticles.Articles) != 1 {
		t.Fatalf("Expected 1 stored article, got %d", len(mockArticles.Articles))
	}

	// The published article is immediately visible on the public surface
	w = doJSON(router, "GET", "/v1/articles/rrr-sequel-confirmed", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected published article on public surface, got %d", w.Code)
	}
}

func TestAdminPublishValidationFailure(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	token := loginAdmin(t, router)

	doJSON(router, "POST", "/v1/admin/drafts", token, nil)

	w := doJSON(router, "POST", "/v1/admin/draft/publish", token, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response.Fields) == 0 {
		t.Error("Expected field errors in the 422 body")
	}
	if len(mockArticles.Articles) != 0 {
		t.Error("Expected nothing stored on validation failure")
	}

	// The draft is still open for correction
	w = doJSON(router, "GET", "/v1/admin/draft", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected draft retained, got %d", w.Code)
	}
}

func TestAdminMovieListOverflow(t *testing.T) {
	router, _, _ := setupTestRouter()
	token := loginAdmin(t, router)

	doJSON(router, "POST", "/v1/admin/drafts", token, nil)

	for i := 0; i < models.MaxMovieListItems; i++ {
		w := doJSON(router, "POST", "/v1/admin/draft/movie-list", token, map[string]string{
			"title": fmt.Sprintf("Movie %d", i),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("AddListItem %d failed with status %d", i, w.Code)
		}
	}

	w := doJSON(router, "POST", "/v1/admin/draft/movie-list", token, map[string]string{"title": "Overflow"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for full list, got %d", w.Code)
	}
}

func TestAdminChangeCategory(t *testing.T) {
	router, _, _ := setupTestRouter()
	token := loginAdmin(t, router)

	doJSON(router, "POST", "/v1/admin/drafts", token, nil)
	doJSON(router, "PATCH", "/v1/admin/draft", token, map[string]string{"title": "Top OTT Picks"})
	doJSON(router, "POST", "/v1/admin/draft/movie-list", token, map[string]string{"title": "Drishyam"})

	w := doJSON(router, "PUT", "/v1/admin/draft/category", token, map[string]string{"category": "Cinema News"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var draft models.Draft
	json.Unmarshal(w.Body.Bytes(), &draft)
	if draft.Category != models.CategoryNews {
		t.Errorf("Expected news category, got %q", draft.Category)
	}
	if len(draft.MovieList) != 0 {
		t.Errorf("Expected movie list pruned, got %v", draft.MovieList)
	}

	w = doJSON(router, "PUT", "/v1/admin/draft/category", token, map[string]string{"category": "Bollywood"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown category, got %d", w.Code)
	}
}

func TestAdminDeleteArticle(t *testing.T) {
	router, mockArticles, _ := setupTestRouter()
	mockArticles.Articles = models.SeedArticles()
	token := loginAdmin(t, router)

	id := mockArticles.Articles[0].ID
	w := doJSON(router, "DELETE", "/v1/admin/articles/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	// Deleting again is still a 200 no-op
	w = doJSON(router, "DELETE", "/v1/admin/articles/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected idempotent delete, got %d", w.Code)
	}
}

func TestAdminSiteConfigRoundTrip(t *testing.T) {
	router, _, mockConfig := setupTestRouter()
	token := loginAdmin(t, router)

	w := doJSON(router, "GET", "/v1/admin/site-config", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var cfg models.SiteConfig
	json.Unmarshal(w.Body.Bytes(), &cfg)
	cfg.SiteName = "CineStream Renamed"

	w = doJSON(router, "PUT", "/v1/admin/site-config", token, cfg)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if mockConfig.SaveCalls != 1 {
		t.Errorf("Expected 1 save, got %d", mockConfig.SaveCalls)
	}

	cfg.SiteName = ""
	w = doJSON(router, "PUT", "/v1/admin/site-config", token, cfg)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for empty site name, got %d", w.Code)
	}
}

func TestAdminLogoutEndsSession(t *testing.T) {
	router, _, _ := setupTestRouter()
	token := loginAdmin(t, router)

	w := doJSON(router, "POST", "/v1/admin/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/v1/admin/articles", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 after logout, got %d", w.Code)
	}
}
