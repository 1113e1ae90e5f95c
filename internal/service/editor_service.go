package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/cinestream-cms/internal/config"
	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/policy"
	"github.com/cinestream-cms/internal/repository"
	"github.com/cinestream-cms/internal/validation"
	"github.com/rs/zerolog"
)

// noticeTTL is how long the transient publish notice stays visible
const noticeTTL = 3 * time.Second

// DraftUpdate carries partial field edits for the session draft. Nil
// pointers leave the field untouched. Cast, Language and Genre take the
// raw comma-separated text the admin form submits.
type DraftUpdate struct {
	Title       *string          `json:"title"`
	Slug        *string          `json:"slug"`
	Excerpt     *string          `json:"excerpt"`
	Content     *string          `json:"content"`
	Platform    *models.Platform `json:"platform"`
	ReleaseDate *string          `json:"release_date"`
	PublishedAt *string          `json:"published_at"`
	Director    *string          `json:"director"`
	ImageURL    *string          `json:"image_url"`
	TrailerURL  *string          `json:"trailer_url"`
	Rating      *string          `json:"rating"`
	IsFeatured  *bool            `json:"is_featured"`
	Cast        *string          `json:"cast"`
	Language    *string          `json:"language"`
	Genre       *string          `json:"genre"`
}

// session is one admin authoring session. A nil draft means the session
// is in the listing state.
type session struct {
	draft       *models.Draft
	notice      string
	noticeUntil time.Time
	expiresAt   time.Time
}

type editorService struct {
	repos *repository.Repositories
	cfg   *config.Config
	genID func() string
	now   func() time.Time
	log   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

func newEditorService(repos *repository.Repositories, cfg *config.Config, genID func() string, now func() time.Time, log zerolog.Logger) *editorService {
	return &editorService{
		repos:    repos,
		cfg:      cfg,
		genID:    genID,
		now:      now,
		log:      log.With().Str("component", "editor_service").Logger(),
		sessions: make(map[string]*session),
	}
}

// Login checks the passcode and opens a session in the listing state.
// This is a plain string compare with no lockout or backoff; it mirrors
// the product's client-side gate and is explicitly not a security
// boundary.
func (s *editorService) Login(passcode string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.cfg.Admin.Passcode)) != 1 {
		s.log.Warn().Msg("Rejected admin login attempt")
		return "", models.ErrInvalidPasscode
	}

	token := s.genID()
	s.mu.Lock()
	s.sessions[token] = &session{expiresAt: s.now().Add(s.cfg.Admin.SessionTTL)}
	s.mu.Unlock()

	s.log.Info().Msg("Admin session opened")
	return token, nil
}

// Logout drops the session, discarding any open draft
func (s *editorService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Authenticated reports whether the token belongs to a live session
func (s *editorService) Authenticated(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.sessionLocked(token)
	return err == nil
}

// sessionLocked resolves a token to its session, pruning it when expired.
// Callers must hold s.mu.
func (s *editorService) sessionLocked(token string) (*session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return nil, models.ErrSessionNotFound
	}
	return sess, nil
}

// editingLocked resolves a token to a session with an open draft
func (s *editorService) editingLocked(token string) (*session, error) {
	sess, err := s.sessionLocked(token)
	if err != nil {
		return nil, err
	}
	if sess.draft == nil {
		return nil, models.ErrNoDraft
	}
	return sess, nil
}

// NewDraft moves the session from listing to editing a fresh draft
func (s *editorService) NewDraft(token string) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(token)
	if err != nil {
		return nil, err
	}
	sess.draft = models.NewDraft(s.genID(), s.now())
	return sess.draft, nil
}

// EditArticle moves the session from listing to editing a copy of an
// existing article. Edits do not affect the stored collection until the
// draft is published.
func (s *editorService) EditArticle(ctx context.Context, token, articleID string) (*models.Draft, error) {
	article, err := s.repos.Article.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(token)
	if err != nil {
		return nil, err
	}
	sess.draft = models.DraftFrom(*article)
	return sess.draft, nil
}

// Draft returns the session's open draft
func (s *editorService) Draft(token string) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	return sess.draft, nil
}

// UpdateDraft applies field edits to the open draft. Setting the title
// derives the slug only while the slug is still empty, so a manually
// edited permalink is never overwritten.
func (s *editorService) UpdateDraft(token string, upd DraftUpdate) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	d := sess.draft

	if upd.Title != nil {
		d.Title = *upd.Title
		if d.Slug == "" {
			d.Slug = policy.DeriveSlug(d.Title, d.Category, s.cfg.Content.SlugCategoryPrefix)
		}
	}
	if upd.Slug != nil {
		d.Slug = *upd.Slug
	}
	if upd.Excerpt != nil {
		d.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		d.Content = *upd.Content
	}
	if upd.Platform != nil {
		d.Platform = *upd.Platform
	}
	if upd.ReleaseDate != nil {
		d.ReleaseDate = *upd.ReleaseDate
	}
	if upd.PublishedAt != nil {
		d.PublishedAt = *upd.PublishedAt
	}
	if upd.Director != nil {
		d.Director = *upd.Director
	}
	if upd.ImageURL != nil {
		d.ImageURL = *upd.ImageURL
	}
	if upd.TrailerURL != nil {
		d.TrailerURL = *upd.TrailerURL
	}
	if upd.Rating != nil {
		d.Rating = *upd.Rating
	}
	if upd.IsFeatured != nil {
		d.IsFeatured = *upd.IsFeatured
	}
	if upd.Cast != nil {
		d.Cast = policy.ParseCommaList(*upd.Cast)
	}
	if upd.Language != nil {
		d.Language = policy.ParseCommaList(*upd.Language)
	}
	if upd.Genre != nil {
		d.Genre = policy.ParseCommaList(*upd.Genre)
	}

	return d, nil
}

// ChangeCategory switches the draft's category, re-derives the slug from
// the current title and prunes fields that are not visible for the new
// category, so stale state from the old category can never be published.
func (s *editorService) ChangeCategory(token string, cat models.Category) (*models.Draft, error) {
	if !models.ValidCategories[cat] {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrNotFound, cat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	d := sess.draft

	d.Category = cat
	if d.Title != "" {
		d.Slug = policy.DeriveSlug(d.Title, cat, s.cfg.Content.SlugCategoryPrefix)
	}
	pruneInvisibleFields(d)

	return d, nil
}

// pruneInvisibleFields clears optional fields the capability table marks
// inactive for the draft's category
func pruneInvisibleFields(d *models.Draft) {
	visible := policy.FieldsVisibleFor(d.Category)
	if !visible.Platform {
		d.Platform = ""
	}
	if !visible.TrailerURL {
		d.TrailerURL = ""
	}
	if !visible.MovieList {
		d.MovieList = nil
	}
}

// AddFAQ appends a blank FAQ row to the open draft
func (s *editorService) AddFAQ(token string) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	sess.draft.FAQs = append(sess.draft.FAQs, models.FAQ{})
	return sess.draft, nil
}

// UpdateFAQ replaces the FAQ row at the given index
func (s *editorService) UpdateFAQ(token string, index int, faq models.FAQ) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sess.draft.FAQs) {
		return nil, fmt.Errorf("%w: faq index %d", models.ErrNotFound, index)
	}
	sess.draft.FAQs[index] = faq
	return sess.draft, nil
}

// RemoveFAQ deletes the FAQ row at the given index
func (s *editorService) RemoveFAQ(token string, index int) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sess.draft.FAQs) {
		return nil, fmt.Errorf("%w: faq index %d", models.ErrNotFound, index)
	}
	sess.draft.FAQs = append(sess.draft.FAQs[:index], sess.draft.FAQs[index+1:]...)
	return sess.draft, nil
}

// AddListItem appends a movie-list item to the open draft. Once the list
// holds the maximum it returns models.ErrListFull; the item is never
// silently truncated away.
func (s *editorService) AddListItem(token string, item models.MovieListItem) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	if len(sess.draft.MovieList) >= models.MaxMovieListItems {
		return nil, models.ErrListFull
	}
	if item.ID == "" {
		item.ID = s.genID()
	}
	sess.draft.MovieList = append(sess.draft.MovieList, item)
	return sess.draft, nil
}

// UpdateListItem replaces the movie-list item with the given id, keeping
// its id and position
func (s *editorService) UpdateListItem(token, itemID string, item models.MovieListItem) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	for i := range sess.draft.MovieList {
		if sess.draft.MovieList[i].ID == itemID {
			item.ID = itemID
			sess.draft.MovieList[i] = item
			return sess.draft, nil
		}
	}
	return nil, fmt.Errorf("%w: movie list item %s", models.ErrNotFound, itemID)
}

// RemoveListItem deletes the movie-list item with the given id
func (s *editorService) RemoveListItem(token, itemID string) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, err
	}
	for i := range sess.draft.MovieList {
		if sess.draft.MovieList[i].ID == itemID {
			sess.draft.MovieList = append(sess.draft.MovieList[:i], sess.draft.MovieList[i+1:]...)
			return sess.draft, nil
		}
	}
	return nil, fmt.Errorf("%w: movie list item %s", models.ErrNotFound, itemID)
}

// Publish is the only path by which a draft becomes durable state. It
// prunes fields not visible for the draft's category, validates the
// draft (including slug uniqueness across the collection), and commits
// it as an upsert. On validation failure the draft is kept intact so no
// input is lost. On success the session returns to the listing state
// with a transient notice.
func (s *editorService) Publish(ctx context.Context, token string) (*models.Article, []validation.ValidationError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return nil, nil, err
	}
	d := sess.draft

	pruneInvisibleFields(d)

	errs := validation.ValidateDraft(d)
	if d.Slug != "" {
		inUse, err := s.repos.Article.SlugInUse(ctx, d.Slug, d.ID)
		if err != nil {
			return nil, nil, err
		}
		if inUse {
			errs = append(errs, validation.ValidationError{Field: "slug", Message: "slug already in use by another article", Value: d.Slug})
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	article := d.Finalize()
	if err := s.repos.Article.Upsert(ctx, article); err != nil {
		return nil, nil, err
	}

	sess.draft = nil
	sess.notice = "Content published successfully!"
	sess.noticeUntil = s.now().Add(noticeTTL)

	s.log.Info().Str("article_id", article.ID).Str("slug", article.Slug).Msg("Article published")
	return &article, nil, nil
}

// Discard drops the open draft without persisting anything
func (s *editorService) Discard(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.editingLocked(token)
	if err != nil {
		return err
	}
	sess.draft = nil
	return nil
}

// DeleteArticle removes an article from the collection. Deleting an
// unknown id is a no-op.
func (s *editorService) DeleteArticle(ctx context.Context, token, id string) error {
	s.mu.Lock()
	_, err := s.sessionLocked(token)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.repos.Article.Delete(ctx, id)
}

// Notice returns the transient publish notice while it is still fresh.
// After the notice window, or after the session is gone, it reads empty.
func (s *editorService) Notice(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked(token)
	if err != nil {
		return ""
	}
	if s.now().After(sess.noticeUntil) {
		return ""
	}
	return sess.notice
}
