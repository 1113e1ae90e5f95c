package models

import (
	"strings"
	"time"
)

// Draft is an in-progress article being authored in the admin console. It is
// a distinct type from Article: a draft may be incomplete while it is being
// edited, and only the publish transaction converts it into a persisted
// Article via Finalize. Edits to a draft never touch the stored collection.
type Draft struct {
	Article

	// IsNew is true for drafts created from scratch, false for drafts
	// loaded from an existing article.
	IsNew bool `json:"is_new"`
}

// NewDraft creates a fresh draft with a generated id and the editorial
// defaults a new post starts from: category OTT, Netflix platform, today's
// dates, Hindi/Drama presets and one blank FAQ row.
func NewDraft(id string, now time.Time) *Draft {
	return &Draft{
		Article: Article{
			ID:          id,
			Category:    CategoryOTT,
			Platform:    PlatformNetflix,
			ReleaseDate: now.Format("2006-01-02"),
			PublishedAt: now.Format(time.RFC3339),
			Language:    []string{"Hindi"},
			Genre:       []string{"Drama"},
			Cast:        []string{},
			FAQs:        []FAQ{{}},
			MovieList:   []MovieListItem{},
		},
		IsNew: true,
	}
}

// DraftFrom returns an editing draft holding a deep copy of an existing
// article, so field edits cannot leak into the stored collection.
func DraftFrom(a Article) *Draft {
	c := a
	c.Language = append([]string(nil), a.Language...)
	c.Genre = append([]string(nil), a.Genre...)
	c.Cast = append([]string(nil), a.Cast...)
	c.FAQs = append([]FAQ(nil), a.FAQs...)
	c.MovieList = append([]MovieListItem(nil), a.MovieList...)
	return &Draft{Article: c}
}

// Finalize converts the draft into the Article that gets persisted,
// dropping FAQ rows that were left entirely blank.
func (d *Draft) Finalize() Article {
	a := d.Article
	if len(a.FAQs) > 0 {
		kept := make([]FAQ, 0, len(a.FAQs))
		for _, f := range a.FAQs {
			if strings.TrimSpace(f.Question) == "" && strings.TrimSpace(f.Answer) == "" {
				continue
			}
			kept = append(kept, f)
		}
		if len(kept) == 0 {
			kept = nil
		}
		a.FAQs = kept
	}
	if len(a.MovieList) == 0 {
		a.MovieList = nil
	}
	return a
}
