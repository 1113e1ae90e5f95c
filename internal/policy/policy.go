// Package policy holds the pure slug and category-visibility rules shared
// by the editor, the validator and the public filters. It is the single
// source of truth for both; nothing here touches storage.
package policy

import (
	"regexp"
	"strings"

	"github.com/cinestream-cms/internal/models"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug builds a URL-safe identifier from a title: lowercase, every
// run of non-alphanumeric characters collapsed to a single hyphen, edge
// hyphens stripped. When categoryPrefix is set, the category token
// (ott-/movie-/news-) is prepended.
func DeriveSlug(title string, cat models.Category, categoryPrefix bool) string {
	slug := strings.ToLower(title)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if categoryPrefix && slug != "" {
		if token := categoryToken(cat); token != "" {
			slug = token + "-" + slug
		}
	}
	return slug
}

func categoryToken(cat models.Category) string {
	switch cat {
	case models.CategoryOTT:
		return "ott"
	case models.CategoryMovie:
		return "movie"
	case models.CategoryNews:
		return "news"
	}
	return ""
}

// FieldSet reports which optional article fields are active for a category.
type FieldSet struct {
	Platform   bool
	TrailerURL bool
	MovieList  bool
}

// FieldsVisibleFor is the capability table mapping a category to its active
// optional fields. The platform applies to every category; trailers only to
// movie and news articles; the ranked movie list only to OTT listicles.
func FieldsVisibleFor(cat models.Category) FieldSet {
	switch cat {
	case models.CategoryOTT:
		return FieldSet{Platform: true, MovieList: true}
	case models.CategoryMovie, models.CategoryNews:
		return FieldSet{Platform: true, TrailerURL: true}
	}
	return FieldSet{Platform: true}
}

// ParseCommaList splits comma-separated form input into a list: segments
// are trimmed, empty segments dropped, order preserved.
func ParseCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CategorySlug returns the URL token a category is filtered by, e.g.
// "ott-releases" for the OTT section.
func CategorySlug(cat models.Category) string {
	return DeriveSlug(string(cat), cat, false)
}

// PlatformSlug returns the URL token a platform is filtered by, e.g.
// "amazon-prime-video".
func PlatformSlug(p models.Platform) string {
	return DeriveSlug(string(p), "", false)
}
