package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/cinestream-cms/internal/models"
	"github.com/google/uuid"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateDraft checks whether a draft is complete enough to publish.
// A non-empty result means the publish transaction must abort and the
// draft stays as-is so no input is lost.
func ValidateDraft(d *models.Draft) []ValidationError {
	var errors []ValidationError

	if d.ID == "" {
		errors = append(errors, ValidationError{Field: "id", Message: "id is required"})
	} else if !isValidUUID(d.ID) {
		errors = append(errors, ValidationError{Field: "id", Message: "invalid UUID format", Value: d.ID})
	}

	if d.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if d.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(d.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: d.Slug})
	}

	if d.ImageURL == "" {
		errors = append(errors, ValidationError{Field: "image_url", Message: "image_url is required"})
	}

	if d.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if !models.ValidCategories[d.Category] {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: "invalid category, must be one of: OTT Releases, Movie Releases, Cinema News",
			Value:   d.Category,
		})
	}

	if d.Platform != "" && !models.ValidPlatforms[d.Platform] {
		errors = append(errors, ValidationError{Field: "platform", Message: "invalid platform", Value: d.Platform})
	}

	if d.ReleaseDate != "" && !isValidDate(d.ReleaseDate) {
		errors = append(errors, ValidationError{Field: "release_date", Message: "invalid date, expected YYYY-MM-DD", Value: d.ReleaseDate})
	}

	if d.PublishedAt == "" {
		errors = append(errors, ValidationError{Field: "published_at", Message: "published_at is required"})
	} else if !isValidDate(d.PublishedAt) {
		errors = append(errors, ValidationError{Field: "published_at", Message: "invalid date, expected YYYY-MM-DD or RFC3339", Value: d.PublishedAt})
	}

	if len(d.MovieList) > models.MaxMovieListItems {
		errors = append(errors, ValidationError{
			Field:   "movie_list",
			Message: fmt.Sprintf("movie list exceeds maximum of %d items (has %d)", models.MaxMovieListItems, len(d.MovieList)),
		})
	}
	for i, item := range d.MovieList {
		if item.ID == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("movie_list[%d].id", i), Message: "id is required"})
		}
		if item.Title == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("movie_list[%d].title", i), Message: "title is required"})
		}
		if item.Platform != "" && !models.ValidPlatforms[item.Platform] {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("movie_list[%d].platform", i), Message: "invalid platform", Value: item.Platform})
		}
	}

	return errors
}

// ValidateSiteConfig checks the singleton site configuration before a save
func ValidateSiteConfig(cfg *models.SiteConfig) []ValidationError {
	var errors []ValidationError

	if cfg.SiteName == "" {
		errors = append(errors, ValidationError{Field: "site_name", Message: "site_name is required"})
	}
	if cfg.Description == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	}

	return errors
}

// isValidUUID checks if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// isValidDate accepts the two date shapes the store carries: a plain
// calendar date or a full RFC3339 timestamp.
func isValidDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
