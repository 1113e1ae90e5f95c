package policy_test

import (
	"reflect"
	"testing"

	"github.com/cinestream-cms/internal/models"
	"github.com/cinestream-cms/internal/policy"
)

func TestDeriveSlug(t *testing.T) {
	got := policy.DeriveSlug("Pushpa 2: The Rule!", models.CategoryOTT, false)
	if got != "pushpa-2-the-rule" {
		t.Errorf("Expected pushpa-2-the-rule, got %q", got)
	}
}

func TestDeriveSlugWithCategoryPrefix(t *testing.T) {
	cases := []struct {
		title    string
		category models.Category
		expected string
	}{
		{"Pushpa 2: The Rule!", models.CategoryOTT, "ott-pushpa-2-the-rule"},
		{"Pushpa 2: The Rule!", models.CategoryMovie, "movie-pushpa-2-the-rule"},
		{"Pushpa 2: The Rule!", models.CategoryNews, "news-pushpa-2-the-rule"},
	}
	for _, tc := range cases {
		got := policy.DeriveSlug(tc.title, tc.category, true)
		if got != tc.expected {
			t.Errorf("DeriveSlug(%q, %s): expected %q, got %q", tc.title, tc.category, tc.expected, got)
		}
	}
}

func TestDeriveSlugEdges(t *testing.T) {
	if got := policy.DeriveSlug("  !!!  ", models.CategoryOTT, false); got != "" {
		t.Errorf("Expected empty slug for punctuation-only title, got %q", got)
	}
	// Prefix is not applied to an empty slug
	if got := policy.DeriveSlug("", models.CategoryOTT, true); got != "" {
		t.Errorf("Expected empty slug for empty title, got %q", got)
	}
	if got := policy.DeriveSlug("Maharani -- Season   3", models.CategoryOTT, false); got != "maharani-season-3" {
		t.Errorf("Expected collapsed hyphens, got %q", got)
	}
}

func TestParseCommaList(t *testing.T) {
	got := policy.ParseCommaList("Allu Arjun,  Rashmika Mandanna ,,Fahadh Faasil")
	want := []string{"Allu Arjun", "Rashmika Mandanna", "Fahadh Faasil"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseCommaListEmpty(t *testing.T) {
	if got := policy.ParseCommaList(""); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
	if got := policy.ParseCommaList(" , ,, "); len(got) != 0 {
		t.Errorf("Expected empty list for separators only, got %v", got)
	}
}

func TestFieldsVisibleFor(t *testing.T) {
	ott := policy.FieldsVisibleFor(models.CategoryOTT)
	if !ott.Platform || !ott.MovieList || ott.TrailerURL {
		t.Errorf("Unexpected OTT field set: %+v", ott)
	}

	movie := policy.FieldsVisibleFor(models.CategoryMovie)
	if !movie.Platform || !movie.TrailerURL || movie.MovieList {
		t.Errorf("Unexpected movie field set: %+v", movie)
	}

	news := policy.FieldsVisibleFor(models.CategoryNews)
	if !news.Platform || !news.TrailerURL || news.MovieList {
		t.Errorf("Unexpected news field set: %+v", news)
	}
}

func TestCategorySlug(t *testing.T) {
	cases := map[models.Category]string{
		models.CategoryOTT:   "ott-releases",
		models.CategoryMovie: "movie-releases",
		models.CategoryNews:  "cinema-news",
	}
	for cat, want := range cases {
		if got := policy.CategorySlug(cat); got != want {
			t.Errorf("CategorySlug(%s): expected %q, got %q", cat, want, got)
		}
	}
}

func TestPlatformSlug(t *testing.T) {
	cases := map[models.Platform]string{
		models.PlatformNetflix: "netflix",
		models.PlatformPrime:   "amazon-prime-video",
		models.PlatformHotstar: "disney-hotstar",
		models.PlatformZee5:    "zee5",
	}
	for p, want := range cases {
		if got := policy.PlatformSlug(p); got != want {
			t.Errorf("PlatformSlug(%s): expected %q, got %q", p, want, got)
		}
	}
}
