package models

// Category classifies an article into one of the site's three sections
type Category string

const (
	CategoryOTT   Category = "OTT Releases"
	CategoryMovie Category = "Movie Releases"
	CategoryNews  Category = "Cinema News"
)

// ValidCategories defines allowed article categories
var ValidCategories = map[Category]bool{
	CategoryOTT:   true,
	CategoryMovie: true,
	CategoryNews:  true,
}

// Platform is a distribution platform (streaming services plus theatrical)
type Platform string

const (
	PlatformNetflix    Platform = "Netflix"
	PlatformPrime      Platform = "Amazon Prime Video"
	PlatformHotstar    Platform = "Disney+ Hotstar"
	PlatformZee5       Platform = "ZEE5"
	PlatformSonyLiv    Platform = "SonyLIV"
	PlatformJioHotstar Platform = "JioHotstar"
	PlatformAha        Platform = "Aha"
	PlatformTheatrical Platform = "Theatrical"
)

// ValidPlatforms defines allowed distribution platforms
var ValidPlatforms = map[Platform]bool{
	PlatformNetflix:    true,
	PlatformPrime:      true,
	PlatformHotstar:    true,
	PlatformZee5:       true,
	PlatformSonyLiv:    true,
	PlatformJioHotstar: true,
	PlatformAha:        true,
	PlatformTheatrical: true,
}

// MaxMovieListItems caps the length of a ranked listicle
const MaxMovieListItems = 10

// FAQ is a question/answer pair attached to an article
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MovieListItem is one entry of a ranked movie listicle. Its ID is unique
// within the owning article's list, not globally.
type MovieListItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	VideoURL    string   `json:"video_url,omitempty"`
	Platform    Platform `json:"platform,omitempty"`
}

// Article represents a published article. ID is the only stable identity;
// the slug is a lookup convenience for detail views. Content may embed raw
// markup and is stored as-is. Dates are stored as strings: ReleaseDate as
// YYYY-MM-DD, PublishedAt as either YYYY-MM-DD or RFC3339.
type Article struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Excerpt     string          `json:"excerpt"`
	Content     string          `json:"content"`
	Category    Category        `json:"category"`
	Platform    Platform        `json:"platform,omitempty"`
	ReleaseDate string          `json:"release_date"`
	Language    []string        `json:"language"`
	Genre       []string        `json:"genre"`
	Cast        []string        `json:"cast"`
	Director    string          `json:"director"`
	ImageURL    string          `json:"image_url"`
	IsFeatured  bool            `json:"is_featured,omitempty"`
	PublishedAt string          `json:"published_at"`
	FAQs        []FAQ           `json:"faqs,omitempty"`
	TrailerURL  string          `json:"trailer_url,omitempty"`
	Rating      string          `json:"rating,omitempty"`
	MovieList   []MovieListItem `json:"movie_list,omitempty"`
}
