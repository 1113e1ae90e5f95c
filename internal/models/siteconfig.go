package models

// SocialLinks holds the site's social profile URLs
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// SiteConfig is the singleton site-wide configuration record
type SiteConfig struct {
	SiteName     string      `json:"site_name"`
	Description  string      `json:"description"`
	FooterText   string      `json:"footer_text"`
	WhatsappLink string      `json:"whatsapp_link"`
	TelegramLink string      `json:"telegram_link"`
	SocialLinks  SocialLinks `json:"social_links"`
}

// DefaultSiteConfig returns the configuration seeded on first access
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:     "CineStream India",
		Description:  "A high-performance, SEO-optimized blog platform dedicated to Indian cinema, OTT releases, and entertainment news.",
		FooterText:   "India's leading destination for movie news, OTT release dates, and entertainment updates.",
		WhatsappLink: "#",
		TelegramLink: "#",
		SocialLinks: SocialLinks{
			Facebook:  "#",
			Twitter:   "#",
			Instagram: "#",
			YouTube:   "#",
		},
	}
}
