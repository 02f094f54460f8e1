package seo

// OpenGraph holds og:* meta values.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds twitter:* meta values.
type Twitter struct {
	Card  string
	Site  string
	Image string
}
