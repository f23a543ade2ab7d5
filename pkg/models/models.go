package models

// Item represents one page entry in a sitemap. Only Loc is required; every
// other field is an additive extension rendered only by formats that support
// it (XML renders all of them, TXT renders Loc alone).
type Item struct {
	Loc          string        `yaml:"loc"`                    // Absolute page URL (required)
	LastMod      string        `yaml:"lastmod,omitempty"`      // ISO-8601 timestamp
	Priority     string        `yaml:"priority,omitempty"`     // Decimal string in [0.0, 1.0]
	Freq         string        `yaml:"freq,omitempty"`         // always|hourly|daily|weekly|monthly|yearly|never
	Title        string        `yaml:"title,omitempty"`        // Display label, used by the HTML/RSS/RDF views
	Images       []Image       `yaml:"images,omitempty"`
	Videos       []Video       `yaml:"videos,omitempty"`
	Translations []Translation `yaml:"translations,omitempty"`
	Alternates   []Alternate   `yaml:"alternates,omitempty"`
	GoogleNews   *GoogleNews   `yaml:"googlenews,omitempty"`
}

// Image is one image attached to an Item (image sitemap extension).
type Image struct {
	URL     string `yaml:"url"` // Required
	Title   string `yaml:"title,omitempty"`
	Caption string `yaml:"caption,omitempty"`
}

// Video is one video attached to an Item (video sitemap extension).
// ContentLoc and PlayerLoc are alternatives; either may be set.
type Video struct {
	ThumbnailLoc    string   `yaml:"thumbnail_loc"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	ContentLoc      string   `yaml:"content_loc,omitempty"`
	PlayerLoc       string   `yaml:"player_loc,omitempty"`
	Duration        int      `yaml:"duration,omitempty"` // Seconds
	Rating          float64  `yaml:"rating,omitempty"`
	ViewCount       int      `yaml:"view_count,omitempty"`
	PublicationDate string   `yaml:"publication_date,omitempty"`
	Tags            []string `yaml:"tags,omitempty"`
	FamilyFriendly  bool     `yaml:"family_friendly,omitempty"`
}

// Translation is an alternate-language variant of an Item, rendered as an
// xhtml:link with the variant's language code.
type Translation struct {
	Lang string `yaml:"lang"` // Required
	URL  string `yaml:"url"`  // Required
}

// Alternate is a protocol-level alternate link. Distinct from Translation:
// it carries a full hreflang value (language-region) rather than a bare
// language code.
type Alternate struct {
	Hreflang string `yaml:"hreflang"` // Required
	URL      string `yaml:"url"`      // Required
}

// GoogleNews holds the Google News extension metadata for an Item.
type GoogleNews struct {
	SiteName        string `yaml:"sitename"`
	Language        string `yaml:"language"`
	Access          string `yaml:"access,omitempty"` // "Subscription" or "Registration"
	Genres          string `yaml:"genres,omitempty"` // Comma-separated list
	PublicationDate string `yaml:"publication_date"`
	Keywords        string `yaml:"keywords,omitempty"`
}

// Entry references one child sitemap inside a sitemap index document.
type Entry struct {
	Loc     string `yaml:"loc"` // Required
	LastMod string `yaml:"lastmod,omitempty"`
}

// ValidFreqs is the changefreq vocabulary from the sitemaps protocol.
var ValidFreqs = []string{"always", "hourly", "daily", "weekly", "monthly", "yearly", "never"}

// IsValidFreq reports whether freq is in the changefreq vocabulary.
func IsValidFreq(freq string) bool {
	for _, f := range ValidFreqs {
		if f == freq {
			return true
		}
	}
	return false
}
