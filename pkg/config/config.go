package config

import (
	"fmt"
	"net/url"

	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// DefaultMaxSize is the per-document byte ceiling applied when size limiting
// is enabled and no explicit max_size is configured (10 MiB, the sitemaps
// protocol limit for an uncompressed document).
const DefaultMaxSize = 10 * 1024 * 1024

// validFormats is the closed set of output format names. Kept in sync with
// the renderer set in pkg/render.
var validFormats = []string{"xml", "txt", "html", "rss", "rdf", "google-news"}

// Options holds the settings controlling rendering behavior for one sitemap
// instance. Construct with New (or Load/LoadFile) and change values through
// the setter methods; every write path re-runs validation, so a held Options
// is always internally consistent. Out-of-range values fail immediately and
// are never silently clamped.
type Options struct {
	Escaping       bool   `yaml:"escaping"`                  // Escape reserved XML characters in loc/title (default true)
	UseCache       bool   `yaml:"use_cache,omitempty"`       // Hint for an external render cache collaborator
	CachePath      string `yaml:"cache_path,omitempty"`      // Where that collaborator keeps its store
	UseLimitSize   bool   `yaml:"use_limit_size,omitempty"`  // Enable size-based splitting for XML documents
	MaxSize        int    `yaml:"max_size,omitempty"`        // Per-document byte ceiling, must be > 0
	UseGzip        bool   `yaml:"use_gzip,omitempty"`        // Compress finalized output
	UseStyles      bool   `yaml:"use_styles"`                // Inject an xml-stylesheet processing instruction (default true)
	StylesLocation string `yaml:"styles_location,omitempty"` // Base path for the XSL assets; empty means server root
	Domain         string `yaml:"domain,omitempty"`          // Site base URL, must parse as an absolute URL when present
	StrictMode     bool   `yaml:"strict_mode,omitempty"`     // Fail renders on invalid item fields instead of omitting them
	DefaultFormat  string `yaml:"default_format,omitempty"`  // One of xml|txt|html|rss|rdf|google-news
}

// New returns an Options with the documented defaults applied.
func New() *Options {
	return &Options{
		Escaping:      true,
		UseStyles:     true,
		MaxSize:       DefaultMaxSize,
		DefaultFormat: "xml",
	}
}

// Validate checks every field and reports the first violation. Unlike the
// item-level checks at render time, configuration validation is always
// strict: a bad value fails construction or mutation on the spot.
func (o *Options) Validate() error {
	if o.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size must be > 0, got %d", utils.ErrValidation, o.MaxSize)
	}

	if o.DefaultFormat != "" && !IsValidFormat(o.DefaultFormat) {
		return fmt.Errorf("%w: unknown default_format %q (valid: %v)", utils.ErrValidation, o.DefaultFormat, validFormats)
	}

	if o.Domain != "" {
		u, err := url.Parse(o.Domain)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: domain %q is not a valid absolute URL", utils.ErrValidation, o.Domain)
		}
	}

	if o.UseCache && o.CachePath == "" {
		return fmt.Errorf("%w: use_cache is enabled but cache_path is empty", utils.ErrValidation)
	}

	// A split render synthesizes an index whose child locs are built from the
	// domain; without one they would come out relative, which the protocol
	// rejects.
	if o.UseLimitSize && o.Domain == "" {
		return fmt.Errorf("%w: use_limit_size is enabled but domain is empty", utils.ErrValidation)
	}

	return nil
}

// IsValidFormat reports whether name is in the supported format set.
func IsValidFormat(name string) bool {
	for _, f := range validFormats {
		if f == name {
			return true
		}
	}
	return false
}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, len(validFormats))
	copy(out, validFormats)
	return out
}

// --- Validate-on-write setters ---

// SetMaxSize sets the per-document byte ceiling.
func (o *Options) SetMaxSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: max_size must be > 0, got %d", utils.ErrValidation, n)
	}
	o.MaxSize = n
	return nil
}

// SetDefaultFormat sets the fallback format used when a caller resolves the
// default before rendering.
func (o *Options) SetDefaultFormat(name string) error {
	if !IsValidFormat(name) {
		return fmt.Errorf("%w: unknown default_format %q (valid: %v)", utils.ErrValidation, name, validFormats)
	}
	o.DefaultFormat = name
	return nil
}

// SetDomain sets the site base URL used by the feed envelopes.
func (o *Options) SetDomain(domain string) error {
	if domain != "" {
		u, err := url.Parse(domain)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: domain %q is not a valid absolute URL", utils.ErrValidation, domain)
		}
	}
	o.Domain = domain
	return nil
}

// SetCache enables or disables the cache hints consumed by an external cache
// collaborator. Enabling requires a non-empty path.
func (o *Options) SetCache(enabled bool, path string) error {
	if enabled && path == "" {
		return fmt.Errorf("%w: use_cache is enabled but cache_path is empty", utils.ErrValidation)
	}
	o.UseCache = enabled
	o.CachePath = path
	return nil
}
