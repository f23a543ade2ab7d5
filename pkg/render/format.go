// Package render turns a populated sitemap model into protocol-correct text.
// Each renderer is a pure function of (model, options): no side effects, and
// byte-identical output for identical inputs. Formats are a fixed closed set;
// adding one means adding a variant here plus its renderer file, not growing
// a branch chain elsewhere.
package render

import (
	"fmt"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// Format represents an output format.
type Format string

const (
	XML        Format = "xml"
	TXT        Format = "txt"
	HTML       Format = "html"
	RSS        Format = "rss"
	RDF        Format = "rdf"
	GoogleNews Format = "google-news"
)

var formats = []Format{XML, TXT, HTML, RSS, RDF, GoogleNews}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. Unknown names are an error; callers
// wanting a fallback resolve Options.DefaultFormat themselves before calling.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", utils.ErrFormat, s)
}

// Render produces the document for one format. The XML family switches to a
// sitemapindex document when the model carries index entries; every other
// format reads the item list (TXT falls back to entry locs when present).
// Strict mode rejects invalid priority/freq values for every format, even
// those whose output never carries the field.
func Render(f Format, m *models.Model, opts *config.Options) (string, error) {
	if opts.StrictMode {
		if err := validateItems(m); err != nil {
			return "", err
		}
	}
	switch f {
	case XML:
		return renderXML(m, opts)
	case TXT:
		return renderTXT(m), nil
	case HTML:
		return renderHTML(m, opts)
	case RSS:
		return renderRSS(m, opts)
	case RDF:
		return renderRDF(m, opts)
	case GoogleNews:
		return renderGoogleNews(m, opts)
	default:
		return "", fmt.Errorf("%w: %q", utils.ErrFormat, f)
	}
}
