package render

import (
	"fmt"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// renderRDF wraps the item list in an RSS 1.0 (RDF) envelope, the same subset
// view as RSS: link, title with loc fallback, and dc:date from lastmod.
func renderRDF(m *models.Model, opts *config.Options) (string, error) {
	esc := escaper(opts)

	channelTitle := "Sitemap"
	if opts.Domain != "" {
		channelTitle = "Sitemap for " + opts.Domain
	}

	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` +
		` xmlns="http://purl.org/rss/1.0/"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/">` + "\n")

	fmt.Fprintf(&sb, "  <channel rdf:about=\"%s\">\n", esc(opts.Domain))
	fmt.Fprintf(&sb, "    <title>%s</title>\n", esc(channelTitle))
	if opts.Domain != "" {
		fmt.Fprintf(&sb, "    <link>%s</link>\n", esc(opts.Domain))
	}
	sb.WriteString("  </channel>\n")

	for _, item := range m.Items() {
		label := item.Title
		if label == "" {
			label = item.Loc
		}
		fmt.Fprintf(&sb, "  <item rdf:about=\"%s\">\n", esc(item.Loc))
		fmt.Fprintf(&sb, "    <title>%s</title>\n", esc(label))
		fmt.Fprintf(&sb, "    <link>%s</link>\n", esc(item.Loc))
		if item.LastMod != "" {
			fmt.Fprintf(&sb, "    <dc:date>%s</dc:date>\n", esc(item.LastMod))
		}
		sb.WriteString("  </item>\n")
	}

	sb.WriteString("</rdf:RDF>\n")
	return sb.String(), nil
}
