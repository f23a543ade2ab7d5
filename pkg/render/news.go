package render

import (
	"fmt"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

const newsUrlsetOpen = `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"` +
	` xmlns:news="http://www.google.com/schemas/sitemap-news/0.9">` + "\n"

// renderGoogleNews emits a news sitemap holding only the items that carry a
// GoogleNews record. Items without one are skipped silently; an item set with
// no news metadata at all yields a valid, empty urlset.
func renderGoogleNews(m *models.Model, opts *config.Options) (string, error) {
	esc := escaper(opts)

	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(newsUrlsetOpen)
	for _, item := range m.Items() {
		if item.GoogleNews == nil {
			continue
		}
		sb.WriteString("  <url>\n")
		fmt.Fprintf(&sb, "    <loc>%s</loc>\n", esc(item.Loc))
		writeNewsXML(&sb, *item.GoogleNews, esc)
		sb.WriteString("  </url>\n")
	}
	sb.WriteString(urlsetClose)
	return sb.String(), nil
}
