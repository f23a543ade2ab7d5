package render

import (
	"fmt"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// renderRSS wraps the item list in an RSS 2.0 envelope. A subset view: each
// item carries link, title (loc fallback), and pubDate from lastmod.
func renderRSS(m *models.Model, opts *config.Options) (string, error) {
	esc := escaper(opts)

	channelTitle := "Sitemap"
	if opts.Domain != "" {
		channelTitle = "Sitemap for " + opts.Domain
	}

	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString("<rss version=\"2.0\">\n")
	sb.WriteString("  <channel>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", esc(channelTitle))
	if opts.Domain != "" {
		fmt.Fprintf(&sb, "    <link>%s</link>\n", esc(opts.Domain))
	}
	fmt.Fprintf(&sb, "    <description>%s</description>\n", esc(channelTitle))

	for _, item := range m.Items() {
		label := item.Title
		if label == "" {
			label = item.Loc
		}
		sb.WriteString("    <item>\n")
		fmt.Fprintf(&sb, "      <title>%s</title>\n", esc(label))
		fmt.Fprintf(&sb, "      <link>%s</link>\n", esc(item.Loc))
		if item.LastMod != "" {
			fmt.Fprintf(&sb, "      <pubDate>%s</pubDate>\n", esc(item.LastMod))
		}
		sb.WriteString("    </item>\n")
	}

	sb.WriteString("  </channel>\n")
	sb.WriteString("</rss>\n")
	return sb.String(), nil
}
