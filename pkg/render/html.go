package render

import (
	"fmt"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// renderHTML produces a human-browsable listing: one list row per item with a
// link (title text, loc fallback), lastmod, and priority. Intended for direct
// display, not machine consumption.
func renderHTML(m *models.Model, opts *config.Options) (string, error) {
	esc := escaper(opts)

	title := "Sitemap"
	if opts.Domain != "" {
		title = "Sitemap for " + opts.Domain
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", esc(title))
	sb.WriteString("  <meta charset=\"utf-8\"/>\n</head>\n<body>\n")
	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", esc(title))
	sb.WriteString("  <ul class=\"sitemap\">\n")

	if entries := m.Entries(); len(entries) > 0 {
		for _, e := range entries {
			sb.WriteString("    <li>")
			fmt.Fprintf(&sb, "<a href=\"%s\">%s</a>", esc(e.Loc), esc(e.Loc))
			if e.LastMod != "" {
				fmt.Fprintf(&sb, " <span class=\"lastmod\">%s</span>", esc(e.LastMod))
			}
			sb.WriteString("</li>\n")
		}
	} else {
		for _, item := range m.Items() {
			priority, hasPriority, err := itemPriority(item, opts.StrictMode)
			if err != nil {
				return "", err
			}

			label := item.Title
			if label == "" {
				label = item.Loc
			}

			sb.WriteString("    <li>")
			fmt.Fprintf(&sb, "<a href=\"%s\">%s</a>", esc(item.Loc), esc(label))
			if item.LastMod != "" {
				fmt.Fprintf(&sb, " <span class=\"lastmod\">%s</span>", esc(item.LastMod))
			}
			if hasPriority {
				fmt.Fprintf(&sb, " <span class=\"priority\">%s</span>", priority)
			}
			sb.WriteString("</li>\n")
		}
	}

	sb.WriteString("  </ul>\n</body>\n</html>\n")
	return sb.String(), nil
}
