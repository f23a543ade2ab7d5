package render

import (
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// renderTXT emits one loc per line and nothing else: plain URLs, no escaping.
// When index entries are present they take the place of the items, same as
// the XML family's urlset/index exclusivity.
func renderTXT(m *models.Model) string {
	var locs []string
	if entries := m.Entries(); len(entries) > 0 {
		for _, e := range entries {
			locs = append(locs, e.Loc)
		}
	} else {
		for _, item := range m.Items() {
			locs = append(locs, item.Loc)
		}
	}
	return strings.Join(locs, "\n")
}
