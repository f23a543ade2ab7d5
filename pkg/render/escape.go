package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// xmlEscaper substitutes the five reserved XML characters. Applied to loc and
// title text (and the other free-text extension fields) when escaping is
// enabled; with escaping off, raw text goes out verbatim and correctness is
// the caller's responsibility.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// escaper returns the text transform dictated by the options.
func escaper(opts *config.Options) func(string) string {
	if opts.Escaping {
		return xmlEscaper.Replace
	}
	return func(s string) string { return s }
}

// itemPriority validates and normalizes an item's priority string to one
// decimal digit ("0.8"). Returns ok=false when the field should be omitted.
// Under strict mode any malformed or out-of-range value aborts the render.
func itemPriority(item models.Item, strict bool) (string, bool, error) {
	if item.Priority == "" {
		return "", false, nil
	}
	p, err := strconv.ParseFloat(item.Priority, 64)
	if err != nil || p < 0.0 || p > 1.0 {
		if strict {
			return "", false, fmt.Errorf("%w: priority %q for %s is outside [0.0, 1.0]",
				utils.ErrItemValidation, item.Priority, item.Loc)
		}
		return "", false, nil
	}
	return fmt.Sprintf("%.1f", p), true, nil
}

// validateItems runs the strict-mode field checks over every item. Render
// calls it up front so formats that never emit priority/freq still refuse an
// invalid model under strict mode.
func validateItems(m *models.Model) error {
	for _, item := range m.Items() {
		if _, _, err := itemPriority(item, true); err != nil {
			return err
		}
		if _, _, err := itemFreq(item, true); err != nil {
			return err
		}
	}
	return nil
}

// itemFreq validates an item's changefreq against the protocol vocabulary.
// Returns ok=false when the field should be omitted.
func itemFreq(item models.Item, strict bool) (string, bool, error) {
	if item.Freq == "" {
		return "", false, nil
	}
	if !models.IsValidFreq(item.Freq) {
		if strict {
			return "", false, fmt.Errorf("%w: freq %q for %s is not in %v",
				utils.ErrItemValidation, item.Freq, item.Loc, models.ValidFreqs)
		}
		return "", false, nil
	}
	return item.Freq, true, nil
}
