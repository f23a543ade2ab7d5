package render

import (
	"strings"
	"time"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// MaxURLs is the sitemaps protocol ceiling on URL entries per document.
const MaxURLs = 50000

// timeFormat is the W3C datetime layout used for synthesized lastmod values.
const timeFormat = "2006-01-02T15:04:05-07:00"

// SplitResult holds a multi-document render: the child sitemaps (item order
// preserved across and within them) and the parent index referencing each
// child by location and the timestamp of the split.
type SplitResult struct {
	Children []string
	Index    string
}

// envelopeSize is the byte overhead every urlset document carries.
var envelopeSize = len(xmlDecl) + len(urlsetOpen) + len(urlsetClose)

// SplitXML partitions the model's items into the smallest number of
// contiguous groups whose rendered documents stay under both the MaxURLs and
// Options.MaxSize ceilings, using greedy accumulation by serialized entry
// size. childLoc maps a child position to the URL the index will reference.
//
// Returns nil when no split is warranted: size limiting disabled, the model
// already holds index entries, or everything fits in a single document.
func SplitXML(m *models.Model, opts *config.Options, childLoc func(i int) string, now time.Time) (*SplitResult, error) {
	if !opts.UseLimitSize || len(m.Entries()) > 0 {
		return nil, nil
	}

	items := m.Items()
	serialized := make([]string, len(items))
	total := envelopeSize
	for i, item := range items {
		entry, err := itemXML(item, opts)
		if err != nil {
			return nil, err
		}
		serialized[i] = entry
		total += len(entry)
	}
	if len(items) <= MaxURLs && total <= opts.MaxSize {
		return nil, nil
	}

	// Greedy accumulation: a group takes entries until the next one would
	// break either ceiling. A single oversized entry still gets a group of
	// its own; entries are indivisible.
	var groups [][]string
	var group []string
	size := envelopeSize
	for _, entry := range serialized {
		if len(group) > 0 && (len(group) >= MaxURLs || size+len(entry) > opts.MaxSize) {
			groups = append(groups, group)
			group = nil
			size = envelopeSize
		}
		group = append(group, entry)
		size += len(entry)
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}

	result := &SplitResult{Children: make([]string, len(groups))}
	entries := make([]models.Entry, len(groups))
	lastmod := now.Format(timeFormat)
	for i, g := range groups {
		var sb strings.Builder
		sb.WriteString(xmlDecl)
		sb.WriteString(urlsetOpen)
		for _, entry := range g {
			sb.WriteString(entry)
		}
		sb.WriteString(urlsetClose)
		result.Children[i] = sb.String()
		entries[i] = models.Entry{Loc: childLoc(i), LastMod: lastmod}
	}
	result.Index = renderIndex(entries, opts)
	return result, nil
}
