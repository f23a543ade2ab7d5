// Package output finalizes rendered documents before they reach a response
// or persistence collaborator: XSL stylesheet injection for the XML family
// and optional gzip compression.
package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/render"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// Finalize applies stylesheet injection and compression per the options.
// style overrides the stylesheet href for this call; it is only meaningful
// for the XML family and ignored for every other format. The stylesheet
// content itself is an external asset, never generated here.
func Finalize(doc string, format render.Format, opts *config.Options, style string) (string, error) {
	if opts.UseStyles && isXMLFamily(format) {
		doc = injectStylesheet(doc, stylesheetHref(opts, style))
	}
	if opts.UseGzip {
		return Compress(doc)
	}
	return doc, nil
}

// Compress gzips a finalized document. A compression failure is an error,
// never a silent pass-through of the uncompressed content.
func Compress(doc string) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(doc)); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrCompression, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrCompression, err)
	}
	return buf.String(), nil
}

func isXMLFamily(format render.Format) bool {
	return format == render.XML || format == render.GoogleNews
}

// stylesheetHref resolves the stylesheet reference: per-call style first,
// then the configured styles location with the stock asset name.
func stylesheetHref(opts *config.Options, style string) string {
	if style != "" {
		return style
	}
	base := strings.TrimSuffix(opts.StylesLocation, "/")
	return base + "/sitemap.xsl"
}

// injectStylesheet prepends an xml-stylesheet processing instruction,
// keeping the XML declaration as the first line when present.
func injectStylesheet(doc, href string) string {
	pi := fmt.Sprintf("<?xml-stylesheet type=\"text/xsl\" href=\"%s\"?>\n", href)
	if strings.HasPrefix(doc, "<?xml ") {
		if i := strings.Index(doc, "\n"); i >= 0 {
			return doc[:i+1] + pi + doc[i+1:]
		}
	}
	return pi + doc
}
