package output

import (
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/render"
)

const sampleXML = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n</urlset>\n"

func TestFinalize_InjectsStylesheetAfterDeclaration(t *testing.T) {
	opts := config.New()

	out, err := Finalize(sampleXML, render.XML, opts, "")
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 3)
	require.Len(t, lines, 3)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, lines[0])
	assert.Equal(t, `<?xml-stylesheet type="text/xsl" href="/sitemap.xsl"?>`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "<urlset"))
}

func TestFinalize_StyleOverride(t *testing.T) {
	opts := config.New()

	out, err := Finalize(sampleXML, render.XML, opts, "/assets/custom.xsl")
	require.NoError(t, err)

	assert.Contains(t, out, `href="/assets/custom.xsl"`)
	assert.NotContains(t, out, "/sitemap.xsl")
}

func TestFinalize_StylesLocation(t *testing.T) {
	opts := config.New()
	opts.StylesLocation = "/assets/xsl/"

	out, err := Finalize(sampleXML, render.XML, opts, "")
	require.NoError(t, err)

	assert.Contains(t, out, `href="/assets/xsl/sitemap.xsl"`)
}

func TestFinalize_StylesDisabled(t *testing.T) {
	opts := config.New()
	opts.UseStyles = false

	out, err := Finalize(sampleXML, render.XML, opts, "")
	require.NoError(t, err)

	assert.Equal(t, sampleXML, out)
}

func TestFinalize_NonXMLFormatsIgnoreStyles(t *testing.T) {
	opts := config.New()

	for _, f := range []render.Format{render.TXT, render.HTML, render.RSS, render.RDF} {
		out, err := Finalize("https://example.com/", f, opts, "/custom.xsl")
		require.NoError(t, err)
		assert.NotContains(t, out, "xml-stylesheet", f)
	}
}

func TestFinalize_GoogleNewsGetsStyles(t *testing.T) {
	opts := config.New()

	out, err := Finalize(sampleXML, render.GoogleNews, opts, "")
	require.NoError(t, err)

	assert.Contains(t, out, "xml-stylesheet")
}

func TestFinalize_GzipRoundTrip(t *testing.T) {
	opts := config.New()
	opts.UseStyles = false
	opts.UseGzip = true

	out, err := Finalize(sampleXML, render.XML, opts, "")
	require.NoError(t, err)
	assert.NotEqual(t, sampleXML, out)

	zr, err := gzip.NewReader(strings.NewReader(out))
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())

	assert.Equal(t, sampleXML, string(decompressed))
}

func TestFinalize_StylesThenGzip(t *testing.T) {
	opts := config.New()
	opts.UseGzip = true

	out, err := Finalize(sampleXML, render.XML, opts, "")
	require.NoError(t, err)

	zr, err := gzip.NewReader(strings.NewReader(out))
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.Contains(t, string(decompressed), "xml-stylesheet",
		"stylesheet injection happens before compression")
}

func TestCompress_Deterministic(t *testing.T) {
	first, err := Compress(sampleXML)
	require.NoError(t, err)
	again, err := Compress(sampleXML)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}
