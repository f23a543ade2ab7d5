package render

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

type rssFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Title string `xml:"title"`
		Link  string `xml:"link"`
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

func TestRenderRSS(t *testing.T) {
	m := testModel(t,
		models.Item{Loc: "https://example.com/", Title: "Home", LastMod: "2024-01-01"},
		models.Item{Loc: "https://example.com/about"},
	)
	opts := config.New()
	opts.Domain = "https://example.com"

	doc, err := renderRSS(m, opts)
	require.NoError(t, err)

	var feed rssFeed
	require.NoError(t, xml.Unmarshal([]byte(doc), &feed))

	assert.Equal(t, "Sitemap for https://example.com", feed.Channel.Title)
	assert.Equal(t, "https://example.com", feed.Channel.Link)

	require.Len(t, feed.Channel.Items, 2)
	assert.Equal(t, "Home", feed.Channel.Items[0].Title)
	assert.Equal(t, "https://example.com/", feed.Channel.Items[0].Link)
	assert.Equal(t, "2024-01-01", feed.Channel.Items[0].PubDate)

	assert.Equal(t, "https://example.com/about", feed.Channel.Items[1].Title,
		"missing title falls back to loc")
	assert.Empty(t, feed.Channel.Items[1].PubDate)
}

func TestRenderRSS_NoDomain(t *testing.T) {
	m := testModel(t, models.Item{Loc: "https://example.com/"})

	doc, err := renderRSS(m, config.New())
	require.NoError(t, err)

	var feed rssFeed
	require.NoError(t, xml.Unmarshal([]byte(doc), &feed))
	assert.Equal(t, "Sitemap", feed.Channel.Title)
	assert.Empty(t, feed.Channel.Link)
}

func TestRenderRDF(t *testing.T) {
	m := testModel(t,
		models.Item{Loc: "https://example.com/docs", Title: "Docs", LastMod: "2024-04-01"},
		models.Item{Loc: "https://example.com/blog"},
	)
	opts := config.New()
	opts.Domain = "https://example.com"

	doc, err := renderRDF(m, opts)
	require.NoError(t, err)

	assert.Contains(t, doc, `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`)
	assert.Contains(t, doc, `<channel rdf:about="https://example.com">`)
	assert.Contains(t, doc, `<item rdf:about="https://example.com/docs">`)
	assert.Contains(t, doc, "<title>Docs</title>")
	assert.Contains(t, doc, "<dc:date>2024-04-01</dc:date>")
	assert.Contains(t, doc, "<title>https://example.com/blog</title>")
}

func TestRenderGoogleNews_SkipsItemsWithoutRecord(t *testing.T) {
	m := testModel(t,
		models.Item{Loc: "https://example.com/plain"},
		models.Item{
			Loc: "https://example.com/story",
			GoogleNews: &models.GoogleNews{
				SiteName:        "Example News",
				Language:        "en",
				Access:          "Subscription",
				PublicationDate: "2024-06-01",
				Keywords:        "news",
			},
		},
	)

	doc, err := renderGoogleNews(m, config.New())
	require.NoError(t, err)

	assert.Contains(t, doc, `xmlns:news="http://www.google.com/schemas/sitemap-news/0.9"`)
	assert.Contains(t, doc, "<loc>https://example.com/story</loc>")
	assert.NotContains(t, doc, "https://example.com/plain", "items without news metadata are skipped silently")
	assert.Contains(t, doc, "<news:name>Example News</news:name>")
	assert.Contains(t, doc, "<news:access>Subscription</news:access>")
}

func TestRenderGoogleNews_EmptySetIsValid(t *testing.T) {
	m := testModel(t, models.Item{Loc: "https://example.com/plain"})

	doc, err := renderGoogleNews(m, config.New())
	require.NoError(t, err)

	assert.Contains(t, doc, "<urlset")
	assert.NotContains(t, doc, "<url>")
}
