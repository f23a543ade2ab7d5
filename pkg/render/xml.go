package render

import (
	"fmt"
	"strings"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
)

// Namespace declarations for the XML family. The urlset carries every
// extension namespace up front so partially-populated items never force a
// header change.
const (
	xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

	urlsetOpen = `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"` +
		` xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"` +
		` xmlns:video="http://www.google.com/schemas/sitemap-video/1.1"` +
		` xmlns:xhtml="http://www.w3.org/1999/xhtml"` +
		` xmlns:news="http://www.google.com/schemas/sitemap-news/0.9">` + "\n"
	urlsetClose = "</urlset>\n"

	indexOpen  = `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n"
	indexClose = "</sitemapindex>\n"
)

// renderXML produces a sitemapindex document when index entries are present,
// otherwise a urlset with one <url> per item. The two are exclusive: a model
// holding entries never emits a urlset.
func renderXML(m *models.Model, opts *config.Options) (string, error) {
	if entries := m.Entries(); len(entries) > 0 {
		return renderIndex(entries, opts), nil
	}

	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(urlsetOpen)
	for _, item := range m.Items() {
		entry, err := itemXML(item, opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(entry)
	}
	sb.WriteString(urlsetClose)
	return sb.String(), nil
}

// renderIndex serializes a sitemapindex from the given entries, in order.
// Also used by the splitter to synthesize the parent document.
func renderIndex(entries []models.Entry, opts *config.Options) string {
	esc := escaper(opts)

	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(indexOpen)
	for _, e := range entries {
		sb.WriteString("  <sitemap>\n")
		fmt.Fprintf(&sb, "    <loc>%s</loc>\n", esc(e.Loc))
		if e.LastMod != "" {
			fmt.Fprintf(&sb, "    <lastmod>%s</lastmod>\n", esc(e.LastMod))
		}
		sb.WriteString("  </sitemap>\n")
	}
	sb.WriteString(indexClose)
	return sb.String()
}

// itemXML serializes a single <url> element: loc, lastmod, changefreq,
// priority, then the image / video / translation / alternate / news extension
// blocks in that order. The splitter calls this per item to measure document
// sizes, so the output must be self-contained.
func itemXML(item models.Item, opts *config.Options) (string, error) {
	esc := escaper(opts)

	priority, hasPriority, err := itemPriority(item, opts.StrictMode)
	if err != nil {
		return "", err
	}
	freq, hasFreq, err := itemFreq(item, opts.StrictMode)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("  <url>\n")
	fmt.Fprintf(&sb, "    <loc>%s</loc>\n", esc(item.Loc))
	if item.LastMod != "" {
		fmt.Fprintf(&sb, "    <lastmod>%s</lastmod>\n", esc(item.LastMod))
	}
	if hasFreq {
		fmt.Fprintf(&sb, "    <changefreq>%s</changefreq>\n", freq)
	}
	if hasPriority {
		fmt.Fprintf(&sb, "    <priority>%s</priority>\n", priority)
	}

	for _, img := range item.Images {
		sb.WriteString("    <image:image>\n")
		fmt.Fprintf(&sb, "      <image:loc>%s</image:loc>\n", esc(img.URL))
		if img.Title != "" {
			fmt.Fprintf(&sb, "      <image:title>%s</image:title>\n", esc(img.Title))
		}
		if img.Caption != "" {
			fmt.Fprintf(&sb, "      <image:caption>%s</image:caption>\n", esc(img.Caption))
		}
		sb.WriteString("    </image:image>\n")
	}

	for _, v := range item.Videos {
		writeVideoXML(&sb, v, esc)
	}

	for _, t := range item.Translations {
		fmt.Fprintf(&sb, "    <xhtml:link rel=\"alternate\" hreflang=\"%s\" href=\"%s\"/>\n",
			esc(t.Lang), esc(t.URL))
	}
	for _, a := range item.Alternates {
		fmt.Fprintf(&sb, "    <xhtml:link rel=\"alternate\" hreflang=\"%s\" href=\"%s\"/>\n",
			esc(a.Hreflang), esc(a.URL))
	}

	if item.GoogleNews != nil {
		writeNewsXML(&sb, *item.GoogleNews, esc)
	}

	sb.WriteString("  </url>\n")
	return sb.String(), nil
}

func writeVideoXML(sb *strings.Builder, v models.Video, esc func(string) string) {
	sb.WriteString("    <video:video>\n")
	fmt.Fprintf(sb, "      <video:thumbnail_loc>%s</video:thumbnail_loc>\n", esc(v.ThumbnailLoc))
	fmt.Fprintf(sb, "      <video:title>%s</video:title>\n", esc(v.Title))
	fmt.Fprintf(sb, "      <video:description>%s</video:description>\n", esc(v.Description))
	if v.ContentLoc != "" {
		fmt.Fprintf(sb, "      <video:content_loc>%s</video:content_loc>\n", esc(v.ContentLoc))
	}
	if v.PlayerLoc != "" {
		fmt.Fprintf(sb, "      <video:player_loc>%s</video:player_loc>\n", esc(v.PlayerLoc))
	}
	if v.Duration > 0 {
		fmt.Fprintf(sb, "      <video:duration>%d</video:duration>\n", v.Duration)
	}
	if v.Rating > 0 {
		fmt.Fprintf(sb, "      <video:rating>%.1f</video:rating>\n", v.Rating)
	}
	if v.ViewCount > 0 {
		fmt.Fprintf(sb, "      <video:view_count>%d</video:view_count>\n", v.ViewCount)
	}
	if v.PublicationDate != "" {
		fmt.Fprintf(sb, "      <video:publication_date>%s</video:publication_date>\n", esc(v.PublicationDate))
	}
	if v.FamilyFriendly {
		sb.WriteString("      <video:family_friendly>yes</video:family_friendly>\n")
	}
	for _, tag := range v.Tags {
		fmt.Fprintf(sb, "      <video:tag>%s</video:tag>\n", esc(tag))
	}
	sb.WriteString("    </video:video>\n")
}

func writeNewsXML(sb *strings.Builder, n models.GoogleNews, esc func(string) string) {
	sb.WriteString("    <news:news>\n")
	sb.WriteString("      <news:publication>\n")
	fmt.Fprintf(sb, "        <news:name>%s</news:name>\n", esc(n.SiteName))
	fmt.Fprintf(sb, "        <news:language>%s</news:language>\n", esc(n.Language))
	sb.WriteString("      </news:publication>\n")
	if n.Access != "" {
		fmt.Fprintf(sb, "      <news:access>%s</news:access>\n", esc(n.Access))
	}
	if n.Genres != "" {
		fmt.Fprintf(sb, "      <news:genres>%s</news:genres>\n", esc(n.Genres))
	}
	fmt.Fprintf(sb, "      <news:publication_date>%s</news:publication_date>\n", esc(n.PublicationDate))
	if n.Keywords != "" {
		fmt.Fprintf(sb, "      <news:keywords>%s</news:keywords>\n", esc(n.Keywords))
	}
	sb.WriteString("    </news:news>\n")
}
