// Package sitemap is the facade tying the model, configuration, renderers,
// finalizer, and the external collaborators together. One Sitemap instance
// owns one model and one options set for the duration of a session; hosting
// applications that serve concurrent requests give each request its own
// instance rather than sharing one.
package sitemap

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RumenDamyanov/go-sitemap/pkg/cache"
	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
	"github.com/RumenDamyanov/go-sitemap/pkg/output"
	"github.com/RumenDamyanov/go-sitemap/pkg/render"
	"github.com/RumenDamyanov/go-sitemap/pkg/storage"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// Document is one finalized output file from a render: its suggested
// filename and the exact bytes to persist.
type Document struct {
	Name string
	Body string
}

// Sitemap is one sitemap-building session.
type Sitemap struct {
	model  *models.Model
	opts   *config.Options
	log    *logrus.Entry
	cache  cache.RenderCache
	writer storage.Writer
	now    func() time.Time
}

// New creates a Sitemap with a fresh model. A nil options gets the defaults;
// a nil logger falls back to the standard logrus logger.
func New(opts *config.Options, logger *logrus.Entry) (*Sitemap, error) {
	if opts == nil {
		opts = config.New()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "sitemap")
	}
	return &Sitemap{
		model: models.NewModel(),
		opts:  opts,
		log:   logger,
		now:   time.Now,
	}, nil
}

// WithCache attaches a render cache collaborator. It is consulted only when
// the options enable use_cache.
func (s *Sitemap) WithCache(c cache.RenderCache) *Sitemap {
	s.cache = c
	return s
}

// WithWriter replaces the persistence collaborator used by Store. The
// default is a local-filesystem writer.
func (s *Sitemap) WithWriter(w storage.Writer) *Sitemap {
	s.writer = w
	return s
}

// --- Model mutators ---

// AddItem appends one or more items to the model in order.
func (s *Sitemap) AddItem(items ...models.Item) error {
	return s.model.AddItem(items...)
}

// Add is the positional convenience over AddItem for the common fields.
func (s *Sitemap) Add(loc, lastmod, priority, freq string) error {
	return s.model.AddItem(models.Item{Loc: loc, LastMod: lastmod, Priority: priority, Freq: freq})
}

// AddSitemap appends a child-sitemap reference, switching XML rendering to a
// sitemapindex document.
func (s *Sitemap) AddSitemap(loc string, lastmod ...string) error {
	lm := ""
	if len(lastmod) > 0 {
		lm = lastmod[0]
	}
	return s.model.AddEntry(loc, lm)
}

// ResetSitemaps replaces the child-sitemap list; with no arguments it
// empties it.
func (s *Sitemap) ResetSitemaps(entries ...models.Entry) {
	s.model.ResetEntries(entries...)
}

// GetModel exposes the live model for collaborators (views, caches) that
// need raw items rather than rendered text.
func (s *Sitemap) GetModel() *models.Model {
	return s.model
}

// Options returns the configuration for this session.
func (s *Sitemap) Options() *config.Options {
	return s.opts
}

// --- Rendering ---

// Render produces the finalized document for the named format. style names a
// stylesheet reference to inject; only the XML family reads it. With size
// limiting enabled and the item set over the ceilings, Render returns the
// synthesized index document (use RenderAll or Store for the children).
func (s *Sitemap) Render(format string, style ...string) (string, error) {
	st := ""
	if len(style) > 0 {
		st = style[0]
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return "", err
	}

	renderFn := func() (string, error) { return s.renderDocument(f, st) }

	if s.opts.UseCache && s.cache != nil {
		return s.cache.GetOrRender(s.renderKey(f, st), renderFn)
	}
	return renderFn()
}

// Generate is an alias for Render, kept for call-site symmetry with Store.
func (s *Sitemap) Generate(format string, style ...string) (string, error) {
	return s.Render(format, style...)
}

// RenderAll produces the full finalized document set under the default
// "sitemap" file stem: a single document normally, children plus index when
// the size limiter splits.
func (s *Sitemap) RenderAll(format string, style ...string) ([]Document, error) {
	st := ""
	if len(style) > 0 {
		st = style[0]
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return s.renderSet(f, st, "sitemap")
}

// Store renders and persists the document set at path/filename.<format>.
// The extension is the format name unless filename already carries it, with
// ".gz" appended when gzip is enabled. On a split render every child is
// written as <filename>-<n>.<ext> next to the index. Returns whether the
// write succeeded.
func (s *Sitemap) Store(format, filename, path string, style ...string) (bool, error) {
	st := ""
	if len(style) > 0 {
		st = style[0]
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return false, err
	}

	docs, err := s.renderSet(f, st, filename)
	if err != nil {
		return false, err
	}

	writer := s.writer
	if writer == nil {
		writer = storage.NewFileWriter(s.log)
	}
	for _, doc := range docs {
		if err := writer.Write(path, doc.Name, []byte(doc.Body)); err != nil {
			s.log.Errorf("Failed to store %s (%s): %v", doc.Name, utils.CategorizeError(err), err)
			return false, err
		}
	}
	s.log.Infof("Stored %d %s document(s) under %q", len(docs), f, path)
	return true, nil
}

// renderDocument renders one finalized document, substituting the index for
// the urlset when the splitter engages.
func (s *Sitemap) renderDocument(f render.Format, style string) (string, error) {
	if f == render.XML && s.opts.UseLimitSize {
		split, err := render.SplitXML(s.model, s.opts, s.childLoc("sitemap", s.opts.UseGzip), s.now())
		if err != nil {
			return "", err
		}
		if split != nil {
			return output.Finalize(split.Index, f, s.opts, style)
		}
	}

	doc, err := render.Render(f, s.model, s.opts)
	if err != nil {
		return "", err
	}
	return output.Finalize(doc, f, s.opts, style)
}

// renderSet renders the complete document set for one format under the given
// file stem.
func (s *Sitemap) renderSet(f render.Format, style, filename string) ([]Document, error) {
	ext := string(f)
	stem := strings.TrimSuffix(filename, "."+ext)
	name := stem + "." + ext
	if s.opts.UseGzip {
		name += ".gz"
	}

	if f == render.XML && s.opts.UseLimitSize {
		split, err := render.SplitXML(s.model, s.opts, s.childLoc(stem, s.opts.UseGzip), s.now())
		if err != nil {
			return nil, err
		}
		if split != nil {
			docs := make([]Document, 0, len(split.Children)+1)
			for i, child := range split.Children {
				body, err := output.Finalize(child, f, s.opts, style)
				if err != nil {
					return nil, err
				}
				docs = append(docs, Document{Name: s.childName(stem, i, ext, s.opts.UseGzip), Body: body})
			}
			index, err := output.Finalize(split.Index, f, s.opts, style)
			if err != nil {
				return nil, err
			}
			docs = append(docs, Document{Name: name, Body: index})
			return docs, nil
		}
	}

	doc, err := render.Render(f, s.model, s.opts)
	if err != nil {
		return nil, err
	}
	body, err := output.Finalize(doc, f, s.opts, style)
	if err != nil {
		return nil, err
	}
	return []Document{{Name: name, Body: body}}, nil
}

// childName builds the filename for the i-th child of a split render.
func (s *Sitemap) childName(stem string, i int, ext string, gzipped bool) string {
	name := fmt.Sprintf("%s-%d.%s", stem, i, ext)
	if gzipped {
		name += ".gz"
	}
	return name
}

// childLoc maps a child index to the URL the parent index references it by.
func (s *Sitemap) childLoc(stem string, gzipped bool) func(i int) string {
	base := strings.TrimSuffix(s.opts.Domain, "/")
	return func(i int) string {
		return base + "/" + s.childName(stem, i, "xml", gzipped)
	}
}

// renderKey builds the cache key for one render: format, style, the model
// revision, and the full options value, hashed. Folding the options in means
// a setter call (or a direct field write) addresses a fresh key instead of
// replaying a document rendered under the old configuration.
func (s *Sitemap) renderKey(f render.Format, style string) string {
	return utils.HashString(fmt.Sprintf("%s|%s|%d|%+v", f, style, s.model.Revision(), *s.opts))
}
