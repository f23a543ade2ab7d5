// Package cache is the render-result collaborator consuming the use_cache /
// cache_path configuration hints. The rendering core never requires it; a
// sitemap instance without an attached cache renders everything fresh.
package cache

// Cache stores finalized render output keyed by a caller-built render key.
type Cache interface {
	// Get returns the cached document for key, and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores a rendered document under key.
	Set(key string, value []byte) error

	// Close releases the underlying store.
	Close() error
}

// RenderCache is the seam the sitemap facade talks to: fetch-or-compute with
// the per-key concurrency discipline owned by the implementation.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}
