package cache

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/RumenDamyanov/go-sitemap/pkg/log"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

const renderKeyPrefix = "render:" // Prefix for render-output keys in the DB

// BadgerCache implements Cache on a BadgerDB store at the configured cache
// path. The at-most-one-cached-render-per-key contract lives here, not in
// the core: concurrent misses on the same key are collapsed through a
// singleflight group so the render function runs once.
type BadgerCache struct {
	db    *badger.DB
	log   *logrus.Entry
	group singleflight.Group
}

// NewBadgerCache opens (or creates) the cache store at cachePath.
func NewBadgerCache(cachePath string, logger *logrus.Entry) (*BadgerCache, error) {
	if err := os.MkdirAll(cachePath, 0755); err != nil {
		return nil, fmt.Errorf("%w: cannot create cache directory %s: %v", utils.ErrCache, cachePath, err)
	}

	badgerLogger := log.NewBadgerAdapter(logger.WithField("component", "badgerdb"))
	opts := badger.DefaultOptions(cachePath).
		WithLogger(badgerLogger).
		WithNumVersionsToKeep(1) // Only the latest render per key matters

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open cache database at %s: %v", utils.ErrCache, cachePath, err)
	}

	logger.Debugf("Render cache initialized at %s", cachePath)
	return &BadgerCache{db: db, log: logger}, nil
}

// Get implements Cache.
func (c *BadgerCache) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(renderKeyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", utils.ErrCache, key, err)
	}
	return value, true, nil
}

// Set implements Cache.
func (c *BadgerCache) Set(key string, value []byte) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(renderKeyPrefix+key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", utils.ErrCache, key, err)
	}
	return nil
}

// GetOrRender returns the cached document for key, rendering and storing it
// on a miss. Concurrent callers for the same key share one render.
func (c *BadgerCache) GetOrRender(key string, renderFn func() (string, error)) (string, error) {
	if cached, ok, err := c.Get(key); err != nil {
		return "", err
	} else if ok {
		c.log.Debugf("Render cache hit for key %s", key)
		return string(cached), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		doc, err := renderFn()
		if err != nil {
			return "", err
		}
		if err := c.Set(key, []byte(doc)); err != nil {
			// Cache write failures degrade to an uncached render; the
			// document itself is still good.
			c.log.Warnf("Failed to cache render for key %s: %v", key, err)
		}
		return doc, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Close implements Cache.
func (c *BadgerCache) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", utils.ErrCache, err)
	}
	return nil
}
