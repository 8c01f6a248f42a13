// Package buildcache remembers the class tokens extracted from each source
// file, keyed by path and modification time, so unchanged files are not
// read again on the next build.
package buildcache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Entry is the cached extraction result for one file.
type Entry struct {
	ModTime time.Time `json:"mod_time"`
	Classes []string  `json:"classes"`
}

// Cache is a file-backed build cache. It is safe for concurrent use.
type Cache struct {
	path  string
	items *cache.Cache
	dirty atomic.Bool
}

// Open loads the cache stored at path. A missing file yields an empty cache.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, items: cache.New(cache.NoExpiration, 0)}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "read build cache")
	}

	var m map[string]Entry
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrapf(err, "decode build cache %s", path)
	}

	items := make(map[string]cache.Item, len(m))
	for file, e := range m {
		items[file] = cache.Item{Object: e}
	}
	c.items = cache.NewFrom(cache.NoExpiration, 0, items)
	return c, nil
}

// Path returns the file the cache is persisted to.
func (c *Cache) Path() string { return c.path }

// Len returns the number of cached files.
func (c *Cache) Len() int { return c.items.ItemCount() }

// Lookup returns the cached classes for file if they were stored for the
// same modification time.
func (c *Cache) Lookup(file string, modTime time.Time) ([]string, bool) {
	v, ok := c.items.Get(file)
	if !ok {
		return nil, false
	}
	e := v.(Entry)
	if !e.ModTime.Equal(modTime) {
		return nil, false
	}
	return e.Classes, true
}

// Store records the classes extracted from file at modTime.
func (c *Cache) Store(file string, modTime time.Time, classes []string) {
	c.items.Set(file, Entry{ModTime: modTime, Classes: classes}, cache.NoExpiration)
	c.dirty.Store(true)
}

// Forget removes file from the cache.
func (c *Cache) Forget(file string) {
	c.items.Delete(file)
	c.dirty.Store(true)
}

// Prune forgets every file not in keep, such as files that no longer match
// the content globs. Returns the number of files removed.
func (c *Cache) Prune(keep []string) int {
	set := make(map[string]struct{}, len(keep))
	for _, file := range keep {
		set[file] = struct{}{}
	}

	var n int
	for file := range c.items.Items() {
		if _, ok := set[file]; !ok {
			c.Forget(file)
			n++
		}
	}
	return n
}

// Save writes the cache to its path if it changed since it was opened.
// The file is replaced atomically.
func (c *Cache) Save() error {
	if !c.dirty.Load() {
		return nil
	}

	m := make(map[string]Entry)
	for file, item := range c.items.Items() {
		m[file] = item.Object.(Entry)
	}
	b, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return errors.Wrap(err, "encode build cache")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrap(err, "create build cache dir")
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return errors.Wrap(err, "write build cache")
	} else if err := os.Rename(tmp, c.path); err != nil {
		return errors.Wrap(err, "replace build cache")
	}
	c.dirty.Store(false)
	return nil
}

// ModTime returns the modification time of the file at path.
func ModTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "stat source")
	}
	return fi.ModTime(), nil
}
