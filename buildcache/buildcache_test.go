package buildcache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/tailcss/buildcache"
)

// Ensure that entries only hit for the modification time they were stored with.
func TestCache_Lookup(t *testing.T) {
	c, err := buildcache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	_, ok := c.Lookup("a.html", mtime)
	assert.False(t, ok)

	c.Store("a.html", mtime, []string{"p-4", "m-2"})
	a, ok := c.Lookup("a.html", mtime)
	require.True(t, ok)
	assert.Equal(t, []string{"p-4", "m-2"}, a)

	_, ok = c.Lookup("a.html", mtime.Add(time.Second))
	assert.False(t, ok)

	c.Forget("a.html")
	_, ok = c.Lookup("a.html", mtime)
	assert.False(t, ok)
}

// Ensure that a saved cache is restored by Open.
func TestCache_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	c, err := buildcache.Open(path)
	require.NoError(t, err)

	// Nothing to write yet.
	require.NoError(t, c.Save())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	mtime := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	c.Store("a.html", mtime, []string{"p-4"})
	c.Store("b.tsx", mtime, []string{"flex[col]"})
	require.NoError(t, c.Save())

	other, err := buildcache.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, other.Len())
	a, ok := other.Lookup("b.tsx", mtime)
	require.True(t, ok)
	assert.Equal(t, []string{"flex[col]"}, a)
	assert.Equal(t, path, other.Path())
}

// Ensure that files missing from the keep list are dropped and saved.
func TestCache_Prune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c, err := buildcache.Open(path)
	require.NoError(t, err)

	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c.Store("a.html", mtime, []string{"p-4"})
	c.Store("b.html", mtime, []string{"m-2"})
	c.Store("c.html", mtime, []string{"flex"})
	require.NoError(t, c.Save())

	other, err := buildcache.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Prune([]string{"a.html", "b.html", "c.html"}))
	assert.Equal(t, 2, other.Prune([]string{"b.html", "d.html"}))
	assert.Equal(t, 1, other.Len())
	require.NoError(t, other.Save())

	reopened, err := buildcache.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	_, ok := reopened.Lookup("b.html", mtime)
	assert.True(t, ok)
	_, ok = reopened.Lookup("a.html", mtime)
	assert.False(t, ok)
}

// Ensure that a corrupt cache file is reported.
func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err := buildcache.Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode build cache")
}

// Ensure that modification times are read from disk.
func TestModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	mtime := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	got, err := buildcache.ModTime(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(mtime))

	_, err = buildcache.ModTime(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
