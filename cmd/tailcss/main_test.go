package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup moves into a fresh directory with no TAILCSS_* settings.
func setup(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, k := range []string{"TAILCSS_CONTENT", "TAILCSS_OUTPUT", "TAILCSS_THEME", "TAILCSS_CACHE", "TAILCSS_WORKERS", "TAILCSS_MINIFY"} {
		t.Setenv(k, "")
	}
	t.Setenv("TAILCSS_LOG_LEVEL", "error")
	return dir
}

func writeFile(t *testing.T, path, s string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(s), 0644))
}

func TestBuild(t *testing.T) {
	dir := setup(t)
	writeFile(t, filepath.Join(dir, "src", "index.html"), `<div class="p-4 md:p-4 foo"><a class="hover:bg-black">x</a></div>`)
	writeFile(t, filepath.Join(dir, "src", "app", "view.tsx"), `<p className="flex[col jc-center]" />`)

	out := filepath.Join(dir, "dist", "app.css")
	cache := filepath.Join(dir, ".tailcss", "cache.json")
	metrics := filepath.Join(dir, "metrics.prom")
	args := []string{"-o", out, "-cache", cache, "-metrics", metrics, "src/**/*"}

	require.NoError(t, cmdBuild(context.Background(), args, &bytes.Buffer{}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	css := string(b)
	assert.Contains(t, css, ".p-4 {\n  padding: 1rem;\n}\n")
	assert.Contains(t, css, ".hover\\:bg-black:hover {\n  background-color: #000000;\n}\n")
	assert.Contains(t, css, "@media (min-width: 768px) {\n  .md\\:p-4 {\n    padding: 1rem;\n  }\n}\n")
	assert.Contains(t, css, ".flex\\[col\\ jc-center\\] {\n  flex-direction: column;\n  justify-content: center;\n}\n")
	assert.NotContains(t, css, "foo")

	_, err = os.Stat(cache)
	assert.NoError(t, err)

	m, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(m), "tailcss_rules_total 4")

	// A second build reads the cache and writes the same output.
	require.NoError(t, cmdBuild(context.Background(), args, &bytes.Buffer{}))
	b2, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, css, string(b2))
}

func TestBuild_PruneCache(t *testing.T) {
	dir := setup(t)
	writeFile(t, filepath.Join(dir, "src", "a.html"), `<div class="p-4"></div>`)
	writeFile(t, filepath.Join(dir, "src", "old.html"), `<div class="m-2"></div>`)

	cache := filepath.Join(dir, "cache.json")
	args := []string{"-o", filepath.Join(dir, "out.css"), "-cache", cache, "src/*.html"}
	require.NoError(t, cmdBuild(context.Background(), args, &bytes.Buffer{}))

	b, err := os.ReadFile(cache)
	require.NoError(t, err)
	assert.Contains(t, string(b), "old.html")

	require.NoError(t, os.Remove(filepath.Join(dir, "src", "old.html")))
	require.NoError(t, cmdBuild(context.Background(), args, &bytes.Buffer{}))

	b, err = os.ReadFile(cache)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "old.html")
	assert.Contains(t, string(b), "a.html")
}

func TestBuild_Stdout(t *testing.T) {
	dir := setup(t)
	writeFile(t, filepath.Join(dir, "index.html"), `<div class="p-4"></div>`)

	var buf bytes.Buffer
	require.NoError(t, cmdBuild(context.Background(), []string{"-minify", "*.html"}, &buf))
	assert.Equal(t, ".p-4{padding:1rem}", strings.TrimSpace(buf.String()))
}

func TestBuild_Theme(t *testing.T) {
	dir := setup(t)
	writeFile(t, filepath.Join(dir, "index.html"), `<div class="bg-brand"></div>`)
	writeFile(t, filepath.Join(dir, "theme.toml"), "[colors]\nbrand = \"#123456\"\n")

	var buf bytes.Buffer
	require.NoError(t, cmdBuild(context.Background(), []string{"-theme", "theme.toml", "index.html"}, &buf))
	assert.Contains(t, buf.String(), "background-color: #123456;")
}

func TestBuild_Errors(t *testing.T) {
	setup(t)

	err := cmdBuild(context.Background(), nil, &bytes.Buffer{})
	assert.EqualError(t, err, "build requires at least one content glob")

	err = cmdBuild(context.Background(), []string{"missing/*.html"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")

	err = cmdBuild(context.Background(), []string{"-workers", "0", "*.html"}, &bytes.Buffer{})
	assert.EqualError(t, err, "-workers must be a positive integer")
}

func TestVariants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdVariants(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 71)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, buf.String(), "@media (min-width: 768px)")
}

func TestExpand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdExpand([]string{"flex[col jc-center]", "p-4"}, &buf))
	assert.Equal(t, "flex[col jc-center]\t[flex-col justify-center]\np-4\t[p-4]\n", buf.String())

	assert.Error(t, cmdExpand([]string{"p[]"}, &buf))
	assert.Error(t, cmdExpand(nil, &buf))
}

func TestMatchGlob(t *testing.T) {
	var tests = []struct {
		pattern string
		path    string
		match   bool
	}{
		{"src/*.html", "src/a.html", true},
		{"src/*.html", "src/x/a.html", false},
		{"src/**/*.html", "src/a.html", true},
		{"src/**/*.html", "src/x/y/a.html", true},
		{"src/**/*.html", "lib/a.html", false},
		{"**/*.tsx", "a/b.tsx", true},
		{"**", "a/b/c", true},
		{"src/**", "./src/a", true},
	}

	for i, tt := range tests {
		ok, err := matchGlob(tt.pattern, tt.path)
		if err != nil {
			t.Errorf("%d. <%q, %q> unexpected error: %s", i, tt.pattern, tt.path, err)
		} else if ok != tt.match {
			t.Errorf("%d. <%q, %q> exp=%v, got=%v", i, tt.pattern, tt.path, tt.match, ok)
		}
	}
}
