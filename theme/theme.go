// Package theme holds the design tokens that utility values resolve against.
//
// A theme is a two-level table of category and key, e.g. colors/red-500 or
// spacing/4. Values are addressed from arbitrary values with dotted paths
// such as theme(colors.red.500) or theme(spacing.0.5).
//
// Theme files are TOML. Each top-level table is a category and nested tables
// are flattened by joining keys with "-", so
//
//	[colors.brand]
//	500 = "#0a84ff"
//
// defines colors/brand-500. A DEFAULT key names the category's bare value,
// e.g. the border radius used by "rounded".
package theme

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Built-in categories.
const (
	Colors        = "colors"
	Spacing       = "spacing"
	FontSize      = "fontSize"
	FontWeight    = "fontWeight"
	FontFamily    = "fontFamily"
	LineHeight    = "lineHeight"
	LetterSpacing = "letterSpacing"
	BorderRadius  = "borderRadius"
	BorderWidth   = "borderWidth"
	BoxShadow     = "boxShadow"
	MaxWidth      = "maxWidth"
	Screens       = "screens"
)

// defaultKey is the file spelling of the empty key.
const defaultKey = "DEFAULT"

// Theme is a table of design tokens. A theme must not be modified once it is
// shared between goroutines.
type Theme struct {
	values map[string]map[string]string
}

// New returns an empty theme.
func New() *Theme {
	return &Theme{values: make(map[string]map[string]string)}
}

// Get returns the value of key in category.
func (t *Theme) Get(category, key string) (string, bool) {
	v, ok := t.values[category][key]
	return v, ok
}

// Set sets the value of key in category.
func (t *Theme) Set(category, key, value string) {
	m := t.values[category]
	if m == nil {
		m = make(map[string]string)
		t.values[category] = m
	}
	m[key] = value
}

// Keys returns the sorted keys of a category.
func (t *Theme) Keys(category string) []string {
	a := make([]string, 0, len(t.values[category]))
	for k := range t.values[category] {
		a = append(a, k)
	}
	sort.Strings(a)
	return a
}

// Resolve returns the value at a dotted path such as "colors.red.500".
// The first segment is the category. The rest is looked up as written and
// then with dots replaced by "-", so both "spacing.0.5" and
// "colors.red.500" resolve. Invalid paths never resolve.
func (t *Theme) Resolve(path string) (string, bool) {
	if ValidatePath(path) != nil {
		return "", false
	}
	i := strings.IndexByte(path, '.')
	if i < 0 {
		return "", false
	}

	category, key := path[:i], path[i+1:]
	if key == defaultKey {
		key = ""
	}
	if v, ok := t.Get(category, key); ok {
		return v, true
	}
	return t.Get(category, strings.Replace(key, ".", "-", -1))
}

// Expand replaces every theme(path) reference in s with its value.
// Returns a *PathError if a path is invalid or does not resolve.
func (t *Theme) Expand(s string) (string, error) {
	const fn = "theme("
	if !strings.Contains(s, fn) {
		return s, nil
	}

	var buf strings.Builder
	for {
		i := strings.Index(s, fn)
		if i < 0 {
			buf.WriteString(s)
			return buf.String(), nil
		}

		j := strings.IndexByte(s[i:], ')')
		if j < 0 {
			return "", &PathError{Path: s[i:], Message: "unclosed reference"}
		}
		j += i

		path := strings.Trim(strings.TrimSpace(s[i+len(fn):j]), `"'`)
		if err := ValidatePath(path); err != nil {
			return "", err
		}
		v, ok := t.Resolve(path)
		if !ok {
			return "", &PathError{Path: path, Message: "not found"}
		}

		buf.WriteString(s[:i])
		buf.WriteString(v)
		s = s[j+1:]
	}
}

// Decode reads a TOML theme from r and overlays it on t.
func (t *Theme) Decode(r io.Reader) error {
	var m map[string]interface{}
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return errors.Wrap(err, "decode theme")
	}

	for category, v := range m {
		table, ok := v.(map[string]interface{})
		if !ok {
			return errors.Errorf("theme category %q is not a table", category)
		}
		if err := t.flatten(category, "", table); err != nil {
			return err
		}
	}
	return nil
}

func (t *Theme) flatten(category, prefix string, table map[string]interface{}) error {
	for k, v := range table {
		key := k
		if k == defaultKey {
			key = prefix
		} else if prefix != "" {
			key = prefix + "-" + k
		}

		switch v := v.(type) {
		case map[string]interface{}:
			if err := t.flatten(category, key, v); err != nil {
				return err
			}
		case []interface{}:
			a := make([]string, len(v))
			for i := range v {
				a[i] = fmt.Sprint(v[i])
			}
			t.Set(category, key, strings.Join(a, ", "))
		case string:
			t.Set(category, key, v)
		case int64:
			t.Set(category, key, strconv.FormatInt(v, 10))
		case float64:
			t.Set(category, key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return errors.Errorf("theme value %s.%s: unsupported type %T", category, k, v)
		}
	}
	return nil
}

// Load returns the default theme overlaid with the TOML file at path.
func Load(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open theme")
	}
	defer f.Close()

	t := Default()
	if err := t.Decode(f); err != nil {
		return nil, errors.Wrapf(err, "load theme %s", path)
	}
	return t, nil
}

// ValidatePath returns a *PathError if path is empty or has a leading,
// trailing or doubled dot.
func ValidatePath(path string) error {
	switch {
	case path == "":
		return &PathError{Path: path, Message: "empty path"}
	case strings.HasPrefix(path, "."):
		return &PathError{Path: path, Message: "leading dot"}
	case strings.HasSuffix(path, "."):
		return &PathError{Path: path, Message: "trailing dot"}
	case strings.Contains(path, ".."):
		return &PathError{Path: path, Message: "empty segment"}
	}
	return nil
}

// PathError represents a theme reference that cannot be resolved.
type PathError struct {
	Path    string
	Message string
}

// Error returns the formatted string error message.
func (e *PathError) Error() string {
	return fmt.Sprintf("theme path %q: %s", e.Path, e.Message)
}
