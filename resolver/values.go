package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/scanner"
	"github.com/benbjohnson/tailcss/theme"
)

// lookup resolves a value against a scale.
type lookup func(v string) (string, bool)

// fixed returns a lookup over a literal table.
func fixed(m map[string]string) lookup {
	return func(v string) (string, bool) {
		s, ok := m[v]
		return s, ok
	}
}

// oneOf returns a lookup that tries each lookup in turn.
func oneOf(a ...lookup) lookup {
	return func(v string) (string, bool) {
		for _, fn := range a {
			if s, ok := fn(v); ok {
				return s, true
			}
		}
		return "", false
	}
}

// themed returns a lookup over a theme category.
func themed(t *theme.Theme, category string) lookup {
	return func(v string) (string, bool) {
		return t.Get(category, v)
	}
}

// integer accepts unsigned integers as-is.
func integer(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	for _, ch := range v {
		if !scanner.IsDigit(ch) {
			return "", false
		}
	}
	return v, true
}

// fraction converts "a/b" into a percentage.
func fraction(v string) (string, bool) {
	i := strings.IndexByte(v, '/')
	if i <= 0 {
		return "", false
	}
	a, err := strconv.Atoi(v[:i])
	if err != nil {
		return "", false
	}
	b, err := strconv.Atoi(v[i+1:])
	if err != nil || b == 0 {
		return "", false
	}
	return formatFloat(float64(a)/float64(b)*100) + "%", true
}

// formatFloat formats f with at most six decimals and no trailing zeros.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// set assigns v to every property, in order.
func set(props []string, v string) ast.Declarations {
	a := make(ast.Declarations, len(props))
	for i, p := range props {
		a[i] = &ast.Declaration{Property: p, Value: v}
	}
	return a
}

// decls builds declarations from property/value pairs.
func decls(pairs ...string) ast.Declarations {
	a := make(ast.Declarations, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		a = append(a, &ast.Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return a
}

// static returns a Func for a utility that takes no value.
func static(pairs ...string) Func {
	a := decls(pairs...)
	return func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		if value != nil || arbitrary != nil {
			return nil, false
		}
		return a.Clone(), true
	}
}

// scale returns a Func that sets props to a value from fn, or to an
// arbitrary value as written. A bare utility uses the empty key.
func scale(fn lookup, props ...string) Func {
	return func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		switch {
		case arbitrary != nil && value == nil:
			return set(props, stripHint(*arbitrary)), true
		case arbitrary != nil:
			return nil, false
		case value == nil:
			if v, ok := fn(""); ok {
				return set(props, v), true
			}
			return nil, false
		}
		if v, ok := fn(*value); ok {
			return set(props, v), true
		}
		return nil, false
	}
}

// keyword returns a Func that only accepts values from a fixed table.
func keyword(m map[string]string, props ...string) Func {
	return func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		if value == nil || arbitrary != nil {
			return nil, false
		}
		v, ok := m[*value]
		if !ok {
			return nil, false
		}
		return set(props, v), true
	}
}

// first returns a Func that tries each Func in turn.
func first(a ...Func) Func {
	return func(name string, value, arbitrary *string) (ast.Declarations, bool) {
		for _, fn := range a {
			if d, ok := fn(name, value, arbitrary); ok {
				return d, true
			}
		}
		return nil, false
	}
}

// color returns a Func that sets props to a theme colour, optionally with an
// opacity modifier ("red-500/50"), or to an arbitrary colour literal.
func color(t *theme.Theme, props ...string) Func {
	return func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		if arbitrary != nil {
			if value != nil {
				return nil, false
			}
			v := *arbitrary
			if strings.HasPrefix(v, "color:") {
				return set(props, v[len("color:"):]), true
			} else if !IsColor(v) {
				return nil, false
			}
			return set(props, v), true
		}
		if value == nil {
			return nil, false
		}
		if v, ok := colorValue(t, *value); ok {
			return set(props, v), true
		}
		return nil, false
	}
}

// colorValue resolves "name", "name/NN", "[literal]/NN" or a bare colour
// literal such as "#fff/NN".
func colorValue(t *theme.Theme, s string) (string, bool) {
	base, alpha := s, ""
	if i := scanner.LastIndexUnscoped(s, '/'); i > 0 {
		base, alpha = s[:i], s[i+1:]
	}

	var c string
	if strings.HasPrefix(base, "[") && strings.HasSuffix(base, "]") {
		c = Normalize(base[1 : len(base)-1])
	} else if v, ok := t.Get(theme.Colors, base); ok {
		c = v
	} else if IsColor(base) {
		c = Normalize(base)
	} else {
		return "", false
	}

	if alpha == "" {
		return c, true
	}

	var a float64
	if strings.HasPrefix(alpha, "[") && strings.HasSuffix(alpha, "]") {
		f, err := strconv.ParseFloat(alpha[1:len(alpha)-1], 64)
		if err != nil {
			return "", false
		}
		a = f
	} else if n, ok := integer(alpha); ok {
		f, _ := strconv.ParseFloat(n, 64)
		a = f / 100
	} else {
		return "", false
	}
	return withAlpha(c, a), true
}

// withAlpha applies an opacity between 0 and 1 to a colour.
func withAlpha(c string, a float64) string {
	if r, g, b, ok := parseHex(c); ok {
		return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, formatFloat(a))
	}
	return fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", c, formatFloat(a*100))
}

// parseHex parses "#rgb" and "#rrggbb".
func parseHex(s string) (r, g, b uint64, ok bool) {
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, false
	}
	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	for _, ch := range s {
		if !scanner.IsHexDigit(ch) {
			return 0, 0, 0, false
		}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return n >> 16 & 0xff, n >> 8 & 0xff, n & 0xff, true
}

// IsColor returns true if an arbitrary value is a colour literal.
func IsColor(v string) bool {
	switch v {
	case "transparent", "currentColor", "currentcolor", "inherit":
		return true
	}
	for _, prefix := range []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color(", "color-mix("} {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

// stripHint removes a "length:" or "color:" type hint from an arbitrary value.
func stripHint(v string) string {
	for _, h := range []string{"length:", "color:", "number:", "percentage:", "url:"} {
		if strings.HasPrefix(v, h) {
			return v[len(h):]
		}
	}
	return v
}
