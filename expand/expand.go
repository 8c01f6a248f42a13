// Package expand rewrites grouped shorthand classes into canonical utility
// classes before they are tokenized.
//
// Three forms are recognised, tried in this order:
//
//	md:flex[col jc-center]   variant-prefixed group, expanded recursively
//	flex[col jc-center]      bracket macro: flex-col justify-center
//	bg:black                 colon shorthand: bg-black
//
// A value inside a bracket macro may be a modifier that pairs with the value
// after it, e.g. "h[min 100vh]" becomes "min-h-[100vh]". A trailing "!" or
// leading "-" on a value applies to the whole expanded class, so "p[4!]"
// becomes "!p-4" and "m[x -2]" becomes "-mx-2".
//
// Anything else, including every class that is already canonical, is not
// grouped syntax and is passed through untouched.
package expand

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/tailcss/scanner"
	"github.com/benbjohnson/tailcss/variant"
)

// Expander expands grouped class syntax.
type Expander struct {
	registry *variant.Registry
	prefixes map[string]*Prefix
}

// New returns an expander that uses the registry to tell variant chains
// apart from colon shorthand and the built-in prefix tables.
func New(registry *variant.Registry) *Expander {
	return &Expander{registry: registry, prefixes: prefixes}
}

// Expand rewrites a grouped token into zero or more canonical classes.
// Returns ok=false if the token is not grouped syntax and should be used as
// written. Returns an *ExpansionError if the token is grouped syntax but
// malformed.
func (e *Expander) Expand(token string) (classes []string, ok bool, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false, nil
	}

	// A "!" on the group applies to every class it expands to.
	if inner, important := trimImportant(token); important {
		a, ok, err := e.Expand(inner)
		if !ok || err != nil {
			return nil, ok, err
		}
		for i := range a {
			if !strings.HasPrefix(a[i], "!") {
				a[i] = "!" + a[i]
			}
		}
		return a, true, nil
	}

	if a, ok, err := e.expandVariantGroup(token); ok || err != nil {
		return a, ok, err
	}
	if a, ok, err := e.expandBracket(token); ok || err != nil {
		return a, ok, err
	}
	return e.expandColon(token)
}

// expandVariantGroup handles "variant:rest[...]" by expanding rest and
// prefixing every result with the variant.
func (e *Expander) expandVariantGroup(token string) ([]string, bool, error) {
	i := scanner.IndexUnscoped(token, ':')
	if i <= 0 {
		return nil, false, nil
	}

	head, rest := token[:i], token[i+1:]
	if !e.registry.Known(head) || !strings.Contains(rest, "[") {
		return nil, false, nil
	}

	a, ok, err := e.Expand(rest)
	if !ok || err != nil {
		return nil, ok, err
	}
	for i := range a {
		a[i] = prependVariant(head, a[i])
	}
	return a, true, nil
}

// expandBracket handles "prefix[v1 v2 ...]".
func (e *Expander) expandBracket(token string) ([]string, bool, error) {
	i := strings.IndexByte(token, '[')
	if i <= 0 {
		return nil, false, nil
	}

	prefix := token[:i]
	if !isPrefix(prefix) {
		return nil, false, nil
	} else if j := scanner.MatchBracket(token, i); j != len(token)-1 {
		return nil, false, nil
	}

	values := scanner.Fields(token[i+1 : len(token)-1])
	if len(values) == 0 {
		return nil, false, &ExpansionError{Token: token, Message: "empty group"}
	}

	p := e.prefix(prefix)
	a := make([]string, 0, len(values))
	for k := 0; k < len(values); k++ {
		v := values[k]

		// A modifier pairs with the value that follows it.
		if tmpl, ok := p.Modifiers[v]; ok && k+1 < len(values) {
			next := parseValue(values[k+1])
			if next.value == "" {
				return nil, false, &ExpansionError{Token: token, Message: fmt.Sprintf("missing value after %q", v)}
			}
			a = append(a, next.wrap(fmt.Sprintf(tmpl, p.render(next.value))))
			k++
			continue
		}

		pv := parseValue(v)
		if pv.value == "" {
			return nil, false, &ExpansionError{Token: token, Message: fmt.Sprintf("invalid value %q", v)}
		}
		a = append(a, pv.wrap(p.expand(pv.value)))
	}
	return a, true, nil
}

// expandColon handles "prefix:value" where prefix is not a variant.
func (e *Expander) expandColon(token string) ([]string, bool, error) {
	idx := scanner.IndexAllUnscoped(token, ':')
	if len(idx) != 1 {
		return nil, false, nil
	}

	prefix, value := token[:idx[0]], token[idx[0]+1:]
	if !isPrefix(prefix) || e.registry.Known(prefix) {
		return nil, false, nil
	} else if value == "" {
		return nil, false, &ExpansionError{Token: token, Message: "missing value"}
	}

	pv := parseValue(value)
	if pv.value == "" {
		return nil, false, &ExpansionError{Token: token, Message: fmt.Sprintf("invalid value %q", value)}
	}

	if prefix == "reset" {
		return []string{pv.wrap("reset-" + pv.value)}, true, nil
	}
	return []string{pv.wrap(e.prefix(prefix).expand(pv.value))}, true, nil
}

// prefix returns the table for a macro prefix. Unknown prefixes get an
// empty table so values still go through the heuristics.
func (e *Expander) prefix(name string) *Prefix {
	if p, ok := e.prefixes[name]; ok {
		return p
	}
	return &Prefix{Name: name}
}

// value is a single bracket-macro value with its own modifiers split off.
type value struct {
	variants  string // "md:hover:" chain written on the value
	value     string
	negative  bool
	important bool
}

// parseValue splits "md:-4!" into its variant chain, sign, value and
// importance.
func parseValue(s string) value {
	var v value
	if i := scanner.LastIndexUnscoped(s, ':'); i >= 0 {
		v.variants, s = s[:i+1], s[i+1:]
	}
	s, v.important = trimImportant(s)
	if len(s) > 1 && s[0] == '-' {
		v.negative, s = true, s[1:]
	}
	v.value = s
	return v
}

// wrap applies the value's variants, sign and importance to an expanded
// class.
func (v value) wrap(class string) string {
	if v.negative {
		class = "-" + class
	}
	class = v.variants + class
	if v.important {
		class = "!" + class
	}
	return class
}

// prependVariant adds a variant to an expanded class, keeping a leading "!"
// in front of the whole chain.
func prependVariant(variant, class string) string {
	if strings.HasPrefix(class, "!") {
		return "!" + variant + ":" + class[1:]
	}
	return variant + ":" + class
}

// trimImportant strips a single leading or trailing "!".
func trimImportant(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	lead, trail := s[0] == '!', s[len(s)-1] == '!'
	if lead && !trail {
		return s[1:], true
	} else if trail && !lead {
		return s[:len(s)-1], true
	}
	return s, false
}

// isPrefix returns true if s can name a macro prefix: a lowercase identifier
// that does not end in "-".
func isPrefix(s string) bool {
	if s == "" || !scanner.IsLetter(rune(s[0])) || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		if !(scanner.IsLetter(c) || scanner.IsDigit(c) || c == '-') {
			return false
		}
	}
	return true
}

// ExpansionError represents grouped syntax that could not be expanded.
type ExpansionError struct {
	Token   string
	Message string
}

// Error returns the formatted string error message.
func (e *ExpansionError) Error() string {
	return fmt.Sprintf("invalid grouped class %q: %s", e.Token, e.Message)
}
