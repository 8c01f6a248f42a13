// Package resolver maps utilities to CSS declarations.
//
// A resolver is consulted once per parsed class with the class's utility and
// its arbitrary payload. The Table implementation splits the utility into a
// registered name and a value at the longest registered prefix, so
// "border-t-red-500" is handled by "border-t" with value "red-500". A leading
// "-" requests the negated value and is only accepted by signed utilities.
//
// Utilities that no entry recognizes resolve to false. That is not an error;
// markup is full of class names that were never meant to be utilities.
package resolver

import (
	"strings"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/scanner"
)

// Func resolves a single registered utility. Name is the registered name,
// value is the text after "name-" and arbitrary is the normalized bracket
// payload. Either may be nil.
type Func func(name string, value, arbitrary *string) (ast.Declarations, bool)

// Resolver resolves a utility and optional arbitrary payload into
// declarations. Returns false if the utility is not recognized.
type Resolver interface {
	Resolve(utility string, arbitrary *string) (ast.Declarations, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(utility string, arbitrary *string) (ast.Declarations, bool)

// Resolve calls fn(utility, arbitrary).
func (fn ResolverFunc) Resolve(utility string, arbitrary *string) (ast.Declarations, bool) {
	return fn(utility, arbitrary)
}

type entry struct {
	fn     Func
	signed bool
}

// Table is a Resolver backed by a table of named utilities.
// A Table must not be modified once it is in use.
type Table struct {
	entries map[string]entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]entry)}
}

// Register adds a utility that does not accept a negative value.
func (t *Table) Register(name string, fn Func) {
	t.entries[name] = entry{fn: fn}
}

// RegisterSigned adds a utility that accepts a leading "-".
func (t *Table) RegisterSigned(name string, fn Func) {
	t.entries[name] = entry{fn: fn, signed: true}
}

// Len returns the number of registered utilities.
func (t *Table) Len() int {
	return len(t.entries)
}

// Resolve implements Resolver.
func (t *Table) Resolve(utility string, arbitrary *string) (ast.Declarations, bool) {
	if a, ok := arbitraryProperty(utility); ok {
		return a, true
	}

	var negative bool
	if len(utility) > 1 && utility[0] == '-' {
		negative, utility = true, utility[1:]
	}

	if arbitrary != nil {
		v := Normalize(*arbitrary)
		arbitrary = &v
	}

	// "w-[100px]" arrives as utility "w-".
	if len(utility) > 1 && strings.HasSuffix(utility, "-") {
		utility = utility[:len(utility)-1]
	}

	name, value := utility, (*string)(nil)
	for {
		if e, ok := t.entries[name]; ok && (!negative || e.signed) {
			if a, ok := e.fn(name, value, arbitrary); ok {
				if negative {
					for _, d := range a {
						d.Value = Negate(d.Value)
					}
				}
				return a, true
			}
		}

		i := strings.LastIndexByte(name, '-')
		if i <= 0 {
			return nil, false
		}
		v := utility[i+1:]
		name, value = utility[:i], &v
	}
}

// arbitraryProperty resolves "[property:value]" utilities.
func arbitraryProperty(utility string) (ast.Declarations, bool) {
	if !strings.HasPrefix(utility, "[") || scanner.MatchBracket(utility, 0) != len(utility)-1 {
		return nil, false
	}

	inner := utility[1 : len(utility)-1]
	i := scanner.IndexUnscoped(inner, ':')
	if i <= 0 || i == len(inner)-1 {
		return nil, false
	}

	property, value := inner[:i], Normalize(inner[i+1:])
	for _, ch := range property {
		if !scanner.IsName(ch) {
			return nil, false
		}
	}
	return ast.Declarations{{Property: property, Value: value}}, true
}

// Normalize converts an arbitrary payload into a CSS value. Underscores
// become spaces and an escaped "\_" becomes an underscore. url() payloads
// are left as written.
func Normalize(s string) string {
	if strings.HasPrefix(s, "url(") {
		return s
	}

	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			buf.WriteByte('_')
			i++
		case s[i] == '_':
			buf.WriteByte(' ')
		default:
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}

// Negate returns the negative of a CSS value. Zero is unchanged, plain
// numbers gain a "-" and anything else is multiplied by -1 with calc().
func Negate(v string) string {
	switch {
	case v == "0" || v == "0px":
		return v
	case strings.HasPrefix(v, "-"):
		return v[1:]
	case v != "" && (scanner.IsDigit(rune(v[0])) || v[0] == '.'):
		return "-" + v
	}
	return "calc(" + v + " * -1)"
}
