// Package parser implements the utility class tokenizer.
//
// A class token is read in three steps. A single leading or trailing "!"
// marks the class important. The remaining text is split around colons at
// bracket depth zero: every segment but the last is a variant, the last is
// the utility. Finally a trailing [...] payload on the utility is unwrapped
// into the class's arbitrary value.
//
// Malformed brackets are not fatal. A utility whose "[" is never closed is
// kept as literal text and the problem is recorded on Class.Warning, because
// markup routinely carries class names that were never meant to be
// utilities and those must not break a build.
package parser

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/scanner"
)

// Parse parses a single class token.
func Parse(raw string) (*ast.Class, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &Error{Code: EmptyClass, Class: raw, Message: "empty class"}
	}

	c := &ast.Class{Raw: s}
	s, c.IsImportant = trimImportant(s)

	// Every top-level colon ends a variant segment.
	start := 0
	for _, i := range scanner.IndexAllUnscoped(s, ':') {
		c.Variants = append(c.Variants, ParseVariant(s[start:i]))
		start = i + 1
	}

	u := s[start:]

	// Allow the important marker directly on the utility, e.g. "md:!p-4".
	if start > 0 && !c.IsImportant && len(u) > 1 && u[0] == '!' {
		u, c.IsImportant = u[1:], true
	}

	if u == "" {
		return nil, &Error{Code: EmptyUtilitySegment, Class: raw, Message: fmt.Sprintf("missing utility in %q", raw)}
	}
	parseUtility(c, u)

	return c, nil
}

// ParseClasses parses every class in a whitespace-separated attribute value.
// Tokens that fail to parse are skipped and reported in the returned
// ErrorList.
func ParseClasses(s string) ([]*ast.Class, error) {
	var a []*ast.Class
	var errs ErrorList
	for _, tok := range scanner.Fields(s) {
		c, err := Parse(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		a = append(a, c)
	}
	if len(errs) > 0 {
		return a, errs
	}
	return a, nil
}

// ParseVariant decomposes one variant segment.
//
// A segment without an unscoped "/" is returned verbatim. Otherwise the text
// before the slash is the variant and the text after it is the label, both as
// written:
//
//	group-hover/side-nav  => {Name: "group-hover", Label: "side-nav"}
//	group/side-nav-hover  => {Name: "group",       Label: "side-nav-hover"}
//
// Where a label ends with a sub-variant, as in the second form, only the
// variant registry can tell where the name stops, so the split is left to
// variant.Registry.Canonical.
func ParseVariant(segment string) ast.Variant {
	if strings.HasPrefix(segment, "[") {
		return ast.Variant{Name: segment}
	}

	i := scanner.IndexUnscoped(segment, '/')
	if i < 0 {
		return ast.Variant{Name: segment}
	}
	return ast.Variant{Name: segment[:i], Label: segment[i+1:]}
}

// trimImportant strips exactly one leading or trailing "!".
// A token marked on both ends, or consisting only of "!", is left alone.
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

// parseUtility sets the utility and arbitrary payload on c.
//
// The payload is the bracket pair that closes at the very end of the
// utility. A bracket that is closed earlier (e.g. "bg-[#fff]/50") or that
// starts the utility (e.g. "[mask-type:alpha]") leaves the utility literal.
func parseUtility(c *ast.Class, u string) {
	c.Utility = u

	i := scanner.IndexUnscoped(u, '[')
	if i < 0 {
		return
	}

	j := scanner.MatchBracket(u, i)
	if j < 0 {
		c.Warning = &Error{Code: UnbalancedBracket, Class: c.Raw, Message: fmt.Sprintf("unbalanced bracket in %q", c.Raw)}
		return
	} else if i == 0 || j != len(u)-1 {
		return
	}

	c.Utility = u[:i]
	c.IsArbitrary = true
	c.ArbitraryValue = u[i+1 : j]
}

// ErrorCode classifies a tokenizer error.
type ErrorCode int

const (
	EmptyClass ErrorCode = iota + 1
	EmptyUtilitySegment
	UnbalancedBracket
)

var codes = [...]string{
	EmptyClass:          "EmptyClass",
	EmptyUtilitySegment: "EmptyUtilitySegment",
	UnbalancedBracket:   "UnbalancedBracket",
}

func (c ErrorCode) String() string {
	if c > 0 && int(c) < len(codes) {
		return codes[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error represents a class that could not be tokenized.
type Error struct {
	Code    ErrorCode
	Class   string
	Message string
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrorList represents a list of errors.
type ErrorList []error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}
