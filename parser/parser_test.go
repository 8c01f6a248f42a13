package parser_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/parser"
)

// Ensure that class tokens are parsed into the correct structure.
func TestParse(t *testing.T) {
	var tests = []struct {
		s         string
		variants  []ast.Variant
		utility   string
		arbitrary bool
		value     string
		important bool
	}{
		{s: `bg-blue-500`, utility: `bg-blue-500`},
		{s: `  p-4  `, utility: `p-4`},
		{s: `hover:focus:bg-blue-500`, variants: []ast.Variant{{Name: "hover"}, {Name: "focus"}}, utility: `bg-blue-500`},
		{s: `w-[100px]`, utility: `w-`, arbitrary: true, value: `100px`},
		{s: `h-[calc(100vh-64px)]`, utility: `h-`, arbitrary: true, value: `calc(100vh-64px)`},
		{s: `w-[]`, utility: `w-`, arbitrary: true},
		{s: `grid-cols-[repeat(2,[a]_1fr)]`, utility: `grid-cols-`, arbitrary: true, value: `repeat(2,[a]_1fr)`},
		{s: `bg-[url(a:b)]`, utility: `bg-`, arbitrary: true, value: `url(a:b)`},
		{s: `!bg-blue-500`, utility: `bg-blue-500`, important: true},
		{s: `bg-blue-500!`, utility: `bg-blue-500`, important: true},
		{s: `md:!p-4`, variants: []ast.Variant{{Name: "md"}}, utility: `p-4`, important: true},
		{s: `!p-4!`, utility: `!p-4!`},
		{s: `!`, utility: `!`},
		{s: `-mt-4`, utility: `-mt-4`},
		{s: `md:-mt-[3px]`, variants: []ast.Variant{{Name: "md"}}, utility: `-mt-`, arbitrary: true, value: `3px`},
		{s: `group/sidebar-hover:p-4`, variants: []ast.Variant{{Name: "group", Label: "sidebar-hover"}}, utility: `p-4`},
		{s: `group-hover/sidebar:p-4`, variants: []ast.Variant{{Name: "group-hover", Label: "sidebar"}}, utility: `p-4`},
		{s: `peer/email-focus-visible:ring`, variants: []ast.Variant{{Name: "peer", Label: "email-focus-visible"}}, utility: `ring`},
		{s: `group-hover/side-nav:underline`, variants: []ast.Variant{{Name: "group-hover", Label: "side-nav"}}, utility: `underline`},
		{s: `peer-checked/my-toggle:p-4`, variants: []ast.Variant{{Name: "peer-checked", Label: "my-toggle"}}, utility: `p-4`},
		{s: `[&>*]:p-4`, variants: []ast.Variant{{Name: "[&>*]"}}, utility: `p-4`},
		{s: `[&:hover]:md:p-4`, variants: []ast.Variant{{Name: "[&:hover]"}, {Name: "md"}}, utility: `p-4`},
		{s: `bg-blue-500/50`, utility: `bg-blue-500/50`},

		// Brackets that do not close at the end stay literal.
		{s: `bg-[#fff]/50`, utility: `bg-[#fff]/50`},
		{s: `[mask-type:alpha]`, utility: `[mask-type:alpha]`},
		{s: `w-[100px`, utility: `w-[100px`},
	}

	for i, tt := range tests {
		c, err := parser.Parse(tt.s)
		if err != nil {
			t.Errorf("%d. <%q> unexpected error: %s", i, tt.s, err)
			continue
		}
		if !reflect.DeepEqual(c.Variants, tt.variants) {
			t.Errorf("%d. <%q> variants: exp=%v, got=%v", i, tt.s, tt.variants, c.Variants)
		}
		if c.Utility != tt.utility {
			t.Errorf("%d. <%q> utility: exp=%q, got=%q", i, tt.s, tt.utility, c.Utility)
		}
		if c.IsArbitrary != tt.arbitrary || c.ArbitraryValue != tt.value {
			t.Errorf("%d. <%q> arbitrary: exp=%v/%q, got=%v/%q", i, tt.s, tt.arbitrary, tt.value, c.IsArbitrary, c.ArbitraryValue)
		}
		if c.IsImportant != tt.important {
			t.Errorf("%d. <%q> important: exp=%v, got=%v", i, tt.s, tt.important, c.IsImportant)
		}
	}
}

// Ensure that malformed tokens return typed errors.
func TestParse_Error(t *testing.T) {
	var tests = []struct {
		s    string
		code parser.ErrorCode
		err  string
	}{
		{s: ``, code: parser.EmptyClass, err: `empty class`},
		{s: "  \t ", code: parser.EmptyClass, err: `empty class`},
		{s: `hover:`, code: parser.EmptyUtilitySegment, err: `missing utility in "hover:"`},
		{s: `md:hover:!`, code: parser.EmptyUtilitySegment, err: `missing utility in "md:hover:!"`},
	}

	for i, tt := range tests {
		c, err := parser.Parse(tt.s)
		var perr *parser.Error
		if c != nil {
			t.Errorf("%d. <%q> expected nil class", i, tt.s)
		} else if !errors.As(err, &perr) {
			t.Errorf("%d. <%q> expected *parser.Error, got %T", i, tt.s, err)
		} else if perr.Code != tt.code || perr.Error() != tt.err {
			t.Errorf("%d. <%q> error: exp=%s/%q, got=%s/%q", i, tt.s, tt.code, tt.err, perr.Code, perr.Error())
		}
	}
}

// Ensure that an unclosed bracket degrades to a literal utility with a warning.
func TestParse_UnbalancedBracket(t *testing.T) {
	c, err := parser.Parse(`hover:w-[100px`)
	require.NoError(t, err)
	assert.Equal(t, `w-[100px`, c.Utility)
	assert.False(t, c.IsArbitrary)

	var perr *parser.Error
	require.True(t, errors.As(c.Warning, &perr))
	assert.Equal(t, parser.UnbalancedBracket, perr.Code)
	assert.Equal(t, "UnbalancedBracket", perr.Code.String())
}

// Ensure that re-joining variants and utility reconstructs the token,
// modulo "!" placement.
func TestParse_RoundTrip(t *testing.T) {
	var tests = []struct {
		s   string
		out string
	}{
		{s: `bg-blue-500`, out: `bg-blue-500`},
		{s: `md:hover:bg-blue-500`, out: `md:hover:bg-blue-500`},
		{s: `dark:md:w-[calc(100%-2rem)]`, out: `dark:md:w-[calc(100%-2rem)]`},
		{s: `hover:p-4!`, out: `!hover:p-4`},
		{s: `group/nav-hover:underline`, out: `group/nav-hover:underline`},
		{s: `[&_p]:mt-4`, out: `[&_p]:mt-4`},
	}

	for i, tt := range tests {
		c, err := parser.Parse(tt.s)
		if err != nil {
			t.Errorf("%d. <%q> unexpected error: %s", i, tt.s, err)
		} else if s := c.String(); s != tt.out {
			t.Errorf("%d. <%q> exp=%q, got=%q", i, tt.s, tt.out, s)
		}
	}
}

// Ensure that an attribute value is split and bad tokens are collected.
func TestParseClasses(t *testing.T) {
	a, err := parser.ParseClasses(`p-4 hover: md:w-[50%]  :`)
	require.Error(t, err)
	assert.Len(t, err.(parser.ErrorList), 2)
	assert.True(t, strings.HasSuffix(err.Error(), "(and 1 more errors)"))

	require.Len(t, a, 2)
	assert.Equal(t, "p-4", a[0].Utility)
	assert.Equal(t, "50%", a[1].ArbitraryValue)

	a, err = parser.ParseClasses(`flex[col jc-center]`)
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.Equal(t, "flex", a[0].Utility)
	assert.Equal(t, "col jc-center", a[0].ArbitraryValue)
}

// Ensure that error lists format like the rest of the package.
func TestErrorList_Error(t *testing.T) {
	assert.Equal(t, "no errors", parser.ErrorList{}.Error())
	assert.Equal(t, "x", parser.ErrorList{errors.New("x")}.Error())
}
