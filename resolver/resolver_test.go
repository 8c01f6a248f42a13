package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/resolver"
	"github.com/benbjohnson/tailcss/theme"
)

// Ensure that the default table resolves the built-in utilities.
func TestDefault_Resolve(t *testing.T) {
	var tests = []struct {
		utility   string
		arbitrary string
		out       string
	}{
		{utility: `block`, out: `display: block;`},
		{utility: `hidden`, out: `display: none;`},
		{utility: `flex`, out: `display: flex;`},
		{utility: `flex-col`, out: `flex-direction: column;`},
		{utility: `flex-1`, out: `flex: 1 1 0%;`},
		{utility: `grow`, out: `flex-grow: 1;`},
		{utility: `justify-center`, out: `justify-content: center;`},
		{utility: `justify-between`, out: `justify-content: space-between;`},
		{utility: `justify-items-center`, out: `justify-items: center;`},
		{utility: `items-center`, out: `align-items: center;`},
		{utility: `grid-cols-3`, out: `grid-template-columns: repeat(3, minmax(0, 1fr));`},
		{utility: `grid-cols-`, arbitrary: `200px_1fr`, out: `grid-template-columns: 200px 1fr;`},
		{utility: `col-span-2`, out: `grid-column: span 2 / span 2;`},
		{utility: `gap-4`, out: `gap: 1rem;`},
		{utility: `p-4`, out: `padding: 1rem;`},
		{utility: `px-2`, out: `padding-left: 0.5rem; padding-right: 0.5rem;`},
		{utility: `pt-0.5`, out: `padding-top: 0.125rem;`},
		{utility: `m-auto`, out: `margin: auto;`},
		{utility: `-mt-4`, out: `margin-top: -1rem;`},
		{utility: `-mt-`, arbitrary: `3px`, out: `margin-top: -3px;`},
		{utility: `-mx-`, arbitrary: `var(--gutter)`, out: `margin-left: calc(var(--gutter) * -1); margin-right: calc(var(--gutter) * -1);`},
		{utility: `-top-1/2`, out: `top: -50%;`},
		{utility: `inset-0`, out: `inset: 0px;`},
		{utility: `w-1/3`, out: `width: 33.333333%;`},
		{utility: `w-full`, out: `width: 100%;`},
		{utility: `w-`, arbitrary: `100px`, out: `width: 100px;`},
		{utility: `h-screen`, out: `height: 100vh;`},
		{utility: `h-`, arbitrary: `calc(100vh-64px)`, out: `height: calc(100vh-64px);`},
		{utility: `min-h-`, arbitrary: `100vh`, out: `min-height: 100vh;`},
		{utility: `max-w-md`, out: `max-width: 28rem;`},
		{utility: `size-4`, out: `width: 1rem; height: 1rem;`},
		{utility: `bg-blue-500`, out: `background-color: #3b82f6;`},
		{utility: `bg-black/50`, out: `background-color: rgb(0 0 0 / 0.5);`},
		{utility: `bg-[#fff]/25`, out: `background-color: rgb(255 255 255 / 0.25);`},
		{utility: `bg-#fff`, out: `background-color: #fff;`},
		{utility: `bg-#fff/50`, out: `background-color: rgb(255 255 255 / 0.5);`},
		{utility: `bg-rgb(0_0_0)`, out: `background-color: rgb(0 0 0);`},
		{utility: `text-#1e293b`, out: `color: #1e293b;`},
		{utility: `bg-[#ggg]/50`, out: `background-color: color-mix(in srgb, #ggg 50%, transparent);`},
		{utility: `bg-current/50`, out: `background-color: color-mix(in srgb, currentColor 50%, transparent);`},
		{utility: `bg-`, arbitrary: `#123456`, out: `background-color: #123456;`},
		{utility: `bg-`, arbitrary: `url(/img/a_b.png)`, out: `background-image: url(/img/a_b.png);`},
		{utility: `bg-cover`, out: `background-size: cover;`},
		{utility: `text-white`, out: `color: #ffffff;`},
		{utility: `text-lg`, out: `font-size: 1.125rem;`},
		{utility: `text-center`, out: `text-align: center;`},
		{utility: `text-`, arbitrary: `14px`, out: `font-size: 14px;`},
		{utility: `text-`, arbitrary: `rgb(0_0_0)`, out: `color: rgb(0 0 0);`},
		{utility: `text-`, arbitrary: `color:var(--fg)`, out: `color: var(--fg);`},
		{utility: `font-bold`, out: `font-weight: 700;`},
		{utility: `font-mono`, out: `font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace;`},
		{utility: `leading-tight`, out: `line-height: 1.25;`},
		{utility: `-tracking-wide`, out: `letter-spacing: -0.025em;`},
		{utility: `truncate`, out: `overflow: hidden; text-overflow: ellipsis; white-space: nowrap;`},
		{utility: `border`, out: `border-width: 1px;`},
		{utility: `border-2`, out: `border-width: 2px;`},
		{utility: `border-x-3`, out: `border-left-width: 3px; border-right-width: 3px;`},
		{utility: `border-t-red-500`, out: `border-top-color: #ef4444;`},
		{utility: `border-dashed`, out: `border-style: dashed;`},
		{utility: `rounded`, out: `border-radius: 0.25rem;`},
		{utility: `rounded-tl-lg`, out: `border-top-left-radius: 0.5rem;`},
		{utility: `ring`, out: `box-shadow: 0 0 0 3px var(--tw-ring-color, rgb(59 130 246 / 0.5));`},
		{utility: `ring-blue-500`, out: `--tw-ring-color: #3b82f6;`},
		{utility: `ring-offset-2`, out: `--tw-ring-offset-width: 2px;`},
		{utility: `shadow`, out: `box-shadow: 0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1);`},
		{utility: `opacity-75`, out: `opacity: 0.75;`},
		{utility: `z-10`, out: `z-index: 10;`},
		{utility: `-z-10`, out: `z-index: -10;`},
		{utility: `overflow-y-auto`, out: `overflow-y: auto;`},
		{utility: `cursor-pointer`, out: `cursor: pointer;`},
		{utility: `reset-list`, out: `list-style: none; margin: 0; padding: 0;`},
		{utility: `[mask-type:alpha]`, out: `mask-type: alpha;`},
		{utility: `[grid-area:1_/_2]`, out: `grid-area: 1 / 2;`},
	}

	r := resolver.Default(theme.Default())
	for i, tt := range tests {
		var arbitrary *string
		if tt.arbitrary != "" {
			arbitrary = &tt.arbitrary
		}

		a, ok := r.Resolve(tt.utility, arbitrary)
		if !ok {
			t.Errorf("%d. <%q> not resolved", i, tt.utility)
		} else if s := a.String(); s != tt.out {
			t.Errorf("%d. <%q> exp=%q, got=%q", i, tt.utility, tt.out, s)
		}
	}
}

// Ensure that unknown and malformed utilities do not resolve.
func TestDefault_Resolve_Unknown(t *testing.T) {
	r := resolver.Default(theme.Default())
	for _, s := range []string{
		`group`,
		`peer`,
		`my-component`,
		`p`,
		`p-13`,
		`bg-nope-500`,
		`-bg-red-500`,
		`-block`,
		`opacity-101`,
		`block-4`,
		`reset-nope`,
		`[nope]`,
		`[:alpha]`,
		`-`,
		`w-[`,
	} {
		_, ok := r.Resolve(s, nil)
		assert.False(t, ok, s)
	}

	// Empty arbitrary payloads resolve like a bare utility.
	_, ok := r.Resolve(`w-`, nil)
	assert.False(t, ok)
}

// Ensure that resolved declarations are not shared between calls.
func TestDefault_Resolve_Fresh(t *testing.T) {
	r := resolver.Default(theme.Default())
	a, ok := r.Resolve(`truncate`, nil)
	require.True(t, ok)
	a[0].Value = "changed"

	b, ok := r.Resolve(`truncate`, nil)
	require.True(t, ok)
	assert.Equal(t, "hidden", b[0].Value)
}

// Ensure that a custom table resolves by longest registered prefix.
func TestTable_LongestPrefix(t *testing.T) {
	tbl := resolver.NewTable()
	record := func(tag string) resolver.Func {
		return func(name string, value, arbitrary *string) (ast.Declarations, bool) {
			v := "<nil>"
			if value != nil {
				v = *value
			}
			return ast.Declarations{{Property: tag, Value: name + "|" + v}}, true
		}
	}
	tbl.Register("a", record("short"))
	tbl.Register("a-b", record("long"))
	assert.Equal(t, 2, tbl.Len())

	a, ok := tbl.Resolve("a-b-c", nil)
	require.True(t, ok)
	assert.Equal(t, "long: a-b|c;", a.String())

	a, ok = tbl.Resolve("a-x-y", nil)
	require.True(t, ok)
	assert.Equal(t, "short: a|x-y;", a.String())

	a, ok = tbl.Resolve("a", nil)
	require.True(t, ok)
	assert.Equal(t, "short: a|<nil>;", a.String())
}

// Ensure that ResolverFunc adapts plain functions.
func TestResolverFunc(t *testing.T) {
	var r resolver.Resolver = resolver.ResolverFunc(func(utility string, _ *string) (ast.Declarations, bool) {
		return ast.Declarations{{Property: "x", Value: utility}}, true
	})
	a, ok := r.Resolve("y", nil)
	require.True(t, ok)
	assert.Equal(t, "x: y;", a.String())
}

// Ensure that arbitrary payloads are normalized.
func TestNormalize(t *testing.T) {
	var tests = []struct {
		s, out string
	}{
		{s: `1fr_2fr`, out: `1fr 2fr`},
		{s: `a\_b`, out: `a_b`},
		{s: `url(/a_b.png)`, out: `url(/a_b.png)`},
		{s: `calc(100%-1rem)`, out: `calc(100%-1rem)`},
	}
	for i, tt := range tests {
		if out := resolver.Normalize(tt.s); out != tt.out {
			t.Errorf("%d. <%q> exp=%q, got=%q", i, tt.s, tt.out, out)
		}
	}
}

// Ensure that values are negated.
func TestNegate(t *testing.T) {
	var tests = []struct {
		s, out string
	}{
		{s: `0`, out: `0`},
		{s: `0px`, out: `0px`},
		{s: `1rem`, out: `-1rem`},
		{s: `.5rem`, out: `-.5rem`},
		{s: `-2px`, out: `2px`},
		{s: `var(--x)`, out: `calc(var(--x) * -1)`},
	}
	for i, tt := range tests {
		if out := resolver.Negate(tt.s); out != tt.out {
			t.Errorf("%d. <%q> exp=%q, got=%q", i, tt.s, tt.out, out)
		}
	}
}
