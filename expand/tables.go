package expand

import (
	"strings"

	"github.com/benbjohnson/tailcss/scanner"
)

// Prefix holds the expansion rules for one macro prefix.
type Prefix struct {
	Name string

	// Values maps a value to the complete class it expands to.
	Values map[string]string

	// Aliases rewrite a value prefix into a class prefix, e.g. "jc-" into
	// "justify-". They are tried in order.
	Aliases []Alias

	// Modifiers map a modifier to a class template that takes the rendered
	// value of the next token.
	Modifiers map[string]string
}

// Alias rewrites values starting with From into classes starting with To.
type Alias struct {
	From string
	To   string
}

// expand resolves a standalone value: exact table, then alias, then
// prefix-value with the value rendered by the heuristics.
func (p *Prefix) expand(v string) string {
	if c, ok := p.Values[v]; ok {
		return c
	}
	for _, a := range p.Aliases {
		if strings.HasPrefix(v, a.From) && len(v) > len(a.From) {
			return a.To + v[len(a.From):]
		}
	}
	return p.Name + "-" + p.render(v)
}

// render formats a value for use after a class prefix. Scale keys and
// colours are used as-is; sizes become arbitrary values.
func (p *Prefix) render(v string) string {
	switch {
	case isScale(v):
		return v
	case isColor(v):
		return v
	case isSize(v):
		return "[" + v + "]"
	}
	return v
}

// isScale returns true for bare scale keys: "4", "0.5", "1/2", "px".
func isScale(v string) bool {
	if v == "px" {
		return true
	}
	if i := strings.IndexByte(v, '/'); i > 0 {
		return isDigits(v[:i]) && isDigits(v[i+1:])
	}
	if i := strings.IndexByte(v, '.'); i > 0 {
		return isDigits(v[:i]) && isDigits(v[i+1:])
	}
	return isDigits(v)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !scanner.IsDigit(rune(s[i])) {
			return false
		}
	}
	return true
}

// colorFamilies are the palette names recognised by the colour heuristic.
var colorFamilies = []string{
	"slate", "gray", "zinc", "neutral", "stone",
	"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal",
	"cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
	"black", "white", "transparent", "current", "inherit",
}

// isColor returns true if v names a palette colour or a literal colour.
func isColor(v string) bool {
	if strings.HasPrefix(v, "#") || strings.HasPrefix(v, "rgb") || strings.HasPrefix(v, "hsl") || strings.HasPrefix(v, "oklch") {
		return true
	}
	for _, fam := range colorFamilies {
		if v == fam || strings.HasPrefix(v, fam+"-") || strings.HasPrefix(v, fam+"/") {
			return true
		}
	}
	return false
}

// units are the CSS units recognised by the size heuristic, longest first so
// that "rem" is tried before "em".
var units = []string{
	"vmin", "vmax", "turn",
	"rem", "dvh", "dvw", "svh", "svw", "lvh", "lvw", "deg", "rad",
	"px", "em", "vh", "vw", "ch", "ex", "fr", "pt", "pc", "cm", "mm", "in", "ms",
	"%", "s",
}

// isSize returns true if v looks like a CSS length or function value.
func isSize(v string) bool {
	if v == "" {
		return false
	} else if strings.Contains(v, "(") {
		return true
	} else if c := rune(v[0]); scanner.IsDigit(c) || c == '.' {
		return true
	}
	for _, u := range units {
		if strings.HasSuffix(v, u) && len(v) > len(u) && scanner.IsDigit(rune(v[len(v)-len(u)-1])) {
			return true
		}
	}
	return false
}

// sides builds modifier templates for single-letter directions.
func sides(format string, letters ...string) map[string]string {
	m := make(map[string]string, len(letters))
	for _, l := range letters {
		m[l] = strings.Replace(format, "{}", l, 1)
	}
	return m
}

var layoutAliases = []Alias{
	{From: "jc-", To: "justify-"},
	{From: "ji-", To: "justify-items-"},
	{From: "js-", To: "justify-self-"},
	{From: "ai-", To: "items-"},
	{From: "ac-", To: "content-"},
	{From: "as-", To: "self-"},
	{From: "gap-", To: "gap-"},
	{From: "order-", To: "order-"},
}

// prefixes are the built-in macro prefix tables.
var prefixes = map[string]*Prefix{
	"flex": {
		Name: "flex",
		Values: map[string]string{
			"col":          "flex-col",
			"row":          "flex-row",
			"col-reverse":  "flex-col-reverse",
			"row-reverse":  "flex-row-reverse",
			"wrap":         "flex-wrap",
			"nowrap":       "flex-nowrap",
			"wrap-reverse": "flex-wrap-reverse",
			"inline":       "inline-flex",
			"grow":         "grow",
			"shrink":       "shrink",
			"center":       "place-content-center",
		},
		Aliases: layoutAliases,
	},
	"grid": {
		Name: "grid",
		Values: map[string]string{
			"inline": "inline-grid",
			"dense":  "grid-flow-dense",
			"center": "place-items-center",
		},
		Aliases: append([]Alias{
			{From: "cols-", To: "grid-cols-"},
			{From: "rows-", To: "grid-rows-"},
			{From: "flow-", To: "grid-flow-"},
		}, layoutAliases...),
	},
	"text": {
		Name: "text",
		Values: map[string]string{
			"thin":       "font-thin",
			"light":      "font-light",
			"normal":     "font-normal",
			"medium":     "font-medium",
			"semibold":   "font-semibold",
			"bold":       "font-bold",
			"extrabold":  "font-extrabold",
			"italic":     "italic",
			"underline":  "underline",
			"uppercase":  "uppercase",
			"lowercase":  "lowercase",
			"capitalize": "capitalize",
			"truncate":   "truncate",
			"nowrap":     "whitespace-nowrap",
		},
	},
	"font": {
		Name:   "font",
		Values: map[string]string{"italic": "italic"},
	},
	"border": {
		Name:      "border",
		Modifiers: sides("border-{}-%s", "x", "y", "t", "r", "b", "l", "s", "e"),
	},
	"h": {
		Name:      "h",
		Modifiers: map[string]string{"min": "min-h-%s", "max": "max-h-%s"},
	},
	"w": {
		Name:      "w",
		Modifiers: map[string]string{"min": "min-w-%s", "max": "max-w-%s"},
	},
	"p": {
		Name:      "p",
		Modifiers: sides("p{}-%s", "x", "y", "t", "b", "l", "r", "s", "e"),
	},
	"m": {
		Name:      "m",
		Modifiers: sides("m{}-%s", "x", "y", "t", "b", "l", "r", "s", "e"),
	},
	"scroll": {
		Name: "scroll",
		Values: map[string]string{
			"smooth": "scroll-smooth",
			"auto":   "scroll-auto",
		},
		Modifiers: sides("overflow-{}-%s", "x", "y"),
	},
	"overflow": {
		Name:      "overflow",
		Modifiers: sides("overflow-{}-%s", "x", "y"),
	},
	"rounded": {
		Name:      "rounded",
		Modifiers: sides("rounded-{}-%s", "t", "r", "b", "l", "s", "e", "tl", "tr", "br", "bl", "ss", "se", "ee", "es"),
	},
	"space": {
		Name:      "space",
		Modifiers: sides("space-{}-%s", "x", "y"),
	},
	"gap": {
		Name:      "gap",
		Modifiers: sides("gap-{}-%s", "x", "y"),
	},
	"inset": {
		Name: "inset",
		Modifiers: map[string]string{
			"x": "inset-x-%s",
			"y": "inset-y-%s",
			"t": "top-%s",
			"b": "bottom-%s",
			"l": "left-%s",
			"r": "right-%s",
			"s": "start-%s",
			"e": "end-%s",
		},
	},
	"ring": {
		Name:      "ring",
		Values:    map[string]string{"inset": "ring-inset"},
		Modifiers: map[string]string{"offset": "ring-offset-%s"},
	},
}
