package resolver

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/theme"
)

// Default returns a table of the built-in utilities resolved against t.
func Default(t *theme.Theme) *Table {
	tbl := NewTable()
	registerLayout(tbl)
	registerFlexGrid(tbl, t)
	registerSpacing(tbl, t)
	registerSizing(tbl, t)
	registerColors(tbl, t)
	registerTypography(tbl, t)
	registerBorders(tbl, t)
	registerEffects(tbl, t)
	registerInteractivity(tbl)
	registerResets(tbl)
	return tbl
}

func registerLayout(tbl *Table) {
	for name, display := range map[string]string{
		"block":        "block",
		"inline-block": "inline-block",
		"inline":       "inline",
		"inline-flex":  "inline-flex",
		"grid":         "grid",
		"inline-grid":  "inline-grid",
		"table":        "table",
		"contents":     "contents",
		"flow-root":    "flow-root",
		"list-item":    "list-item",
		"hidden":       "none",
	} {
		tbl.Register(name, static("display", display))
	}

	for _, pos := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		tbl.Register(pos, static("position", pos))
	}

	tbl.Register("visible", static("visibility", "visible"))
	tbl.Register("invisible", static("visibility", "hidden"))
	tbl.Register("collapse", static("visibility", "collapse"))
	tbl.Register("box-border", static("box-sizing", "border-box"))
	tbl.Register("box-content", static("box-sizing", "content-box"))
	tbl.Register("isolate", static("isolation", "isolate"))

	overflow := map[string]string{"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll"}
	tbl.Register("overflow", keyword(overflow, "overflow"))
	tbl.Register("overflow-x", keyword(overflow, "overflow-x"))
	tbl.Register("overflow-y", keyword(overflow, "overflow-y"))

	tbl.RegisterSigned("z", scale(oneOf(integer, fixed(map[string]string{"auto": "auto"})), "z-index"))
}

func registerFlexGrid(tbl *Table, t *theme.Theme) {
	tbl.Register("flex", func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		switch {
		case arbitrary != nil && value == nil:
			return decls("flex", *arbitrary), true
		case arbitrary != nil:
			return nil, false
		case value == nil:
			return decls("display", "flex"), true
		}
		switch *value {
		case "row", "row-reverse":
			return decls("flex-direction", *value), true
		case "col":
			return decls("flex-direction", "column"), true
		case "col-reverse":
			return decls("flex-direction", "column-reverse"), true
		case "wrap", "nowrap", "wrap-reverse":
			return decls("flex-wrap", *value), true
		case "1":
			return decls("flex", "1 1 0%"), true
		case "auto":
			return decls("flex", "1 1 auto"), true
		case "initial":
			return decls("flex", "0 1 auto"), true
		case "none":
			return decls("flex", "none"), true
		}
		return nil, false
	})

	growShrink := oneOf(integer, fixed(map[string]string{"": "1"}))
	tbl.Register("grow", scale(growShrink, "flex-grow"))
	tbl.Register("shrink", scale(growShrink, "flex-shrink"))
	tbl.Register("basis", scale(oneOf(themed(t, theme.Spacing), fraction, fixed(map[string]string{"auto": "auto", "full": "100%"})), "flex-basis"))
	tbl.RegisterSigned("order", scale(oneOf(integer, fixed(map[string]string{"first": "-9999", "last": "9999", "none": "0"})), "order"))

	content := map[string]string{
		"normal":  "normal",
		"start":   "flex-start",
		"end":     "flex-end",
		"center":  "center",
		"between": "space-between",
		"around":  "space-around",
		"evenly":  "space-evenly",
		"stretch": "stretch",
	}
	items := map[string]string{"start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch"}
	self := map[string]string{"auto": "auto", "start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch"}
	place := map[string]string{"start": "start", "end": "end", "center": "center", "stretch": "stretch"}

	tbl.Register("justify", keyword(content, "justify-content"))
	tbl.Register("justify-items", keyword(place, "justify-items"))
	tbl.Register("justify-self", keyword(map[string]string{"auto": "auto", "start": "start", "end": "end", "center": "center", "stretch": "stretch"}, "justify-self"))
	tbl.Register("items", keyword(items, "align-items"))
	tbl.Register("content", keyword(content, "align-content"))
	tbl.Register("self", keyword(self, "align-self"))
	tbl.Register("place-content", keyword(map[string]string{
		"center": "center", "start": "start", "end": "end", "between": "space-between",
		"around": "space-around", "evenly": "space-evenly", "stretch": "stretch",
	}, "place-content"))
	tbl.Register("place-items", keyword(place, "place-items"))
	tbl.Register("place-self", keyword(map[string]string{"auto": "auto", "start": "start", "end": "end", "center": "center", "stretch": "stretch"}, "place-self"))

	tracks := func(v string) (string, bool) {
		switch v {
		case "none", "subgrid":
			return v, true
		}
		if n, ok := integer(v); ok && n != "0" {
			return "repeat(" + n + ", minmax(0, 1fr))", true
		}
		return "", false
	}
	tbl.Register("grid-cols", scale(tracks, "grid-template-columns"))
	tbl.Register("grid-rows", scale(tracks, "grid-template-rows"))

	span := func(v string) (string, bool) {
		if v == "full" {
			return "1 / -1", true
		} else if n, ok := integer(v); ok && n != "0" {
			return "span " + n + " / span " + n, true
		}
		return "", false
	}
	tbl.Register("col-span", scale(span, "grid-column"))
	tbl.Register("row-span", scale(span, "grid-row"))

	line := oneOf(integer, fixed(map[string]string{"auto": "auto"}))
	tbl.Register("col-start", scale(line, "grid-column-start"))
	tbl.Register("col-end", scale(line, "grid-column-end"))
	tbl.Register("row-start", scale(line, "grid-row-start"))
	tbl.Register("row-end", scale(line, "grid-row-end"))

	tbl.Register("grid-flow", keyword(map[string]string{
		"row": "row", "col": "column", "dense": "dense", "row-dense": "row dense", "col-dense": "column dense",
	}, "grid-auto-flow"))

	spacing := themed(t, theme.Spacing)
	tbl.Register("gap", scale(spacing, "gap"))
	tbl.Register("gap-x", scale(spacing, "column-gap"))
	tbl.Register("gap-y", scale(spacing, "row-gap"))
}

// sides maps a spacing utility suffix to the properties it sets.
var sides = []struct {
	suffix string
	props  []string
}{
	{"", []string{""}},
	{"x", []string{"-left", "-right"}},
	{"y", []string{"-top", "-bottom"}},
	{"t", []string{"-top"}},
	{"r", []string{"-right"}},
	{"b", []string{"-bottom"}},
	{"l", []string{"-left"}},
	{"s", []string{"-inline-start"}},
	{"e", []string{"-inline-end"}},
}

func registerSpacing(tbl *Table, t *theme.Theme) {
	spacing := themed(t, theme.Spacing)
	margin := oneOf(spacing, fixed(map[string]string{"auto": "auto"}))

	for _, s := range sides {
		var padding, margins []string
		for _, p := range s.props {
			padding = append(padding, "padding"+p)
			margins = append(margins, "margin"+p)
		}
		tbl.Register("p"+s.suffix, scale(spacing, padding...))
		tbl.RegisterSigned("m"+s.suffix, scale(margin, margins...))
	}

	inset := oneOf(spacing, fraction, fixed(map[string]string{"auto": "auto", "full": "100%"}))
	tbl.RegisterSigned("inset", scale(inset, "inset"))
	tbl.RegisterSigned("inset-x", scale(inset, "left", "right"))
	tbl.RegisterSigned("inset-y", scale(inset, "top", "bottom"))
	for _, p := range []string{"top", "right", "bottom", "left"} {
		tbl.RegisterSigned(p, scale(inset, p))
	}
	tbl.RegisterSigned("start", scale(inset, "inset-inline-start"))
	tbl.RegisterSigned("end", scale(inset, "inset-inline-end"))
}

func registerSizing(tbl *Table, t *theme.Theme) {
	spacing := themed(t, theme.Spacing)
	intrinsic := map[string]string{"auto": "auto", "full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content"}

	width := oneOf(spacing, fraction, fixed(intrinsic), fixed(map[string]string{"screen": "100vw", "svw": "100svw", "lvw": "100lvw", "dvw": "100dvw"}))
	height := oneOf(spacing, fraction, fixed(intrinsic), fixed(map[string]string{"screen": "100vh", "svh": "100svh", "lvh": "100lvh", "dvh": "100dvh"}))

	tbl.Register("w", scale(width, "width"))
	tbl.Register("h", scale(height, "height"))
	tbl.Register("size", scale(oneOf(spacing, fraction, fixed(intrinsic)), "width", "height"))
	tbl.Register("min-w", scale(width, "min-width"))
	tbl.Register("min-h", scale(height, "min-height"))
	tbl.Register("max-w", scale(oneOf(themed(t, theme.MaxWidth), spacing, fixed(map[string]string{"none": "none", "full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content"})), "max-width"))
	tbl.Register("max-h", scale(oneOf(spacing, fixed(map[string]string{"none": "none", "full": "100%", "screen": "100vh", "dvh": "100dvh", "fit": "fit-content"})), "max-height"))
}

func registerColors(tbl *Table, t *theme.Theme) {
	tbl.Register("bg", first(
		color(t, "background-color"),
		keyword(map[string]string{"fixed": "fixed", "local": "local", "scroll": "scroll"}, "background-attachment"),
		keyword(map[string]string{"auto": "auto", "cover": "cover", "contain": "contain"}, "background-size"),
		keyword(map[string]string{"center": "center", "top": "top", "bottom": "bottom", "left": "left", "right": "right"}, "background-position"),
		keyword(map[string]string{"repeat": "repeat", "no-repeat": "no-repeat", "repeat-x": "repeat-x", "repeat-y": "repeat-y"}, "background-repeat"),
		keyword(map[string]string{"none": "none"}, "background-image"),
		func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
			if arbitrary == nil || value != nil {
				return nil, false
			}
			v := stripHint(*arbitrary)
			if strings.HasPrefix(*arbitrary, "url:") || strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient(") {
				return decls("background-image", v), true
			}
			return decls("background-color", v), true
		},
	))

	tbl.Register("accent", color(t, "accent-color"))
	tbl.Register("caret", color(t, "caret-color"))
	tbl.Register("fill", color(t, "fill"))
	tbl.Register("stroke", color(t, "stroke"))
}

func registerTypography(tbl *Table, t *theme.Theme) {
	tbl.Register("text", first(
		color(t, "color"),
		keyword(map[string]string{"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end"}, "text-align"),
		scale(themed(t, theme.FontSize), "font-size"),
	))

	tbl.Register("font", func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		if arbitrary != nil {
			if value != nil {
				return nil, false
			} else if _, err := strconv.Atoi(*arbitrary); err == nil {
				return decls("font-weight", *arbitrary), true
			}
			return decls("font-family", *arbitrary), true
		} else if value == nil {
			return nil, false
		}
		if v, ok := t.Get(theme.FontWeight, *value); ok {
			return decls("font-weight", v), true
		} else if v, ok := t.Get(theme.FontFamily, *value); ok {
			return decls("font-family", v), true
		}
		return nil, false
	})

	tbl.Register("leading", scale(themed(t, theme.LineHeight), "line-height"))
	tbl.RegisterSigned("tracking", scale(themed(t, theme.LetterSpacing), "letter-spacing"))

	tbl.Register("italic", static("font-style", "italic"))
	tbl.Register("not-italic", static("font-style", "normal"))
	tbl.Register("underline", static("text-decoration-line", "underline"))
	tbl.Register("overline", static("text-decoration-line", "overline"))
	tbl.Register("line-through", static("text-decoration-line", "line-through"))
	tbl.Register("no-underline", static("text-decoration-line", "none"))
	tbl.Register("uppercase", static("text-transform", "uppercase"))
	tbl.Register("lowercase", static("text-transform", "lowercase"))
	tbl.Register("capitalize", static("text-transform", "capitalize"))
	tbl.Register("normal-case", static("text-transform", "none"))
	tbl.Register("truncate", static("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"))
	tbl.Register("break-words", static("overflow-wrap", "break-word"))
	tbl.Register("break-all", static("word-break", "break-all"))
	tbl.Register("whitespace", keyword(map[string]string{
		"normal": "normal", "nowrap": "nowrap", "pre": "pre", "pre-line": "pre-line",
		"pre-wrap": "pre-wrap", "break-spaces": "break-spaces",
	}, "white-space"))
	tbl.Register("list", keyword(map[string]string{"none": "none", "disc": "disc", "decimal": "decimal"}, "list-style-type"))
}

func registerBorders(tbl *Table, t *theme.Theme) {
	width := oneOf(themed(t, theme.BorderWidth), func(v string) (string, bool) {
		if n, ok := integer(v); ok {
			return n + "px", true
		}
		return "", false
	})

	for _, s := range []struct {
		suffix string
		sides  []string
	}{
		{"", []string{""}},
		{"-x", []string{"-left", "-right"}},
		{"-y", []string{"-top", "-bottom"}},
		{"-t", []string{"-top"}},
		{"-r", []string{"-right"}},
		{"-b", []string{"-bottom"}},
		{"-l", []string{"-left"}},
		{"-s", []string{"-inline-start"}},
		{"-e", []string{"-inline-end"}},
	} {
		var widths, colors []string
		for _, side := range s.sides {
			widths = append(widths, "border"+side+"-width")
			colors = append(colors, "border"+side+"-color")
		}

		fns := []Func{color(t, colors...)}
		if s.suffix == "" {
			fns = append(fns, keyword(map[string]string{
				"solid": "solid", "dashed": "dashed", "dotted": "dotted",
				"double": "double", "hidden": "hidden", "none": "none",
			}, "border-style"))
		}
		fns = append(fns, scale(width, widths...))
		tbl.Register("border"+s.suffix, first(fns...))
	}

	radius := themed(t, theme.BorderRadius)
	for suffix, props := range map[string][]string{
		"":    {"border-radius"},
		"-t":  {"border-top-left-radius", "border-top-right-radius"},
		"-r":  {"border-top-right-radius", "border-bottom-right-radius"},
		"-b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
		"-l":  {"border-top-left-radius", "border-bottom-left-radius"},
		"-s":  {"border-start-start-radius", "border-end-start-radius"},
		"-e":  {"border-start-end-radius", "border-end-end-radius"},
		"-tl": {"border-top-left-radius"},
		"-tr": {"border-top-right-radius"},
		"-br": {"border-bottom-right-radius"},
		"-bl": {"border-bottom-left-radius"},
		"-ss": {"border-start-start-radius"},
		"-se": {"border-start-end-radius"},
		"-ee": {"border-end-end-radius"},
		"-es": {"border-end-start-radius"},
	} {
		tbl.Register("rounded"+suffix, scale(radius, props...))
	}

	ringWidth := func(v string) (string, bool) {
		if v == "" {
			v = "3"
		}
		if n, ok := integer(v); ok {
			return "0 0 0 " + n + "px var(--tw-ring-color, rgb(59 130 246 / 0.5))", true
		}
		return "", false
	}
	tbl.Register("ring", first(
		keyword(map[string]string{"inset": "inset"}, "--tw-ring-inset"),
		color(t, "--tw-ring-color"),
		scale(ringWidth, "box-shadow"),
	))
	tbl.Register("ring-offset", first(
		color(t, "--tw-ring-offset-color"),
		scale(func(v string) (string, bool) {
			if n, ok := integer(v); ok {
				return n + "px", true
			}
			return "", false
		}, "--tw-ring-offset-width"),
	))

	tbl.Register("outline-none", static("outline", "2px solid transparent", "outline-offset", "2px"))
	tbl.Register("outline", first(color(t, "outline-color"), scale(fixed(map[string]string{"": "solid", "dashed": "dashed", "dotted": "dotted"}), "outline-style")))
}

func registerEffects(tbl *Table, t *theme.Theme) {
	tbl.Register("shadow", scale(themed(t, theme.BoxShadow), "box-shadow"))
	tbl.Register("opacity", scale(func(v string) (string, bool) {
		n, ok := integer(v)
		if !ok {
			return "", false
		}
		i, _ := strconv.Atoi(n)
		if i > 100 {
			return "", false
		}
		return formatFloat(float64(i) / 100), true
	}, "opacity"))
}

func registerInteractivity(tbl *Table) {
	tbl.Register("cursor", keyword(map[string]string{
		"auto": "auto", "default": "default", "pointer": "pointer", "wait": "wait", "text": "text",
		"move": "move", "help": "help", "not-allowed": "not-allowed", "none": "none",
		"grab": "grab", "grabbing": "grabbing",
	}, "cursor"))
	tbl.Register("pointer-events", keyword(map[string]string{"none": "none", "auto": "auto"}, "pointer-events"))
	tbl.Register("select", keyword(map[string]string{"none": "none", "text": "text", "all": "all", "auto": "auto"}, "user-select"))
	tbl.Register("appearance", keyword(map[string]string{"none": "none", "auto": "auto"}, "appearance"))
	tbl.Register("scroll", keyword(map[string]string{"smooth": "smooth", "auto": "auto"}, "scroll-behavior"))
}

// resets are declaration bundles applied by the "reset-*" utilities.
var resets = map[string][]string{
	"box": {
		"box-sizing", "border-box",
		"margin", "0",
		"padding", "0",
		"border", "0 solid",
	},
	"meyer": {
		"margin", "0",
		"padding", "0",
		"border", "0",
		"font-size", "100%",
		"font", "inherit",
		"vertical-align", "baseline",
	},
	"list": {
		"list-style", "none",
		"margin", "0",
		"padding", "0",
	},
	"button": {
		"appearance", "none",
		"background", "transparent",
		"border", "0",
		"padding", "0",
		"font", "inherit",
		"color", "inherit",
		"cursor", "pointer",
	},
	"link": {
		"color", "inherit",
		"text-decoration", "inherit",
	},
	"input": {
		"appearance", "none",
		"background", "transparent",
		"border", "0",
		"padding", "0",
		"font", "inherit",
		"color", "inherit",
		"outline", "none",
	},
}

func registerResets(tbl *Table) {
	tbl.Register("reset", func(_ string, value, arbitrary *string) (ast.Declarations, bool) {
		if value == nil || arbitrary != nil {
			return nil, false
		}
		pairs, ok := resets[*value]
		if !ok {
			return nil, false
		}
		return decls(pairs...), true
	})
}
