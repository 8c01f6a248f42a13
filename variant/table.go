package variant

// table is the built-in variant table. Orders are grouped in buckets per kind:
//
//	PseudoClass    [100,200)
//	PseudoElement  [200,300)
//	State          [300,400)
//	MediaQuery     [400,500)
//	Print          500
//	SupportsQuery  [600,700)
//	AriaAttribute  [700,800)
//	DataAttribute  [800,900)
//	Directional    [900,1000)
//	Responsive     [1000,...)
var table = []Entry{
	{Name: "hover", Kind: PseudoClass, Selector: `:hover`, Order: 100, Description: `Matches the element's :hover state`},
	{Name: "focus", Kind: PseudoClass, Selector: `:focus`, Order: 101, Description: `Matches the element's :focus state`},
	{Name: "focus-within", Kind: PseudoClass, Selector: `:focus-within`, Order: 102, Description: `Matches the element's :focus-within state`},
	{Name: "focus-visible", Kind: PseudoClass, Selector: `:focus-visible`, Order: 103, Description: `Matches the element's :focus-visible state`},
	{Name: "active", Kind: PseudoClass, Selector: `:active`, Order: 104, Description: `Matches the element's :active state`},
	{Name: "visited", Kind: PseudoClass, Selector: `:visited`, Order: 105, Description: `Matches the element's :visited state`},
	{Name: "target", Kind: PseudoClass, Selector: `:target`, Order: 106, Description: `Matches the element's :target state`},
	{Name: "first", Kind: PseudoClass, Selector: `:first-child`, Order: 107, Description: `Matches the element's :first-child state`},
	{Name: "last", Kind: PseudoClass, Selector: `:last-child`, Order: 108, Description: `Matches the element's :last-child state`},
	{Name: "only", Kind: PseudoClass, Selector: `:only-child`, Order: 109, Description: `Matches the element's :only-child state`},
	{Name: "odd", Kind: PseudoClass, Selector: `:nth-child(odd)`, Order: 110, Description: `Matches the element's :nth-child(odd) state`},
	{Name: "even", Kind: PseudoClass, Selector: `:nth-child(even)`, Order: 111, Description: `Matches the element's :nth-child(even) state`},
	{Name: "first-of-type", Kind: PseudoClass, Selector: `:first-of-type`, Order: 112, Description: `Matches the element's :first-of-type state`},
	{Name: "last-of-type", Kind: PseudoClass, Selector: `:last-of-type`, Order: 113, Description: `Matches the element's :last-of-type state`},
	{Name: "only-of-type", Kind: PseudoClass, Selector: `:only-of-type`, Order: 114, Description: `Matches the element's :only-of-type state`},
	{Name: "empty", Kind: PseudoClass, Selector: `:empty`, Order: 115, Description: `Matches the element's :empty state`},
	{Name: "disabled", Kind: PseudoClass, Selector: `:disabled`, Order: 116, Description: `Matches the element's :disabled state`},
	{Name: "enabled", Kind: PseudoClass, Selector: `:enabled`, Order: 117, Description: `Matches the element's :enabled state`},
	{Name: "checked", Kind: PseudoClass, Selector: `:checked`, Order: 118, Description: `Matches the element's :checked state`},
	{Name: "indeterminate", Kind: PseudoClass, Selector: `:indeterminate`, Order: 119, Description: `Matches the element's :indeterminate state`},
	{Name: "default", Kind: PseudoClass, Selector: `:default`, Order: 120, Description: `Matches the element's :default state`},
	{Name: "required", Kind: PseudoClass, Selector: `:required`, Order: 121, Description: `Matches the element's :required state`},
	{Name: "valid", Kind: PseudoClass, Selector: `:valid`, Order: 122, Description: `Matches the element's :valid state`},
	{Name: "invalid", Kind: PseudoClass, Selector: `:invalid`, Order: 123, Description: `Matches the element's :invalid state`},
	{Name: "in-range", Kind: PseudoClass, Selector: `:in-range`, Order: 124, Description: `Matches the element's :in-range state`},
	{Name: "out-of-range", Kind: PseudoClass, Selector: `:out-of-range`, Order: 125, Description: `Matches the element's :out-of-range state`},
	{Name: "placeholder-shown", Kind: PseudoClass, Selector: `:placeholder-shown`, Order: 126, Description: `Matches the element's :placeholder-shown state`},
	{Name: "autofill", Kind: PseudoClass, Selector: `:autofill`, Order: 127, Description: `Matches the element's :autofill state`},
	{Name: "read-only", Kind: PseudoClass, Selector: `:read-only`, Order: 128, Description: `Matches the element's :read-only state`},

	{Name: "before", Kind: PseudoElement, Selector: `::before`, Order: 200, Description: `Styles the ::before pseudo-element`},
	{Name: "after", Kind: PseudoElement, Selector: `::after`, Order: 201, Description: `Styles the ::after pseudo-element`},
	{Name: "placeholder", Kind: PseudoElement, Selector: `::placeholder`, Order: 202, Description: `Styles the ::placeholder pseudo-element`},
	{Name: "file", Kind: PseudoElement, Selector: `::file-selector-button`, Order: 203, Description: `Styles the ::file-selector-button pseudo-element`},
	{Name: "marker", Kind: PseudoElement, Selector: `::marker`, Order: 204, Description: `Styles the ::marker pseudo-element`},
	{Name: "selection", Kind: PseudoElement, Selector: `::selection`, Order: 205, Description: `Styles the ::selection pseudo-element`},
	{Name: "first-line", Kind: PseudoElement, Selector: `::first-line`, Order: 206, Description: `Styles the ::first-line pseudo-element`},
	{Name: "first-letter", Kind: PseudoElement, Selector: `::first-letter`, Order: 207, Description: `Styles the ::first-letter pseudo-element`},
	{Name: "backdrop", Kind: PseudoElement, Selector: `::backdrop`, Order: 208, Description: `Styles the ::backdrop pseudo-element`},

	{Name: "open", Kind: State, Selector: `[open]`, Order: 300, Description: `Matches open <details> and <dialog> elements`},
	{Name: "inert", Kind: State, Selector: `[inert]`, Order: 301, Description: `Matches inert subtrees`},

	{Name: "dark", Kind: MediaQuery, Selector: `@media (prefers-color-scheme: dark)`, Order: 400, Description: `Dark colour scheme`},
	{Name: "motion-safe", Kind: MediaQuery, Selector: `@media (prefers-reduced-motion: no-preference)`, Order: 401, Description: `No reduced-motion preference`},
	{Name: "motion-reduce", Kind: MediaQuery, Selector: `@media (prefers-reduced-motion: reduce)`, Order: 402, Description: `Reduced motion requested`},
	{Name: "contrast-more", Kind: MediaQuery, Selector: `@media (prefers-contrast: more)`, Order: 403, Description: `Increased contrast requested`},
	{Name: "contrast-less", Kind: MediaQuery, Selector: `@media (prefers-contrast: less)`, Order: 404, Description: `Reduced contrast requested`},
	{Name: "portrait", Kind: MediaQuery, Selector: `@media (orientation: portrait)`, Order: 405, Description: `Portrait orientation`},
	{Name: "landscape", Kind: MediaQuery, Selector: `@media (orientation: landscape)`, Order: 406, Description: `Landscape orientation`},
	{Name: "forced-colors", Kind: MediaQuery, Selector: `@media (forced-colors: active)`, Order: 407, Description: `Forced colours mode`},
	{Name: "pointer-fine", Kind: MediaQuery, Selector: `@media (pointer: fine)`, Order: 408, Description: `Precise primary pointer`},

	{Name: "print", Kind: Print, Selector: `@media print`, Order: 500, Description: `Printed output`},

	{Name: "supports-grid", Kind: SupportsQuery, Selector: `@supports (display: grid)`, Order: 600, Description: `Grid layout support`},
	{Name: "supports-backdrop", Kind: SupportsQuery, Selector: `@supports (backdrop-filter: blur(0))`, Order: 601, Description: `Backdrop filter support`},

	{Name: "aria-checked", Kind: AriaAttribute, Selector: `[aria-checked="true"]`, Order: 700, Description: `aria-checked="true"`},
	{Name: "aria-disabled", Kind: AriaAttribute, Selector: `[aria-disabled="true"]`, Order: 701, Description: `aria-disabled="true"`},
	{Name: "aria-expanded", Kind: AriaAttribute, Selector: `[aria-expanded="true"]`, Order: 702, Description: `aria-expanded="true"`},
	{Name: "aria-hidden", Kind: AriaAttribute, Selector: `[aria-hidden="true"]`, Order: 703, Description: `aria-hidden="true"`},
	{Name: "aria-pressed", Kind: AriaAttribute, Selector: `[aria-pressed="true"]`, Order: 704, Description: `aria-pressed="true"`},
	{Name: "aria-readonly", Kind: AriaAttribute, Selector: `[aria-readonly="true"]`, Order: 705, Description: `aria-readonly="true"`},
	{Name: "aria-required", Kind: AriaAttribute, Selector: `[aria-required="true"]`, Order: 706, Description: `aria-required="true"`},
	{Name: "aria-selected", Kind: AriaAttribute, Selector: `[aria-selected="true"]`, Order: 707, Description: `aria-selected="true"`},

	{Name: "data-active", Kind: DataAttribute, Selector: `[data-active]`, Order: 800, Description: `data-active attribute present`},
	{Name: "data-disabled", Kind: DataAttribute, Selector: `[data-disabled]`, Order: 801, Description: `data-disabled attribute present`},
	{Name: "data-open", Kind: DataAttribute, Selector: `[data-open]`, Order: 802, Description: `data-open attribute present`},

	{Name: "rtl", Kind: Directional, Selector: `:where([dir="rtl"], [dir="rtl"] *)`, Order: 900, Description: `Right-to-left writing direction`},
	{Name: "ltr", Kind: Directional, Selector: `:where([dir="ltr"], [dir="ltr"] *)`, Order: 901, Description: `Left-to-right writing direction`},

	{Name: "sm", Kind: Responsive, Selector: `@media (min-width: 640px)`, Order: 1000, Description: `Viewport at least 640px wide`},
	{Name: "md", Kind: Responsive, Selector: `@media (min-width: 768px)`, Order: 1001, Description: `Viewport at least 768px wide`},
	{Name: "lg", Kind: Responsive, Selector: `@media (min-width: 1024px)`, Order: 1002, Description: `Viewport at least 1024px wide`},
	{Name: "xl", Kind: Responsive, Selector: `@media (min-width: 1280px)`, Order: 1003, Description: `Viewport at least 1280px wide`},
	{Name: "2xl", Kind: Responsive, Selector: `@media (min-width: 1536px)`, Order: 1004, Description: `Viewport at least 1536px wide`},
}
