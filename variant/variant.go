// Package variant implements the registry of known class variants.
//
// The registry is a closed table: every entry has a kind that tells the
// composer how to apply it, a CSS fragment, and an order that places the
// resulting rule in the cascade. Orders fall into fixed, non-overlapping
// buckets per kind so that sorting rules by order emits state variants
// before colour-scheme media queries, before print, before feature queries,
// before attribute variants, before writing direction, before breakpoints.
package variant

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/parser"
)

// Kind represents how a variant changes a rule.
type Kind int

const (
	PseudoClass Kind = iota
	PseudoElement
	State
	MediaQuery
	Print
	SupportsQuery
	AriaAttribute
	DataAttribute
	Directional
	Responsive
)

var kinds = [...]string{
	PseudoClass:   "pseudo-class",
	PseudoElement: "pseudo-element",
	State:         "state",
	MediaQuery:    "media-query",
	Print:         "print",
	SupportsQuery: "supports-query",
	AriaAttribute: "aria-attribute",
	DataAttribute: "data-attribute",
	Directional:   "directional",
	Responsive:    "responsive",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsAtRule returns true if variants of this kind wrap the whole rule.
func (k Kind) IsAtRule() bool {
	return k == MediaQuery || k == Print || k == SupportsQuery || k == Responsive
}

// Entry represents a registered variant.
type Entry struct {
	Name        string
	Kind        Kind
	Selector    string
	Order       uint32
	Description string
}

// Relation identifies a variant that targets an ancestor or sibling marker
// rather than the element itself.
type Relation int

const (
	NoRelation Relation = iota
	Group
	Peer
)

// Registry is an immutable lookup table of variants.
type Registry struct {
	entries map[string]*Entry
	sorted  []*Entry
}

// NewRegistry builds a registry from a list of entries.
// It panics on a duplicate name; the table is fixed at compile time.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{entries: make(map[string]*Entry, len(entries))}
	for i := range entries {
		e := entries[i]
		if _, ok := r.entries[e.Name]; ok {
			panic("variant: duplicate entry " + e.Name)
		}
		r.entries[e.Name] = &e
		r.sorted = append(r.sorted, &e)
	}
	sort.SliceStable(r.sorted, func(i, j int) bool { return r.sorted[i].Order < r.sorted[j].Order })
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry built from the built-in table.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(table)
	})
	return defaultRegistry
}

// Get returns the entry for a variant name.
func (r *Registry) Get(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Count returns the number of registered variants.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Entries returns all entries sorted by ascending order.
func (r *Registry) Entries() []*Entry {
	return append([]*Entry(nil), r.sorted...)
}

// Relational splits a "group-*" or "peer-*" variant into its relation and
// the entry it applies to the marker. Pseudo-class, state and attribute
// entries can target a marker.
func (r *Registry) Relational(name string) (Relation, *Entry, bool) {
	var rel Relation
	var rest string
	switch {
	case strings.HasPrefix(name, "group-"):
		rel, rest = Group, strings.TrimPrefix(name, "group-")
	case strings.HasPrefix(name, "peer-"):
		rel, rest = Peer, strings.TrimPrefix(name, "peer-")
	default:
		return NoRelation, nil, false
	}

	e, ok := r.entries[rest]
	if !ok {
		return NoRelation, nil, false
	}
	switch e.Kind {
	case PseudoClass, State, AriaAttribute, DataAttribute:
		return rel, e, true
	}
	return NoRelation, nil, false
}

// Canonical returns a named variant in its registered form. A bare "group"
// or "peer" with a label ending in a sub-variant is split at the rightmost
// "-" whose remainder forms a relational variant:
//
//	group/side-nav-hover  => {Name: "group-hover", Label: "side-nav"}
//
// A relational variant that already names its target keeps the whole label.
// Returns false if v does not name a relational variant.
func (r *Registry) Canonical(v ast.Variant) (ast.Variant, bool) {
	if _, _, ok := r.Relational(v.Name); ok {
		return v, true
	} else if v.Label == "" || (v.Name != "group" && v.Name != "peer") {
		return v, false
	}

	for j := strings.LastIndexByte(v.Label, '-'); j > 0; j = strings.LastIndexByte(v.Label[:j], '-') {
		name := v.Name + "-" + v.Label[j+1:]
		if _, _, ok := r.Relational(name); ok {
			return ast.Variant{Name: name, Label: v.Label[:j]}, true
		}
	}
	return v, false
}

// Known returns true if a variant segment, as written in a class token,
// names something the composer can apply: a registered variant, a
// relational group/peer variant, or a bracketed arbitrary selector.
func (r *Registry) Known(segment string) bool {
	v := parser.ParseVariant(segment)
	if v.IsArbitrary() {
		return true
	}
	if _, ok := r.entries[v.Name]; ok && v.Label == "" {
		return true
	}
	_, ok := r.Canonical(v)
	return ok
}
