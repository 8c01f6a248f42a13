package ast

import (
	"bytes"
	"sort"
	"strings"
)

// Node represents a node in the generated rule model.
type Node interface {
	node()
	String() string
}

func (_ *Class) node()       {}
func (_ Variant) node()      {}
func (_ Rules) node()        {}
func (_ *Rule) node()        {}
func (_ Declarations) node() {}
func (_ *Declaration) node() {}

// Class represents a single parsed utility class token.
//
// A Class only lives while one token is being processed. It is built by the
// parser, handed to the composer together with its resolved declarations and
// then discarded.
type Class struct {
	// Raw is the canonical token that was parsed.
	Raw string

	// Source is the grouped token that Raw was expanded from, if any.
	// Selectors are built from Source when it is set so that the generated
	// rule matches the class attribute actually written in markup.
	Source string

	// Variants in the order they were written, left to right.
	Variants []Variant

	// Utility is the base utility with any arbitrary payload removed.
	// It is never empty.
	Utility string

	// IsArbitrary is set when Utility carried a [...] payload.
	// ArbitraryValue holds the unwrapped payload and is empty for "[]".
	IsArbitrary    bool
	ArbitraryValue string

	// IsImportant is set by a single leading or trailing "!".
	IsImportant bool

	// Warning records a recoverable problem, such as an unbalanced bracket
	// that was kept as literal utility text.
	Warning error
}

// Name returns the class name used for selectors.
func (c *Class) Name() string {
	if c.Source != "" {
		return c.Source
	}
	return c.Raw
}

// Arbitrary returns the arbitrary payload, or nil if there is none.
func (c *Class) Arbitrary() *string {
	if !c.IsArbitrary || c.ArbitraryValue == "" {
		return nil
	}
	v := c.ArbitraryValue
	return &v
}

// String reassembles the class. Variants are written as parsed and "!" is
// always leading.
func (c *Class) String() string {
	var buf bytes.Buffer
	if c.IsImportant {
		buf.WriteByte('!')
	}
	for _, v := range c.Variants {
		buf.WriteString(v.String())
		buf.WriteByte(':')
	}
	buf.WriteString(c.Utility)
	if c.IsArbitrary {
		buf.WriteString("[" + c.ArbitraryValue + "]")
	}
	return buf.String()
}

// Variant represents one modifier in a class's variant chain.
type Variant struct {
	// Name is the variant identifier, e.g. "hover" or "group-hover".
	Name string

	// Label is the text after "/" in a named group or peer variant, e.g.
	// "sidebar" in "group-hover/sidebar". In the "group/sidebar-hover" form
	// it still carries the sub-variant until the registry splits it off.
	Label string
}

func (v Variant) String() string {
	if v.Label != "" {
		return v.Name + "/" + v.Label
	}
	return v.Name
}

// IsArbitrary returns true if the variant is a bracketed selector, e.g. "[&>*]".
func (v Variant) IsArbitrary() bool {
	return strings.HasPrefix(v.Name, "[") && strings.HasSuffix(v.Name, "]")
}

// Declaration represents a property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d *Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Declarations is an ordered list of declarations with unique properties.
type Declarations []*Declaration

// Get returns the declaration for a property, if present.
func (a Declarations) Get(property string) *Declaration {
	for _, d := range a {
		if d.Property == property {
			return d
		}
	}
	return nil
}

// Set adds a declaration. An existing declaration for the same property keeps
// its position and takes the new value.
func (a Declarations) Set(d *Declaration) Declarations {
	if existing := a.Get(d.Property); existing != nil {
		existing.Value, existing.Important = d.Value, d.Important
		return a
	}
	cp := *d
	return append(a, &cp)
}

// Merge sets every declaration from other, in order.
func (a Declarations) Merge(other Declarations) Declarations {
	for _, d := range other {
		a = a.Set(d)
	}
	return a
}

// Clone returns a deep copy of the list.
func (a Declarations) Clone() Declarations {
	if a == nil {
		return nil
	}
	other := make(Declarations, len(a))
	for i, d := range a {
		cp := *d
		other[i] = &cp
	}
	return other
}

func (a Declarations) String() string {
	var buf bytes.Buffer
	for i, d := range a {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(d.String() + ";")
	}
	return buf.String()
}

// Order is the cascade sort key of a rule. Max is the largest registry order
// in the rule's variant chain and Sum is the total of all of them.
type Order struct {
	Max uint32
	Sum uint32
}

// Add folds one variant order into the key.
func (o Order) Add(n uint32) Order {
	if n > o.Max {
		o.Max = n
	}
	o.Sum += n
	return o
}

// Less returns true if o sorts before other.
func (o Order) Less(other Order) bool {
	if o.Max != other.Max {
		return o.Max < other.Max
	}
	return o.Sum < other.Sum
}

// Rule represents a selector, its wrapping at-rules and its declarations.
type Rule struct {
	// Selector is the full, escaped selector.
	Selector string

	// AtRules wrap the rule, outermost first, e.g. "@media (min-width: 768px)".
	AtRules []string

	Declarations Declarations

	// Order is the cascade sort key and Seq is the position of the first
	// class that contributed to the rule.
	Order Order
	Seq   int
}

// Key returns the identity used to merge rules: the at-rule chain plus the
// selector.
func (r *Rule) Key() string {
	if len(r.AtRules) == 0 {
		return r.Selector
	}
	return strings.Join(r.AtRules, "{") + "{" + r.Selector
}

// Clone returns a deep copy of the rule.
func (r *Rule) Clone() *Rule {
	other := *r
	other.AtRules = append([]string(nil), r.AtRules...)
	other.Declarations = r.Declarations.Clone()
	return &other
}

func (r *Rule) String() string {
	var buf bytes.Buffer
	for _, at := range r.AtRules {
		buf.WriteString(at + " { ")
	}
	buf.WriteString(r.Selector + " { " + r.Declarations.String() + " }")
	for range r.AtRules {
		buf.WriteString(" }")
	}
	return buf.String()
}

// Rules represents a list of rules.
type Rules []*Rule

func (a Rules) String() string {
	var buf bytes.Buffer
	for _, r := range a {
		buf.WriteString(r.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// RuleSet collects rules, merging rules that share a key.
// A RuleSet is not safe for concurrent use; build one per goroutine and
// combine them with Merge.
type RuleSet struct {
	rules []*Rule
	index map[string]*Rule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]*Rule)}
}

// Len returns the number of distinct rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Insert adds a copy of r to the set. If a rule with the same key exists, r's
// declarations are merged into it (last write wins per property) and the
// earlier sequence number is kept. Returns the stored rule.
func (s *RuleSet) Insert(r *Rule) *Rule {
	key := r.Key()
	if existing, ok := s.index[key]; ok {
		existing.Declarations = existing.Declarations.Merge(r.Declarations)
		if r.Seq < existing.Seq {
			existing.Seq = r.Seq
		}
		return existing
	}

	cp := r.Clone()
	s.rules = append(s.rules, cp)
	s.index[key] = cp
	return cp
}

// Merge inserts every rule of other, in other's insertion order.
func (s *RuleSet) Merge(other *RuleSet) {
	for _, r := range other.rules {
		s.Insert(r)
	}
}

// Rules returns the rules in cascade order: ascending Order, then ascending
// Seq, then insertion order.
func (s *RuleSet) Rules() Rules {
	a := make(Rules, len(s.rules))
	copy(a, s.rules)
	sort.SliceStable(a, func(i, j int) bool {
		if a[i].Order != a[j].Order {
			return a[i].Order.Less(a[j].Order)
		}
		return a[i].Seq < a[j].Seq
	})
	return a
}

func (s *RuleSet) String() string {
	return s.Rules().String()
}
