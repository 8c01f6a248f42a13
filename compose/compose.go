// Package compose builds CSS rules from parsed classes.
//
// The class name is escaped into a class selector and then every variant in
// the chain is applied in the order written. Pseudo-classes, state and
// attribute variants are appended to the compound selector, pseudo-elements
// are appended after everything else, relational variants add an ancestor or
// sibling combinator in front, and at-rule variants wrap the whole rule.
package compose

import (
	"sort"
	"strings"

	"github.com/benbjohnson/tailcss/ast"
	"github.com/benbjohnson/tailcss/variant"
)

// Composer turns a class and its resolved declarations into a rule.
type Composer struct {
	registry *variant.Registry
}

// New returns a composer that looks variants up in registry.
func New(registry *variant.Registry) *Composer {
	return &Composer{registry: registry}
}

// atRule is an at-rule wrapper and the registry order that sorts it.
type atRule struct {
	text  string
	order uint32
}

// Compose builds the rule for class with the given declarations. The
// declarations are copied. Returns false if the chain contains a variant
// the registry does not know, in which case the class is not generated.
func (c *Composer) Compose(class *ast.Class, decls ast.Declarations) (*ast.Rule, bool) {
	compound := "." + Escape(class.Name())
	var prefix, elements string
	var atRules []atRule
	var order ast.Order

	for _, v := range class.Variants {
		if v.IsArbitrary() {
			if text := arbitrary(v.Name); strings.HasPrefix(text, "@") {
				atRules = append(atRules, atRule{text: text})
			} else {
				compound = strings.Replace(text, "&", compound, -1)
			}
			continue
		}

		if e, ok := c.registry.Get(v.Name); ok && v.Label == "" {
			switch {
			case e.Kind.IsAtRule():
				atRules = append(atRules, atRule{text: e.Selector, order: e.Order})
			case e.Kind == variant.PseudoElement:
				elements += e.Selector
			default:
				compound += e.Selector
			}
			order = order.Add(e.Order)
			continue
		}

		named, ok := c.registry.Canonical(v)
		if !ok {
			return nil, false
		}
		rel, e, _ := c.registry.Relational(named.Name)
		marker := "." + relationNames[rel]
		if named.Label != "" {
			marker += "\\/" + Escape(named.Label)
		}
		switch rel {
		case variant.Group:
			prefix += marker + e.Selector + " "
		case variant.Peer:
			prefix += marker + e.Selector + " ~ "
		}
		order = order.Add(e.Order)
	}

	// Nested at-rules go outermost first by ascending order.
	sort.SliceStable(atRules, func(i, j int) bool { return atRules[i].order < atRules[j].order })

	r := &ast.Rule{
		Selector: prefix + compound + elements,
		Order:    order,
	}
	for _, at := range atRules {
		r.AtRules = append(r.AtRules, at.text)
	}
	for _, d := range decls {
		cp := *d
		if class.IsImportant {
			cp.Important = true
		}
		r.Declarations = append(r.Declarations, &cp)
	}
	return r, true
}

var relationNames = map[variant.Relation]string{
	variant.Group: "group",
	variant.Peer:  "peer",
}

// arbitrary unwraps an arbitrary variant such as "[&_p]" into selector text.
// Underscores become spaces and a selector without "&" is appended to the
// class.
func arbitrary(name string) string {
	text := strings.Replace(name[1:len(name)-1], "_", " ", -1)
	if !strings.HasPrefix(text, "@") && !strings.Contains(text, "&") {
		text = "&" + text
	}
	return text
}
