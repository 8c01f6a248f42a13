package tailcss_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benbjohnson/tailcss"
	"github.com/benbjohnson/tailcss/ast"
)

func decl(p, v string) *ast.Declaration { return &ast.Declaration{Property: p, Value: v} }

// Ensure than the printer prints rules compactly.
func TestPrinter_Print(t *testing.T) {
	var tests = []struct {
		in ast.Node
		s  string
	}{
		// 0. Plain rule.
		{in: &ast.Rule{Selector: ".p-4", Declarations: ast.Declarations{decl("padding", "1rem")}}, s: `.p-4{padding:1rem}`},

		// 1. Multiple declarations and !important.
		{in: &ast.Rule{Selector: ".\\!px-4", Declarations: ast.Declarations{
			{Property: "padding-left", Value: "1rem", Important: true},
			{Property: "padding-right", Value: "1rem", Important: true},
		}}, s: `.\!px-4{padding-left:1rem!important;padding-right:1rem!important}`},

		// 2. Consecutive rules share their at-rule block.
		{in: ast.Rules{
			{Selector: ".p-4", Declarations: ast.Declarations{decl("padding", "1rem")}},
			{Selector: ".md\\:p-4", AtRules: []string{"@media (min-width: 768px)"}, Declarations: ast.Declarations{decl("padding", "1rem")}},
			{Selector: ".md\\:m-2", AtRules: []string{"@media (min-width: 768px)"}, Declarations: ast.Declarations{decl("margin", "0.5rem")}},
		}, s: `.p-4{padding:1rem}@media (min-width: 768px){.md\:p-4{padding:1rem}.md\:m-2{margin:0.5rem}}`},

		// 3. Nested at-rules close only what isn't shared.
		{in: ast.Rules{
			{Selector: ".a", AtRules: []string{"@media print", "@media (min-width: 768px)"}, Declarations: ast.Declarations{decl("color", "red")}},
			{Selector: ".b", AtRules: []string{"@media print"}, Declarations: ast.Declarations{decl("color", "blue")}},
			{Selector: ".c", AtRules: []string{"@supports (display: grid)"}, Declarations: ast.Declarations{decl("display", "grid")}},
		}, s: `@media print{@media (min-width: 768px){.a{color:red}}.b{color:blue}}@supports (display: grid){.c{display:grid}}`},

		// 4. Declarations alone.
		{in: ast.Declarations{decl("display", "flex"), nil, decl("gap", "1rem")}, s: `display:flex;gap:1rem`},

		// 5. Class and variant print in canonical form.
		{in: &ast.Class{Raw: "p-4!", Utility: "p-4", IsImportant: true, Variants: []ast.Variant{{Name: "group-hover", Label: "nav"}}}, s: `!group-hover/nav:p-4`},

		// Test that nil values are safe to print.
		{in: (ast.Rules)(nil), s: ``},          // 6
		{in: (*ast.Rule)(nil), s: ``},          // 7
		{in: (ast.Declarations)(nil), s: ``},   // 8
		{in: (*ast.Declaration)(nil), s: ``},   // 9
		{in: (*ast.Class)(nil), s: ``},         // 10
		{in: ast.Rules{nil}, s: ``},            // 11
		{in: ast.Rules{{Selector: ".x"}}, s: `.x{}`}, // 12
	}

	for i, tt := range tests {
		var buf bytes.Buffer
		var p tailcss.Printer
		err := p.Print(&buf, tt.in)

		if err != nil {
			t.Errorf("%d. unexpected error: %s", i, err)
		} else if tt.s != buf.String() {
			t.Errorf("%d. \n\nexp: %s\n\ngot: %s\n\n", i, tt.s, buf.String())
		}
	}
}

// Ensure that indented output nests blocks.
func TestPrinter_Print_Indent(t *testing.T) {
	rules := ast.Rules{
		{Selector: ".p-4", Declarations: ast.Declarations{decl("padding", "1rem")}},
		{Selector: ".dark\\:md\\:p-4", AtRules: []string{"@media (prefers-color-scheme: dark)", "@media (min-width: 768px)"}, Declarations: ast.Declarations{
			{Property: "padding", Value: "1rem", Important: true},
		}},
	}

	exp := `.p-4 {
  padding: 1rem;
}
@media (prefers-color-scheme: dark) {
  @media (min-width: 768px) {
    .dark\:md\:p-4 {
      padding: 1rem !important;
    }
  }
}
`
	if s := tailcss.Format(rules); s != exp {
		t.Errorf("\n\nexp: %s\n\ngot: %s\n\n", exp, s)
	}
}

// Ensure that a write error is returned.
func TestPrinter_Print_WriteError(t *testing.T) {
	var p tailcss.Printer
	err := p.Print(errWriter{}, ast.Rules{{Selector: ".a", Declarations: ast.Declarations{decl("color", "red")}}})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("unexpected error: %v", err)
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }
