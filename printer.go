package tailcss

import (
	"bytes"
	"io"
	"strings"

	"github.com/benbjohnson/tailcss/ast"
)

// Printer represents a configurable CSS printer.
//
// With an empty Indent the output is compact: no whitespace between blocks
// and no semicolon after the last declaration of a block. Otherwise every
// block and declaration is written on its own line and nested blocks are
// indented by Indent.
type Printer struct {
	Indent string
}

// Print writes n as CSS text. Consecutive rules that share leading at-rules
// are written inside a single at-rule block.
func (p *Printer) Print(w io.Writer, n ast.Node) error {
	pw := &printWriter{w: w}

	switch n := n.(type) {
	case ast.Rules:
		p.printRules(pw, n)

	case *ast.Rule:
		if n == nil {
			return nil
		}
		p.printRules(pw, ast.Rules{n})

	case ast.Declarations:
		p.printDeclarations(pw, n, 0)

	case *ast.Declaration:
		if n == nil {
			return nil
		}
		p.printDeclaration(pw, n)

	case *ast.Class:
		if n == nil {
			return nil
		}
		pw.WriteString(n.String())

	case ast.Variant:
		pw.WriteString(n.String())
	}

	return pw.err
}

func (p *Printer) printRules(w *printWriter, a ast.Rules) {
	var open []string
	for _, r := range a {
		if r == nil {
			continue
		}

		// Close the blocks this rule doesn't share with the previous one.
		n := commonPrefix(open, r.AtRules)
		for len(open) > n {
			open = open[:len(open)-1]
			p.closeBlock(w, len(open))
		}
		for _, at := range r.AtRules[n:] {
			p.openBlock(w, at, len(open))
			open = append(open, at)
		}

		p.openBlock(w, r.Selector, len(open))
		p.printDeclarations(w, r.Declarations, len(open)+1)
		p.closeBlock(w, len(open))
	}

	for len(open) > 0 {
		open = open[:len(open)-1]
		p.closeBlock(w, len(open))
	}
}

func (p *Printer) openBlock(w *printWriter, prelude string, depth int) {
	if p.Indent == "" {
		w.WriteString(prelude)
		w.WriteString("{")
		return
	}
	w.WriteString(strings.Repeat(p.Indent, depth))
	w.WriteString(prelude)
	w.WriteString(" {\n")
}

func (p *Printer) closeBlock(w *printWriter, depth int) {
	if p.Indent == "" {
		w.WriteString("}")
		return
	}
	w.WriteString(strings.Repeat(p.Indent, depth))
	w.WriteString("}\n")
}

func (p *Printer) printDeclarations(w *printWriter, a ast.Declarations, depth int) {
	first := true
	for _, d := range a {
		if d == nil {
			continue
		}

		if p.Indent == "" {
			if !first {
				w.WriteString(";")
			}
			p.printDeclaration(w, d)
		} else {
			w.WriteString(strings.Repeat(p.Indent, depth))
			p.printDeclaration(w, d)
			w.WriteString(";\n")
		}
		first = false
	}
}

func (p *Printer) printDeclaration(w *printWriter, d *ast.Declaration) {
	w.WriteString(d.Property)
	if p.Indent == "" {
		w.WriteString(":")
		w.WriteString(d.Value)
		if d.Important {
			w.WriteString("!important")
		}
		return
	}

	w.WriteString(": ")
	w.WriteString(d.Value)
	if d.Important {
		w.WriteString(" !important")
	}
}

// commonPrefix returns the number of leading at-rules a and b share.
func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// printWriter keeps the first write error so the printer doesn't have to
// check every write.
type printWriter struct {
	w   io.Writer
	err error
}

func (pw *printWriter) WriteString(s string) {
	if pw.err != nil {
		return
	}
	_, pw.err = io.WriteString(pw.w, s)
}

// Format returns rules as indented CSS text.
func Format(rules ast.Rules) string {
	p := Printer{Indent: "  "}
	var buf bytes.Buffer
	_ = p.Print(&buf, rules)
	return buf.String()
}
