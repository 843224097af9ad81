package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree representation of node to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case Word:
		p.printf("Word %q\n", string(n))

	case Quote:
		p.printf("Quote\n")
		p.indent++
		for _, t := range n {
			p.print(t)
		}
		p.indent--

	case Terms:
		p.printf("Terms\n")
		p.indent++
		for _, t := range n {
			p.print(t)
		}
		p.indent--

	case Rule:
		p.printf("Rule\n")
		p.indent++
		p.printf("Pattern:\n")
		p.indent++
		for _, t := range n.Pattern {
			p.print(t)
		}
		p.indent--
		p.printf("Replacement:\n")
		p.indent++
		for _, t := range n.Replacement {
			p.print(t)
		}
		p.indent--
		p.indent--

	case Rules:
		p.printf("Rules\n")
		p.indent++
		for _, r := range n {
			p.print(r)
		}
		p.indent--

	default:
		p.printf("%T\n", node)
	}
}

// ----------------------------------------------------------------------------
// Canonical form
//
// The canonical form separates terms and rules with a single space and
// writes quotes as "(" terms ")". Parsing the canonical form of a node with
// the matching mode yields a node equal to the original.

// Format returns the canonical source text of node.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// String returns the canonical source text of the word.
func (w Word) String() string { return string(w) }

// String returns the canonical source text of the quote.
func (q Quote) String() string { return Format(q) }

// String returns the canonical source text of the rule.
func (r Rule) String() string { return Format(r) }

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case Word:
		b.WriteString(string(n))
	case Quote:
		b.WriteByte('(')
		writeTerms(b, n)
		b.WriteByte(')')
	case Terms:
		writeTerms(b, n)
	case Rule:
		if len(n.Pattern) > 0 {
			writeTerms(b, n.Pattern)
			b.WriteByte(' ')
		}
		b.WriteByte('=')
		if len(n.Replacement) > 0 {
			b.WriteByte(' ')
			writeTerms(b, n.Replacement)
		}
		b.WriteString(" ;")
	case Rules:
		for i, r := range n {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, r)
		}
	}
}

func writeTerms(b *strings.Builder, terms []Term) {
	for i, t := range terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(b, t)
	}
}
