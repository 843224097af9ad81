// Package syntax implements lexical and syntactic analysis for the mlatu
// term-rewriting language: words, parenthesized quotes, and rewrite rules
// of the form "pattern = replacement ;".
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Terms are either words or quotes. Rules pair two term sequences. Terms and
// Rules are plain values without positions, so that parsing the same text
// twice yields values that compare equal.

// Node is the interface implemented by everything the parser returns.
type Node interface {
	aNode() // marker method to restrict implementations to this package
}

// Term is a Word or a Quote.
type Term interface {
	Node
	aTerm()
}

// ----------------------------------------------------------------------------
// Terms

// Word is a non-empty run of word-component characters.
type Word string

// Quote is a parenthesized sequence of zero or more terms.
type Quote []Term

func (Word) aNode()  {}
func (Word) aTerm()  {}
func (Quote) aNode() {}
func (Quote) aTerm() {}

// NewWord returns the word w. It does not validate w; use the parser to
// build words from text.
func NewWord(w string) Word { return Word(w) }

// NewQuote returns a quote holding terms.
func NewQuote(terms []Term) Quote { return Quote(terms) }

// ----------------------------------------------------------------------------
// Rules

// Rule represents a rewrite rule: Pattern = Replacement ;
// Either side may be empty.
type Rule struct {
	Pattern     []Term
	Replacement []Term
}

func (Rule) aNode() {}

// NewRule returns a rule rewriting pattern into replacement.
func NewRule(pattern, replacement []Term) Rule {
	return Rule{Pattern: pattern, Replacement: replacement}
}

// ----------------------------------------------------------------------------
// Sequences

// Terms is a top-level sequence of terms.
type Terms []Term

// Rules is a top-level sequence of rules.
type Rules []Rule

func (Terms) aNode() {}
func (Rules) aNode() {}

// ----------------------------------------------------------------------------
// Comparison

// Equal reports whether a and b are structurally equal.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Word:
		b, ok := b.(Word)
		return ok && a == b
	case Quote:
		b, ok := b.(Quote)
		return ok && termsEqual(a, b)
	}
	return a == nil && b == nil
}

// RuleEqual reports whether a and b have equal patterns and replacements.
func RuleEqual(a, b Rule) bool {
	return termsEqual(a.Pattern, b.Pattern) && termsEqual(a.Replacement, b.Replacement)
}

func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Depth returns the quote nesting depth of t: 0 for a word, 1 for a quote
// containing only words, and so on.
func Depth(t Term) int {
	q, ok := t.(Quote)
	if !ok {
		return 0
	}
	max := 0
	for _, c := range q {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}
