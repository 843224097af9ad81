package syntax

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// Test helpers

func w(s string) Word { return Word(s) }

func q(terms ...Term) Quote {
	if terms == nil {
		terms = []Term{}
	}
	return Quote(terms)
}

func seq(terms ...Term) []Term {
	if terms == nil {
		terms = []Term{}
	}
	return terms
}

// syntaxError asserts that err is a *SyntaxError and returns it.
func syntaxError(t *testing.T, err error) *SyntaxError {
	t.Helper()
	require.Error(t, err)
	var se *SyntaxError
	require.True(t, errors.As(err, &se), "error %v is %T, want *SyntaxError", err, err)
	return se
}

// ----------------------------------------------------------------------------
// Terms

func TestParseTerm(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Term
	}{
		{"word", "abc", w("abc")},
		{"quote", "(abc def)", q(w("abc"), w("def"))},
		{"nested", "(a (b) c)", q(w("a"), q(w("b")), w("c"))},
		{"empty_quote", "()", q()},
		{"empty_quote_with_space", "( )", q()},
		{"padded_quote", "(  a  )", q(w("a"))},
		{"adjacent_quotes", "((a)(b))", q(q(w("a")), q(w("b")))},
		{"word_then_quote", "(a(b))", q(w("a"), q(w("b")))},
		{"deep", "(((x)))", q(q(q(w("x"))))},
		{"symbols", "+", w("+")},
		{"unicode", "\u03bb\u2192\u4e2d", w("\u03bb\u2192\u4e2d")},
		{"unicode_separators", "(a\u3000b\u2028c)", q(w("a"), w("b"), w("c"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerm(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Term
	}{
		{"empty", "", seq()},
		{"spaces", "   ", seq()},
		{"unicode_spaces", "\u3000\u00a0 \u2029", seq()},
		{"one", "a", seq(w("a"))},
		{"padded", "  a  b  ", seq(w("a"), w("b"))},
		{"no_separator_before_quote", "a(b)c", seq(w("a"), q(w("b")), w("c"))},
		{"mixed", "dup (x) swap", seq(w("dup"), q(w("x")), w("swap"))},
		{"empty_quotes", "() ()", seq(q(), q())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerms(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTermsNeverNil(t *testing.T) {
	got, err := ParseTerms("")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 10000
	src := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	got, err := ParseTerm(src)
	require.NoError(t, err)
	assert.Equal(t, depth, Depth(got))
	assert.Equal(t, []Word{"x"}, Words(got))
}

// ----------------------------------------------------------------------------
// Rules

func TestParseRule(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Rule
	}{
		{"simple", "a = b ;", NewRule(seq(w("a")), seq(w("b")))},
		{"tight", "a=b;", NewRule(seq(w("a")), seq(w("b")))},
		{"padded", "  a  =  b  ;", NewRule(seq(w("a")), seq(w("b")))},
		{"empty_pattern", "= b ;", NewRule(seq(), seq(w("b")))},
		{"empty_replacement", "a = ;", NewRule(seq(w("a")), seq())},
		{"empty_both", "=;", NewRule(seq(), seq())},
		{"quotes", "(x) (y) swap = (y) (x);", NewRule(
			seq(q(w("x")), q(w("y")), w("swap")),
			seq(q(w("y")), q(w("x"))),
		)},
		{"symbols", "1 1 + = 2 ;", NewRule(seq(w("1"), w("1"), w("+")), seq(w("2")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRule(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, RuleEqual(tt.want, got))
		})
	}
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Rule
	}{
		{"empty", "", []Rule{}},
		{"spaces", "  ", []Rule{}},
		{"one", "a = b ;", []Rule{NewRule(seq(w("a")), seq(w("b")))}},
		{"two", "a = b ; c = d ;", []Rule{
			NewRule(seq(w("a")), seq(w("b"))),
			NewRule(seq(w("c")), seq(w("d"))),
		}},
		{"tight", "a=b;c=d;", []Rule{
			NewRule(seq(w("a")), seq(w("b"))),
			NewRule(seq(w("c")), seq(w("d"))),
		}},
		{"padded", "  =;  =;  ", []Rule{
			NewRule(seq(), seq()),
			NewRule(seq(), seq()),
		}},
		{"paragraph_separated", "a = b ;\u2029c = d ;", []Rule{
			NewRule(seq(w("a")), seq(w("b"))),
			NewRule(seq(w("c")), seq(w("d"))),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRules(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		parse    func(string) error
		src      string
		offset   int
		line     int
		col      int
		found    string
		expected []string
	}{
		{
			name: "unterminated_quote", parse: termErr, src: "(a",
			offset: 2, line: 1, col: 3,
			found: "end of input", expected: []string{"word", "'('", "')'"},
		},
		{
			name: "trailing_rparen", parse: termErr, src: "a)",
			offset: 1, line: 1, col: 2,
			found: "')'", expected: []string{"end of input"},
		},
		{
			name: "missing_semicolon", parse: ruleErr, src: "a = b",
			offset: 5, line: 1, col: 6,
			found: "end of input", expected: []string{"word", "'('", "';'"},
		},
		{
			name: "missing_equal", parse: ruleErr, src: "a b ;",
			offset: 4, line: 1, col: 5,
			found: "';'", expected: []string{"word", "'('", "'='"},
		},
		{
			name: "bare_equal", parse: termErr, src: "=",
			offset: 0, line: 1, col: 1,
			found: "'='", expected: []string{"word", "'('"},
		},
		{
			name: "bare_semicolon", parse: termErr, src: ";",
			offset: 0, line: 1, col: 1,
			found: "';'", expected: []string{"word", "'('"},
		},
		{
			name: "empty_term", parse: termErr, src: "",
			offset: 0, line: 1, col: 1,
			found: "end of input", expected: []string{"word", "'('"},
		},
		{
			name: "leading_separator_term", parse: termErr, src: " a",
			offset: 0, line: 1, col: 1,
			found: "separator", expected: []string{"word", "'('"},
		},
		{
			name: "trailing_separator_term", parse: termErr, src: "a ",
			offset: 1, line: 1, col: 2,
			found: "separator", expected: []string{"end of input"},
		},
		{
			name: "stray_rparen_in_terms", parse: termsErr, src: "a)",
			offset: 1, line: 1, col: 2,
			found: "')'", expected: []string{"word", "'('", "end of input"},
		},
		{
			name: "tab_in_terms", parse: termsErr, src: "a\tb",
			offset: 1, line: 1, col: 2,
			found: "character U+0009", expected: []string{"word", "'('", "end of input"},
		},
		{
			name: "newline_in_terms", parse: termsErr, src: "a\nb",
			offset: 1, line: 1, col: 2,
			found: "character U+000A", expected: []string{"word", "'('", "end of input"},
		},
		{
			name: "combining_mark", parse: termsErr, src: "e\u0301",
			offset: 1, line: 1, col: 2,
			found: "character U+0301", expected: []string{"word", "'('", "end of input"},
		},
		{
			name: "invalid_utf8", parse: termsErr, src: "x \xff",
			offset: 2, line: 1, col: 3,
			found: "invalid UTF-8 encoding", expected: []string{"word", "'('", "end of input"},
		},
		{
			name: "unterminated_after_multibyte", parse: termErr, src: "(中 文",
			offset: 8, line: 1, col: 5,
			found: "end of input", expected: []string{"word", "'('", "')'"},
		},
		{
			name: "unterminated_in_rule", parse: ruleErr, src: "(a = b ;",
			offset: 3, line: 1, col: 4,
			found: "'='", expected: []string{"word", "'('", "')'"},
		},
		{
			name: "stray_rparen_after_rules", parse: rulesErr, src: "a = b ; )",
			offset: 8, line: 1, col: 9,
			found: "')'", expected: []string{"word", "'('", "'='", "end of input"},
		},
		{
			name: "incomplete_second_rule", parse: rulesErr, src: "a = b ; c",
			offset: 9, line: 1, col: 10,
			found: "end of input", expected: []string{"word", "'('", "'='"},
		},
		{
			name: "double_equal", parse: ruleErr, src: "a = b = c ;",
			offset: 6, line: 1, col: 7,
			found: "'='", expected: []string{"word", "'('", "';'"},
		},
		{
			name: "trailing_after_rule", parse: ruleErr, src: "a = b ; c",
			offset: 7, line: 1, col: 8,
			found: "separator", expected: []string{"end of input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := syntaxError(t, tt.parse(tt.src))
			assert.Equal(t, tt.offset, se.Pos.Offset, "offset")
			assert.Equal(t, tt.line, se.Pos.Line, "line")
			assert.Equal(t, tt.col, se.Pos.Col, "col")
			assert.Equal(t, tt.found, se.Found)
			assert.Equal(t, tt.expected, se.Expected)
		})
	}
}

func termErr(src string) error {
	_, err := ParseTerm(src)
	return err
}

func termsErr(src string) error {
	_, err := ParseTerms(src)
	return err
}

func ruleErr(src string) error {
	_, err := ParseRule(src)
	return err
}

func rulesErr(src string) error {
	_, err := ParseRules(src)
	return err
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := ParseTerm("(a")
	require.Error(t, err)
	assert.Equal(t, "1:3: unexpected end of input, expected word, '(' or ')'", err.Error())

	_, err = ParseTerm("a)")
	require.Error(t, err)
	assert.Equal(t, "1:2: unexpected ')', expected end of input", err.Error())

	_, err = ParseRule("a = b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "';'")
}

func TestParseFailureReturnsNoPartialResult(t *testing.T) {
	term, err := ParseTerm("(a b")
	assert.Error(t, err)
	assert.Nil(t, term)

	terms, err := ParseTerms("a b )")
	assert.Error(t, err)
	assert.Nil(t, terms)

	rules, err := ParseRules("a = b ; c = d")
	assert.Error(t, err)
	assert.Nil(t, rules)
}

// ----------------------------------------------------------------------------
// Modes

func TestParseMode(t *testing.T) {
	for _, name := range []string{"term", "terms", "rule", "rules"} {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := ParseMode("sentence")
	assert.Error(t, err)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestParseWithMode(t *testing.T) {
	tests := []struct {
		mode Mode
		src  string
		want Node
	}{
		{TermMode, "(a)", q(w("a"))},
		{TermsMode, "a b", Terms{w("a"), w("b")}},
		{RuleMode, "a = b ;", NewRule(seq(w("a")), seq(w("b")))},
		{RulesMode, "a = ; = b ;", Rules{NewRule(seq(w("a")), seq()), NewRule(seq(), seq(w("b")))}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := Parse(tt.mode, "in.mlatu", tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorCarriesFilename(t *testing.T) {
	_, err := Parse(RuleMode, "in.mlatu", "a = b")
	se := syntaxError(t, err)
	assert.Equal(t, "in.mlatu", se.Pos.Filename)
	assert.Equal(t, "in.mlatu:1:6: unexpected end of input, expected word, '(' or ';'", err.Error())
}

func TestParseUnknownMode(t *testing.T) {
	_, err := Parse(Mode(42), "", "a")
	require.Error(t, err)
	var se *SyntaxError
	assert.False(t, errors.As(err, &se))
}

// ----------------------------------------------------------------------------
// Purity

func TestParseIsPure(t *testing.T) {
	src := "(x) dup = (x) (x) ; (a (b)) = ;"
	first, err := ParseRules(src)
	require.NoError(t, err)
	second, err := ParseRules(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "(x) dup = (x) (x) ; (a (b)) = ;", src)
}

func TestParseConcurrent(t *testing.T) {
	srcs := []string{"a = b ;", "(x) = ;", "1 1 + = 2 ; 2 2 + = 4 ;", "(((deep))) = ;"}
	want := make([][]Rule, len(srcs))
	for i, src := range srcs {
		r, err := ParseRules(src)
		require.NoError(t, err)
		want[i] = r
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				k := (g + i) % len(srcs)
				got, err := ParseRules(srcs[k])
				if err != nil {
					errs <- err
					return
				}
				if len(got) != len(want[k]) {
					errs <- errors.New("rule count mismatch for " + srcs[k])
					return
				}
				for j := range got {
					if !RuleEqual(got[j], want[k][j]) {
						errs <- errors.New("rule mismatch for " + srcs[k])
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
