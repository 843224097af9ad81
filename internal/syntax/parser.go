package syntax

import "fmt"

// parser performs syntax analysis over the token stream of one input.
// A parser is used for a single call and then discarded.
type parser struct {
	scanner *Scanner
	src     string

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	offs int

	// Alternatives tried at offs without success. Reset whenever the
	// parser moves past offs.
	expected []Token
}

func newParser(filename, src string) *parser {
	p := &parser{
		scanner: NewScanner(filename, src),
		src:     src,
	}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.offs = p.scanner.Offset()
	p.expected = p.expected[:0]
}

// expect records toks as alternatives tried at the current position.
func (p *parser) expect(toks ...Token) {
	for _, tok := range toks {
		if !containsToken(p.expected, tok) {
			p.expected = append(p.expected, tok)
		}
	}
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true. Otherwise tok is
// recorded as expected at the current position.
func (p *parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	p.expect(tok)
	return false
}

// want is like got but returns a syntax error on mismatch.
func (p *parser) want(tok Token) error {
	if !p.got(tok) {
		return p.syntaxError()
	}
	return nil
}

// skipSep consumes an optional separator run.
// A missing separator is never reported as expected.
func (p *parser) skipSep() {
	if p.tok == _Sep {
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError returns the error for the current position.
func (p *parser) syntaxError() *SyntaxError {
	expected := make([]string, len(p.expected))
	for i, tok := range p.expected {
		expected[i] = tok.expectation()
	}
	return &SyntaxError{
		Pos:      PosFor(p.scanner.filename, p.src, p.offs),
		Found:    p.scanner.Describe(),
		Expected: expected,
	}
}

// ----------------------------------------------------------------------------
// Terms

// term parses: term := WORD | '(' terms ')'
func (p *parser) term() (Term, error) {
	t, ok, err := p.maybeTerm()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.syntaxError()
	}
	return t, nil
}

// maybeTerm parses a term if one starts at the current token.
// It reports ok == false, without consuming anything, when neither a word
// nor '(' is present.
func (p *parser) maybeTerm() (t Term, ok bool, err error) {
	switch p.tok {
	case _Word:
		w := Word(p.lit)
		p.next()
		return w, true, nil

	case _Lparen:
		p.next()
		list, err := p.terms()
		if err != nil {
			return nil, false, err
		}
		if err := p.want(_Rparen); err != nil {
			return nil, false, err
		}
		return Quote(list), true, nil
	}

	p.expect(_Word, _Lparen)
	return nil, false, nil
}

// terms parses: terms := SEP? (term SEP?)*
// The result is never nil.
func (p *parser) terms() ([]Term, error) {
	list := []Term{}
	p.skipSep()
	for {
		t, ok, err := p.maybeTerm()
		if err != nil {
			return nil, err
		}
		if !ok {
			return list, nil
		}
		list = append(list, t)
		p.skipSep()
	}
}

// ----------------------------------------------------------------------------
// Rules

// rule parses: rule := terms '=' terms ';'
func (p *parser) rule() (Rule, error) {
	r, ok, err := p.maybeRule()
	if err != nil {
		return Rule{}, err
	}
	if !ok {
		return Rule{}, p.syntaxError()
	}
	return r, nil
}

// maybeRule parses a rule if one starts at the current token. A rule has
// started once its pattern consumed input or '=' is present.
func (p *parser) maybeRule() (r Rule, ok bool, err error) {
	start := p.offs
	pattern, err := p.terms()
	if err != nil {
		return Rule{}, false, err
	}
	if !p.got(_Equal) {
		if p.offs == start {
			return Rule{}, false, nil
		}
		return Rule{}, false, p.syntaxError()
	}
	replacement, err := p.terms()
	if err != nil {
		return Rule{}, false, err
	}
	if err := p.want(_Semi); err != nil {
		return Rule{}, false, err
	}
	return NewRule(pattern, replacement), true, nil
}

// rules parses: rules := SEP? (rule SEP?)*
// The result is never nil.
func (p *parser) rules() ([]Rule, error) {
	list := []Rule{}
	p.skipSep()
	for {
		r, ok, err := p.maybeRule()
		if err != nil {
			return nil, err
		}
		if !ok {
			return list, nil
		}
		list = append(list, r)
		p.skipSep()
	}
}

// eof requires that the whole input has been consumed.
func (p *parser) eof() error {
	return p.want(_EOF)
}

// ----------------------------------------------------------------------------
// Parsing entry points
//
// Each entry point parses the entire input: anything left over after the
// grammar rule is reported as "expected end of input". On failure the
// returned error is a *SyntaxError and no partial result is returned.

// ParseTerm parses src as exactly one term.
func ParseTerm(src string) (Term, error) {
	return parseTerm(newParser("", src))
}

// ParseTerms parses src as a sequence of terms.
func ParseTerms(src string) ([]Term, error) {
	return parseTerms(newParser("", src))
}

// ParseRule parses src as exactly one rule.
func ParseRule(src string) (Rule, error) {
	return parseRule(newParser("", src))
}

// ParseRules parses src as a sequence of rules.
func ParseRules(src string) ([]Rule, error) {
	return parseRules(newParser("", src))
}

func parseTerm(p *parser) (Term, error) {
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if err := p.eof(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseTerms(p *parser) ([]Term, error) {
	list, err := p.terms()
	if err != nil {
		return nil, err
	}
	if err := p.eof(); err != nil {
		return nil, err
	}
	return list, nil
}

func parseRule(p *parser) (Rule, error) {
	r, err := p.rule()
	if err != nil {
		return Rule{}, err
	}
	if err := p.eof(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func parseRules(p *parser) ([]Rule, error) {
	list, err := p.rules()
	if err != nil {
		return nil, err
	}
	if err := p.eof(); err != nil {
		return nil, err
	}
	return list, nil
}

// ----------------------------------------------------------------------------
// Modes

// Mode selects which grammar rule Parse applies to the whole input.
type Mode uint8

const (
	TermMode  Mode = iota // exactly one term
	TermsMode             // a sequence of terms
	RuleMode              // exactly one rule
	RulesMode             // a sequence of rules
)

var modeNames = [...]string{
	TermMode:  "term",
	TermsMode: "terms",
	RuleMode:  "rule",
	RulesMode: "rules",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode named s ("term", "terms", "rule" or "rules").
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown parse mode %q (want term, terms, rule or rules)", s)
}

// Parse parses src according to mode. Error positions carry filename.
// The result is a Term, Terms, Rule or Rules respectively.
func Parse(mode Mode, filename, src string) (Node, error) {
	p := newParser(filename, src)
	switch mode {
	case TermMode:
		return parseTerm(p)
	case TermsMode:
		list, err := parseTerms(p)
		if err != nil {
			return nil, err
		}
		return Terms(list), nil
	case RuleMode:
		r, err := parseRule(p)
		if err != nil {
			return nil, err
		}
		return r, nil
	case RulesMode:
		list, err := parseRules(p)
		if err != nil {
			return nil, err
		}
		return Rules(list), nil
	}
	return nil, fmt.Errorf("unknown parse mode %v", mode)
}

func containsToken(list []Token, tok Token) bool {
	for _, t := range list {
		if t == tok {
			return true
		}
	}
	return false
}
