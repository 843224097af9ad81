package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF     Token = iota // end of input
	_Illegal              // character that is neither word component, separator nor reserved

	_Sep  // run of separators
	_Word // run of word components

	// Reserved characters
	_Lparen // (
	_Rparen // )
	_Semi   // ;
	_Equal  // =

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:     "EOF",
	_Illegal: "ILLEGAL",
	_Sep:     "SEP",
	_Word:    "WORD",
	_Lparen:  "(",
	_Rparen:  ")",
	_Semi:    ";",
	_Equal:   "=",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// expectation returns how the token is named in an "expected ..." list.
func (t Token) expectation() string {
	switch t {
	case _EOF:
		return "end of input"
	case _Sep:
		return "separator"
	case _Word:
		return "word"
	case _Lparen, _Rparen, _Semi, _Equal:
		return "'" + tokenNames[t] + "'"
	}
	return t.String()
}

// IsReserved reports whether t is one of the reserved-character tokens.
func (t Token) IsReserved() bool {
	return t >= _Lparen && t <= _Equal
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsIllegal reports whether t marks a character the language does not allow.
func (t Token) IsIllegal() bool {
	return t == _Illegal
}
