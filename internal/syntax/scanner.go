package syntax

import "fmt"

// Scanner splits term-language source into tokens.
// Separator runs are returned as tokens of their own so that the parser
// can decide where they are allowed.
type Scanner struct {
	source // embedded character reader

	filename string

	// Current token info
	tok     Token  // token type
	lit     string // token text
	tokOffs int    // token start offset
	badRune rune   // offending character for _Illegal
	badUTF8 bool   // _Illegal token is an invalid UTF-8 byte
}

// NewScanner creates a new Scanner for src. The filename is only used
// to annotate positions.
func NewScanner(filename, src string) *Scanner {
	return &Scanner{
		source:   *newSource(src),
		filename: filename,
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	s.tokOffs = s.offs
	s.badUTF8 = false

	switch s.class() {
	case WordComponent:
		s.tok = _Word
		s.scanRun(WordComponent)
		return

	case Separator:
		s.tok = _Sep
		s.scanRun(Separator)
		return

	case Reserved:
		switch s.ch {
		case '(':
			s.tok = _Lparen
		case ')':
			s.tok = _Rparen
		case ';':
			s.tok = _Semi
		case '=':
			s.tok = _Equal
		}
		s.nextch()
		s.lit = s.segment(s.tokOffs)
		return
	}

	if s.eof() {
		s.tok = _EOF
		s.lit = ""
		return
	}

	s.tok = _Illegal
	s.badRune = s.ch
	s.badUTF8 = s.bad
	s.nextch()
	s.lit = s.segment(s.tokOffs)
}

// scanRun consumes the longest run of characters of class c.
func (s *Scanner) scanRun(c Class) {
	for s.class() == c {
		s.nextch()
	}
	s.lit = s.segment(s.tokOffs)
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's source text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Offset returns the byte offset at which the current token starts.
func (s *Scanner) Offset() int {
	return s.tokOffs
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return PosFor(s.filename, s.buf, s.tokOffs)
}

// Describe returns a human-readable description of the current token,
// as used in "unexpected ..." messages.
func (s *Scanner) Describe() string {
	switch s.tok {
	case _EOF:
		return "end of input"
	case _Sep:
		return "separator"
	case _Word:
		return fmt.Sprintf("word %q", s.lit)
	case _Illegal:
		if s.badUTF8 {
			return "invalid UTF-8 encoding"
		}
		return fmt.Sprintf("character %U", s.badRune)
	}
	return "'" + s.lit + "'"
}
