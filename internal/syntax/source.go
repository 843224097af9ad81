package syntax

import "unicode/utf8"

// source is a character reader over an in-memory string.
// It tracks only the byte offset; line and column are derived from the
// offset when an error is reported.
type source struct {
	buf string // source text

	// Current state
	ch   rune // current character, -1 for EOF
	bad  bool // ch came from an invalid UTF-8 sequence
	offs int  // byte offset of ch
	next int  // byte offset of the character after ch
}

// newSource creates a new source positioned at the first character of buf.
func newSource(buf string) *source {
	s := &source{buf: buf}
	s.nextch()
	return s
}

// nextch advances to the next character.
// Sets s.ch to -1 at EOF.
func (s *source) nextch() {
	s.offs = s.next
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.bad = false
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.bad = r == utf8.RuneError && width == 1
	s.next = s.offs + width
}

// eof reports whether the cursor is past the last character.
func (s *source) eof() bool {
	return s.ch < 0
}

// class returns the lexical class of the current character.
// Invalid UTF-8 and EOF are Other.
func (s *source) class() Class {
	if s.ch < 0 || s.bad {
		return Other
	}
	return Classify(s.ch)
}

// segment returns the text between offset start and the current character.
func (s *source) segment(start int) string {
	return s.buf[start:s.offs]
}
