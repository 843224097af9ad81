package syntax

import (
	"fmt"
	"unicode/utf8"
)

// Pos represents a position in a source text.
// The zero value is an invalid position.
type Pos struct {
	Filename string // source name, may be empty
	Offset   int    // 0-based byte offset
	Line     int    // 1-based line number
	Col      int    // 1-based column number (characters, not bytes)
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if filename is empty.
func (p Pos) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// PosFor translates a byte offset in src into a Pos.
// Offsets past the end of src are clamped to len(src).
// Lines are terminated by '\n'; columns count characters.
func PosFor(filename, src string, offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}

	line, col := 1, 1
	for i := 0; i < offset; {
		if src[i] == '\n' {
			line++
			col = 1
			i++
			continue
		}
		_, w := utf8.DecodeRuneInString(src[i:])
		i += w
		col++
	}
	return Pos{Filename: filename, Offset: offset, Line: line, Col: col}
}

// LineAt returns the text of the line containing offset, without its
// terminating newline.
func LineAt(src string, offset int) string {
	if offset > len(src) {
		offset = len(src)
	}
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[start:end]
}
