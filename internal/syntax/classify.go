package syntax

import (
	"fmt"
	"unicode"
)

// Class is the lexical class of a single character.
type Class uint8

const (
	Other         Class = iota // control, mark, format, unassigned
	WordComponent              // letter, number, punctuation or symbol
	Separator                  // Unicode separator (Zs, Zl, Zp)
	Reserved                   // one of ( ) ; =
)

var classNames = [...]string{
	Other:         "other",
	WordComponent: "word component",
	Separator:     "separator",
	Reserved:      "reserved",
}

// String returns the name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// wordTables are the general category groups a word may be built from.
var wordTables = []*unicode.RangeTable{
	unicode.Letter,
	unicode.Number,
	unicode.Punct,
	unicode.Symbol,
}

// IsReserved reports whether r is one of the structural characters ( ) ; =.
func IsReserved(r rune) bool {
	switch r {
	case '(', ')', ';', '=':
		return true
	}
	return false
}

// IsWordComponent reports whether r may appear inside a word.
func IsWordComponent(r rune) bool {
	return !IsReserved(r) && unicode.In(r, wordTables...)
}

// IsSeparator reports whether r belongs to the Unicode separator category.
// Note that '\t' and '\n' are control characters, not separators.
func IsSeparator(r rune) bool {
	return unicode.In(r, unicode.Z)
}

// Classify returns the lexical class of r. It is total: every rune,
// including negative values and unassigned code points, has a class.
func Classify(r rune) Class {
	switch {
	case IsReserved(r):
		return Reserved
	case IsWordComponent(r):
		return WordComponent
	case IsSeparator(r):
		return Separator
	}
	return Other
}
