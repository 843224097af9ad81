package syntax

import "strings"

// SyntaxError represents a syntax error. Parsing stops at the first one.
type SyntaxError struct {
	Pos      Pos      // position of the offending character
	Found    string   // description of what was found at Pos
	Expected []string // alternatives that would have been accepted at Pos
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg()
}

// Msg returns the error message without the position prefix.
func (e *SyntaxError) Msg() string {
	var b strings.Builder
	b.WriteString("unexpected ")
	b.WriteString(e.Found)
	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		b.WriteString(joinAlternatives(e.Expected))
	}
	return b.String()
}

// joinAlternatives joins items as "a", "a or b", "a, b or c".
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
