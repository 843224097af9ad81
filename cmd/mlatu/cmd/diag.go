package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/mlatu/internal/syntax"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorCaret = lipgloss.Color("#F59E0B")
)

// styles holds the diagnostic styles bound to one output.
type styles struct {
	pos   lipgloss.Style
	err   lipgloss.Style
	line  lipgloss.Style
	caret lipgloss.Style
}

// newStyles builds styles for r. The renderer detects the color profile
// of its own writer, so stderr redirected to a file gets no escapes.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		pos:   r.NewStyle().Bold(true),
		err:   r.NewStyle().Foreground(colorError).Bold(true),
		line:  r.NewStyle().Foreground(colorMuted),
		caret: r.NewStyle().Foreground(colorCaret).Bold(true),
	}
}

// diagnostic renders parse errors for a terminal.
type diagnostic struct {
	color bool
}

func (d diagnostic) style(s lipgloss.Style, text string) string {
	if !d.color {
		return text
	}
	return s.Render(text)
}

// print writes err to w. Syntax errors get the offending source line and
// a caret under the failing column; other errors are printed as is.
func (d diagnostic) print(w io.Writer, display, src string, err error) {
	st := newStyles(lipgloss.NewRenderer(w))

	var serr *syntax.SyntaxError
	if !errors.As(err, &serr) {
		fmt.Fprintf(w, "%s: %s %v\n", d.style(st.pos, display), d.style(st.err, "error:"), err)
		return
	}

	fmt.Fprintf(w, "%s: %s %s\n",
		d.style(st.pos, serr.Pos.String()),
		d.style(st.err, "error:"),
		serr.Msg())

	line := syntax.LineAt(src, serr.Pos.Offset)
	fmt.Fprintf(w, "  %s\n", d.style(st.line, line))
	fmt.Fprintf(w, "  %s%s\n", caretIndent(line, serr.Pos.Col-1), d.style(st.caret, "^"))
}

// caretIndent returns the padding that places a caret under the col'th
// character of line. Tabs are kept so the caret lines up in a terminal.
func caretIndent(line string, col int) string {
	var b strings.Builder
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
