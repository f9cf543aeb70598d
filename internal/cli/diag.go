package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calder-lang/calder/pkg/parser"
	"github.com/calder-lang/calder/pkg/token"
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderError renders a parse failure for terminal output. When src is
// non-empty and the error carries a position, the offending source line is
// shown with a caret.
func renderError(err error, src string) string {
	var b strings.Builder
	b.WriteString(errStyle.Render("error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	if pos, ok := errorPosition(err); ok && src != "" {
		if excerpt := sourceExcerpt(src, pos); excerpt != "" {
			b.WriteString("\n")
			b.WriteString(excerpt)
		}
	}
	return b.String()
}

// errorPosition extracts the most useful position from a parse error:
// the offending token for syntax errors, the opening delimiter for
// end-of-input errors, and the guard trip point for depth errors.
func errorPosition(err error) (token.Position, bool) {
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}
	var eofErr *parser.EOFError
	if errors.As(err, &eofErr) && eofErr.Opened.IsValid() {
		return eofErr.Opened, true
	}
	var depthErr *parser.DepthError
	if errors.As(err, &depthErr) {
		return depthErr.Pos, true
	}
	return token.Position{}, false
}

// sourceExcerpt returns the source line at pos with a caret under the column.
func sourceExcerpt(src string, pos token.Position) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]

	gutter := fmt.Sprintf("%4d | ", pos.Line)
	col := pos.Column
	if col < 1 {
		col = 1
	}
	caretPad := strings.Repeat(" ", len(gutter)+col-1)
	return gutterStyle.Render(gutter) + line + "\n" + caretPad + caretStyle.Render("^")
}
