package token

import "fmt"

// Position is a point in calder source. Line and Column are 1-based so they
// can be shown to users as-is; Offset is the 0-based byte offset, kept for
// programmatic consumers that index into the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p refers to an actual source location. The zero
// Position is invalid, which error types use to mean "no opener recorded".
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders p the way diagnostics quote it, e.g. "line 3, column 14".
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Span is the half-open source range [Start, End) covered by a token or an
// AST node.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid reports whether both ends of the span are valid positions.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
