package parser

import (
	"fmt"
	"strings"

	"github.com/calder-lang/calder/pkg/token"
)

// SyntaxError reports a token that matches none of the productions expected
// at a decision point. Expected lists the productions that were viable there.
type SyntaxError struct {
	Pos      token.Position
	Expected []string
	Got      token.Token
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at %s: unexpected %s", e.Pos, e.Got)
	}
	return fmt.Sprintf("syntax error at %s: unexpected %s, expected %s",
		e.Pos, e.Got, strings.Join(e.Expected, " or "))
}

// EOFError reports a token source exhausted while a production still expected
// more tokens. For unterminated scopes and groups, Opened is the position of
// the opening delimiter.
type EOFError struct {
	Expected string
	Opened   token.Position
}

func (e *EOFError) Error() string {
	if e.Opened.IsValid() {
		return fmt.Sprintf("unexpected end of input: expected %s to match delimiter opened at %s",
			e.Expected, e.Opened)
	}
	return fmt.Sprintf("unexpected end of input: expected %s", e.Expected)
}

// DepthError reports that expression nesting exceeded the grammar's limit.
// The guard exists so that adversarial input fails cleanly instead of
// overflowing the execution stack.
type DepthError struct {
	Pos   token.Position
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nesting depth exceeded at %s: expressions nest deeper than %d levels",
		e.Pos, e.Limit)
}
