// Package token defines the lexical token model for calder source text.
//
// Core tokens are defined as constants (IDs 0-999) for switch performance.
// Embedding grammars may register additional keyword tokens via Register().
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int32

const (
	// Special tokens
	EOF Kind = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	INT    // 1_000, -99
	FLOAT  // .42, 42., 0.25, 1e10
	STRING // "hello"

	// Punctuation
	ASSIGN // =
	COMMA  // ,
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Keywords
	LET

	// Sentinel - dynamic tokens start after this
	maxBuiltin Kind = 999
)

// String returns a human-readable representation of the token kind.
func (k Kind) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(k); ok {
		return name
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", k)
}

// kindNames maps builtin token kinds to their string representations.
var kindNames = map[Kind]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",

	ASSIGN: "=",
	COMMA:  ",",
	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",

	LET: "let",
}

// keywords maps keyword spellings to their token kinds.
// Keywords are case-sensitive: `Let` is an identifier, `let` is not.
var keywords = map[string]Kind{
	"let": LET,
}

// LookupIdent returns the keyword kind for name, or IDENT if name is not a
// keyword. Dynamically registered keywords are consulted after the builtins.
func LookupIdent(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	if k, ok := LookupDynamicKeyword(name); ok {
		return k
	}
	return IDENT
}

// Token is a single lexical token with its source position.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

// String returns a compact representation for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case IDENT, INT, FLOAT, ILLEGAL:
		return t.Literal
	case STRING:
		return fmt.Sprintf("%q", t.Literal)
	default:
		return t.Kind.String()
	}
}
