package parser

import (
	"sort"

	"github.com/calder-lang/calder/pkg/ast"
	"github.com/calder-lang/calder/pkg/token"
)

// Rules exposes engine operations to grammar rules. Rules interact with the
// token source and recurse into sub-parsers through this interface only, so
// a grammar can be assembled from functions living outside this package.
type Rules interface {
	// Current returns the token under the cursor.
	Current() token.Token
	// Peek returns the token n positions ahead without consuming anything.
	Peek(n int) token.Token
	// Advance consumes and returns the current token.
	Advance() token.Token
	// Expect consumes the current token if it has kind k, or fails with a
	// syntax error naming want as the viable production.
	Expect(k token.Kind, want string) (token.Token, error)

	// ParseExpression recursively parses one full expression.
	ParseExpression() (ast.Expr, error)
	// ParseScope parses a brace-delimited expression sequence. The cursor
	// must be on the opening brace.
	ParseScope() (*ast.Scope, error)
	// ParseGroup parses a parenthesis-delimited expression group. The cursor
	// must be on the opening parenthesis.
	ParseGroup() (*ast.Parens, error)

	// Errf builds a syntax error at the current token naming the viable
	// productions.
	Errf(expected ...string) error

	// Grammar returns the grammar the engine was configured with.
	Grammar() *Grammar
}

// PrefixRule parses a primary expression selected by its leading token kind.
type PrefixRule struct {
	// Name is the production name used in error messages, e.g. "integer literal".
	Name string
	// Parse builds the node. The cursor is still on the selecting token.
	Parse func(r Rules) (ast.Expr, error)
}

// Grammar configures the recursive-descent engine. The engine owns only the
// shape of the grammar (binding form, assignment chain, delimited sequences,
// primary dispatch); everything token-specific is data held here, so the
// same engine can host a different expression grammar by supplying a
// different Grammar value.
type Grammar struct {
	// Primary maps a leading token kind to the rule that parses the primary
	// expression it introduces.
	Primary map[token.Kind]PrefixRule

	// Ident is the identifier kind used by bindings and references.
	Ident token.Kind
	// Bind is the keyword kind introducing an initialization (`let`).
	Bind token.Kind
	// Assign is the binding/rebinding operator kind (`=`).
	Assign token.Kind

	// OpenScope and CloseScope delimit expression sequences (`{` `}`).
	OpenScope, CloseScope token.Kind
	// OpenGroup and CloseGroup delimit expression groups (`(` `)`).
	OpenGroup, CloseGroup token.Kind
	// Separator optionally separates group elements (`,`).
	Separator token.Kind

	// MaxDepth bounds expression nesting. Parsing fails with a DepthError
	// once expressions nest deeper than this; zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is the nesting limit used when Grammar.MaxDepth is zero.
const DefaultMaxDepth = 512

// DefaultGrammar returns the calder grammar.
func DefaultGrammar() *Grammar {
	return &Grammar{
		Primary: map[token.Kind]PrefixRule{
			token.INT:    {Name: "integer literal", Parse: parseIntegerLit},
			token.FLOAT:  {Name: "float literal", Parse: parseFloatLit},
			token.STRING: {Name: "string literal", Parse: parseStringLit},
			token.IDENT:  {Name: "variable reference", Parse: parseVariableRef},
			token.LBRACE: {Name: "scope", Parse: parseScopeExpr},
			token.LPAREN: {Name: "parentheses", Parse: parseGroupExpr},
		},
		Ident:      token.IDENT,
		Bind:       token.LET,
		Assign:     token.ASSIGN,
		OpenScope:  token.LBRACE,
		CloseScope: token.RBRACE,
		OpenGroup:  token.LPAREN,
		CloseGroup: token.RPAREN,
		Separator:  token.COMMA,
	}
}

// maxDepth returns the effective nesting limit.
func (g *Grammar) maxDepth() int {
	if g.MaxDepth > 0 {
		return g.MaxDepth
	}
	return DefaultMaxDepth
}

// productions returns the production names viable at a primary decision
// point, in a stable order, for error messages.
func (g *Grammar) productions() []string {
	names := make([]string, 0, len(g.Primary))
	for _, k := range [...]token.Kind{
		token.INT, token.FLOAT, token.STRING, token.IDENT,
		token.LBRACE, token.LPAREN,
	} {
		if rule, ok := g.Primary[k]; ok {
			names = append(names, rule.Name)
		}
	}
	// Rules for dynamically registered kinds come last, in kind order.
	var dynamic []token.Kind
	for k := range g.Primary {
		if token.IsDynamic(k) {
			dynamic = append(dynamic, k)
		}
	}
	sort.Slice(dynamic, func(i, j int) bool { return dynamic[i] < dynamic[j] })
	for _, k := range dynamic {
		names = append(names, g.Primary[k].Name)
	}
	return names
}
