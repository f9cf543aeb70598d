// Package parser implements the recursive-descent front end for calder.
//
// # Usage
//
//	prog, err := parser.Parse(`let x = { (z = "hello") }`)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser walks the token sequence once, left to right, with at most two
// tokens of lookahead, and builds the tree bottom-up:
//
//	program     → expression*                       (until end-of-input)
//	expression  → "let" IDENT "=" expression        (initialization)
//	            | IDENT "=" expression              (assignment)
//	            | primary
//	primary     → INT | FLOAT | STRING | IDENT
//	            | scope | group
//	scope       → "{" expression* "}"
//	group       → "(" (expression (","? expression)*)? ")"
//	function    → group scope                       (group followed by "{")
//
// Assignment is right-associative: the right-hand side re-enters the full
// expression rule, so `x = y = z` nests rightward. Initialization versus
// assignment is resolved lexically (the `let` keyword); assignment versus a
// plain variable reference needs a second peek for `=` and commits nothing
// until it matches. The engine itself is grammar-agnostic: every
// token-specific decision is driven by the Grammar value it is configured
// with, so the same skeleton can host a different expression grammar.
//
// The parser is fail-fast: the first error aborts the parse and no partial
// tree is returned.
package parser

import (
	"fmt"

	"github.com/calder-lang/calder/pkg/ast"
	"github.com/calder-lang/calder/pkg/token"
)

// Parser parses a token sequence into an AST. Each Parser owns its cursor
// and builds an independent tree; concurrent parses of independent inputs
// need no coordination.
type Parser struct {
	src   *token.Source
	g     *Grammar
	depth int
}

// New creates a parser over src configured with grammar g. A nil g uses
// DefaultGrammar.
func New(src *token.Source, g *Grammar) *Parser {
	if g == nil {
		g = DefaultGrammar()
	}
	return &Parser{src: src, g: g}
}

// Parse lexes and parses calder source text.
func Parse(input string) (*ast.Program, error) {
	return ParseTokens(NewLexer(input).Tokens())
}

// ParseTokens parses an already-lexed token sequence. This is the entry
// point for external token sources.
func ParseTokens(toks []token.Token) (*ast.Program, error) {
	return New(token.NewSource(toks), nil).ParseProgram()
}

// ParseProgram parses the whole token sequence into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.src.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		prog.Exprs = append(prog.Exprs, expr)
	}
	return prog, nil
}

// ---------- Rules implementation ----------

// Current returns the token under the cursor (implements Rules).
func (p *Parser) Current() token.Token {
	return p.src.Current()
}

// Peek returns the token n positions ahead (implements Rules).
func (p *Parser) Peek(n int) token.Token {
	return p.src.Peek(n)
}

// Advance consumes and returns the current token (implements Rules).
func (p *Parser) Advance() token.Token {
	return p.src.Advance()
}

// Grammar returns the configured grammar (implements Rules).
func (p *Parser) Grammar() *Grammar {
	return p.g
}

// Expect consumes the current token if it has kind k (implements Rules).
func (p *Parser) Expect(k token.Kind, want string) (token.Token, error) {
	cur := p.src.Current()
	if cur.Kind == k {
		return p.src.Advance(), nil
	}
	if cur.Kind == token.EOF {
		return token.Token{}, &EOFError{Expected: want}
	}
	return token.Token{}, &SyntaxError{Pos: cur.Pos, Expected: []string{want}, Got: cur}
}

// Errf builds a syntax error at the current token (implements Rules).
func (p *Parser) Errf(expected ...string) error {
	return &SyntaxError{Pos: p.src.Pos(), Expected: expected, Got: p.src.Current()}
}

// ParseExpression parses one full expression (implements Rules).
func (p *Parser) ParseExpression() (ast.Expr, error) {
	if p.depth >= p.g.maxDepth() {
		return nil, &DepthError{Pos: p.src.Pos(), Limit: p.g.maxDepth()}
	}
	p.depth++
	defer func() { p.depth-- }()

	tok := p.src.Current()
	switch {
	case tok.Kind == p.g.Bind:
		return p.parseInit()
	case tok.Kind == p.g.Ident && p.src.Peek(1).Kind == p.g.Assign:
		// Lookahead of two: commit to an assignment only once the `=` is
		// seen; otherwise the identifier falls through to primary parsing
		// as a variable reference, with nothing consumed.
		return p.parseAssign()
	default:
		return p.parsePrimary()
	}
}

// parseInit parses `let name = value`.
func (p *Parser) parseInit() (ast.Expr, error) {
	let := p.src.Advance()
	name, err := p.Expect(p.g.Ident, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(p.g.Assign, fmt.Sprintf("%q", p.g.Assign.String())); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	node := &ast.Init{Name: name.Literal, Value: value}
	node.Loc = token.Span{Start: let.Pos, End: value.Span().End}
	return node, nil
}

// parseAssign parses `name = value`. The value re-enters the full expression
// rule, giving assignment chains their rightward nesting.
func (p *Parser) parseAssign() (ast.Expr, error) {
	name := p.src.Advance()
	p.src.Advance() // `=`, already matched by lookahead
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	node := &ast.Assign{Name: name.Literal, Value: value}
	node.Loc = token.Span{Start: name.Pos, End: value.Span().End}
	return node, nil
}

// parsePrimary dispatches on the current token kind through the grammar's
// primary rule table.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.src.Current()
	if tok.Kind == token.EOF {
		return nil, &EOFError{Expected: "an expression"}
	}
	if tok.Kind == token.ILLEGAL && tok.Literal == unterminatedString {
		// Strings may span lines, so running out of input inside one is an
		// end-of-input condition, not a malformed token.
		return nil, &EOFError{Expected: "closing quote", Opened: tok.Pos}
	}
	rule, ok := p.g.Primary[tok.Kind]
	if !ok {
		return nil, &SyntaxError{Pos: tok.Pos, Expected: p.g.productions(), Got: tok}
	}
	return rule.Parse(p)
}

// ParseScope parses `{ expression* }` (implements Rules).
func (p *Parser) ParseScope() (*ast.Scope, error) {
	open, err := p.Expect(p.g.OpenScope, fmt.Sprintf("%q", p.g.OpenScope.String()))
	if err != nil {
		return nil, err
	}
	scope := &ast.Scope{}
	scope.Loc.Start = open.Pos
	for {
		cur := p.src.Current()
		if cur.Kind == p.g.CloseScope {
			scope.Loc.End = endOf(p.src.Advance())
			return scope, nil
		}
		if cur.Kind == token.EOF {
			return nil, &EOFError{
				Expected: fmt.Sprintf("%q", p.g.CloseScope.String()),
				Opened:   open.Pos,
			}
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		scope.Body = append(scope.Body, expr)
	}
}

// ParseGroup parses `( expression* )` with optional separators between
// elements (implements Rules).
func (p *Parser) ParseGroup() (*ast.Parens, error) {
	open, err := p.Expect(p.g.OpenGroup, fmt.Sprintf("%q", p.g.OpenGroup.String()))
	if err != nil {
		return nil, err
	}
	group := &ast.Parens{}
	group.Loc.Start = open.Pos
	for {
		cur := p.src.Current()
		if cur.Kind == p.g.CloseGroup {
			group.Loc.End = endOf(p.src.Advance())
			return group, nil
		}
		if cur.Kind == token.EOF {
			return nil, &EOFError{
				Expected: fmt.Sprintf("%q", p.g.CloseGroup.String()),
				Opened:   open.Pos,
			}
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		group.Elems = append(group.Elems, expr)
		if p.src.Current().Kind == p.g.Separator {
			p.src.Advance()
		}
	}
}

// ---------- Span helpers ----------

// nodeAt returns NodeInfo spanning a single token.
func nodeAt(tok token.Token) ast.NodeInfo {
	return ast.NodeInfo{Loc: token.Span{Start: tok.Pos, End: endOf(tok)}}
}

// endOf returns the position just past a token. Literals never span lines
// except raw strings, where the end position is approximate.
func endOf(tok token.Token) token.Position {
	return token.Position{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column + len(tok.Literal),
		Offset: tok.Pos.Offset + len(tok.Literal),
	}
}
