// Package ast defines the expression tree produced by the calder parser.
//
// The language is expression-oriented: every syntactic form, including
// blocks and assignments, is an Expr and can nest as an operand. Nodes are
// built bottom-up during parsing and never mutated afterwards; later stages
// must build new trees rather than edit this one.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calder-lang/calder/pkg/token"
)

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	// Span returns the node's source range.
	Span() token.Span
	// String renders the node in the canonical debug form, e.g.
	// Init("x", IntegerLit(0)).
	String() string
}

// NodeInfo provides common fields for all AST nodes.
// Embed this in node types that need position tracking.
type NodeInfo struct {
	Loc token.Span
}

// Span returns the node's source span.
func (n *NodeInfo) Span() token.Span {
	return n.Loc
}

// Program is an ordered sequence of top-level expressions. Order is
// semantically significant: execution is sequential and later expressions
// may reference earlier initializations.
type Program struct {
	Exprs []Expr
}

func (p *Program) String() string {
	items := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		items[i] = e.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ---------- Literals ----------

// IntegerLit is a decimal integer constant.
type IntegerLit struct {
	NodeInfo
	Value int64
}

func (*IntegerLit) exprNode() {}

func (e *IntegerLit) String() string {
	return fmt.Sprintf("IntegerLit(%d)", e.Value)
}

// FloatLit is a floating-point constant.
type FloatLit struct {
	NodeInfo
	Value float64
}

func (*FloatLit) exprNode() {}

func (e *FloatLit) String() string {
	return "FloatLit(" + strconv.FormatFloat(e.Value, 'g', -1, 64) + ")"
}

// StringLit is a double-quoted string constant. The value is the raw text
// between the quotes; the lexer performs no escape processing.
type StringLit struct {
	NodeInfo
	Value string
}

func (*StringLit) exprNode() {}

func (e *StringLit) String() string {
	return fmt.Sprintf("StringLit(%q)", e.Value)
}

// ---------- Names ----------

// VariableRef is a use of a previously bound name.
type VariableRef struct {
	NodeInfo
	Name string
}

func (*VariableRef) exprNode() {}

func (e *VariableRef) String() string {
	return fmt.Sprintf("VariableRef(%q)", e.Name)
}

// Init is the first, binding introduction of a name: `let name = value`.
// Value is always present.
type Init struct {
	NodeInfo
	Name  string
	Value Expr
}

func (*Init) exprNode() {}

func (e *Init) String() string {
	return fmt.Sprintf("Init(%q, %s)", e.Name, e.Value)
}

// Assign rebinds an existing name: `name = value`. Distinguished from Init
// purely syntactically, by the absence of `let`. Value is always present.
type Assign struct {
	NodeInfo
	Name  string
	Value Expr
}

func (*Assign) exprNode() {}

func (e *Assign) String() string {
	return fmt.Sprintf("Assign(%q, %s)", e.Name, e.Value)
}

// ---------- Compound forms ----------

// Scope is a brace-delimited expression sequence. It evaluates to its last
// element, or to unit when the body is empty. Body order is significant.
type Scope struct {
	NodeInfo
	Body []Expr
}

func (*Scope) exprNode() {}

func (e *Scope) String() string {
	return "Scope(" + exprList(e.Body) + ")"
}

// Parens is a parenthesis-delimited expression group. It doubles as a
// function's parameter list when immediately followed by a Scope.
type Parens struct {
	NodeInfo
	Elems []Expr
}

func (*Parens) exprNode() {}

func (e *Parens) String() string {
	return "Parens(" + exprList(e.Elems) + ")"
}

// Function is an anonymous function value: `(params) { body }`. Params and
// Body are always present, even when empty.
type Function struct {
	NodeInfo
	Params *Parens
	Body   *Scope
}

func (*Function) exprNode() {}

func (e *Function) String() string {
	return fmt.Sprintf("Function(%s, %s)", e.Params, e.Body)
}

func exprList(exprs []Expr) string {
	items := make([]string, len(exprs))
	for i, e := range exprs {
		items[i] = e.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}
