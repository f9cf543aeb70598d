package parser

import (
	"strconv"

	"github.com/calder-lang/calder/pkg/ast"
)

// Default primary rules for the calder grammar. Each rule is entered with
// the cursor on the token that selected it.

func parseIntegerLit(r Rules) (ast.Expr, error) {
	tok := r.Advance()
	v, err := strconv.ParseInt(stripSeparators(tok.Literal), 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Pos:      tok.Pos,
			Expected: []string{"integer literal"},
			Got:      tok,
		}
	}
	return &ast.IntegerLit{NodeInfo: nodeAt(tok), Value: v}, nil
}

func parseFloatLit(r Rules) (ast.Expr, error) {
	tok := r.Advance()
	v, err := strconv.ParseFloat(stripSeparators(tok.Literal), 64)
	if err != nil {
		return nil, &SyntaxError{
			Pos:      tok.Pos,
			Expected: []string{"float literal"},
			Got:      tok,
		}
	}
	return &ast.FloatLit{NodeInfo: nodeAt(tok), Value: v}, nil
}

func parseStringLit(r Rules) (ast.Expr, error) {
	tok := r.Advance()
	return &ast.StringLit{NodeInfo: nodeAt(tok), Value: tok.Literal}, nil
}

func parseVariableRef(r Rules) (ast.Expr, error) {
	tok := r.Advance()
	return &ast.VariableRef{NodeInfo: nodeAt(tok), Name: tok.Literal}, nil
}

func parseScopeExpr(r Rules) (ast.Expr, error) {
	return r.ParseScope()
}

// parseGroupExpr parses a parenthesized group, then reinterprets it as a
// function literal when the group is immediately followed by a scope:
// `(params) { body }`. The decision needs only one peek after the group is
// fully built.
func parseGroupExpr(r Rules) (ast.Expr, error) {
	group, err := r.ParseGroup()
	if err != nil {
		return nil, err
	}
	if r.Current().Kind != r.Grammar().OpenScope {
		return group, nil
	}
	body, err := r.ParseScope()
	if err != nil {
		return nil, err
	}
	fn := &ast.Function{Params: group, Body: body}
	fn.Loc.Start = group.Loc.Start
	fn.Loc.End = body.Loc.End
	return fn, nil
}
