package format

import (
	"fmt"

	"github.com/calder-lang/calder/pkg/ast"
)

// Nodes whose canonical form fits within this width render inline even in
// the pretty form.
const inlineThreshold = 60

func (p *Printer) formatExpr(e ast.Expr) {
	if e == nil {
		return
	}

	// Leaves, and any subtree that is short enough, render inline.
	if s := e.String(); len(s) <= inlineThreshold {
		p.write(s)
		return
	}

	switch expr := e.(type) {
	case *ast.Init:
		p.formatBinding("Init", expr.Name, expr.Value)
	case *ast.Assign:
		p.formatBinding("Assign", expr.Name, expr.Value)
	case *ast.Scope:
		p.formatSequence("Scope", expr.Body)
	case *ast.Parens:
		p.formatSequence("Parens", expr.Elems)
	case *ast.Function:
		p.write("Function(")
		p.writeln()
		p.indent()
		p.formatExpr(expr.Params)
		p.write(",")
		p.writeln()
		p.formatExpr(expr.Body)
		p.dedent()
		p.writeln()
		p.write(")")
	default:
		// Long leaf (e.g. a large string literal); nothing to break up.
		p.write(e.String())
	}
}

func (p *Printer) formatBinding(variant, name string, value ast.Expr) {
	p.write(fmt.Sprintf("%s(%q,", variant, name))
	p.writeln()
	p.indent()
	p.formatExpr(value)
	p.dedent()
	p.writeln()
	p.write(")")
}

func (p *Printer) formatSequence(variant string, body []ast.Expr) {
	p.write(variant + "([")
	p.writeln()
	p.indent()
	for i, e := range body {
		p.formatExpr(e)
		if i < len(body)-1 {
			p.write(",")
		}
		p.writeln()
	}
	p.dedent()
	p.write("])")
}
