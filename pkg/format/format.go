package format

import "github.com/calder-lang/calder/pkg/ast"

// Canonical renders a program as a single-line bracketed list of canonical
// node forms, e.g. [Init("x", IntegerLit(0))].
func Canonical(prog *ast.Program) string {
	return prog.String()
}

// Pretty renders a program with one top-level expression per line, breaking
// large subtrees across indented lines.
func Pretty(prog *ast.Program) string {
	p := newPrinter()
	for _, e := range prog.Exprs {
		p.formatExpr(e)
		p.writeln()
	}
	return p.String()
}

// Node renders a single expression in its canonical debug form.
func Node(e ast.Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
