package ast

// Inspect traverses the tree rooted at e in depth-first order, calling f for
// each node. If f returns false for a node, its children are skipped.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	switch x := e.(type) {
	case *Init:
		Inspect(x.Value, f)
	case *Assign:
		Inspect(x.Value, f)
	case *Scope:
		for _, child := range x.Body {
			Inspect(child, f)
		}
	case *Parens:
		for _, child := range x.Elems {
			Inspect(child, f)
		}
	case *Function:
		Inspect(x.Params, f)
		Inspect(x.Body, f)
	}
}
