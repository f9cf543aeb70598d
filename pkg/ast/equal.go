package ast

// Equal reports deep structural equality of two expressions. Source spans
// are ignored: two parses of the same token sequence compare equal even if
// the inputs carried different position metadata.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case *IntegerLit:
		y, ok := b.(*IntegerLit)
		return ok && x.Value == y.Value
	case *FloatLit:
		y, ok := b.(*FloatLit)
		return ok && x.Value == y.Value
	case *StringLit:
		y, ok := b.(*StringLit)
		return ok && x.Value == y.Value
	case *VariableRef:
		y, ok := b.(*VariableRef)
		return ok && x.Name == y.Name
	case *Init:
		y, ok := b.(*Init)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *Assign:
		y, ok := b.(*Assign)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *Scope:
		y, ok := b.(*Scope)
		return ok && equalList(x.Body, y.Body)
	case *Parens:
		y, ok := b.(*Parens)
		return ok && equalList(x.Elems, y.Elems)
	case *Function:
		y, ok := b.(*Function)
		return ok && Equal(x.Params, y.Params) && Equal(x.Body, y.Body)
	default:
		return false
	}
}

// EqualPrograms reports deep structural equality of two programs.
func EqualPrograms(a, b *Program) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalList(a.Exprs, b.Exprs)
}

func equalList(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
