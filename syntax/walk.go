package syntax

// Inspect traverses the tree rooted at root in depth-first order. It calls
// f(n) for each node; if f returns true, Inspect visits the children of n and
// then calls f(nil).
func Inspect(root Node, f func(Node) bool) {
	if IsNil(root) {
		return
	}
	if !f(root) {
		return
	}
	for _, child := range root.Children() {
		Inspect(child, f)
	}
	f(nil)
}

// Unparen strips any number of enclosing parentheses from e. It is purely
// syntactic and never consults type information.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok || p == nil || IsNil(p.X) {
			return e
		}
		e = p.X
	}
}

// EnclosingFunc returns the innermost function declaration containing n, or
// nil if n is not inside a function.
func EnclosingFunc(n Node) *FunDecl {
	for p := parentOf(n); p != nil; p = parentOf(p) {
		if fn, ok := p.(*FunDecl); ok {
			return fn
		}
	}
	return nil
}

func parentOf(n Node) Node {
	if IsNil(n) {
		return nil
	}
	return n.Parent()
}
