package syntax

import "go/token"

// ForExpr is a loop over a range: for (Param in Range) { Body }.
//
// Range is nil only in malformed trees; the range analysis treats such a loop
// as a caller error.
type ForExpr struct {
	Span
	Param *Ident
	Range Expr
	Body  []Node
}

// FunDecl is a function declaration with a statement body.
type FunDecl struct {
	Span
	Name *Ident
	Body []Node
}

// ClassDecl is a class declaration with member declarations.
type ClassDecl struct {
	Span
	Name  *Ident
	Decls []Decl
}

// NamespaceBody is the top level of a file: a namespace name and its
// declarations.
type NamespaceBody struct {
	Span
	Name  string
	Decls []Decl
}

// NewForExpr returns a for loop and links its children to it.
func NewForExpr(pos token.Pos, param *Ident, rng Expr, body []Node, end token.Pos) *ForExpr {
	f := &ForExpr{Span: MakeSpan(pos, end), Param: param, Range: rng, Body: body}
	for _, child := range f.Children() {
		child.setParent(f)
	}
	return f
}

func (f *ForExpr) Children() []Node {
	return append(nodes(f.Param, f.Range), nodes(f.Body...)...)
}

func (d *FunDecl) Children() []Node {
	return append(nodes(d.Name), nodes(d.Body...)...)
}

func (d *ClassDecl) Children() []Node {
	children := nodes(d.Name)
	for _, decl := range d.Decls {
		children = append(children, nodes(decl)...)
	}
	return children
}

func (b *NamespaceBody) Children() []Node {
	var children []Node
	for _, decl := range b.Decls {
		children = append(children, nodes(decl)...)
	}
	return children
}

// Declarations returns the member declarations in source order.
func (d *ClassDecl) Declarations() []Decl { return declarations(d) }

// Declarations returns the top-level declarations in source order.
func (b *NamespaceBody) Declarations() []Decl { return declarations(b) }

// declarations collects the children of n that are declarations.
func declarations(n Node) []Decl {
	var decls []Decl
	for _, child := range n.Children() {
		if decl, ok := child.(Decl); ok {
			decls = append(decls, decl)
		}
	}
	return decls
}

func (d *FunDecl) DeclName() string   { return identName(d.Name) }
func (d *ClassDecl) DeclName() string { return identName(d.Name) }

func (*FunDecl) declNode()   {}
func (*ClassDecl) declNode() {}

func identName(id *Ident) string {
	if id == nil {
		return "_"
	}
	return id.Name
}
