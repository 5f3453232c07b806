// Package syntax is the minimal syntax tree consumed by the range analysis.
//
// The tree is built by an upstream parser (or a test fixture) and is read-only
// once linked. Nodes own their children; the parent reference is a non-owning
// back-pointer filled in by Link.
//
// Expressions form a closed set: every expression type implements the
// unexported exprNode marker, so a type switch over Expr covers all cases.
package syntax

import "go/token"

// Node is an element of the syntax tree.
type Node interface {
	Pos() token.Pos   // Position of first character of the node.
	End() token.Pos   // Position of first character after the node.
	Parent() Node     // Enclosing node, nil for the root.
	Children() []Node // Owned children, in source order.
	setParent(p Node)
}

// Expr is an expression node.
type Expr interface {
	Node
	String() string
	exprNode()
}

// Decl is a declaration node.
type Decl interface {
	Node
	DeclName() string
	declNode()
}

// DeclarationContainer is implemented by nodes holding an ordered list of
// declarations, e.g. a namespace body or a class body.
type DeclarationContainer interface {
	Node
	Declarations() []Decl
}

// Span is the source range of a node, embedded by every node type.
type Span struct {
	From, To token.Pos
	parent   Node
}

func (s *Span) Pos() token.Pos   { return s.From }
func (s *Span) End() token.Pos   { return s.To }
func (s *Span) Parent() Node     { return s.parent }
func (s *Span) setParent(p Node) { s.parent = p }

// MakeSpan returns a Span covering [from, to).
func MakeSpan(from, to token.Pos) Span {
	return Span{From: from, To: to}
}

// Link sets the parent reference of every node reachable from root.
// It returns root for convenience.
func Link(root Node) Node {
	link(root, nil)
	return root
}

func link(n, parent Node) {
	if IsNil(n) {
		return
	}
	n.setParent(parent)
	for _, child := range n.Children() {
		link(child, n)
	}
}

// IsNil reports whether n is nil or a typed nil node.
func IsNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Ident:
		return n == nil
	case *BasicLit:
		return n == nil
	case *ParenExpr:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *QualifiedExpr:
		return n == nil
	case *CallExpr:
		return n == nil
	case *OperationRef:
		return n == nil
	case *ForExpr:
		return n == nil
	case *FunDecl:
		return n == nil
	case *ClassDecl:
		return n == nil
	case *NamespaceBody:
		return n == nil
	}
	return false
}

// nodes collects the non-nil nodes of ns.
func nodes(ns ...Node) []Node {
	var out []Node
	for _, n := range ns {
		if !IsNil(n) {
			out = append(out, n)
		}
	}
	return out
}
