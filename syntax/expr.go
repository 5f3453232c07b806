package syntax

import (
	"bytes"
	"go/token"
)

// LitKind is the kind of a basic literal.
type LitKind int

const (
	IntLit LitKind = iota
	FloatLit
	CharLit
	StringLit
)

func (k LitKind) String() string {
	switch k {
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	case CharLit:
		return "char"
	case StringLit:
		return "string"
	}
	return "invalid"
}

// Ident is a simple name reference.
type Ident struct {
	Span
	Name string
}

// BasicLit is a literal of basic kind.
// Value holds the literal as written, e.g. 42, 'a', "s".
type BasicLit struct {
	Span
	Kind  LitKind
	Value string
}

// ParenExpr is a parenthesised expression.
type ParenExpr struct {
	Span
	X Expr
}

// OperationRef references the operator of a binary expression. Token is the
// operator as written: a symbol such as ".." or "+", or an identifier for
// infix calls such as "a rangeTo b".
type OperationRef struct {
	Span
	Token string
}

// BinaryExpr is an infix expression X Op Y.
type BinaryExpr struct {
	Span
	X  Expr
	Op *OperationRef
	Y  Expr
}

// QualifiedExpr is Receiver.Selector, or Receiver?.Selector if Safe.
type QualifiedExpr struct {
	Span
	Receiver Expr
	Selector Expr
	Safe     bool
}

// CallExpr is Callee(Args...).
type CallExpr struct {
	Span
	Callee Expr
	Args   []Expr
}

// NewIdent returns an identifier spanning from pos.
func NewIdent(pos token.Pos, name string) *Ident {
	return &Ident{Span: MakeSpan(pos, pos+token.Pos(len(name))), Name: name}
}

// NewBasicLit returns a literal spanning from pos.
func NewBasicLit(pos token.Pos, kind LitKind, value string) *BasicLit {
	return &BasicLit{Span: MakeSpan(pos, pos+token.Pos(len(value))), Kind: kind, Value: value}
}

// NewOperationRef returns an operator reference spanning from pos.
func NewOperationRef(pos token.Pos, tok string) *OperationRef {
	return &OperationRef{Span: MakeSpan(pos, pos+token.Pos(len(tok))), Token: tok}
}

// NewParenExpr wraps x in parentheses.
func NewParenExpr(x Expr) *ParenExpr {
	p := &ParenExpr{Span: MakeSpan(x.Pos()-1, x.End()+1), X: x}
	x.setParent(p)
	return p
}

// NewBinaryExpr returns x op y and links the operands to it.
func NewBinaryExpr(x Expr, op *OperationRef, y Expr) *BinaryExpr {
	b := &BinaryExpr{Span: MakeSpan(x.Pos(), y.End()), X: x, Op: op, Y: y}
	for _, n := range nodes(x, op, y) {
		n.setParent(b)
	}
	return b
}

// NewQualifiedExpr returns receiver.selector and links the operands to it.
func NewQualifiedExpr(receiver, selector Expr, safe bool) *QualifiedExpr {
	q := &QualifiedExpr{Span: MakeSpan(receiver.Pos(), selector.End()), Receiver: receiver, Selector: selector, Safe: safe}
	receiver.setParent(q)
	selector.setParent(q)
	return q
}

// NewCallExpr returns callee(args...) ending at rparen.
func NewCallExpr(callee Expr, args []Expr, rparen token.Pos) *CallExpr {
	c := &CallExpr{Span: MakeSpan(callee.Pos(), rparen+1), Callee: callee, Args: args}
	callee.setParent(c)
	for _, arg := range args {
		arg.setParent(c)
	}
	return c
}

func (*Ident) Children() []Node        { return nil }
func (*BasicLit) Children() []Node     { return nil }
func (*OperationRef) Children() []Node { return nil }
func (e *ParenExpr) Children() []Node  { return nodes(e.X) }
func (e *BinaryExpr) Children() []Node { return nodes(e.X, e.Op, e.Y) }

func (e *QualifiedExpr) Children() []Node { return nodes(e.Receiver, e.Selector) }

func (e *CallExpr) Children() []Node {
	children := nodes(e.Callee)
	for _, arg := range e.Args {
		children = append(children, nodes(arg)...)
	}
	return children
}

func (e *Ident) String() string        { return e.Name }
func (e *BasicLit) String() string     { return e.Value }
func (e *OperationRef) String() string { return e.Token }
func (e *ParenExpr) String() string    { return "(" + exprString(e.X) + ")" }

func (e *BinaryExpr) String() string {
	op := exprString(e.Op)
	if op != ".." {
		op = " " + op + " "
	}
	return exprString(e.X) + op + exprString(e.Y)
}

func (e *QualifiedExpr) String() string {
	dot := "."
	if e.Safe {
		dot = "?."
	}
	return exprString(e.Receiver) + dot + exprString(e.Selector)
}

func (e *CallExpr) String() string {
	var buf bytes.Buffer
	buf.WriteString(exprString(e.Callee))
	buf.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(exprString(arg))
	}
	buf.WriteByte(')')
	return buf.String()
}

func (*Ident) exprNode()         {}
func (*BasicLit) exprNode()      {}
func (*ParenExpr) exprNode()     {}
func (*OperationRef) exprNode()  {}
func (*BinaryExpr) exprNode()    {}
func (*QualifiedExpr) exprNode() {}
func (*CallExpr) exprNode()      {}

func exprString(e Expr) string {
	if IsNil(e) {
		return "<nil>"
	}
	return e.String()
}
