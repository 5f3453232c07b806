package rangeloop

import (
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

// BinaryCall is a candidate range construction: Left Op Right.
// All fields refer to nodes of the analysed tree.
type BinaryCall struct {
	Left  syntax.Expr
	Op    syntax.Expr // Operator reference: the callee of a.f(b), or the operator of a OP b.
	Right syntax.Expr
}

// Match extracts the bounds and operator of a range expression of the form
// a.f(b) or a OP b, after stripping parentheses.
//
// Any binary operator matches here; operators other than the builtin rangeTo
// are rejected later by the Guard. Calls with zero or several arguments never
// match. Match does not use type information. It panics if rangeExpr is nil,
// including a typed nil node.
func Match(rangeExpr syntax.Expr) (BinaryCall, bool) {
	if syntax.IsNil(rangeExpr) {
		panic(errors.WithStack(ErrNoLoopRange))
	}
	switch e := syntax.Unparen(rangeExpr).(type) {
	case *syntax.QualifiedExpr: // a.rangeTo(b)
		call, ok := e.Selector.(*syntax.CallExpr)
		if !ok || syntax.IsNil(call) || len(call.Args) != 1 {
			return BinaryCall{}, false
		}
		return BinaryCall{Left: e.Receiver, Op: call.Callee, Right: call.Args[0]}, true

	case *syntax.BinaryExpr: // a..b, a rangeTo b
		return BinaryCall{Left: e.X, Op: e.Op, Right: e.Y}, true
	}
	return BinaryCall{}, false
}
