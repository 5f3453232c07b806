package fixture

import (
	"github.com/nickng/rangeopt/symbols"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

var ErrNoType = errors.New("expression has no resolved type")

// Resolver answers type and call queries from the :type and :target
// annotations of a fixture. It implements rangeloop.TypeResolver and
// rangeloop.CallResolver.
type Resolver struct {
	types map[syntax.Expr]*symbols.ResolvedType
	calls map[syntax.Expr]*symbols.CallableTarget
}

func newResolver() *Resolver {
	return &Resolver{
		types: make(map[syntax.Expr]*symbols.ResolvedType),
		calls: make(map[syntax.Expr]*symbols.CallableTarget),
	}
}

// TypeOf returns the annotated type of e. A parenthesised expression has the
// type of its operand unless annotated itself.
func (r *Resolver) TypeOf(e syntax.Expr) (*symbols.ResolvedType, error) {
	for {
		if t, ok := r.types[e]; ok {
			return t, nil
		}
		p, ok := e.(*syntax.ParenExpr)
		if !ok {
			return nil, errors.Wrapf(ErrNoType, "%s", e)
		}
		e = p.X
	}
}

// CallTarget returns the annotated call target of ref.
func (r *Resolver) CallTarget(ref syntax.Expr) (*symbols.CallableTarget, bool) {
	c, ok := r.calls[ref]
	return c, ok
}
