package rangeloop

import (
	"github.com/nickng/rangeopt/builtins"
	"github.com/nickng/rangeopt/symbols"
)

// Oracle recognises builtin primitive range types.
type Oracle struct {
	builtins *builtins.Builtins
}

// NewOracle returns an Oracle recognising the range types of b.
func NewOracle(b *builtins.Builtins) *Oracle {
	return &Oracle{builtins: b}
}

// IsRange returns true iff t is a non-null builtin primitive range type.
func (o *Oracle) IsRange(t *symbols.ResolvedType) bool {
	_, ok := o.ElementKind(t)
	return ok
}

// ElementKind returns the element kind of the builtin primitive range type t.
//
// The declaring classifier of t must be the very declaration the builtin
// scope resolves for its simple name: a user class named IntRange is not
// lang.IntRange, even if it is declared in a package called lang. The kind is
// that of the classifier's own qualified name; t.FqName is not consulted.
// Type arguments of t are not inspected.
func (o *Oracle) ElementKind(t *symbols.ResolvedType) (symbols.PrimitiveKind, bool) {
	if t == nil || t.Nullable {
		return 0, false
	}
	decl := o.builtins.Table.Symbol(t.Classifier)
	if decl == nil {
		return 0, false
	}
	if builtin, ok := o.builtins.Scope.Lookup(decl.Name); !ok || builtin != decl.ID {
		return 0, false // Not the builtin class, e.g. a shadowing user class.
	}
	return o.builtins.Registry.Lookup(decl.FqName())
}
