package rangeloop

import (
	"github.com/nickng/rangeopt/builtins"
	"github.com/nickng/rangeopt/symbols"
)

// RangeToName is the name of the range construction operator.
// Both a..b and a.rangeTo(b) resolve to a callable of this name.
const RangeToName = "rangeTo"

// Guard recognises the builtin rangeTo of primitive number classes.
type Guard struct {
	builtins   *builtins.Builtins
	charRanges bool
}

// NewGuard returns a Guard for the primitive classes of b. If charRanges is
// false, Char.rangeTo is not accepted.
func NewGuard(b *builtins.Builtins, charRanges bool) *Guard {
	return &Guard{builtins: b, charRanges: charRanges}
}

// IsOptimizableRangeTo returns true iff c is rangeTo declared in a builtin
// primitive number class. A rangeTo declared anywhere else is a user overload
// and may have any semantics.
func (g *Guard) IsOptimizableRangeTo(c *symbols.CallableTarget) bool {
	if c == nil || c.Name != RangeToName {
		return false
	}
	if !g.builtins.IsPrimitiveNumber(c.Container) {
		return false
	}
	if k, _ := g.builtins.ElementKind(c.Container); k == symbols.Char {
		return g.charRanges
	}
	return true
}
