package builtins

import (
	"sync"

	"github.com/nickng/rangeopt/symbols"
)

// Package is the package of every predeclared declaration.
const Package = "lang"

var elementNames = [...]string{
	symbols.Int8:    "Byte",
	symbols.Int16:   "Short",
	symbols.Int32:   "Int",
	symbols.Int64:   "Long",
	symbols.Char:    "Char",
	symbols.Float32: "Float",
	symbols.Float64: "Double",
}

// ElementClassName returns the simple name of the primitive class of kind k,
// e.g. Int for Int32.
func ElementClassName(k symbols.PrimitiveKind) string {
	return elementNames[k]
}

// RangeClassName returns the canonical qualified name of the range type over
// kind k, e.g. lang.IntRange for Int32.
func RangeClassName(k symbols.PrimitiveKind) string {
	return Package + "." + elementNames[k] + "Range"
}

// Registry maps range type qualified names to their element kinds.
// It is immutable and safe for concurrent use.
type Registry struct {
	kinds map[string]symbols.PrimitiveKind
}

// newRegistry records, for every primitive kind, the qualified name of its
// range type.
func newRegistry() *Registry {
	kinds := symbols.PrimitiveKinds()
	r := &Registry{kinds: make(map[string]symbols.PrimitiveKind, len(kinds))}
	for _, k := range kinds {
		r.kinds[RangeClassName(k)] = k
	}
	return r
}

var registry = sync.OnceValue(newRegistry)

// RangeRegistry returns the process-wide range registry. It is built on first
// use and never modified afterwards.
func RangeRegistry() *Registry {
	return registry()
}

// Lookup returns the element kind of the range type named fqName.
func (r *Registry) Lookup(fqName string) (symbols.PrimitiveKind, bool) {
	k, ok := r.kinds[fqName]
	return k, ok
}

// Len returns the number of registered range types.
func (r *Registry) Len() int { return len(r.kinds) }
