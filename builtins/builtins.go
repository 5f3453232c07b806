// Package builtins declares the compiler-known classes (primitive types and
// their range types) and provides the builtin scope used to recognise them.
//
// Builtins are declared into a symbols.Table like any other declaration, so a
// user class with the same name gets a different handle and can be told
// apart by identity.
package builtins

import (
	"sync"

	"github.com/nickng/rangeopt/symbols"
)

// Names of predeclared classes that are not element types of a range.
const (
	BooleanName = "Boolean"
	AnyName     = "Any"
	NumberName  = "Number"
	StringName  = "String"
)

// Builtins is the set of predeclared declarations of one symbol table.
// It is read-only after Install returns.
type Builtins struct {
	Table    *symbols.Table
	Scope    *symbols.Scope
	Registry *Registry

	elements map[symbols.ID]symbols.PrimitiveKind // Primitive classes with an element kind.
	boolean  symbols.ID
}

// Install declares every builtin class in tab and returns the resulting
// builtin scope.
//
// Handles are only meaningful within one table: every classifier and
// container handed to the range analysis must be declared in tab, after or
// before Install. A handle from another table may collide with a builtin
// index and be taken for the builtin.
func Install(tab *symbols.Table) *Builtins {
	b := &Builtins{
		Table:    tab,
		Registry: RangeRegistry(),
		elements: make(map[symbols.ID]symbols.PrimitiveKind),
	}
	var ids []symbols.ID
	for _, k := range symbols.PrimitiveKinds() {
		id := tab.Declare(symbols.KindPrimitive, Package+"."+ElementClassName(k))
		b.elements[id] = k
		ids = append(ids, id, tab.Declare(symbols.KindClass, RangeClassName(k)))
	}
	b.boolean = tab.Declare(symbols.KindPrimitive, Package+"."+BooleanName)
	ids = append(ids, b.boolean)
	for _, name := range []string{AnyName, NumberName, StringName} {
		ids = append(ids, tab.Declare(symbols.KindClass, Package+"."+name))
	}
	b.Scope = symbols.NewScope(tab, ids...)
	return b
}

var (
	defaultOnce     sync.Once
	defaultBuiltins *Builtins
)

// Default returns builtins installed in a process-wide table, created exactly
// once on first use. User declarations analysed against Default must be
// declared in Default().Table, as for Install.
func Default() *Builtins {
	defaultOnce.Do(func() {
		defaultBuiltins = Install(symbols.NewTable())
	})
	return defaultBuiltins
}

// Class returns the builtin class with the given simple name, or NoID.
func (b *Builtins) Class(name string) symbols.ID {
	id, _ := b.Scope.Lookup(name)
	return id
}

// Type returns the non-null type of the builtin class with the given simple
// name, or nil if there is no such class.
func (b *Builtins) Type(name string) *symbols.ResolvedType {
	sym := b.Table.Symbol(b.Class(name))
	if sym == nil {
		return nil
	}
	return &symbols.ResolvedType{FqName: sym.FqName(), Classifier: sym.ID}
}

// RangeType returns the non-null range type over kind k.
func (b *Builtins) RangeType(k symbols.PrimitiveKind) *symbols.ResolvedType {
	_, name := symbols.SplitFqName(RangeClassName(k))
	return b.Type(name)
}

// ElementKind returns the kind of the primitive class id.
// Boolean and non-primitive classes have no element kind.
func (b *Builtins) ElementKind(id symbols.ID) (symbols.PrimitiveKind, bool) {
	k, ok := b.elements[id]
	return k, ok
}

// IsPrimitiveNumber reports whether id is a primitive class other than
// Boolean. Char counts as a primitive number.
func (b *Builtins) IsPrimitiveNumber(id symbols.ID) bool {
	return b.IsPrimitive(id) && id != b.boolean
}

// IsPrimitive reports whether id is any primitive class, Boolean included.
func (b *Builtins) IsPrimitive(id symbols.ID) bool {
	if id == b.boolean {
		return true
	}
	_, ok := b.elements[id]
	return ok
}
