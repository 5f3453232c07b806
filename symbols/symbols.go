// Package symbols holds the resolved-declaration view of a program: a table of
// declarations addressed by stable handles, nominal types referring to those
// declarations, and resolved call targets.
//
// Declarations are compared by handle, never by name. Two types with the same
// qualified name but different handles are different types; this is what lets
// the range analysis tell a builtin type from a user type that shadows it.
package symbols

import (
	"fmt"
	"strings"
	"sync"
)

// ID is a stable handle of a declaration in a Table.
type ID uint32

// NoID marks the absence of a declaration.
const NoID ID = 0

// IsValid reports whether id refers to a declared symbol.
func (id ID) IsValid() bool { return id != NoID }

// Kind is the category of a declaration.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClass        // user or library class
	KindPrimitive    // compiler-known primitive class
	KindModule       // package-level container of functions
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindPrimitive:
		return "primitive"
	case KindModule:
		return "module"
	}
	return "invalid"
}

// Symbol is a declaration: a classifier (class or primitive) or a module.
type Symbol struct {
	ID      ID
	Kind    Kind
	Package string // Dot-separated package path, e.g. "lang".
	Name    string // Simple name.
}

// FqName returns the fully qualified name of s.
func (s *Symbol) FqName() string {
	if s.Package == "" {
		return s.Name
	}
	return s.Package + "." + s.Name
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s %s#%d", s.Kind, s.FqName(), s.ID)
}

// Table is the canonical arena of declarations.
//
// Declare may be called concurrently with itself and with lookups; lookups
// return the same Symbol for a given ID for the lifetime of the Table.
type Table struct {
	mu   sync.RWMutex
	syms []*Symbol // syms[0] is unused so that NoID is never a valid index.
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{syms: []*Symbol{nil}}
}

// Declare adds a new declaration and returns its handle. Declaring the same
// qualified name twice yields two distinct symbols.
func (t *Table) Declare(kind Kind, fqName string) ID {
	pkg, name := SplitFqName(fqName)
	t.mu.Lock()
	defer t.mu.Unlock()
	id := ID(len(t.syms))
	t.syms = append(t.syms, &Symbol{ID: id, Kind: kind, Package: pkg, Name: name})
	return id
}

// Symbol returns the declaration for id, or nil if id is not in t.
func (t *Table) Symbol(id ID) *Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !id.IsValid() || int(id) >= len(t.syms) {
		return nil
	}
	return t.syms[id]
}

// Len returns the number of declarations in t.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.syms) - 1
}

// SplitFqName splits "a.b.C" into package "a.b" and simple name "C".
func SplitFqName(fqName string) (pkg, name string) {
	if i := strings.LastIndexByte(fqName, '.'); i >= 0 {
		return fqName[:i], fqName[i+1:]
	}
	return "", fqName
}

// Scope maps simple names to declarations.
type Scope struct {
	names map[string]ID
}

// NewScope returns a scope containing ids, keyed by their simple names in t.
// Later ids win on name collision.
func NewScope(t *Table, ids ...ID) *Scope {
	s := &Scope{names: make(map[string]ID, len(ids))}
	for _, id := range ids {
		if sym := t.Symbol(id); sym != nil {
			s.names[sym.Name] = id
		}
	}
	return s
}

// Lookup resolves a simple name within s.
func (s *Scope) Lookup(name string) (ID, bool) {
	id, ok := s.names[name]
	return id, ok
}
