package symbols

import (
	"bytes"
	"fmt"
)

// ResolvedType is a nominal type as computed by the type resolver.
type ResolvedType struct {
	FqName     string          // Qualified name of the type constructor.
	Nullable   bool            // Whether the type admits null.
	Classifier ID              // Declaring classifier.
	Args       []*ResolvedType // Type arguments, if any.
}

func (t *ResolvedType) String() string {
	if t == nil {
		return "<nil>"
	}
	var buf bytes.Buffer
	buf.WriteString(t.FqName)
	if len(t.Args) > 0 {
		buf.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(arg.String())
		}
		buf.WriteByte('>')
	}
	if t.Nullable {
		buf.WriteByte('?')
	}
	return buf.String()
}

// CallableTarget is the callable selected by overload resolution for a call
// or operator site.
type CallableTarget struct {
	Name      string // Simple name of the callable.
	Container ID     // Containing class or module.
	Arity     int    // Number of value parameters.
}

func (c *CallableTarget) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s/%d in #%d", c.Name, c.Arity, c.Container)
}

// PrimitiveKind enumerates the primitive element types a counted loop can
// iterate over.
type PrimitiveKind uint8

const (
	Int8 PrimitiveKind = iota
	Int16
	Int32
	Int64
	Char
	Float32
	Float64

	numPrimitiveKinds = iota
)

var primitiveKindNames = [...]string{
	Int8:    "Int8",
	Int16:   "Int16",
	Int32:   "Int32",
	Int64:   "Int64",
	Char:    "Char",
	Float32: "Float32",
	Float64: "Float64",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveKindNames) {
		return primitiveKindNames[k]
	}
	return fmt.Sprintf("PrimitiveKind(%d)", k)
}

// IsIntegral reports whether values of kind k are integers (including Char
// code points), i.e. whether a counted loop over k has a finite trip count.
func (k PrimitiveKind) IsIntegral() bool {
	return k <= Char
}

// PrimitiveKinds returns every primitive kind, in declaration order.
func PrimitiveKinds() []PrimitiveKind {
	kinds := make([]PrimitiveKind, numPrimitiveKinds)
	for i := range kinds {
		kinds[i] = PrimitiveKind(i)
	}
	return kinds
}
