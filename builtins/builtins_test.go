package builtins

import (
	"testing"

	"github.com/nickng/rangeopt/symbols"
)

// Tests that every primitive kind maps back from its range type name.
func TestRegistryRoundTrip(t *testing.T) {
	r := RangeRegistry()
	for _, k := range symbols.PrimitiveKinds() {
		got, ok := r.Lookup(RangeClassName(k))
		if !ok {
			t.Errorf("%s not registered for %s", RangeClassName(k), k)
			continue
		}
		if got != k {
			t.Errorf("registry lookup of %s\nwant: %s\ngot: %s\n", RangeClassName(k), k, got)
		}
	}
	if want, got := 7, r.Len(); want != got {
		t.Errorf("wrong registry size\nwant: %d\ngot: %d\n", want, got)
	}
	for _, name := range []string{"lang.BooleanRange", "IntRange", "app.IntRange", "lang.Progression", ""} {
		if k, ok := r.Lookup(name); ok {
			t.Errorf("%q should not be registered, got %s", name, k)
		}
	}
	if RangeRegistry() != r {
		t.Errorf("range registry must be built once")
	}
}

func TestRangeClassNames(t *testing.T) {
	tests := []struct {
		kind symbols.PrimitiveKind
		want string
	}{
		{symbols.Int8, "lang.ByteRange"},
		{symbols.Int16, "lang.ShortRange"},
		{symbols.Int32, "lang.IntRange"},
		{symbols.Int64, "lang.LongRange"},
		{symbols.Char, "lang.CharRange"},
		{symbols.Float32, "lang.FloatRange"},
		{symbols.Float64, "lang.DoubleRange"},
	}
	for _, test := range tests {
		if got := RangeClassName(test.kind); test.want != got {
			t.Errorf("range class of %s\nwant: %s\ngot: %s\n", test.kind, test.want, got)
		}
	}
}

func TestInstall(t *testing.T) {
	tab := symbols.NewTable()
	b := Install(tab)
	for _, k := range symbols.PrimitiveKinds() {
		elem := b.Class(ElementClassName(k))
		if !elem.IsValid() {
			t.Errorf("primitive class %s not in builtin scope", ElementClassName(k))
			continue
		}
		if got, ok := b.ElementKind(elem); !ok || got != k {
			t.Errorf("element kind of %s\nwant: %s\ngot: %s (%t)\n", ElementClassName(k), k, got, ok)
		}
		typ := b.RangeType(k)
		if typ == nil {
			t.Errorf("range type of %s not in builtin scope", k)
			continue
		}
		if want, got := RangeClassName(k), typ.FqName; want != got {
			t.Errorf("wrong range type name\nwant: %s\ngot: %s\n", want, got)
		}
		if typ.Nullable {
			t.Errorf("builtin range type %s should not be nullable", typ)
		}
	}
	if b.Type("NoSuchClass") != nil {
		t.Errorf("unknown class should not have a type")
	}
}

func TestPrimitiveNumber(t *testing.T) {
	tab := symbols.NewTable()
	b := Install(tab)
	user := tab.Declare(symbols.KindClass, "app.Int")

	tests := []struct {
		name      string
		id        symbols.ID
		number    bool
		primitive bool
	}{
		{"Int", b.Class("Int"), true, true},
		{"Double", b.Class("Double"), true, true},
		{"Char", b.Class("Char"), true, true},
		{"Boolean", b.Class(BooleanName), false, true},
		{"String", b.Class(StringName), false, false},
		{"IntRange", b.Class("IntRange"), false, false},
		{"User Int", user, false, false},
		{"None", symbols.NoID, false, false},
	}
	for _, test := range tests {
		if got := b.IsPrimitiveNumber(test.id); test.number != got {
			t.Errorf("%s: IsPrimitiveNumber = %t, want %t", test.name, got, test.number)
		}
		if got := b.IsPrimitive(test.id); test.primitive != got {
			t.Errorf("%s: IsPrimitive = %t, want %t", test.name, got, test.primitive)
		}
	}
}

// Tests user declarations sharing the builtins' table never resolve to a
// builtin, whether declared before or after Install.
func TestInstallSharedTable(t *testing.T) {
	tab := symbols.NewTable()
	before := tab.Declare(symbols.KindClass, "lang.IntRange")
	b := Install(tab)
	after := tab.Declare(symbols.KindPrimitive, "lang.Int")

	if id := b.Class("IntRange"); id == before || !id.IsValid() {
		t.Errorf("IntRange should resolve to the builtin, got #%d (user #%d)", id, before)
	}
	if id := b.Class("Int"); id == after || !id.IsValid() {
		t.Errorf("Int should resolve to the builtin, got #%d (user #%d)", id, after)
	}
	for _, id := range []symbols.ID{before, after} {
		if b.IsPrimitive(id) {
			t.Errorf("user declaration %s should not be primitive", tab.Symbol(id))
		}
	}
	// Element and range class per kind, Boolean, Any, Number, String, and the
	// two user declarations.
	if want, got := 2*b.Registry.Len()+4+2, tab.Len(); want != got {
		t.Errorf("table size\nwant: %d\ngot: %d\n", want, got)
	}
}

func TestDefaultOnce(t *testing.T) {
	if Default() != Default() {
		t.Errorf("Default should return the same builtins")
	}
	if Default().Table.Len() == 0 {
		t.Errorf("default table should contain builtins")
	}
}
