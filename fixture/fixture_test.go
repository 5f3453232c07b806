package fixture

import (
	"strings"
	"testing"

	"github.com/nickng/rangeopt/rangeloop"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

const infix = `infix range over Int
-- src --
(namespace app
  (fun main
    (for i (binary :type lang.IntRange :target lang.Int.rangeTo (int 1) .. (int 10)))))
-- want --
i = 1; (i<=10); i = i + 1
`

func firstLoop(t *testing.T, f *Fixture) *syntax.ForExpr {
	t.Helper()
	var loop *syntax.ForExpr
	for _, root := range f.Roots {
		syntax.Inspect(root, func(n syntax.Node) bool {
			if l, ok := n.(*syntax.ForExpr); ok && loop == nil {
				loop = l
			}
			return loop == nil
		})
	}
	if loop == nil {
		t.Fatalf("no loop in fixture %s", f.Name)
	}
	return loop
}

func TestParse(t *testing.T) {
	f, err := Parse("infix.txtar", []byte(infix))
	if err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	if want, got := "infix range over Int", f.Comment; want != got {
		t.Errorf("Comment: want %q got %q", want, got)
	}
	if want, got := 1, len(f.Roots); want != got {
		t.Fatalf("Roots: want %d got %d", want, got)
	}
	if want, got := []string{"i = 1; (i<=10); i = i + 1"}, f.Want; len(got) != 1 || got[0] != want[0] {
		t.Errorf("Want: want %q got %q", want, got)
	}

	ns, ok := f.Roots[0].(*syntax.NamespaceBody)
	if !ok {
		t.Fatalf("root: want *syntax.NamespaceBody got %T", f.Roots[0])
	}
	if want, got := "app", ns.Name; want != got {
		t.Errorf("namespace: want %s got %s", want, got)
	}
	loop := firstLoop(t, f)
	if want, got := "main", syntax.EnclosingFunc(loop).DeclName(); want != got {
		t.Errorf("enclosing function: want %s got %s", want, got)
	}
	if want, got := "infix.txtar:src:3:5", f.Fset.Position(loop.Pos()).String(); want != got {
		t.Errorf("loop position: want %s got %s", want, got)
	}
	if want, got := "1..10", loop.Range.String(); want != got {
		t.Errorf("range: want %s got %s", want, got)
	}
}

func TestParseAnnotations(t *testing.T) {
	f, err := Parse("infix.txtar", []byte(infix))
	if err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	loop := firstLoop(t, f)
	typ, err := f.Resolver.TypeOf(loop.Range)
	if err != nil {
		t.Fatalf("range has no type: %v", err)
	}
	if want, got := "lang.IntRange", typ.String(); want != got {
		t.Errorf("type: want %s got %s", want, got)
	}
	if want, got := f.Builtins.Class("IntRange"), typ.Classifier; want != got {
		t.Errorf("classifier: want #%d got #%d", want, got)
	}

	bin := loop.Range.(*syntax.BinaryExpr)
	target, ok := f.Resolver.CallTarget(bin.Op)
	if !ok {
		t.Fatalf("operator %s has no call target", bin.Op)
	}
	if want, got := "rangeTo", target.Name; want != got {
		t.Errorf("target name: want %s got %s", want, got)
	}
	if want, got := f.Builtins.Class("Int"), target.Container; want != got {
		t.Errorf("target container: want #%d got #%d", want, got)
	}
	if want, got := 1, target.Arity; want != got {
		t.Errorf("target arity: want %d got %d", want, got)
	}
	if _, ok := f.Resolver.CallTarget(bin.X); ok {
		t.Errorf("literal %s should have no call target", bin.X)
	}
	if _, err := f.Resolver.TypeOf(bin.X); errors.Cause(err) != ErrNoType {
		t.Errorf("unannotated literal: want %v got %v", ErrNoType, err)
	}

	if res := f.Analyser().Analyse(loop); !res.OK() {
		t.Errorf("loop should be lowered, got %s", res.Reason)
	}
}

func TestParseQualifiedCall(t *testing.T) {
	const archive = `
-- src --
(for c (paren (qualified :type lang.CharRange (char 'a')
  (call :target lang.Char.rangeTo (name rangeTo) (char 'z')))))
`
	f, err := Parse("call.txtar", []byte(archive))
	if err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	loop := firstLoop(t, f)
	if want, got := "('a'.rangeTo('z'))", loop.Range.String(); want != got {
		t.Errorf("range: want %s got %s", want, got)
	}
	// The parenthesised range takes the type of its operand.
	typ, err := f.Resolver.TypeOf(loop.Range)
	if err != nil {
		t.Fatalf("range has no type: %v", err)
	}
	if want, got := "lang.CharRange", typ.String(); want != got {
		t.Errorf("type: want %s got %s", want, got)
	}
	if res := f.Analyser().Analyse(loop); !res.OK() {
		t.Errorf("loop should be lowered, got %s", res.Reason)
	}
	if res := f.Analyser(rangeloop.WithCharRanges(false)).Analyse(loop); res.Reason != rangeloop.NotBuiltinRangeTo {
		t.Errorf("want %s got %s", rangeloop.NotBuiltinRangeTo, res.Reason)
	}
}

func TestParseDecls(t *testing.T) {
	const archive = `
-- src --
(for i (binary :type lang.IntRange :target lang.Int.rangeTo (int 1) .. (int 10)))
(for v (name :type app.Vec? vs))
-- decls --
(module app)
(class app.Vec)
(class lang.IntRange)
`
	f, err := Parse("decls.txtar", []byte(archive))
	if err != nil {
		t.Fatalf("cannot parse fixture: %v", err)
	}
	if want, got := 2, len(f.Roots); want != got {
		t.Fatalf("Roots: want %d got %d", want, got)
	}
	shadowed, err := f.Resolver.TypeOf(f.Roots[0].(*syntax.ForExpr).Range)
	if err != nil {
		t.Fatalf("range has no type: %v", err)
	}
	if shadowed.Classifier == f.Builtins.Class("IntRange") {
		t.Errorf("declared lang.IntRange should not be the builtin #%d", shadowed.Classifier)
	}
	vec, err := f.Resolver.TypeOf(f.Roots[1].(*syntax.ForExpr).Range)
	if err != nil {
		t.Fatalf("range has no type: %v", err)
	}
	if !vec.Nullable {
		t.Errorf("%s should be nullable", vec)
	}
	if want, got := "app.Vec", vec.FqName; want != got {
		t.Errorf("type: want %s got %s", want, got)
	}
	if res := f.Analyser().Analyse(f.Roots[0].(*syntax.ForExpr)); res.Reason != rangeloop.NotRange {
		t.Errorf("shadowed range: want %s got %s", rangeloop.NotRange, res.Reason)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		want    string
	}{
		{"unknown form", "-- src --\n(frob 1)\n", "unknown expression form"},
		{"unknown type", "-- src --\n(name :type app.Nope x)\n", "unknown type app.Nope"},
		{"unknown container", "-- src --\n(binary :target app.Nope.rangeTo (int 1) .. (int 2))\n", "unknown container app.Nope"},
		{"unknown section", "-- other --\n", "unknown section"},
		{"unclosed list", "-- src --\n(for i (int 1)\n", "unclosed list"},
		{"unexpected close", "-- src --\n)\n", "unexpected )"},
		{"target on literal", "-- src --\n(int :target lang.Int.rangeTo 1)\n", "cannot have a call target"},
		{"bad arity", "-- src --\n(binary :arity x (int 1) .. (int 2))\n", "bad arity"},
		{"missing operand", "-- src --\n(binary (int 1) ..)\n", "wants more operands"},
		{"unknown annotation", "-- src --\n(int :kind x 1)\n", "unknown annotation"},
		{"unknown declaration", "-- decls --\n(struct app.S)\n", "unknown declaration"},
		{"for without param", "-- src --\n(for)\n", "want (for param"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.txtar", []byte(tt.archive))
			if err == nil {
				t.Fatalf("want error containing %q, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("want error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.txtar"); err == nil {
		t.Error("want error loading a missing fixture")
	}
}
