package fixture

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/nickng/rangeopt/builtins"
	"github.com/nickng/rangeopt/symbols"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

// builder turns s-expressions into syntax nodes and records annotations.
type builder struct {
	fset     *token.FileSet
	builtins *builtins.Builtins
	decls    map[string]symbols.ID // Fixture declarations by qualified name.
	resolver *Resolver
}

// annotations of one expression form.
type annotations struct {
	typ    string
	target string
	arity  int
}

func (b *builder) errorf(pos token.Pos, format string, args ...interface{}) error {
	return errors.Errorf("%s: "+format, append([]interface{}{b.fset.Position(pos)}, args...)...)
}

// declare reads (class pkg.Name) and (module pkg) forms.
func (b *builder) declare(e *sexpr) error {
	if len(e.list) != 2 || e.list[1].isList {
		return b.errorf(e.pos, "want (%s name)", e.head())
	}
	var kind symbols.Kind
	switch e.head() {
	case "class":
		kind = symbols.KindClass
	case "module":
		kind = symbols.KindModule
	default:
		return b.errorf(e.pos, "unknown declaration %q", e.head())
	}
	fqName := e.list[1].atom
	b.decls[fqName] = b.builtins.Table.Declare(kind, fqName)
	return nil
}

// lookup resolves a qualified name against the fixture declarations first,
// then the builtins.
func (b *builder) lookup(fqName string) (symbols.ID, bool) {
	if id, ok := b.decls[fqName]; ok {
		return id, true
	}
	pkg, name := symbols.SplitFqName(fqName)
	if pkg != builtins.Package {
		return symbols.NoID, false
	}
	id := b.builtins.Class(name)
	return id, id.IsValid()
}

// node builds a top-level or statement form.
func (b *builder) node(e *sexpr) (syntax.Node, error) {
	switch e.head() {
	case "namespace":
		if len(e.list) < 2 {
			return nil, b.errorf(e.pos, "want (namespace name decl...)")
		}
		ns := &syntax.NamespaceBody{Span: syntax.MakeSpan(e.pos, e.end), Name: e.list[1].atom}
		decls, err := b.declList(e.list[2:])
		if err != nil {
			return nil, err
		}
		ns.Decls = decls
		return ns, nil
	case "fun", "class":
		return b.decl(e)
	case "for":
		return b.forExpr(e)
	}
	return b.expr(e)
}

func (b *builder) declList(es []*sexpr) ([]syntax.Decl, error) {
	var decls []syntax.Decl
	for _, e := range es {
		decl, err := b.decl(e)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func (b *builder) decl(e *sexpr) (syntax.Decl, error) {
	if len(e.list) < 2 || e.list[1].isList {
		return nil, b.errorf(e.pos, "want (%s name ...)", e.head())
	}
	name := syntax.NewIdent(e.list[1].pos, e.list[1].atom)
	switch e.head() {
	case "fun":
		body, err := b.body(e.list[2:])
		if err != nil {
			return nil, err
		}
		return &syntax.FunDecl{Span: syntax.MakeSpan(e.pos, e.end), Name: name, Body: body}, nil
	case "class":
		decls, err := b.declList(e.list[2:])
		if err != nil {
			return nil, err
		}
		return &syntax.ClassDecl{Span: syntax.MakeSpan(e.pos, e.end), Name: name, Decls: decls}, nil
	}
	return nil, b.errorf(e.pos, "not a declaration: %q", e.head())
}

func (b *builder) body(es []*sexpr) ([]syntax.Node, error) {
	var body []syntax.Node
	for _, e := range es {
		n, err := b.node(e)
		if err != nil {
			return nil, err
		}
		body = append(body, n)
	}
	return body, nil
}

// forExpr builds (for param range stmt...). (for param) has no range.
func (b *builder) forExpr(e *sexpr) (*syntax.ForExpr, error) {
	if len(e.list) < 2 || e.list[1].isList {
		return nil, b.errorf(e.pos, "want (for param range body...)")
	}
	param := syntax.NewIdent(e.list[1].pos, e.list[1].atom)
	var rng syntax.Expr
	var body []syntax.Node
	if len(e.list) > 2 {
		var err error
		if rng, err = b.expr(e.list[2]); err != nil {
			return nil, err
		}
		if body, err = b.body(e.list[3:]); err != nil {
			return nil, err
		}
	}
	return syntax.NewForExpr(e.pos, param, rng, body, e.end), nil
}

// annotate splits the :key value pairs following the head of e from the
// remaining operands.
func (b *builder) annotate(e *sexpr) (annotations, []*sexpr, error) {
	ann := annotations{arity: 1}
	rest := e.list[1:]
	for len(rest) >= 2 && !rest[0].isList && strings.HasPrefix(rest[0].atom, ":") {
		key, val := rest[0].atom, rest[1]
		if val.isList {
			return ann, nil, b.errorf(val.pos, "annotation %s wants an atom", key)
		}
		switch key {
		case ":type":
			ann.typ = val.atom
		case ":target":
			ann.target = val.atom
		case ":arity":
			n, err := strconv.Atoi(val.atom)
			if err != nil {
				return ann, nil, b.errorf(val.pos, "bad arity %s", val.atom)
			}
			ann.arity = n
		default:
			return ann, nil, b.errorf(rest[0].pos, "unknown annotation %s", key)
		}
		rest = rest[2:]
	}
	return ann, rest, nil
}

// expr builds an expression form and records its annotations.
func (b *builder) expr(e *sexpr) (syntax.Expr, error) {
	if !e.isList {
		return syntax.NewIdent(e.pos, e.atom), nil // Bare atom is a name.
	}
	ann, args, err := b.annotate(e)
	if err != nil {
		return nil, err
	}
	arg := func(i int) (syntax.Expr, error) {
		if i >= len(args) {
			return nil, b.errorf(e.pos, "(%s) wants more operands", e.head())
		}
		return b.expr(args[i])
	}
	atom := func(i int) (*sexpr, error) {
		if i >= len(args) || args[i].isList {
			return nil, b.errorf(e.pos, "(%s) wants an atom", e.head())
		}
		return args[i], nil
	}

	var x syntax.Expr
	ref := syntax.Expr(nil) // Node carrying the :target annotation.
	switch head := e.head(); head {
	case "int", "float", "char", "string":
		a, err := atom(0)
		if err != nil {
			return nil, err
		}
		x = syntax.NewBasicLit(a.pos, litKinds[head], a.atom)
	case "name":
		a, err := atom(0)
		if err != nil {
			return nil, err
		}
		x = syntax.NewIdent(a.pos, a.atom)
		ref = x
	case "paren":
		inner, err := arg(0)
		if err != nil {
			return nil, err
		}
		x = syntax.NewParenExpr(inner)
	case "binary":
		left, err := arg(0)
		if err != nil {
			return nil, err
		}
		op, err := atom(1)
		if err != nil {
			return nil, err
		}
		right, err := arg(2)
		if err != nil {
			return nil, err
		}
		opRef := syntax.NewOperationRef(op.pos, op.atom)
		x, ref = syntax.NewBinaryExpr(left, opRef, right), opRef
	case "qualified", "safe":
		recv, err := arg(0)
		if err != nil {
			return nil, err
		}
		sel, err := arg(1)
		if err != nil {
			return nil, err
		}
		x = syntax.NewQualifiedExpr(recv, sel, head == "safe")
	case "call":
		callee, err := arg(0)
		if err != nil {
			return nil, err
		}
		var params []syntax.Expr
		for i := 1; i < len(args); i++ {
			p, err := arg(i)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		x, ref = syntax.NewCallExpr(callee, params, e.end-1), callee
	default:
		return nil, b.errorf(e.pos, "unknown expression form %q", head)
	}

	if ann.typ != "" {
		t, err := b.typ(e.pos, ann.typ)
		if err != nil {
			return nil, err
		}
		b.resolver.types[x] = t
	}
	if ann.target != "" {
		if ref == nil {
			return nil, b.errorf(e.pos, "(%s) cannot have a call target", e.head())
		}
		c, err := b.target(e.pos, ann.target, ann.arity)
		if err != nil {
			return nil, err
		}
		b.resolver.calls[ref] = c
	}
	return x, nil
}

var litKinds = map[string]syntax.LitKind{
	"int":    syntax.IntLit,
	"float":  syntax.FloatLit,
	"char":   syntax.CharLit,
	"string": syntax.StringLit,
}

// typ resolves a type reference such as lang.IntRange or app.Vec?.
func (b *builder) typ(pos token.Pos, ref string) (*symbols.ResolvedType, error) {
	fqName := strings.TrimSuffix(ref, "?")
	var t symbols.ResolvedType
	if id, ok := b.decls[fqName]; ok {
		t = symbols.ResolvedType{FqName: fqName, Classifier: id}
	} else if pkg, name := symbols.SplitFqName(fqName); pkg == builtins.Package && b.builtins.Type(name) != nil {
		t = *b.builtins.Type(name)
	} else {
		return nil, b.errorf(pos, "unknown type %s", fqName)
	}
	t.Nullable = fqName != ref
	return &t, nil
}

// target resolves a call target reference such as lang.Int.rangeTo.
func (b *builder) target(pos token.Pos, ref string, arity int) (*symbols.CallableTarget, error) {
	container, name := symbols.SplitFqName(ref)
	id, ok := b.lookup(container)
	if !ok {
		return nil, b.errorf(pos, "unknown container %s of %s", container, name)
	}
	return &symbols.CallableTarget{Name: name, Container: id, Arity: arity}, nil
}
