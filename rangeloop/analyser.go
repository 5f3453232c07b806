package rangeloop

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nickng/rangeopt/builtins"
	"github.com/nickng/rangeopt/internal/logger"
	"github.com/nickng/rangeopt/symbols"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

// TypeResolver gives the static type of an expression.
// It returns an error if type analysis did not reach e.
type TypeResolver interface {
	TypeOf(e syntax.Expr) (*symbols.ResolvedType, error)
}

// CallResolver gives the callable an operator or callee reference was
// resolved to by overload resolution.
type CallResolver interface {
	CallTarget(ref syntax.Expr) (*symbols.CallableTarget, bool)
}

// Reason tells why a loop was or was not lowered.
type Reason uint8

const (
	Lowered           Reason = iota // counted loop
	NoMatch                         // range is not a.f(b) or a OP b
	UnresolvedType                  // type of range unknown
	NotRange                        // not a builtin primitive range type
	UnresolvedCall                  // operator not resolved to a callable
	NotBuiltinRangeTo               // operator is not the builtin rangeTo
)

var reasonNames = [...]string{
	Lowered:           "lowered",
	NoMatch:           "no range call",
	UnresolvedType:    "unresolved type",
	NotRange:          "not a primitive range",
	UnresolvedCall:    "unresolved call",
	NotBuiltinRangeTo: "not builtin rangeTo",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// Descriptor describes a loop lowerable to a counted loop: the loop runs once
// for each value of the closed interval [Left, Right] in ascending order.
type Descriptor struct {
	Kind  symbols.PrimitiveKind
	Left  syntax.Expr
	Right syntax.Expr
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s [%s, %s]", d.Kind, d.Left, d.Right)
}

// Result is the lowering decision for a loop.
type Result struct {
	Descriptor *Descriptor // Non-nil iff Reason is Lowered.
	Reason     Reason
}

// OK returns true if the loop can be lowered to a counted loop.
func (r Result) OK() bool { return r.Reason == Lowered && r.Descriptor != nil }

func fail(reason Reason) Result { return Result{Reason: reason} }

// Option configures an Analyser.
type Option func(*Analyser)

// WithCharRanges sets whether loops over Char ranges are lowered.
// They are by default.
func WithCharRanges(enabled bool) Option {
	return func(a *Analyser) { a.charRanges = enabled }
}

// Analyser makes lowering decisions for loops of one program.
// It holds no per-loop state and is safe for concurrent use once
// configured.
type Analyser struct {
	types TypeResolver
	calls CallResolver

	oracle     *Oracle
	guard      *Guard
	charRanges bool

	*logger.Logger
}

// New returns an Analyser recognising the builtins b, resolving types and
// calls with the given resolvers.
func New(b *builtins.Builtins, types TypeResolver, calls CallResolver, opts ...Option) *Analyser {
	a := &Analyser{
		types:      types,
		calls:      calls,
		oracle:     NewOracle(b),
		charRanges: true,
		Logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.guard = NewGuard(b, a.charRanges)
	a.SetLogger(a.Logger)
	return a
}

// SetLogger sets logger for Analyser.
func (a *Analyser) SetLogger(l *logger.Logger) {
	a.Logger = l.For(color.CyanString("range"))
}

// Analyse decides whether loop can be lowered to a counted loop.
// It panics if loop has no range expression.
func (a *Analyser) Analyse(loop *syntax.ForExpr) Result {
	if loop == nil || syntax.IsNil(loop.Range) {
		panic(errors.WithStack(ErrNoLoopRange))
	}
	call, ok := Match(loop.Range)
	if !ok {
		a.Debugf("%s %s: %s", a.Module(), loop.Range, NoMatch)
		return fail(NoMatch)
	}

	// The type of the whole range, not of its bounds.
	typ, err := a.types.TypeOf(loop.Range)
	if err != nil {
		a.Debugf("%s %s: %v", a.Module(), loop.Range, errors.Wrap(err, UnresolvedType.String()))
		return fail(UnresolvedType)
	}
	kind, ok := a.oracle.ElementKind(typ)
	if !ok {
		a.Debugf("%s %s: %s (%s)", a.Module(), loop.Range, NotRange, typ)
		return fail(NotRange)
	}

	target, ok := a.calls.CallTarget(call.Op)
	if !ok {
		a.Debugf("%s %s: %s %s", a.Module(), loop.Range, UnresolvedCall, call.Op)
		return fail(UnresolvedCall)
	}
	if !a.guard.IsOptimizableRangeTo(target) {
		a.Debugf("%s %s: %s (%s)", a.Module(), loop.Range, NotBuiltinRangeTo, target)
		return fail(NotBuiltinRangeTo)
	}

	d := &Descriptor{Kind: kind, Left: call.Left, Right: call.Right}
	a.Debugf("%s %s: %s %s", a.Module(), loop.Range, Lowered, d)
	return Result{Descriptor: d, Reason: Lowered}
}
