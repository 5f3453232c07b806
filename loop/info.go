package loop

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/nickng/rangeopt/rangeloop"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
)

var ErrNotLiteral = errors.New("bound is not an integer literal")

// Info is a data structure to hold loop information: the loop, the lowering
// decision, and the enclosing loop if nested.
type Info struct {
	Loop   *syntax.ForExpr
	Result rangeloop.Result
	Func   string // Enclosing function name, empty at top level.

	parent *Info
	depth  int
}

// New returns loop information for loop with lowering decision res.
func New(loop *syntax.ForExpr, res rangeloop.Result) *Info {
	info := &Info{Loop: loop, Result: res}
	if fn := syntax.EnclosingFunc(loop); fn != nil {
		info.Func = fn.DeclName()
	}
	return info
}

// Parent returns the innermost enclosing loop, or nil.
func (i *Info) Parent() *Info { return i.parent }

// Depth returns the loop nesting depth, 0 for an outermost loop.
func (i *Info) Depth() int { return i.depth }

// ParamsOK returns true iff the loop is lowered to a counted loop, i.e.
// index, bounds and step are known.
func (i *Info) ParamsOK() bool {
	return i.Result.OK()
}

// index returns the name of the index variable.
func (i *Info) index() string {
	if i.Loop.Param == nil {
		return "_"
	}
	return i.Loop.Param.Name
}

// String renders a counted loop as init; cond; step, or the iterator
// fallback with the reason the loop was not lowered.
func (i *Info) String() string {
	var buf bytes.Buffer
	idx := i.index()
	if !i.ParamsOK() {
		rng := "<nil>"
		if !syntax.IsNil(i.Loop.Range) {
			rng = i.Loop.Range.String()
		}
		buf.WriteString(fmt.Sprintf("%s in %s [iterator: %s]", idx, rng, i.Result.Reason))
		return buf.String()
	}
	d := i.Result.Descriptor
	buf.WriteString(fmt.Sprintf("%s = %s; ", idx, d.Left))
	buf.WriteString(fmt.Sprintf("(%s<=%s); ", idx, d.Right))
	buf.WriteString(fmt.Sprintf("%s = %s + 1", idx, idx))
	return buf.String()
}

// TripCount returns the number of iterations of a counted loop whose bounds
// are both integer or character literals. The interval is closed, so 1..10
// runs 10 times and 10..1 runs 0 times.
func (i *Info) TripCount() (int64, error) {
	if !i.ParamsOK() {
		return 0, errors.Errorf("loop is not counted: %s", i.Result.Reason)
	}
	d := i.Result.Descriptor
	if !d.Kind.IsIntegral() {
		return 0, errors.Errorf("no trip count for %s loop", d.Kind)
	}
	lo, err := literalValue(d.Left)
	if err != nil {
		return 0, errors.Wrap(err, "left bound")
	}
	hi, err := literalValue(d.Right)
	if err != nil {
		return 0, errors.Wrap(err, "right bound")
	}
	if hi < lo {
		return 0, nil
	}
	n := uint64(hi) - uint64(lo)
	if n >= math.MaxInt64 {
		return 0, errors.Errorf("trip count of %s overflows", d)
	}
	return int64(n) + 1, nil
}

// literalValue returns the value of an integer or character literal.
func literalValue(e syntax.Expr) (int64, error) {
	lit, ok := syntax.Unparen(e).(*syntax.BasicLit)
	if !ok {
		return 0, errors.WithStack(ErrNotLiteral)
	}
	switch lit.Kind {
	case syntax.IntLit:
		v, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad integer literal %s", lit.Value)
		}
		return v, nil
	case syntax.CharLit:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return 0, errors.Wrapf(err, "bad character literal %s", lit.Value)
		}
		return int64([]rune(s)[0]), nil
	}
	return 0, errors.WithStack(ErrNotLiteral)
}
