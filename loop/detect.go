package loop

import (
	"context"

	"github.com/fatih/color"
	"github.com/nickng/rangeopt/internal/logger"
	"github.com/nickng/rangeopt/rangeloop"
	"github.com/nickng/rangeopt/syntax"
	"golang.org/x/sync/errgroup"
)

// Detector finds the for loops of a syntax tree and records the lowering
// decision of each.
type Detector struct {
	analyser *rangeloop.Analyser
	scope    *Stack
	loopInfo map[*syntax.ForExpr]*Info // Quick lookup by loop.
	loops    []*Info                   // Loops in source order.

	*logger.Logger
}

var _ logger.LogSetter = (*Detector)(nil)

// NewDetector returns a Detector asking a for lowering decisions.
func NewDetector(a *rangeloop.Analyser) *Detector {
	d := &Detector{
		analyser: a,
		scope:    NewStack(),
		loopInfo: make(map[*syntax.ForExpr]*Info),
	}
	d.SetLogger(logger.Nop())
	return d
}

// SetLogger sets logger for Detector.
func (d *Detector) SetLogger(l *logger.Logger) {
	d.Logger = l.For(color.GreenString("loop "))
}

// Detect analyses every loop under root. Declaration containers are walked
// one declaration at a time.
func (d *Detector) Detect(root syntax.Node) {
	if c, ok := root.(syntax.DeclarationContainer); ok {
		for _, decl := range c.Declarations() {
			d.Logger.Debugf("%s Enter %s", d.Logger.Module(), decl.DeclName())
			d.Detect(decl)
		}
		return
	}

	var path []syntax.Node // Nodes entered but not yet exited.
	syntax.Inspect(root, func(n syntax.Node) bool {
		if n == nil { // Exit.
			exited := path[len(path)-1]
			path = path[:len(path)-1]
			if _, ok := exited.(*syntax.ForExpr); ok {
				d.scope.Pop()
			}
			return true
		}
		path = append(path, n)
		if loop, ok := n.(*syntax.ForExpr); ok {
			d.enter(loop)
		}
		return true
	})
}

// enter records loop and pushes it on the loop stack.
func (d *Detector) enter(loop *syntax.ForExpr) {
	if _, exists := d.loopInfo[loop]; exists {
		d.scope.Push(d.loopInfo[loop]) // Keep push/pop balanced on re-detection.
		return
	}
	var info *Info
	if syntax.IsNil(loop.Range) {
		d.Logger.Warnf("%s Loop at %d has no range expression", d.Logger.Module(), loop.Pos())
		info = New(loop, rangeloop.Result{Reason: rangeloop.NoMatch})
	} else {
		info = New(loop, d.analyser.Analyse(loop))
	}
	if parent := d.scope.Top(); parent != nil {
		info.parent = parent
		info.depth = parent.depth + 1
	}
	d.scope.Push(info)
	d.loopInfo[loop] = info
	d.loops = append(d.loops, info)
	d.Logger.Debugf("%s #%d depth %d: %s", d.Logger.Module(), len(d.loops)-1, info.depth, info)
}

// ForLoopAt returns the information recorded for loop, or nil.
func (d *Detector) ForLoopAt(loop *syntax.ForExpr) *Info {
	return d.loopInfo[loop]
}

// Loops returns every detected loop, in source order.
func (d *Detector) Loops() []*Info {
	return d.loops
}

// Lowered returns the number of detected loops lowered to counted loops.
func (d *Detector) Lowered() int {
	n := 0
	for _, info := range d.loops {
		if info.ParamsOK() {
			n++
		}
	}
	return n
}

// DetectAll runs a Detector on each root concurrently. Analyses of distinct
// trees are independent; the returned detectors are in the order of roots.
// DetectAll stops early if ctx is cancelled.
func DetectAll(ctx context.Context, a *rangeloop.Analyser, roots ...syntax.Node) ([]*Detector, error) {
	detectors := make([]*Detector, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d := NewDetector(a)
			d.SetLogger(a.Logger)
			d.Detect(root)
			detectors[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detectors, nil
}
