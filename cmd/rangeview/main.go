// Command rangeview prints the lowering decision of every for loop in loop
// fixture files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/nickng/rangeopt/fixture"
	"github.com/nickng/rangeopt/internal/logger"
	"github.com/nickng/rangeopt/loop"
	"github.com/nickng/rangeopt/rangeloop"
)

const (
	Usage = `rangeview is a tool for viewing which range loops are lowered to counted loops.

Usage:

  rangeview [options] fixture.txtar [fixtures.txtar...]

Options:

`
)

var (
	logPath    string
	outPath    string
	charRanges bool
	noColor    bool

	out io.Writer
)

func init() {
	flag.StringVar(&logPath, "log", "", "Specify analysis log file (use '-' for stderr)")
	flag.StringVar(&outPath, "out", "", "Specify output file (default: stdout)")
	flag.BoolVar(&charRanges, "char-ranges", true, "Lower loops over Char ranges")
	flag.BoolVar(&noColor, "nocolor", false, "Disable coloured output")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, Usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	l := logger.Nop()
	switch logPath {
	case "":
	case "-":
		l = logger.New()
	default:
		l = logger.NewFile(logPath)
	}
	defer l.Sync()
	if noColor {
		color.NoColor = true
	}

	switch outPath {
	case "":
		out = os.Stdout
	default:
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Cannot create output file %s: %v", outPath, err)
		}
		defer f.Close()
		out = f
	}

	var total, lowered int
	for _, path := range flag.Args() {
		f, err := fixture.Load(path)
		if err != nil {
			log.Fatal("Cannot load fixture:", err)
		}
		l.Debugf("%s: %d declarations, %d range types", path, f.Builtins.Table.Len(), f.Builtins.Registry.Len())
		a := f.Analyser(rangeloop.WithCharRanges(charRanges))
		a.SetLogger(l)
		detectors, err := loop.DetectAll(context.Background(), a, f.Roots...)
		if err != nil {
			log.Fatal("Detection failed:", err)
		}
		for _, d := range detectors {
			for _, info := range d.Loops() {
				verdict := color.YellowString(info.Result.Reason.String())
				if info.ParamsOK() {
					verdict = color.GreenString(info.Result.Descriptor.String())
				}
				fmt.Fprintf(out, "%s: %s\t%s\n", f.Fset.Position(info.Loop.Pos()), info, verdict)
			}
			total += len(d.Loops())
			lowered += d.Lowered()
		}
	}
	fmt.Fprintf(out, "%d/%d loops lowered\n", lowered, total)
}
