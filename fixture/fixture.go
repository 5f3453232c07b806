// Package fixture reads loop fixtures: txtar archives holding a syntax tree
// written as s-expressions, annotated with the types and call targets an
// upstream resolver would have computed.
//
// Archive sections:
//
//	-- decls --   user declarations, (class pkg.Name) or (module pkg)
//	-- src --     syntax tree; every section named src* is a separate root
//	-- want --    expected rendering, one line per loop in source order
//
// Expression forms are (int V), (float V), (char V), (string V), (name X),
// (paren E), (binary L OP R), (qualified R S), (safe R S) and
// (call CALLEE ARG...). Any expression form may be followed by :type T
// (T? for a nullable type), and forms with an operator or callee by
// :target pkg.Class.fn and :arity N. Type and container names resolve to
// the fixture's declarations first, then to the builtins.
package fixture

import (
	"bufio"
	"bytes"
	"go/token"
	"strings"

	"github.com/nickng/rangeopt/builtins"
	"github.com/nickng/rangeopt/rangeloop"
	"github.com/nickng/rangeopt/symbols"
	"github.com/nickng/rangeopt/syntax"
	"github.com/pkg/errors"
	"golang.org/x/tools/txtar"
)

// Fixture is a loaded loop fixture.
type Fixture struct {
	Name     string
	Comment  string
	Fset     *token.FileSet
	Roots    []syntax.Node
	Want     []string
	Builtins *builtins.Builtins // Builtins of the fixture's own symbol table.
	Resolver *Resolver
}

// Load reads the fixture archive at path.
func Load(path string) (*Fixture, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture: %s", path)
	}
	return FromArchive(path, ar)
}

// Parse reads a fixture archive from data.
func Parse(name string, data []byte) (*Fixture, error) {
	return FromArchive(name, txtar.Parse(data))
}

// FromArchive builds a fixture from a parsed archive.
func FromArchive(name string, ar *txtar.Archive) (*Fixture, error) {
	f := &Fixture{
		Name:     name,
		Comment:  strings.TrimSpace(string(ar.Comment)),
		Fset:     token.NewFileSet(),
		Builtins: builtins.Install(symbols.NewTable()),
		Resolver: newResolver(),
	}
	b := &builder{
		fset:     f.Fset,
		builtins: f.Builtins,
		decls:    make(map[string]symbols.ID),
		resolver: f.Resolver,
	}
	// Declarations first, wherever the section is.
	for _, file := range ar.Files {
		if file.Name != "decls" {
			continue
		}
		exprs, err := f.read(name, file)
		if err != nil {
			return nil, err
		}
		for _, e := range exprs {
			if err := b.declare(e); err != nil {
				return nil, err
			}
		}
	}
	for _, file := range ar.Files {
		switch {
		case file.Name == "decls":
		case file.Name == "want":
			f.Want = append(f.Want, lines(file.Data)...)
		case strings.HasPrefix(file.Name, "src"):
			exprs, err := f.read(name, file)
			if err != nil {
				return nil, err
			}
			for _, e := range exprs {
				root, err := b.node(e)
				if err != nil {
					return nil, err
				}
				f.Roots = append(f.Roots, syntax.Link(root))
			}
		default:
			return nil, errors.Errorf("%s: unknown section %q", name, file.Name)
		}
	}
	return f, nil
}

// read registers file in the fixture's file set and reads its s-expressions.
func (f *Fixture) read(archive string, file txtar.File) ([]*sexpr, error) {
	tf := f.Fset.AddFile(archive+":"+file.Name, -1, len(file.Data))
	tf.SetLinesForContent(file.Data)
	exprs, err := newReader(tf, string(file.Data)).readAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read section %s", file.Name)
	}
	return exprs, nil
}

// Analyser returns an Analyser resolving types and calls from the fixture
// annotations.
func (f *Fixture) Analyser(opts ...rangeloop.Option) *rangeloop.Analyser {
	return rangeloop.New(f.Builtins, f.Resolver, f.Resolver, opts...)
}

// lines returns the non-blank lines of data, trimmed.
func lines(data []byte) []string {
	var out []string
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}
