package fixture

import (
	"go/token"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"
)

// sexpr is an atom or a parenthesised list.
type sexpr struct {
	atom   string
	isList bool
	list   []*sexpr
	pos    token.Pos // Position of the atom or of the opening parenthesis.
	end    token.Pos // Position after the atom or the closing parenthesis.
}

func (s *sexpr) head() string {
	if !s.isList || len(s.list) == 0 || s.list[0].isList {
		return ""
	}
	return s.list[0].atom
}

// isIdentRune accepts operators and dotted, nullable names as atoms, so
// that .., lang.IntRange? and :type each scan as one token.
func isIdentRune(ch rune, i int) bool {
	if unicode.IsLetter(ch) || (i > 0 && unicode.IsDigit(ch)) {
		return true
	}
	return strings.ContainsRune("_.?:+-*<>=!%&|", ch)
}

// reader reads s-expressions from one source file.
type reader struct {
	s    scanner.Scanner
	file *token.File
	err  error
}

func newReader(file *token.File, src string) *reader {
	r := &reader{file: file}
	r.s.Init(strings.NewReader(src))
	r.s.Filename = file.Name()
	r.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	r.s.IsIdentRune = isIdentRune
	r.s.Error = func(s *scanner.Scanner, msg string) {
		if r.err == nil {
			r.err = errors.Errorf("%s: %s", s.Position, msg)
		}
	}
	return r
}

// readAll reads every top-level s-expression.
func (r *reader) readAll() ([]*sexpr, error) {
	var exprs []*sexpr
	for tok := r.s.Scan(); tok != scanner.EOF; tok = r.s.Scan() {
		e, err := r.read(tok)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, r.err
}

func (r *reader) pos() token.Pos {
	return r.file.Pos(r.s.Position.Offset)
}

// read reads the s-expression starting at the already scanned tok.
func (r *reader) read(tok rune) (*sexpr, error) {
	if r.err != nil {
		return nil, r.err
	}
	switch tok {
	case '(':
		list := &sexpr{isList: true, pos: r.pos()}
		for tok = r.s.Scan(); tok != ')'; tok = r.s.Scan() {
			if tok == scanner.EOF {
				return nil, errors.Errorf("%s: unclosed list", r.file.Position(list.pos))
			}
			e, err := r.read(tok)
			if err != nil {
				return nil, err
			}
			list.list = append(list.list, e)
		}
		list.end = r.pos() + 1
		return list, nil
	case ')':
		return nil, errors.Errorf("%s: unexpected )", r.s.Position)
	}
	text := r.s.TokenText()
	return &sexpr{atom: text, pos: r.pos(), end: r.pos() + token.Pos(len(text))}, nil
}
