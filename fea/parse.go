package fea

import (
	"bufio"
	"io"
	"strings"

	"github.com/typotools/quantum/core"
)

// Parse reads feature code from r and returns its document structure.
// Parse understands class definitions, lookup blocks, (chained)
// contextual substitution rules and feature blocks. Comments start with
// '#' and extend to the end of the line.
//
// Syntax errors are reported as validation errors with line and column
// context.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{in: bufio.NewReader(r), line: 1, col: 0}
	doc := &Document{}
	if err := p.document(doc); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed feature code: %d classes, %d lookups, %d features",
		len(doc.Classes), len(doc.Lookups), len(doc.Features))
	return doc, nil
}

// ParseString is Parse on a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// --- Tokenizer -------------------------------------------------------------

type tokenKind int8

const (
	tEOF tokenKind = iota
	tName           // glyph name, keyword or tag
	tClass          // @name
	tMarkedName     // name' or @name'
	tSym            // one of = [ ] { } ;
)

type token struct {
	kind      tokenKind
	text      string
	line, col int
}

type parser struct {
	in        *bufio.Reader
	line, col int
	tok       token
}

func (p *parser) errSyntax(t token, format string, v ...interface{}) error {
	msg := "feature code, line %d:%d: " + format
	args := append([]interface{}{t.line, t.col}, v...)
	return core.Error(core.EINVALID, msg, args...)
}

func (p *parser) readRune() (rune, bool) {
	r, _, err := p.in.ReadRune()
	if err != nil {
		return 0, false
	}
	if r == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return r, true
}

func (p *parser) unreadRune(r rune) {
	_ = p.in.UnreadRune()
	if r == '\n' {
		p.line--
	} else {
		p.col--
	}
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' || r == '.' || r == '_'
}

// next advances to the next token.
func (p *parser) next() error {
	for { // skip whitespace and comments
		r, ok := p.readRune()
		if !ok {
			p.tok = token{kind: tEOF, line: p.line, col: p.col}
			return nil
		}
		if r == '#' {
			for {
				if r, ok = p.readRune(); !ok || r == '\n' {
					break
				}
			}
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		start := token{line: p.line, col: p.col}
		switch {
		case r == '=' || r == '[' || r == ']' || r == '{' || r == '}' || r == ';':
			start.kind = tSym
			start.text = string(r)
			p.tok = start
			return nil
		case r == '@' || isNameRune(r):
			var b strings.Builder
			b.WriteRune(r)
			for {
				r, ok = p.readRune()
				if !ok {
					break
				}
				if !isNameRune(r) {
					if r == '\'' { // mark on a sequence item
						start.kind = tMarkedName
						start.text = b.String()
						p.tok = start
						return nil
					}
					p.unreadRune(r)
					break
				}
				b.WriteRune(r)
			}
			if strings.HasPrefix(b.String(), "@") {
				start.kind = tClass
			} else {
				start.kind = tName
			}
			start.text = b.String()
			p.tok = start
			return nil
		default:
			return p.errSyntax(start, "unexpected character %q", r)
		}
	}
}

func (p *parser) expectSym(sym string) error {
	if p.tok.kind != tSym || p.tok.text != sym {
		return p.errSyntax(p.tok, "expected '%s', have '%s'", sym, p.tok.text)
	}
	return p.next()
}

// --- Grammar ---------------------------------------------------------------

func (p *parser) document(doc *Document) error {
	if err := p.next(); err != nil {
		return err
	}
	for p.tok.kind != tEOF {
		switch {
		case p.tok.kind == tClass:
			c, err := p.classDef()
			if err != nil {
				return err
			}
			doc.Classes = append(doc.Classes, c)
		case p.tok.kind == tName && p.tok.text == "lookup":
			l, err := p.lookupDef()
			if err != nil {
				return err
			}
			doc.Lookups = append(doc.Lookups, l)
		case p.tok.kind == tName && p.tok.text == "feature":
			f, err := p.featureDef()
			if err != nil {
				return err
			}
			doc.Features = append(doc.Features, f)
		default:
			return p.errSyntax(p.tok, "unexpected '%s' at top level", p.tok.text)
		}
	}
	return nil
}

// classDef := '@'name '=' '[' { name | '@'name } ']' ';'
func (p *parser) classDef() (ClassDef, error) {
	c := ClassDef{Name: p.tok.text[1:]}
	if err := p.next(); err != nil {
		return c, err
	}
	if err := p.expectSym("="); err != nil {
		return c, err
	}
	if err := p.expectSym("["); err != nil {
		return c, err
	}
	for p.tok.kind == tName || p.tok.kind == tClass {
		c.Members = append(c.Members, p.tok.text)
		if err := p.next(); err != nil {
			return c, err
		}
	}
	if err := p.expectSym("]"); err != nil {
		return c, err
	}
	return c, p.expectSym(";")
}

// lookupDef := 'lookup' name '{' { rule } '}' name ';'
func (p *parser) lookupDef() (Lookup, error) {
	l := Lookup{}
	if err := p.next(); err != nil {
		return l, err
	}
	if p.tok.kind != tName {
		return l, p.errSyntax(p.tok, "expected lookup name, have '%s'", p.tok.text)
	}
	l.Name = p.tok.text
	if err := p.next(); err != nil {
		return l, err
	}
	if err := p.expectSym("{"); err != nil {
		return l, err
	}
	for p.tok.kind == tName && (p.tok.text == "sub" || p.tok.text == "substitute") {
		r, err := p.rule()
		if err != nil {
			return l, err
		}
		l.Rules = append(l.Rules, r)
	}
	if err := p.expectSym("}"); err != nil {
		return l, err
	}
	if p.tok.kind != tName || p.tok.text != l.Name {
		return l, p.errSyntax(p.tok, "lookup '%s' closed with name '%s'", l.Name, p.tok.text)
	}
	if err := p.next(); err != nil {
		return l, err
	}
	return l, p.expectSym(";")
}

// rule := ('sub'|'substitute') { item } [ item"'" ] 'by' item ';'
//
// At most one sequence item may be marked. An unmarked rule with a single
// item is a plain single substitution.
func (p *parser) rule() (Rule, error) {
	r := Rule{}
	start := p.tok
	if err := p.next(); err != nil {
		return r, err
	}
	var seq []string
	marked := -1
	for {
		if p.tok.kind == tName && p.tok.text == "by" {
			break
		}
		switch p.tok.kind {
		case tName, tClass:
			seq = append(seq, p.tok.text)
		case tMarkedName:
			if marked >= 0 {
				return r, p.errSyntax(p.tok, "more than one marked item in rule")
			}
			marked = len(seq)
			seq = append(seq, p.tok.text)
		default:
			return r, p.errSyntax(p.tok, "expected glyph sequence, have '%s'", p.tok.text)
		}
		if err := p.next(); err != nil {
			return r, err
		}
	}
	if err := p.next(); err != nil { // skip 'by'
		return r, err
	}
	if p.tok.kind != tName && p.tok.kind != tClass {
		return r, p.errSyntax(p.tok, "expected replacement, have '%s'", p.tok.text)
	}
	r.By = p.tok.text
	if err := p.next(); err != nil {
		return r, err
	}
	if err := p.expectSym(";"); err != nil {
		return r, err
	}
	switch {
	case marked >= 0 && marked != len(seq)-1:
		return r, p.errSyntax(start, "marked item must close the context sequence")
	case marked >= 0:
		r.Backtrack = seq[:marked]
		r.Marked = seq[marked]
	case len(seq) == 1:
		r.Marked = seq[0]
	default:
		return r, p.errSyntax(start, "contextual rule without marked item")
	}
	return r, nil
}

// featureDef := 'feature' tag '{' { classDef | lookupDef } '}' tag ';'
func (p *parser) featureDef() (Feature, error) {
	f := Feature{}
	if err := p.next(); err != nil {
		return f, err
	}
	if p.tok.kind != tName || len(p.tok.text) > 4 {
		return f, p.errSyntax(p.tok, "expected feature tag, have '%s'", p.tok.text)
	}
	f.Tag = p.tok.text
	if err := p.next(); err != nil {
		return f, err
	}
	if err := p.expectSym("{"); err != nil {
		return f, err
	}
	for {
		if p.tok.kind == tClass {
			c, err := p.classDef()
			if err != nil {
				return f, err
			}
			f.Classes = append(f.Classes, c)
			continue
		}
		if p.tok.kind == tName && p.tok.text == "lookup" {
			l, err := p.lookupDef()
			if err != nil {
				return f, err
			}
			f.Lookups = append(f.Lookups, l)
			continue
		}
		break
	}
	if err := p.expectSym("}"); err != nil {
		return f, err
	}
	if p.tok.kind != tName || p.tok.text != f.Tag {
		return f, p.errSyntax(p.tok, "feature '%s' closed with tag '%s'", f.Tag, p.tok.text)
	}
	if err := p.next(); err != nil {
		return f, err
	}
	return f, p.expectSym(";")
}
