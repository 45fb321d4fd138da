package fea

import (
	"strings"
)

// A ClassDef defines a named glyph class, e.g.
//
//	@state0 = [@transformation0 @transformation1];
//
// Members may be glyph names or references to other classes (with a
// leading '@').
type ClassDef struct {
	Name    string // without the leading '@'
	Members []string
}

// Ref turns a class name into a class reference usable as a class member
// or in a rule sequence.
func Ref(name string) string {
	return "@" + name
}

// IsRef checks whether a sequence item references a class.
func IsRef(item string) bool {
	return strings.HasPrefix(item, "@")
}

// Rule is a chained contextual single substitution: if the marked item
// is preceded by the backtrack sequence, it is replaced by the By item.
//
//	sub @partition1 @skip @state0' by @state1;
//
// Items are glyph names or class references.
type Rule struct {
	Backtrack []string
	Marked    string
	By        string
}

// A Lookup is a named block of substitution rules.
type Lookup struct {
	Name  string
	Rules []Rule
}

// A Feature is a feature block tagged with an OpenType feature tag,
// e.g. 'calt'. Classes and lookups keep the order in which they were
// defined inside the block.
type Feature struct {
	Tag     string
	Classes []ClassDef
	Lookups []Lookup
}

// Document is the parsed form of a stretch of feature code: top-level
// class definitions and lookups, plus feature blocks.
type Document struct {
	Classes  []ClassDef
	Lookups  []Lookup
	Features []Feature
}

// CheckReferences verifies that every glyph name occurring in the
// document satisfies a predicate (usually membership in a glyph
// inventory), and that every class reference points to a class defined
// by the document. The first offending item is returned.
func (doc *Document) CheckReferences(isGlyph func(string) bool) (string, bool) {
	defined := make(map[string]bool)
	classes := doc.Classes
	lookups := doc.Lookups
	for _, f := range doc.Features {
		classes = append(classes, f.Classes...)
		lookups = append(lookups, f.Lookups...)
	}
	for _, c := range classes {
		defined[c.Name] = true
	}
	check := func(item string) bool {
		if IsRef(item) {
			return defined[item[1:]]
		}
		return isGlyph(item)
	}
	for _, c := range classes {
		for _, m := range c.Members {
			if !check(m) {
				return m, false
			}
		}
	}
	for _, l := range lookups {
		for _, r := range l.Rules {
			for _, item := range r.Backtrack {
				if !check(item) {
					return item, false
				}
			}
			if !check(r.Marked) {
				return r.Marked, false
			}
			if !check(r.By) {
				return r.By, false
			}
		}
	}
	return "", true
}

// --- Writer ----------------------------------------------------------------

// A Writer emits feature code. Indent is prepended to every line, which
// allows generating code for pasting into an already indented context,
// e.g. a font editor's feature panel. The zero value is ready to use.
type Writer struct {
	Indent string
	b      strings.Builder
}

// NewWriter creates a feature code writer with a fixed line indent.
func NewWriter(indent string) *Writer {
	return &Writer{Indent: indent}
}

// Class writes a class definition line.
func (w *Writer) Class(c ClassDef) {
	w.b.WriteString(w.Indent)
	w.b.WriteString(Ref(c.Name))
	w.b.WriteString(" = [")
	w.b.WriteString(strings.Join(c.Members, " "))
	w.b.WriteString("];\n")
}

// Lookup writes a lookup block, followed by a blank line.
func (w *Writer) Lookup(l Lookup) {
	w.b.WriteString(w.Indent)
	w.b.WriteString("lookup ")
	w.b.WriteString(l.Name)
	w.b.WriteString(" {\n")
	for _, r := range l.Rules {
		w.b.WriteString(w.Indent)
		w.b.WriteString("\tsub ")
		for _, item := range r.Backtrack {
			w.b.WriteString(item)
			w.b.WriteString(" ")
		}
		w.b.WriteString(r.Marked)
		w.b.WriteString("' by ")
		w.b.WriteString(r.By)
		w.b.WriteString(";\n")
	}
	w.b.WriteString(w.Indent)
	w.b.WriteString("} ")
	w.b.WriteString(l.Name)
	w.b.WriteString(";\n\n")
}

// BlankLine separates groups of statements.
func (w *Writer) BlankLine() {
	w.b.WriteString("\n")
}

// String returns the feature code written so far.
func (w *Writer) String() string {
	return w.b.String()
}

// WrapFeature wraps a block of feature code in a feature definition:
//
//	feature calt {
//	    ...
//	} calt;
//
// The body is expected to carry its own indentation.
func WrapFeature(tag, body string) string {
	var b strings.Builder
	b.WriteString("feature ")
	b.WriteString(tag)
	b.WriteString(" {\n\n")
	b.WriteString(body)
	b.WriteString("\n} ")
	b.WriteString(tag)
	b.WriteString(";\n")
	return b.String()
}
