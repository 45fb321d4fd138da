package glyph

import (
	"github.com/derekparker/trie"
)

// Set is an inventory of glyph names, e.g. all glyphs a font exports.
// The order of names is preserved, as clients may rely on it being the
// glyph order of the originating font. A Set is immutable after creation.
type Set struct {
	names  []string
	index  map[string]int
	prefix *trie.Trie
}

// NewSet creates a glyph inventory from a list of glyph names.
// Duplicate names are dropped, keeping the first occurrence.
// Names are not validated; see IsValidName for checking names from
// untrusted input.
func NewSet(names []string) *Set {
	s := &Set{
		names:  make([]string, 0, len(names)),
		index:  make(map[string]int, len(names)),
		prefix: trie.New(),
	}
	for _, name := range names {
		if _, ok := s.index[name]; ok {
			tracer().Debugf("inventory drops duplicate glyph name '%s'", name)
			continue
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
		s.prefix.Add(name, nil)
	}
	return s
}

// Len returns the number of glyphs in the inventory.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Contains checks a glyph name for membership.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns the glyph names of the inventory, in font order.
// Callers must not modify the returned slice.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// SuggestPrefix returns inventory names sharing a prefix with name,
// longest matching prefix first, capped at max entries.
// It is used to give hints when a referenced glyph is unknown.
func (s *Set) SuggestPrefix(name string, max int) []string {
	if s == nil || max <= 0 {
		return nil
	}
	for p := name; p != ""; p = p[:len(p)-1] {
		if !s.prefix.HasKeysWithPrefix(p) {
			continue
		}
		matches := s.prefix.PrefixSearch(p)
		if len(matches) > max {
			matches = matches[:max]
		}
		return matches
	}
	return nil
}

// IsValidName checks a glyph name against the rules of the OpenType
// Feature File specification: an initial letter or underscore, followed
// by up to 62 letters, digits, periods or underscores. '.notdef' is
// allowed as the single exception starting with a period.
func IsValidName(name string) bool {
	if name == ".notdef" {
		return true
	}
	if name == "" || len(name) > 63 {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '.'):
		default:
			return false
		}
	}
	return true
}
