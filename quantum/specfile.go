package quantum

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/typotools/quantum/core"
	"github.com/typotools/quantum/core/glyph"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseSpec reads a variation spec from a text stream. One mapping per
// line:
//
//	a: a.alt1 a.alt2 a.alt3     # three alternates for 'a'
//	g: g.alt1 g.alt2 g.alt3
//
// '#' starts a comment. Glyph names are checked for well-formedness, but
// not against any inventory; that happens at generation time. Parse
// errors carry line and column context.
func ParseSpec(r io.Reader) (*VariationSpec, error) {
	utf := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(utf)
	spec := NewVariationSpec()
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, errSpecSyntax(lineno, len(line), "expected ':' after base glyph")
		}
		base := strings.TrimSpace(line[:colon])
		if !glyph.IsValidName(base) {
			return nil, errSpecSyntax(lineno, 1, "not a well-formed glyph name: '%s'", base)
		}
		alts := strings.Fields(line[colon+1:])
		if len(alts) == 0 {
			return nil, errSpecSyntax(lineno, colon+1, "no alternates for base glyph '%s'", base)
		}
		for _, alt := range alts {
			if !glyph.IsValidName(alt) {
				col := strings.Index(line, alt) + 1
				return nil, errSpecSyntax(lineno, col, "not a well-formed glyph name: '%s'", alt)
			}
		}
		spec.Add(base, alts...)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read variation spec")
	}
	tracer().Infof("read variation spec for %d base glyphs", spec.Len())
	return spec, nil
}

// LoadSpec reads a variation spec from a file (see ParseSpec).
func LoadSpec(path string) (*VariationSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "variation spec not found: %s", path)
	}
	defer f.Close()
	return ParseSpec(f)
}

func errSpecSyntax(line, col int, format string, v ...interface{}) error {
	msg := "variation spec, line %d:%d: " + format
	args := append([]interface{}{line, col}, v...)
	return core.Error(core.EINVALID, msg, args...)
}
