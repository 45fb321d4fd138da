package glyph

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/typotools/quantum/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadInventory reads a glyph inventory from a text stream: glyph names
// separated by whitespace or newlines, with '#' starting a comment that
// extends to the end of the line.
//
// Files exported by font editors on macOS sometimes come with a byte
// order mark, or even as UTF-16. Both are tolerated.
//
// Malformed glyph names make ReadInventory fail with a validation error
// carrying the offending line number.
func ReadInventory(r io.Reader) (*Set, error) {
	utf := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(utf)
	var names []string
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, name := range strings.Fields(line) {
			if !IsValidName(name) {
				return nil, core.Error(core.EINVALID,
					"glyph inventory, line %d: not a well-formed glyph name: '%s'", lineno, name)
			}
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read glyph inventory")
	}
	tracer().Infof("read inventory of %d glyph names", len(names))
	return NewSet(names), nil
}

// LoadInventory reads a glyph inventory from a file (see ReadInventory).
func LoadInventory(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "glyph inventory not found: %s", path)
	}
	defer f.Close()
	return ReadInventory(f)
}
