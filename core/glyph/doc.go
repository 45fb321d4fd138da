/*
Package glyph handles glyph-name inventories of typefaces.

A glyph inventory is the ordered list of glyph names a typeface exports.
Generated feature code may only reference glyphs of this inventory, thus
inventories are the basis for validating substitution rules before they
ever reach a feature compiler.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quantum.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("quantum.glyphs")
}
