/*
Package quantum generates pseudorandom 'calt' feature code.

OpenType shaping is deterministic, but repeated glyphs can still be made
to look randomly varied: partition the full glyph inventory of a typeface
into random context classes and let the partition a preceding glyph falls
into select which alternate gets substituted. The technique goes back to
Tal Leming's "Quantum" feature (see
https://opentypecookbook.com/common-techniques/, towards the bottom of
the page).

Given a variation spec — base glyphs with parallel rows of alternates —
and the glyph inventory of the target typeface, Generate emits class
definitions and chained contextual substitution lookups implementing the
technique. The output is feature source code, either as a bare block for
pasting into a font editor's feature panel, or wrapped in a complete
'feature calt { … } calt;' definition.

# Status

Stable. Alternate rows have to be uniform: every base glyph needs the
same number of alternates.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package quantum

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quantum.gen'
func tracer() tracing.Trace {
	return tracing.Select("quantum.gen")
}
