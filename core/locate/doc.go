/*
Package locate resolves glyph inventories from various sources.

The generator needs the full glyph-name inventory of the target typeface.
Inside a font editor this inventory is just there; on the command line it
has to come from somewhere: a glyph-list file, a font file on disk, or an
installed system font. Package locate hides this lookup chain behind a
single resolver call.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quantum.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("quantum.glyphs")
}
