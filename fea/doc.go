/*
Package fea handles OpenType feature code in the Adobe Feature File syntax.

The package covers the subset of the syntax that pseudorandom contextual
alternation needs: glyph class definitions, (chained) contextual
substitution rules, lookup blocks and feature blocks. It provides a writer
for emitting feature code and a parser for reading it back, e.g. for
checking generated code before handing it to a feature compiler.

Reference: OpenType Feature File Specification,
https://adobe-type-tools.github.io/afdko/OpenTypeFeatureFileSpecification.html

# Status

Work in progress. Only the statement types listed above are understood;
this is not a general .fea parser.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fea

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quantum.gen'
func tracer() tracing.Trace {
	return tracing.Select("quantum.gen")
}
