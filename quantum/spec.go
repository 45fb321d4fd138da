package quantum

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/typotools/quantum/core"
)

// A VariationSpec maps base glyphs to their visually equivalent
// alternates. Insertion order is significant: it determines the order of
// the emitted transformation classes and thereby the bucket assignment
// of the pseudorandom rotation. A base glyph may list itself as its
// first alternate; if it does not, the base is treated as row zero
// implicitly.
type VariationSpec struct {
	m *linkedhashmap.Map // base glyph name -> []string of alternates
}

// NewVariationSpec creates an empty variation spec.
func NewVariationSpec() *VariationSpec {
	return &VariationSpec{m: linkedhashmap.New()}
}

// Add appends alternates for a base glyph. Repeated calls for the same
// base extend its row of alternates.
func (spec *VariationSpec) Add(base string, alternates ...string) *VariationSpec {
	if existing, ok := spec.m.Get(base); ok {
		spec.m.Put(base, append(existing.([]string), alternates...))
		return spec
	}
	spec.m.Put(base, append([]string{}, alternates...))
	return spec
}

// Bases returns the base glyph names in insertion order.
func (spec *VariationSpec) Bases() []string {
	if spec == nil {
		return nil
	}
	keys := spec.m.Keys()
	bases := make([]string, len(keys))
	for i, k := range keys {
		bases[i] = k.(string)
	}
	return bases
}

// Alternates returns the alternates registered for a base glyph.
func (spec *VariationSpec) Alternates(base string) []string {
	if spec == nil {
		return nil
	}
	alts, ok := spec.m.Get(base)
	if !ok {
		return nil
	}
	return alts.([]string)
}

// Len returns the number of base glyphs.
func (spec *VariationSpec) Len() int {
	if spec == nil {
		return 0
	}
	return spec.m.Size()
}

// IsEmpty checks whether the spec contains any variations.
func (spec *VariationSpec) IsEmpty() bool {
	return spec.Len() == 0
}

// transitionRows arranges the spec as parallel rows: row 0 holds the
// base glyphs, row i>0 holds the i'th alternate of every base. If a base
// lists itself as its first alternate, that entry folds into row 0.
//
// Rows must be uniform; ragged alternate counts are a validation error.
func (spec *VariationSpec) transitionRows() ([][]string, error) {
	bases := spec.Bases()
	rows := [][]string{bases}
	depth := -1
	for j, base := range bases {
		alts := spec.Alternates(base)
		if len(alts) > 0 && alts[0] == base {
			alts = alts[1:]
		}
		if depth < 0 {
			depth = len(alts)
			for i := 0; i < depth; i++ {
				rows = append(rows, make([]string, len(bases)))
			}
		} else if len(alts) != depth {
			return nil, core.Error(core.EINVALID,
				"variation rows are ragged: base glyph '%s' has %d alternates, expected %d",
				base, len(alts), depth)
		}
		for i, alt := range alts {
			rows[i+1][j] = alt
		}
	}
	return rows, nil
}
