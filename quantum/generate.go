package quantum

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/typotools/quantum/core"
	"github.com/typotools/quantum/core/glyph"
	"github.com/typotools/quantum/fea"
)

// Generate produces pseudorandom 'calt' feature code for a variation
// spec against a glyph inventory. Generation is all-or-nothing: any
// validation failure returns an error and no output.
//
// An empty spec yields empty feature text.
func Generate(spec *VariationSpec, inventory *glyph.Set, config Config) (string, error) {
	if spec.IsEmpty() {
		tracer().Infof("spec is empty, nothing to generate")
		return "", nil
	}
	if err := config.check(); err != nil {
		return "", err
	}
	if err := validate(spec, inventory); err != nil {
		return "", err
	}
	rows, err := spec.transitionRows()
	if err != nil {
		return "", err
	}
	tracer().Infof("generating calt feature for %d base glyphs with %d states",
		spec.Len(), len(rows))
	indent := config.Indent
	if config.WrapFeature {
		indent += "\t"
	}
	w := fea.NewWriter(indent)
	states := transformationClasses(rows)
	for _, c := range states {
		w.Class(c)
	}
	w.BlankLine()
	rotations := rotationClasses(states)
	for _, c := range rotations {
		w.Class(c)
	}
	w.BlankLine()
	partitions := partitionClasses(inventory.Names(), config.Partitions, config.Seed)
	for _, c := range partitions {
		w.Class(c)
	}
	w.BlankLine()
	w.Class(fea.ClassDef{Name: "All", Members: inventory.Names()})
	w.Class(fea.ClassDef{Name: "skip", Members: []string{fea.Ref("All")}})
	w.BlankLine()
	for _, l := range lookups(rotations, partitions, config.Depth) {
		w.Lookup(l)
	}
	body := strings.TrimRight(w.String(), "\n") + "\n"
	if config.WrapFeature {
		return fea.WrapFeature("calt", body), nil
	}
	return body, nil
}

// validate checks every glyph the spec references against the inventory.
// The error names the first missing glyph, together with near-misses
// from the inventory if there are any.
func validate(spec *VariationSpec, inventory *glyph.Set) error {
	for _, base := range spec.Bases() {
		if err := checkGlyph(base, inventory); err != nil {
			return err
		}
		for _, alt := range spec.Alternates(base) {
			if err := checkGlyph(alt, inventory); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkGlyph(name string, inventory *glyph.Set) error {
	if inventory.Contains(name) {
		return nil
	}
	if near := inventory.SuggestPrefix(name, 3); len(near) > 0 {
		return core.Error(core.EMISSING, "unknown glyph: '%s' (typeface has %s)",
			name, strings.Join(near, ", "))
	}
	return core.Error(core.EMISSING, "unknown glyph: '%s'", name)
}

// transformationClasses builds one class per transition row. Class i
// holds the i'th variation of every base glyph, so all classes are
// position-aligned with the base row.
func transformationClasses(rows [][]string) []fea.ClassDef {
	classes := make([]fea.ClassDef, len(rows))
	for i, row := range rows {
		classes[i] = fea.ClassDef{
			Name:    fmt.Sprintf("transformation%d", i),
			Members: row,
		}
	}
	return classes
}

// rotationClasses builds the state classes: rotation i of the
// transformation class list. Substituting @state<i> by @state<i+1> then
// advances every glyph to its next variation, because class members are
// matched by position.
func rotationClasses(states []fea.ClassDef) []fea.ClassDef {
	refs := make([]string, len(states))
	for i, c := range states {
		refs[i] = fea.Ref(c.Name)
	}
	rotations := make([]fea.ClassDef, len(states))
	for i := range states {
		rotated := append(append([]string{}, refs[i:]...), refs[:i]...)
		rotations[i] = fea.ClassDef{
			Name:    fmt.Sprintf("state%d", i),
			Members: rotated,
		}
	}
	return rotations
}

// partitionClasses splits the glyph inventory into k pseudorandom
// partitions, drawing round-robin from a seeded PRNG. Glyphs left over
// by integer division stay unassigned, as in the original technique.
// Members are sorted for stable output.
func partitionClasses(names []string, k int, seed int64) []fea.ClassDef {
	rng := rand.New(rand.NewSource(seed))
	pool := append([]string{}, names...)
	parts := make([][]string, k)
	rounds := len(pool) / k
	for round := 0; round < rounds; round++ {
		for i := 0; i < k; i++ {
			j := rng.Intn(len(pool))
			parts[i] = append(parts[i], pool[j])
			pool = append(pool[:j], pool[j+1:]...)
		}
	}
	classes := make([]fea.ClassDef, k)
	for i, members := range parts {
		sort.Strings(members)
		classes[i] = fea.ClassDef{
			Name:    fmt.Sprintf("partition%d", i),
			Members: members,
		}
	}
	return classes
}

// lookups emits depth × partitions lookup blocks. Every lookup triggers
// on one partition as pseudorandom seed context, skips d arbitrary
// glyphs, and rotates the matched state class to the cyclically next
// one. Deeper skip distances come first, so that long-range triggers
// are not shadowed by short-range ones.
func lookups(rotations []fea.ClassDef, partitions []fea.ClassDef, depth int) []fea.Lookup {
	pairs := make([][2]string, len(rotations))
	for i := range rotations {
		pairs[i][0] = fea.Ref(rotations[i].Name)
		pairs[i][1] = fea.Ref(rotations[(i+1)%len(rotations)].Name)
	}
	k := len(partitions)
	var all []fea.Lookup
	for d := depth - 1; d >= 0; d-- {
		for i := 0; i < k; i++ {
			backtrack := []string{fea.Ref(partitions[k-1-i].Name)}
			for s := 0; s < d; s++ {
				backtrack = append(backtrack, fea.Ref("skip"))
			}
			pair := pairs[i%len(pairs)]
			all = append(all, fea.Lookup{
				Name: fmt.Sprintf("skip%d_partition%d", d, i),
				Rules: []fea.Rule{
					{Backtrack: backtrack, Marked: pair[0], By: pair[1]},
				},
			})
		}
	}
	return all
}
