package fea

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/typotools/quantum/core"
)

func TestWriterClass(t *testing.T) {
	w := NewWriter("")
	w.Class(ClassDef{Name: "transformation0", Members: []string{"a", "g", "l", "u"}})
	if w.String() != "@transformation0 = [a g l u];\n" {
		t.Errorf("unexpected class definition: %q", w.String())
	}
}

func TestWriterLookup(t *testing.T) {
	w := NewWriter("\t")
	w.Lookup(Lookup{
		Name: "skip0_partition0",
		Rules: []Rule{
			{Backtrack: []string{"@partition1"}, Marked: "@state0", By: "@state1"},
		},
	})
	expected := "\tlookup skip0_partition0 {\n" +
		"\t\tsub @partition1 @state0' by @state1;\n" +
		"\t} skip0_partition0;\n\n"
	if w.String() != expected {
		t.Errorf("unexpected lookup block:\n%q", w.String())
	}
}

func TestWrapFeature(t *testing.T) {
	text := WrapFeature("calt", "\t@a = [a];\n")
	if !strings.HasPrefix(text, "feature calt {\n") {
		t.Errorf("expected feature header, have:\n%s", text)
	}
	if !strings.HasSuffix(text, "} calt;\n") {
		t.Errorf("expected feature footer, have:\n%s", text)
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.gen")
	defer teardown()
	//
	w := NewWriter("")
	w.Class(ClassDef{Name: "transformation0", Members: []string{"a", "g"}})
	w.Class(ClassDef{Name: "transformation1", Members: []string{"a.alt1", "g.alt1"}})
	w.BlankLine()
	w.Class(ClassDef{Name: "state0", Members: []string{"@transformation0", "@transformation1"}})
	w.BlankLine()
	w.Lookup(Lookup{
		Name: "skip0_partition0",
		Rules: []Rule{
			{Backtrack: []string{"@transformation0", "@state0"}, Marked: "@state0", By: "@state0"},
		},
	})
	doc, err := ParseString(w.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Classes) != 3 {
		t.Errorf("expected 3 parsed classes, have %d", len(doc.Classes))
	}
	if len(doc.Lookups) != 1 {
		t.Fatalf("expected 1 parsed lookup, have %d", len(doc.Lookups))
	}
	rule := doc.Lookups[0].Rules[0]
	if rule.Marked != "@state0" || rule.By != "@state0" {
		t.Errorf("unexpected rule: %+v", rule)
	}
	if len(rule.Backtrack) != 2 {
		t.Errorf("expected backtrack of length 2, have %v", rule.Backtrack)
	}
}

func TestParseFeatureBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.gen")
	defer teardown()
	//
	input := `
feature calt {

	@all = [a b c];
	@skip = [@all];

	lookup rand0 {
		sub @all @skip a' by b;
	} rand0;

} calt;
`
	doc, err := ParseString(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Features) != 1 {
		t.Fatalf("expected 1 feature block, have %d", len(doc.Features))
	}
	f := doc.Features[0]
	if f.Tag != "calt" {
		t.Errorf("expected feature tag 'calt', have '%s'", f.Tag)
	}
	if len(f.Classes) != 2 || len(f.Lookups) != 1 {
		t.Errorf("expected 2 classes and 1 lookup inside feature, have %d/%d",
			len(f.Classes), len(f.Lookups))
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.gen")
	defer teardown()
	//
	cases := []struct {
		input string
		hint  string
	}{
		{"@a = [a b;", "expected ']'"},
		{"lookup x {\n} y;", "closed with name"},
		{"feature calt {\n} liga;", "closed with tag"},
		{"lookup x {\nsub a b' c' by d;\n} x;", "more than one marked"},
		{"lookup x {\nsub a b by d;\n} x;", "without marked item"},
		{"+++", "unexpected character"},
	}
	for _, c := range cases {
		_, err := ParseString(c.input)
		if err == nil {
			t.Errorf("expected parse of %q to fail, didn't", c.input)
			continue
		}
		if core.Code(err) != core.EINVALID {
			t.Errorf("expected error code EINVALID for %q, have %d", c.input, core.Code(err))
		}
		if !strings.Contains(core.UserMessage(err), c.hint) {
			t.Errorf("expected error hinting at %q, have: %v", c.hint, core.UserMessage(err))
		}
	}
}

func TestParseErrorLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.gen")
	defer teardown()
	//
	_, err := ParseString("@a = [a];\n@b = [b;\n")
	if err == nil {
		t.Fatal("expected parse to fail, didn't")
	}
	if !strings.Contains(core.UserMessage(err), "line 2") {
		t.Errorf("expected error to point at line 2, have: %v", core.UserMessage(err))
	}
}

func TestCheckReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.gen")
	defer teardown()
	//
	inventory := map[string]bool{"a": true, "b": true}
	doc, err := ParseString("@all = [a b];\nlookup x {\nsub @all a' by b;\n} x;\n")
	if err != nil {
		t.Fatal(err)
	}
	if item, ok := doc.CheckReferences(func(g string) bool { return inventory[g] }); !ok {
		t.Errorf("expected references to check out, offending item '%s'", item)
	}
	doc, err = ParseString("@all = [a b z];\n")
	if err != nil {
		t.Fatal(err)
	}
	if item, ok := doc.CheckReferences(func(g string) bool { return inventory[g] }); ok {
		t.Error("expected unknown glyph 'z' to be flagged, isn't")
	} else if item != "z" {
		t.Errorf("expected offending item 'z', have '%s'", item)
	}
}
