package glyph

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/typotools/quantum/core"
)

func TestNameValidation(t *testing.T) {
	valid := []string{"a", "A.sc", "a.alt1", "uni00A0", "_part", ".notdef", "f_f_i"}
	for _, name := range valid {
		if !IsValidName(name) {
			t.Errorf("expected '%s' to be a valid glyph name, isn't", name)
		}
	}
	invalid := []string{"", "1abc", ".alt", "a b", "a-b", "@class", strings.Repeat("x", 64)}
	for _, name := range invalid {
		if IsValidName(name) {
			t.Errorf("expected '%s' to be an invalid glyph name, isn't", name)
		}
	}
}

func TestSetMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	s := NewSet([]string{"a", "b", "a.alt1", "a"})
	if s.Len() != 3 {
		t.Errorf("expected duplicate 'a' to be dropped, inventory has %d entries", s.Len())
	}
	if !s.Contains("a.alt1") {
		t.Errorf("expected inventory to contain 'a.alt1', doesn't")
	}
	if s.Contains("a.alt2") {
		t.Errorf("expected inventory not to contain 'a.alt2', does")
	}
	if s.Names()[0] != "a" {
		t.Errorf("expected inventory order to be preserved, first glyph is '%s'", s.Names()[0])
	}
}

func TestSetSuggestions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	s := NewSet([]string{"a", "a.alt1", "a.alt2", "b"})
	suggestions := s.SuggestPrefix("a.alt9", 5)
	t.Logf("suggestions for 'a.alt9' = %v", suggestions)
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions for 'a.alt9', have %d", len(suggestions))
	}
	for _, sug := range suggestions {
		if !strings.HasPrefix(sug, "a.alt") {
			t.Errorf("expected suggestion with prefix 'a.alt', have '%s'", sug)
		}
	}
}

func TestReadInventory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	input := "# exported glyphs\na b c  # basic\na.alt1\n\na.alt2 b.alt1\n"
	s, err := ReadInventory(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 6 {
		t.Errorf("expected 6 glyphs in inventory, have %d", s.Len())
	}
	if !s.Contains("b.alt1") {
		t.Errorf("expected inventory to contain 'b.alt1', doesn't")
	}
}

func TestReadInventoryBOM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	input := "\ufeffa b c\n"
	s, err := ReadInventory(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains("a") {
		t.Errorf("expected BOM to be skipped and 'a' to be read, isn't")
	}
}

func TestReadInventoryMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	input := "a b\n3nud\n"
	_, err := ReadInventory(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected malformed glyph name to be rejected, isn't")
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected error code EINVALID, have %d", core.Code(err))
	}
	if !strings.Contains(core.UserMessage(err), "line 2") {
		t.Errorf("expected error to name line 2, have: %v", core.UserMessage(err))
	}
	if !strings.Contains(core.UserMessage(err), "3nud") {
		t.Errorf("expected error to name the offending glyph, have: %v", core.UserMessage(err))
	}
}
