package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/typotools/quantum/core"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolveGlyphList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "inventory.txt")
	if err := os.WriteFile(path, []byte("a b c a.alt1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := ResolveInventory(path).Inventory()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Errorf("expected 4 glyphs from list file, have %d", s.Len())
	}
}

func TestResolveMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	_, err := ResolveInventory("no-such-typeface-whatsoever").Inventory()
	if err == nil {
		t.Fatal("expected resolving an unknown source to fail, didn't")
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, have %d", core.Code(err))
	}
}

func TestFontInventory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quantum.glyphs")
	defer teardown()
	//
	s, err := FontInventory(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Go Regular exports %d named glyphs", s.Len())
	if s.Len() == 0 {
		t.Fatal("expected Go Regular to export named glyphs, doesn't")
	}
	if !s.Contains("A") {
		t.Errorf("expected inventory of Go Regular to contain glyph 'A', doesn't")
	}
}
