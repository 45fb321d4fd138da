package locate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/typotools/quantum/core"
	"github.com/typotools/quantum/core/glyph"
	"golang.org/x/image/font/sfnt"
)

// NotFound returns an application error for an unresolvable inventory source.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "no glyph inventory found for: %s", res)
}

type setPlusErr struct {
	set *glyph.Set
	err error
}

// InventoryPromise will return a glyph inventory, possibly waiting for it
// to be loaded.
type InventoryPromise interface {
	Inventory() (*glyph.Set, error)
}

type inventoryLoader struct {
	await func(ctx context.Context) (*glyph.Set, error)
}

func (loader inventoryLoader) Inventory() (*glyph.Set, error) {
	return loader.await(context.Background())
}

// ResolveInventory resolves a glyph inventory from a source given by name.
// The lookup chain is:
//
//  1. a glyph-list text file (extension .txt or .glyphlist),
//  2. an OpenType font file on disk (.ttf/.otf), glyph names taken from
//     the font's name tables,
//  3. an installed system font located by font name.
//
// Loading happens concurrently; call Inventory() on the returned promise
// to wait for the result.
func ResolveInventory(name string) InventoryPromise {
	ch := make(chan setPlusErr)
	go func(ch chan<- setPlusErr) {
		result := setPlusErr{}
		switch {
		case isGlyphList(name):
			result.set, result.err = glyph.LoadInventory(name)
		case isFontFile(name):
			result.set, result.err = fontInventory(name)
		default:
			fpath, err := findfont.Find(name) // try to find as system font
			if err != nil || fpath == "" {
				result.err = NotFound(name)
			} else {
				tracer().Debugf("%s is a system font at %s", name, fpath)
				result.set, result.err = fontInventory(fpath)
			}
		}
		ch <- result
		close(ch)
	}(ch)
	return inventoryLoader{
		await: func(ctx context.Context) (*glyph.Set, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.set, r.err
			}
		},
	}
}

func isGlyphList(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".glyphlist":
		return fileExists(name)
	}
	return false
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return fileExists(name)
	}
	return false
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// fontInventory extracts the glyph-name inventory from an OpenType font
// file. Fonts without glyph names (e.g. a post table of format 3) cannot
// provide an inventory and are rejected.
func fontInventory(path string) (*glyph.Set, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font not found: %s", path)
	}
	return FontInventory(bytez)
}

// FontInventory extracts the glyph-name inventory from OpenType font data.
func FontInventory(fbytes []byte) (*glyph.Set, error) {
	otf, err := sfnt.Parse(fbytes)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font: %v", err)
	}
	fontname, _ := otf.Name(nil, sfnt.NameIDFull)
	tracer().Infof("loaded SFNT font = %s", fontname)
	var buf sfnt.Buffer
	n := otf.NumGlyphs()
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := otf.GlyphName(&buf, sfnt.GlyphIndex(i))
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot read glyph name #%d", i)
		}
		if name == "" {
			continue // font carries no name for this glyph
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, core.Error(core.EINVALID, "font %s contains no glyph names", fontname)
	}
	tracer().Infof("font %s exports %d named glyphs", fontname, len(names))
	return glyph.NewSet(names), nil
}
