package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/typotools/quantum/core"
	"github.com/typotools/quantum/core/glyph"
	"github.com/typotools/quantum/core/locate"
	"github.com/typotools/quantum/quantum"
)

// tracer traces with key 'quantum.gen'
func tracer() tracing.Trace {
	return tracing.Select("quantum.gen")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.quantum.gen":    "Info",
		"trace.quantum.glyphs": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	specname := flag.String("spec", "", "Variation spec file to load")
	glyphlist := flag.String("glyphs", "", "Glyph inventory file to load")
	fontname := flag.String("font", "", "Font file or installed font to read the inventory from")
	outname := flag.String("o", "", "Output file (default: stdout)")
	seed := flag.Int64("seed", 0, "Seed for the pseudorandom partitioning")
	depth := flag.Int("depth", 10, "Lookbehind depth of the feature triggers")
	partitions := flag.Int("partitions", 2, "Number of pseudorandom partitions")
	wrap := flag.Bool("wrap", false, "Emit a complete feature definition instead of the bare body")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	setTraceLevel(*tlevel)
	//
	config := quantum.DefaultConfig()
	config.Seed = *seed
	config.Depth = *depth
	config.Partitions = *partitions
	config.WrapFeature = *wrap
	//
	inventory, err := loadInventory(*glyphlist, *fontname)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	tracer().Infof("inventory of %d glyphs loaded", inventory.Len())
	//
	if *interactive {
		pterm.Info.Println("Welcome to the pseudorandom calt generator")
		pterm.Info.Println("Quit with <ctrl>D")
		intp, err := newIntp(inventory, config)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		intp.REPL() // go into interactive mode
		return
	}
	//
	// one-shot mode
	if *specname == "" {
		pterm.Error.Println("no variation spec given (use -spec or -i)")
		os.Exit(4)
	}
	spec, err := quantum.LoadSpec(*specname)
	if err != nil {
		core.UserError(err)
		os.Exit(5)
	}
	text, err := quantum.Generate(spec, inventory, config)
	if err != nil {
		core.UserError(err)
		os.Exit(6)
	}
	if err := writeOutput(*outname, text); err != nil {
		core.UserError(err)
		os.Exit(7)
	}
}

// loadInventory resolves the glyph inventory from either a glyph-list
// file or a font (file or installed font name).
func loadInventory(glyphlist, fontname string) (*glyph.Set, error) {
	switch {
	case glyphlist != "":
		return glyph.LoadInventory(glyphlist)
	case fontname != "":
		return locate.ResolveInventory(fontname).Inventory()
	}
	return nil, core.Error(core.EMISSING, "no glyph inventory given (use -glyphs or -font)")
}

func writeOutput(outname, text string) error {
	if outname == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outname, []byte(text), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write feature file %s", outname)
	}
	tracer().Infof("feature code written to %s", outname)
	return nil
}

func setTraceLevel(tlevel string) {
	switch tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
