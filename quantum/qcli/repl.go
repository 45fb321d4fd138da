package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/typotools/quantum/core"
	"github.com/typotools/quantum/core/glyph"
	"github.com/typotools/quantum/quantum"
)

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	inventory *glyph.Set
	spec      *quantum.VariationSpec
	config    quantum.Config
	generated string
}

func newIntp(inventory *glyph.Set, config quantum.Config) (*Intp, error) {
	repl, err := readline.New("calt > ")
	if err != nil {
		return nil, err
	}
	return &Intp{
		repl:      repl,
		inventory: inventory,
		spec:      quantum.NewVariationSpec(),
		config:    config,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool) {
	cmd, rest := line, ""
	if sp := strings.IndexByte(line, ' '); sp >= 0 {
		cmd, rest = line[:sp], strings.TrimSpace(line[sp+1:])
	}
	tracer().Debugf("command = %s, args = %v", cmd, rest)
	switch cmd {
	case "quit":
		return true
	case "help":
		help()
	case "base":
		intp.addVariation(rest)
	case "show":
		intp.showSpec()
	case "glyphs":
		intp.listGlyphs(rest)
	case "seed", "depth", "partitions":
		intp.setParameter(cmd, rest)
	case "wrap":
		intp.config.WrapFeature = rest != "off"
	case "gen":
		intp.generate()
	case "write":
		intp.write(rest)
	default:
		if strings.Contains(line, ":") { // shorthand for 'base'
			intp.addVariation(line)
			break
		}
		pterm.Error.Printfln("unknown command '%s', try 'help'", cmd)
	}
	return false
}

// addVariation handles 'base a: abreve acircumflex aacute'.
func (intp *Intp) addVariation(arg string) {
	spec, err := quantum.ParseSpec(strings.NewReader(arg + "\n"))
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	for _, base := range spec.Bases() {
		intp.spec.Add(base, spec.Alternates(base)...)
		pterm.Printfln("%s now varies over %v", base, intp.spec.Alternates(base))
	}
}

func (intp *Intp) showSpec() {
	if intp.spec.IsEmpty() {
		pterm.Info.Println("no variations set, use e.g. 'base a: abreve aacute'")
		return
	}
	for _, base := range intp.spec.Bases() {
		pterm.Printfln("%-12s : %s", base, strings.Join(intp.spec.Alternates(base), " "))
	}
}

func (intp *Intp) listGlyphs(prefix string) {
	if prefix == "" {
		pterm.Printfln("inventory contains %d glyphs", intp.inventory.Len())
		return
	}
	matches := intp.inventory.SuggestPrefix(prefix, 20)
	if len(matches) == 0 {
		pterm.Info.Printfln("no glyphs matching '%s'", prefix)
		return
	}
	pterm.Printfln("%v", matches)
}

func (intp *Intp) setParameter(param, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		pterm.Error.Printfln("%s needs a numeric argument, have '%s'", param, arg)
		return
	}
	switch param {
	case "seed":
		intp.config.Seed = int64(n)
	case "depth":
		intp.config.Depth = n
	case "partitions":
		intp.config.Partitions = n
	}
	pterm.Printfln("%s set to %d", param, n)
}

func (intp *Intp) generate() {
	text, err := quantum.Generate(intp.spec, intp.inventory, intp.config)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	intp.generated = text
	if text == "" {
		pterm.Info.Println("nothing to generate, spec is empty")
		return
	}
	pterm.Println(text)
}

func (intp *Intp) write(filename string) {
	if filename == "" {
		pterm.Error.Println("write needs a file name")
		return
	}
	if intp.generated == "" {
		intp.generate()
	}
	if intp.generated == "" {
		return
	}
	if err := writeOutput(filename, intp.generated); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	pterm.Info.Printfln("feature code written to %s", filename)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	base <g>: <alt> <alt> ...   add alternates for a base glyph
	show                        show the current variation spec
	glyphs [<prefix>]           list inventory glyphs
	seed | depth | partitions <n>
	wrap [on|off]               emit a complete feature definition
	gen                         generate feature code
	write <file>                write generated code to a file
	quit
	`)
}
