package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"go.abhg.dev/md2html/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _version is the version of md2html,
// filled in at release time.
var _version = "(unreleased)"

// params holds all arguments for md2html.
type params struct {
	version bool
	help    Help

	Debug flagvalue.FileSwitch

	OutputDir string
	Embed     bool

	Style      string
	LangPrefix string
	Aliases    []langAlias

	Files []string
}

// cliParser parses the command line arguments for md2html.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("md2html", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "_site", "")

	// HTML output:
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.StringVar(&p.Style, "style", "github", "")
	flag.StringVar(&p.LangPrefix, "lang-prefix", "", "")
	flag.Var(flagvalue.ListOf(&p.Aliases), "alias", "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

// Parse parses the given arguments,
// also reading values from MD2HTML_* environment variables.
func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("MD2HTML")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "md2html", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Files = args
	if len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// langAlias is an 'original=substitute' pair
// extending the built-in language alias table.
type langAlias struct {
	Lang   string
	Target string
}

var _ flag.Getter = (*langAlias)(nil)

func (la *langAlias) Get() any { return *la }

func (la *langAlias) String() string {
	return fmt.Sprintf("%s=%s", la.Lang, la.Target)
}

func (la *langAlias) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return errors.New("expected form 'lang=target'")
	}

	la.Lang = strings.ToLower(strings.TrimSpace(s[:idx]))
	la.Target = strings.ToLower(strings.TrimSpace(s[idx+1:]))
	if la.Lang == "" || la.Target == "" {
		return errors.New("expected form 'lang=target'")
	}
	return nil
}
