package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"

	"go.abhg.dev/md2html/internal/highlight"
	"go.abhg.dev/md2html/internal/html"
	"go.abhg.dev/md2html/internal/markdown"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("md2html: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	// styles.Get falls back to a default for unknown names;
	// consult the registry to reject typos instead.
	style, ok := styles.Registry[opts.Style]
	if !ok {
		return fmt.Errorf("unknown highlight style %q", opts.Style)
	}

	var aliases map[string]string
	if len(opts.Aliases) > 0 {
		aliases = make(map[string]string, len(opts.Aliases))
		for _, a := range opts.Aliases {
			aliases[a.Lang] = a.Target
		}
	}

	highlighter := &highlight.Highlighter{
		Resolver:    highlight.Resolver{Aliases: aliases},
		ClassPrefix: opts.LangPrefix,
		Style:       style,
	}

	gen := Generator{
		Log: cmd.log,
		Markdown: goldmark.New(goldmark.WithExtensions(
			meta.Meta,
			markdown.NewExtender(markdown.WithHighlighter(highlighter)),
		)),
		Renderer: &html.Renderer{
			Embedded:    opts.Embed,
			Highlighter: highlighter,
		},
		OutDir:   opts.OutputDir,
		Embedded: opts.Embed,
	}

	if opts.Debug.Bool() {
		w, done, err := opts.Debug.Create(cmd.Stderr)
		if err != nil {
			return fmt.Errorf("create debug log: %w", err)
		}
		defer func() { _ = done() }()
		gen.Debug = log.New(w, "", 0)
	}

	return gen.Generate(opts.Files...)
}
