package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	assetPath string
	quiet     bool
	verbose   bool
}

// renderFlags holds Markdown conversion flags.
type renderFlags struct {
	engine       string
	imageBase    string
	imageBaseSet bool // --image-base given, possibly empty
	lineBreaks   string
	highlight    string
	noInlineCode bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	render     renderFlags
	output     string
	workers    int
	standalone bool
	style      string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	render   renderFlags
	posts    string
	manifest string
	output   string
	perPage  int
	workers  int
	drafts   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds conversion flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "rendering engine: lite, goldmark")
	fs.StringVar(&f.imageBase, "image-base", "", "prefix for relative image paths")
	fs.StringVar(&f.lineBreaks, "line-breaks", "", "paragraph line breaks: space, break")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks (goldmark only)")
	fs.BoolVar(&f.noInlineCode, "no-inline-code", false, "leave `backticks` literal")
}

// newFlagSet creates a FlagSet that reports parse errors to the caller
// instead of printing them.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", printConvertUsage, stderr)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML page")
	fs.StringVar(&f.style, "style", "", "stylesheet name for standalone pages")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.render.imageBaseSet = fs.Changed("image-base")
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", printBuildUsage, stderr)

	fs.StringVar(&f.posts, "posts", "", "posts directory")
	fs.StringVar(&f.manifest, "manifest", "", "JSON post index (required when set)")
	fs.StringVarP(&f.output, "output", "o", "", "site output directory")
	fs.IntVar(&f.perPage, "per-page", 0, "posts per index page")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include draft posts")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.render.imageBaseSet = fs.Changed("image-base")
	return f, fs.Args(), nil
}
