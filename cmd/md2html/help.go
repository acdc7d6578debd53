package main

import (
	"fmt"
	"io"
)

const usageText = `Usage: md2html <command> [flags] [args]

Commands:
  convert    Convert markdown files to HTML
  build      Build a static blog from a posts directory
  version    Show version information
  help       Show help for a command

Run 'md2html help <command>' for details on a specific command.
`

const renderFlagsText = `Rendering:
      --engine <s>          Engine: lite (default), goldmark
      --image-base <s>      Prefix for relative image paths (default "posts/")
      --line-breaks <s>     Newlines in paragraphs: space (default), break
      --highlight <s>       Chroma style for code blocks (goldmark only)
      --no-inline-code      Leave ` + "`backticks`" + ` literal
`

const commonFlagsText = `Configuration:
  -c, --config <name>       Config file name or path
      --asset-path <dir>    Custom styles and templates directory

Output Control:
  -q, --quiet               Only show errors
  -v, --verbose             Show detailed timing
`

const convertUsageText = `Usage: md2html convert <input> [flags]

Convert markdown files to HTML fragments or standalone pages.

Arguments:
  input    Markdown file or directory (optional if config has input.defaultDir)

Input/Output:
  -o, --output <path>       Output file or directory
  -w, --workers <n>         Parallel workers (0 = auto)
      --standalone          Wrap output in a complete HTML page
      --style <name>        Stylesheet for standalone pages
`

const buildUsageText = `Usage: md2html build [flags]

Build a static blog: post pages, paginated index, tag and archive pages.
Posts are listed from the manifest when it exists, otherwise from front matter.
Images resolve relative to the post pages, so --image-base is ignored.

Site:
      --posts <dir>         Posts directory (default "posts")
      --manifest <path>     JSON post index, must exist when given
  -o, --output <dir>        Site output directory (default "public")
      --per-page <n>        Posts per index page (default 6)
      --drafts              Include draft posts
  -w, --workers <n>         Parallel workers (0 = auto)
`

var commandHelp = map[string]func(io.Writer){
	"convert": printConvertUsage,
	"build":   printBuildUsage,
	"version": func(w io.Writer) { fmt.Fprint(w, "Usage: md2html version\n\nShow version information.\n") },
	"help":    func(w io.Writer) { fmt.Fprint(w, "Usage: md2html help [command]\n\nShow help for a command.\n") },
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n%s", convertUsageText, renderFlagsText, commonFlagsText)
}

func printBuildUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n%s\n", buildUsageText, renderFlagsText, commonFlagsText)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_* variables override the config file; flags override both.")
}

// runHelp prints the usage of args[0], or the command list.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	help, ok := commandHelp[args[0]]
	if !ok {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	help(env.Stdout)
	return ExitSuccess
}
