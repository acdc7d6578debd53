package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	undo := setMaxProcs(os.Args[1:], os.Stderr)
	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// setMaxProcs sizes GOMAXPROCS to the container quota, reporting the
// decision when --verbose is among args.
func setMaxProcs(args []string, w io.Writer) func() {
	logf := func(string, ...interface{}) {}
	if slices.Contains(args, "-v") || slices.Contains(args, "--verbose") {
		logf = func(format string, a ...interface{}) {
			fmt.Fprintf(w, format+"\n", a...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))
	return undo
}

// isCommand reports whether name is a md2html command.
func isCommand(name string) bool {
	switch name {
	case "convert", "build", "version", "help":
		return true
	}
	return false
}

// runMain dispatches args to a command and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch {
	case cmd == "convert":
		err = runConvert(ctx, rest, env)
	case cmd == "build":
		err = runBuild(ctx, rest, env)
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		if isMarkdown(cmd) {
			fmt.Fprintf(env.Stderr, "did you mean: md2html convert %s\n", cmd)
		}
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", withHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
