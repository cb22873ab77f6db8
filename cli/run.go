package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/anvilbuild/anvil/engine/alias"
	"github.com/anvilbuild/anvil/engine/core"
)

// app carries the per-invocation state the error classifier needs
// after the command has run.
type app struct {
	debug bool
}

// Run executes the root command over the given argument vector and
// returns the process exit code. Failures are classified here, once:
// a fatal error prints its message and carries its own exit code; an
// unexpected error prints a short line, or the full diagnostic when
// debug is on.
func Run(args []string) int {
	return run(args, os.Stdout)
}

func run(args []string, out io.Writer) int {
	a := &app{}
	root := a.rootCmd()
	root.SetOut(out)
	root.SetArgs(rewriteLeadingAlias(args))
	err := root.Execute()
	if err == nil {
		return 0
	}
	if fatal, ok := core.AsFatal(err); ok {
		printFatal(fatal.Message)
		return fatal.ExitCode()
	}
	printUnexpected(err, a.debug)
	return 1
}

// valueFlags are the tool flags that consume the following token when
// given without '='.
var valueFlags = map[string]bool{
	"--log-level": true,
	"--env-file":  true,
	"--file":      true,
	"-f":          true,
}

// rewriteLeadingAlias substitutes the first positional token when it is
// a flag-form static alias, so forms like "-version" and "--help" reach
// the dispatcher as task names instead of being eaten by the flag
// parser. Tool flags ahead of it are left in place.
func rewriteLeadingAlias(args []string) []string {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if target, ok := alias.StaticAliases[tok]; ok && strings.HasPrefix(tok, "-") {
			out := make([]string, len(args))
			copy(out, args)
			out[i] = target
			return out
		}
		if !strings.HasPrefix(tok, "-") {
			return args
		}
		if valueFlags[tok] {
			i++
		}
	}
	return args
}

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF6B6B")).
	Bold(true)

func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// printFatal writes a fatal message to stderr, styling the first line
// when attached to a terminal. Suggestion blocks and other trailing
// lines stay plain.
func printFatal(message string) {
	if !stderrIsTerminal() {
		fmt.Fprintln(os.Stderr, message)
		return
	}
	head, rest, split := splitFirstLine(message)
	fmt.Fprintln(os.Stderr, errorStyle.Render(head))
	if split {
		fmt.Fprintln(os.Stderr, rest)
	}
}

func splitFirstLine(s string) (head, rest string, split bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func printUnexpected(err error, debugMode bool) {
	fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
	if debugMode {
		fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
	}
}
