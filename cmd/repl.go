package cmd

import (
	"os"

	"github.com/papapumpkin/conv/internal/config"
	"github.com/papapumpkin/conv/internal/repl"
	"github.com/papapumpkin/conv/internal/tui"
	"github.com/papapumpkin/conv/internal/ui"
)

// runREPL picks the TUI when both stdin and stderr are terminals.
// Piped input gets the plain loop so EOF semantics hold and stdout
// carries only result lines.
func runREPL(cfg config.Config, plain bool) error {
	if !plain && isTTY(os.Stdin) && isTTY(os.Stderr) {
		return tui.Run(cfg.Prompt, cfg.Precision)
	}

	printer := ui.New(cfg.Color && isTTY(os.Stderr))
	printer.Banner()
	printer.Hint("type <value> <from_unit> <to_unit>, 'help', or 'quit'")

	sess := &repl.Session{
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Precision: cfg.Precision,
		Prompt:    func() { printer.Prompt(cfg.Prompt) },
	}
	return sess.Run()
}

// isTTY reports whether f is attached to a terminal.
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
