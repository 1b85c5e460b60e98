// Package ui provides stderr-based terminal output for conv.
// Prompts, hints, and errors go to stderr so stdout carries only
// conversion results and stays pipe-friendly.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/conv/internal/ansi"
	"github.com/papapumpkin/conv/internal/unit"
)

// Printer renders banners, prompts, and errors on stderr.
type Printer struct {
	// Color controls whether ANSI escape codes are emitted.
	Color bool
}

func New(color bool) *Printer {
	return &Printer{Color: color}
}

// paint wraps s in the given SGR codes when color is enabled.
func (p *Printer) paint(code, s string) string {
	if !p.Color {
		return s
	}
	return code + s + ansi.Reset
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, p.paint(ansi.Bold+ansi.Cyan, "  ╔══════════════════════════════╗"))
	fmt.Fprintln(os.Stderr, p.paint(ansi.Bold+ansi.Cyan, "  ║")+p.paint(ansi.Bold, "   CONV  ")+p.paint(ansi.Dim, "unit converter")+p.paint(ansi.Bold+ansi.Cyan, "      ║"))
	fmt.Fprintln(os.Stderr, p.paint(ansi.Bold+ansi.Cyan, "  ╚══════════════════════════════╝"))
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Prompt(prompt string) {
	fmt.Fprint(os.Stderr, p.paint(ansi.Bold+ansi.Cyan, prompt))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s\n", p.paint(ansi.Red+ansi.Bold, "Error: "), msg)
}

func (p *Printer) Hint(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", p.paint(ansi.Dim, msg))
}

func (p *Printer) ShowHelp() {
	lines := []string{
		p.paint(ansi.Bold, "Commands:"),
		"  Type " + p.paint(ansi.Bold, "<value> <from_unit> <to_unit>") + " to convert",
		"  " + p.paint(ansi.Bold, "help") + "  — show this message",
		"  " + p.paint(ansi.Bold, "quit") + "  — exit conv",
	}
	fmt.Fprintln(os.Stderr, strings.Join(lines, "\n"))
}

// Listing renders the unit registry grouped by category, with styled
// headers when color is enabled. The plain rendition matches
// unit.List exactly.
func (p *Printer) Listing(groups []unit.Group) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		header := fmt.Sprintf("%s (base: %s)", g.Category, g.Category.BaseName())
		b.WriteString(p.paint(ansi.Bold+ansi.Cyan, header))
		b.WriteByte('\n')
		b.WriteString("  " + strings.Join(g.Symbols, ", ") + "\n")
	}
	return b.String()
}
