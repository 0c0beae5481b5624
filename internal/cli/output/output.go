package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used for w.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
)

// Printer writes styled messages to an output and an error stream. Colors are decided per
// stream, so piping stdout into a file keeps the patch text free of escape codes.
type Printer struct {
	out         io.Writer
	errOut      io.Writer
	outColors   bool
	errOutColor bool
}

func NewPrinter(out io.Writer, errOut io.Writer) *Printer {
	return &Printer{
		out:         out,
		errOut:      errOut,
		outColors:   ColorsEnabled(out),
		errOutColor: ColorsEnabled(errOut),
	}
}

func (p *Printer) Out() io.Writer {
	return p.out
}

func style(enabled bool, text string, codes ...string) string {
	if !enabled {
		return text
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

// Bold returns text in bold (or plain if colors disabled)
func (p *Printer) Bold(text string) string {
	return style(p.outColors, text, bold)
}

func (p *Printer) Dim(text string) string {
	return style(p.outColors, text, dim)
}

// Header prints a bold section header
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.out, style(p.outColors, text, bold, white))
}

func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", style(p.outColors, SymbolSuccess, green), style(p.outColors, message, green))
}

func (p *Printer) Info(message string) {
	fmt.Fprintf(p.out, "%s %s\n", style(p.outColors, SymbolInfo, cyan), style(p.outColors, message, cyan))
}

// Step prints a step being executed with arrow
func (p *Printer) Step(message string) {
	fmt.Fprintf(p.out, "  %s %s\n", SymbolArrow, message)
}

// Secondary prints supplementary information in dim cyan
func (p *Printer) Secondary(message string) {
	fmt.Fprintf(p.out, "  %s %s\n", SymbolArrow, style(p.outColors, message, dim, cyan))
}

// Field prints an aligned key/value line.
func (p *Printer) Field(key string, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.Dim(fmt.Sprintf("%-18s", key+":")), value)
}

// Warning prints a warning message with ! symbol to the error stream
func (p *Printer) Warning(message string) {
	fmt.Fprintf(p.errOut, "%s %s\n", style(p.errOutColor, SymbolWarning, yellow), style(p.errOutColor, message, yellow))
}

// Error prints an error message with x symbol to the error stream
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.errOut, "%s %s\n", style(p.errOutColor, SymbolError, red), style(p.errOutColor, message, red))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
