package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const errorPrefix = "Error:"

// Printer writes user-visible output.
// Error prefixes are colored only when the destination is a terminal and [color.NoColor] is false, so NO_COLOR is respected.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a [Printer] that writes to STDERR.
func NewPrinter() *Printer {
	return newPrinter(os.Stderr)
}

func newPrinter(out io.Writer) *Printer {
	p := new(Printer)
	p.Redirect(out)
	return p
}

// Redirect changes where the [Printer] writes.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.color = isTerminal(writer)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// PrintError writes a single line in the form "Error: <message>".
func (p *Printer) PrintError(err error) {
	prefix := errorPrefix
	if p.color && !color.NoColor {
		prefix = color.New(color.FgRed, color.Bold).Sprint(errorPrefix)
	}
	p.Printf("%s %v\n", prefix, err)
}
