package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// output prints user-facing messages. Colors are used only when enabled
// and the destination is a terminal.
type output struct {
	out   io.Writer
	quiet bool
	color bool
}

func newOutput(out io.Writer, quiet, noColor bool) *output {
	return &output{
		out:   out,
		quiet: quiet,
		color: !noColor && isTerminal(out),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o *output) paint(c text.Color, s string) string {
	if !o.color {
		return s
	}
	return c.Sprint(s)
}

// printInfo prints an informational message
func (o *output) printInfo(msg string) {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.out, msg)
}

// printSuccess prints a success message
func (o *output) printSuccess(msg string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.out, "%s %s\n", o.paint(text.FgGreen, "✓"), msg)
}

// printWarning prints a warning message
func (o *output) printWarning(msg string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.out, "%s %s\n", o.paint(text.FgYellow, "⚠"), msg)
}

// printHeader prints a section header
func (o *output) printHeader(title string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.out, "\n%s\n", o.paint(text.FgMagenta, "=== "+title+" ==="))
}

// printRaw writes content as-is.
func (o *output) printRaw(content []byte) {
	if o.quiet {
		return
	}
	o.out.Write(content)
}
