package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes diagnostics in "file:line:col: severity: message" form.
type Printer struct {
	w        io.Writer
	colorize bool
	verbose  bool

	severity map[DiagnosticSeverity]*color.Color
	hint     *color.Color
}

// NewPrinter creates a Printer writing to w. Color is enabled only when
// noColor is false and w is a terminal.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:        w,
		colorize: !noColor && isTerminal(w),
		severity: map[DiagnosticSeverity]*color.Color{
			DiagnosticError:   color.New(color.FgRed, color.Bold),
			DiagnosticWarning: color.New(color.FgYellow, color.Bold),
			DiagnosticInfo:    color.New(color.FgCyan),
		},
		hint: color.New(color.FgGreen),
	}

	for _, c := range p.severity {
		p.setColor(c)
	}

	p.setColor(p.hint)

	return p
}

// SetVerbose makes the printer include info diagnostics.
func (p *Printer) SetVerbose(verbose bool) {
	p.verbose = verbose
}

func (p *Printer) setColor(c *color.Color) {
	if p.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes a single diagnostic and its suggestions.
func (p *Printer) Print(d Diagnostic) error {
	// Declaration files report a file name without a line
	if d.Pos.IsValid() || d.Pos.Filename != "" {
		if _, err := fmt.Fprintf(p.w, "%s: ", d.Pos); err != nil {
			return err
		}
	}

	sev := p.severity[d.Severity].Sprint(d.Severity.String())
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", sev, d.String()); err != nil {
		return err
	}

	for _, s := range d.Suggestions {
		if _, err := fmt.Fprintf(p.w, "\t%s %s\n", p.hint.Sprint("hint:"), s); err != nil {
			return err
		}
	}

	return nil
}

// PrintAll writes errors, warnings and, when verbose, infos.
func (p *Printer) PrintAll(d *Diagnostics) error {
	for _, diag := range d.All() {
		if diag.Severity == DiagnosticInfo && !p.verbose {
			continue
		}

		if err := p.Print(diag); err != nil {
			return err
		}
	}

	return nil
}
