// Package display renders validation reports to a terminal or plain writer.
// When the destination is a TTY, errors are shown in red, warnings in yellow,
// and passing results in green. For pipes and files the output is exactly the
// validator's plain report, keeping it deterministic and diffable.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/speclint/internal/validator"
)

// colorScheme defines consistent colors for report elements.
// Green: passing results. Red: errors and failure. Yellow: warnings.
type colorScheme struct {
	pass *color.Color
	fail *color.Color
	warn *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
	}
}

// ReportPrinter writes validation reports to a single destination.
type ReportPrinter struct {
	out      io.Writer
	colorize bool
	scheme   *colorScheme
}

// NewReportPrinter creates a printer for the given writer. Color output is
// enabled only when the writer is a terminal and NO_COLOR is not set.
func NewReportPrinter(out io.Writer) *ReportPrinter {
	return &ReportPrinter{
		out:      out,
		colorize: isTerminal(out) && !color.NoColor,
		scheme:   newColorScheme(),
	}
}

// Print writes the validator's report followed by a newline. Plain writers
// receive byte-for-byte the validator's Report output.
func (p *ReportPrinter) Print(v *validator.Validator) {
	if !p.colorize {
		fmt.Fprintln(p.out, v.Report())
		return
	}

	fmt.Fprintf(p.out, "Spec Validation Report: %s\n", v.Filename())
	fmt.Fprintln(p.out, strings.Repeat("=", 50))

	if errs := v.Errors(); len(errs) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", p.scheme.fail.Sprintf("ERRORS (%d):", len(errs)))
		for _, msg := range errs {
			fmt.Fprintf(p.out, "  - %s\n", p.scheme.fail.Sprint(msg))
		}
	}

	if warns := v.Warnings(); len(warns) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", p.scheme.warn.Sprintf("WARNINGS (%d):", len(warns)))
		for _, msg := range warns {
			fmt.Fprintf(p.out, "  - %s\n", p.scheme.warn.Sprint(msg))
		}
	}

	if len(v.Errors()) == 0 && len(v.Warnings()) == 0 {
		fmt.Fprintf(p.out, "\n%s\n", p.scheme.pass.Sprint("All checks passed!"))
	}

	if v.Passed() {
		fmt.Fprintf(p.out, "\nResult: %s\n", p.scheme.pass.Sprint("PASSED"))
	} else {
		fmt.Fprintf(p.out, "\nResult: %s\n", p.scheme.fail.Sprint("FAILED"))
	}
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
