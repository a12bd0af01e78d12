// Package output provides styled terminal output for the CLI.
// Styles degrade to plain text when the writer is not a terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled human-readable messages to a writer.
type Printer struct {
	w      io.Writer
	styles styles
}

type styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Heading lipgloss.Style
	Dim     lipgloss.Style
}

// NewPrinter creates a Printer. Colors are enabled only when isTTY is true.
func NewPrinter(w io.Writer, isTTY bool) *Printer {
	s := styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
	if !isTTY {
		s = styles{
			Success: lipgloss.NewStyle(),
			Warning: lipgloss.NewStyle(),
			Error:   lipgloss.NewStyle(),
			Heading: lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
		}
	}
	return &Printer{w: w, styles: s}
}

// IsTTY reports whether a writer is a terminal. Returns true only for
// an *os.File backed by a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Heading prints a bold section heading.
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Heading.Render(fmt.Sprintf(format, args...)))
}

// Success prints a checkmarked success line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Success.Render("✓"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Warning.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Error.Render("Error:"), fmt.Sprintf(format, args...))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Dim prints a de-emphasized line.
func (p *Printer) Dim(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Dim.Render(fmt.Sprintf(format, args...)))
}
