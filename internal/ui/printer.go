// Package ui renders command-line output for slidesmith. Styling is
// applied only when the output stream is a terminal, so piped output
// stays plain.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Printer writes human-facing command output.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter builds a printer for out. Styling is enabled when out is a
// terminal.
func NewPrinter(out io.Writer) *Printer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{out: out, styled: styled}
}

// Styled reports whether the printer emits ANSI styling.
func (p *Printer) Styled() bool {
	return p.styled
}

// Headerf prints a bold section line.
func (p *Printer) Headerf(format string, args ...any) {
	p.println(headerStyle, fmt.Sprintf(format, args...))
}

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.println(successStyle, fmt.Sprintf(format, args...))
}

// Failuref prints a failure line.
func (p *Printer) Failuref(format string, args ...any) {
	p.println(failureStyle, fmt.Sprintf(format, args...))
}

// Detailf prints a dimmed detail line.
func (p *Printer) Detailf(format string, args ...any) {
	p.println(detailStyle, fmt.Sprintf(format, args...))
}

func (p *Printer) println(style lipgloss.Style, text string) {
	if p.styled {
		text = style.Render(text)
	}
	fmt.Fprintln(p.out, text)
}
