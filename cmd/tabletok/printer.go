package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// errCodeColors maps each spec error code to a distinct fatih/color sprint
// function, one color per failure class in the diagnostic line.
var errCodeColors = map[string]func(format string, a ...interface{}) string{
	"INVALID_LINE":     color.New(color.FgRed).SprintfFunc(),
	"TOO_MANY_COLS":    color.New(color.FgMagenta).SprintfFunc(),
	"NOT_ENOUGH_COLS":  color.New(color.FgYellow).SprintfFunc(),
	"CONVERSION_ERROR": color.New(color.FgCyan).SprintfFunc(),
	"OVERFLOW_ERROR":   color.New(color.FgBlue).SprintfFunc(),
}

// printer renders CLI output, disabling all styling when asked to or when
// stdout is not a terminal.
type printer struct {
	w       io.Writer
	colored bool
}

func newPrinter(noColor bool) *printer {
	colored := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	return &printer{w: os.Stdout, colored: colored}
}

func (p *printer) success(message string) {
	if !p.colored {
		fmt.Fprintf(p.w, "%s %s\n", successSymbol, message)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", successStyle.Render(successSymbol), message)
}

func (p *printer) infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !p.colored {
		fmt.Fprintf(p.w, "%s %s\n", infoSymbol, msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", infoStyle.Render(infoSymbol), msg)
}

func (p *printer) header(name string) {
	if !p.colored {
		fmt.Fprintln(p.w, name)
		return
	}
	fmt.Fprintln(p.w, headerStyle.Render(name))
}

// errorCode prints a diagnostic line colorized per the spec's error code
// taxonomy, falling back to plain errorStyle when the code isn't in the map.
func (p *printer) errorCode(code string, message string) {
	if !p.colored {
		fmt.Fprintf(p.w, "%s %s: %s\n", errorSymbol, code, message)
		return
	}
	colorFn, ok := errCodeColors[code]
	if !ok {
		fmt.Fprintf(p.w, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", errorStyle.Render(errorSymbol), colorFn("%s: %s", code, message))
}
