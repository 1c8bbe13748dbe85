package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette styles console output. A disabled palette renders plain text.
type palette struct {
	enabled bool
	prompt  lipgloss.Style
	number  lipgloss.Style
	hint    lipgloss.Style
	score   lipgloss.Style
}

func newPalette(enabled bool) palette {
	return palette{
		enabled: enabled,
		prompt:  lipgloss.NewStyle().Bold(true),
		number:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		score:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

func (p palette) render(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}

// IsTerminal reports whether a writer is a TTY.
func IsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
