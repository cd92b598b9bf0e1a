package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }

// styler applies styles only when out is a terminal.
type styler struct {
	enabled bool
}

func newStyler(out io.Writer) styler {
	f, ok := out.(*os.File)
	return styler{enabled: ok && isatty.IsTerminal(f.Fd())}
}

func (s styler) render(style func(string) string, text string) string {
	if !s.enabled {
		return text
	}
	return style(text)
}

func (s styler) bold(text string) string {
	return s.render(func(t string) string { return boldStyle.Render(t) }, text)
}
