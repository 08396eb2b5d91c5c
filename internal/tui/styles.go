package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cainthebest/fibext/internal/ui"
)

// Style variables for the sequence viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	titleStyle         lipgloss.Style
	elapsedStyle       lipgloss.Style
	indexStyle         lipgloss.Style
	termStyle          lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	footerKeyStyle     lipgloss.Style
	footerDescStyle    lipgloss.Style
	sysStyle           lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all viewer styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	indexStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	termStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	statusRunningStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	sysStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
