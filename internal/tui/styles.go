package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#6366F1")
	colorText    = lipgloss.Color("#F8FAFC")
	colorMuted   = lipgloss.Color("#64748B")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

var styles = struct {
	Title      lipgloss.Style
	ModeActive lipgloss.Style
	ModeIdle   lipgloss.Style
	Arrow      lipgloss.Style
	Box        lipgloss.Style
	Output     lipgloss.Style
	OutputErr  lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Badge      lipgloss.Style
	Modal      lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	ModeActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(colorText).
		Background(colorAccent).
		Padding(0, 2),
	ModeIdle: lipgloss.NewStyle().
		Foreground(colorMuted).
		Underline(true).
		Padding(0, 2),
	Arrow: lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1),
	Output:    lipgloss.NewStyle().Foreground(colorText),
	OutputErr: lipgloss.NewStyle().Foreground(colorError),
	Muted:     lipgloss.NewStyle().Foreground(colorMuted),
	Success:   lipgloss.NewStyle().Foreground(colorSuccess),
	Error:     lipgloss.NewStyle().Foreground(colorError),
	Badge:     lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorError).
		Padding(1, 3),
}
