package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorBorder  = lipgloss.Color("#2a3850")
	colorAccent  = lipgloss.Color("#2196F3")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles - стили доски распределения.
type Styles struct {
	Title        lipgloss.Style
	Column       lipgloss.Style
	ActiveColumn lipgloss.Style
	DropTarget   lipgloss.Style
	ColumnTitle  lipgloss.Style
	Badge        lipgloss.Style
	Card         lipgloss.Style
	Cursor       lipgloss.Style
	Dimmed       lipgloss.Style
	Organisation lipgloss.Style
	Placeholder  lipgloss.Style
	Overlay      lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles возвращает стили по умолчанию.
func DefaultStyles() Styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(28)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Column:       column,
		ActiveColumn: column.BorderForeground(colorAccent),
		DropTarget:   column.BorderForeground(colorPrimary).BorderStyle(lipgloss.DoubleBorder()),
		ColumnTitle:  lipgloss.NewStyle().Bold(true),
		Badge:        lipgloss.NewStyle().Foreground(colorMuted),
		Card:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Dimmed:       lipgloss.NewStyle().Faint(true),
		Organisation: lipgloss.NewStyle().Foreground(colorMuted),
		Placeholder:  lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Overlay:      lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Status:       lipgloss.NewStyle().Foreground(colorWarning),
		Error:        lipgloss.NewStyle().Foreground(colorError),
		Help:         lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
