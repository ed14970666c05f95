package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles one writer renders with.
type Theme struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Pending lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme builds the classic palette on r. Tabs are left alone because
// task text must reach the terminal exactly as stored.
func NewTheme(r *lipgloss.Renderer) Theme {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Theme{
		Title:   base.Bold(true),
		Success: base.Foreground(lipgloss.Color("42")),
		Pending: base.Foreground(lipgloss.Color("214")),
		Accent:  base.Foreground(lipgloss.Color("12")),
		Muted:   base.Faint(true),
		Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
	}
}
