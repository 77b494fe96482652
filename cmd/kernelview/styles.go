package main

import "github.com/charmbracelet/lipgloss"

// Styles follow the teacher's styles.go palette shape
// (cmd/hiveexplorer/styles.go): one style per UI role, no theming layer.
var (
	styleFocusedPane = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	styleBlurredPane = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	styleCursorRow   = lipgloss.NewStyle().Reverse(true)
	styleStatusBar   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHelpOverlay = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 2)
)
