package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m model) View() string {
	if m.width == 0 {
		return "loading...\n"
	}

	background := m.renderPanes()
	if !m.showHelp {
		return background
	}

	help := overlay.New(
		staticModel{content: helpText()},
		staticModel{content: background},
		overlay.Center, overlay.Center,
		0, 0,
	)
	return help.View()
}

func (m model) renderPanes() string {
	treeStyle, valuesStyle, kernelStyle := styleBlurredPane, styleBlurredPane, styleBlurredPane
	switch m.focused {
	case treePane:
		treeStyle = styleFocusedPane
	case valuesPane:
		valuesStyle = styleFocusedPane
	case kernelPane:
		kernelStyle = styleFocusedPane
	}

	treePanel := treeStyle.Render(m.renderTree())
	valuesPanel := valuesStyle.Render(m.renderValues())
	kernelPanel := kernelStyle.Render(m.renderKernel())

	rightColumn := lipgloss.JoinVertical(lipgloss.Left, valuesPanel, kernelPanel)
	body := lipgloss.JoinHorizontal(lipgloss.Top, treePanel, rightColumn)

	status := styleStatusBar.Render(m.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m model) renderTree() string {
	visible := visibleRows(m.nodes)
	var b strings.Builder
	b.WriteString("KEY TREE\n")
	for row, idx := range visible {
		n := m.nodes[idx]
		marker := "  "
		if n.hasChildren {
			if n.expanded {
				marker = "- "
			} else {
				marker = "+ "
			}
		}
		line := fmt.Sprintf("%s%s%s", strings.Repeat("  ", n.depth), marker, n.name)
		if row == m.treeCursor {
			line = styleCursorRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderValues() string {
	var b strings.Builder
	b.WriteString("VALUES\n")
	for i, v := range m.values {
		line := v.String()
		if i == m.valueCursor && m.focused == valuesPane {
			line = styleCursorRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderKernel() string {
	var b strings.Builder
	b.WriteString("KERNEL\n")
	for _, line := range m.kernel.rows() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) statusLine() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v", m.err)
	}
	if m.statusMessage != "" {
		return m.statusMessage
	}
	return fmt.Sprintf("%s | tab: switch pane | ?: help | q: quit", m.hivePath)
}

func helpText() string {
	return styleHelpOverlay.Render(strings.Join([]string{
		"kernelview",
		"",
		"up/k down/j   move cursor",
		"tab           switch pane",
		"enter/l       expand key",
		"h             collapse key",
		"y             copy value hex to clipboard",
		"?             toggle help",
		"q             quit",
	}, "\n"))
}

// staticModel adapts a pre-rendered string into the tea.Model interface
// overlay.New expects for its foreground and background layers: neither
// layer needs to handle messages of its own, since kernelview's real
// model already processed the input before View was called.
type staticModel struct {
	content string
}

func (s staticModel) Init() tea.Cmd                           { return nil }
func (s staticModel) Update(tea.Msg) (tea.Model, tea.Cmd)      { return s, nil }
func (s staticModel) View() string                             { return s.content }
