package main

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneHeight := msg.Height - 4
		m.treeViewport.Width = msg.Width / 2
		m.treeViewport.Height = paneHeight
		m.valuesViewport.Width = msg.Width - msg.Width/2
		m.valuesViewport.Height = paneHeight / 2
		m.kernelViewport.Width = msg.Width - msg.Width/2
		m.kernelViewport.Height = paneHeight - paneHeight/2
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		// Any other key dismisses the overlay; q/ctrl+c still quits.
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focused = (m.focused + 1) % 3
		return m, nil
	}

	switch m.focused {
	case treePane:
		return m.handleTreeKey(msg)
	case valuesPane:
		return m.handleValuesKey(msg)
	default:
		return m, nil
	}
}

func (m model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := visibleRows(m.nodes)
	switch msg.String() {
	case "up", "k":
		if m.treeCursor > 0 {
			m.treeCursor--
			m.reloadValues()
		}
	case "down", "j":
		if m.treeCursor < len(visible)-1 {
			m.treeCursor++
			m.reloadValues()
		}
	case "right", "enter", "l":
		if len(visible) == 0 {
			break
		}
		idx := visible[m.treeCursor]
		n := m.nodes[idx]
		if n.hasChildren && !n.expanded {
			nodes, err := childrenOf(m.facade, m.nodes, idx)
			if err != nil {
				m.err = err
				break
			}
			m.nodes = nodes
			m.nodes[idx].expanded = true
		}
	case "left", "h":
		if len(visible) == 0 {
			break
		}
		idx := visible[m.treeCursor]
		if m.nodes[idx].expanded {
			m.nodes[idx].expanded = false
			m.nodes = collapse(m.nodes, idx)
		}
	}
	return m, nil
}

func (m model) handleValuesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.valueCursor > 0 {
			m.valueCursor--
		}
	case "down", "j":
		if m.valueCursor < len(m.values)-1 {
			m.valueCursor++
		}
	case "y":
		if m.valueCursor < len(m.values) {
			if err := clipboard.WriteAll(m.values[m.valueCursor].hex()); err != nil {
				m.statusMessage = "copy failed: " + err.Error()
			} else {
				m.statusMessage = "copied " + m.values[m.valueCursor].name + " to clipboard"
			}
		}
	}
	return m, nil
}
