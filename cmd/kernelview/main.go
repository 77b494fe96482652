// Command kernelview is an interactive terminal UI for browsing a hive
// image's key tree and values (spec §4.G surfaced interactively,
// alongside kernelview's own capability-table and ready-queue inspector
// for a freshly built in-memory kernel).
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: kernelview <hive-file>")
		os.Exit(1)
	}
	if os.Args[1] == "--help" || os.Args[1] == "-h" {
		printHelp()
		os.Exit(0)
	}

	hivePath := os.Args[1]
	if _, err := os.Stat(hivePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: hive file not found: %s\n", hivePath)
		os.Exit(1)
	}

	m, err := newModel(hivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running TUI: %v\n", err)
		os.Exit(1)
	}
	if fm, ok := finalModel.(model); ok {
		_ = fm.Close()
	}
}

func printHelp() {
	fmt.Println("kernelview - interactive viewer for a hive image and an in-memory kernel")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  kernelview <hive-file>")
	fmt.Println()
	fmt.Println("PANES:")
	fmt.Println("  tree     key tree of the hive's config namespace")
	fmt.Println("  values   values under the selected key")
	fmt.Println("  kernel   capability table and ready queues of a demo kernel")
	fmt.Println()
	fmt.Println("KEYS:")
	fmt.Println("  up/k down/j   move cursor")
	fmt.Println("  tab           switch pane")
	fmt.Println("  enter/right   expand key")
	fmt.Println("  left          collapse key")
	fmt.Println("  y             copy selected value's hex to the clipboard")
	fmt.Println("  ?             toggle this help overlay")
	fmt.Println("  q             quit")
}
