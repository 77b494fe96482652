package main

import (
	"encoding/hex"
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pane identifies which of kernelview's three panes has focus, grounded on
// the teacher's Pane type (cmd/hiveexplorer/model.go).
type pane int

const (
	treePane pane = iota
	valuesPane
	kernelPane
)

// valueRow is one value under the currently selected key.
type valueRow struct {
	name string
	vtyp config.ValueType
	data []byte
}

// model is kernelview's top-level bubbletea model (spec §4.G browsed
// interactively, plus a demo kernel pane). Grounded on the teacher's
// Model struct (cmd/hiveexplorer/model.go) but with one façade instead of
// a diff-mode pair of readers, and no search/bookmark/diff modes.
type model struct {
	hivePath string
	store    *hive.Store
	closeFn  func() error
	facade   *config.Facade

	nodes      []node
	treeCursor int

	values      []valueRow
	valueCursor int

	kernel *kernelPanel

	focused pane
	keys    keyMap
	width   int
	height  int

	treeViewport   viewport.Model
	valuesViewport viewport.Model
	kernelViewport viewport.Model

	showHelp      bool
	statusMessage string
	err           error
}

func newModel(hivePath string) (model, error) {
	store, closeFn, err := openStore(hivePath)
	if err != nil {
		return model{}, err
	}

	facade, err := config.Open(store)
	if err != nil {
		closeFn()
		return model{}, err
	}

	nodes, err := loadTree(facade)
	if err != nil {
		closeFn()
		return model{}, err
	}

	kp, err := newKernelPanel()
	if err != nil {
		closeFn()
		return model{}, err
	}

	m := model{
		hivePath:       hivePath,
		store:          store,
		closeFn:        closeFn,
		facade:         facade,
		nodes:          nodes,
		kernel:         kp,
		focused:        treePane,
		keys:           defaultKeyMap(),
		treeViewport:   viewport.New(0, 0),
		valuesViewport: viewport.New(0, 0),
		kernelViewport: viewport.New(0, 0),
	}
	m.reloadValues()
	return m, nil
}

func (m model) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// reloadValues refetches the value list for the node under the tree
// cursor, leaving m.values empty if the tree has no rows yet.
func (m *model) reloadValues() {
	m.valueCursor = 0
	m.values = nil

	visible := visibleRows(m.nodes)
	if len(visible) == 0 || m.treeCursor >= len(visible) {
		return
	}
	path := m.nodes[visible[m.treeCursor]].path

	names, err := m.facade.ListValues(path)
	if err != nil {
		m.err = err
		return
	}
	for _, name := range names {
		vtyp, data, err := m.facade.GetValue(path, name)
		if err != nil {
			continue
		}
		m.values = append(m.values, valueRow{name: name, vtyp: vtyp, data: data})
	}
}

func (m valueRow) hex() string {
	return hex.EncodeToString(m.data)
}

func (m valueRow) String() string {
	return fmt.Sprintf("%-20s %-8s %s", m.name, m.vtyp, m.hex())
}
