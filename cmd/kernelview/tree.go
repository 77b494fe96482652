package main

import (
	"sort"

	"github.com/arizkami/aurora-kernel-sub000/config"
)

// node is one key in the tree, grounded on the teacher's keytree.Item
// (cmd/hiveexplorer/keytree/types.go) but trimmed to what kernelview
// actually renders: no diff/bookmark/timestamp fields, since this repo's
// façade exposes none of those.
type node struct {
	path        string
	name        string
	depth       int
	hasChildren bool
	expanded    bool
}

// loadTree lists the root-level keys only, collapsed. Deeper levels are
// loaded lazily by childrenOf the first time a node is expanded, grounded
// on the teacher's keytree.Loader (cmd/hiveexplorer/keytree/loader.go),
// which streams children on demand instead of walking the whole hive up
// front.
func loadTree(f *config.Facade) ([]node, error) {
	names, err := f.RootSubkeys()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	nodes := make([]node, 0, len(names))
	for _, name := range names {
		subs, err := f.ListSubkeys(name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node{
			path:        name,
			name:        name,
			depth:       0,
			hasChildren: len(subs) > 0,
		})
	}
	return nodes, nil
}

// visibleRows returns the indices of nodes whose ancestors are all
// expanded, in the order they were loaded (which is already depth-first).
func visibleRows(nodes []node) []int {
	var visible []int
	hiddenBelowDepth := -1
	for i, n := range nodes {
		if hiddenBelowDepth != -1 {
			if n.depth > hiddenBelowDepth {
				continue
			}
			hiddenBelowDepth = -1
		}
		visible = append(visible, i)
		if n.hasChildren && !n.expanded {
			hiddenBelowDepth = n.depth
		}
	}
	return visible
}

// childrenOf loads the direct subkeys of nodes[idx] lazily, the first time
// it is expanded, and splices them into nodes right after it.
func childrenOf(f *config.Facade, nodes []node, idx int) ([]node, error) {
	parent := nodes[idx]
	subs, err := f.ListSubkeys(parent.path)
	if err != nil {
		return nil, err
	}
	sort.Strings(subs)

	var children []node
	for _, name := range subs {
		childPath := parent.path + "\\" + name
		grandchildren, err := f.ListSubkeys(childPath)
		if err != nil {
			return nil, err
		}
		children = append(children, node{
			path:        childPath,
			name:        name,
			depth:       parent.depth + 1,
			hasChildren: len(grandchildren) > 0,
		})
	}

	next := make([]node, 0, len(nodes)+len(children))
	next = append(next, nodes[:idx+1]...)
	next = append(next, children...)
	next = append(next, nodes[idx+1:]...)
	return next, nil
}

// collapse removes idx's descendants (contiguous nodes with depth greater
// than idx's) from nodes, leaving idx itself in place.
func collapse(nodes []node, idx int) []node {
	depth := nodes[idx].depth
	end := idx + 1
	for end < len(nodes) && nodes[end].depth > depth {
		end++
	}
	next := make([]node, 0, len(nodes)-(end-idx-1))
	next = append(next, nodes[:idx+1]...)
	next = append(next, nodes[end:]...)
	return next
}
