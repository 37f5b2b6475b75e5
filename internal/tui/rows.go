package tui

import (
	"sort"

	"github.com/davidhvernon/dirp/internal/view"
)

// flatten renders tree into the visible row list: children of an open
// directory appear sorted descending by size, ties keeping the order
// the view builder produced them in (stable sort, per the ordering-
// stability property). Closed directories and unscanned stubs simply
// contribute no rows beyond themselves — view.Build already omitted
// their Children.
func flatten(tree *view.Tree) []row {
	var rows []row
	if tree == nil || tree.Root == nil {
		return rows
	}
	appendNode(&rows, tree.Root, 0)
	return rows
}

func appendNode(rows *[]row, n *view.Node, depth int) {
	*rows = append(*rows, row{node: n, depth: depth})

	if len(n.Children) == 0 {
		return
	}
	children := make([]*view.Node, len(n.Children))
	copy(children, n.Children)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].SizeBytes > children[j].SizeBytes
	})
	for _, c := range children {
		appendNode(rows, c, depth+1)
	}
}
