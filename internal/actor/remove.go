package actor

import (
	"sort"

	"github.com/davidhvernon/dirp/internal/view"
)

// removeMarked builds a fully expanded view, collects every marked path
// that has no marked ancestor (so a marked directory suppresses requests
// for anything beneath it), and hands the sorted result to the trash
// collaborator. The event loop exits either way: a trash failure is
// reported to the caller of Run, but it never corrupts the model — the
// paths simply remain on disk.
func (a *Actor) removeMarked() error {
	tree := view.Build(a.index, a.root, true)

	var targets []string
	collectMarked(tree.Root, &targets)
	sort.Strings(targets)

	if len(targets) == 0 {
		return nil
	}
	return a.trash.Move(targets)
}

// collectMarked walks node depth-first, recording a path and stopping
// that branch as soon as it finds a marked node — any descendant beneath
// an already-marked node is redundant to request separately.
func collectMarked(node *view.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.IsMarked {
		*out = append(*out, node.Path)
		return
	}
	for _, c := range node.Children {
		collectMarked(c, out)
	}
}
