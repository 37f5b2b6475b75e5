// Package view derives a serializable, UI-ready projection of the
// authoritative model. Building a view never mutates model state; it is a
// pure function over a point-in-time read of a DirIndex.
package view

import (
	"path/filepath"

	"github.com/davidhvernon/dirp/internal/model"
)

// Node is one row of a projected tree: a directory, file, or symlink with
// its view-time percent and, for directories whose contents are included,
// its children.
type Node struct {
	Path      string
	Name      string
	Kind      model.EntryKind // EntryFile, EntrySymLink, or a Dir (see IsDir)
	IsDir     bool
	IsOpen    bool
	IsMarked  bool
	SizeBytes int64
	Percent   int
	Children  []*Node
}

// Tree is the root of a projected view.
type Tree struct {
	Root *Node
}

// Build projects idx into a Tree rooted at root. When includeAll is true
// every directory's children are included regardless of IsOpen (used by
// RemoveMarked, which must see the whole marked set regardless of what's
// currently expanded on screen).
func Build(idx *model.DirIndex, root string, includeAll bool) *Tree {
	rootDir := idx.Get(root)
	var rootSize int64
	if rootDir != nil {
		rootSize = rootDir.SizeBytes
	}

	b := &builder{idx: idx, includeAll: includeAll, rootSize: rootSize}
	return &Tree{Root: b.buildDir(root, rootDir, true)}
}

type builder struct {
	idx        *model.DirIndex
	includeAll bool
	rootSize   int64
}

// buildDir renders the Dir at path. defaultOpen governs the stub rendered
// when dir is nil (still-scanning DirRef case): the root is always
// considered conceptually open while still-scanning; non-root stubs are
// closed (they have nothing to show yet regardless).
func (b *builder) buildDir(path string, dir *model.Dir, defaultOpen bool) *Node {
	n := &Node{
		Path:  path,
		Name:  filepath.Base(path),
		Kind:  model.EntryDirRef,
		IsDir: true,
	}

	if dir == nil {
		// Still-scanning case: substitute a zero-size stub.
		n.IsOpen = defaultOpen
		n.SizeBytes = 0
		n.Percent = b.percent(0)
		return n
	}

	n.IsOpen = dir.IsOpen
	n.IsMarked = dir.IsMarked
	n.SizeBytes = dir.SizeBytes
	n.Percent = b.percent(dir.SizeBytes)

	if b.includeAll || dir.IsOpen {
		n.Children = make([]*Node, 0, len(dir.Entries))
		for _, e := range dir.Entries {
			n.Children = append(n.Children, b.buildEntry(e))
		}
	}

	return n
}

func (b *builder) buildEntry(e model.Entry) *Node {
	if e.Kind == model.EntryDirRef {
		child := b.idx.Get(e.Path)
		return b.buildDir(e.Path, child, false)
	}

	return &Node{
		Path:      e.Path,
		Name:      filepath.Base(e.Path),
		Kind:      e.Kind,
		IsDir:     false,
		IsMarked:  e.IsMarked,
		SizeBytes: e.SizeBytes,
		Percent:   b.percent(e.SizeBytes),
	}
}

// percent computes round((size/rootSize)*100) clamped to [0,100], with 0
// when rootSize is 0.
func (b *builder) percent(size int64) int {
	if b.rootSize <= 0 {
		return 0
	}
	pct := int((float64(size)/float64(b.rootSize))*100 + 0.5)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
