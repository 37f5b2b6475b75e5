package actor

import "github.com/davidhvernon/dirp/internal/model"

// mark applies value to the node at path: deep-marking every descendant
// if path names a directory, or flipping the single entry in its parent's
// list if path names a file or symlink. An unknown path is a no-op, per
// §4.2's failure semantics.
func (a *Actor) mark(path string, value bool) {
	if d := a.index.Get(path); d != nil {
		a.markDirDeep(d, value)
		a.dirty = true
		return
	}

	parent := a.index.Get(model.ParentPath(path))
	if parent == nil {
		return
	}
	for i := range parent.Entries {
		if parent.Entries[i].Path == path {
			parent.Entries[i].IsMarked = value
			a.dirty = true
			return
		}
	}
}

// markDirDeep marks d itself, then every entry in its list: files and
// symlinks directly, and directories by recursing into the resolved Dir
// (if scanned) after mirroring the mark onto the DirRef placeholder too,
// so the deep-mark invariant already holds for a not-yet-scanned
// subdirectory once it does get installed (handleDirScanned carries
// IsMarked forward onto freshly scanned entries of an already-marked
// parent).
func (a *Actor) markDirDeep(d *model.Dir, value bool) {
	d.IsMarked = value
	for i := range d.Entries {
		e := &d.Entries[i]
		e.IsMarked = value
		if e.Kind == model.EntryDirRef {
			if child := a.index.Get(e.Path); child != nil {
				a.markDirDeep(child, value)
			}
		}
	}
}

// isMarked reports the current mark state of the node at path, used by
// ToggleMark to decide which way to flip. An unknown path reads as
// unmarked.
func (a *Actor) isMarked(path string) bool {
	if d := a.index.Get(path); d != nil {
		return d.IsMarked
	}
	parent := a.index.Get(model.ParentPath(path))
	if parent == nil {
		return false
	}
	for _, e := range parent.Entries {
		if e.Path == path {
			return e.IsMarked
		}
	}
	return false
}
