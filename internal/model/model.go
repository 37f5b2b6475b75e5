// Package model holds the authoritative, path-indexed directory tree.
//
// A Dir never references its parent and never holds a pointer to another
// Dir; every relationship is expressed as a path. This mirrors the
// arena-plus-index pattern used for the state actor: paths are the handle,
// DirIndex is the arena, and parent lookup is done by deriving the parent
// path and indexing rather than by following a back-pointer.
package model

import "path/filepath"

// EntryKind tags the variant held by an Entry.
type EntryKind int

const (
	EntryFile EntryKind = iota
	EntrySymLink
	EntryDirRef
)

func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntrySymLink:
		return "symlink"
	case EntryDirRef:
		return "dirref"
	default:
		return "unknown"
	}
}

// Entry is a child held directly in a Dir's entry list: a File, a SymLink,
// or a DirRef placeholder for a subdirectory not yet (or still being)
// scanned. Dirs themselves are never stored as entries; a directory child
// is always a DirRef, resolved against DirIndex by path.
type Entry struct {
	Kind      EntryKind
	Path      string
	SizeBytes int64 // file size; always 0 for SymLink and DirRef
	IsMarked  bool
}

// Dir is a scanned directory: the authoritative record for one path.
type Dir struct {
	Path      string
	IsOpen    bool
	IsMarked  bool
	SizeBytes int64 // local files + all descendant files, once quiesced
	Entries   []Entry
}

// DirIndex is the single authoritative store, path -> Dir. It is owned
// exclusively by the state actor; nothing outside that goroutine may
// mutate it. Views are built from point-in-time reads of it.
type DirIndex struct {
	dirs map[string]*Dir
}

// NewDirIndex returns an empty index.
func NewDirIndex() *DirIndex {
	return &DirIndex{dirs: make(map[string]*Dir)}
}

// Get returns the Dir at path, or nil if unseen/not yet scanned.
func (idx *DirIndex) Get(path string) *Dir {
	return idx.dirs[path]
}

// Set installs or overwrites the Dir record at path.
func (idx *DirIndex) Set(d *Dir) {
	idx.dirs[d.Path] = d
}

// Len reports how many directories have been installed.
func (idx *DirIndex) Len() int {
	return len(idx.dirs)
}

// ParentPath returns the parent directory of path, or "" if path has no
// parent distinguishable from itself (i.e. path is already a root).
func ParentPath(path string) string {
	parent := filepath.Dir(path)
	if parent == path {
		return ""
	}
	return parent
}
