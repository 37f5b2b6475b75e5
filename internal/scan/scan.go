// Package scan implements the Scan Worker: reading one directory level at
// a time and classifying its entries. Workers never recurse — the state
// actor decides which subdirectories get scanned next and dispatches them
// as new Tasks.
package scan

import (
	"os"
	"path/filepath"

	"github.com/davidhvernon/dirp/internal/model"
)

// Task names one directory to scan, and whether its Dir record should
// start open (true only for the scan root).
type Task struct {
	Path          string
	IsOpenDefault bool
}

// Result is emitted exactly once per Task, even when the directory could
// not be read at all (in which case Entries is empty).
type Result struct {
	Path          string
	IsOpenDefault bool
	Entries       []model.Entry
}

// denylist skips well-known pseudo-mounts and noise entries that aren't
// meaningful filesystem content, matching the platform-specific list a
// directory profiler has to special-case on macOS.
var denylist = map[string]bool{
	".DS_Store":       true,
	"/Volumes":        true,
	"/System/Volumes": true,
}

func isDenylisted(path, name string) bool {
	if denylist[name] {
		return true
	}
	return denylist[path]
}

// One reads a single directory level and classifies each readable child.
// Per-entry stat failures drop only that entry; a failure to read the
// directory itself still produces a Result, just with no entries, so the
// actor can install a (possibly empty) node and keep size accounting
// consistent.
func One(task Task) Result {
	res := Result{Path: task.Path, IsOpenDefault: task.IsOpenDefault}

	dirEntries, err := os.ReadDir(task.Path)
	if err != nil {
		return res
	}

	res.Entries = make([]model.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		childPath := filepath.Join(task.Path, name)

		if isDenylisted(childPath, name) {
			continue
		}

		info, err := os.Lstat(childPath)
		if err != nil {
			// Per-entry metadata failure: drop silently, never surfaced
			// mid-session.
			continue
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			// Checked first. Lstat describes the link itself, so the
			// target's type never decides the classification.
			res.Entries = append(res.Entries, model.Entry{
				Kind: model.EntrySymLink,
				Path: childPath,
			})
		case info.IsDir():
			res.Entries = append(res.Entries, model.Entry{
				Kind: model.EntryDirRef,
				Path: childPath,
			})
		case info.Mode().IsRegular():
			res.Entries = append(res.Entries, model.Entry{
				Kind:      model.EntryFile,
				Path:      childPath,
				SizeBytes: info.Size(),
			})
		default:
			// Device files, sockets, etc: not file/dir/symlink, skipped.
		}
	}

	return res
}
