// Package actor implements the State Actor: the single goroutine that
// owns the DirIndex, serializes every mutation, dispatches scans for
// newly discovered subdirectories, and publishes coalesced view snapshots
// on a fixed tick.
package actor

import (
	"context"
	"time"

	"github.com/davidhvernon/dirp/internal/logging"
	"github.com/davidhvernon/dirp/internal/model"
	"github.com/davidhvernon/dirp/internal/scan"
	"github.com/davidhvernon/dirp/internal/trash"
	"github.com/davidhvernon/dirp/internal/view"
)

// DefaultTickInterval is the published-view coalescing cadence.
const DefaultTickInterval = 100 * time.Millisecond

// Actor owns the DirIndex exclusively and drives the scan/command/tick
// event loop described in §4.2.
type Actor struct {
	root  string
	index *model.DirIndex
	dirty bool

	pool         *scan.Pool
	pendingScans []scan.Task

	trash trash.Mover

	scanResults chan scan.Result
	commands    chan Command
	publish     chan *view.Tree

	tickInterval time.Duration
}

// New constructs an Actor rooted at root. Call SetPool with a pool built
// from ScanResults() before calling Run — the two-step construction lets
// the pool be wired to this Actor's own inbox channel rather than some
// channel created before the Actor existed.
func New(root string, mover trash.Mover, publish chan *view.Tree, tickInterval time.Duration) *Actor {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return &Actor{
		root:         root,
		index:        model.NewDirIndex(),
		trash:        mover,
		scanResults:  make(chan scan.Result, 4096),
		commands:     make(chan Command, 64),
		publish:      publish,
		tickInterval: tickInterval,
	}
}

// ScanResults returns the channel a scan Pool should send Results to.
func (a *Actor) ScanResults() chan<- scan.Result { return a.scanResults }

// SetPool wires the scan pool this Actor dispatches Tasks to. Must be
// called before Run.
func (a *Actor) SetPool(pool *scan.Pool) { a.pool = pool }

// Commands returns the Command Channel the keyboard reader sends intents
// on.
func (a *Actor) Commands() chan<- Command { return a.commands }

// Run seeds the scan of root and drives the event loop until Quit,
// RemoveMarked, or ctx cancellation (which returns ctx.Err()). Publishing
// never blocks and never ends the loop: an undrained publish channel just
// keeps the newest snapshot. Run closes the publish channel on return.
func (a *Actor) Run(ctx context.Context) error {
	defer close(a.publish)

	a.dispatch(scan.Task{Path: a.root, IsOpenDefault: true})

	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case res := <-a.scanResults:
			a.handleDirScanned(res)
			a.flushPending()

		case cmd := <-a.commands:
			done, err := a.handleCommand(cmd)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		case <-ticker.C:
			a.handleTick()
			a.flushPending()
		}
	}
}

// dispatch hands a scan task to the pool without ever blocking the actor
// goroutine: a full task queue parks the task locally instead, to be
// retried after the next scan result or tick. This keeps the actor's single
// receive loop from deadlocking against workers that are themselves
// trying to send completed scans back to scanResults.
func (a *Actor) dispatch(task scan.Task) {
	if a.pool.TrySubmit(task) {
		return
	}
	a.pendingScans = append(a.pendingScans, task)
}

func (a *Actor) flushPending() {
	if len(a.pendingScans) == 0 {
		return
	}
	remaining := a.pendingScans[:0]
	for _, t := range a.pendingScans {
		if !a.pool.TrySubmit(t) {
			remaining = append(remaining, t)
		}
	}
	a.pendingScans = remaining
}

// handleDirScanned installs a scanned directory into the index, dispatches
// scans for its newly discovered subdirectories, and attributes its
// local file bytes to every ancestor already present in the index.
func (a *Actor) handleDirScanned(res scan.Result) {
	var localSize int64
	for _, e := range res.Entries {
		if e.Kind == model.EntryFile {
			localSize += e.SizeBytes
		}
	}

	existing := a.index.Get(res.Path)

	isOpen := res.IsOpenDefault
	isMarked := false
	if existing != nil {
		isOpen = existing.IsOpen
		isMarked = existing.IsMarked
	}
	if !isMarked {
		// A deep-mark issued while this directory was still scanning only
		// had the parent's DirRef placeholder to flip (§4.4); carry that
		// mark onto the Dir record now being installed for the first
		// time, so the deep-mark invariant holds regardless of scan/mark
		// ordering.
		if parent := a.index.Get(model.ParentPath(res.Path)); parent != nil {
			for _, e := range parent.Entries {
				if e.Kind == model.EntryDirRef && e.Path == res.Path && e.IsMarked {
					isMarked = true
					break
				}
			}
		}
	}

	entries := res.Entries
	if isMarked {
		// Preserve the deep-mark invariant across a rescan: a directory
		// that was already marked must mark its (re-discovered) entries
		// too.
		for i := range entries {
			entries[i].IsMarked = true
		}
	}

	a.index.Set(&model.Dir{
		Path:      res.Path,
		IsOpen:    isOpen,
		IsMarked:  isMarked,
		SizeBytes: localSize,
		Entries:   entries,
	})

	for _, e := range res.Entries {
		if e.Kind == model.EntryDirRef {
			a.dispatch(scan.Task{Path: e.Path, IsOpenDefault: false})
		}
	}

	for p := model.ParentPath(res.Path); p != ""; p = model.ParentPath(p) {
		ancestor := a.index.Get(p)
		if ancestor == nil {
			break
		}
		ancestor.SizeBytes += localSize
	}

	a.dirty = true

	if logging.Enabled {
		logging.Actor.Printf("installed %s entries=%d local=%d", res.Path, len(res.Entries), localSize)
	}
}

// handleCommand applies a single user intent. It returns done=true when
// the event loop should exit (Quit, RemoveMarked) and a non-nil error
// only on an unrecoverable trash failure.
func (a *Actor) handleCommand(cmd Command) (done bool, err error) {
	switch cmd.Kind {
	case CmdOpen:
		a.setOpen(cmd.Path, true)
	case CmdClose:
		a.setOpen(cmd.Path, false)
	case CmdToggleOpen:
		if d := a.index.Get(cmd.Path); d != nil {
			a.setOpen(cmd.Path, !d.IsOpen)
		}
	case CmdMark:
		a.mark(cmd.Path, true)
	case CmdUnmark:
		a.mark(cmd.Path, false)
	case CmdToggleMark:
		a.mark(cmd.Path, !a.isMarked(cmd.Path))
	case CmdRemoveMarked:
		return true, a.removeMarked()
	case CmdQuit:
		return true, nil
	}
	return false, nil
}

func (a *Actor) setOpen(path string, open bool) {
	d := a.index.Get(path)
	if d == nil {
		return
	}
	d.IsOpen = open
	a.dirty = true
}

// handleTick builds and publishes a view only if the model changed since
// the last tick; this tick-gated dirty flag is the sole coalescing
// mechanism, bounding publication to at most one snapshot per tick no
// matter how many DirScanned messages arrived in between.
func (a *Actor) handleTick() {
	if !a.dirty {
		return
	}
	tree := view.Build(a.index, a.root, false)
	a.publishBestEffort(tree)
	a.dirty = false
}

// publishBestEffort keeps only the freshest snapshot buffered: if the UI
// hasn't drained the previous tick's tree yet, it's replaced rather than
// queued, so the actor never blocks waiting on a slow renderer.
func (a *Actor) publishBestEffort(tree *view.Tree) {
	select {
	case a.publish <- tree:
		return
	default:
	}
	select {
	case <-a.publish:
	default:
	}
	select {
	case a.publish <- tree:
	default:
	}
}
