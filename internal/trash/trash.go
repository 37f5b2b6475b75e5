// Package trash is the narrow external collaborator the state actor talks
// to when the operator confirms RemoveMarked. The core never deletes
// anything itself; it only asks a Mover to do so, in sorted order, for a
// set of paths it has already determined are safe to request (no marked
// ancestor among them).
package trash

// Mover sends paths to the operating system's trash/recycle facility.
// Implementations must never permanently delete; a failed Move leaves the
// path untouched.
type Mover interface {
	Move(paths []string) error
}

// NopMover is a Mover that does nothing. It exists for tests and for
// headless invocations that want to exercise RemoveMarked's selection
// logic without touching the filesystem.
type NopMover struct {
	Moved [][]string
}

// Move records the request and always succeeds.
func (m *NopMover) Move(paths []string) error {
	cp := make([]string, len(paths))
	copy(cp, paths)
	m.Moved = append(m.Moved, cp)
	return nil
}
