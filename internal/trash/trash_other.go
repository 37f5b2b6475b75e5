//go:build !darwin && !linux && !windows

package trash

import "fmt"

// OSMover reports failure on platforms with no wired trash helper, rather
// than silently no-opping and leaving the operator believing deletion
// happened.
type OSMover struct{}

// NewOSMover returns the platform trash mover.
func NewOSMover() *OSMover {
	return &OSMover{}
}

// Move always fails on unsupported platforms.
func (m *OSMover) Move(paths []string) error {
	return fmt.Errorf("trash: no OS trash helper wired for this platform (%d paths requested)", len(paths))
}
