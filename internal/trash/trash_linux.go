//go:build linux

package trash

import (
	"fmt"
	"os/exec"
)

// OSMover shells out to gio (GLib/GNOME's trash-aware file mover), which
// is present on the overwhelming majority of desktop Linux installs and
// correctly implements the freedesktop.org trash spec. trash-cli is tried
// as a fallback when gio is absent.
type OSMover struct{}

// NewOSMover returns the platform trash mover.
func NewOSMover() *OSMover {
	return &OSMover{}
}

// Move trashes each path in turn, stopping at the first failure.
func (m *OSMover) Move(paths []string) error {
	bin, args := trashCommand()
	for _, p := range paths {
		cmd := exec.Command(bin, append(append([]string{}, args...), p)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("trash %s: %w: %s", p, err, out)
		}
	}
	return nil
}

func trashCommand() (string, []string) {
	if _, err := exec.LookPath("gio"); err == nil {
		return "gio", []string{"trash"}
	}
	return "trash-put", nil
}
