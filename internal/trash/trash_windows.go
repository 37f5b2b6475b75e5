//go:build windows

package trash

import (
	"fmt"
	"os/exec"
)

// OSMover shells out to a PowerShell recycle-bin helper. Driving the
// Windows IFileOperation recycle API directly would require cgo, which
// this repository avoids; PowerShell's Shell.Application COM object
// reaches the same recycle bin without it.
type OSMover struct{}

// NewOSMover returns the platform trash mover.
func NewOSMover() *OSMover {
	return &OSMover{}
}

// Move trashes each path in turn, stopping at the first failure.
func (m *OSMover) Move(paths []string) error {
	for _, p := range paths {
		script := fmt.Sprintf(
			`$sh = New-Object -ComObject Shell.Application; `+
				`$item = $sh.Namespace(0).ParseName(%q); `+
				`if ($item) { $item.InvokeVerb('delete') }`,
			p,
		)
		cmd := exec.Command("powershell", "-NoProfile", "-Command", script)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("trash %s: %w: %s", p, err, out)
		}
	}
	return nil
}
