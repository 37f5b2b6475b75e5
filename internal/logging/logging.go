// Package logging provides opt-in debug loggers for the scan pool and
// state actor. Nothing here is user-visible by default: per §7 of the
// design, the core never surfaces mid-session diagnostics to the
// operator, so these loggers discard output unless DIRP_DEBUG is set.
package logging

import (
	"io"
	"log"
	"os"
)

var (
	Scan    *log.Logger
	Actor   *log.Logger
	Enabled bool
)

func init() {
	if os.Getenv("DIRP_DEBUG") == "" {
		Scan = log.New(io.Discard, "", 0)
		Actor = log.New(io.Discard, "", 0)
		return
	}

	Enabled = true

	f, err := os.OpenFile("dirp-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Scan = log.New(os.Stderr, "[scan] ", log.Lmicroseconds)
		Actor = log.New(os.Stderr, "[actor] ", log.Lmicroseconds)
		return
	}

	Scan = log.New(f, "[scan] ", log.Lmicroseconds)
	Actor = log.New(f, "[actor] ", log.Lmicroseconds)
}
