// Package pathutil resolves the single CLI argument into a canonical,
// absolute path before the scan begins.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Normalize expands a literal "~" to the user's home directory, a literal
// "." to the current working directory, and otherwise canonicalizes arg
// to an absolute path. Failure to resolve any of the three is a fatal
// startup error.
func Normalize(arg string) (string, error) {
	switch arg {
	case "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not resolve ~ to a home directory: %w", err)
		}
		return home, nil
	case ".":
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not resolve . to the current working directory: %w", err)
		}
		return wd, nil
	default:
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", fmt.Errorf("could not canonicalize path %q: %w", arg, err)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", fmt.Errorf("could not canonicalize path %q: %w", arg, err)
		}
		return resolved, nil
	}
}
