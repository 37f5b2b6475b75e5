// Package humanize formats byte counts for the rendered view. The exact
// thresholds and precision are dictated by the spec, which is why this
// isn't built on top of dustin/go-humanize: that package picks IEC
// suffixes and its own rounding, and doesn't expose a base-1000,
// fixed-two-decimal contract at these exact breakpoints.
package humanize

import "fmt"

// Bytes renders n using the rendered view's byte-formatting rule:
// under 1000 -> "N bytes", under 1e6 -> "X.XX KB", under 1e9 -> "X.XX MB",
// otherwise "X.XX GB" (all base 1000).
func Bytes(n int64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d bytes", n)
	case n < 1_000_000:
		return fmt.Sprintf("%.2f KB", float64(n)/1_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%.2f MB", float64(n)/1_000_000)
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/1_000_000_000)
	}
}
