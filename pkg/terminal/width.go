// Package terminal resolves the column count of the terminal the status
// line will land on. Detection is best effort: every probe failing is a
// normal outcome handled by the caller's fallback budget.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// Budget policy constants. The host draws its own indicator next to the
// status line, so part of the terminal is reserved for it.
const (
	// ReservedCols is the space left for the host-drawn indicator.
	ReservedCols = 40
	// FallbackBudget assumes a 120-column terminal at 60% when no width
	// source is available.
	FallbackBudget = 72
)

// Width returns the terminal column count, trying in order:
//  1. ioctl on stderr, but only when stderr is attached to a terminal.
//     stdout is often consumed by the host rather than displayed, so
//     stderr is the stream most likely still on a real terminal.
//  2. the COLUMNS environment variable, any parseable unsigned integer.
//  3. ioctl on stdout, with no liveness check.
//
// The ok result is false when every source fails; callers fall back to
// FallbackBudget rather than treating that as an error.
func Width() (int, bool) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		if w := ioctlCols(os.Stderr.Fd()); w > 0 {
			return w, true
		}
	}

	if w, ok := parseColumns(os.Getenv("COLUMNS")); ok {
		return w, true
	}

	if w := ioctlCols(os.Stdout.Fd()); w > 0 {
		return w, true
	}

	return 0, false
}

// parseColumns interprets a COLUMNS value. Any non-negative integer string
// is accepted; anything else falls through to the next width source.
func parseColumns(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	w, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(w), true
}

// Budget computes the visible-column limit for the status line: percent of
// the detected width, capped by what remains after the reserved area. With
// no detected width the fixed fallback applies.
func Budget(percent int) int {
	w, ok := Width()
	if !ok {
		return FallbackBudget
	}
	return budgetFor(w, percent)
}

// budgetFor applies the percent/reserve policy to a known terminal width.
func budgetFor(width, percent int) int {
	available := width - ReservedCols
	if available < 0 {
		available = 0
	}
	limit := width * percent / 100
	if limit > available {
		limit = available
	}
	return limit
}

// ioctlCols queries TIOCGWINSZ on fd. Returns 0 on failure.
func ioctlCols(fd uintptr) int {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
