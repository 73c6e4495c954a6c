// Package theme defines named color palettes for the status line and a
// registry with builtin and user-supplied TOML themes.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// SegmentStyle is the palette entry for one segment variant.
type SegmentStyle struct {
	Icon       string // leading icon, may be empty
	Foreground string // hex color e.g. "#7aa2f7"
	Background string // hex color, only used in powerline mode
}

// Theme defines the complete palette for the status line.
type Theme struct {
	Name string

	// Separator drawn between segments in plain mode.
	Separator string
	// SeparatorColor is the separator's foreground hex color.
	SeparatorColor string
	// Powerline switches to background-block segments joined by arrows.
	Powerline bool
	// Dim is the color used for secondary text.
	Dim string

	Directory SegmentStyle
	Model     SegmentStyle
	Git       SegmentStyle
	Usage     SegmentStyle
	Session   SegmentStyle
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default if not found.
// Lookup is case-insensitive.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// register adds a theme to the registry under its lowercase name.
func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
