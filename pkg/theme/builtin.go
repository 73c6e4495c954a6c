package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		powerlineTheme(),
		minimalTheme(),
		nordTheme(),
	} {
		register(t)
	}
}

// defaultTheme returns the dark neutral theme with icons and a dim pipe
// separator.
func defaultTheme() Theme {
	return Theme{
		Name:           "default",
		Separator:      "│",
		SeparatorColor: "#6b6b6b",
		Dim:            "#6b6b6b",

		Directory: SegmentStyle{Icon: "📁", Foreground: "#56b6c2"},
		Model:     SegmentStyle{Icon: "🤖", Foreground: "#c678dd"},
		Git:       SegmentStyle{Icon: "🌿", Foreground: "#4ec970"},
		Usage:     SegmentStyle{Icon: "💰", Foreground: "#e5c07b"},
		Session:   SegmentStyle{Icon: "🪪", Foreground: "#d4d4d4"},
	}
}

// powerlineTheme returns the arrow-joined background-block theme.
func powerlineTheme() Theme {
	return Theme{
		Name:      "powerline",
		Powerline: true,
		Dim:       "#9da5b4",

		Directory: SegmentStyle{Icon: "", Foreground: "#1e1e1e", Background: "#56b6c2"},
		Model:     SegmentStyle{Icon: "✦", Foreground: "#ffffff", Background: "#7C3AED"},
		Git:       SegmentStyle{Icon: "", Foreground: "#1e1e1e", Background: "#4ec970"},
		Usage:     SegmentStyle{Icon: "$", Foreground: "#1e1e1e", Background: "#e5c07b"},
		Session:   SegmentStyle{Icon: "#", Foreground: "#d4d4d4", Background: "#3e3e3e"},
	}
}

// minimalTheme returns an icon-free theme for fonts without glyph support.
func minimalTheme() Theme {
	return Theme{
		Name:           "minimal",
		Separator:      "|",
		SeparatorColor: "#6b6b6b",
		Dim:            "#6b6b6b",

		Directory: SegmentStyle{Foreground: "#d4d4d4"},
		Model:     SegmentStyle{Foreground: "#d4d4d4"},
		Git:       SegmentStyle{Foreground: "#d4d4d4"},
		Usage:     SegmentStyle{Foreground: "#d4d4d4"},
		Session:   SegmentStyle{Foreground: "#6b6b6b"},
	}
}

// nordTheme returns the cool blue Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:           "nord",
		Separator:      "│",
		SeparatorColor: "#4c566a",
		Dim:            "#4c566a",

		Directory: SegmentStyle{Icon: "📁", Foreground: "#88c0d0"},
		Model:     SegmentStyle{Icon: "🤖", Foreground: "#b48ead"},
		Git:       SegmentStyle{Icon: "🌿", Foreground: "#a3be8c"},
		Usage:     SegmentStyle{Icon: "💰", Foreground: "#ebcb8b"},
		Session:   SegmentStyle{Icon: "🪪", Foreground: "#d8dee9"},
	}
}

// StyleFor returns the palette entry for a segment ID string, defaulting to
// the directory style for unknown IDs.
func (t Theme) StyleFor(id string) SegmentStyle {
	switch id {
	case "model":
		return t.Model
	case "git":
		return t.Git
	case "usage":
		return t.Usage
	case "session":
		return t.Session
	default:
		return t.Directory
	}
}
