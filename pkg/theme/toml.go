package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name           string               `toml:"name"`
	Separator      string               `toml:"separator"`
	SeparatorColor string               `toml:"separator_color"`
	Powerline      bool                 `toml:"powerline"`
	Dim            string               `toml:"dim"`
	Segments       map[string]tomlStyle `toml:"segments"`
}

type tomlStyle struct {
	Icon       string `toml:"icon"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes. Segment styles
// not mentioned in the document inherit from the default theme.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing name")
	}

	t := defaultTheme()
	t.Name = tt.Name
	t.Powerline = tt.Powerline
	if tt.Separator != "" {
		t.Separator = tt.Separator
	}
	if tt.SeparatorColor != "" {
		t.SeparatorColor = tt.SeparatorColor
	}
	if tt.Dim != "" {
		t.Dim = tt.Dim
	}

	for id, style := range tt.Segments {
		target := t.StyleFor(id)
		if style.Icon != "" {
			target.Icon = style.Icon
		}
		if style.Foreground != "" {
			target.Foreground = style.Foreground
		}
		if style.Background != "" {
			target.Background = style.Background
		}
		switch id {
		case "directory":
			t.Directory = target
		case "model":
			t.Model = target
		case "git":
			t.Git = target
		case "usage":
			t.Usage = target
		case "session":
			t.Session = target
		default:
			return Theme{}, fmt.Errorf("theme: unknown segment %q", id)
		}
	}

	if err := validateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadUserThemes registers every *.toml theme found in dirs. Unreadable or
// invalid files are reported but do not stop the scan.
func LoadUserThemes(dirs []string) error {
	var firstErr error
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("theme: read %s: %w", path, err)
				}
				continue
			}
			t, err := LoadFromTOML(data)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("theme: %s: %w", path, err)
				}
				continue
			}
			register(t)
		}
	}
	return firstErr
}

// validateTheme checks that every non-empty color field is valid hex.
func validateTheme(t Theme) error {
	colors := map[string]string{
		"separator_color":      t.SeparatorColor,
		"dim":                  t.Dim,
		"directory.foreground": t.Directory.Foreground,
		"directory.background": t.Directory.Background,
		"model.foreground":     t.Model.Foreground,
		"model.background":     t.Model.Background,
		"git.foreground":       t.Git.Foreground,
		"git.background":       t.Git.Background,
		"usage.foreground":     t.Usage.Foreground,
		"usage.background":     t.Usage.Background,
		"session.foreground":   t.Session.Foreground,
		"session.background":   t.Session.Background,
	}
	for field, v := range colors {
		if v != "" && !hexColorRegex.MatchString(v) {
			return fmt.Errorf("theme %q: %s is not a hex color: %q", t.Name, field, v)
		}
	}
	return nil
}
