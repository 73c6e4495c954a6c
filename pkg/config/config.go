package config

import "fmt"

// Config is the top-level pulse-line configuration.
type Config struct {
	Theme    string          `yaml:"theme"`
	Width    WidthConfig     `yaml:"width"`
	Segments []SegmentConfig `yaml:"segments"`
}

// WidthConfig controls the terminal-width budget policy.
type WidthConfig struct {
	// Percent of the detected terminal width the line may occupy, 1-100.
	Percent int `yaml:"percent"`
}

// SegmentConfig enables one segment variant and carries its options.
// Segments render in the order they appear in the list.
type SegmentConfig struct {
	ID      string `yaml:"id"`
	Enabled bool   `yaml:"enabled"`

	// ShowFullPath makes the directory segment emit the raw path instead
	// of the extracted basename. Ignored by other segments.
	ShowFullPath bool `yaml:"show_full_path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
		Width: WidthConfig{Percent: 60},
		Segments: []SegmentConfig{
			{ID: "directory", Enabled: true},
			{ID: "git", Enabled: true},
			{ID: "model", Enabled: true},
			{ID: "usage", Enabled: true},
			{ID: "session", Enabled: false},
		},
	}
}

// Validate checks the configuration for values that cannot be rendered.
// Unknown segment IDs are not an error; the collector skips them.
func (c *Config) Validate() error {
	if c.Width.Percent < 1 || c.Width.Percent > 100 {
		return fmt.Errorf("config: width.percent must be 1-100, got %d", c.Width.Percent)
	}
	for i, s := range c.Segments {
		if s.ID == "" {
			return fmt.Errorf("config: segments[%d] has no id", i)
		}
	}
	return nil
}
