package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// InitResult reports the outcome of Init.
type InitResult struct {
	Path    string
	Created bool
}

// Init writes the default configuration to the preferred config path unless
// a file already exists there.
func Init() (InitResult, error) {
	paths := configSearchPaths()
	if len(paths) == 0 {
		return InitResult{}, fmt.Errorf("config: no config directory available")
	}

	// An existing file anywhere in the search order wins.
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return InitResult{Path: p, Created: false}, nil
		}
	}

	target := paths[0]
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return InitResult{}, fmt.Errorf("config: create config dir: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return InitResult{}, fmt.Errorf("config: marshal defaults: %w", err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return InitResult{}, fmt.Errorf("config: write %s: %w", target, err)
	}
	return InitResult{Path: target, Created: true}, nil
}

// Print writes the effective configuration as YAML to stdout.
func (c *Config) Print() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
