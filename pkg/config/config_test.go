package config

import (
	"strings"
	"testing"
)

func TestDecodeInputMinimal(t *testing.T) {
	in, err := DecodeInput(strings.NewReader(`{"workspace":{"current_dir":"/home/alice/dev/myproj"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Workspace.CurrentDir != "/home/alice/dev/myproj" {
		t.Errorf("CurrentDir = %q", in.Workspace.CurrentDir)
	}
	if in.Cost != nil {
		t.Errorf("Cost = %+v, want nil", in.Cost)
	}
}

func TestDecodeInputFull(t *testing.T) {
	doc := `{
		"session_id": "abc123",
		"model": {"id": "claude-sonnet-4-5", "display_name": "Sonnet 4.5"},
		"workspace": {"current_dir": "/srv/app", "project_dir": "/srv/app"},
		"output_style": {"name": "default"},
		"cost": {"total_cost_usd": 0.42, "total_lines_added": 7, "total_lines_removed": 2}
	}`
	in, err := DecodeInput(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Model.DisplayName != "Sonnet 4.5" {
		t.Errorf("DisplayName = %q", in.Model.DisplayName)
	}
	if in.Cost == nil || in.Cost.TotalCostUSD != 0.42 {
		t.Errorf("Cost = %+v", in.Cost)
	}
}

func TestDecodeInputMalformed(t *testing.T) {
	if _, err := DecodeInput(strings.NewReader(`{"workspace":`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := DecodeInput(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoadFromReaderDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "default")
	}
	if cfg.Width.Percent != 60 {
		t.Errorf("Width.Percent = %d, want 60", cfg.Width.Percent)
	}
	if len(cfg.Segments) == 0 {
		t.Error("expected default segments")
	}
}

func TestLoadFromReaderOverrides(t *testing.T) {
	doc := `
theme: nord
width:
  percent: 40
segments:
  - id: directory
    enabled: true
    show_full_path: true
  - id: model
    enabled: false
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "nord")
	}
	if cfg.Width.Percent != 40 {
		t.Errorf("Width.Percent = %d, want 40", cfg.Width.Percent)
	}
	if len(cfg.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(cfg.Segments))
	}
	if !cfg.Segments[0].ShowFullPath {
		t.Error("expected show_full_path on directory segment")
	}
	if cfg.Segments[1].Enabled {
		t.Error("expected model segment disabled")
	}
}

func TestLoadThemeEnvOverride(t *testing.T) {
	t.Setenv("PULSE_LINE_THEME", "minimal")
	cfg, err := LoadFromReader(strings.NewReader("theme: nord\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "minimal" {
		t.Errorf("Theme = %q, want env override %q", cfg.Theme, "minimal")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.Width.Percent = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for percent 0")
	}
	cfg.Width.Percent = 101
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for percent 101")
	}

	cfg = DefaultConfig()
	cfg.Segments = append(cfg.Segments, SegmentConfig{ID: "", Enabled: true})
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty segment id")
	}
}
