package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// InputData is the session snapshot the host pipes on stdin. One snapshot is
// decoded per invocation and treated as immutable afterward.
type InputData struct {
	SessionID      string      `json:"session_id"`
	TranscriptPath string      `json:"transcript_path"`
	Cwd            string      `json:"cwd"`
	Version        string      `json:"version"`
	Model          ModelInfo   `json:"model"`
	Workspace      Workspace   `json:"workspace"`
	OutputStyle    OutputStyle `json:"output_style"`
	Cost           *CostInfo   `json:"cost,omitempty"`
}

// ModelInfo identifies the active model.
type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Workspace describes the directories the session is operating in.
type Workspace struct {
	CurrentDir string `json:"current_dir"`
	ProjectDir string `json:"project_dir"`
}

// OutputStyle names the active output style preset.
type OutputStyle struct {
	Name string `json:"name"`
}

// CostInfo carries accumulated session cost and activity counters. The
// pointer is nil when the host did not report cost data.
type CostInfo struct {
	TotalCostUSD       float64 `json:"total_cost_usd"`
	TotalDurationMS    int64   `json:"total_duration_ms"`
	TotalAPIDurationMS int64   `json:"total_api_duration_ms"`
	TotalLinesAdded    int     `json:"total_lines_added"`
	TotalLinesRemoved  int     `json:"total_lines_removed"`
}

// DecodeInput reads one JSON snapshot from r. Malformed input is fatal for
// the whole invocation, so the error is returned rather than softened.
func DecodeInput(r io.Reader) (*InputData, error) {
	var in InputData
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("config: decode input: %w", err)
	}
	return &in, nil
}
