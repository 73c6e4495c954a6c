package segments

import (
	"strings"

	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
)

// ModelSegment shows the active model. The host's display name is preferred;
// otherwise the model ID is shortened to its family name.
type ModelSegment struct{}

func NewModelSegment() *ModelSegment { return &ModelSegment{} }

func (m *ModelSegment) ID() ID { return IDModel }

func (m *ModelSegment) Collect(in *config.InputData) *SegmentData {
	name := in.Model.DisplayName
	if name == "" {
		name = ShortModelName(in.Model.ID)
	}
	if name == "" {
		return nil
	}

	return &SegmentData{
		Primary:  name,
		Metadata: map[string]string{"model_id": in.Model.ID},
	}
}

// ShortModelName shortens a model identifier for display.
// "claude-3-5-sonnet-20241022" -> "sonnet"
// "claude-opus-4-20250514" -> "opus"
func ShortModelName(model string) string {
	if model == "" {
		return ""
	}

	// Known family names, checked in order of specificity.
	lower := strings.ToLower(model)
	for _, name := range []string{"opus", "sonnet", "haiku"} {
		if strings.Contains(lower, name) {
			return name
		}
	}

	// Fall back to the last dash-separated segment that is not a date.
	parts := strings.Split(model, "-")
	for i := len(parts) - 1; i >= 0; i-- {
		if len(parts[i]) < 8 { // skip date-like segments (YYYYMMDD)
			return parts[i]
		}
	}

	return model
}
