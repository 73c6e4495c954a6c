package segments

import (
	"log/slog"

	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
)

// Result pairs a segment's ID with the data it produced.
type Result struct {
	ID   ID
	Data SegmentData
}

// CollectAll invokes each enabled segment once, in configuration order, and
// returns the results that were produced. Absent segments are omitted, not
// errors. Unknown segment IDs in the configuration are skipped.
func CollectAll(cfg *config.Config, in *config.InputData) []Result {
	var results []Result
	for _, sc := range cfg.Segments {
		if !sc.Enabled {
			continue
		}
		seg := newSegment(sc)
		if seg == nil {
			slog.Debug("skipping unknown segment", "id", sc.ID)
			continue
		}
		if data := seg.Collect(in); data != nil {
			results = append(results, Result{ID: seg.ID(), Data: *data})
		}
	}
	return results
}

// newSegment constructs the variant named by the config entry, or nil for an
// unknown ID.
func newSegment(sc config.SegmentConfig) Segment {
	switch ID(sc.ID) {
	case IDDirectory:
		return NewDirectorySegment().WithFullPath(sc.ShowFullPath)
	case IDModel:
		return NewModelSegment()
	case IDGit:
		return NewGitSegment()
	case IDUsage:
		return NewUsageSegment()
	case IDSession:
		return NewSessionSegment()
	default:
		return nil
	}
}
