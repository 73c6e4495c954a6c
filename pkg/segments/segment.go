// Package segments converts a decoded session snapshot into discrete,
// normalized display fields. Each segment variant is a pure function of its
// own configuration and the snapshot: it either produces one SegmentData or
// nothing, and it never errors. Styling is deliberately elsewhere; segments
// emit plain text plus metadata.
package segments

import "gitlab.com/tinyland/lab/pulse-line/pkg/config"

// ID tags which segment variant produced a result.
type ID string

const (
	IDDirectory ID = "directory"
	IDModel     ID = "model"
	IDGit       ID = "git"
	IDUsage     ID = "usage"
	IDSession   ID = "session"
)

// SegmentData is the normalized output of one segment. Primary is the main
// display string and must not contain newlines. Secondary is an optional
// auxiliary string, empty when unused. Metadata carries context for
// downstream consumers that is not meant for direct display.
type SegmentData struct {
	Primary   string
	Secondary string
	Metadata  map[string]string
}

// Segment is the contract every variant implements. Collect returns nil when
// the segment is not applicable to the current snapshot; that is a normal
// outcome, not an error.
type Segment interface {
	Collect(in *config.InputData) *SegmentData
	ID() ID
}
