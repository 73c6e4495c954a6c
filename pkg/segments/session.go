package segments

import "gitlab.com/tinyland/lab/pulse-line/pkg/config"

// SessionSegment shows the output style name and a short session ID. Off by
// default; useful when several sessions share a screen.
type SessionSegment struct{}

func NewSessionSegment() *SessionSegment { return &SessionSegment{} }

func (s *SessionSegment) ID() ID { return IDSession }

func (s *SessionSegment) Collect(in *config.InputData) *SegmentData {
	if in.SessionID == "" {
		return nil
	}

	short := in.SessionID
	if len(short) > 8 {
		short = short[:8]
	}

	data := &SegmentData{
		Primary:  short,
		Metadata: map[string]string{"session_id": in.SessionID},
	}
	if in.OutputStyle.Name != "" && in.OutputStyle.Name != "default" {
		data.Secondary = in.OutputStyle.Name
	}
	return data
}
