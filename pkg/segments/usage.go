package segments

import (
	"fmt"

	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
)

// UsageSegment shows accumulated session cost and line-change counters from
// the snapshot's cost object. Absent when the host reported no cost data.
type UsageSegment struct{}

func NewUsageSegment() *UsageSegment { return &UsageSegment{} }

func (u *UsageSegment) ID() ID { return IDUsage }

func (u *UsageSegment) Collect(in *config.InputData) *SegmentData {
	cost := in.Cost
	if cost == nil {
		return nil
	}

	data := &SegmentData{
		Primary: fmt.Sprintf("$%.2f", cost.TotalCostUSD),
		Metadata: map[string]string{
			"duration_ms": fmt.Sprintf("%d", cost.TotalDurationMS),
		},
	}
	if cost.TotalLinesAdded > 0 || cost.TotalLinesRemoved > 0 {
		data.Secondary = fmt.Sprintf("+%d/-%d", cost.TotalLinesAdded, cost.TotalLinesRemoved)
	}
	return data
}
