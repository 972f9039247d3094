// Package plan resolves classified timeline nodes into the ordered segment
// list that drives extraction and concatenation.
package plan

import "fmt"

// Segment is one extraction instruction: take DurationSeconds of source
// material starting at SourceOffsetSeconds, placed at Ordinal in the final
// cut. Ordinals are contiguous after degenerate clips are filtered out.
type Segment struct {
	Ordinal             int
	SourceOffsetSeconds float64
	DurationSeconds     float64

	// Frame-unit values as declared by the descriptor, kept for display
	// and plan inspection.
	TimelineStartFrames int64
	MediaStartFrames    int64
	DurationFrames      int64

	// Kind is the descriptor element name the segment came from.
	Kind string
}

// SliceName returns the working filename for an extracted segment.
func SliceName(ordinal int) string {
	return fmt.Sprintf("slice_%03d.ts", ordinal)
}

// TotalFrames sums the durations of a segment list.
func TotalFrames(segments []Segment) int64 {
	var total int64
	for _, s := range segments {
		total += s.DurationFrames
	}
	return total
}
