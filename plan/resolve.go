package plan

import (
	"github.com/hashicorp/go-hclog"

	"camancipate/timeline"
)

// Resolve converts classified nodes into the ordered segment plan.
//
// Both clip variants are read the same way: the node's own mediaStart and
// mediaDuration attributes are taken at face value. For stitched containers
// those are the editor's aggregate over its internal cuts, which is exactly
// what was rendered, so no child arithmetic is ever performed.
//
// Zero and negative durations are editor artifacts from certain cut
// operations and are dropped, not errors. Every other rule violation aborts
// the whole pass; a partial plan would concatenate to a silently wrong video.
func Resolve(nodes []timeline.Node, fps float64, logger hclog.Logger) ([]Segment, error) {
	if fps <= 0 {
		return nil, &UnknownFrameRateError{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	segments := make([]Segment, 0, len(nodes))
	for _, n := range nodes {
		if n.MediaStart == "" {
			return nil, &MalformedNodeError{Index: n.Index, Tag: n.Tag, Attr: "mediaStart"}
		}
		if n.MediaDuration == "" {
			return nil, &MalformedNodeError{Index: n.Index, Tag: n.Tag, Attr: "mediaDuration"}
		}

		start, err := timeline.ParseFraction(n.MediaStart)
		if err != nil {
			return nil, &MalformedNodeError{Index: n.Index, Tag: n.Tag, Attr: "mediaStart"}
		}
		duration, err := timeline.ParseFraction(n.MediaDuration)
		if err != nil {
			return nil, &MalformedNodeError{Index: n.Index, Tag: n.Tag, Attr: "mediaDuration"}
		}
		if start < 0 {
			return nil, &InvalidSegmentError{Index: n.Index, Tag: n.Tag, Start: start}
		}
		if duration <= 0 {
			logger.Debug("dropping degenerate clip", "node", n.Index, "tag", n.Tag, "duration", duration)
			continue
		}

		// timelineStart is informational only; a missing value is not
		// a defect the way missing source timing is.
		timelineStart, err := timeline.ParseFraction(n.Start)
		if err != nil {
			timelineStart = 0
		}

		segments = append(segments, Segment{
			Ordinal:             len(segments),
			SourceOffsetSeconds: float64(start) / fps,
			DurationSeconds:     float64(duration) / fps,
			TimelineStartFrames: timelineStart,
			MediaStartFrames:    start,
			DurationFrames:      duration,
			Kind:                n.Tag,
		})
	}

	return segments, nil
}
