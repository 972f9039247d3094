package plan

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints the plan the way the editor would show it: timeline
// position, source in/out points and duration per segment, all as mm:ss.
func RenderTable(w io.Writer, segments []Segment, fps float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Timeline", "In", "Out", "Duration", "Type"})

	for _, s := range segments {
		table.Append([]string{
			strconv.Itoa(s.Ordinal),
			MMSS(s.TimelineStartFrames, fps),
			MMSS(s.MediaStartFrames, fps),
			MMSS(s.MediaStartFrames+s.DurationFrames, fps),
			MMSS(s.DurationFrames, fps),
			s.Kind,
		})
	}
	table.Render()

	fmt.Fprintf(w, "Total duration: %s\n", MMSS(TotalFrames(segments), fps))
}

// MMSS renders a frame count as minutes:seconds at the given rate.
func MMSS(frames int64, fps float64) string {
	seconds := int64(math.Round(float64(frames) / fps))
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
