package plan

import (
	"fmt"
	"os"

	"github.com/grafov/m3u8"
)

// WritePlaylist serializes the plan as an HLS media playlist, one EXTINF
// entry per slice the extractor will produce. The playlist is a debugging
// artifact: it names every planned slice with its exact duration and plays
// back in most players once the slices exist.
func WritePlaylist(segments []Segment, path string) error {
	if len(segments) == 0 {
		return fmt.Errorf("refusing to write an empty plan")
	}

	pl, err := m3u8.NewMediaPlaylist(uint(len(segments)), uint(len(segments)))
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	for _, s := range segments {
		title := fmt.Sprintf("%s @ %.3fs", s.Kind, s.SourceOffsetSeconds)
		if err := pl.Append(SliceName(s.Ordinal), s.DurationSeconds, title); err != nil {
			return fmt.Errorf("failed to append segment %d: %w", s.Ordinal, err)
		}
	}
	pl.Close()

	if err := os.WriteFile(path, pl.Encode().Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}
