// Package media wraps the external ffmpeg/ffprobe tools: stream probing,
// encoder detection and the per-segment extract/concat pipeline.
package media

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// VideoSize uses ffprobe to find the resolution of the first video stream.
func VideoSize(path string) (int, int, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe failed on %s: %w", path, err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(output, &result); err != nil {
		return 0, 0, fmt.Errorf("bad ffprobe output for %s: %w", path, err)
	}

	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			return stream.Width, stream.Height, nil
		}
	}
	return 0, 0, fmt.Errorf("no video stream in %s", path)
}

// Duration uses ffprobe to get the container duration in seconds.
func Duration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_format", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed on %s: %w", path, err)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(output, &result); err != nil {
		return 0, fmt.Errorf("bad ffprobe output for %s: %w", path, err)
	}
	if result.Format.Duration == "" {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("bad duration %q for %s: %w", result.Format.Duration, path, err)
	}
	return seconds, nil
}
