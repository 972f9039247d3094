package media

import (
	"os/exec"
	"strings"
)

// Encoder is an H.264 encoder ffmpeg reports as available.
type Encoder struct {
	Name        string
	Description string
}

// Hardware encoders first; libx264 always works but is the slowest.
var h264Encoders = []Encoder{
	{"h264_videotoolbox", "Apple Hardware (macOS/iOS)"},
	{"h264_nvenc", "NVIDIA GPU"},
	{"h264_amf", "AMD GPU"},
	{"libx264", "Software (portable)"},
}

// AvailableEncoders asks ffmpeg which H.264 encoders this machine offers,
// in preference order.
func AvailableEncoders() []Encoder {
	output, err := exec.Command("ffmpeg", "-codecs", "-hide_banner").CombinedOutput()
	if err != nil {
		return nil
	}
	return matchEncoders(string(output))
}

func matchEncoders(codecs string) []Encoder {
	var found []Encoder
	for _, enc := range h264Encoders {
		if strings.Contains(codecs, " "+enc.Name+" ") {
			found = append(found, enc)
		}
	}
	return found
}

// SelectEncoder picks the most preferred available encoder, falling back to
// libx264 when detection comes up empty.
func SelectEncoder(available []Encoder) string {
	if len(available) == 0 {
		return "libx264"
	}
	return available[0].Name
}
