// Package timeline parses Camtasia project.xml descriptors and classifies
// the primary track's top-level media nodes.
package timeline

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Descriptor is the parsed project.xml document. It is read-only after
// loading; everything downstream derives from it.
type Descriptor struct {
	XMLName              xml.Name
	VideoFormatFrameRate string   `xml:"videoFormatFrameRate,attr"`
	Timeline             Timeline `xml:"Timeline"`
}

type Timeline struct {
	Mixer Mixer `xml:"GenericMixer"`
}

type Mixer struct {
	Tracks []Track `xml:"Tracks>GenericTrack"`
}

type Track struct {
	Medias Medias `xml:"Medias"`
}

// Medias captures the track children in document order with their tag names
// intact, whatever their element type turns out to be.
type Medias struct {
	Items []Media `xml:",any"`
}

// Media is one top-level child of a track. Attribute values are kept as raw
// strings; validation and unit conversion happen in the resolver, not here.
// Nested children of StitchedMedia elements are deliberately not mapped: the
// container's own aggregate attributes are authoritative.
type Media struct {
	XMLName       xml.Name
	Start         string `xml:"start,attr"`
	MediaStart    string `xml:"mediaStart,attr"`
	MediaDuration string `xml:"mediaDuration,attr"`
}

// Load reads and parses a project descriptor file.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}
	return Parse(data)
}

// Parse parses raw project.xml content.
func Parse(data []byte) (*Descriptor, error) {
	var desc Descriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse project descriptor: %w", err)
	}
	return &desc, nil
}

// FPS returns the project-level frame rate declaration. The second return is
// false when the descriptor declares none.
func (d *Descriptor) FPS() (float64, bool) {
	raw := strings.TrimSpace(d.VideoFormatFrameRate)
	if raw == "" {
		return 0, false
	}
	num, den, found := strings.Cut(raw, "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	if !found {
		return n, n > 0
	}
	dv, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || dv == 0 {
		return 0, false
	}
	fps := n / dv
	return fps, fps > 0
}

// ParseFraction converts attribute values like "1032/1" to an integer frame
// count. Plain integers pass through unchanged. Camtasia always writes a /1
// denominator on media timings, so only the numerator is significant.
func ParseFraction(value string) (int64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, fmt.Errorf("empty frame value")
	}
	if num, _, found := strings.Cut(v, "/"); found {
		v = strings.TrimSpace(num)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad frame value %q: %w", value, err)
	}
	return n, nil
}
