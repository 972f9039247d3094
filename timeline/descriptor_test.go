package timeline

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleProject = `<?xml version="1.0" encoding="utf-8"?>
<Project videoFormatFrameRate="30/1">
  <Timeline>
    <GenericMixer>
      <Tracks>
        <GenericTrack>
          <Medias>
            <ScreenVMFile start="0/1" mediaStart="0/1" mediaDuration="300/1"/>
            <StitchedMedia start="300/1" mediaStart="450/1" mediaDuration="150/1">
              <Medias>
                <ScreenVMFile start="0/1" mediaStart="400/1" mediaDuration="90/1"/>
                <ScreenVMFile start="90/1" mediaStart="700/1" mediaDuration="20/1"/>
              </Medias>
            </StitchedMedia>
            <Callout start="450/1"/>
            <ScreenVMFile start="450/1" mediaStart="900/1" mediaDuration="60/1"/>
          </Medias>
        </GenericTrack>
        <GenericTrack>
          <Medias>
            <AMFile start="0/1" mediaStart="0/1" mediaDuration="300/1"/>
          </Medias>
        </GenericTrack>
      </Tracks>
    </GenericMixer>
  </Timeline>
</Project>`

func TestPrimaryTrackClassification(t *testing.T) {
	desc, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	nodes, err := desc.PrimaryTrack()
	if err != nil {
		t.Fatalf("PrimaryTrack failed: %v", err)
	}

	if len(nodes) != 3 {
		t.Fatalf("Expected 3 classified nodes, got %d", len(nodes))
	}

	expected := []struct {
		kind  Kind
		tag   string
		index int
	}{
		{KindAtomic, "ScreenVMFile", 0},
		{KindComposite, "StitchedMedia", 1},
		{KindAtomic, "ScreenVMFile", 3}, // Callout at 2 is skipped
	}
	for i, want := range expected {
		got := nodes[i]
		if got.Kind != want.kind {
			t.Errorf("Node %d: expected kind %v, got %v", i, want.kind, got.Kind)
		}
		if got.Tag != want.tag {
			t.Errorf("Node %d: expected tag %s, got %s", i, want.tag, got.Tag)
		}
		if got.Index != want.index {
			t.Errorf("Node %d: expected index %d, got %d", i, want.index, got.Index)
		}
	}

	if nodes[1].MediaStart != "450/1" || nodes[1].MediaDuration != "150/1" {
		t.Errorf("Composite node should carry its own aggregate attributes, got start=%q duration=%q",
			nodes[1].MediaStart, nodes[1].MediaDuration)
	}
}

func TestPrimaryTrackSkipsNonClipTracks(t *testing.T) {
	// First track carries only an audio media and a callout; the second
	// carries the clips. The second must be chosen.
	xml := `<Project videoFormatFrameRate="30/1">
  <Timeline><GenericMixer><Tracks>
    <GenericTrack><Medias>
      <AMFile start="0/1" mediaStart="0/1" mediaDuration="300/1"/>
      <Callout start="0/1"/>
    </Medias></GenericTrack>
    <GenericTrack><Medias>
      <ScreenVMFile start="0/1" mediaStart="30/1" mediaDuration="60/1"/>
    </Medias></GenericTrack>
  </Tracks></GenericMixer></Timeline>
</Project>`

	desc, err := Parse([]byte(xml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	nodes, err := desc.PrimaryTrack()
	if err != nil {
		t.Fatalf("PrimaryTrack failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].MediaStart != "30/1" {
		t.Errorf("Expected the single clip from the second track, got %+v", nodes)
	}
}

func TestPrimaryTrackMissing(t *testing.T) {
	cases := []struct {
		name string
		xml  string
	}{
		{"no timeline", `<Project videoFormatFrameRate="30/1"></Project>`},
		{"no tracks", `<Project><Timeline><GenericMixer><Tracks></Tracks></GenericMixer></Timeline></Project>`},
		{"no clip nodes", `<Project><Timeline><GenericMixer><Tracks>
			<GenericTrack><Medias><Callout start="0/1"/></Medias></GenericTrack>
		</Tracks></GenericMixer></Timeline></Project>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc, err := Parse([]byte(tc.xml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			_, err = desc.PrimaryTrack()
			var missing *MissingTimelineError
			if !errors.As(err, &missing) {
				t.Errorf("Expected MissingTimelineError, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.xml")
	if err := os.WriteFile(path, []byte(sampleProject), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	desc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if fps, ok := desc.FPS(); !ok || fps != 30 {
		t.Errorf("Expected fps 30, got %v (declared=%v)", fps, ok)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFPS(t *testing.T) {
	cases := []struct {
		raw      string
		fps      float64
		declared bool
	}{
		{"30/1", 30, true},
		{"30", 30, true},
		{"30000/1001", 29.97002997, true},
		{"", 0, false},
		{"0/1", 0, false},
		{"abc", 0, false},
		{"30/0", 0, false},
	}

	for _, tc := range cases {
		desc := &Descriptor{VideoFormatFrameRate: tc.raw}
		fps, declared := desc.FPS()
		if declared != tc.declared {
			t.Errorf("FPS(%q): expected declared=%v, got %v", tc.raw, tc.declared, declared)
			continue
		}
		if declared && math.Abs(fps-tc.fps) > 1e-6 {
			t.Errorf("FPS(%q): expected %v, got %v", tc.raw, tc.fps, fps)
		}
	}
}

func TestParseFraction(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1032/1", 1032, false},
		{"300", 300, false},
		{"0/1", 0, false},
		{"-30/1", -30, false},
		{" 45/1 ", 45, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5/1", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseFraction(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFraction(%q): expected error, got %d", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFraction(%q): unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFraction(%q): expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}
