package media

import "testing"

const codecsOutput = ` Codecs:
 D..... = Decoding supported
 .E.... = Encoding supported
 DEV.LS h264                 H.264 / AVC / MPEG-4 AVC (encoders: libx264 libx264rgb h264_nvenc )
 DEV.L. hevc                 H.265 / HEVC (encoders: libx265 hevc_nvenc )
`

func TestMatchEncoders(t *testing.T) {
	found := matchEncoders(codecsOutput)
	if len(found) != 2 {
		t.Fatalf("Expected 2 encoders, got %d: %v", len(found), found)
	}
	// Preference order: nvenc before the software fallback.
	if found[0].Name != "h264_nvenc" {
		t.Errorf("Expected h264_nvenc first, got %s", found[0].Name)
	}
	if found[1].Name != "libx264" {
		t.Errorf("Expected libx264 second, got %s", found[1].Name)
	}
}

func TestMatchEncodersNone(t *testing.T) {
	if found := matchEncoders("no encoders here"); len(found) != 0 {
		t.Errorf("Expected no matches, got %v", found)
	}
}

func TestSelectEncoder(t *testing.T) {
	cases := []struct {
		name      string
		available []Encoder
		want      string
	}{
		{"empty falls back", nil, "libx264"},
		{"hardware preferred", []Encoder{{Name: "h264_videotoolbox"}, {Name: "libx264"}}, "h264_videotoolbox"},
		{"software only", []Encoder{{Name: "libx264"}}, "libx264"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectEncoder(tc.available); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}
