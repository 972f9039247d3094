package timeline

// Element names Camtasia uses for the two clip variants that carry source
// timing. Everything else on a track (callouts, captions, parallel audio
// media) is not a segment source.
const (
	tagAtomic    = "ScreenVMFile"
	tagComposite = "StitchedMedia"
)

// Kind tags the two clip variants.
type Kind int

const (
	// KindAtomic is a direct reference into the original recording.
	KindAtomic Kind = iota
	// KindComposite is a stitched container whose aggregate attributes
	// already reflect its internal cuts.
	KindComposite
)

func (k Kind) String() string {
	if k == KindComposite {
		return tagComposite
	}
	return tagAtomic
}

// Node is one classified top-level clip of the primary track. Both variants
// expose the same raw attribute text; only provenance differs.
type Node struct {
	Kind  Kind
	Tag   string
	Index int // position among the track's media children, for diagnostics

	Start         string
	MediaStart    string
	MediaDuration string
}

// MissingTimelineError means the descriptor contains no track with any
// clip nodes to resolve.
type MissingTimelineError struct{}

func (e *MissingTimelineError) Error() string {
	return "project descriptor has no usable timeline track"
}

// PrimaryTrack locates the first track carrying at least one clip node and
// returns its classified children in playback order. Unrecognized child
// kinds are skipped, not errors.
func (d *Descriptor) PrimaryTrack() ([]Node, error) {
	for _, track := range d.Timeline.Mixer.Tracks {
		nodes := classify(track.Medias.Items)
		if len(nodes) > 0 {
			return nodes, nil
		}
	}
	return nil, &MissingTimelineError{}
}

func classify(items []Media) []Node {
	var nodes []Node
	for i, item := range items {
		var kind Kind
		switch item.XMLName.Local {
		case tagAtomic:
			kind = KindAtomic
		case tagComposite:
			kind = KindComposite
		default:
			continue
		}
		nodes = append(nodes, Node{
			Kind:          kind,
			Tag:           item.XMLName.Local,
			Index:         i,
			Start:         item.Start,
			MediaStart:    item.MediaStart,
			MediaDuration: item.MediaDuration,
		})
	}
	return nodes
}
