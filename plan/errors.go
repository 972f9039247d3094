package plan

import "fmt"

// UnknownFrameRateError means frame counts cannot be converted to seconds
// because neither the descriptor nor the caller supplied a frame rate.
// Guessing one would silently produce wrong timings, so resolution refuses.
type UnknownFrameRateError struct{}

func (e *UnknownFrameRateError) Error() string {
	return "no frame rate declared in project and no override given"
}

// MalformedNodeError means a classified clip node lacks a required timing
// attribute or carries one that does not parse.
type MalformedNodeError struct {
	Index int
	Tag   string
	Attr  string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("node %d (%s): missing or unreadable %s attribute", e.Index, e.Tag, e.Attr)
}

// InvalidSegmentError means a clip node carries a structurally impossible
// value. Negative source offsets indicate corrupt metadata or a schema
// mismatch, never a legitimate edit.
type InvalidSegmentError struct {
	Index int
	Tag   string
	Start int64
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("node %d (%s): negative media start %d", e.Index, e.Tag, e.Start)
}
