package media

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"camancipate/plan"
)

const concatListName = "concat_list.txt"

// Extractor drives ffmpeg through a segment plan: one windowed extraction
// per segment with the webcam overlaid picture-in-picture bottom right,
// then a stream-copy concatenation of the slices into the output file.
type Extractor struct {
	Screen  string
	Webcam  string
	Audio   string
	Output  string
	FPS     float64
	Encoder string
	Quiet   bool
	Logger  hclog.Logger
}

// Run executes the plan. With restart set, existing slice files are trusted
// and only the final concatenation runs.
func (e *Extractor) Run(segments []plan.Segment, restart bool) error {
	if e.Logger == nil {
		e.Logger = hclog.NewNullLogger()
	}
	if !restart {
		if err := e.extractSlices(segments); err != nil {
			return err
		}
	}
	return e.concat()
}

func (e *Extractor) extractSlices(segments []plan.Segment) error {
	list, err := os.Create(concatListName)
	if err != nil {
		return fmt.Errorf("failed to create concat list: %w", err)
	}
	defer list.Close()

	for _, s := range segments {
		slice := plan.SliceName(s.Ordinal)
		e.Logger.Info("extracting segment",
			"slice", slice,
			"progress", fmt.Sprintf("%d/%d", s.Ordinal+1, len(segments)),
			"offset", fmt.Sprintf("%.3fs", s.SourceOffsetSeconds),
			"duration", fmt.Sprintf("%.3fs", s.DurationSeconds),
		)

		cmd := exec.Command("ffmpeg", e.sliceArgs(s, slice)...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("ffmpeg failed on %s: %v\n%s", slice, err, output)
		}

		if _, err := fmt.Fprintf(list, "file '%s'\n", slice); err != nil {
			return fmt.Errorf("failed to write concat list: %w", err)
		}
	}
	return nil
}

// sliceArgs builds the ffmpeg invocation for one segment: identical -ss/-t
// windows on the screen, webcam and audio inputs keep the three independently
// demuxed streams in sync, and the filter graph normalizes both videos to the
// shared frame rate before overlaying the webcam.
func (e *Extractor) sliceArgs(s plan.Segment, out string) []string {
	ss := fmt.Sprintf("%.6f", s.SourceOffsetSeconds)
	t := fmt.Sprintf("%.6f", s.DurationSeconds)

	filter := fmt.Sprintf(
		"[0:v]scale=3840:2160,fps=%[1]g[screen]; "+
			"[1:v]scale=720:-1,fps=%[1]g[cam]; "+
			"[screen][cam]overlay=main_w-overlay_w-50:main_h-overlay_h-50",
		e.FPS)

	args := []string{"-y",
		"-ss", ss, "-t", t, "-i", e.Screen,
		"-ss", ss, "-t", t, "-i", e.Webcam,
		"-ss", ss, "-t", t, "-i", e.Audio,
		"-filter_complex", filter,
		"-c:v", e.Encoder,
		"-b:v", "15M",
		"-c:a", "aac",
	}
	if e.Quiet {
		args = append(args, "-loglevel", "error", "-hide_banner")
	}
	return append(args, out)
}

func (e *Extractor) concat() error {
	e.Logger.Info("concatenating slices", "output", e.Output)

	args := []string{"-y", "-f", "concat", "-safe", "0", "-i", concatListName, "-c", "copy"}
	if e.Quiet {
		args = append(args, "-loglevel", "error", "-hide_banner")
	}
	args = append(args, e.Output)

	output, err := exec.Command("ffmpeg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg concat failed: %v\n%s", err, output)
	}
	return nil
}

// Cleanup removes the intermediate slice files and the concat list.
func Cleanup(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	slices, _ := filepath.Glob("slice_*.ts")
	if len(slices) > 0 {
		logger.Info("cleaning up slice files", "count", len(slices))
	}
	for _, f := range slices {
		if err := os.Remove(f); err != nil {
			logger.Warn("could not remove slice file", "file", f, "error", err)
		}
	}

	if err := os.Remove(concatListName); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not remove concat list", "error", err)
	}
}
