package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"camancipate/plan"
	"camancipate/timeline"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "camancipate",
	Short: "Recover editable video from Camtasia screen recordings",
	Long: `Camancipate rebuilds the final edited video from a Camtasia project.
It reads the project.xml timeline, resolves the segments the editor actually
kept, and reassembles them from the demuxed screen, webcam and audio streams
with the webcam overlaid picture-in-picture.

Demux the .trec container first with a lossless tool (e.g. LosslessCut).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(probeCmd)
}

func newLogger(quiet bool) hclog.Logger {
	level := hclog.Info
	if quiet {
		level = hclog.Warn
	}
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "camancipate",
		Level: level,
	})
}

// buildPlan runs the parse/classify/resolve pipeline for one descriptor.
// A non-zero fpsOverride wins over whatever the project declares.
func buildPlan(xmlPath string, fpsOverride float64, logger hclog.Logger) ([]plan.Segment, float64, error) {
	desc, err := timeline.Load(xmlPath)
	if err != nil {
		return nil, 0, err
	}

	nodes, err := desc.PrimaryTrack()
	if err != nil {
		return nil, 0, err
	}

	fps := fpsOverride
	if fps <= 0 {
		fps, _ = desc.FPS()
	}

	segments, err := plan.Resolve(nodes, fps, logger)
	if err != nil {
		return nil, 0, err
	}
	return segments, fps, nil
}
