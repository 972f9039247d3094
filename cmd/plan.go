package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"camancipate/media"
	"camancipate/plan"
)

var (
	planOutput string
	planFPS    float64
)

var planCmd = &cobra.Command{
	Use:   "plan [project.xml]",
	Short: "Resolve and print the segment plan without touching media",
	Long: `Plan parses the project timeline and prints the resolved segment table,
then writes the plan as an HLS playlist (one entry per slice) for
inspection. No ffmpeg is run and no media files are needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "plan.m3u8", "Plan file to write")
	planCmd.Flags().Float64Var(&planFPS, "fps", 0, "Frame rate override when the project declares none")
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger := newLogger(false)

	xml := ""
	if len(args) == 1 {
		xml = args[0]
	} else {
		xml = media.DefaultFile(".", ".xml")
	}
	if xml == "" {
		return fmt.Errorf("no project XML given and none discovered in the current folder")
	}

	segments, fps, err := buildPlan(xml, planFPS, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Total segments: %d\n\n", len(segments))
	plan.RenderTable(os.Stdout, segments, fps)

	if err := plan.WritePlaylist(segments, planOutput); err != nil {
		return err
	}
	fmt.Printf("Plan written to %s\n", planOutput)
	return nil
}
