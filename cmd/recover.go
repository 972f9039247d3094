package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"camancipate/media"
	"camancipate/plan"
)

var (
	folder     string
	screenFile string
	webcamFile string
	audioFile  string
	xmlFile    string
	outputFile string
	quiet      bool
	dryRun     bool
	restart    bool
	encoder    string
	fpsFlag    float64
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Rebuild the edited video from a project folder",
	Long: `Recover parses the project.xml timeline, shows the resolved segment plan,
then extracts each segment from the demuxed streams and concatenates them
into the output file.

Input files are discovered by extension in the project folder when exactly
one candidate exists; pass them explicitly otherwise.`,
	RunE: runRecover,
}

func init() {
	recoverCmd.Flags().StringVarP(&folder, "folder", "f", ".", "Folder containing the media files")
	recoverCmd.Flags().StringVarP(&screenFile, "screen", "s", "", "Screen recording (.mkv)")
	recoverCmd.Flags().StringVarP(&webcamFile, "webcam", "w", "", "Webcam recording (.mp4)")
	recoverCmd.Flags().StringVarP(&audioFile, "audio", "a", "", "Audio stream (.aac)")
	recoverCmd.Flags().StringVarP(&xmlFile, "xml", "x", "", "Camtasia project XML")
	recoverCmd.Flags().StringVarP(&outputFile, "output", "o", "camancipated_video.mp4", "Output video filename")
	recoverCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress ffmpeg output (only show errors)")
	recoverCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the plan without running ffmpeg")
	recoverCmd.Flags().BoolVarP(&restart, "restart", "r", false, "Reuse existing slice files, only concatenate")
	recoverCmd.Flags().StringVarP(&encoder, "encoder", "e", "", "Video encoder (auto-detected if unset)")
	recoverCmd.Flags().Float64Var(&fpsFlag, "fps", 0, "Frame rate override when the project declares none")
}

func runRecover(cmd *cobra.Command, args []string) error {
	started := time.Now()
	logger := newLogger(quiet)

	screen := pickInput(screenFile, ".mkv", "screen recording")
	webcam := pickInput(webcamFile, ".mp4", "webcam recording")
	audio := pickInput(audioFile, ".aac", "audio stream")
	xml := pickInput(xmlFile, ".xml", "project XML")
	if screen == "" || webcam == "" || audio == "" || xml == "" {
		return fmt.Errorf("could not determine all input files; pass -s/-w/-a/-x explicitly")
	}

	if !dryRun {
		if err := confirmOverwrite(outputFile); err != nil {
			return err
		}
	}

	reportInputs(logger, screen, webcam)

	segments, fps, err := buildPlan(xml, fpsFlag, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Total segments: %d\n\n", len(segments))
	plan.RenderTable(os.Stdout, segments, fps)

	enc := encoder
	if enc == "" {
		enc = media.SelectEncoder(media.AvailableEncoders())
		logger.Info("auto-detected encoder", "encoder", enc)
	} else {
		logger.Info("using encoder", "encoder", enc)
	}

	if dryRun {
		logger.Info("dry run, skipping extraction")
		return nil
	}

	extractor := &media.Extractor{
		Screen:  screen,
		Webcam:  webcam,
		Audio:   audio,
		Output:  outputFile,
		FPS:     fps,
		Encoder: enc,
		Quiet:   quiet,
		Logger:  logger,
	}
	if err := extractor.Run(segments, restart); err != nil {
		return err
	}

	media.Cleanup(logger)

	elapsed := time.Since(started).Round(time.Second)
	logger.Info("done", "output", outputFile, "elapsed", elapsed.String())
	return nil
}

// pickInput resolves one input path: explicit flag first, otherwise the sole
// file in the folder with the matching extension.
func pickInput(explicit, ext, what string) string {
	if explicit != "" {
		return explicit
	}
	found := media.DefaultFile(folder, ext)
	if found == "" {
		fmt.Fprintf(os.Stderr, "No unambiguous %s (%s) found in %s\n", what, ext, folder)
	}
	return found
}

func reportInputs(logger hclog.Logger, screen, webcam string) {
	if w, h, err := media.VideoSize(screen); err == nil {
		fmt.Printf("Screen video size: %dx%d\n", w, h)
	} else {
		logger.Warn("could not probe screen video", "error", err)
	}
	if w, h, err := media.VideoSize(webcam); err == nil {
		fmt.Printf("Webcam video size: %dx%d\n", w, h)
	} else {
		logger.Warn("could not probe webcam video", "error", err)
	}
	if seconds, err := media.Duration(screen); err == nil {
		total := int(seconds)
		fmt.Printf("Video runtime: %02d:%02d\n", total/60, total%60)
	}
}

func confirmOverwrite(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	fmt.Printf("File '%s' already exists. Overwrite? (y/n): ", path)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(strings.ToLower(line)) != "y" {
		return fmt.Errorf("aborted")
	}
	return nil
}
