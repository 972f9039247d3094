package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"camancipate/media"
)

var probeCmd = &cobra.Command{
	Use:   "probe <file>...",
	Short: "Show resolution and duration of media files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			seconds, err := media.Duration(path)
			if err != nil {
				return err
			}
			total := int(seconds)

			if w, h, err := media.VideoSize(path); err == nil {
				fmt.Printf("%s: %dx%d, %02d:%02d\n", path, w, h, total/60, total%60)
			} else {
				fmt.Printf("%s: no video stream, %02d:%02d\n", path, total/60, total%60)
			}
		}
		return nil
	},
}
