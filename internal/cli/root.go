package cli

import (
	"github.com/atozbatur/vtt-timecode-processor/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vttproc",
	Short: "Batch WebVTT timecode processor and SRT converter",
	Long: `Vttproc rewrites subtitle timing metadata in batches.

It can zero the hour fields of WebVTT timecodes, convert SRT files to
WebVTT, and pull embedded subtitle tracks out of video containers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output directory or file path")
	rootCmd.PersistentFlags().
		String("config", "", "Path to a YAML config file")
}
