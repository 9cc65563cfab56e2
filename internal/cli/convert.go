package cli

import (
	"github.com/atozbatur/vtt-timecode-processor/internal/batch"
	"github.com/atozbatur/vtt-timecode-processor/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input_dir]",
	Short: "Convert SRT files to WebVTT",
	Long: `Convert every .srt file in the input directory to WebVTT: the header is
added, timing lines switch from comma to dot milliseconds, and cue text
is preserved verbatim. Blocks whose timing line cannot be parsed are
skipped and counted; a file with no parseable blocks at all is reported
as failed and no output is written for it.

Examples:
  vttproc convert ./subs
  vttproc convert ./subs -o ./out --sequential --prefix lecture_
  vttproc convert ./subs --rename --no-parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addBatchFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return runBatch(cmd, args[0], batch.OpConvert, subtitle.FormatSRT)
}
