package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/atozbatur/vtt-timecode-processor/internal/batch"
	"github.com/atozbatur/vtt-timecode-processor/internal/subtitle"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [input_dir]",
	Short: "Zero the hour fields of WebVTT timecodes",
	Long: `Rewrite every .vtt file in the input directory so that the hour field of
each cue timing line is 00. Everything else in the files is preserved
byte for byte; lines that do not look like valid timing lines pass
through untouched.

Examples:
  vttproc normalize ./subs
  vttproc normalize ./subs -o ./out --sequential --prefix episode_
  vttproc normalize ./subs --rename --no-parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	addBatchFlags(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	return runBatch(cmd, args[0], batch.OpNormalize, subtitle.FormatVTT)
}

// runBatch is the shared driver loop for the normalize and convert commands.
func runBatch(
	cmd *cobra.Command,
	inputDir string,
	op batch.Operation,
	format subtitle.Format,
) error {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid input directory: %s", inputDir)
	}

	cfg, err := batchConfig(cmd)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = inputDir
	}

	files, err := batch.ListFiles(inputDir, format)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf(
			"no %s files found in %s",
			subtitle.ExtensionForFormat(format), inputDir,
		)
	}

	logger.Infow("Starting batch processing",
		"operation", string(op),
		"input", inputDir,
		"output", outputDir,
		"files", len(files),
		"naming", cfg.Naming,
		"parallel", cfg.Parallel,
		"concurrency", cfg.Concurrency,
	)

	processor := newProcessor(cmd, op, outputDir, cfg)

	summary, err := processor.Run(context.Background(), files)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	printSummary(summary)
	return nil
}
