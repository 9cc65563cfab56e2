package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/atozbatur/vtt-timecode-processor/internal/batch"
	"github.com/atozbatur/vtt-timecode-processor/internal/config"
	"github.com/spf13/cobra"
)

// registers the batch-driver flags shared by normalize and convert
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().
		Bool("sequential", false, "Name output files <prefix><index>.vtt")
	cmd.Flags().
		StringP("prefix", "p", "", "Prefix for sequential numbering")
	cmd.Flags().
		Bool("rename", false, "Prompt for a new name for each file")
	cmd.Flags().
		IntP("concurrency", "c", 0, "Number of parallel workers (default: CPU count, capped at 4)")
	cmd.Flags().
		Bool("no-parallel", false, "Process files one at a time")
}

// batchConfig resolves the effective config: defaults, then the optional
// config file, then flags on top.
func batchConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// sequential numbering takes precedence over interactive renaming
	if rename, _ := cmd.Flags().GetBool("rename"); rename {
		cfg.Naming = config.NamingManual
	}
	if sequential, _ := cmd.Flags().GetBool("sequential"); sequential {
		cfg.Naming = config.NamingSequential
	}
	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		cfg.Prefix = prefix
	}
	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		cfg.Concurrency = concurrency
	}
	if noParallel, _ := cmd.Flags().GetBool("no-parallel"); noParallel {
		cfg.Parallel = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newProcessor builds the batch processor for a command invocation
func newProcessor(cmd *cobra.Command, op batch.Operation, outputDir string, cfg config.Config) *batch.Processor {
	var prompter *batch.Prompter
	if cfg.Naming == config.NamingManual {
		prompter = &batch.Prompter{
			In:  bufio.NewReader(cmd.InOrStdin()),
			Out: cmd.OutOrStdout(),
		}
	}

	return batch.NewProcessor(batch.Options{
		Operation: op,
		OutputDir: outputDir,
		Config:    cfg,
		Prompter:  prompter,
		Logger:    logger,
	})
}

// printSummary reports the aggregated batch outcome
func printSummary(summary batch.Summary) {
	fmt.Printf("Processing complete.\n")
	fmt.Printf("  Processed: %d\n", summary.Processed)
	fmt.Printf("  Failed: %d\n", summary.Failed)
	if summary.SkippedBlocks > 0 {
		fmt.Printf("  Skipped blocks: %d\n", summary.SkippedBlocks)
	}
	for _, res := range summary.Results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", res.Input, res.Err)
		}
	}
}
