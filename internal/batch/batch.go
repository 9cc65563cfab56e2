package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atozbatur/vtt-timecode-processor/internal/config"
	"github.com/atozbatur/vtt-timecode-processor/internal/logging"
	"github.com/atozbatur/vtt-timecode-processor/internal/subtitle"
)

// Operation selects which core transform a batch run applies.
type Operation string

const (
	OpNormalize Operation = "normalize" // zero hour fields of WebVTT files
	OpConvert   Operation = "convert"   // SRT to WebVTT
)

// Result is the outcome for one input file.
type Result struct {
	Input   string
	Output  string
	Skipped int // blocks dropped during conversion
	Err     error
}

// Summary aggregates a batch run. Results are in input order regardless of
// completion order.
type Summary struct {
	Processed     int
	Failed        int
	SkippedBlocks int
	Results       []Result
}

// Processor fans a list of subtitle files out over a worker pool and applies
// one of the core transforms to each. The cores are stateless, so no
// coordination beyond the pool itself is needed.
type Processor struct {
	op        Operation
	outputDir string
	cfg       config.Config
	prompter  *Prompter
	logger    *logging.Logger
}

// Options configures a Processor.
type Options struct {
	Operation Operation
	OutputDir string
	Config    config.Config
	Prompter  *Prompter // required for manual naming
	Logger    *logging.Logger
}

func NewProcessor(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Processor{
		op:        opts.Operation,
		outputDir: opts.OutputDir,
		cfg:       opts.Config,
		prompter:  opts.Prompter,
		logger:    logger,
	}
}

// Run processes the given files and returns the aggregated summary. Output
// names are resolved up front in input order, so manual-mode prompts never
// interleave with worker output. Each file's outcome is independent; one bad
// file never aborts the batch.
func (p *Processor) Run(ctx context.Context, files []string) (Summary, error) {
	summary := Summary{Results: make([]Result, len(files))}
	if len(files) == 0 {
		return summary, nil
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := make([]string, len(files))
	for i, file := range files {
		path, err := p.outputPath(file, i+1)
		if err != nil {
			return summary, err
		}
		outputs[i] = path
	}

	workers := 1
	if p.cfg.Parallel {
		workers = p.cfg.Concurrency
		if workers <= 0 {
			workers = 1
		}
		if workers > len(files) {
			workers = len(files)
		}
	}

	workChan := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workChan {
				summary.Results[idx] = p.processFile(files[idx], outputs[idx])
			}
		}()
	}

	for i := range files {
		if ctx.Err() != nil {
			close(workChan)
			wg.Wait()
			return summary, ctx.Err()
		}
		select {
		case <-ctx.Done():
			close(workChan)
			wg.Wait()
			return summary, ctx.Err()
		case workChan <- i:
		}
	}
	close(workChan)
	wg.Wait()

	for _, res := range summary.Results {
		if res.Err != nil {
			summary.Failed++
			p.logger.Errorw("File failed",
				"input", res.Input,
				"error", res.Err,
			)
			continue
		}
		summary.Processed++
		summary.SkippedBlocks += res.Skipped
	}

	return summary, nil
}

// processFile reads one input file, applies the transform, and writes the
// result. Conversion output is withheld when no block parsed, so a bad file
// never produces a near-empty document on disk.
func (p *Processor) processFile(inputPath, outputPath string) Result {
	res := Result{Input: inputPath, Output: outputPath}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", inputPath, err)
		return res
	}

	var output string
	switch p.op {
	case OpNormalize:
		output = subtitle.Normalize(string(data))

	case OpConvert:
		converted, stats, err := subtitle.Convert(string(data))
		if err != nil {
			res.Err = fmt.Errorf("failed to convert %s: %w", inputPath, err)
			return res
		}
		if stats.Skipped > 0 {
			p.logger.Debugw("Skipped malformed blocks",
				"input", inputPath,
				"skipped", stats.Skipped,
			)
		}
		output = converted
		res.Skipped = stats.Skipped

	default:
		res.Err = fmt.Errorf("unsupported operation: %s", p.op)
		return res
	}

	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", outputPath, err)
		return res
	}

	p.logger.Infow("Processed file",
		"input", inputPath,
		"output", outputPath,
	)
	return res
}

// ListFiles returns the files in dir carrying the given subtitle format's
// extension, in directory order.
func ListFiles(dir string, format subtitle.Format) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if f, ok := subtitle.FormatFromExtension(entry.Name()); ok && f == format {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
