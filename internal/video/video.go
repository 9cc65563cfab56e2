package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// defines interface for container subtitle operations
type Processor interface {
	// extracts one subtitle stream from a video container
	ExtractSubtitle(
		ctx context.Context,
		videoPath, outputPath string,
		opts ExtractSubtitleOptions,
	) error
}

// holds options for subtitle extraction
type ExtractSubtitleOptions struct {
	Stream int    // subtitle stream index within the container (0-based)
	Format string // output codec: srt or webvtt
}

// returns sensible defaults for subtitle extraction
func DefaultExtractSubtitleOptions() ExtractSubtitleOptions {
	return ExtractSubtitleOptions{
		Stream: 0,
		Format: "srt",
	}
}

// default implementation using ffmpeg
type DefaultProcessor struct{}

func NewProcessor() *DefaultProcessor {
	return &DefaultProcessor{}
}

// extracts one subtitle stream from a video container
func (p *DefaultProcessor) ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractSubtitleOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Stream),
		"y":   "", // Overwrite output
	}

	switch opts.Format {
	case "webvtt":
		kwargs["c:s"] = "webvtt"
	case "srt":
		kwargs["c:s"] = "subrip"
	default:
		kwargs["c:s"] = "subrip"
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}
