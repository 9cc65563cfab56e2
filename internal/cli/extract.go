package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atozbatur/vtt-timecode-processor/internal/subtitle"
	"github.com/atozbatur/vtt-timecode-processor/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract a subtitle track from a video file",
	Long: `Extract an embedded subtitle stream from a video container and save it as
a subtitle file.

Supported output formats: srt, webvtt. With --convert, an extracted SRT
track is additionally converted to WebVTT.

Examples:
  vttproc extract movie.mkv
  vttproc extract movie.mkv -o movie.vtt -f webvtt
  vttproc extract movie.mkv --stream 1 --convert`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, webvtt)")
	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container")
	extractCmd.Flags().
		Bool("convert", false, "Convert the extracted SRT track to WebVTT")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	stream, _ := cmd.Flags().GetInt("stream")
	convert, _ := cmd.Flags().GetBool("convert")
	outputPath, _ := cmd.Flags().GetString("output")

	validFormats := map[string]bool{
		"srt":    true,
		"webvtt": true,
	}
	if !validFormats[format] {
		return fmt.Errorf(
			"invalid format %q: supported formats are srt, webvtt",
			format,
		)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
		if format == "webvtt" {
			outputPath = base + subtitle.ExtensionForFormat(subtitle.FormatVTT)
		} else {
			outputPath = base + subtitle.ExtensionForFormat(subtitle.FormatSRT)
		}
	}

	logger.Infow("Extracting subtitle track",
		"video", videoPath,
		"output", outputPath,
		"format", format,
		"stream", stream,
	)

	processor := video.NewProcessor()

	opts := video.ExtractSubtitleOptions{
		Stream: stream,
		Format: format,
	}

	ctx := context.Background()
	if err := processor.ExtractSubtitle(
		ctx,
		videoPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if convert && format == "srt" {
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read extracted track: %w", err)
		}

		converted, stats, err := subtitle.Convert(string(data))
		if err != nil {
			return fmt.Errorf("failed to convert extracted track: %w", err)
		}
		if stats.Skipped > 0 {
			logger.Debugw("Skipped malformed blocks",
				"input", outputPath,
				"skipped", stats.Skipped,
			)
		}

		vttPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) +
			subtitle.ExtensionForFormat(subtitle.FormatVTT)
		if err := os.WriteFile(vttPath, []byte(converted), 0644); err != nil {
			return fmt.Errorf("failed to write converted track: %w", err)
		}
		outputPath = vttPath
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted successfully: %s\n", absOutput)

	return nil
}
