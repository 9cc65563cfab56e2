package batch

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atozbatur/vtt-timecode-processor/internal/config"
	"github.com/atozbatur/vtt-timecode-processor/internal/subtitle"
)

// Prompter asks the user for a file name in manual naming mode. In and Out
// are injected so prompts can run against any terminal or test buffer.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// Ask prompts for a replacement name for base. A blank answer keeps the
// original name.
func (p *Prompter) Ask(base string) (string, error) {
	fmt.Fprintf(
		p.Out,
		"Enter new name for %s (leave blank to keep original name): ",
		base,
	)
	answer, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read name for %s: %w", base, err)
	}
	return strings.TrimSpace(answer), nil
}

// media extensions that downloaders leave embedded in subtitle names,
// e.g. "episode.mp4.vtt"
var mediaExtensions = []string{".mp4", ".mkv", ".webm", ".mov", ".avi"}

// baseName strips the subtitle extension and any leftover media extension
// from an input path, e.g. "episode.mp4.vtt" -> "episode".
func baseName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, ext := range mediaExtensions {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	return base
}

// outputPath builds the destination path for the index-th input file
// (1-based) under the configured naming mode. All outputs are WebVTT.
func (p *Processor) outputPath(inputPath string, index int) (string, error) {
	ext := subtitle.ExtensionForFormat(subtitle.FormatVTT)
	base := baseName(inputPath)

	var name string
	switch p.cfg.Naming {
	case config.NamingSequential:
		name = p.cfg.Prefix + strconv.Itoa(index)

	case config.NamingManual:
		if p.prompter == nil {
			return "", fmt.Errorf(
				"manual naming requires a prompter for %s", inputPath,
			)
		}
		answer, err := p.prompter.Ask(base)
		if err != nil {
			return "", err
		}
		if answer == "" {
			name = base
		} else {
			name = answer + "_" + strconv.Itoa(index)
		}

	default:
		name = base + "_" + strconv.Itoa(index)
	}

	return filepath.Join(p.outputDir, name+ext), nil
}
