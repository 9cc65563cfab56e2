package subtitle

import (
	"errors"
	"strconv"
	"strings"

	"github.com/atozbatur/vtt-timecode-processor/internal/timecode"
)

// ErrNoCues is returned by Convert when the input contains no block with a
// parseable timing line at all. Callers must not write the near-empty output
// for such a file.
var ErrNoCues = errors.New("no parseable subtitle blocks")

// ConvertStats reports what Convert did with the input's blocks.
type ConvertStats struct {
	Blocks  int // valid blocks emitted
	Skipped int // blocks dropped because their timing line did not parse
}

// Convert turns an SRT document into a WebVTT document. Block order and cue
// text are preserved; timing lines are re-emitted with "." as the millisecond
// separator; the numeric index, when present, is carried through as the cue
// identifier. Blocks whose timing line fails to parse are skipped and
// counted, not fatal.
func Convert(text string) (string, ConvertStats, error) {
	var stats ConvertStats
	var out strings.Builder

	out.WriteString(Header + "\n\n")

	var block []string
	flush := func() {
		if len(block) == 0 {
			return
		}
		if converted, ok := convertBlock(block); ok {
			out.WriteString(converted)
			stats.Blocks++
		} else {
			stats.Skipped++
		}
		block = nil
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	if stats.Blocks == 0 {
		return "", stats, ErrNoCues
	}

	return out.String(), stats, nil
}

// convertBlock renders one SRT block as a WebVTT block, ending with the
// blank separator line. Reports false when the timing line does not parse.
func convertBlock(block []string) (string, bool) {
	identifier := ""
	rest := block

	if index, err := strconv.Atoi(strings.TrimSpace(block[0])); err == nil && index > 0 {
		identifier = strconv.Itoa(index)
		rest = block[1:]
	}

	if len(rest) == 0 {
		return "", false
	}

	timing, ok := timecode.ParseTimingLine(rest[0], timecode.SepSRT)
	if !ok {
		return "", false
	}

	var sb strings.Builder
	if identifier != "" {
		sb.WriteString(identifier)
		sb.WriteString("\n")
	}
	sb.WriteString(timing.Format(timecode.SepVTT))
	sb.WriteString("\n")
	for _, textLine := range rest[1:] {
		sb.WriteString(textLine)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String(), true
}
