package subtitle

import (
	"strings"

	"github.com/atozbatur/vtt-timecode-processor/internal/timecode"
)

// Normalize rewrites the hour field of every recognized cue timing line in a
// WebVTT document to "00". All other lines, and everything on a timing line
// other than the two hour fields, pass through byte for byte. Malformed
// timing-shaped lines are left alone rather than failing the document, so
// Normalize never returns an error and is idempotent.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i], _ = timecode.RewriteHours(line)
	}
	return strings.Join(lines, "\n")
}
