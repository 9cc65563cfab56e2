package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// millisecond separators for the two supported formats
const (
	SepVTT byte = '.'
	SepSRT byte = ','
)

// Arrow joins the start and end timestamps of a timing line.
const Arrow = "-->"

// represents a single subtitle timestamp
type Timestamp struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// renders the timestamp with the given millisecond separator,
// zero-padded to HH:MM:SS<sep>mmm
func (t Timestamp) Format(sep byte) string {
	return fmt.Sprintf(
		"%02d:%02d:%02d%c%03d",
		t.Hours, t.Minutes, t.Seconds, sep, t.Millis,
	)
}

// Line is a recognized cue timing line. Suffix holds any cue-settings text
// after the end timestamp, verbatim, including its leading whitespace.
type Line struct {
	Start  Timestamp
	End    Timestamp
	Suffix string
}

// renders the timing line with the given millisecond separator
func (l Line) Format(sep byte) string {
	return l.Start.Format(sep) + " " + Arrow + " " + l.End.Format(sep) + l.Suffix
}

var timestampPattern = regexp.MustCompile(
	`^(\d{2,}):([0-5]\d):([0-5]\d)([.,])(\d{3})$`,
)

// ParseTimestamp parses a single HH:MM:SS<sep>mmm token. Hours must be at
// least two digits; minutes and seconds must be in range.
func ParseTimestamp(token string, sep byte) (Timestamp, bool) {
	matches := timestampPattern.FindStringSubmatch(token)
	if len(matches) != 6 || matches[4][0] != sep {
		return Timestamp{}, false
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	s, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[5])

	return Timestamp{Hours: h, Minutes: m, Seconds: s, Millis: ms}, true
}

// ParseTimingLine attempts to match a line against the cue-timing shape:
// two timestamps joined by the arrow token, optionally followed by
// cue-settings text. The second return value reports whether the line
// matched; unmatched lines are the caller's to keep as-is.
func ParseTimingLine(line string, sep byte) (Line, bool) {
	arrow := strings.Index(line, Arrow)
	if arrow < 0 {
		return Line{}, false
	}

	start, ok := ParseTimestamp(strings.TrimSpace(line[:arrow]), sep)
	if !ok {
		return Line{}, false
	}

	rest := strings.TrimLeft(line[arrow+len(Arrow):], " \t")
	endToken := rest
	suffix := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		endToken, suffix = rest[:i], rest[i:]
	}

	end, ok := ParseTimestamp(endToken, sep)
	if !ok {
		return Line{}, false
	}

	return Line{Start: start, End: end, Suffix: suffix}, true
}

var vttTimingPattern = regexp.MustCompile(
	`(\d{2,}):([0-5]\d:[0-5]\d\.\d{3}) --> (\d{2,}):([0-5]\d:[0-5]\d\.\d{3})`,
)

// RewriteHours replaces the hour field of both timestamps in a recognized
// WebVTT timing line with "00". Everything else on the line, including any
// cue-settings suffix, is preserved byte for byte. Lines without a valid
// timing line come back unchanged.
func RewriteHours(line string) (string, bool) {
	if !vttTimingPattern.MatchString(line) {
		return line, false
	}
	return vttTimingPattern.ReplaceAllString(line, "00:$2 --> 00:$4"), true
}
