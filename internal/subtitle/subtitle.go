package subtitle

import (
	"path/filepath"
	"strings"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// Header is the literal first line of every WebVTT document.
const Header = "WEBVTT"

// subtitle format based on file extension
func FormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, true
	case ".vtt":
		return FormatVTT, true
	default:
		return "", false
	}
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	default:
		return ".vtt"
	}
}
