package subtitle

import "testing"

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"movie.srt", FormatSRT, true},
		{"movie.SRT", FormatSRT, true},
		{"/dir/movie.vtt", FormatVTT, true},
		{"movie.ass", "", false},
		{"movie", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FormatFromExtension(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf(
					"FormatFromExtension(%q) = (%q, %v), want (%q, %v)",
					tt.path, got, ok, tt.want, tt.ok,
				)
			}
		})
	}
}

func TestExtensionForFormat(t *testing.T) {
	if got := ExtensionForFormat(FormatSRT); got != ".srt" {
		t.Errorf("ExtensionForFormat(srt) = %q", got)
	}
	if got := ExtensionForFormat(FormatVTT); got != ".vtt" {
		t.Errorf("ExtensionForFormat(vtt) = %q", got)
	}
}
