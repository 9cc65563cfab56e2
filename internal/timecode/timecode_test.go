package timecode

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		token string
		sep   byte
		want  Timestamp
		ok    bool
	}{
		{"vtt basic", "00:01:23.456", SepVTT, Timestamp{0, 1, 23, 456}, true},
		{"srt basic", "02:59:59,999", SepSRT, Timestamp{2, 59, 59, 999}, true},
		{"large hours", "123:00:00.000", SepVTT, Timestamp{123, 0, 0, 0}, true},
		{"wrong separator", "00:01:23,456", SepVTT, Timestamp{}, false},
		{"one digit hour", "0:01:23.456", SepVTT, Timestamp{}, false},
		{"minutes out of range", "00:60:23.456", SepVTT, Timestamp{}, false},
		{"seconds out of range", "00:01:60.456", SepVTT, Timestamp{}, false},
		{"two digit millis", "00:01:23.45", SepVTT, Timestamp{}, false},
		{"four digit millis", "00:01:23.4567", SepVTT, Timestamp{}, false},
		{"trailing junk", "00:01:23.456x", SepVTT, Timestamp{}, false},
		{"empty", "", SepVTT, Timestamp{}, false},
		{"not a timestamp", "garbage", SepSRT, Timestamp{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.token, tt.sep)
			if ok != tt.ok {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp{Hours: 1, Minutes: 2, Seconds: 3, Millis: 45}
	if got := ts.Format(SepVTT); got != "01:02:03.045" {
		t.Errorf("Format(SepVTT) = %q, want %q", got, "01:02:03.045")
	}
	if got := ts.Format(SepSRT); got != "01:02:03,045" {
		t.Errorf("Format(SepSRT) = %q, want %q", got, "01:02:03,045")
	}
}

func TestParseTimingLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		sep  byte
		want Line
		ok   bool
	}{
		{
			"srt timing",
			"00:00:01,000 --> 00:00:04,000",
			SepSRT,
			Line{
				Start: Timestamp{0, 0, 1, 0},
				End:   Timestamp{0, 0, 4, 0},
			},
			true,
		},
		{
			"vtt timing with settings",
			"00:01:23.456 --> 00:02:10.000 position:50% line:85%",
			SepVTT,
			Line{
				Start:  Timestamp{0, 1, 23, 456},
				End:    Timestamp{0, 2, 10, 0},
				Suffix: " position:50% line:85%",
			},
			true,
		},
		{
			"surrounding whitespace",
			"  01:02:03,004 -->   01:02:04,005",
			SepSRT,
			Line{
				Start: Timestamp{1, 2, 3, 4},
				End:   Timestamp{1, 2, 4, 5},
			},
			true,
		},
		{"no arrow", "00:00:01,000 00:00:04,000", SepSRT, Line{}, false},
		{"garbage", "garbage", SepSRT, Line{}, false},
		{"bad start", "0:00:01,000 --> 00:00:04,000", SepSRT, Line{}, false},
		{"bad end", "00:00:01,000 --> 00:00:61,000", SepSRT, Line{}, false},
		{"wrong separator", "00:00:01.000 --> 00:00:04.000", SepSRT, Line{}, false},
		{"empty", "", SepSRT, Line{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimingLine(tt.line, tt.sep)
			if ok != tt.ok {
				t.Fatalf("ParseTimingLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimingLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLineFormat(t *testing.T) {
	line, ok := ParseTimingLine(
		"01:02:03,004 --> 01:02:04,005 align:center",
		SepSRT,
	)
	if !ok {
		t.Fatal("expected timing line to parse")
	}

	want := "01:02:03.004 --> 01:02:04.005 align:center"
	if got := line.Format(SepVTT); got != want {
		t.Errorf("Format(SepVTT) = %q, want %q", got, want)
	}
}

func TestRewriteHours(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		rewrote bool
	}{
		{
			"already zero",
			"00:01:23.456 --> 00:02:10.000",
			"00:01:23.456 --> 00:02:10.000",
			true,
		},
		{
			"nonzero hours",
			"02:01:23.456 --> 02:02:10.000",
			"00:01:23.456 --> 00:02:10.000",
			true,
		},
		{
			"cue settings preserved",
			"01:00:05.100 --> 01:00:07.900 position:10%,line-left align:left",
			"00:00:05.100 --> 00:00:07.900 position:10%,line-left align:left",
			true,
		},
		{
			"three digit hours",
			"100:01:23.456 --> 100:02:10.000",
			"00:01:23.456 --> 00:02:10.000",
			true,
		},
		{
			"header untouched",
			"WEBVTT",
			"WEBVTT",
			false,
		},
		{
			"cue text untouched",
			"And the clock read 02:01:23 exactly.",
			"And the clock read 02:01:23 exactly.",
			false,
		},
		{
			"srt separator not recognized",
			"02:01:23,456 --> 02:02:10,000",
			"02:01:23,456 --> 02:02:10,000",
			false,
		},
		{
			"minutes out of range",
			"02:61:23.456 --> 02:62:10.000",
			"02:61:23.456 --> 02:62:10.000",
			false,
		},
		{
			"blank line",
			"",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rewrote := RewriteHours(tt.line)
			if got != tt.want {
				t.Errorf("RewriteHours(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if rewrote != tt.rewrote {
				t.Errorf(
					"RewriteHours(%q) rewrote = %v, want %v",
					tt.line, rewrote, tt.rewrote,
				)
			}
		})
	}
}
