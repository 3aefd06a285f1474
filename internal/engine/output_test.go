package engine

import (
	"strings"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{60, "1:00"},
		{125.2, "2:05"},
		{3725, "62:05"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.sec); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestWatchLink(t *testing.T) {
	tests := []struct {
		name string
		sec  float64
		want string
	}{
		{"whole", 15, "https://www.youtube.com/watch?v=abc&t=15"},
		{"fraction", 15.36, "https://www.youtube.com/watch?v=abc&t=15.36"},
		{"zero", 0, "https://www.youtube.com/watch?v=abc&t=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WatchLink("abc", tt.sec); got != tt.want {
				t.Errorf("WatchLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCueHTML(t *testing.T) {
	got := CueHTML("a <b>\nc & d\n")
	want := "a &lt;b&gt;<br>c &amp; d<br>"
	if got != want {
		t.Errorf("CueHTML() = %q, want %q", got, want)
	}
}

func TestTranscriptMarkdown(t *testing.T) {
	out := TranscriptOutput{
		VideoID: "abc",
		Title:   "Demo",
		Cues: []CueItem{
			NewCueItem("abc", 0, 15, "a\nb\n"),
			NewCueItem("abc", 65, 20, "c\n"),
		},
	}
	md := TranscriptMarkdown(out)
	if !strings.HasPrefix(md, "# Demo\n\n") {
		t.Errorf("missing title heading: %q", md)
	}
	if !strings.Contains(md, "[0:00](https://www.youtube.com/watch?v=abc&t=0) a b\n") {
		t.Errorf("missing first block: %q", md)
	}
	if !strings.Contains(md, "[1:05](https://www.youtube.com/watch?v=abc&t=65) c\n") {
		t.Errorf("missing second block: %q", md)
	}
}

func TestTranscriptHTML(t *testing.T) {
	out := TranscriptOutput{
		VideoID: "abc",
		Title:   "Q&A",
		Cues: []CueItem{
			NewCueItem("abc", 0, 15, "a <b>\nc\n"),
			NewCueItem("abc", 65, 20, "d\n"),
		},
	}
	got := TranscriptHTML(out)
	want := "<h1>Q&amp;A</h1>\n" +
		"<p><a href=\"https://www.youtube.com/watch?v=abc&amp;t=0\">0:00</a> a &lt;b&gt;<br>c</p>\n" +
		"<p><a href=\"https://www.youtube.com/watch?v=abc&amp;t=65\">1:05</a> d</p>\n"
	if got != want {
		t.Errorf("TranscriptHTML() = %q, want %q", got, want)
	}
}
