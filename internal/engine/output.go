package engine

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// FormatTimestamp renders seconds as m:ss. Minutes are not wrapped into hours.
func FormatTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	s := int(sec)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// WatchLink returns a watch URL that starts playback at sec.
func WatchLink(videoID string, sec float64) string {
	return DefaultWatchURL + "?v=" + videoID + "&t=" + strconv.FormatFloat(sec, 'f', -1, 64)
}

// CueHTML escapes text for HTML and turns line breaks into <br>.
func CueHTML(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

// NewCueItem builds the caller-facing view of one consolidated block.
func NewCueItem(videoID string, start, duration float64, text string) CueItem {
	return CueItem{
		Start:     start,
		StartText: FormatTimestamp(start),
		Link:      WatchLink(videoID, start),
		Duration:  duration,
		Text:      text,
	}
}

// TranscriptMarkdown renders cues as one "[m:ss](link) text" paragraph per block.
func TranscriptMarkdown(out TranscriptOutput) string {
	var sb strings.Builder
	if out.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", out.Title)
	}
	for _, c := range out.Cues {
		text := strings.Join(strings.Fields(c.Text), " ")
		fmt.Fprintf(&sb, "[%s](%s) %s\n\n", c.StartText, c.Link, text)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// TranscriptHTML renders cues as one <p> per block with a linked timestamp.
func TranscriptHTML(out TranscriptOutput) string {
	var sb strings.Builder
	if out.Title != "" {
		fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(out.Title))
	}
	for _, c := range out.Cues {
		fmt.Fprintf(&sb, "<p><a href=\"%s\">%s</a> %s</p>\n",
			html.EscapeString(c.Link), c.StartText, CueHTML(strings.TrimRight(c.Text, "\n")))
	}
	return sb.String()
}
