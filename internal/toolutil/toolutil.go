// Package toolutil provides shared helper functions for go_transcript MCP tools.
package toolutil

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDRE  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLRE = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|shorts/|embed/|live/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
)

// ErrNoVideo is returned when input has no recognizable video id.
var ErrNoVideo = errors.New("video id or YouTube URL is required")

// VideoID extracts the 11-char video id from a bare id or any YouTube URL form
// (watch, shorts, embed, live, youtu.be). Local /watch?v= links are accepted too.
func VideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrNoVideo
	}
	if videoIDRE.MatchString(s) {
		return s, nil
	}
	if m := videoURLRE.FindStringSubmatch(s); len(m) >= 2 {
		return m[1], nil
	}
	if u, err := url.Parse(s); err == nil {
		if v := u.Query().Get("v"); videoIDRE.MatchString(v) {
			return v, nil
		}
	}
	return "", ErrNoVideo
}

// WindowSeconds returns w when positive, otherwise def.
func WindowSeconds(w, def float64) float64 {
	if w > 0 {
		return w
	}
	return def
}
