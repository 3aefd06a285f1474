package sources

import "strings"

// DefaultWindow is the default consolidation window in seconds.
const DefaultWindow = 30.0

// Consolidate merges consecutive raw cues into blocks whose summed duration
// stays within window seconds. It is a greedy single pass in input order:
// a block is closed when adding the next cue would exceed the window, and the
// next cue starts a new block at its own start time. Each fragment's text is
// followed by a newline. A cue longer than the window on its own becomes a
// block by itself.
//
// Consolidating already consolidated cues may merge them further; the
// operation is not idempotent.
func Consolidate(cues []Cue, window float64) []Cue {
	if len(cues) == 0 {
		return []Cue{}
	}

	var out []Cue
	var text strings.Builder
	cur := Cue{Start: cues[0].Start}
	n := 0 // fragments in cur

	for _, c := range cues {
		if n > 0 && cur.Duration+c.Duration > window {
			cur.Text = text.String()
			out = append(out, cur)
			cur = Cue{Start: c.Start}
			text.Reset()
			n = 0
		}
		cur.Duration += c.Duration
		text.WriteString(c.Text)
		text.WriteByte('\n')
		n++
	}

	cur.Text = text.String()
	return append(out, cur)
}
