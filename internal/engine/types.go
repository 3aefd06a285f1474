package engine

// --- Tool input types ---

type TranscriptInput struct {
	Video         string  `json:"video" jsonschema:"YouTube video ID or watch URL"`
	WindowSeconds float64 `json:"window_seconds,omitempty" jsonschema:"Max seconds of speech merged into one block (default: 30)"`
	Format        string  `json:"format,omitempty" jsonschema:"Output format: json (default), markdown or html"`
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"Video search query"`
}

type VideoInfoInput struct {
	Video string `json:"video" jsonschema:"YouTube video ID or watch URL"`
}

type SummaryInput struct {
	Video    string `json:"video" jsonschema:"YouTube video ID or watch URL"`
	Question string `json:"question,omitempty" jsonschema:"Optional question to answer from the transcript"`
}

// --- Output types (JSON responses) ---

// CueItem is one consolidated transcript block as shown to tool callers.
type CueItem struct {
	Start     float64 `json:"start"`
	StartText string  `json:"start_text"` // m:ss
	Link      string  `json:"link"`       // watch URL at Start
	Duration  float64 `json:"duration"`
	Text      string  `json:"text"` // raw newlines between merged fragments
}

type TranscriptOutput struct {
	VideoID  string    `json:"video_id"`
	Title    string    `json:"title,omitempty"`
	Window   float64   `json:"window_seconds"`
	Cues     []CueItem `json:"cues"`
	Markdown string    `json:"markdown,omitempty"`
	HTML     string    `json:"html,omitempty"`
}

// VideoResult is a search hit from the Invidious mirror.
type VideoResult struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	LengthSeconds int    `json:"length_seconds,omitempty"`
	URL           string `json:"url"`
}

type SearchOutput struct {
	Query   string        `json:"query"`
	Results []VideoResult `json:"results"`
}

// VideoInfo is video metadata from the Invidious mirror.
type VideoInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"` // markdown
	AudioURL    string `json:"audio_url"`
}

type SummaryOutput struct {
	VideoID  string `json:"video_id"`
	Title    string `json:"title,omitempty"`
	Question string `json:"question,omitempty"`
	Summary  string `json:"summary"`
}
