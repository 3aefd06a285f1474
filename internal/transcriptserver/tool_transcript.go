package transcriptserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the transcript of a YouTube video and merge caption fragments into blocks of at most window_seconds of speech (default 30). Each block has its start time (m:ss), a deep link into the video and the text. Set format=markdown or format=html for a readable rendering.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
		out, err := buildTranscript(ctx, input)
		if err != nil {
			return nil, engine.TranscriptOutput{}, toolError(err)
		}
		return nil, out, nil
	})
}

// buildTranscript resolves the video, runs the transcript pipeline and shapes the result.
func buildTranscript(ctx context.Context, input engine.TranscriptInput) (engine.TranscriptOutput, error) {
	videoID, err := toolutil.VideoID(input.Video)
	if err != nil {
		return engine.TranscriptOutput{}, err
	}
	window := toolutil.WindowSeconds(input.WindowSeconds, engine.Cfg.TranscriptWindow.Seconds())

	var tr sources.Transcript
	err = engine.TrackOperation(ctx, "youtube_transcript", func(ctx context.Context) error {
		var ferr error
		tr, ferr = sources.FetchTranscriptWindow(ctx, videoID, window)
		return ferr
	})
	if err != nil {
		return engine.TranscriptOutput{}, err
	}

	out := engine.TranscriptOutput{
		VideoID: videoID,
		Title:   tr.Title,
		Window:  window,
		Cues:    cueItems(videoID, tr.Cues),
	}
	switch strings.ToLower(strings.TrimSpace(input.Format)) {
	case "markdown":
		out.Markdown = engine.TranscriptMarkdown(out)
	case "html":
		out.HTML = engine.TranscriptHTML(out)
	}
	return out, nil
}

// cueItems converts consolidated cues into the caller-facing view.
func cueItems(videoID string, cues []sources.Cue) []engine.CueItem {
	items := make([]engine.CueItem, 0, len(cues))
	for _, c := range cues {
		items = append(items, engine.NewCueItem(videoID, c.Start, c.Duration, c.Text))
	}
	return items
}
