package transcriptserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTranscriptSummary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript_summary",
		Description: "Summarize a YouTube video from its transcript with an LLM, citing [m:ss] timestamps. Pass question to get an answer grounded in the transcript instead of a general summary. Requires LLM_API_KEY.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SummaryInput) (*mcp.CallToolResult, engine.SummaryOutput, error) {
		out, err := summarize(ctx, input)
		if err != nil {
			return nil, engine.SummaryOutput{}, toolError(err)
		}
		return nil, out, nil
	})
}

func summarize(ctx context.Context, input engine.SummaryInput) (engine.SummaryOutput, error) {
	if !engine.LLMEnabled() {
		return engine.SummaryOutput{}, engine.ErrLLMDisabled
	}
	tr, err := buildTranscript(ctx, engine.TranscriptInput{Video: input.Video})
	if err != nil {
		return engine.SummaryOutput{}, err
	}

	question := strings.TrimSpace(input.Question)
	summary, err := engine.SummarizeTranscript(ctx, tr.Title, question, tr.Cues)
	if err != nil {
		return engine.SummaryOutput{}, err
	}
	return engine.SummaryOutput{
		VideoID:  tr.VideoID,
		Title:    tr.Title,
		Question: question,
		Summary:  summary,
	}, nil
}
