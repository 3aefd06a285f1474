package transcriptserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_search",
		Description: "Search YouTube videos through an Invidious mirror. Returns video id, title, author, length, thumbnail and watch URL for each hit. Use the id with youtube_transcript.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SearchInput) (*mcp.CallToolResult, engine.SearchOutput, error) {
		out, err := searchVideos(ctx, input)
		if err != nil {
			return nil, engine.SearchOutput{}, toolError(err)
		}
		return nil, out, nil
	})
}

func searchVideos(ctx context.Context, input engine.SearchInput) (engine.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return engine.SearchOutput{}, fmt.Errorf("query is required")
	}

	cacheKey := engine.CacheKey("youtube_search", query)
	if out, ok := engine.CacheLoadJSON[engine.SearchOutput](ctx, cacheKey); ok {
		return out, nil
	}

	iv, err := sources.DefaultInvidious(ctx)
	if err != nil {
		return engine.SearchOutput{}, err
	}
	results, err := iv.Search(ctx, query)
	if err != nil {
		return engine.SearchOutput{}, err
	}
	slog.Debug("youtube_search: results", slog.String("query", query), slog.Int("count", len(results)))

	out := engine.SearchOutput{Query: query, Results: results}
	if out.Results == nil {
		out.Results = []engine.VideoResult{}
	}
	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}
