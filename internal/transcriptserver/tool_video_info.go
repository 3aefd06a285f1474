package transcriptserver

import (
	"context"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerVideoInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video_info",
		Description: "Get YouTube video metadata through an Invidious mirror: title, author, description (markdown) and a direct audio stream URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.VideoInfoInput) (*mcp.CallToolResult, engine.VideoInfo, error) {
		out, err := videoInfo(ctx, input)
		if err != nil {
			return nil, engine.VideoInfo{}, toolError(err)
		}
		return nil, out, nil
	})
}

func videoInfo(ctx context.Context, input engine.VideoInfoInput) (engine.VideoInfo, error) {
	videoID, err := toolutil.VideoID(input.Video)
	if err != nil {
		return engine.VideoInfo{}, err
	}

	cacheKey := engine.CacheKey("youtube_video_info", videoID)
	if out, ok := engine.CacheLoadJSON[engine.VideoInfo](ctx, cacheKey); ok {
		return out, nil
	}

	iv, err := sources.DefaultInvidious(ctx)
	if err != nil {
		return engine.VideoInfo{}, err
	}
	info, err := iv.VideoInfo(ctx, videoID)
	if err != nil {
		return engine.VideoInfo{}, err
	}
	engine.CacheStoreJSON(ctx, cacheKey, info)
	return info, nil
}
