// go_transcript: YouTube transcript MCP server.
//
// Exposes four MCP tools: youtube_transcript, youtube_search,
// youtube_video_info, youtube_transcript_summary.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/transcriptserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_transcript",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	transcriptserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", transcriptserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.ConfigFromEnv()
	engine.Init(c)

	if c.LLMClient != nil {
		slog.Info("llm summaries enabled", slog.String("model", c.LLMModel))
	} else {
		slog.Info("llm summaries disabled, LLM_API_KEY not set")
	}
	if c.InvidiousHost != "" {
		slog.Info("invidious mirror pinned", slog.String("host", c.InvidiousHost))
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
