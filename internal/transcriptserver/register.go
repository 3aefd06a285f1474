package transcriptserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 4

// RegisterTools registers all YouTube tools on the given MCP server:
// youtube_transcript, youtube_search, youtube_video_info, youtube_transcript_summary.
func RegisterTools(server *mcp.Server) {
	registerTranscript(server)
	registerSearch(server)
	registerVideoInfo(server)
	registerTranscriptSummary(server)
}
