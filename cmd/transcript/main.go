// Command transcript prints the consolidated transcript of a YouTube video.
//
//	transcript <video-id-or-url> [--window 30s] [--markdown | --html]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
	"github.com/spf13/cobra"
)

var (
	window   time.Duration
	markdown bool
	htmlOut  bool
	verbose  bool

	rootCmd = &cobra.Command{
		Use:   "transcript [flags] <youtube video id or url>",
		Short: "Fetch and consolidate a YouTube transcript",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranscript,
		Long: `transcript scrapes the watch page for the Innertube API key and share entity,
requests the transcript, and merges caption fragments into blocks of at most
--window of speech. Each block is printed with its m:ss start time.`,
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.DurationVarP(&window, "window", "w", 0, "max speech per block (default TRANSCRIPT_WINDOW or 30s)")
	flags.BoolVarP(&markdown, "markdown", "m", false, "render markdown with deep links")
	flags.BoolVar(&htmlOut, "html", false, "render HTML paragraphs with deep links")
	rootCmd.MarkFlagsMutuallyExclusive("markdown", "html")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	engine.Init(engine.ConfigFromEnv())

	videoID, err := toolutil.VideoID(args[0])
	if err != nil {
		return err
	}
	tr, err := sources.FetchTranscriptWindow(cmd.Context(), videoID, window.Seconds())
	if err != nil {
		return fmt.Errorf("%s: %w", sources.ErrorKind(err), err)
	}

	items := make([]engine.CueItem, 0, len(tr.Cues))
	for _, c := range tr.Cues {
		items = append(items, engine.NewCueItem(videoID, c.Start, c.Duration, c.Text))
	}
	out := cmd.OutOrStdout()
	rendered := engine.TranscriptOutput{VideoID: videoID, Title: tr.Title, Cues: items}
	switch {
	case markdown:
		fmt.Fprint(out, engine.TranscriptMarkdown(rendered))
		return nil
	case htmlOut:
		fmt.Fprint(out, engine.TranscriptHTML(rendered))
		return nil
	}
	for _, c := range items {
		fmt.Fprintf(out, "[%s] %s", c.StartText, c.Text)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
