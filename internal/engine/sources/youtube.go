package sources

// YouTube transcript retrieval is split across files by responsibility:
//   youtube_page.go         watch page fetch and page title
//   youtube_token.go        INNERTUBE_API_KEY / serializedShareEntity extraction
//   youtube_innertube.go    Innertube get_transcript request
//   youtube_cues.go         response tree walk into raw cues
//   youtube_consolidate.go  merging raw cues into duration-bounded blocks
//   youtube_transcript.go   the pipeline tying them together
//   youtube_errors.go       failure kinds
