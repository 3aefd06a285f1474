package engine

// transcriptSummaryPrompt: %s = date, %s = title, %s = instruction, %s = transcript.
const transcriptSummaryPrompt = `Today is %s.

You are given the transcript of a YouTube video titled "%s".
Each line starts with the [m:ss] time the passage begins.

%s

RULES:
- Use only what is said in the transcript. Do not invent facts.
- Reference timestamps as [m:ss] for every key point.
- Plain text, no markdown headings. At most 12 bullet points starting with "- ".

TRANSCRIPT:
%s`

const summaryInstruction = `Summarize the main points of the video in the order they are made.`

// questionInstruction: %s = user question.
const questionInstruction = `Answer this question about the video: %s
If the transcript does not answer it, say so in one sentence.`
