package sources

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscriptJSON = `{
	"responseContext": {"visitorData": "x"},
	"actions": [
		{
			"clickTrackingParams": "abc",
			"updateEngagementPanelAction": {
				"targetId": "engagement-panel-transcript",
				"content": {
					"transcriptRenderer": {
						"body": {
							"transcriptBodyRenderer": {
								"cueGroups": [
									{
										"transcriptCueGroupRenderer": {
											"formattedStartOffset": {"simpleText": "0:00"},
											"cues": [
												{"transcriptCueRenderer": {
													"cue": {"simpleText": "hello there"},
													"startOffsetMs": "0",
													"durationMs": "4200"
												}}
											]
										}
									},
									{
										"transcriptCueGroupRenderer": {
											"cues": [
												{"transcriptCueRenderer": {
													"cue": {"simpleText": "second\nline"},
													"startOffsetMs": "4200",
													"durationMs": "3000"
												}},
												{"transcriptCueRenderer": {
													"cue": {"simpleText": "third"},
													"startOffsetMs": 7200,
													"durationMs": 1500
												}}
											]
										}
									}
								]
							}
						}
					}
				}
			}
		}
	]
}`

func decodeTree(t *testing.T, s string) map[string]any {
	t.Helper()
	var tree map[string]any
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&tree))
	return tree
}

func TestParseCues(t *testing.T) {
	cues, err := ParseCues(decodeTree(t, sampleTranscriptJSON))
	require.NoError(t, err)
	assert.Equal(t, []Cue{
		{Start: 0, Duration: 4.2, Text: "hello there"},
		{Start: 4.2, Duration: 3, Text: "second\nline"},
		{Start: 7.2, Duration: 1.5, Text: "third"},
	}, cues)
}

func TestParseCuesEmptyGroups(t *testing.T) {
	tree := decodeTree(t, `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[]}}}}}}]}`)
	cues, err := ParseCues(tree)
	require.NoError(t, err)
	assert.Empty(t, cues)
}

func TestParseCuesMalformed(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantPath string
	}{
		{
			name:     "no actions",
			json:     `{"responseContext":{}}`,
			wantPath: "$.actions",
		},
		{
			name:     "actions not a list",
			json:     `{"actions":{}}`,
			wantPath: "$.actions",
		},
		{
			name:     "missing cue groups",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{}}}}}}]}`,
			wantPath: "$.actions[0].updateEngagementPanelAction.content.transcriptRenderer.body.transcriptBodyRenderer.cueGroups",
		},
		{
			name:     "other action type",
			json:     `{"actions":[{"openPopupAction":{}}]}`,
			wantPath: "$.actions[0].updateEngagementPanelAction",
		},
		{
			name:     "cues not a list",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":"x"}}]}}}}}}]}`,
			wantPath: "cueGroups[0].transcriptCueGroupRenderer.cues",
		},
		{
			name:     "missing simpleText",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"runs":[]},"startOffsetMs":"0","durationMs":"1"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.cue.simpleText",
		},
		{
			name:     "bad duration",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"simpleText":"a"},"startOffsetMs":"0","durationMs":"soon"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.durationMs",
		},
		{
			name:     "NaN duration",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"simpleText":"a"},"startOffsetMs":"0","durationMs":"NaN"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.durationMs",
		},
		{
			name:     "infinite start",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"simpleText":"a"},"startOffsetMs":"Inf","durationMs":"1"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.startOffsetMs",
		},
		{
			name:     "negative duration",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"simpleText":"a"},"startOffsetMs":"0","durationMs":"-5"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.durationMs",
		},
		{
			name:     "null start",
			json:     `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"body":{"transcriptBodyRenderer":{"cueGroups":[{"transcriptCueGroupRenderer":{"cues":[{"transcriptCueRenderer":{"cue":{"simpleText":"a"},"startOffsetMs":null,"durationMs":"1"}}]}}]}}}}}}]}`,
			wantPath: "transcriptCueRenderer.startOffsetMs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cues, err := ParseCues(decodeTree(t, tt.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrResponseParse), "error kind: %v", err)
			assert.Nil(t, cues)
			assert.True(t, strings.Contains(err.Error(), tt.wantPath), "error %q should name %q", err, tt.wantPath)
		})
	}
}

func TestParseCuesNil(t *testing.T) {
	_, err := ParseCues(nil)
	assert.ErrorIs(t, err, ErrResponseParse)
}
