package sources

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Cue is one timed caption fragment. Times are in seconds.
type Cue struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// jsonNode is a position in a decoded JSON tree plus the path used to reach it.
// Each accessor checks one level and fails with ErrResponseParse naming the path.
type jsonNode struct {
	v    any
	path string
}

func (n jsonNode) fail(want string) error {
	return fmt.Errorf("%w: %s: expected %s, got %s", ErrResponseParse, n.path, want, jsonType(n.v))
}

// field returns the value under key, which must exist on an object.
func (n jsonNode) field(key string) (jsonNode, error) {
	obj, ok := n.v.(map[string]any)
	if !ok {
		return jsonNode{}, n.fail("object")
	}
	child := jsonNode{path: n.path + "." + key}
	v, ok := obj[key]
	if !ok {
		return jsonNode{}, fmt.Errorf("%w: %s: missing", ErrResponseParse, child.path)
	}
	child.v = v
	return child, nil
}

// fields walks a chain of object keys.
func (n jsonNode) fields(keys ...string) (jsonNode, error) {
	cur := n
	for _, k := range keys {
		next, err := cur.field(k)
		if err != nil {
			return jsonNode{}, err
		}
		cur = next
	}
	return cur, nil
}

// list returns the elements of an array node.
func (n jsonNode) list() ([]jsonNode, error) {
	arr, ok := n.v.([]any)
	if !ok {
		return nil, n.fail("array")
	}
	out := make([]jsonNode, len(arr))
	for i, v := range arr {
		out[i] = jsonNode{v: v, path: n.path + "[" + strconv.Itoa(i) + "]"}
	}
	return out, nil
}

func (n jsonNode) str() (string, error) {
	s, ok := n.v.(string)
	if !ok {
		return "", n.fail("string")
	}
	return s, nil
}

// seconds reads a millisecond count (YouTube sends these as strings,
// sometimes as numbers) and converts it to seconds.
func (n jsonNode) seconds() (float64, error) {
	var ms float64
	var err error
	switch v := n.v.(type) {
	case string:
		ms, err = strconv.ParseFloat(v, 64)
	case json.Number:
		ms, err = v.Float64()
	case float64:
		ms = v
	default:
		return 0, n.fail("milliseconds")
	}
	if err != nil || ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("%w: %s: invalid milliseconds %v", ErrResponseParse, n.path, n.v)
	}
	return ms / 1000, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "bool"
	}
	return fmt.Sprintf("%T", v)
}

// ParseCues walks a get_transcript response tree and returns raw cues in
// document order:
//
//	actions[].updateEngagementPanelAction.content.transcriptRenderer.body
//	  .transcriptBodyRenderer.cueGroups[].transcriptCueGroupRenderer.cues[]
//	  .transcriptCueRenderer{startOffsetMs, durationMs, cue.simpleText}
//
// The first missing key or wrong type fails the whole walk with ErrResponseParse.
func ParseCues(tree map[string]any) ([]Cue, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: empty response", ErrResponseParse)
	}
	root := jsonNode{v: tree, path: "$"}

	actionsNode, err := root.field("actions")
	if err != nil {
		return nil, err
	}
	actions, err := actionsNode.list()
	if err != nil {
		return nil, err
	}

	var cues []Cue
	for _, action := range actions {
		groupsNode, err := action.fields(
			"updateEngagementPanelAction", "content", "transcriptRenderer",
			"body", "transcriptBodyRenderer", "cueGroups")
		if err != nil {
			return nil, err
		}
		groups, err := groupsNode.list()
		if err != nil {
			return nil, err
		}
		for _, group := range groups {
			cueList, err := group.fields("transcriptCueGroupRenderer", "cues")
			if err != nil {
				return nil, err
			}
			items, err := cueList.list()
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				cue, err := parseCueRenderer(item)
				if err != nil {
					return nil, err
				}
				cues = append(cues, cue)
			}
		}
	}
	return cues, nil
}

func parseCueRenderer(item jsonNode) (Cue, error) {
	r, err := item.field("transcriptCueRenderer")
	if err != nil {
		return Cue{}, err
	}
	durNode, err := r.field("durationMs")
	if err != nil {
		return Cue{}, err
	}
	dur, err := durNode.seconds()
	if err != nil {
		return Cue{}, err
	}
	startNode, err := r.field("startOffsetMs")
	if err != nil {
		return Cue{}, err
	}
	start, err := startNode.seconds()
	if err != nil {
		return Cue{}, err
	}
	textNode, err := r.fields("cue", "simpleText")
	if err != nil {
		return Cue{}, err
	}
	text, err := textNode.str()
	if err != nil {
		return Cue{}, err
	}
	return Cue{Start: start, Duration: dur, Text: text}, nil
}
