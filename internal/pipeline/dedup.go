package pipeline

import (
	"encoding/json"
)

// Dedupe removes raw records structurally equal to an earlier one, keeping
// first-seen order. It runs before normalization on purpose: normalization
// can map distinct raw records onto similar canonical ones, and those are
// real separate detections, not duplicates.
func Dedupe(records []json.RawMessage) []json.RawMessage {
	seen := make(map[string]bool, len(records))
	out := make([]json.RawMessage, 0, len(records))
	for _, raw := range records {
		key := canonicalKey(raw)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, raw)
	}
	return out
}

// canonicalKey re-encodes the record so that key order and whitespace do not
// defeat deep equality (encoding/json marshals maps with sorted keys).
// Records that fail to decode compare by their raw bytes; the adapter will
// report them properly later.
func canonicalKey(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(b)
}
