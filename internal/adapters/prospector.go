package adapters

import (
	"encoding/json"
	"path/filepath"

	"github.com/Sena-ops/reportguard/internal/logging"
	"github.com/Sena-ops/reportguard/internal/model"
)

// One element of the prospector "messages" array.
type prospectorRecord struct {
	Source   string `json:"source"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location struct {
		Function  string `json:"function"`
		Path      string `json:"path"`
		Line      *int   `json:"line"`
		Character int    `json:"character"`
	} `json:"location"`
}

// NormalizeProspector maps raw prospector records onto the canonical shape.
// Prospector does not report severity or confidence, so both are fixed to
// the sentinel. A record missing its location is logged and skipped; the
// batch continues.
func NormalizeProspector(records []json.RawMessage) []model.Finding {
	out := make([]model.Finding, 0, len(records))
	for _, raw := range records {
		var r prospectorRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			logging.Logger.Errorf("can't normalize prospector item: %v", err)
			continue
		}
		if r.Location.Path == "" {
			logging.Logger.Errorf("can't normalize prospector item: location.path is absent")
			continue
		}
		if r.Location.Line == nil || *r.Location.Line < 1 {
			logging.Logger.Errorf("can't normalize prospector item: location.line is absent")
			continue
		}
		out = append(out, model.Finding{
			Tool:       orUnknown(r.Source),
			Code:       orUnknown(r.Code),
			Severity:   model.Unknown,
			Confidence: model.Unknown,
			Function:   orUnknown(r.Location.Function),
			File:       filepath.ToSlash(r.Location.Path),
			Line:       *r.Location.Line,
			Position:   r.Location.Character,
			Message:    r.Message,
		})
	}
	return out
}
