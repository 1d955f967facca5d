package adapters

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/reportguard/internal/logging"
	"github.com/Sena-ops/reportguard/internal/model"
)

// One element of the GitLab SAST "vulnerabilities" array.
type gitlabSASTRecord struct {
	Message     string `json:"message"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Confidence  string `json:"confidence"`
	Scanner     struct {
		ID string `json:"id"`
	} `json:"scanner"`
	Identifiers []struct {
		Value string `json:"value"`
	} `json:"identifiers"`
	Location struct {
		File      string `json:"file"`
		StartLine *int   `json:"start_line"`
	} `json:"location"`
}

// NormalizeGitlabSAST maps raw GitLab SAST records onto the canonical shape.
// The rule code is the comma-joined identifier set; the shape reports no
// enclosing function and no column.
func NormalizeGitlabSAST(records []json.RawMessage) []model.Finding {
	out := make([]model.Finding, 0, len(records))
	for _, raw := range records {
		var r gitlabSASTRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			logging.Logger.Errorf("can't normalize gitlab-sast item: %v", err)
			continue
		}
		if r.Location.File == "" {
			logging.Logger.Errorf("can't normalize gitlab-sast item: location.file is absent")
			continue
		}
		if r.Location.StartLine == nil || *r.Location.StartLine < 1 {
			logging.Logger.Errorf("can't normalize gitlab-sast item: location.start_line is absent")
			continue
		}

		ids := make([]string, 0, len(r.Identifiers))
		for _, id := range r.Identifiers {
			if id.Value != "" {
				ids = append(ids, id.Value)
			}
		}

		out = append(out, model.Finding{
			Tool:       orUnknown(r.Scanner.ID),
			Code:       orUnknown(strings.Join(ids, ", ")),
			Severity:   orUnknown(r.Severity),
			Confidence: orUnknown(r.Confidence),
			Function:   model.Unknown,
			File:       filepath.ToSlash(r.Location.File),
			Line:       *r.Location.StartLine,
			Position:   0,
			Message:    firstNonEmpty(r.Message, r.Description),
		})
	}
	return out
}
