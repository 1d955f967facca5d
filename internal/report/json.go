package report

import (
	"encoding/json"
	"fmt"

	"github.com/Sena-ops/reportguard/internal/model"
)

// DefaultBase is the output file name when the user does not choose one; the
// renderer's extension is appended.
const DefaultBase = "reportguard-report"

type jsonReport struct {
	Meta Meta            `json:"meta"`
	Data []model.Finding `json:"data"`
}

// RenderJSON produces the machine-readable report: the meta bundle plus the
// canonical finding sequence, indented.
func RenderJSON(meta Meta, findings []model.Finding) ([]byte, error) {
	b, err := json.MarshalIndent(jsonReport{Meta: meta, Data: findings}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("can't encode JSON report: %w", err)
	}
	return append(b, '\n'), nil
}
