package adapters

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/reportguard/internal/logging"
	"github.com/Sena-ops/reportguard/internal/model"
	"github.com/Sena-ops/reportguard/internal/snippet"
)

// One element of the semgrep "results" array.
type semgrepRecord struct {
	CheckID string `json:"check_id"`
	Path    string `json:"path"`
	Start   struct {
		Line *int `json:"line"`
		Col  int  `json:"col"`
	} `json:"start"`
	Extra struct {
		Message  string `json:"message"`
		Severity string `json:"severity"` // INFO|WARNING|ERROR
		Metadata struct {
			Confidence string `json:"confidence"`
			Impact     string `json:"impact"`
		} `json:"metadata"`
	} `json:"extra"`
}

// SemgrepOptions carry the repository-linking inputs and the snippet source.
// Snippet defaults to snippet.Extract; tests inject their own.
type SemgrepOptions struct {
	RepoURL string
	Ref     string // commit sha, branch, or tag
	Snippet func(path string, line int) []model.SnippetLine
}

// Highlight classes for snippet rendering, keyed by file extension. Anything
// else gets no class.
var highlightLangs = map[string]string{
	".php":  "php",
	".js":   "js",
	".yaml": "yaml",
	".yml":  "yaml",
	".java": "java",
	".html": "html",
	".htm":  "html",
	".go":   "go",
	".py":   "py",
}

// NormalizeSemgrep maps raw semgrep records onto the canonical shape. This is
// the only variant that reaches outside the record itself: it extracts a
// source-context snippet and builds a deep link from the repository URL and
// ref. Semgrep reports no enclosing function.
func NormalizeSemgrep(records []json.RawMessage, opts SemgrepOptions) []model.Finding {
	extract := opts.Snippet
	if extract == nil {
		extract = snippet.Extract
	}
	base := strings.TrimRight(opts.RepoURL, "/")

	out := make([]model.Finding, 0, len(records))
	for _, raw := range records {
		var r semgrepRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			logging.Logger.Errorf("can't normalize semgrep item: %v", err)
			continue
		}
		if r.Path == "" {
			logging.Logger.Errorf("can't normalize semgrep item: path is absent")
			continue
		}
		if r.Start.Line == nil || *r.Start.Line < 1 {
			logging.Logger.Errorf("can't normalize semgrep item: start.line is absent")
			continue
		}
		line := *r.Start.Line

		out = append(out, model.Finding{
			Tool:        "semgrep",
			Code:        orUnknown(r.CheckID),
			Severity:    orUnknown(r.Extra.Severity),
			Confidence:  orUnknown(r.Extra.Metadata.Confidence),
			Impact:      orUnknown(r.Extra.Metadata.Impact),
			Function:    model.Unknown,
			File:        filepath.ToSlash(r.Path),
			Line:        line,
			Position:    r.Start.Col,
			Message:     r.Extra.Message,
			Snippet:     extract(r.Path, line),
			Link:        deepLink(base, opts.Ref, r.Path, line),
			SnippetLang: highlightLangs[strings.ToLower(filepath.Ext(r.Path))],
		})
	}
	return out
}

func deepLink(base, ref, path string, line int) string {
	if base == "" || ref == "" {
		return ""
	}
	return fmt.Sprintf("%s/blob/%s/%s#L%d", base, ref, filepath.ToSlash(path), line)
}
