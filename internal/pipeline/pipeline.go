package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Sena-ops/reportguard/internal/adapters"
	"github.com/Sena-ops/reportguard/internal/filter"
	"github.com/Sena-ops/reportguard/internal/model"
)

// Kind selects the normalizer variant and the input-document section. Raw
// records carry no type information of their own, so the caller always names
// the shape; nothing is auto-detected.
type Kind string

const (
	KindProspector Kind = "prospector"
	KindGitlabSAST Kind = "gitlab-sast"
	KindSemgrep    Kind = "semgrep"
)

// section is the top-level array each tool writes its findings under.
var sections = map[Kind]string{
	KindProspector: "messages",
	KindGitlabSAST: "vulnerabilities",
	KindSemgrep:    "results",
}

// ParseKind validates a user-supplied kind tag.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := sections[k]; !ok {
		return "", fmt.Errorf("unsupported input kind %q (want prospector, gitlab-sast, or semgrep)", s)
	}
	return k, nil
}

// Options for one run. Semgrep is passed through to the semgrep variant.
type Options struct {
	Semgrep adapters.SemgrepOptions
}

// Stats counts findings before and after the message filter.
type Stats struct {
	Total    int // after dedupe + normalization
	Filtered int // after the message filter
}

// Run executes the full transform on one input document: section selection,
// dedupe, normalization, message filtering, then a stable sort by
// (file, line) for deterministic, navigable output. Per-record problems are
// logged and skipped inside the adapters; only document-level failures
// surface as errors.
func Run(doc []byte, kind Kind, msgFilter *filter.Messages, opts Options) ([]model.Finding, Stats, error) {
	records, err := extractSection(doc, kind)
	if err != nil {
		return nil, Stats{}, err
	}

	records = Dedupe(records)

	var findings []model.Finding
	switch kind {
	case KindProspector:
		findings = adapters.NormalizeProspector(records)
	case KindGitlabSAST:
		findings = adapters.NormalizeGitlabSAST(records)
	case KindSemgrep:
		findings = adapters.NormalizeSemgrep(records, opts.Semgrep)
	default:
		return nil, Stats{}, fmt.Errorf("unsupported input kind %q", kind)
	}

	stats := Stats{Total: len(findings)}
	findings = msgFilter.Apply(findings)
	stats.Filtered = len(findings)

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		return findings[i].Line < findings[j].Line
	})

	return findings, stats, nil
}

func extractSection(doc []byte, kind Kind) ([]json.RawMessage, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, fmt.Errorf("can't parse input document: %w", err)
	}

	section := sections[kind]
	raw, ok := top[section]
	if !ok {
		return nil, fmt.Errorf("input document has no %q section (is this really %s output?)", section, kind)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("can't parse %q section: %w", section, err)
	}
	return records, nil
}
