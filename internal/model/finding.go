package model

// Unknown is the sentinel for fields the source tool does not report.
const Unknown = "unknown"

// SnippetLine is one line of source context around a finding. Number is the
// absolute 1-based line number in the original file, not an offset into the
// extracted window.
type SnippetLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Finding is the normalized record shape shared by all input kinds. Every
// core field carries a value: data absent upstream becomes "unknown" (0 for
// Position), so renderers never branch on missing keys.
type Finding struct {
	Tool       string        `json:"tool"`       // originating scanner/rule engine
	Code       string        `json:"code"`       // rule/check id, tool-specific format
	Severity   string        `json:"severity"`   // tool vocabulary, or "unknown"
	Confidence string        `json:"confidence"` // tool vocabulary, or "unknown"
	Function   string        `json:"function"`   // enclosing function, or "unknown"
	File       string        `json:"file"`       // relative path, always populated
	Line       int           `json:"line"`       // 1-based
	Position   int           `json:"position"`   // column, 0 when not reported
	Message    string        `json:"message"`    // human-readable description
	Snippet    []SnippetLine `json:"snippet,omitempty"`

	// Render hints, produced by the semgrep variant only.
	Impact      string `json:"impact,omitempty"`       // from rule metadata
	Link        string `json:"link,omitempty"`         // deep link into the repo browser
	SnippetLang string `json:"snippet_lang,omitempty"` // highlight.js language class
}
