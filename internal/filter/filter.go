package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/reportguard/internal/config"
	"github.com/Sena-ops/reportguard/internal/model"
)

// Messages is the compiled message blocklist. Immutable after New; Passes is
// a pure predicate.
type Messages struct {
	literals []string
	patterns []*regexp.Regexp
}

// New compiles the regexp blocklist up front so that a bad pattern fails the
// run before any record is processed.
func New(cfg config.Filter) (*Messages, error) {
	m := &Messages{literals: cfg.Message}
	for _, expr := range cfg.MessageRE {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid message_re pattern %q: %w", expr, err)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// Passes reports whether the finding survives both blocklist gates. An empty
// gate always passes.
func (m *Messages) Passes(f model.Finding) bool {
	return m.passesLiterals(f.Message) && m.passesPatterns(f.Message)
}

// A message is rejected when it occurs as a substring of a configured entry.
// The direction matters: entry-contains-message, not the reverse.
func (m *Messages) passesLiterals(msg string) bool {
	for _, entry := range m.literals {
		if strings.Contains(entry, msg) {
			return false
		}
	}
	return true
}

func (m *Messages) passesPatterns(msg string) bool {
	for _, re := range m.patterns {
		if re.MatchString(msg) {
			return false
		}
	}
	return true
}

// Apply keeps the findings that pass, preserving order.
func (m *Messages) Apply(findings []model.Finding) []model.Finding {
	out := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if m.Passes(f) {
			out = append(out, f)
		}
	}
	return out
}
