package pipeline

import (
	"testing"

	"github.com/Sena-ops/reportguard/internal/adapters"
	"github.com/Sena-ops/reportguard/internal/config"
	"github.com/Sena-ops/reportguard/internal/filter"
	"github.com/Sena-ops/reportguard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyFilter(t *testing.T) *filter.Messages {
	t.Helper()
	m, err := filter.New(config.Filter{})
	require.NoError(t, err)
	return m
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"prospector", "gitlab-sast", "semgrep"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), k)
	}

	_, err := ParseKind("none")
	assert.Error(t, err)
}

func TestRunDeduplicatesIdenticalRecords(t *testing.T) {
	// Two structurally identical findings collapse to one.
	doc := []byte(`{"messages": [
		{"source": "pylint", "code": "W0612", "message": "unused variable",
		 "location": {"function": "f", "path": "app.py", "line": 10, "character": 0}},
		{"source": "pylint", "code": "W0612", "message": "unused variable",
		 "location": {"function": "f", "path": "app.py", "line": 10, "character": 0}}
	]}`)

	findings, stats, err := Run(doc, KindProspector, emptyFilter(t), Options{})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "app.py", findings[0].File)
	assert.Equal(t, 10, findings[0].Line)
	assert.Equal(t, Stats{Total: 1, Filtered: 1}, stats)
}

func TestRunOrdersByFileThenLine(t *testing.T) {
	doc := []byte(`{"messages": [
		{"source": "pylint", "code": "C1", "message": "m1",
		 "location": {"path": "b.py", "line": 5}},
		{"source": "pylint", "code": "C2", "message": "m2",
		 "location": {"path": "a.py", "line": 20}},
		{"source": "pylint", "code": "C3", "message": "m3",
		 "location": {"path": "a.py", "line": 3}}
	]}`)

	findings, _, err := Run(doc, KindProspector, emptyFilter(t), Options{})
	require.NoError(t, err)
	require.Len(t, findings, 3)

	for i := 1; i < len(findings); i++ {
		prev, cur := findings[i-1], findings[i]
		ordered := prev.File < cur.File || (prev.File == cur.File && prev.Line <= cur.Line)
		assert.True(t, ordered, "findings[%d] out of order", i)
	}
}

func TestRunCountsAroundFilter(t *testing.T) {
	msgFilter, err := filter.New(config.Filter{MessageRE: []string{"^noise"}})
	require.NoError(t, err)

	doc := []byte(`{"messages": [
		{"source": "pylint", "code": "C1", "message": "noise to drop",
		 "location": {"path": "a.py", "line": 1}},
		{"source": "pylint", "code": "C2", "message": "real finding",
		 "location": {"path": "a.py", "line": 2}}
	]}`)

	findings, stats, err := Run(doc, KindProspector, msgFilter, Options{})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Filtered: 1}, stats)
	require.Len(t, findings, 1)
	assert.Equal(t, "real finding", findings[0].Message)
}

func TestRunSemgrepPassesOptions(t *testing.T) {
	doc := []byte(`{"results": [
		{"check_id": "r", "path": "a.py", "start": {"line": 1, "col": 1},
		 "extra": {"message": "m", "severity": "ERROR"}}
	]}`)

	findings, _, err := Run(doc, KindSemgrep, emptyFilter(t), Options{
		Semgrep: adapters.SemgrepOptions{
			RepoURL: "https://github.com/org/repo",
			Ref:     "main",
			Snippet: func(string, int) []model.SnippetLine { return nil },
		},
	})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "https://github.com/org/repo/blob/main/a.py#L1", findings[0].Link)
}

func TestRunDocumentFailures(t *testing.T) {
	f := emptyFilter(t)

	_, _, err := Run([]byte(`not json`), KindProspector, f, Options{})
	assert.Error(t, err)

	_, _, err = Run([]byte(`{"results": []}`), KindProspector, f, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"messages"`)
}
