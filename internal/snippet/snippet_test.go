package snippet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, name string, count int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func TestExtractWindow(t *testing.T) {
	path := writeLines(t, "app.py", 30)

	lines := Extract(path, 10)
	require.Len(t, lines, 11)
	assert.Equal(t, 6, lines[0].Number)
	assert.Equal(t, "line 6", lines[0].Text)
	assert.Equal(t, 16, lines[len(lines)-1].Number)
}

func TestExtractNearFileStart(t *testing.T) {
	path := writeLines(t, "app.py", 30)

	// The window can't open before line 1, so it starts at the target.
	lines := Extract(path, 2)
	require.NotEmpty(t, lines)
	assert.GreaterOrEqual(t, lines[0].Number, 1)
	assert.Equal(t, 2, lines[0].Number)
}

func TestExtractNearFileEnd(t *testing.T) {
	path := writeLines(t, "app.py", 10)

	lines := Extract(path, 9)
	require.NotEmpty(t, lines)
	assert.Equal(t, 5, lines[0].Number)
	assert.Equal(t, 10, lines[len(lines)-1].Number)
}

func TestExtractMissingFile(t *testing.T) {
	assert.Empty(t, Extract(filepath.Join(t.TempDir(), "nope.py"), 10))
}

func TestExtractBadLine(t *testing.T) {
	path := writeLines(t, "app.py", 5)
	assert.Empty(t, Extract(path, 0))
}

func TestMinifiedScriptSuppressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.js")
	content := "short line\n" + strings.Repeat("x", 300) + "\nanother\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lines := Extract(path, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, minifiedPlaceholder, lines[0].Text)
}

func TestHugeScriptLineSuppressed(t *testing.T) {
	// A single line past the scanner's buffer cap is still the minified
	// case and must yield the placeholder, not an empty result.
	path := filepath.Join(t.TempDir(), "bundle.js")
	content := strings.Repeat("x", 2*1024*1024) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lines := Extract(path, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, minifiedPlaceholder, lines[0].Text)
}

func TestHugeLineInNonScriptDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.txt")
	content := strings.Repeat("y", 2*1024*1024) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.Empty(t, Extract(path, 1))
}

func TestLongLinesKeptForNonScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.py")
	content := "short\n" + strings.Repeat("y", 300) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lines := Extract(path, 1)
	require.Len(t, lines, 2)
	assert.NotEqual(t, minifiedPlaceholder, lines[0].Text)
}
